package fixed

import (
	"fmt"
	"iter"

	"fixediter/length"
	"fixediter/seqs"
)

// Inspect calls f on each element as it passes through, without changing it.
func (s Seq[T]) Inspect(f func(T)) Seq[T] {
	return Seq[T]{
		fwd: seqs.Peek(s.All(), f),
		back: withRev(s, func(b iter.Seq[T]) iter.Seq[T] {
			return seqs.Peek(b, f)
		}),
		n: s.n,
	}
}

// Skip drops the first k elements. The result has length max(Len()-k, 0).
func (s Seq[T]) Skip(k int) Seq[T] {
	n := length.SubOrZero(s.n, k)
	return Seq[T]{
		fwd: seqs.Skip(s.All(), k),
		back: withRev(s, func(b iter.Seq[T]) iter.Seq[T] {
			return seqs.Take(b, n)
		}),
		n: n,
	}
}

// Take keeps the first k elements. The result has length min(Len(), k).
func (s Seq[T]) Take(k int) Seq[T] {
	n := length.Min(s.n, k)
	return Seq[T]{
		fwd: seqs.Take(s.All(), n),
		back: withRev(s, func(b iter.Seq[T]) iter.Seq[T] {
			return seqs.Skip(b, s.n-n)
		}),
		n: n,
	}
}

// StepBy keeps the elements at positions 0, step, 2*step, ...
// It panics with ErrZeroStride if step is not positive.
func (s Seq[T]) StepBy(step int) Seq[T] {
	if step <= 0 {
		panic(fmt.Errorf("%w: %d", ErrZeroStride, step))
	}
	n := length.CeilDiv(s.n, step)
	return Seq[T]{
		fwd: seqs.StepBy(s.All(), step),
		back: withRev(s, func(b iter.Seq[T]) iter.Seq[T] {
			if n == 0 {
				return b
			}
			// walking backwards, the first kept element is the last one kept going forwards
			last := (n - 1) * step
			return seqs.StepBy(seqs.Skip(b, s.n-1-last), step)
		}),
		n: n,
	}
}

// Chain yields the elements of s followed by those of other.
func (s Seq[T]) Chain(other Producer[T]) Seq[T] {
	o := other.Fixed()
	out := Seq[T]{
		fwd: seqs.Concat(s.All(), o.All()),
		n:   length.Add(s.n, o.n),
	}
	if sb, ob := s.rev(), o.rev(); sb != nil && ob != nil {
		out.back = seqs.Concat(ob, sb)
	}
	return out
}

// Rev reverses the order of the elements.
// It panics with ErrNotReversible if s is not Reversible.
func (s Seq[T]) Rev() Seq[T] {
	if !s.Reversible() {
		panic(ErrNotReversible)
	}
	return Seq[T]{fwd: s.back, back: s.fwd, n: s.n}
}
