package fixed

import (
	"fmt"
	"iter"

	"fixediter/length"
	"fixediter/seqs"
)

// Cloner is implemented by types that know how to duplicate themselves.
type Cloner[T any] interface {
	Clone() T
}

// Map applies f to each element of s.
func Map[T, R any](s Seq[T], f func(T) R) Seq[R] {
	return Seq[R]{
		fwd: seqs.Map(s.All(), f),
		back: withRev(s, func(b iter.Seq[T]) iter.Seq[R] {
			return seqs.Map(b, f)
		}),
		n: s.n,
	}
}

// Zip pairs the i-th element of a with the i-th element of b.
// a and b must have the same length, otherwise Zip panics with ErrLengthMismatch.
func Zip[T, U any](a Seq[T], b Seq[U]) Seq[seqs.Pair[T, U]] {
	if a.n != b.n {
		panic(fmt.Errorf("%w: zip of %d and %d elements", ErrLengthMismatch, a.n, b.n))
	}
	out := Seq[seqs.Pair[T, U]]{
		fwd: seqs.Zip(a.All(), b.All()),
		n:   a.n,
	}
	if ab, bb := a.rev(), b.rev(); ab != nil && bb != nil {
		out.back = seqs.Zip(ab, bb)
	}
	return out
}

// Enumerate pairs each element with its position, counted from 0.
func Enumerate[T any](s Seq[T]) Seq[seqs.Pair[int, T]] {
	return Seq[seqs.Pair[int, T]]{
		fwd: pairs(seqs.Enumerate(s.All())),
		back: withRev(s, func(b iter.Seq[T]) iter.Seq[seqs.Pair[int, T]] {
			return seqs.Zip(seqs.Range(s.n-1, -1, -1), b)
		}),
		n: s.n,
	}
}

// Copied dereferences each element.
func Copied[T any](s Seq[*T]) Seq[T] {
	return Map(s, func(p *T) T {
		return *p
	})
}

// Cloned yields a clone of each referenced element.
func Cloned[T Cloner[T]](s Seq[*T]) Seq[T] {
	return Map(s, func(p *T) T {
		return (*p).Clone()
	})
}

// Flatten concatenates the inner sequences of s, each of which must hold
// exactly m elements. An inner sequence of any other length makes the
// iteration panic with ErrLengthMismatch when it is reached.
func Flatten[T any](s Seq[Seq[T]], m int) Seq[T] {
	n := length.Mul(s.n, m)
	return Seq[T]{
		fwd: seqs.FlatMap(s.All(), func(inner Seq[T]) iter.Seq[T] {
			checkInner(inner, m)
			return inner.All()
		}),
		back: withRev(s, func(b iter.Seq[Seq[T]]) iter.Seq[T] {
			return seqs.FlatMap(b, func(inner Seq[T]) iter.Seq[T] {
				checkInner(inner, m)
				return inner.Backward()
			})
		}),
		n: n,
	}
}

// FlatMap maps each element of s to a sequence of m elements and
// concatenates the results. See Flatten.
func FlatMap[T, R any](s Seq[T], m int, f func(T) Seq[R]) Seq[R] {
	return Flatten(Map(s, f), m)
}

func checkInner[T any](inner Seq[T], m int) {
	if inner.n != m {
		panic(fmt.Errorf("%w: inner sequence has %d elements, want %d", ErrLengthMismatch, inner.n, m))
	}
}

func pairs[T any](seq iter.Seq2[int, T]) iter.Seq[seqs.Pair[int, T]] {
	return func(yield func(seqs.Pair[int, T]) bool) {
		for i, v := range seq {
			if !yield(seqs.Pair[int, T]{V1: i, V2: v}) {
				return
			}
		}
	}
}
