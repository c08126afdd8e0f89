package fixed

import (
	"fmt"
	"iter"

	"fixediter/length"
	"fixediter/seqs"
)

// Seq is a sequence of exactly Len() elements.
//
// A Seq is a value; combinators never modify their receiver and always
// return a new Seq. The zero value is an empty sequence.
type Seq[T any] struct {
	fwd  iter.Seq[T]
	back iter.Seq[T] // nil if the source cannot be walked backwards
	n    int
}

// Unchecked wraps seq, trusting that it yields at least n elements.
//
// Consumers never request more than n elements. If seq ends early the
// consumer panics with ErrContractViolation.
func Unchecked[T any](seq iter.Seq[T], n int) Seq[T] {
	length.Check(n)
	return Seq[T]{fwd: seq, n: n}
}

// UncheckedBidi is like Unchecked for a source that can also be walked from
// the last element to the first. back must yield the elements of fwd in
// reverse order.
func UncheckedBidi[T any](fwd, back iter.Seq[T], n int) Seq[T] {
	length.Check(n)
	return Seq[T]{fwd: fwd, back: back, n: n}
}

// Generate returns the sequence f(0), f(1), ..., f(n-1).
// f is called once per index each time the sequence is iterated.
func Generate[T any](n int, f func(int) T) Seq[T] {
	length.Check(n)
	return Seq[T]{
		fwd:  seqs.Map(seqs.Range(0, n, 1), f),
		back: seqs.Map(seqs.Range(n-1, -1, -1), f),
		n:    n,
	}
}

func (s Seq[T]) Len() int {
	return s.n
}

// Reversible reports whether Rev and Backward can be used on s.
func (s Seq[T]) Reversible() bool {
	return s.n == 0 || s.back != nil
}

// All returns the elements of s in order.
func (s Seq[T]) All() iter.Seq[T] {
	return bounded(s.fwd, s.n)
}

// Backward returns the elements of s from last to first.
// It panics with ErrNotReversible if s is not Reversible.
func (s Seq[T]) Backward() iter.Seq[T] {
	b := s.rev()
	if b == nil {
		panic(ErrNotReversible)
	}
	return b
}

// Fixed returns s, so a Seq can be passed wherever a Producer is expected.
func (s Seq[T]) Fixed() Seq[T] {
	return s
}

// rev returns the bounded backward stream of s, or nil.
func (s Seq[T]) rev() iter.Seq[T] {
	switch {
	case s.n == 0:
		return bounded[T](nil, 0)
	case s.back == nil:
		return nil
	}
	return bounded(s.back, s.n)
}

// withRev applies f to the backward stream of s if there is one.
func withRev[T, R any](s Seq[T], f func(iter.Seq[T]) iter.Seq[R]) iter.Seq[R] {
	b := s.rev()
	if b == nil {
		return nil
	}
	return f(b)
}

// bounded stops after n elements and panics if seq ends before that.
func bounded[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n == 0 {
			return
		}
		got := 0
		if seq != nil {
			for v := range seq {
				if !yield(v) {
					return
				}
				got++
				if got == n {
					return
				}
			}
		}
		panic(fmt.Errorf("%w: declared %d, got %d", ErrContractViolation, n, got))
	}
}
