package fixed

import (
	"slices"

	"fixediter/length"
	"fixediter/seqs"
)

// Producer is implemented by values that can be turned into a Seq whose
// length they know in advance.
type Producer[T any] interface {
	Fixed() Seq[T]
}

// Slice is a fixed-size container backed by a slice. It is both a Producer
// and a Builder.
type Slice[T any] []T

func (s Slice[T]) Fixed() Seq[T] {
	return FromSlice(s)
}

func (s Slice[T]) Len() int {
	return len(s)
}

func (s Slice[T]) Put(i int, v T) {
	s[i] = v
}

// Refs borrows a slice and produces pointers to its elements.
type Refs[T any] []T

func (r Refs[T]) Fixed() Seq[*T] {
	return FromRefs(r)
}

// FromSlice yields the elements of xs. xs is not copied, so changes made to
// it before the sequence is consumed are visible to the consumer.
func FromSlice[T any](xs []T) Seq[T] {
	return Seq[T]{
		fwd:  slices.Values(xs),
		back: seqs.Backward(xs),
		n:    len(xs),
	}
}

// FromRefs yields a pointer to each element of xs. The pointers alias xs.
func FromRefs[T any](xs []T) Seq[*T] {
	return Seq[*T]{
		fwd: func(yield func(*T) bool) {
			for i := range xs {
				if !yield(&xs[i]) {
					return
				}
			}
		},
		back: func(yield func(*T) bool) {
			for i := len(xs) - 1; i >= 0; i-- {
				if !yield(&xs[i]) {
					return
				}
			}
		},
		n: len(xs),
	}
}

// Repeat yields v exactly n times.
func Repeat[T any](v T, n int) Seq[T] {
	length.Check(n)
	endless := seqs.Forever(v)
	return Seq[T]{fwd: endless, back: endless, n: n}
}
