package fixed

import "fmt"

// Builder is implemented by fixed-size containers that can be filled from
// a Seq. Put is called once for every index in [0, Len()), in order.
type Builder[T any] interface {
	Len() int
	Put(i int, v T)
}

// Collect returns the elements of s in a new slice of length s.Len().
func (s Seq[T]) Collect() []T {
	out := make([]T, s.n)
	s.CollectInto(Slice[T](out))
	return out
}

// Fill copies the elements of s into dst, which must have length s.Len().
// Arrays can be filled through a slice of the whole array:
//
//	var a [4]int
//	s.Fill(a[:])
func (s Seq[T]) Fill(dst []T) {
	s.CollectInto(Slice[T](dst))
}

// CollectInto fills dst with the elements of s.
// It panics with ErrLengthMismatch if dst.Len() differs from s.Len().
func (s Seq[T]) CollectInto(dst Builder[T]) {
	if dst.Len() != s.n {
		panic(fmt.Errorf("%w: collecting %d elements into %d", ErrLengthMismatch, s.n, dst.Len()))
	}
	i := 0
	for v := range s.All() {
		dst.Put(i, v)
		i++
	}
}
