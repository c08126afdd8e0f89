package fixed_test

import (
	"fmt"

	"fixediter/fixed"
	"fixediter/seqs"
)

// Vector is a user-defined fixed-size container.
type Vector[T seqs.Number] struct {
	elements []T
}

func NewVector[T seqs.Number](elements ...T) Vector[T] {
	return Vector[T]{elements: elements}
}

func (v Vector[T]) Fixed() fixed.Seq[T] {
	return fixed.FromSlice(v.elements)
}

func (v Vector[T]) Len() int {
	return len(v.elements)
}

func (v Vector[T]) Put(i int, x T) {
	v.elements[i] = x
}

func (v Vector[T]) Add(other Vector[T]) Vector[T] {
	out := Vector[T]{elements: make([]T, v.Len())}
	fixed.Map(fixed.Zip(v.Fixed(), other.Fixed()), func(p seqs.Pair[T, T]) T {
		return p.V1 + p.V2
	}).CollectInto(out)
	return out
}

func (v Vector[T]) Length2() T {
	return seqs.Sum(fixed.Map(v.Fixed(), func(x T) T { return x * x }).All())
}

// Matrix stores R rows of K columns each.
type Matrix[T any] struct {
	rows [][]T
}

func (m Matrix[T]) Row(i int) []*T {
	return fixed.FromRefs(m.rows[i]).Collect()
}

func (m Matrix[T]) Col(j int) []*T {
	return fixed.Map(fixed.FromRefs(m.rows), func(row *[]T) *T {
		return &(*row)[j]
	}).Collect()
}

func Example_vector() {
	a := NewVector(1, 2, 3)
	b := NewVector(1, 1, 1)

	fmt.Println(a.Add(b).elements)
	fmt.Println(b.Length2())

	// Output:
	// [2 3 4]
	// 3
}

func Example_matrix() {
	m := Matrix[int]{rows: [][]int{{1, 2, 3}, {4, 5, 6}}}

	fmt.Println(fixed.Copied(fixed.FromSlice(m.Row(0))).Collect())
	fmt.Println(fixed.Copied(fixed.FromSlice(m.Col(0))).Collect())

	// Output:
	// [1 2 3]
	// [1 4]
}
