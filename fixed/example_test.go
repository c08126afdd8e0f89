package fixed_test

import (
	"fmt"

	"fixediter/fixed"
	"fixediter/seqs"
)

func ExampleSeq_Rev() {
	fmt.Println(fixed.FromSlice([]int{1, 3, 2, 7}).Rev().Collect())

	// Output:
	// [7 2 3 1]
}

func ExampleZip() {
	a := fixed.FromSlice([]int{1, 2, 3, 4})
	b := fixed.FromSlice([]int{4, 3, 2, 1})

	sum := fixed.Map(fixed.Zip(a, b), func(p seqs.Pair[int, int]) int {
		return p.V1 + p.V2
	})
	fmt.Println(sum.Collect())

	// The length of the result is known before anything is iterated.
	res := sum.Skip(1).Take(2)
	fmt.Println(res.Len(), res.Collect())

	// Output:
	// [5 5 5 5]
	// 2 [5 5]
}

func ExampleGenerate() {
	fmt.Println(fixed.Generate(3, func(i int) int { return 2 * i }).Collect())

	// Output:
	// [0 2 4]
}

func ExampleSeq_StepBy() {
	s := fixed.FromSlice([]int{1, 2, 3, 4, 5, 6, 7}).StepBy(2)
	fmt.Println(s.Len(), s.Collect())

	// Output:
	// 4 [1 3 5 7]
}

func ExampleFlatten() {
	rows := fixed.Map(fixed.FromSlice([][]int{{1, 2}, {3, 4}}), fixed.FromSlice[int])
	fmt.Println(fixed.Flatten(rows, 2).Collect())

	// Output:
	// [1 2 3 4]
}

func ExampleSeq_Fill() {
	var a [3]string
	fixed.Repeat("go", 3).Fill(a[:])
	fmt.Println(a)

	// Output:
	// [go go go]
}
