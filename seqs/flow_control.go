package seqs

import "iter"

func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		count := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			count++
			if count >= n {
				return
			}
		}
	}
}

func Skip[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		skipped := 0
		for v := range seq {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// StepBy yields every step-th element of seq, starting with the first one.
// A step <= 0 yields nothing.
func StepBy[T any](seq iter.Seq[T], step int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if step <= 0 {
			return
		}
		index := 0
		for v := range seq {
			if index%step == 0 {
				if !yield(v) {
					return
				}
			}
			index++
		}
	}
}
