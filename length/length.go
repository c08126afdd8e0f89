// Package length holds the arithmetic used to compute the length of a
// fixed-size sequence after a combinator has been applied.
//
// All functions are pure and operate on natural numbers. They panic on
// inputs outside that domain instead of returning an error, since a bad
// length is always a programming mistake at the call site.
package length

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNegative    = errors.New("length: negative length")
	ErrZeroDivisor = errors.New("length: divisor must be positive")
	ErrOverflow    = errors.New("length: result overflows int")
)

// Min returns the smaller of a and b.
func Min(a, b int) int {
	check(a, b)
	if a < b {
		return a
	}
	return b
}

// SubOrZero returns a-b, clamped to 0.
func SubOrZero(a, b int) int {
	check(a, b)
	if a > b {
		return a - b
	}
	return 0
}

// CeilDiv returns x/d rounded up. d must be positive.
func CeilDiv(x, d int) int {
	check(x)
	if d <= 0 {
		panic(fmt.Errorf("%w: %d", ErrZeroDivisor, d))
	}
	q := x / d
	if x%d != 0 {
		q++
	}
	return q
}

func Add(a, b int) int {
	check(a, b)
	if a > math.MaxInt-b {
		panic(fmt.Errorf("%w: %d + %d", ErrOverflow, a, b))
	}
	return a + b
}

func Mul(a, b int) int {
	check(a, b)
	if a != 0 && b > math.MaxInt/a {
		panic(fmt.Errorf("%w: %d * %d", ErrOverflow, a, b))
	}
	return a * b
}

// Check panics with ErrNegative if any of ns is below zero.
func Check(ns ...int) {
	check(ns...)
}

func check(ns ...int) {
	for _, n := range ns {
		if n < 0 {
			panic(fmt.Errorf("%w: %d", ErrNegative, n))
		}
	}
}
