/*
Package fixed provides sequences whose length is known before they are iterated.

A [Seq] wraps an iter.Seq together with its element count. Every combinator
computes the length of its result up front from the length of its inputs,
using the rules in [fixediter/length], so the final [Seq.Collect] or
[Seq.CollectInto] knows exactly how much storage to fill without counting.

	res := fixed.Map(
		fixed.Zip(fixed.FromSlice([]int{1, 2, 3, 4}), fixed.FromSlice([]int{4, 3, 2, 1})),
		func(p seqs.Pair[int, int]) int { return p.V1 + p.V2 },
	).Skip(1).Take(2).Collect() // [5 5], length 2 known before iterating

Only combinators whose output length follows from their inputs are offered.
There is no Filter or TakeWhile.

# Length Guarantees

Go generics cannot carry a number in a type, so the length is a field rather
than part of the type. Mismatches that a stronger type system would reject at
compile time, such as zipping sequences of different lengths, are detected
when the combinator is built and reported by panicking with [ErrLengthMismatch].

# Construction

[FromSlice], [FromRefs], [Repeat] and [Generate] always produce exactly the
number of elements they declare. [Unchecked] and [UncheckedBidi] trust the
caller's claim. If such a source runs dry before its declared length the
consumer panics with [ErrContractViolation]; surplus elements are never pulled.

# Reversal

[Seq.Rev] needs a source that can be walked from the back. Slices, repetitions
and generated sequences support it, and every combinator keeps that ability
when all of its inputs have it. See [Seq.Reversible].
*/
package fixed
