/*
Package seqs provides small building blocks for working with Go 1.23+ iterators (iter.Seq).

The helpers are lazy and pull nothing from their source until the result is ranged over.
They make no assumption about how many elements a sequence holds, which makes them the
plumbing underneath the [fixediter/fixed] package where the length is tracked separately.

  - **Functional Transformations**: [Map], [Reduce], [FlatMap], [Zip], [Enumerate], [Peek].
  - **Flow Control**: [Take], [Skip], [StepBy], [Concat].
  - **Sources**: [Range], [Repeat], [Forever], [Backward], [RandomInts].
  - **Sinks**: [Count], [Sum].

# Early Termination

Every helper honours the yield protocol: when the consumer stops (yield returns false),
iteration stops immediately and no further elements are requested upstream.

	for v := range seqs.Take(seqs.Forever(1), 3) {
		fmt.Println(v)
	}
*/
package seqs
