// Package streams maps iter.Seq sequences through a fallible.Function and drops
// the elements it fails on.
//
//   - RemoveErrors: lazy, ordered output without the failing elements
//   - SplitErrors: lazy output plus a rejects sequence that may only be read once
//     the output has been drained
//   - Partition: eager single pass into an output slice and a rejects slice
//
// Nothing is cached between traversals: ranging over a result again re-runs fn
// for every element of a restartable input.
package streams
