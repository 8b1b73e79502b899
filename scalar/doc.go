// SPDX-License-Identifier: MIT
// Package scalar provides growable, array-backed sequences of numeric
// scalars with amortized O(1) append.
//
// What:
//
//   - Array[T] owns one contiguous backing store of T. Capacity is the
//     length of that store; Size is the number of valid elements.
//   - IntArray and DoubleArray are the int and float64 instantiations.
//   - Append grows the store to max(capacity*3/2, 16) when it is full.
//
// Contract:
//
//   - Get/Set are bounds-checked against [0, Size) and return
//     ErrIndexOutOfRange instead of panicking.
//   - Data exposes the raw backing store for unchecked hot loops; the caller
//     owns the bounds contract there.
//   - SetSize never clears the slots it exposes. Shrinking then growing again
//     resurrects the old values; callers that grow Size directly must write
//     every new slot themselves.
//   - Arrays are not safe for concurrent mutation; serialize access externally.
//
// Complexity:
//
//   - Append, Get, Set: O(1) amortized.
//   - EnsureCapacity, growth: O(Capacity).
//   - CopyTo: O(Size).
//
// Errors:
//
//   - ErrIndexOutOfRange: negative capacity or size, or index outside [0, Size).
//   - ErrNilArray: nil destination passed to CopyTo.
package scalar
