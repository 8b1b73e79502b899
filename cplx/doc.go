// SPDX-License-Identifier: MIT
// Package cplx provides ComplexArray, a growable sequence of complex values
// stored as two parallel float64 buffers (real and imaginary parts).
//
// Both buffers always share the same capacity and size and are reallocated
// and copied together. Index i's parts are written together by Append and
// Set; GetRe and GetIm read one part without touching the other.
//
// GetInto fills a caller-owned Pair so hot loops read elements without
// allocating.
//
// Errors:
//
//   - ErrIndexOutOfRange: negative capacity or size, or index outside [0, Size).
//   - ErrMismatchedLength: FromSlices called with buffers of different length.
//   - ErrNilArray: nil destination or nil Pair.
package cplx
