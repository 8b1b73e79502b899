// SPDX-License-Identifier: MIT
// Package dynarray is a small family of growable, array-backed sequence
// containers that amortize append cost with 1.5× geometric capacity growth
// (floor 16).
//
// Subpackages:
//
//	scalar/   — Array[T] for integer and floating-point payloads (IntArray, DoubleArray)
//	cplx/     — ComplexArray, real and imaginary parts in two parallel buffers
//	generic/  — Array[T] for any comparable element, with search, SubList and a bidirectional Cursor
//
// The containers are storage primitives only: no arithmetic, sorting or
// search beyond a linear scan. They are not safe for concurrent mutation.
// Every accessor is bounds-checked and reports failures through sentinel
// errors; Data() exposes the raw backing store for unchecked hot loops.
//
//	go get github.com/katalvlaran/dynarray
package dynarray
