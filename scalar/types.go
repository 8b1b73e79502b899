// SPDX-License-Identifier: MIT
package scalar

import "golang.org/x/exp/constraints"

// Number is the set of element types an Array can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Array is a growable sequence of T.
//
// buf is the backing store and len(buf) is the capacity; size counts the
// valid elements, 0 ≤ size ≤ len(buf). The zero value is an empty array
// ready for use.
type Array[T Number] struct {
	buf  []T
	size int
}

// IntArray is a growable sequence of int.
type IntArray = Array[int]

// DoubleArray is a growable sequence of float64.
type DoubleArray = Array[float64]
