// SPDX-License-Identifier: MIT
package cplx

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange indicates an index, size or capacity outside the valid bounds.
	ErrIndexOutOfRange = errors.New("cplx: index out of range")

	// ErrMismatchedLength indicates real and imaginary buffers of different length.
	ErrMismatchedLength = errors.New("cplx: real and imaginary buffers differ in length")

	// ErrNilArray indicates a nil destination (*ComplexArray or *Pair).
	ErrNilArray = errors.New("cplx: nil destination")
)

func complexErrorf(method string, arg int, err error) error {
	return fmt.Errorf("ComplexArray.%s(%d): %w", method, arg, err)
}
