// SPDX-License-Identifier: MIT
package generic

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange indicates an index or range outside the valid bounds.
	ErrIndexOutOfRange = errors.New("generic: index out of range")

	// ErrNoSuchElement indicates a cursor has no element in the requested direction.
	ErrNoSuchElement = errors.New("generic: no such element")

	// ErrNilArray indicates a nil destination array.
	ErrNilArray = errors.New("generic: nil array")
)

func arrayErrorf(method string, arg int, err error) error {
	return fmt.Errorf("Array.%s(%d): %w", method, arg, err)
}

func rangeErrorf(method string, from, to int, err error) error {
	return fmt.Errorf("Array.%s(%d,%d): %w", method, from, to, err)
}
