// SPDX-License-Identifier: MIT
package scalar

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange indicates an index, size or capacity outside the valid bounds.
	ErrIndexOutOfRange = errors.New("scalar: index out of range")

	// ErrNilArray indicates that a nil *Array was passed where a destination is required.
	ErrNilArray = errors.New("scalar: nil array")
)

// arrayErrorf wraps err with the Array method and the offending argument.
func arrayErrorf(method string, arg int, err error) error {
	return fmt.Errorf("Array.%s(%d): %w", method, arg, err)
}
