// SPDX-License-Identifier: MIT
package generic

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/dynarray/scalar"
)

// ExportInts resizes dest to src.Size() and writes every valid element of src
// into it, converted to int. Values that do not fit in int wrap as Go
// conversions do.
// Returns ErrNilArray if either argument is nil.
// Complexity: O(Size).
func ExportInts[T constraints.Integer](src *Array[T], dest *scalar.IntArray) error {
	if src == nil || dest == nil {
		return ErrNilArray
	}
	if err := dest.SetSize(src.size); err != nil {
		return err
	}
	out := dest.Data()
	for i := 0; i < src.size; i++ {
		out[i] = int(src.buf[i])
	}

	return nil
}
