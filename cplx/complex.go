// SPDX-License-Identifier: MIT
package cplx

import (
	"fmt"

	"github.com/katalvlaran/dynarray/internal/growth"
)

// Pair is a reusable holder for one (real, imaginary) value.
type Pair struct {
	Re, Im float64
}

// Complex128 returns p in Go's native complex representation.
func (p Pair) Complex128() complex128 {
	return complex(p.Re, p.Im)
}

// ComplexArray is a growable sequence of (re, im) pairs.
// len(re) == len(im) is the capacity at all times. The zero value is ready for use.
type ComplexArray struct {
	re, im []float64
	size   int
}

// New returns an empty ComplexArray with zero-filled buffers of the given capacity.
// Returns ErrIndexOutOfRange if capacity is negative.
func New(capacity int) (*ComplexArray, error) {
	if capacity < 0 {
		return nil, complexErrorf("New", capacity, ErrIndexOutOfRange)
	}

	return &ComplexArray{
		re: make([]float64, capacity),
		im: make([]float64, capacity),
	}, nil
}

// FromSlices wraps re and im without copying; size and capacity equal their length.
// Returns ErrMismatchedLength if len(re) != len(im).
func FromSlices(re, im []float64) (*ComplexArray, error) {
	if len(re) != len(im) {
		return nil, fmt.Errorf("ComplexArray.FromSlices(%d, %d): %w", len(re), len(im), ErrMismatchedLength)
	}

	return &ComplexArray{re: re, im: im, size: len(re)}, nil
}

// Capacity returns the shared length of both backing buffers.
func (a *ComplexArray) Capacity() int {
	return len(a.re)
}

// Size returns the number of valid elements.
func (a *ComplexArray) Size() int {
	return a.size
}

// SetSize sets the number of valid elements, growing both buffers to exactly n
// when needed. Exposed slots are not cleared.
// Returns ErrIndexOutOfRange if n is negative.
func (a *ComplexArray) SetSize(n int) error {
	if n < 0 {
		return complexErrorf("SetSize", n, ErrIndexOutOfRange)
	}
	a.EnsureCapacity(n)
	a.size = n

	return nil
}

// EnsureCapacity reallocates both buffers to exactly n slots if n exceeds the
// capacity, copying each old buffer whole. Smaller n is a no-op.
func (a *ComplexArray) EnsureCapacity(n int) {
	if n <= len(a.re) {
		return
	}
	re := make([]float64, n)
	copy(re, a.re)
	im := make([]float64, n)
	copy(im, a.im)
	a.re, a.im = re, im
}

// Append adds (re, im) at index Size, growing both buffers to
// max(capacity*3/2, 16) when they are full.
func (a *ComplexArray) Append(re, im float64) {
	if a.size == len(a.re) {
		a.EnsureCapacity(growth.Next(len(a.re)))
	}
	a.re[a.size] = re
	a.im[a.size] = im
	a.size++
}

// AppendPair appends p.Re and p.Im.
func (a *ComplexArray) AppendPair(p Pair) {
	a.Append(p.Re, p.Im)
}

// AppendComplex appends the real and imaginary parts of c.
func (a *ComplexArray) AppendComplex(c complex128) {
	a.Append(real(c), imag(c))
}

func (a *ComplexArray) inRange(index int) bool {
	return index >= 0 && index < a.size
}

// Get returns both parts of the element at index.
func (a *ComplexArray) Get(index int) (re, im float64, err error) {
	if !a.inRange(index) {
		return 0, 0, complexErrorf("Get", index, ErrIndexOutOfRange)
	}

	return a.re[index], a.im[index], nil
}

// GetInto writes the element at index into dst without allocating and returns dst.
// Returns ErrNilArray for a nil dst; dst is left unchanged on error.
func (a *ComplexArray) GetInto(index int, dst *Pair) (*Pair, error) {
	if dst == nil {
		return nil, ErrNilArray
	}
	if !a.inRange(index) {
		return dst, complexErrorf("GetInto", index, ErrIndexOutOfRange)
	}
	dst.Re = a.re[index]
	dst.Im = a.im[index]

	return dst, nil
}

// Complex returns the element at index as a complex128.
func (a *ComplexArray) Complex(index int) (complex128, error) {
	if !a.inRange(index) {
		return 0, complexErrorf("Complex", index, ErrIndexOutOfRange)
	}

	return complex(a.re[index], a.im[index]), nil
}

// GetRe returns the real part at index.
func (a *ComplexArray) GetRe(index int) (float64, error) {
	if !a.inRange(index) {
		return 0, complexErrorf("GetRe", index, ErrIndexOutOfRange)
	}

	return a.re[index], nil
}

// GetIm returns the imaginary part at index.
func (a *ComplexArray) GetIm(index int) (float64, error) {
	if !a.inRange(index) {
		return 0, complexErrorf("GetIm", index, ErrIndexOutOfRange)
	}

	return a.im[index], nil
}

// Set overwrites both parts at index. There is no single-part setter.
func (a *ComplexArray) Set(index int, re, im float64) error {
	if !a.inRange(index) {
		return complexErrorf("Set", index, ErrIndexOutOfRange)
	}
	a.re[index] = re
	a.im[index] = im

	return nil
}

// CopyTo resizes dest to Size and copies both buffers over [0, Size) in lockstep.
// Returns ErrNilArray if dest is nil.
func (a *ComplexArray) CopyTo(dest *ComplexArray) error {
	if dest == nil {
		return ErrNilArray
	}
	if err := dest.SetSize(a.size); err != nil {
		return err
	}
	copy(dest.re, a.re[:a.size])
	copy(dest.im, a.im[:a.size])

	return nil
}

// DataRe returns the raw real-part buffer (length == Capacity), unchecked against Size.
func (a *ComplexArray) DataRe() []float64 {
	return a.re
}

// DataIm returns the raw imaginary-part buffer (length == Capacity), unchecked against Size.
func (a *ComplexArray) DataIm() []float64 {
	return a.im
}
