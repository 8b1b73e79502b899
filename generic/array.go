// SPDX-License-Identifier: MIT
package generic

import (
	"iter"

	"github.com/katalvlaran/dynarray/internal/growth"
)

// NotFound is returned by IndexOf and LastIndexOf when the element is absent.
const NotFound = -1

// Array is a growable sequence of T.
// len(buf) is the capacity and size counts the valid elements.
// The zero value is an empty array ready for use.
type Array[T comparable] struct {
	buf  []T
	size int
}

// New returns an empty Array with the given capacity.
// Returns ErrIndexOutOfRange if capacity is negative.
func New[T comparable](capacity int) (*Array[T], error) {
	if capacity < 0 {
		return nil, arrayErrorf("New", capacity, ErrIndexOutOfRange)
	}

	return &Array[T]{buf: make([]T, capacity)}, nil
}

// FromSlice wraps data without copying; size and capacity equal len(data).
func FromSlice[T comparable](data []T) *Array[T] {
	return &Array[T]{buf: data, size: len(data)}
}

// Capacity returns the length of the backing store.
func (a *Array[T]) Capacity() int { return len(a.buf) }

// Size returns the number of valid elements.
func (a *Array[T]) Size() int { return a.size }

// IsEmpty reports whether Size is zero.
func (a *Array[T]) IsEmpty() bool { return a.size == 0 }

// SetSize sets the number of valid elements, growing the store to exactly n
// when needed. Exposed slots are not cleared.
func (a *Array[T]) SetSize(n int) error {
	if n < 0 {
		return arrayErrorf("SetSize", n, ErrIndexOutOfRange)
	}
	a.EnsureCapacity(n)
	a.size = n

	return nil
}

// EnsureCapacity reallocates the store to exactly n slots if n exceeds the
// capacity, copying the whole old store. The old store is dropped as a unit.
func (a *Array[T]) EnsureCapacity(n int) {
	if n <= len(a.buf) {
		return
	}
	grown := make([]T, n)
	copy(grown, a.buf)
	a.buf = grown
}

// Append writes v at index Size, growing the store to max(capacity*3/2, 16) when full.
func (a *Array[T]) Append(v T) {
	if a.size == len(a.buf) {
		a.EnsureCapacity(growth.Next(len(a.buf)))
	}
	a.buf[a.size] = v
	a.size++
}

// Get returns the element at index.
func (a *Array[T]) Get(index int) (T, error) {
	if index < 0 || index >= a.size {
		var zero T
		return zero, arrayErrorf("Get", index, ErrIndexOutOfRange)
	}

	return a.buf[index], nil
}

// Set replaces the element at index with v and returns the previous value.
func (a *Array[T]) Set(index int, v T) (T, error) {
	if index < 0 || index >= a.size {
		var zero T
		return zero, arrayErrorf("Set", index, ErrIndexOutOfRange)
	}
	prev := a.buf[index]
	a.buf[index] = v

	return prev, nil
}

// CopyTo resizes dest to Size and copies [0, Size) into it.
func (a *Array[T]) CopyTo(dest *Array[T]) error {
	if dest == nil {
		return ErrNilArray
	}
	if err := dest.SetSize(a.size); err != nil {
		return err
	}
	copy(dest.buf, a.buf[:a.size])

	return nil
}

// Data returns the raw backing store; len(Data()) == Capacity(). Unchecked against Size.
func (a *Array[T]) Data() []T { return a.buf }

// Values returns [0, Size) as a view sharing storage with a.
func (a *Array[T]) Values() []T { return a.buf[:a.size] }

// IndexOf returns the first index i < Size with element == v, or NotFound.
// Complexity: O(Size).
func (a *Array[T]) IndexOf(v T) int {
	for i := 0; i < a.size; i++ {
		if a.buf[i] == v {
			return i
		}
	}

	return NotFound
}

// LastIndexOf returns the last index i < Size with element == v, or NotFound.
func (a *Array[T]) LastIndexOf(v T) int {
	for i := a.size - 1; i >= 0; i-- {
		if a.buf[i] == v {
			return i
		}
	}

	return NotFound
}

// Contains reports whether v occurs in [0, Size).
func (a *Array[T]) Contains(v T) bool {
	return a.IndexOf(v) != NotFound
}

// ContainsAll reports whether every element of elems is contained in a.
// An empty elems is trivially contained.
// Complexity: O(len(elems)·Size).
func (a *Array[T]) ContainsAll(elems []T) bool {
	for _, v := range elems {
		if !a.Contains(v) {
			return false
		}
	}

	return true
}

// SubList returns a newly allocated copy of the elements in [from, to).
// Returns ErrIndexOutOfRange unless 0 ≤ from ≤ to ≤ Size.
func (a *Array[T]) SubList(from, to int) ([]T, error) {
	if from < 0 || to > a.size || from > to {
		return nil, rangeErrorf("SubList", from, to, ErrIndexOutOfRange)
	}
	out := make([]T, to-from)
	copy(out, a.buf[from:to])

	return out, nil
}

// All yields (index, value) over [0, Size) front to back.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.buf[i]) {
				return
			}
		}
	}
}

// Backward yields (index, value) over [0, Size) back to front.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := a.size - 1; i >= 0; i-- {
			if !yield(i, a.buf[i]) {
				return
			}
		}
	}
}
