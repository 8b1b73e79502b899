// SPDX-License-Identifier: MIT
package scalar

import (
	"iter"

	"github.com/katalvlaran/dynarray/internal/growth"
)

// New returns an empty Array with a zero-filled backing store of the given capacity.
// Returns ErrIndexOutOfRange if capacity is negative.
// Complexity: O(capacity).
func New[T Number](capacity int) (*Array[T], error) {
	if capacity < 0 {
		return nil, arrayErrorf("New", capacity, ErrIndexOutOfRange)
	}

	return &Array[T]{buf: make([]T, capacity)}, nil
}

// NewInt returns an empty IntArray of the given capacity.
func NewInt(capacity int) (*IntArray, error) { return New[int](capacity) }

// NewDouble returns an empty DoubleArray of the given capacity.
func NewDouble(capacity int) (*DoubleArray, error) { return New[float64](capacity) }

// FromSlice wraps data without copying. Size and capacity both equal len(data).
// Writes through the Array are visible in data until the first reallocation.
func FromSlice[T Number](data []T) *Array[T] {
	return &Array[T]{buf: data, size: len(data)}
}

// Capacity returns the length of the backing store.
func (a *Array[T]) Capacity() int {
	return len(a.buf)
}

// Size returns the number of valid elements.
func (a *Array[T]) Size() int {
	return a.size
}

// SetSize sets the number of valid elements to n, growing the backing store
// to exactly n when n exceeds the capacity. Newly exposed slots are not
// cleared: they hold whatever the store held before (zero after a reallocation).
// Returns ErrIndexOutOfRange if n is negative.
func (a *Array[T]) SetSize(n int) error {
	if n < 0 {
		return arrayErrorf("SetSize", n, ErrIndexOutOfRange)
	}
	a.EnsureCapacity(n)
	a.size = n

	return nil
}

// EnsureCapacity reallocates the backing store to exactly n slots if n is
// larger than the current capacity. The whole old store, slack included, is
// copied into the low end of the new one. Smaller n is a no-op.
// Complexity: O(n) on reallocation, O(1) otherwise.
func (a *Array[T]) EnsureCapacity(n int) {
	if n <= len(a.buf) {
		return
	}
	grown := make([]T, n)
	copy(grown, a.buf)
	a.buf = grown
}

// Append writes v at index Size and increments Size, growing the store to
// max(capacity*3/2, 16) first when it is full.
// Complexity: O(1) amortized.
func (a *Array[T]) Append(v T) {
	if a.size == len(a.buf) {
		a.EnsureCapacity(growth.Next(len(a.buf)))
	}
	a.buf[a.size] = v
	a.size++
}

// Get returns the element at index.
// Returns ErrIndexOutOfRange unless 0 ≤ index < Size.
func (a *Array[T]) Get(index int) (T, error) {
	if index < 0 || index >= a.size {
		var zero T
		return zero, arrayErrorf("Get", index, ErrIndexOutOfRange)
	}

	return a.buf[index], nil
}

// Set overwrites the element at index with v.
// Returns ErrIndexOutOfRange unless 0 ≤ index < Size.
func (a *Array[T]) Set(index int, v T) error {
	if index < 0 || index >= a.size {
		return arrayErrorf("Set", index, ErrIndexOutOfRange)
	}
	a.buf[index] = v

	return nil
}

// CopyTo sets dest's size to a's size, growing dest if needed, and copies the
// valid elements of a into dest starting at index 0. Slots of dest beyond
// Size are left untouched.
// Returns ErrNilArray if dest is nil.
// Complexity: O(Size).
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

// Data returns the raw backing store; len(Data()) == Capacity().
// Indexing it is unchecked against Size. The slice is invalidated by the next
// reallocation (EnsureCapacity, a growing SetSize, or a full Append).
func (a *Array[T]) Data() []T {
	return a.buf
}

// Values returns the valid elements [0, Size) as a view sharing storage with a.
func (a *Array[T]) Values() []T {
	return a.buf[:a.size]
}

// All yields (index, value) pairs over [0, Size) in order.
// The size bound is read on every step, so appends made during the loop are visited.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.buf[i]) {
				return
			}
		}
	}
}
