// SPDX-License-Identifier: MIT
package generic

import "fmt"

// Cursor is a bidirectional position over an index range [begin, end) of an Array.
// pos is the gap index, begin ≤ pos ≤ end.
type Cursor[T comparable] struct {
	a          *Array[T]
	begin, end int
	pos        int
}

// Cursor returns a cursor over [0, Size). It never fails: an empty array
// yields a cursor with nothing in either direction.
func (a *Array[T]) Cursor() *Cursor[T] {
	return &Cursor[T]{a: a, begin: 0, end: a.size, pos: 0}
}

// CursorRange returns a cursor over [begin, end).
//
// Valid ranges satisfy 0 ≤ begin ≤ end ≤ Capacity, with begin < Size unless
// the range is empty and begin == Size. end may reach past Size into slack
// slots; those reads see whatever the slot holds.
// Returns ErrIndexOutOfRange otherwise.
func (a *Array[T]) CursorRange(begin, end int) (*Cursor[T], error) {
	if begin < 0 || end < begin || end > len(a.buf) {
		return nil, rangeErrorf("CursorRange", begin, end, ErrIndexOutOfRange)
	}
	if begin >= a.size && !(begin == end && begin == a.size) {
		return nil, rangeErrorf("CursorRange", begin, end, ErrIndexOutOfRange)
	}

	return &Cursor[T]{a: a, begin: begin, end: end, pos: begin}, nil
}

// HasNext reports whether Next would return an element.
func (c *Cursor[T]) HasNext() bool {
	return c.pos < c.end
}

// Next returns the element after the cursor and advances past it.
// Returns ErrNoSuchElement at the end of the range.
func (c *Cursor[T]) Next() (T, error) {
	if !c.HasNext() {
		var zero T
		return zero, fmt.Errorf("Cursor.Next at %d: %w", c.pos, ErrNoSuchElement)
	}
	v := c.a.buf[c.pos]
	c.pos++

	return v, nil
}

// NextIndex returns the index Next would read, or end when exhausted.
func (c *Cursor[T]) NextIndex() int {
	return c.pos
}

// HasPrevious reports whether Previous would return an element.
func (c *Cursor[T]) HasPrevious() bool {
	return c.pos > c.begin
}

// Previous steps back over the element before the cursor and returns it.
// Returns ErrNoSuchElement at the start of the range.
func (c *Cursor[T]) Previous() (T, error) {
	if !c.HasPrevious() {
		var zero T
		return zero, fmt.Errorf("Cursor.Previous at %d: %w", c.pos, ErrNoSuchElement)
	}
	c.pos--

	return c.a.buf[c.pos], nil
}

// PreviousIndex returns the index Previous would read, or begin-1 when at the start.
func (c *Cursor[T]) PreviousIndex() int {
	return c.pos - 1
}
