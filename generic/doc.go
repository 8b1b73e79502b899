// SPDX-License-Identifier: MIT
// Package generic provides Array[T], a growable sequence of arbitrary
// comparable elements, together with a bidirectional Cursor.
//
// What:
//
//   - The scalar contract: Capacity, Size, SetSize, EnsureCapacity, Append,
//     checked Get/Set, CopyTo, raw Data access.
//   - Sequence queries by linear scan: IndexOf, LastIndexOf, Contains,
//     ContainsAll, IsEmpty, and SubList (an independent copy).
//   - Traversal: Cursor (hasNext/next/previous over an index range) and the
//     range-over-func iterators All and Backward.
//   - ExportInts copies integer-valued payloads into a scalar.IntArray.
//
// Cursor:
//
//	A Cursor sits in the gap before an element, like a list iterator:
//
//	    begin                     end
//	      | e0 | e1 | ... | e(n-1) |
//	      ^ position starts here
//
//	Next returns the element after the gap and moves right; Previous moves
//	left and returns the element it crosses. HasPrevious is position > begin,
//	so a full forward pass reversed with Previous revisits every element.
//
//	The cursor is a live view with no invalidation check. It reads the
//	array's current store on every step and never extends its end bound.
//	Shrinking Size below the cursor position is not detected: reads return
//	whatever the slot still holds. Mutating the array structurally while a
//	cursor is in use is a contract violation.
//
// Slots beyond Size may keep references to earlier occupants after a shrink;
// they are released only when EnsureCapacity reallocates the store.
//
// Errors:
//
//   - ErrIndexOutOfRange: invalid index, size, capacity, sub-list or cursor range.
//   - ErrNoSuchElement:   Next or Previous called with nothing left in that direction.
//   - ErrNilArray:        nil destination.
package generic
