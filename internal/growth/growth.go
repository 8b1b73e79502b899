// SPDX-License-Identifier: MIT
// Package growth holds the capacity growth law shared by every container
// in the module.
package growth

// MinCapacity is the smallest capacity an append-triggered growth produces.
const MinCapacity = 16

// Next returns the capacity to grow to when an append finds the store full:
// max(capacity*3/2, MinCapacity), with integer truncation on the multiply.
// Complexity: O(1).
func Next(capacity int) int {
	next := capacity * 3 / 2
	if next < MinCapacity {
		return MinCapacity
	}

	return next
}
