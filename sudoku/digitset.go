package sudoku

import "math/bits"

// digitSetSize is the bitset cardinality: digits 1..9 plus the unused 0 slot.
const digitSetSize = 10

// playableMask has bits 1..9 set.
const playableMask uint16 = (1<<digitSetSize - 1) &^ 1

// DigitSet is a set of sudoku digits backed by a 10-bit mask. Index 0 exists
// but is never a playable digit; Complement leaves it clear.
type DigitSet uint16

// Insert adds a digit to the set. Panics on digits outside 0..9 — an index
// out of range here is a bug, not a runtime condition.
func (s *DigitSet) Insert(digit uint8) {
	if digit >= digitSetSize {
		panic("sudoku: digit out of DigitSet range")
	}
	*s |= 1 << digit
}

// Contains reports whether digit is in the set. Panics on digits outside
// 0..9 for the same reason Insert does.
func (s DigitSet) Contains(digit uint8) bool {
	if digit >= digitSetSize {
		panic("sudoku: digit out of DigitSet range")
	}
	return s&(1<<digit) != 0
}

// Complement returns the set of playable digits 1..9 not in s.
func (s DigitSet) Complement() DigitSet {
	return DigitSet(^uint16(s) & playableMask)
}

// Intersect returns the digits present in both sets.
func (s DigitSet) Intersect(other DigitSet) DigitSet {
	return s & other
}

// Len returns the number of digits in the set (including 0 if inserted).
func (s DigitSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

// Digits returns the members in ascending order. The walk extracts one set
// bit per step via trailing-zeros, so it is O(members).
func (s DigitSet) Digits() []uint8 {
	out := make([]uint8, 0, s.Len())
	for mask := uint16(s); mask != 0; mask &= mask - 1 {
		out = append(out, uint8(bits.TrailingZeros16(mask)))
	}
	return out
}
