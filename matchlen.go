// SPDX-License-Identifier: MIT

package brolz

import (
	"encoding/binary"
	"math/bits"
)

// matchLen returns the largest n <= limit such that a[:n] == b[:n]. It is
// pure and side-effect-free. a and b must each have at least limit bytes
// available.
//
// Compares 8-byte words at a time: XOR them and use the trailing-zero count
// of the first nonzero XOR to locate the mismatching byte, falling back to
// a byte-at-a-time scan for the remainder.
func matchLen(a, b []byte, limit int) int {
	matched := 0
	for limit-matched >= 8 {
		x := binary.LittleEndian.Uint64(b[matched:]) ^ binary.LittleEndian.Uint64(a[matched:])
		if x != 0 {
			return matched + bits.TrailingZeros64(x)/8
		}
		matched += 8
	}
	for matched < limit && a[matched] == b[matched] {
		matched++
	}
	return matched
}
