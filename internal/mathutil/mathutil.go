// Package mathutil contains bit helpers shared by the codec and the formatters.
package mathutil

import (
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// SizeInBits returns the number of bits in T.
func SizeInBits[T any]() uint {
	var t T
	return uint(unsafe.Sizeof(t)) * 8
}

// LowMask returns a U with the n least significant bits set.
// If n is not less than the width of U, all bits are set.
func LowMask[U constraints.Unsigned](n uint) U {
	if n >= SizeInBits[U]() {
		return ^U(0)
	}
	return U(1)<<n - 1
}

// AbsDiff returns |a-b|.
func AbsDiff[U constraints.Unsigned](a, b U) U {
	if a > b {
		return a - b
	}
	return b - a
}

// BinaryDigits returns the number of binary digits needed to represent 'value'.
// Zero needs no digits.
func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// ClampInt returns v limited to the [lo, hi] range.
func ClampInt(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
