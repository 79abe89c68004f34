// Copyright 2020 Aleksandr Demakin. All rights reserved.

package efloat

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Fields holds the components of a binary floating-point number:
//	value = Sign * 2^Exponent * (Significand / 2^SignificandBits)
type Fields[U constraints.Unsigned] struct {
	// Sign is 1 or -1.
	Sign int8 `json:"sign"`
	// Exponent is unbiased.
	Exponent int16 `json:"exponent"`
	// Significand has the implicit bit set for normal numbers, infinities and NaNs,
	// and holds twice the stored bits for zeros and subnormal numbers.
	Significand U `json:"significand"`
}

type (
	// Fields32 holds the fields of a float32.
	Fields32 = Fields[uint32]
	// Fields64 holds the fields of a float64.
	Fields64 = Fields[uint64]
)

// IsNeg returns true for a negative sign.
func (f Fields[U]) IsNeg() bool {
	return f.Sign < 0
}

// String returns a human-readable representation of the fields.
func (f Fields[U]) String() string {
	return fmt.Sprintf("sign: %d, exp: %d, mant: %d", f.Sign, f.Exponent, f.Significand)
}

// GoString returns debug string representation.
func (f Fields[U]) GoString() string {
	return fmt.Sprintf("efloat.Fields{Sign: %d, Exponent: %d, Significand: %#x}", f.Sign, f.Exponent, uint64(f.Significand))
}
