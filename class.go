// Copyright 2020 Aleksandr Demakin. All rights reserved.

package efloat

import "fmt"

// Class is a floating-point classification.
// Numeric values follow the glibc FP_* constants.
type Class uint8

const (
	// NaN is a quiet or signaling not-a-number of either sign.
	NaN Class = iota
	// Inf is a positive or negative infinity.
	Inf
	// Zero is +0 or -0.
	Zero
	// Subnormal is a non-zero value with the minimum raw exponent.
	Subnormal
	// Normal is any other finite value.
	Normal
)

var classNames = [...]string{
	NaN:       "nan",
	Inf:       "inf",
	Zero:      "zero",
	Subnormal: "subnormal",
	Normal:    "normal",
}

// IsFinite returns true for zero, subnormal and normal values.
func (c Class) IsFinite() bool {
	return c == Zero || c == Subnormal || c == Normal
}

// String returns the lower case name of the class.
func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Class) MarshalText() ([]byte, error) {
	if int(c) >= len(classNames) {
		return nil, fmt.Errorf("unknown class %d", uint8(c))
	}
	return []byte(classNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Class) UnmarshalText(data []byte) error {
	for i, name := range classNames {
		if name == string(data) {
			*c = Class(i)
			return nil
		}
	}
	return fmt.Errorf("unknown class %q", data)
}
