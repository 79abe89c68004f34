// Copyright 2020 Aleksandr Demakin. All rights reserved.

package efloat

import "unsafe"

// Bits returns the IEEE-754 bit pattern of f.
// The storage is reinterpreted, so NaN payloads are preserved.
func (c *Codec[F, U]) Bits(f F) U {
	return *(*U)(unsafe.Pointer(&f))
}

// FromBits returns the floating-point value with the bit pattern u.
// Every pattern is valid, including signaling NaNs.
func (c *Codec[F, U]) FromBits(u U) F {
	return *(*F)(unsafe.Pointer(&u))
}

// Float32ToInt32Bits returns the bit pattern of f as a signed integer.
func Float32ToInt32Bits(f float32) int32 {
	return *(*int32)(unsafe.Pointer(&f))
}

// Int32BitsToFloat32 is the inverse of Float32ToInt32Bits.
func Int32BitsToFloat32(i int32) float32 {
	return *(*float32)(unsafe.Pointer(&i))
}

// Float64ToInt64Bits returns the bit pattern of f as a signed integer.
func Float64ToInt64Bits(f float64) int64 {
	return *(*int64)(unsafe.Pointer(&f))
}

// Int64BitsToFloat64 is the inverse of Float64ToInt64Bits.
func Int64BitsToFloat64(i int64) float64 {
	return *(*float64)(unsafe.Pointer(&i))
}
