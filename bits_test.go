// Copyright 2020 Aleksandr Demakin. All rights reserved.

package efloat

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBits(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint64(0x4000000000000000), Binary64.Bits(2))
	a.Equal(uint64(0x8000000000000000), Binary64.Bits(math.Copysign(0, -1)))
	a.Equal(uint32(0x3F800000), Binary32.Bits(1))
	a.Equal(uint32(0xFF800000), Binary32.Bits(float32(math.Inf(-1))))
	// signaling NaN keeps its payload.
	a.Equal(uint64(0x7FF0000000000001), Binary64.Bits(Binary64.FromBits(0x7FF0000000000001)))
	a.Equal(uint32(0x7F800001), Binary32.Bits(Binary32.FromBits(0x7F800001)))
	a.True(math.IsNaN(Binary64.FromBits(0xFFF8000000000000)))
}

func TestBitsAgreement(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(5))
	for i := 0; i < 10000; i++ {
		u := rnd.Uint64()
		f := math.Float64frombits(u)
		a.Equal(math.Float64bits(f), Binary64.Bits(f))
		if !math.IsNaN(f) {
			a.Equal(f, Binary64.FromBits(u))
		}
		u32 := rnd.Uint32()
		f32 := math.Float32frombits(u32)
		a.Equal(math.Float32bits(f32), Binary32.Bits(f32))
	}
}

func TestSignedBits(t *testing.T) {
	a := assert.New(t)
	a.Equal(int32(0x3F800000), Float32ToInt32Bits(1))
	a.Equal(int32(-0x80000000), Float32ToInt32Bits(float32(math.Copysign(0, -1))))
	a.Equal(int32(-0x40000000), Float32ToInt32Bits(-2))
	a.Equal(int64(0x7FF0000000000000), Float64ToInt64Bits(math.Inf(1)))
	a.Equal(int64(-0x4010000000000000), Float64ToInt64Bits(-1))
	a.Equal(float32(-2), Int32BitsToFloat32(-0x40000000))
	a.Equal(-1.0, Int64BitsToFloat64(-0x4010000000000000))
	for _, f := range []float64{0, 1, -1.5, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(-1)} {
		a.Equal(f, Int64BitsToFloat64(Float64ToInt64Bits(f)))
		a.Equal(float32(f), Int32BitsToFloat32(Float32ToInt32Bits(float32(f))))
	}
}
