// Copyright 2020 Aleksandr Demakin. All rights reserved.

package render

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"testing"

	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdva/efloat"
)

func TestExpression(t *testing.T) {
	a := assert.New(t)
	fields, _ := efloat.Binary64.Decompose(2)
	a.Equal("(1 * (2^1) * (4503599627370496 / (2^52)))", Expression(efloat.Binary64, fields))
	fields32, _ := efloat.Binary32.Decompose(2)
	a.Equal("(1 * (2^1) * (8388608 / (2^23)))", Expression(efloat.Binary32, fields32))
	fields32, _ = efloat.Binary32.Decompose(float32(math.Copysign(0, -1)))
	a.Equal("(-1 * (2^-127) * (0 / (2^23)))", Expression(efloat.Binary32, fields32))
	fields32, _ = efloat.Binary32.Decompose(-math.SmallestNonzeroFloat32)
	a.Equal("(-1 * (2^-127) * (2 / (2^23)))", Expression(efloat.Binary32, fields32))

	var b strings.Builder
	a.NoError(WriteExpression(&b, efloat.Binary64, efloat.Fields64{Sign: 1, Exponent: 1024}))
	a.Equal("(1 * (2^1024) * (0 / (2^52)))", b.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestWriteExpressionError(t *testing.T) {
	fields, _ := efloat.Binary64.Decompose(1)
	assert.EqualError(t, WriteExpression(failingWriter{}, efloat.Binary64, fields), "closed")
}

func TestDecimal(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f   float64
		res string
	}{
		{2, "2"},
		{-1.5, "-1.5"},
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{0.1, "0.1000000000000000055511151231257827021181583404541015625"},
		{1e23, "99999999999999991611392"},
		{-0x1p-10, "-0.0009765625"},
		{0x1p60, "1152921504606846976"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			fields, _ := efloat.Binary64.Decompose(test.f)
			d, err := Decimal(efloat.Binary64, fields)
			if a.NoError(err) {
				a.Equal(test.res, d.String())
			}
		})
	}
}

func TestDecimal32(t *testing.T) {
	r := require.New(t)
	fields, _ := efloat.Binary32.Decompose(math.MaxFloat32)
	d, err := Decimal(efloat.Binary32, fields)
	r.NoError(err)
	r.Equal("340282346638528859811704183484516925440", d.String())

	fields, _ = efloat.Binary32.Decompose(math.SmallestNonzeroFloat32)
	d, err = Decimal(efloat.Binary32, fields)
	r.NoError(err)
	f, _ := d.Float64()
	r.Equal(float64(math.SmallestNonzeroFloat32), f)
}

func TestDecimalNotFinite(t *testing.T) {
	a := assert.New(t)
	for _, f := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		fields, _ := efloat.Binary64.Decompose(f)
		_, err := Decimal(efloat.Binary64, fields)
		a.ErrorIs(err, ErrNotFinite)
	}
	fields, _ := efloat.Binary32.Decompose(float32(math.Inf(1)))
	_, err := Decimal(efloat.Binary32, fields)
	a.EqualError(err, "value is not finite: exponent 128")
}

func TestDecimalExact(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		x := math.Float64frombits(rnd.Uint64())
		fields, class := efloat.Binary64.Decompose(x)
		if !class.IsFinite() {
			continue
		}
		d, err := Decimal(efloat.Binary64, fields)
		if !a.NoError(err) {
			continue
		}
		f, _ := d.Float64()
		a.Equal(math.Abs(x), math.Abs(f), "%v", x)
		a.Equal(x < 0, d.Sign() < 0, "%v", x)
	}
	for _, x := range []float64{math.SmallestNonzeroFloat64, 0x1p-1022, math.Nextafter(0x1p-1022, 0), math.MaxFloat64} {
		fields, _ := efloat.Binary64.Decompose(x)
		d, err := Decimal(efloat.Binary64, fields)
		a.NoError(err)
		f, _ := d.Float64()
		a.Equal(x, f)
	}
}

func TestBinary(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		u     uint64
		width int
		res   string
	}{
		{0, 0, "0"},
		{0, -5, "0"},
		{5, 0, "101"},
		{5, 8, "00000101"},
		{0xFF, 4, "1111"},
		{0, 3, "000"},
		{math.MaxUint64, 0, strings.Repeat("1", 64)},
		{1, 100, strings.Repeat("0", 63) + "1"},
		{0x8000000000000000, 64, "1" + strings.Repeat("0", 63)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, Binary(test.u, test.width))
		})
	}
}

func TestLayout(t *testing.T) {
	a := assert.New(t)
	a.Equal("0 10000000 00000000000000000000000", Layout(efloat.Binary32, uint64(efloat.Binary32.Bits(2))))
	a.Equal("1 00000000 00000000000000000000001", Layout(efloat.Binary32, uint64(efloat.Binary32.Bits(-math.SmallestNonzeroFloat32))))
	a.Equal("0 01111111111 "+strings.Repeat("0", 52), Layout(efloat.Binary64, efloat.Binary64.Bits(1)))
	sign, exp, sig := Groups(efloat.Binary64, efloat.Binary64.Bits(math.Inf(-1)))
	a.Equal("1", sign)
	a.Equal("11111111111", exp)
	a.Equal(strings.Repeat("0", 52), sig)
}

func ExampleDecimal() {
	fields, _ := efloat.Binary64.Decompose(0.1)
	fmt.Println(Expression(efloat.Binary64, fields))
	d, err := Decimal(efloat.Binary64, fields)
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	fmt.Println(Layout(efloat.Binary64, efloat.Binary64.Bits(0.1)))

	// Output:
	// (1 * (2^-4) * (7205759403792794 / (2^52)))
	// 0.1000000000000000055511151231257827021181583404541015625
	// 0 01111111011 1001100110011001100110011001100110011001100110011010
}

var benchValues = []float64{0.1, 123456789.9, 1234.9, -0.000123, 1e10}

func BenchmarkDecimal(b *testing.B) {
	var dummy int
	for i := 0; i < b.N; i++ {
		fields, _ := efloat.Binary64.Decompose(benchValues[i%len(benchValues)])
		d, _ := Decimal(efloat.Binary64, fields)
		dummy += len(d.String())
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}

func BenchmarkDecimalFromFloat(b *testing.B) {
	var dummy int
	for i := 0; i < b.N; i++ {
		dummy += len(decimal.NewFromFloat(benchValues[i%len(benchValues)]).String())
	}
	b.ReportMetric(float64(dummy), "dummy_metric")
}

func BenchmarkOtherFixedFromFloat(b *testing.B) {
	var dummy int
	for i := 0; i < b.N; i++ {
		dummy += len(of.NewF(benchValues[i%len(benchValues)]).String())
	}
	b.ReportMetric(float64(dummy), "dummy_metric")
}

func BenchmarkExpression(b *testing.B) {
	fields, _ := efloat.Binary64.Decompose(0.1)
	var sb strings.Builder
	for i := 0; i < b.N; i++ {
		sb.Reset()
		_ = WriteExpression(&sb, efloat.Binary64, fields)
	}
}
