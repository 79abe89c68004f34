// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package render formats the fields of binary floating-point numbers
// as expressions, exact decimals and bit strings.
package render

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/constraints"

	"github.com/avdva/efloat"
	mu "github.com/avdva/efloat/internal/mathutil"
)

// ErrNotFinite is returned by Decimal for infinities and NaNs.
var ErrNotFinite = errors.New("value is not finite")

// Format describes the layout of a binary format.
// It is implemented by *efloat.Codec.
type Format interface {
	Width() int
	ExponentBits() int
	SignificandBits() int
	ExpInfNaN() int
}

var manyZeros = []byte(strings.Repeat("0", 64))

// Expression returns the value of fields as an arithmetic expression:
//	(sign * (2^exponent) * (significand / (2^significand_bits)))
func Expression[U constraints.Unsigned](format Format, fields efloat.Fields[U]) string {
	var b strings.Builder
	_ = WriteExpression(&b, format, fields)
	return b.String()
}

// WriteExpression writes the expression returned by Expression to w.
func WriteExpression[U constraints.Unsigned](w io.Writer, format Format, fields efloat.Fields[U]) error {
	_, err := fmt.Fprintf(w, "(%d * (2^%d) * (%d / (2^%d)))",
		fields.Sign, fields.Exponent, uint64(fields.Significand), format.SignificandBits())
	return err
}

// Decimal returns the exact value of fields.
// Both normal and subnormal significands give exact results,
// as the significand of a subnormal number is already doubled.
// Zeros lose their sign.
func Decimal[U constraints.Unsigned](format Format, fields efloat.Fields[U]) (decimal.Decimal, error) {
	if int(fields.Exponent) >= format.ExpInfNaN() {
		return decimal.Zero, fmt.Errorf("%w: exponent %d", ErrNotFinite, fields.Exponent)
	}
	sig := new(big.Int).SetUint64(uint64(fields.Significand))
	var d decimal.Decimal
	if n := int(fields.Exponent) - format.SignificandBits(); n >= 0 {
		d = decimal.NewFromBigInt(sig.Lsh(sig, uint(n)), 0)
	} else {
		// sig / 2^k == sig * 5^k / 10^k
		pow := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-n)), nil)
		d = decimal.NewFromBigInt(sig.Mul(sig, pow), int32(n))
	}
	if fields.IsNeg() {
		d = d.Neg()
	}
	return d, nil
}

// Binary returns 'width' least significant bits of u as a string of zeros and ones.
// If width <= 0, the minimal number of digits is used. Widths over 64 are treated as 64.
func Binary(u uint64, width int) string {
	var b strings.Builder
	writeBinary(&b, u, width)
	return b.String()
}

func writeBinary(b *strings.Builder, u uint64, width int) {
	if width <= 0 {
		width = mu.BinaryDigits(u)
	}
	width = mu.ClampInt(width, 1, 64)
	digits := strconv.FormatUint(u&mu.LowMask[uint64](uint(width)), 2)
	b.Write(manyZeros[:width-len(digits)])
	b.WriteString(digits)
}

// Groups returns the sign, exponent and significand bits of u as binary strings.
func Groups(format Format, u uint64) (sign, exp, sig string) {
	all := Binary(u, format.Width())
	return all[:1], all[1 : 1+format.ExponentBits()], all[1+format.ExponentBits():]
}

// Layout returns the bits of u grouped into fields, like
//	0 10000000 00000000000000000000000
func Layout(format Format, u uint64) string {
	sign, exp, sig := Groups(format, u)
	return sign + " " + exp + " " + sig
}
