// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package efloat decomposes IEEE-754 binary floating-point numbers into
// sign, exponent and significand fields, and builds numbers back from fields.
//
// The bit layout of the two supported formats:
//   binary32  1 sign [31], 8 exponent [30-23], 23 significand [22-00]
//             SEEEEEEE EMMMMMMM MMMMMMMM MMMMMMMM
//   binary64  1 sign [63], 11 exponent [62-52], 52 significand [51-00]
//             SEEEEEEE EEEEMMMM MMMMMMMM MMMMMMMM MMMMMMMM MMMMMMMM MMMMMMMM MMMMMMMM
//
// The exponent of Fields is unbiased. Zero and subnormal numbers have the
// exponent ExpMin (-127 or -1023), infinities and NaNs have ExpInfNaN (128 or 1024).
// The significand of Fields is denormalized: the implicit leading bit is
// set for every exponent except ExpMin, where the stored bits are doubled instead.
package efloat

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	mu "github.com/avdva/efloat/internal/mathutil"
)

var (
	// ErrExponentRange is reported by Recompose for an exponent outside [ExpMin, ExpInfNaN].
	ErrExponentRange = errors.New("exponent out of range")
	// ErrSignificandRange is reported by Recompose for a significand,
	// which has bits the significand field cannot hold.
	ErrSignificandRange = errors.New("significand out of range")
)

var (
	// Binary32 is the codec for float32 values.
	Binary32 = mustCodec[float32, uint32](8, 23)
	// Binary64 is the codec for float64 values.
	Binary64 = mustCodec[float64, uint64](11, 52)
)

// Codec converts floating-point values of type F to and from Fields.
// F and U must have the same size.
// A Codec is immutable and safe for concurrent use.
type Codec[F constraints.Float, U constraints.Unsigned] struct {
	width   uint
	expBits uint
	sigBits uint
	bias    int

	signMask    U
	expMask     U
	sigMask     U
	implicitBit U
}

// NewCodec returns a codec for a binary format with given exponent and significand widths.
// Returns an error, if the layout does not fill F, or F and U differ in size,
// or the host does not store floating-point numbers of type F in this layout.
func NewCodec[F constraints.Float, U constraints.Unsigned](expBits, sigBits uint) (*Codec[F, U], error) {
	fw, uw := mu.SizeInBits[F](), mu.SizeInBits[U]()
	if fw != uw {
		return nil, fmt.Errorf("float type has %d bits, bit pattern type has %d", fw, uw)
	}
	if expBits < 2 || sigBits == 0 || 1+expBits+sigBits != uw {
		return nil, fmt.Errorf("bad layout 1+%d+%d for %d bits", expBits, sigBits, uw)
	}
	c := &Codec[F, U]{
		width:       uw,
		expBits:     expBits,
		sigBits:     sigBits,
		bias:        1<<(expBits-1) - 1,
		signMask:    U(1) << (uw - 1),
		expMask:     mu.LowMask[U](expBits) << sigBits,
		sigMask:     mu.LowMask[U](sigBits),
		implicitBit: U(1) << sigBits,
	}
	// 1.0 has the biased zero exponent and an empty significand, -2.0 adds the sign and one to the exponent.
	if one := c.Bits(1); one != U(c.bias)<<sigBits {
		return nil, fmt.Errorf("unexpected encoding of 1.0: %#x", uint64(one))
	}
	if minusTwo := c.Bits(-2); minusTwo != c.signMask|U(c.bias+1)<<sigBits {
		return nil, fmt.Errorf("unexpected encoding of -2.0: %#x", uint64(minusTwo))
	}
	return c, nil
}

func mustCodec[F constraints.Float, U constraints.Unsigned](expBits, sigBits uint) *Codec[F, U] {
	c, err := NewCodec[F, U](expBits, sigBits)
	if err != nil {
		panic("efloat: " + err.Error())
	}
	return c
}

// Width returns the number of bits in the format.
func (c *Codec[F, U]) Width() int {
	return int(c.width)
}

// ExponentBits returns the width of the exponent field.
func (c *Codec[F, U]) ExponentBits() int {
	return int(c.expBits)
}

// SignificandBits returns the width of the stored significand field,
// without the implicit bit.
func (c *Codec[F, U]) SignificandBits() int {
	return int(c.sigBits)
}

// Bias returns the exponent bias.
func (c *Codec[F, U]) Bias() int {
	return c.bias
}

// ExpMin returns the exponent of zeros and subnormal numbers.
func (c *Codec[F, U]) ExpMin() int {
	return -c.bias
}

// ExpMax returns the maximum exponent of a normal number.
func (c *Codec[F, U]) ExpMax() int {
	return c.bias
}

// ExpInfNaN returns the exponent of infinities and NaNs.
func (c *Codec[F, U]) ExpInfNaN() int {
	return c.bias + 1
}

// MaxDistance returns the distance reported for NaNs and unequal infinities.
func (c *Codec[F, U]) MaxDistance() U {
	return ^U(0)
}

// String returns the name of the format, like "binary64".
func (c *Codec[F, U]) String() string {
	return fmt.Sprintf("binary%d", c.width)
}

func (c *Codec[F, U]) maxRawExp() int {
	return 1<<c.expBits - 1
}

// split returns the raw fields of a bit pattern.
func (c *Codec[F, U]) split(u U) (neg bool, rawExp int, rawSig U) {
	return u&c.signMask != 0, int((u & c.expMask) >> c.sigBits), u & c.sigMask
}

func (c *Codec[F, U]) classify(rawExp int, rawSig U) Class {
	switch {
	case rawExp == c.maxRawExp():
		if rawSig != 0 {
			return NaN
		}
		return Inf
	case rawExp == 0 && rawSig == 0:
		return Zero
	case rawExp == 0:
		return Subnormal
	default:
		return Normal
	}
}

// denormalize returns the significand as stored in Fields.
func (c *Codec[F, U]) denormalize(exp int, rawSig U) U {
	if exp == c.ExpMin() {
		return rawSig << 1
	}
	return rawSig | c.implicitBit
}

// Decompose returns the fields and the class of f.
func (c *Codec[F, U]) Decompose(f F) (Fields[U], Class) {
	return c.DecomposeBits(c.Bits(f))
}

// DecomposeBits returns the fields and the class of the value with the bit pattern u.
func (c *Codec[F, U]) DecomposeBits(u U) (Fields[U], Class) {
	neg, rawExp, rawSig := c.split(u)
	exp := rawExp - c.bias
	fields := Fields[U]{
		Sign:        1,
		Exponent:    int16(exp),
		Significand: c.denormalize(exp, rawSig),
	}
	if neg {
		fields.Sign = -1
	}
	return fields, c.classify(rawExp, rawSig)
}

// Classify returns the class of f.
func (c *Codec[F, U]) Classify(f F) Class {
	_, rawExp, rawSig := c.split(c.Bits(f))
	return c.classify(rawExp, rawSig)
}

// Recompose builds a value from fields. It is the inverse of Decompose.
// Any negative sign produces a negative value, zero is treated as positive.
// The implicit bit of the significand is optional for exponents other than ExpMin.
//
// Invalid fields are saturated, and the error reports what was wrong:
//	- an exponent outside [ExpMin, ExpInfNaN] is replaced with ExpInfNaN, see ErrExponentRange.
//	- significand bits, that do not fit the field, are dropped, see ErrSignificandRange.
//	- an odd significand for ExpMin loses its lowest bit, which cannot be stored,
//	  and is reported as ErrSignificandRange as well.
// The resulting value and its class are returned in any case.
func (c *Codec[F, U]) Recompose(fields Fields[U]) (F, Class, error) {
	u, canonical, err := c.join(fields)
	f := c.FromBits(u)
	got, class := c.Decompose(f)
	if err == nil && SelfCheck {
		verify(c.width, canonical, got)
	}
	return f, class, err
}

// join packs fields into a bit pattern.
// canonical is what Decompose is expected to return for valid fields.
func (c *Codec[F, U]) join(fields Fields[U]) (u U, canonical Fields[U], err error) {
	var errs []error
	exp := int(fields.Exponent)
	if exp < c.ExpMin() || exp > c.ExpInfNaN() {
		errs = append(errs, fmt.Errorf("%w: %d is not in [%d, %d]", ErrExponentRange, exp, c.ExpMin(), c.ExpInfNaN()))
		exp = c.ExpInfNaN()
	}
	sig := fields.Significand
	if exp == c.ExpMin() {
		if sig&1 != 0 {
			errs = append(errs, fmt.Errorf("%w: %#x is odd for exponent %d", ErrSignificandRange, uint64(sig), exp))
		}
		sig >>= 1
	} else {
		sig &^= c.implicitBit
	}
	if sig&^c.sigMask != 0 {
		errs = append(errs, fmt.Errorf("%w: %#x has more than %d bits", ErrSignificandRange, uint64(fields.Significand), c.sigBits+1))
		sig &= c.sigMask
	}
	u = U(exp+c.bias)<<c.sigBits | sig
	canonical = Fields[U]{Sign: 1, Exponent: int16(exp), Significand: c.denormalize(exp, sig)}
	if fields.Sign < 0 {
		u |= c.signMask
		canonical.Sign = -1
	}
	return u, canonical, errors.Join(errs...)
}
