// Copyright 2020 Aleksandr Demakin. All rights reserved.

package efloat

import (
	mu "github.com/avdva/efloat/internal/mathutil"
)

// Distance returns the number of representable values between x and y,
// so that the distance between a value and its nearest neighbor is 1.
//	- if x or y is a NaN, MaxDistance is returned.
//	- two infinities of the same sign are 0 apart,
//	  an infinity and any other value are MaxDistance apart.
//	- +0 and -0 are 0 apart.
// Distance(x, y) == Distance(y, x) for any x and y.
func (c *Codec[F, U]) Distance(x, y F) U {
	xNeg, xExp, xSig := c.split(c.Bits(x))
	yNeg, yExp, ySig := c.split(c.Bits(y))
	xc, yc := c.classify(xExp, xSig), c.classify(yExp, ySig)
	switch {
	case xc == NaN || yc == NaN:
		return c.MaxDistance()
	case xc == Inf || yc == Inf:
		if xc == yc && xNeg == yNeg {
			return 0
		}
		return c.MaxDistance()
	case x == y:
		return 0
	}
	// the bits of non-negative numbers grow with their magnitude.
	xu, yu := c.Bits(x)&^c.signMask, c.Bits(y)&^c.signMask
	if xNeg == yNeg {
		return mu.AbsDiff(xu, yu)
	}
	return xu + yu
}
