// Copyright 2020 Aleksandr Demakin. All rights reserved.

package efloat

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

var (
	// SelfCheck enables verification of Recompose: a value built from valid fields
	// is decomposed again, and every field, that differs from the input, is logged with Log.
	// Mismatches are never returned to the caller.
	// This variable is not thread-safe, so this should be changed on program start.
	SelfCheck = false

	// Log receives self-check diagnostics.
	// This variable is not thread-safe, so this should be changed on program start.
	Log logrus.FieldLogger = logrus.StandardLogger()
)

// verify compares the fields of a recomposed value with the expected ones.
// Returns true, if they are equal.
func verify[U constraints.Unsigned](width uint, want, got Fields[U]) bool {
	if want == got {
		return true
	}
	entry := Log.WithField("format", width)
	if want.Sign != got.Sign {
		entry.Warnf("sign %d != %d", want.Sign, got.Sign)
	}
	if want.Exponent != got.Exponent {
		entry.Warnf("exponent %d != %d", want.Exponent, got.Exponent)
	}
	if want.Significand != got.Significand {
		entry.Warnf("significand %d != %d", want.Significand, got.Significand)
	}
	return false
}
