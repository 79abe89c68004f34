// Copyright 2020 Aleksandr Demakin. All rights reserved.

package efloat_test

import (
	"errors"
	"fmt"
	"math"

	"github.com/avdva/efloat"
)

func ExampleCodec() {
	fields, class := efloat.Binary64.Decompose(2.0)
	fmt.Printf("%s, %s\n", fields, class)

	v, class, err := efloat.Binary32.Recompose(efloat.Fields32{Sign: -1, Exponent: -127, Significand: 2})
	fmt.Printf("%v, %s, %v\n", v, class, err)

	inf, class, err := efloat.Binary64.Recompose(efloat.Fields64{Sign: 1, Exponent: 1029})
	fmt.Printf("%v, %s, %v\n", inf, class, err)
	fmt.Printf("exponent error: %v\n", errors.Is(err, efloat.ErrExponentRange))

	fmt.Printf("%d, %d\n", efloat.Binary64.Distance(1, math.Nextafter(1, 2)), efloat.Binary64.Distance(1, -1))

	// Output:
	// sign: 1, exp: 1, mant: 4503599627370496, normal
	// -1e-45, subnormal, <nil>
	// +Inf, inf, exponent out of range: 1029 is not in [-1023, 1024]
	// exponent error: true
	// 1, 9214364837600034816
}

func ExampleNewCodec() {
	type celsius float64
	codec, err := efloat.NewCodec[celsius, uint64](11, 52)
	if err != nil {
		panic(err)
	}
	fields, _ := codec.Decompose(-40)
	fmt.Printf("%s %#v\n", codec, fields)

	_, err = efloat.NewCodec[float32, uint64](8, 23)
	fmt.Println(err)

	// Output:
	// binary64 efloat.Fields{Sign: -1, Exponent: 5, Significand: 0x14000000000000}
	// float type has 32 bits, bit pattern type has 64
}
