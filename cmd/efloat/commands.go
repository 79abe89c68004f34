// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"bufio"
	"math/big"
	"strconv"
	"strings"

	"github.com/attic-labs/kingpin"
	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"

	"github.com/avdva/efloat"
	"github.com/avdva/efloat/render"
)

func fieldsCommand(e *env, app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("fields", "Print the bits and the fields of a number.")
	value := cmd.Arg("value", "decimal or hexadecimal floating-point number").Default("2.0").String()
	return cmd, func() error {
		if e.cfg.Width == 32 {
			f, err := e.parseFloat(*value, 32)
			if err != nil {
				return err
			}
			return describe(e, efloat.Binary32, float32(f), signed32)
		}
		f, err := e.parseFloat(*value, 64)
		if err != nil {
			return err
		}
		return describe(e, efloat.Binary64, f, signed64)
	}
}

func composeCommand(e *env, app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("compose", "Build a number from fields. Use '--' before negative values.")
	sign := cmd.Arg("sign", "1 or -1").Required().String()
	exp := cmd.Arg("exponent", "unbiased exponent").Required().String()
	sig := cmd.Arg("significand", "significand, the implicit bit is optional").Required().String()
	return cmd, func() error {
		s, err := strconv.ParseInt(*sign, 0, 8)
		if err != nil {
			return errors.Wrapf(err, "bad sign '%s'", *sign)
		}
		x, err := strconv.ParseInt(*exp, 0, 16)
		if err != nil {
			return errors.Wrapf(err, "bad exponent '%s'", *exp)
		}
		m, err := strconv.ParseUint(*sig, 0, e.cfg.Width)
		if err != nil {
			return errors.Wrapf(err, "bad significand '%s'", *sig)
		}
		if e.cfg.Width == 32 {
			return compose(e, efloat.Binary32, efloat.Fields32{Sign: int8(s), Exponent: int16(x), Significand: uint32(m)}, signed32)
		}
		return compose(e, efloat.Binary64, efloat.Fields64{Sign: int8(s), Exponent: int16(x), Significand: m}, signed64)
	}
}

func bitsCommand(e *env, app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("bits", "Print numbers with given bit patterns. Patterns are read from stdin, if none given.")
	baseVal := cmd.Flag("base", "base of the patterns, 2 to 16").Short('b').Int()
	patterns := cmd.Arg("pattern", "bit patterns").Strings()
	return cmd, func() error {
		base := e.cfg.Base
		if *baseVal != 0 {
			base = *baseVal
		}
		if base < 2 || base > 16 {
			return errors.Errorf("base must be in [2, 16], got %d", base)
		}
		var total, failed int64
		each := func(pattern string) {
			if pattern = strings.TrimSpace(pattern); pattern == "" {
				return
			}
			total++
			if err := e.printBits(pattern, base); err != nil {
				failed++
				e.log.WithError(err).Error("bad pattern")
			}
		}
		if len(*patterns) > 0 {
			for _, p := range *patterns {
				each(p)
			}
		} else {
			scanner := bufio.NewScanner(e.in)
			for scanner.Scan() {
				each(scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				return errors.Wrap(err, "failed to read patterns")
			}
		}
		if failed > 0 {
			return errors.Errorf("%s of %s patterns failed", humanize.Comma(failed), humanize.Comma(total))
		}
		return nil
	}
}

func distanceCommand(e *env, app *kingpin.Application) (*kingpin.CmdClause, handler) {
	cmd := app.Command("distance", "Print the number of representable values between two numbers.")
	xVal := cmd.Arg("x", "first number").Required().String()
	yVal := cmd.Arg("y", "second number").Required().String()
	return cmd, func() error {
		x, err := e.parseFloat(*xVal, e.cfg.Width)
		if err != nil {
			return err
		}
		y, err := e.parseFloat(*yVal, e.cfg.Width)
		if err != nil {
			return err
		}
		if e.cfg.Width == 32 {
			return distance(e, efloat.Binary32, float32(x), float32(y))
		}
		return distance(e, efloat.Binary64, x, y)
	}
}

func signed32(f float32) int64 {
	return int64(efloat.Float32ToInt32Bits(f))
}

func signed64(f float64) int64 {
	return efloat.Float64ToInt64Bits(f)
}

// parseFloat accepts values out of range of the format as infinities.
func (e *env) parseFloat(s string, bitSize int) (float64, error) {
	f, err := strconv.ParseFloat(s, bitSize)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			return 0, errors.Wrapf(err, "bad value '%s'", s)
		}
		e.log.WithField("value", s).Warn("value is out of range")
	}
	return f, nil
}

func (e *env) printBits(pattern string, base int) error {
	digits := pattern
	switch base {
	case 16:
		digits = strings.TrimPrefix(strings.TrimPrefix(digits, "0x"), "0X")
	case 2:
		digits = strings.TrimPrefix(strings.TrimPrefix(digits, "0b"), "0B")
	}
	u, err := strconv.ParseUint(digits, base, e.cfg.Width)
	if err != nil {
		return errors.Wrapf(err, "bad pattern '%s'", pattern)
	}
	w := bufio.NewWriter(e.out)
	if e.cfg.Width == 32 {
		i := int32(uint32(u))
		f := efloat.Int32BitsToFloat32(i)
		w.WriteString(strconv.FormatUint(u, 10) + " : " + strconv.FormatInt(int64(i), 10) + " : ")
		w.WriteString(strconv.FormatFloat(float64(f), 'g', -1, 32) + ", " + strconv.FormatFloat(float64(f), 'e', 8, 32) + "\n")
	} else {
		i := int64(u)
		f := efloat.Int64BitsToFloat64(i)
		w.WriteString(strconv.FormatUint(u, 10) + " : " + strconv.FormatInt(i, 10) + " : ")
		w.WriteString(strconv.FormatFloat(f, 'g', -1, 64) + ", " + strconv.FormatFloat(f, 'e', 16, 64) + "\n")
	}
	return w.Flush()
}

func describe[F constraints.Float, U constraints.Unsigned](e *env, c *efloat.Codec[F, U], f F, signed func(F) int64) error {
	u := c.Bits(f)
	fields, class := c.Decompose(f)
	sign, exp, sig := render.Groups(c, uint64(u))
	name := formatValue(c, f)

	w := bufio.NewWriter(e.out)
	w.WriteString(name + " bits: 0b" + e.sign.Sprint(sign) + " " + e.exp.Sprint(exp) + " " + e.sig.Sprint(sig) + "\n")
	w.WriteString(name + " as unsigned: " + strconv.FormatUint(uint64(u), 10) + "\n")
	w.WriteString(name + " as signed: " + strconv.FormatInt(signed(f), 10) + "\n")
	w.WriteString(name + " as fields: " + fields.String() + "\n")
	w.WriteString(name + " class: " + class.String() + "\n")
	w.WriteString(name + " as expression: '" + render.Expression(c, fields) + "'\n")
	if class.IsFinite() {
		d, err := render.Decimal(c, fields)
		if err != nil {
			return err
		}
		w.WriteString(name + " as decimal: " + d.String() + "\n")
	}
	return w.Flush()
}

func compose[F constraints.Float, U constraints.Unsigned](e *env, c *efloat.Codec[F, U], fields efloat.Fields[U], signed func(F) int64) error {
	f, class, err := c.Recompose(fields)
	log := e.log.WithField("fields", fields.String())
	if err != nil {
		log.WithError(err).Warn("invalid fields, the value is saturated")
	}
	log.WithField("class", class).Debug("recomposed")
	return describe(e, c, f, signed)
}

func distance[F constraints.Float, U constraints.Unsigned](e *env, c *efloat.Codec[F, U], x, y F) error {
	d := c.Distance(x, y)
	if d == c.MaxDistance() {
		e.log.WithField("format", c.String()).Debug("a NaN or an infinity, maximum distance")
	}
	w := bufio.NewWriter(e.out)
	w.WriteString(humanize.BigComma(new(big.Int).SetUint64(uint64(d))) + "\n")
	return w.Flush()
}

func formatValue[F constraints.Float, U constraints.Unsigned](c *efloat.Codec[F, U], f F) string {
	return strconv.FormatFloat(float64(f), 'g', -1, c.Width())
}
