// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command efloat prints the fields of binary floating-point numbers,
// builds numbers from fields and measures distances between them.
package main

import (
	"io"
	"os"

	"github.com/attic-labs/kingpin"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/avdva/efloat"
	"github.com/avdva/efloat/internal/config"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
)

type handler func() error

type command func(e *env, app *kingpin.Application) (*kingpin.CmdClause, handler)

var commands = []command{
	fieldsCommand,
	composeCommand,
	bitsCommand,
	distanceCommand,
}

// env is shared by all commands.
// cfg is set after the command line is parsed.
type env struct {
	in  io.Reader
	out io.Writer
	log *logrus.Logger
	cfg config.Config

	sign, exp, sig *color.Color
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.Out = w
	log.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	return log
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	e := &env{
		in:   in,
		out:  out,
		log:  newLogger(errOut),
		sign: color.New(color.FgRed),
		exp:  color.New(color.FgGreen),
		sig:  color.New(color.FgBlue),
	}

	app := kingpin.New("efloat", "Decomposes IEEE-754 binary floating-point numbers into fields and back.")
	app.HelpFlag.Short('h')
	app.UsageWriter(errOut)
	app.ErrorWriter(errOut)
	terminated, exitCode := false, exitOK
	app.Terminate(func(code int) {
		terminated, exitCode = true, code
	})

	// global flags
	widthVal := app.Flag("width", "format width in bits").Short('w').Enum("32", "64")
	configVal := app.Flag("config", "yaml configuration file").Envar("EFLOAT_CONFIG").String()
	verboseVal := app.Flag("verbose", "show debug output and check recomposed values").Short('v').Bool()
	colorVal := app.Flag("color", "color the bit layout").Enum(config.ColorAuto, config.ColorAlways, config.ColorNever)

	handlers := map[string]handler{}
	for _, cmdFunction := range commands {
		cmd, h := cmdFunction(e, app)
		handlers[cmd.FullCommand()] = h
	}

	if len(args) == 0 {
		app.Usage(nil)
		return exitUsage
	}
	input, err := app.Parse(args)
	if terminated {
		return exitCode
	}
	if err != nil {
		app.Errorf("%s", err)
		return exitUsage
	}

	cfg := config.Default()
	if *configVal != "" {
		if cfg, err = config.FromFile(*configVal); err != nil {
			app.Errorf("%s", err)
			return exitUsage
		}
	}
	switch *widthVal {
	case "32":
		cfg.Width = 32
	case "64":
		cfg.Width = 64
	}
	if *colorVal != "" {
		cfg.Color = *colorVal
	}
	if *verboseVal {
		cfg.LogLevel = logrus.DebugLevel.String()
		cfg.SelfCheck = true
	}
	if err := e.apply(cfg); err != nil {
		app.Errorf("%s", err)
		return exitUsage
	}
	e.log.WithField("config", cfg).Debug("configuration loaded")

	if err := handlers[input](); err != nil {
		app.Errorf("%s", err)
		return exitFailure
	}
	return exitOK
}

// apply validates cfg and sets up logging, self-check and colors.
func (e *env) apply(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	lvl, _ := cfg.Level()
	e.log.SetLevel(lvl)
	efloat.Log = e.log
	efloat.SelfCheck = cfg.SelfCheck
	for _, c := range []*color.Color{e.sign, e.exp, e.sig} {
		switch cfg.Color {
		case config.ColorAlways:
			c.EnableColor()
		case config.ColorNever:
			c.DisableColor()
		}
	}
	e.cfg = cfg
	return nil
}
