// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package config holds the settings of the efloat command.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the command configuration.
// Every field can be set in a yaml file and overridden by a flag.
type Config struct {
	// Width is the format width in bits, 32 or 64.
	Width int `yaml:"width"`
	// Base is the base of bit patterns read by the 'bits' command.
	Base int `yaml:"base"`
	// Color is one of ColorAuto, ColorAlways or ColorNever.
	Color string `yaml:"color"`
	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level"`
	// SelfCheck enables verification of recomposed values.
	SelfCheck bool `yaml:"self_check"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Width:    64,
		Base:     16,
		Color:    ColorAuto,
		LogLevel: logrus.InfoLevel.String(),
	}
}

// Parse reads a yaml document over the default configuration.
// Unknown keys are errors.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to parse config")
	}
	cfg.Color = strings.ToLower(cfg.Color)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	return cfg, cfg.Validate()
}

// FromFile parses the yaml file at path.
func FromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), errors.Wrapf(err, "failed to read config file '%s'", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, errors.Wrapf(err, "bad config file '%s'", path)
	}
	return cfg, nil
}

// Validate returns an error for the first invalid field.
func (c Config) Validate() error {
	if c.Width != 32 && c.Width != 64 {
		return errors.Errorf("width must be 32 or 64, got %d", c.Width)
	}
	if c.Base < 2 || c.Base > 16 {
		return errors.Errorf("base must be in [2, 16], got %d", c.Base)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Errorf("unknown color mode %q", c.Color)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() (logrus.Level, error) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	return lvl, errors.Wrap(err, "bad log level")
}
