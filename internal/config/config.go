// Copyright 2025 go-thermal Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config holds the settings shared by the tresp subcommands.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ajroetker/go-thermal/internal/gridio"
	"github.com/ajroetker/go-thermal/tpc"
)

// Environment variables consulted for defaults.
const (
	EnvFormat   = "TRESP_FORMAT"
	EnvLogLevel = "TRESP_LOG_LEVEL"
)

// Config holds the settings common to every subcommand.
type Config struct {
	Format   string // output format, see gridio.Formats
	Out      string // output path, "" or "-" for stdout
	LogLevel string
	Quiet    bool
}

// EvalConfig configures `tresp eval`.
type EvalConfig struct {
	Config
	Temps    string // temperature grid path, "-" for stdin
	Species  string // species table path
	NoHeader bool   // the grid has no header row
	Strict   bool   // reject tmin >= topt or topt >= tmax
}

// CurveConfig configures `tresp curve`.
type CurveConfig struct {
	Config
	Species  tpc.Species[float64]
	From, To float64
	N        int
}

// Default returns the built-in defaults overridden by the environment.
func Default() Config {
	c := Config{Format: "csv", LogLevel: "info"}
	if v, ok := os.LookupEnv(EnvFormat); ok && v != "" {
		c.Format = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	return c
}

// Validate checks the common settings.
func (c Config) Validate() error {
	if !gridio.HasFormat(c.Format) {
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Validate checks the eval settings.
func (c EvalConfig) Validate() error {
	if err := c.Config.Validate(); err != nil {
		return err
	}
	if c.Temps == "" {
		return errors.New("config: --temps is required")
	}
	if c.Species == "" {
		return errors.New("config: --species is required")
	}
	if c.Temps == "-" && c.Species == "-" {
		return errors.New("config: only one of --temps and --species may read stdin")
	}
	return nil
}

// Validate checks the curve settings. The species must be valid: a curve
// plot of degenerate parameters is never useful.
func (c CurveConfig) Validate() error {
	if err := c.Config.Validate(); err != nil {
		return err
	}
	if err := c.Species.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.N < 2 {
		return fmt.Errorf("config: --n must be at least 2, got %d", c.N)
	}
	if !(c.From < c.To) {
		return fmt.Errorf("config: --from (%g) must be below --to (%g)", c.From, c.To)
	}
	return nil
}
