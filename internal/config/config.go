// Copyright 2025 go-densead Authors
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

// Package config loads bubble-point case files for satpres.
//
// A case file is selected by:
//   - the --config flag, or
//   - the SATPRES_CONFIG environment variable.
//
// There is no search path. Unknown keys are rejected so that a misspelled
// tolerance cannot silently fall back to its default.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ajroetker/go-densead/pvt"
	"github.com/ajroetker/go-densead/satpress"
	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable consulted by Load.
const EnvVar = "SATPRES_CONFIG"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid case file")

// Precision selects the floating-point type the solve runs in.
type Precision string

const (
	Float64 Precision = "float64"
	Float32 Precision = "float32"
)

// Config is a batch of bubble-point cases sharing solver settings.
type Config struct {
	// Precision is float64 (default) or float32.
	Precision Precision `yaml:"precision"`

	// Correlation is the default solution-GOR correlation.
	// Default: standing
	Correlation string `yaml:"correlation"`

	// Sensitivities requests derivatives of each bubble point with respect
	// to GOR, oil gravity, gas gravity and temperature.
	Sensitivities bool `yaml:"sensitivities"`

	// Workers bounds the number of cases solved concurrently.
	// Default: 0 (GOMAXPROCS)
	Workers int `yaml:"workers"`

	Solver SolverConfig `yaml:"solver"`

	Cases []Case `yaml:"cases"`
}

// SolverConfig mirrors satpress.Options. Zero fields keep the solver's
// precision-dependent defaults.
type SolverConfig struct {
	Lower         float64 `yaml:"lower"`
	Upper         float64 `yaml:"upper"`
	AbsTol        float64 `yaml:"abs_tol"`
	RelTol        float64 `yaml:"rel_tol"`
	MinSlope      float64 `yaml:"min_slope"`
	MaxIterations int     `yaml:"max_iterations"`

	// Guess is the starting pressure for cases that do not set one.
	// Default: 1000
	Guess float64 `yaml:"guess"`
}

// Case is one fluid at one solution GOR.
type Case struct {
	Name        string  `yaml:"name"`
	Correlation string  `yaml:"correlation,omitempty"`
	API         float64 `yaml:"api"`
	GasGravity  float64 `yaml:"gas_gravity"`
	Temperature float64 `yaml:"temperature"`
	GOR         float64 `yaml:"gor"`
	Guess       float64 `yaml:"guess,omitempty"`
}

// Default returns a Config with no cases and default settings.
func Default() *Config {
	return &Config{
		Precision:   Float64,
		Correlation: pvt.Standing.String(),
		Solver: SolverConfig{
			Lower: 14.7,
			Upper: 20000,
			Guess: 1000,
		},
	}
}

// Load reads the case file named by SATPRES_CONFIG.
func Load() (*Config, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return nil, fmt.Errorf("%s environment variable not set", EnvVar)
	}
	return LoadFile(path)
}

// LoadFile reads, defaults and validates the case file at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading case file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a case file from data.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Precision == "" {
		c.Precision = Float64
	}
	if c.Correlation == "" {
		c.Correlation = pvt.Standing.String()
	}
	for i := range c.Cases {
		if c.Cases[i].Correlation == "" {
			c.Cases[i].Correlation = c.Correlation
		}
		if c.Cases[i].Guess == 0 {
			c.Cases[i].Guess = c.Solver.Guess
		}
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error
	if c.Precision != Float64 && c.Precision != Float32 {
		errs = append(errs, fmt.Errorf("precision %q must be %s or %s", c.Precision, Float64, Float32))
	}
	if _, err := pvt.ParseCorrelation(c.Correlation); err != nil {
		errs = append(errs, err)
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers %d is negative", c.Workers))
	}
	if c.Solver.MaxIterations < 0 {
		errs = append(errs, fmt.Errorf("solver.max_iterations %d is negative", c.Solver.MaxIterations))
	}
	if c.Solver.Upper != 0 && c.Solver.Lower >= c.Solver.Upper {
		errs = append(errs, fmt.Errorf("solver bracket [%g, %g] is empty", c.Solver.Lower, c.Solver.Upper))
	}
	if len(c.Cases) == 0 {
		errs = append(errs, errors.New("no cases"))
	}

	seen := make(map[string]bool, len(c.Cases))
	for i, cs := range c.Cases {
		switch {
		case cs.Name == "":
			errs = append(errs, fmt.Errorf("case %d: missing name", i))
		case seen[cs.Name]:
			errs = append(errs, fmt.Errorf("case %q: duplicate name", cs.Name))
		}
		seen[cs.Name] = true
		if _, err := pvt.ParseCorrelation(cs.Correlation); err != nil {
			errs = append(errs, fmt.Errorf("case %q: %w", cs.Name, err))
		}
		if err := cs.Properties().Validate(); err != nil {
			errs = append(errs, fmt.Errorf("case %q: %w", cs.Name, err))
		}
		if !(cs.GOR > 0) {
			errs = append(errs, fmt.Errorf("case %q: gor %g must be positive", cs.Name, cs.GOR))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Options converts the solver section to satpress.Options.
func (s SolverConfig) Options(logger *slog.Logger) satpress.Options {
	return satpress.Options{
		Lower:         s.Lower,
		Upper:         s.Upper,
		AbsTol:        s.AbsTol,
		RelTol:        s.RelTol,
		MinSlope:      s.MinSlope,
		MaxIterations: s.MaxIterations,
		Logger:        logger,
	}
}

// Properties returns the case's fluid description.
func (cs Case) Properties() pvt.Properties {
	return pvt.Properties{
		API:         cs.API,
		GasGravity:  cs.GasGravity,
		Temperature: cs.Temperature,
	}
}

// CorrelationOf returns the parsed correlation of a validated case.
func (cs Case) CorrelationOf() pvt.Correlation {
	c, _ := pvt.ParseCorrelation(cs.Correlation)
	return c
}
