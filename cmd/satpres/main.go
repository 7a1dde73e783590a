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

// satpres solves the bubble-point cases in a YAML case file and prints one
// row per case.
//
// Usage:
//
//	satpres --config cases.yaml [--format json] [--verbose]
//
// The case file may also be named by SATPRES_CONFIG. With sensitivities
// enabled in the file, or --sensitivities on the command line, each row also
// carries the derivatives of the bubble point with respect to the fluid
// description.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ajroetker/go-densead/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var (
		configPath    string
		verbose       bool
		logFormat     string
		format        string
		sensitivities bool
		workers       int
	)
	flagSet := pflag.NewFlagSet("satpres", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&configPath, "config", "c", "", "case file (default: $"+config.EnvVar+")")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log every Newton iteration")
	flagSet.StringVar(&logFormat, "log-format", "text", "log record format: text or json")
	flagSet.StringVar(&format, "format", "text", "report format: text or json")
	flagSet.BoolVar(&sensitivities, "sensitivities", false, "report derivatives with respect to the fluid description")
	flagSet.IntVar(&workers, "workers", -1, "cases solved concurrently (default: from case file)")

	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() > 0 {
		return fmt.Errorf("unexpected argument: %s", flagSet.Arg(0))
	}

	logger, err := newLogger(stderr, logFormat, verbose)
	if err != nil {
		return err
	}

	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	if sensitivities {
		cfg.Sensitivities = true
	}
	if workers >= 0 {
		cfg.Workers = workers
	}

	var rows []row
	switch cfg.Precision {
	case config.Float32:
		rows, err = solveCases[float32](ctx, cfg, logger)
	default:
		rows, err = solveCases[float64](ctx, cfg, logger)
	}
	if err != nil {
		return err
	}

	switch format {
	case "json":
		err = writeJSON(stdout, rows)
	case "text":
		err = writeText(stdout, rows, cfg.Sensitivities)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range rows {
		if r.Err != "" {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, len(rows))
	}
	return nil
}

func newLogger(w io.Writer, format string, verbose bool) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: slog.LevelWarn}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unknown log format %q", format)
}
