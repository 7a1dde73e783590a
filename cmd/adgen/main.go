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

// Command adgen writes hand-unrolled fixed-length derivative vectors for the
// densead package, one array type per derivative count.
//
// Usage:
//
//	go run ./cmd/adgen --max 12 --output densead/fixed_gen.go
//
// The Go compiler does not unroll loops, so each specialization spells out
// its arithmetic per entry. Counts above --max fall back to densead.Dynamic.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "adgen: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flagSet := pflag.NewFlagSet("adgen", pflag.ContinueOnError)
	minSize := flagSet.Int("min", 1, "smallest derivative count to generate")
	maxSize := flagSet.Int("max", 12, "largest derivative count to generate")
	prefix := flagSet.String("prefix", "fixed", "type name prefix, title-cased")
	pkg := flagSet.String("package", "densead", "package clause of the output file")
	numericImport := flagSet.String("numeric", "github.com/ajroetker/go-densead/numeric", "import path of the numeric package")
	output := flagSet.StringP("output", "o", "fixed_gen.go", "output file, - for stdout")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	specs, err := Specializations(*prefix, *minSize, *maxSize)
	if err != nil {
		return err
	}
	g := &Generator{Package: *pkg, NumericImport: *numericImport, Specs: specs}
	src, err := g.Generate(*output)
	if err != nil {
		return err
	}

	if *output == "-" {
		_, err = os.Stdout.Write(src)
		return err
	}
	if err := os.WriteFile(*output, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", *output, err)
	}
	fmt.Printf("adgen: wrote %d specializations to %s\n", len(specs), *output)
	return nil
}
