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

// Package main prints the precision limits the solver works within and the
// CPU features that decide how the unrolled derivative arithmetic executes.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-densead/densead"
	"github.com/ajroetker/go-densead/numeric"
)

func main() {
	report(os.Stdout)
}

func report(w io.Writer) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Unrolled derivative vectors: Fixed1..Fixed%d\n", densead.MaxUnrolled)
	printLimits[float32](w, "float32")
	printLimits[float64](w, "float64")
	fmt.Fprintln(w)

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features(w)
	case "amd64":
		printAMD64Features(w)
	}
}

func printLimits[T numeric.Floats](w io.Writer, name string) {
	fmt.Fprintf(w, "=== %s ===\n", name)
	fmt.Fprintf(w, "  Epsilon:   %g\n", numeric.Epsilon[T]())
	fmt.Fprintf(w, "  MaxFinite: %g\n", numeric.MaxFinite[T]())
	fmt.Fprintf(w, "  Sentinel:  %g (largest clamped pressure step)\n", numeric.Sentinel[T]())
}

func printARM64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Fprintf(w, "  HasFP:      %v (Floating point, fused multiply-add)\n", cpu.ARM64.HasFP)
	fmt.Fprintf(w, "  HasASIMD:   %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Fprintf(w, "  HasASIMDHP: %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Fprintf(w, "  HasSVE:     %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
}

func printAMD64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
	fmt.Fprintf(w, "  HasFMA:     %v\n", cpu.X86.HasFMA)
	fmt.Fprintf(w, "  HasAVX:     %v\n", cpu.X86.HasAVX)
	fmt.Fprintf(w, "  HasAVX2:    %v\n", cpu.X86.HasAVX2)
	fmt.Fprintf(w, "  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
	fmt.Fprintf(w, "  HasSSE2:    %v\n", cpu.X86.HasSSE2)
	fmt.Fprintf(w, "  HasSSE41:   %v\n", cpu.X86.HasSSE41)
}
