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

// Package numeric is the dispatch layer that lets one formula run over plain
// scalars and over automatic-differentiation values alike.
//
// Formula code is written as a generic function constrained by Number:
//
//	func Residual[N numeric.Number[N]](p N) N {
//		return p.Mul(p).SubScalar(4)
//	}
//
// and instantiated once per representation:
//
//	numeric.Float64(3)                        // plain float64 magnitude
//	numeric.Float32(3)                        // plain float32 magnitude
//	densead.Variable[float64, densead.Fixed1[float64]](3, 0) // value plus exact derivative
//
// Because Number is a method-set constraint, each instantiation is compiled
// for its concrete representation; no interface values are created on the
// arithmetic path.
//
// # Errors
//
// Arithmetic failures are reported with a panic carrying *OpError, the same
// way an out-of-range index panics: mixing derivative vectors of different
// lengths wraps ErrLogic, dividing by a zero magnitude wraps
// ErrDivisionByZero. Code that hands a formula to a caller converts those
// panics back into errors with Recover or Catch. Plain scalars follow the same
// division policy as Evaluations so a formula fails identically regardless of
// the representation it was instantiated with.
package numeric
