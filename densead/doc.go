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

// Package densead implements dense forward-mode automatic differentiation.
//
// An Evaluation pairs a magnitude with the partial derivatives of that
// magnitude with respect to a fixed set of independent variables. Every
// operation applies the chain rule, so the derivatives stay exact through
// arbitrarily long formulas:
//
//	x := densead.Variable[float64, densead.Fixed2[float64]](3, 0) // dx = (1, 0)
//	y := densead.Variable[float64, densead.Fixed2[float64]](4, 1) // dy = (0, 1)
//	r := x.Mul(x).Add(y.Mul(y)).Sqrt()                            // 5, (0.6, 0.8)
//
// The derivative storage is a type parameter. Two kinds are provided:
//
//   - Fixed1 … Fixed12 are arrays whose length is part of the type. Their
//     arithmetic is hand-unrolled by cmd/adgen, and combining vectors of
//     different lengths does not compile.
//   - Dynamic is a slice whose length is chosen when the first value is
//     constructed (DynamicConstant, DynamicVariable). Combining two Dynamic
//     vectors of different lengths panics with numeric.ErrLogic.
//
// Both kinds share one implementation of every operator: each operator
// computes its value and its partial derivatives with respect to its
// operands, then delegates to Derivs.Scale or Derivs.Combine.
//
// Evaluations are immutable. Operations return new values and may share
// derivative storage between them, which is safe because nothing mutates it.
//
// Every Evaluation satisfies numeric.Number, so formula code written against
// that constraint runs unchanged on Evaluations and on plain scalars.
package densead

//go:generate go run ../cmd/adgen --max 12 --output fixed_gen.go
