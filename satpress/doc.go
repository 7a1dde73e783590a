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

// Package satpress finds saturation, bubble-point and dew-point pressures by
// Newton iteration on a pressure-dependent residual.
//
// The residual is evaluated on a densead value whose only independent
// variable is the pressure, so each iteration gets R(p) and dR/dp from a
// single call:
//
//	res, err := satpress.Solve(func(p satpress.Eval[float64]) satpress.Eval[float64] {
//		return pvt.StandingRs(p, pvt.OilOf(p, props))
//	}, rs, 2000, satpress.Options{Lower: 14.7, Upper: 10000})
//
// The iteration is guarded against the usual failure modes: steps are
// truncated to the caller's bracket, a vanishing slope or an exhausted
// iteration budget ends the solve with a *ConvergenceError, and steps large
// enough to overflow the active precision are clamped to numeric.Sentinel.
// A failed solve is never retried; the caller may try again with another
// guess or bracket.
//
// SolveWithDerivatives additionally propagates derivatives of the target and
// residual with respect to upstream variables to the converged pressure.
package satpress
