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

package satpress

import (
	"math"

	"github.com/ajroetker/go-densead/densead"
	"github.com/ajroetker/go-densead/numeric"
	"gonum.org/v1/gonum/floats/scalar"
)

// Eval is the value type a Residual sees: pressure as the single independent
// variable.
type Eval[T numeric.Floats] = densead.Evaluation[T, densead.Fixed1[T]]

// Residual maps a pressure to the quantity that must equal the target at
// saturation. It is never retained beyond the solve.
type Residual[T numeric.Floats] func(p Eval[T]) Eval[T]

// Result describes a solve. On failure it holds the last estimate.
type Result[T numeric.Floats] struct {
	Pressure   T
	Residual   T // R(Pressure) - target
	Slope      T // dR/dp at Pressure
	Iterations int
}

// Sensitivity is dp/dtarget at the converged pressure.
func (r Result[T]) Sensitivity() T {
	return 1 / r.Slope
}

// Solve finds p in the options' bracket with R(p) = target, starting from
// guess. Arithmetic failures inside the residual are returned as
// *numeric.OpError; iteration failures as *ConvergenceError.
func Solve[T numeric.Floats](r Residual[T], target, guess T, opts Options) (res Result[T], err error) {
	s, err := resolve[T](opts)
	if err != nil {
		return Result[T]{}, err
	}
	defer numeric.Recover(&err)
	return newton(r, target, guess, s)
}

func newton[T numeric.Floats](r Residual[T], target, guess T, s settings[T]) (Result[T], error) {
	log := s.logger
	p := clamp(numeric.ClampFinite(guess), s.lower, s.upper)
	if p != guess {
		log.Debug("initial guess truncated to bracket", "guess", float64(guess), "pressure", float64(p))
	}

	for iter := 0; ; iter++ {
		v := r(densead.Variable[T, densead.Fixed1[T]](p, 0))
		res := Result[T]{
			Pressure:   p,
			Residual:   v.Value() - target,
			Slope:      v.Derivative(0),
			Iterations: iter,
		}
		log.Debug("newton iteration",
			"iteration", iter,
			"pressure", float64(p),
			"residual", float64(res.Residual),
			"slope", float64(res.Slope))

		switch {
		case v.IsNaN() || v.IsInf():
			return res, fail(s, res, ReasonNonFiniteResidual)
		case converged(v.Value(), target, s):
			return res, nil
		case iter >= s.maxIterations:
			return res, fail(s, res, ReasonIterationCap)
		case !(abs(res.Slope) > s.minSlope) || math.IsInf(float64(res.Slope), 0):
			return res, fail(s, res, ReasonDegenerateSlope)
		}

		step := numeric.ClampFinite(res.Residual / res.Slope)
		next := numeric.ClampFinite(p - step)
		if t := clamp(next, s.lower, s.upper); t != next {
			log.Debug("step truncated to bracket", "step", float64(next), "pressure", float64(t))
			next = t
		}
		if next == p {
			return res, fail(s, res, ReasonNoProgress)
		}
		p = next
	}
}

// SolveWithDerivatives solves R(p) = target for the value of target and then
// carries the derivatives of target, and of the residual through upstream,
// onto the converged pressure via the implicit function theorem:
//
//	dp = (dtarget - ∂R/∂θ) / (dR/dp)
//
// upstream evaluates the residual at a fixed pressure with respect to the
// caller's variables θ; it may be nil when R depends on pressure only.
func SolveWithDerivatives[T numeric.Floats, D densead.Derivs[T, D]](
	r Residual[T],
	upstream func(p densead.Evaluation[T, D]) densead.Evaluation[T, D],
	target densead.Evaluation[T, D],
	guess T,
	opts Options,
) (p densead.Evaluation[T, D], res Result[T], err error) {
	res, err = Solve(r, target.Value(), guess, opts)
	if err != nil {
		return p, res, err
	}
	if res.Slope == 0 {
		return p, res, &ConvergenceError{
			Reason:     ReasonDegenerateSlope,
			Pressure:   float64(res.Pressure),
			Residual:   float64(res.Residual),
			Iterations: res.Iterations,
		}
	}
	defer numeric.Recover(&err)

	at := target.Constant(0).WithValue(res.Pressure)
	partial := target.Constant(0)
	if upstream != nil {
		partial = upstream(at)
	}
	p = target.Sub(partial).DivScalar(float64(res.Slope)).WithValue(res.Pressure)
	return p, res, nil
}

func converged[T numeric.Floats](value, target T, s settings[T]) bool {
	return scalar.EqualWithinAbsOrRel(float64(value), float64(target), s.absTol, s.relTol)
}

func fail[T numeric.Floats](s settings[T], res Result[T], reason Reason) error {
	s.logger.Warn("saturation pressure did not converge",
		"reason", string(reason),
		"iterations", res.Iterations,
		"pressure", float64(res.Pressure),
		"residual", float64(res.Residual))
	return &ConvergenceError{
		Reason:     reason,
		Pressure:   float64(res.Pressure),
		Residual:   float64(res.Residual),
		Iterations: res.Iterations,
	}
}

func clamp[T numeric.Floats](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

func abs[T numeric.Floats](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
