package satpress

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/ajroetker/go-densead/numeric"
)

// DefaultMaxIterations is the iteration cap used when Options.MaxIterations
// is zero.
const DefaultMaxIterations = 50

// Options configures a solve. The zero value is usable: it searches
// [0, numeric.Sentinel] with tolerances scaled to the active precision.
type Options struct {
	// Lower and Upper bound the physically valid pressures. Every estimate,
	// including the initial guess, is truncated into [Lower, Upper]. A zero
	// Upper means numeric.Sentinel, so Options{Lower: 14.7} searches
	// [14.7, numeric.Sentinel].
	Lower, Upper float64

	// AbsTol and RelTol define convergence: |R - target| must not exceed
	// max(AbsTol, RelTol*max(|R|, |target|)). When both are zero, each
	// defaults to 1024 machine epsilons of the active precision.
	AbsTol, RelTol float64

	// MinSlope is the smallest |dR/dp| accepted for a Newton step. Zero
	// means the square of machine epsilon of the active precision.
	MinSlope float64

	// MaxIterations caps the number of Newton updates. Zero means
	// DefaultMaxIterations.
	MaxIterations int

	// Logger receives per-iteration debug records. Nil discards them.
	Logger *slog.Logger
}

// settings are Options resolved against a precision.
type settings[T numeric.Floats] struct {
	lower, upper   T
	absTol, relTol float64
	minSlope       T
	maxIterations  int
	logger         *slog.Logger
}

func resolve[T numeric.Floats](o Options) (settings[T], error) {
	eps := float64(numeric.Epsilon[T]())
	sentinel := float64(numeric.Sentinel[T]())

	lower, upper := o.Lower, o.Upper
	if upper == 0 {
		upper = sentinel
	}
	if math.IsNaN(lower) || math.IsNaN(upper) || lower >= upper {
		return settings[T]{}, fmt.Errorf("%w: bracket [%g, %g]", ErrInvalidOptions, o.Lower, o.Upper)
	}
	lower = math.Max(lower, -sentinel)
	upper = math.Min(upper, sentinel)

	absTol, relTol := o.AbsTol, o.RelTol
	if absTol < 0 || relTol < 0 || math.IsNaN(absTol) || math.IsNaN(relTol) {
		return settings[T]{}, fmt.Errorf("%w: tolerances abs=%g rel=%g", ErrInvalidOptions, absTol, relTol)
	}
	if absTol == 0 && relTol == 0 {
		absTol, relTol = 1024*eps, 1024*eps
	}

	minSlope := o.MinSlope
	if minSlope < 0 || math.IsNaN(minSlope) {
		return settings[T]{}, fmt.Errorf("%w: min slope %g", ErrInvalidOptions, minSlope)
	}
	if minSlope == 0 {
		minSlope = eps * eps
	}

	maxIterations := o.MaxIterations
	if maxIterations < 0 {
		return settings[T]{}, fmt.Errorf("%w: max iterations %d", ErrInvalidOptions, maxIterations)
	}
	if maxIterations == 0 {
		maxIterations = DefaultMaxIterations
	}

	logger := o.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return settings[T]{
		lower:         T(lower),
		upper:         T(upper),
		absTol:        absTol,
		relTol:        relTol,
		minSlope:      T(minSlope),
		maxIterations: maxIterations,
		logger:        logger,
	}, nil
}
