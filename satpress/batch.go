package satpress

import (
	"context"
	"runtime"

	"github.com/ajroetker/go-densead/numeric"
	"golang.org/x/sync/errgroup"
)

// Problem is one cell of a batch solve.
type Problem[T numeric.Floats] struct {
	Residual Residual[T]
	Target   T
	Guess    T
}

// Outcome pairs a cell's result with its error. A convergence failure in one
// cell does not affect the others.
type Outcome[T numeric.Floats] struct {
	Result Result[T]
	Err    error
}

// SolveBatch solves independent problems on up to workers goroutines
// (GOMAXPROCS when workers <= 0). Options are shared read-only; every cell
// gets its own iteration state. The returned error is ctx's error; cells that
// had not started when ctx was done carry it too.
func SolveBatch[T numeric.Floats](ctx context.Context, problems []Problem[T], opts Options, workers int) ([]Outcome[T], error) {
	if _, err := resolve[T](opts); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]Outcome[T], len(problems))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, pr := range problems {
		if err := ctx.Err(); err != nil {
			for j := i; j < len(out); j++ {
				out[j].Err = err
			}
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				out[i].Err = err
				return nil
			}
			res, err := Solve(pr.Residual, pr.Target, pr.Guess, opts)
			out[i] = Outcome[T]{Result: res, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return out, ctx.Err()
}
