package main

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/ajroetker/go-densead/internal/config"
	"github.com/ajroetker/go-densead/numeric"
	"github.com/ajroetker/go-densead/pvt"
	"github.com/ajroetker/go-densead/satpress"
	"golang.org/x/sync/errgroup"
)

// row is one line of the report.
type row struct {
	Name        string  `json:"name"`
	Correlation string  `json:"correlation"`
	GOR         float64 `json:"gor"`
	Pressure    float64 `json:"pressure,omitempty"`
	Bo          float64 `json:"bo,omitempty"`
	Iterations  int     `json:"iterations"`

	// Derivatives of the bubble point, present with sensitivities enabled.
	DGOR         float64 `json:"dp_dgor,omitempty"`
	DAPI         float64 `json:"dp_dapi,omitempty"`
	DGasGravity  float64 `json:"dp_dgas_gravity,omitempty"`
	DTemperature float64 `json:"dp_dtemperature,omitempty"`

	Err string `json:"error,omitempty"`
}

func solveCases[T numeric.Floats](ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]row, error) {
	rows := make([]row, len(cfg.Cases))
	for i, cs := range cfg.Cases {
		rows[i] = row{Name: cs.Name, Correlation: cs.Correlation, GOR: cs.GOR}
	}

	if cfg.Sensitivities {
		err := forEachCase(ctx, len(cfg.Cases), cfg.Workers, func(i int) {
			cs := cfg.Cases[i]
			opts := cfg.Solver.Options(logger.With("case", cs.Name))
			pb, res, err := pvt.BubblePointSensitivities(cs.CorrelationOf(), cs.Properties(), T(cs.GOR), T(cs.Guess), opts)
			rows[i].Iterations = res.Iterations
			if err != nil {
				rows[i].Err = err.Error()
				return
			}
			rows[i].Pressure = pb.Float()
			rows[i].DGOR = float64(pb.Derivative(pvt.WrtGOR))
			rows[i].DAPI = float64(pb.Derivative(pvt.WrtAPI))
			rows[i].DGasGravity = float64(pb.Derivative(pvt.WrtGasGravity))
			rows[i].DTemperature = float64(pb.Derivative(pvt.WrtTemperature))
		})
		if err != nil {
			return nil, err
		}
	} else {
		problems := make([]satpress.Problem[T], len(cfg.Cases))
		for i, cs := range cfg.Cases {
			problems[i] = satpress.Problem[T]{
				Residual: pvt.Residual[T](cs.CorrelationOf(), cs.Properties()),
				Target:   T(cs.GOR),
				Guess:    T(cs.Guess),
			}
		}
		out, err := satpress.SolveBatch(ctx, problems, cfg.Solver.Options(logger), cfg.Workers)
		if err != nil {
			return nil, err
		}
		for i, o := range out {
			rows[i].Iterations = o.Result.Iterations
			if o.Err != nil {
				rows[i].Err = o.Err.Error()
				continue
			}
			rows[i].Pressure = float64(o.Result.Pressure)
		}
	}

	for i, cs := range cfg.Cases {
		if rows[i].Err == "" {
			rs := numeric.Float64(cs.GOR)
			rows[i].Bo = float64(pvt.StandingBo(rs, pvt.OilOf(rs, cs.Properties())))
		}
	}
	return rows, nil
}

// forEachCase calls fn for every case index on up to workers goroutines
// (GOMAXPROCS when workers <= 0). fn owns row i exclusively. Cases not yet
// started when ctx is done are skipped and ctx's error is returned.
func forEachCase(ctx context.Context, n, workers int, fn func(i int)) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range n {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if ctx.Err() == nil {
				fn(i)
			}
			return nil
		})
	}
	_ = g.Wait()
	return ctx.Err()
}
