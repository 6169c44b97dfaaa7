package optimizer

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/xqaoa/ansatz"
	"github.com/katalvlaran/xqaoa/graph"
)

// Run describes one restart.
type Run struct {
	Restart         int
	Cost            float64
	FuncEvaluations int
	Status          string
}

// Result is the outcome of Search. Angles are reduced to [0, 2π) and Cost is
// the evaluator's value at exactly those angles.
type Result struct {
	Cost   float64
	Angles []float64
	Best   int // index into Runs
	Runs   []Run
}

// Search maximises the expected cut of g over all 2n+m angles.
//
// Errors:
//   - ansatz.ErrNilGraph: g is nil.
//   - ErrBadRestarts, ErrUnknownMethod: invalid options.
//   - ctx.Err() when the context ends before every restart finished.
//
// Ties between restarts resolve to the lowest restart index.
func Search(ctx context.Context, g *graph.Model, opts Options) (Result, error) {
	if g == nil {
		return Result{}, fmt.Errorf("Search: %w", ansatz.ErrNilGraph)
	}
	if opts.Restarts < 1 {
		return Result{}, fmt.Errorf("Search: restarts=%d: %w", opts.Restarts, ErrBadRestarts)
	}
	if _, err := opts.Method.build(); err != nil {
		return Result{}, fmt.Errorf("Search: %w", err)
	}

	log := opts.Logger
	log.Info().
		Str("method", string(opts.Method)).
		Int("restarts", opts.Restarts).
		Int("workers", opts.workers()).
		Int("nodes", g.NumNodes()).
		Int("edges", g.NumEdges()).
		Msg("angle search started")

	runs := make([]Run, opts.Restarts)
	angles := make([][]float64, opts.Restarts)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.workers())
	for r := 0; r < opts.Restarts; r++ {
		r := r
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			run, x, err := restart(ctx, g, opts, r)
			if err != nil {
				return fmt.Errorf("Search: restart %d: %w", r, err)
			}
			runs[r], angles[r] = run, x
			log.Debug().
				Int("restart", r).
				Float64("cost", run.Cost).
				Int("evals", run.FuncEvaluations).
				Str("status", run.Status).
				Msg("restart finished")
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}

	best := 0
	for r := 1; r < len(runs); r++ {
		if runs[r].Cost > runs[best].Cost {
			best = r
		}
	}
	res := Result{Cost: runs[best].Cost, Angles: angles[best], Best: best, Runs: runs}

	log.Info().Int("restart", best).Float64("cost", res.Cost).Msg("angle search finished")

	return res, nil
}

// restart runs one local search from the start drawn for index r.
func restart(ctx context.Context, g *graph.Model, opts Options, r int) (Run, []float64, error) {
	ev, err := ansatz.New(g)
	if err != nil {
		return Run{}, nil, err
	}
	run := Run{Restart: r}

	rng := rand.New(rand.NewSource(opts.Seed + int64(r)))
	x0 := make([]float64, ev.NumAngles())
	for i := range x0 {
		x0[i] = rng.Float64() * 2 * math.Pi
	}
	if len(x0) == 0 {
		run.Status = optimize.Success.String()
		return run, x0, nil
	}

	objective := func(x []float64) float64 {
		c, _ := ev.Cost(x)
		return -c
	}
	p := optimize.Problem{
		Func: objective,
		Status: func() (optimize.Status, error) {
			if err := ctx.Err(); err != nil {
				return optimize.Failure, err
			}
			return optimize.NotTerminated, nil
		},
	}
	if opts.Method.needsGradient() {
		p.Grad = func(grad, x []float64) {
			fd.Gradient(grad, objective, x, &fd.Settings{Formula: fd.Central})
		}
	}

	method, err := opts.Method.build()
	if err != nil {
		return Run{}, nil, err
	}
	res, err := optimize.Minimize(p, x0, &optimize.Settings{MajorIterations: opts.MaxIterations}, method)
	if cerr := ctx.Err(); cerr != nil {
		return Run{}, nil, cerr
	}
	if res == nil {
		return Run{}, nil, err
	}
	if err != nil {
		// Line-search failures still leave the best location seen.
		opts.Logger.Warn().Err(err).Int("restart", r).Msg("local search ended early")
	}

	x := wrapAngles(res.Location.X)
	cost, err := ev.Cost(x)
	if err != nil {
		return Run{}, nil, err
	}
	run.Cost = cost
	run.FuncEvaluations = res.Stats.FuncEvaluations
	run.Status = res.Status.String()

	return run, x, nil
}

// wrapAngles reduces every angle into [0, 2π). All cost terms are 2π-periodic.
func wrapAngles(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		w := math.Mod(v, 2*math.Pi)
		if w < 0 {
			w += 2 * math.Pi
		}
		if w >= 2*math.Pi {
			w = 0
		}
		out[i] = w
	}

	return out
}
