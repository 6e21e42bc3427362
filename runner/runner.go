package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/labyrinth/analyzer"
	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/grid"
)

// ErrInvalidRuns is returned by Compare when runs is not positive.
var ErrInvalidRuns = errors.New("runner: runs must be positive")

// Params describes a single run.
type Params struct {
	Width, Height int
	Method        generator.Method
	Seed          int64 // 0 ⇒ generator default seed

	// Validate enables the analyzer's spanning-tree check.
	Validate bool

	// Weights for the quality index; the zero value selects analyzer.DefaultWeights.
	Weights analyzer.Weights
}

// Result is the outcome of one successful run.
type Result struct {
	ID     string // random UUID, also logged as run_id
	Params Params
	Grid   *grid.Grid
	Report analyzer.Report

	Generation time.Duration // carving time
	Analysis   time.Duration // analyzer time
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) {
		r.metrics = m
	}
}

// Runner executes and instruments maze runs. It holds no per-run state and may
// be shared by goroutines.
type Runner struct {
	logger  *slog.Logger
	metrics *Metrics
}

// New returns a Runner logging to slog.Default() without metrics unless
// configured otherwise.
func New(opts ...Option) *Runner {
	r := &Runner{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run builds a fresh grid, carves it and analyzes it.
func (r *Runner) Run(ctx context.Context, p Params) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	res := Result{ID: uuid.NewString(), Params: p}
	log := r.logger.With(
		slog.String("run_id", res.ID),
		slog.String("algorithm", string(p.Method)),
		slog.Int("width", p.Width),
		slog.Int("height", p.Height),
		slog.Int64("seed", p.Seed),
	)
	log.DebugContext(ctx, "run started")

	g, err := grid.New(p.Width, p.Height)
	if err != nil {
		return Result{}, r.fail(ctx, log, p, err)
	}

	start := time.Now()
	if err = generator.Generate(g, p.Method, generator.WithSeed(p.Seed)); err != nil {
		return Result{}, r.fail(ctx, log, p, err)
	}
	res.Generation = time.Since(start)

	weights := p.Weights
	if weights == (analyzer.Weights{}) {
		weights = analyzer.DefaultWeights()
	}
	start = time.Now()
	res.Report, err = analyzer.Analyze(g,
		analyzer.WithValidation(p.Validate),
		analyzer.WithWeights(weights),
	)
	if err != nil {
		return Result{}, r.fail(ctx, log, p, err)
	}
	res.Analysis = time.Since(start)
	res.Grid = g

	log.InfoContext(ctx, "run finished",
		slog.Duration("elapsed", res.Generation),
		slog.Int("dead_ends", res.Report.DeadEnds),
		slog.Int("longest_path", res.Report.LongestPath),
		slog.Float64("quality", res.Report.QualityIndex),
	)
	r.metrics.observe(res)

	return res, nil
}

func (r *Runner) fail(ctx context.Context, log *slog.Logger, p Params, err error) error {
	log.ErrorContext(ctx, "run failed", slog.String("error", err.Error()))
	r.metrics.fail(string(p.Method))

	return fmt.Errorf("runner: %s %dx%d: %w", p.Method, p.Width, p.Height, err)
}

// Summary averages the reports of several runs of one algorithm.
type Summary struct {
	Method generator.Method
	Runs   int

	MeanGeneration    time.Duration
	DeadEnds          float64
	LongestPath       float64
	AveragePathLength float64
	BranchingFactor   float64
	QualityIndex      float64

	MinQuality, MaxQuality float64
}

// Compare runs every method (all of generator.Methods() if none are given)
// runs times on a p.Width×p.Height grid. Run i of each method uses seed
// p.Seed+i, skipping 0 so every run gets a distinct sequence. Summaries are
// returned in method order.
func (r *Runner) Compare(ctx context.Context, p Params, runs int, methods ...generator.Method) ([]Summary, error) {
	if runs <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRuns, runs)
	}
	if len(methods) == 0 {
		methods = generator.Methods()
	}

	out := make([]Summary, 0, len(methods))
	for _, m := range methods {
		s := Summary{Method: m, Runs: runs, MinQuality: math.Inf(1), MaxQuality: math.Inf(-1)}
		var total time.Duration
		seed := p.Seed
		for i := 0; i < runs; i++ {
			if seed == 0 {
				seed++
			}
			q := p
			q.Method, q.Seed = m, seed
			seed++

			res, err := r.Run(ctx, q)
			if err != nil {
				return nil, err
			}
			rep := res.Report
			total += res.Generation
			s.DeadEnds += float64(rep.DeadEnds)
			s.LongestPath += float64(rep.LongestPath)
			s.AveragePathLength += rep.AveragePathLength
			s.BranchingFactor += rep.BranchingFactor
			s.QualityIndex += rep.QualityIndex
			s.MinQuality = math.Min(s.MinQuality, rep.QualityIndex)
			s.MaxQuality = math.Max(s.MaxQuality, rep.QualityIndex)
		}
		n := float64(runs)
		s.MeanGeneration = total / time.Duration(runs)
		s.DeadEnds /= n
		s.LongestPath /= n
		s.AveragePathLength /= n
		s.BranchingFactor /= n
		s.QualityIndex /= n
		out = append(out, s)
	}

	return out, nil
}
