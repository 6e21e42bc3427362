package runner_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/analyzer"
	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/runner"
)

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func params(m generator.Method) runner.Params {
	return runner.Params{Width: 9, Height: 7, Method: m, Seed: 42, Validate: true}
}

//--------------------------------------------------------------------------------
// Run
//--------------------------------------------------------------------------------

// TestRun verifies a run yields a spanning tree, a report and a run ID.
func TestRun(t *testing.T) {
	r := runner.New(runner.WithLogger(quiet()))
	for _, m := range generator.Methods() {
		t.Run(string(m), func(t *testing.T) {
			res, err := r.Run(context.Background(), params(m))
			require.NoError(t, err)

			_, err = uuid.Parse(res.ID)
			assert.NoError(t, err)
			require.NotNil(t, res.Grid)
			assert.Equal(t, 62, res.Grid.OpenWalls())
			assert.NoError(t, analyzer.Validate(res.Grid))
			assert.Equal(t, 63, res.Report.Cells)
			assert.Equal(t, 62, res.Report.Passages)
			assert.GreaterOrEqual(t, res.Report.DeadEnds, 1)
			assert.Equal(t, m, res.Params.Method)
		})
	}
}

// TestRun_Deterministic verifies equal params give equal mazes and distinct IDs.
func TestRun_Deterministic(t *testing.T) {
	r := runner.New(runner.WithLogger(quiet()))
	a, err := r.Run(context.Background(), params(generator.MethodPrim))
	require.NoError(t, err)
	b, err := r.Run(context.Background(), params(generator.MethodPrim))
	require.NoError(t, err)

	assert.True(t, a.Grid.Equal(b.Grid))
	assert.Equal(t, a.Report, b.Report)
	assert.NotEqual(t, a.ID, b.ID)
}

// TestRun_Weights verifies custom weights reach the analyzer.
func TestRun_Weights(t *testing.T) {
	r := runner.New(runner.WithLogger(quiet()))
	p := params(generator.MethodKruskal)
	p.Weights = analyzer.Weights{DeadEnds: 1}

	res, err := r.Run(context.Background(), p)
	require.NoError(t, err)
	n := float64(res.Report.Cells)
	assert.InDelta(t, 1-float64(res.Report.DeadEnds)/n, res.Report.QualityIndex, 1e-12)
}

// TestRun_Errors verifies failures are wrapped and counted.
func TestRun_Errors(t *testing.T) {
	m := runner.NewMetrics(nil)
	r := runner.New(runner.WithLogger(quiet()), runner.WithMetrics(m))

	_, err := r.Run(context.Background(), runner.Params{Width: 0, Height: 3, Method: generator.MethodDFS})
	assert.ErrorIs(t, err, grid.ErrInvalidDimensions)

	_, err = r.Run(context.Background(), runner.Params{Width: 3, Height: 3, Method: "eller"})
	assert.ErrorIs(t, err, generator.ErrUnknownAlgorithm)

	p := params(generator.MethodDFS)
	p.Weights = analyzer.Weights{DeadEnds: -1}
	_, err = r.Run(context.Background(), p)
	assert.ErrorIs(t, err, analyzer.ErrInvalidWeights)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("dfs", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("eller", "error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("dfs", "success")))
}

// TestRun_Canceled verifies a canceled context stops the run before any work.
func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.New(runner.WithLogger(quiet())).Run(ctx, params(generator.MethodDFS))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestRun_Logging verifies the structured run attributes.
func TestRun_Logging(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	res, err := runner.New(runner.WithLogger(log)).Run(context.Background(), params(generator.MethodDFS))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"run started"`)
	assert.Contains(t, out, `"msg":"run finished"`)
	assert.Contains(t, out, `"run_id":"`+res.ID+`"`)
	assert.Contains(t, out, `"algorithm":"dfs"`)
	assert.Contains(t, out, `"seed":42`)
	assert.Equal(t, 2, strings.Count(out, "\n"))
}

//--------------------------------------------------------------------------------
// Metrics
//--------------------------------------------------------------------------------

// TestMetrics_Observe verifies a successful run updates every collector.
func TestMetrics_Observe(t *testing.T) {
	m := runner.NewMetrics(nil)
	r := runner.New(runner.WithLogger(quiet()), runner.WithMetrics(m))

	res, err := r.Run(context.Background(), params(generator.MethodKruskal))
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("kruskal", "success")))
	assert.Equal(t, float64(res.Report.DeadEnds), testutil.ToFloat64(m.DeadEnds.WithLabelValues("kruskal")))
	assert.Equal(t, float64(res.Report.LongestPath), testutil.ToFloat64(m.LongestPath.WithLabelValues("kruskal")))
	assert.Equal(t, res.Report.QualityIndex, testutil.ToFloat64(m.QualityIndex.WithLabelValues("kruskal")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.GenerationSeconds))
	assert.Equal(t, 1, testutil.CollectAndCount(m.AnalysisSeconds))
}

// TestMetrics_WriteTextfile verifies the exposition file is written.
func TestMetrics_WriteTextfile(t *testing.T) {
	m := runner.NewMetrics(nil)
	r := runner.New(runner.WithLogger(quiet()), runner.WithMetrics(m))
	_, err := r.Run(context.Background(), params(generator.MethodDFS))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "mazegen.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `mazegen_runs_total{algorithm="dfs",outcome="success"} 1`)
	assert.Contains(t, string(data), "mazegen_generation_duration_seconds_bucket")
	assert.Contains(t, string(data), `mazegen_quality_index{algorithm="dfs"}`)
}

//--------------------------------------------------------------------------------
// Compare
//--------------------------------------------------------------------------------

// TestCompare verifies one averaged summary per method, in method order.
func TestCompare(t *testing.T) {
	m := runner.NewMetrics(nil)
	r := runner.New(runner.WithLogger(quiet()), runner.WithMetrics(m))
	p := runner.Params{Width: 6, Height: 5, Validate: true}

	sums, err := r.Compare(context.Background(), p, 3)
	require.NoError(t, err)
	require.Len(t, sums, 3)

	for i, method := range generator.Methods() {
		s := sums[i]
		assert.Equal(t, method, s.Method)
		assert.Equal(t, 3, s.Runs)
		assert.GreaterOrEqual(t, s.DeadEnds, 1.0)
		assert.LessOrEqual(t, s.LongestPath, 29.0)
		assert.LessOrEqual(t, s.MinQuality, s.QualityIndex)
		assert.GreaterOrEqual(t, s.MaxQuality, s.QualityIndex)
	}
	for _, alg := range []string{"dfs", "prim", "kruskal"} {
		assert.Equal(t, 3.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues(alg, "success")))
	}
}

// TestCompare_Seeds verifies run i uses seed p.Seed+i with 0 skipped.
func TestCompare_Seeds(t *testing.T) {
	r := runner.New(runner.WithLogger(quiet()))
	ctx := context.Background()

	sums, err := r.Compare(ctx, runner.Params{Width: 7, Height: 7}, 2, generator.MethodDFS)
	require.NoError(t, err)
	require.Len(t, sums, 1)

	var want float64
	for _, seed := range []int64{1, 2} {
		res, err := r.Run(ctx, runner.Params{Width: 7, Height: 7, Method: generator.MethodDFS, Seed: seed})
		require.NoError(t, err)
		want += res.Report.QualityIndex
	}
	assert.InDelta(t, want/2, sums[0].QualityIndex, 1e-12)
}

// TestCompare_Errors covers invalid runs and failing runs.
func TestCompare_Errors(t *testing.T) {
	r := runner.New(runner.WithLogger(quiet()))
	ctx := context.Background()

	_, err := r.Compare(ctx, runner.Params{Width: 3, Height: 3}, 0)
	assert.ErrorIs(t, err, runner.ErrInvalidRuns)

	_, err = r.Compare(ctx, runner.Params{Width: -1, Height: 3}, 1)
	assert.ErrorIs(t, err, grid.ErrInvalidDimensions)

	_, err = r.Compare(ctx, runner.Params{Width: 3, Height: 3}, 1, "eller")
	assert.ErrorIs(t, err, generator.ErrUnknownAlgorithm)
}
