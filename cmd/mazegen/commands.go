package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/report"
	"github.com/katalvlaran/labyrinth/runner"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	stdout, stderr io.Writer

	configPath  string
	logLevel    string
	logFormat   string
	metricsFile string

	cfg config.Config
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:          "mazegen",
		Short:        "Generate perfect mazes and measure their quality",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: auto, text, json")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")

	root.AddCommand(
		newGenerateCmd(a),
		newCompareCmd(a),
		newAlgorithmsCmd(a),
	)

	return root
}

// load resolves the configuration and applies the persistent flags that
// were set explicitly.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = a.metricsFile
	}
	a.cfg = cfg

	return nil
}

// dimensionFlags binds the grid and seed flags shared by generate and compare.
type dimensionFlags struct {
	width, height int
	seed          int64
	noValidate    bool
}

func (d *dimensionFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&d.width, "width", "w", 0, "maze width in cells")
	f.IntVarP(&d.height, "height", "g", 0, "maze height in cells")
	f.Int64Var(&d.seed, "seed", 0, "random seed (0 uses the default seed)")
	f.BoolVar(&d.noValidate, "no-validate", false, "skip the spanning-tree check")
}

func (d *dimensionFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("width") {
		cfg.Width = d.width
	}
	if f.Changed("height") {
		cfg.Height = d.height
	}
	if f.Changed("seed") {
		cfg.Seed = d.seed
	}
	if f.Changed("no-validate") {
		cfg.Validate = !d.noValidate
	}
}

func newGenerateCmd(a *app) *cobra.Command {
	var (
		dims      dimensionFlags
		algorithm string
		noRender  bool
		markPath  bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one maze, print it and report its quality",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dims.apply(cmd, &a.cfg)
			if cmd.Flags().Changed("algorithm") {
				a.cfg.Algorithm = algorithm
			}
			if err := a.cfg.Check(); err != nil {
				return err
			}
			method, _ := a.cfg.Method()

			r, metrics := a.newRunner()
			res, err := r.Run(cmd.Context(), a.params(method))
			if err == nil {
				err = report.WriteRun(a.stdout, res,
					report.WithStyle(isTerminal(a.stdout)),
					report.WithMaze(!noRender),
					report.WithMarkPath(markPath),
				)
			}

			return errors.Join(err, a.flush(metrics))
		},
	}
	dims.register(cmd)
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "generation algorithm: "+methodList())
	cmd.Flags().BoolVar(&noRender, "no-render", false, "do not print the maze")
	cmd.Flags().BoolVar(&markPath, "mark-path", false, "mark the longest path endpoints with S and E")

	return cmd
}

func newCompareCmd(a *app) *cobra.Command {
	var (
		dims dimensionFlags
		runs int
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every algorithm several times and compare mean metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dims.apply(cmd, &a.cfg)
			if cmd.Flags().Changed("runs") {
				a.cfg.Runs = runs
			}
			if err := a.cfg.Check(); err != nil {
				return err
			}

			r, metrics := a.newRunner()
			sums, err := r.Compare(cmd.Context(), a.params(""), a.cfg.Runs)
			if err == nil {
				err = report.WriteComparison(a.stdout, sums, report.WithStyle(isTerminal(a.stdout)))
			}

			return errors.Join(err, a.flush(metrics))
		},
	}
	dims.register(cmd)
	cmd.Flags().IntVar(&runs, "runs", 0, "runs per algorithm (default from config)")

	return cmd
}

func newAlgorithmsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available generation algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, m := range generator.Methods() {
				if _, err := io.WriteString(a.stdout, string(m)+"\n"); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) params(m generator.Method) runner.Params {
	return runner.Params{
		Width:    a.cfg.Width,
		Height:   a.cfg.Height,
		Method:   m,
		Seed:     a.cfg.Seed,
		Validate: a.cfg.Validate,
		Weights:  a.cfg.Weights,
	}
}

// newRunner builds a Runner for the resolved configuration. Metrics are nil
// unless a metrics file is configured.
func (a *app) newRunner() (*runner.Runner, *runner.Metrics) {
	opts := []runner.Option{runner.WithLogger(newLogger(a.stderr, a.cfg.LogLevel, a.cfg.LogFormat))}
	var m *runner.Metrics
	if a.cfg.MetricsFile != "" {
		m = runner.NewMetrics(nil)
		opts = append(opts, runner.WithMetrics(m))
	}

	return runner.New(opts...), m
}

func (a *app) flush(m *runner.Metrics) error {
	if m == nil {
		return nil
	}

	return m.WriteTextfile(a.cfg.MetricsFile)
}

// newLogger builds a slog logger on w. The auto format picks text for a
// terminal and JSON otherwise. level was validated by config.Check.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	_ = lvl.UnmarshalText([]byte(level))
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case config.LogFormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts))
	case config.LogFormatText:
		return slog.New(slog.NewTextHandler(w, opts))
	}
	if isTerminal(w) {
		return slog.New(slog.NewTextHandler(w, opts))
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func methodList() string {
	names := make([]string, 0, 3)
	for _, m := range generator.Methods() {
		names = append(names, string(m))
	}

	return strings.Join(names, ", ")
}
