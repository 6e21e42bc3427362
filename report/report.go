// Package report prints maze runs and algorithm comparisons for humans.
//
// WriteRun mirrors the classic mazegen output: a header line, the maze,
// the generation time and the quality metrics. WriteComparison renders one
// table row per algorithm. Styling uses lipgloss and is off by default so
// the output stays byte-stable for files and pipes.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/labyrinth/render"
	"github.com/katalvlaran/labyrinth/runner"
)

// Palette.
var (
	colorAccent = lipgloss.Color("#2CD7C7")
	colorMuted  = lipgloss.Color("#6C8A94")
	colorBorder = lipgloss.Color("#16858E")
)

// Styles groups the lipgloss styles used by the writers.
type Styles struct {
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Muted  lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Border lipgloss.Style
}

// PlainStyles renders text without any ANSI sequences.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()

	return Styles{
		Title:  plain,
		Label:  plain,
		Value:  plain,
		Muted:  plain,
		Header: plain.Padding(0, 1),
		Cell:   plain.Padding(0, 1),
		Border: plain,
	}
}

// ColorStyles is the terminal palette.
func ColorStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Label:  lipgloss.NewStyle().Bold(true),
		Value:  lipgloss.NewStyle().Foreground(colorAccent),
		Muted:  lipgloss.NewStyle().Foreground(colorMuted),
		Header: lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1),
		Cell:   lipgloss.NewStyle().Padding(0, 1),
		Border: lipgloss.NewStyle().Foreground(colorBorder),
	}
}

// Option configures the writers.
type Option func(*options)

type options struct {
	styles   Styles
	maze     bool
	markPath bool
}

func newOptions(opts []Option) options {
	o := options{styles: PlainStyles(), maze: true}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithStyle switches between ColorStyles (true) and PlainStyles (false).
func WithStyle(on bool) Option {
	return func(o *options) {
		if on {
			o.styles = ColorStyles()
		} else {
			o.styles = PlainStyles()
		}
	}
}

// WithStyles installs a custom style set.
func WithStyles(s Styles) Option {
	return func(o *options) {
		o.styles = s
	}
}

// WithMaze toggles the ASCII maze in WriteRun. Default true.
func WithMaze(on bool) Option {
	return func(o *options) {
		o.maze = on
	}
}

// WithMarkPath labels the longest path endpoints with S and E.
func WithMarkPath(on bool) Option {
	return func(o *options) {
		o.markPath = on
	}
}

// WriteRun prints a single run.
func WriteRun(w io.Writer, res runner.Result, opts ...Option) error {
	o := newOptions(opts)
	s := o.styles
	rep := res.Report

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", s.Title.Render(fmt.Sprintf(
		"Maze generated using %s algorithm:", res.Params.Method)))
	fmt.Fprintf(&b, "%s\n", s.Muted.Render(fmt.Sprintf(
		"%dx%d, seed %d, run %s", rep.Width, rep.Height, res.Params.Seed, res.ID)))
	if o.maze && res.Grid != nil {
		var ropts []render.Option
		if o.markPath {
			ropts = append(ropts, render.WithEndpoints(rep.Endpoints[0], rep.Endpoints[1]))
		}
		b.WriteString(render.ASCII(res.Grid, ropts...))
	}
	line := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", s.Label.Render(label+":"), s.Value.Render(value))
	}
	line("Time taken", res.Generation.String())

	fmt.Fprintf(&b, "\n%s\n", s.Title.Render("Maze Quality Metrics:"))
	line("Dead ends", strconv.Itoa(rep.DeadEnds))
	line("Longest path", strconv.Itoa(rep.LongestPath))
	line("Average path length", fmt.Sprintf("%.2f", rep.AveragePathLength))
	line("Branching factor", fmt.Sprintf("%.2f", rep.BranchingFactor))
	line("Quality Index", fmt.Sprintf("%.4f", rep.QualityIndex))

	_, err := io.WriteString(w, b.String())

	return err
}

// comparisonHeaders are the WriteComparison columns.
var comparisonHeaders = []string{
	"Algorithm", "Runs", "Time", "Dead ends", "Longest", "Avg path", "Branching", "Quality", "Min", "Max",
}

// WriteComparison prints one table row per summary, in the given order.
func WriteComparison(w io.Writer, sums []runner.Summary, opts ...Option) error {
	o := newOptions(opts)
	s := o.styles

	rows := make([][]string, 0, len(sums))
	for _, sum := range sums {
		rows = append(rows, []string{
			string(sum.Method),
			strconv.Itoa(sum.Runs),
			sum.MeanGeneration.Round(time.Microsecond).String(),
			fmt.Sprintf("%.2f", sum.DeadEnds),
			fmt.Sprintf("%.2f", sum.LongestPath),
			fmt.Sprintf("%.2f", sum.AveragePathLength),
			fmt.Sprintf("%.2f", sum.BranchingFactor),
			fmt.Sprintf("%.4f", sum.QualityIndex),
			fmt.Sprintf("%.4f", sum.MinQuality),
			fmt.Sprintf("%.4f", sum.MaxQuality),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		Headers(comparisonHeaders...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.Header
			}
			if col == 0 {
				return s.Cell.Bold(s.Label.GetBold())
			}
			return s.Cell.Align(lipgloss.Right)
		})

	_, err := fmt.Fprintln(w, t.Render())

	return err
}
