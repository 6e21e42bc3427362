// Package analyzer defines the metrics report, quality weights, options
// and sentinel errors.
package analyzer

import (
	"errors"

	"github.com/katalvlaran/labyrinth/grid"
)

// Sentinel errors for analysis.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("analyzer: grid is nil")

	// ErrInvalidMaze is returned when the passage graph is not a spanning tree.
	ErrInvalidMaze = errors.New("analyzer: maze is not a spanning tree")

	// ErrInvalidWeights is returned when a quality weight is negative or all are zero.
	ErrInvalidWeights = errors.New("analyzer: invalid quality weights")
)

// Report is an immutable snapshot of maze metrics.
type Report struct {
	Width, Height int
	Cells         int // Width×Height
	Passages      int // open internal walls

	DeadEnds    int
	LongestPath int          // tree diameter, in edges
	Endpoints   [2]grid.Cell // the two ends of one longest path

	AveragePathLength float64 // mean distance over all unordered pairs
	BranchingFactor   float64 // mean degree over cells with degree ≥ 2
	QualityIndex      float64
}

// Weights scales each term of the quality index.
type Weights struct {
	DeadEnds    float64 `yaml:"dead_ends"`
	LongestPath float64 `yaml:"longest_path"`
	AveragePath float64 `yaml:"average_path"`
	Branching   float64 `yaml:"branching"`
}

// DefaultWeights returns the reference weighting 0.25/0.30/0.25/0.20.
func DefaultWeights() Weights {
	return Weights{
		DeadEnds:    0.25,
		LongestPath: 0.30,
		AveragePath: 0.25,
		Branching:   0.20,
	}
}

// Validate reports ErrInvalidWeights if any weight is negative or all are zero.
func (w Weights) Validate() error {
	if w.DeadEnds < 0 || w.LongestPath < 0 || w.AveragePath < 0 || w.Branching < 0 {
		return ErrInvalidWeights
	}
	if w.DeadEnds+w.LongestPath+w.AveragePath+w.Branching == 0 {
		return ErrInvalidWeights
	}

	return nil
}

// Option configures Analyze via functional arguments.
type Option func(*Options)

// Options holds analysis parameters.
type Options struct {
	// Validate enables the spanning-tree check before measuring. Default true.
	Validate bool

	// Weights for the quality index. Default DefaultWeights().
	Weights Weights
}

// DefaultOptions returns Options with validation on and default weights.
func DefaultOptions() Options {
	return Options{
		Validate: true,
		Weights:  DefaultWeights(),
	}
}

// WithValidation toggles the spanning-tree check.
func WithValidation(on bool) Option {
	return func(o *Options) {
		o.Validate = on
	}
}

// WithWeights replaces the quality weights.
func WithWeights(w Weights) Option {
	return func(o *Options) {
		o.Weights = w
	}
}
