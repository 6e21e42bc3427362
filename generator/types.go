// Package generator defines configuration options, method selectors and
// sentinel errors for maze generation.
package generator

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/labyrinth/grid"
)

// Sentinel errors for maze generation.
var (
	// ErrUnknownAlgorithm indicates a method name outside dfs, prim, kruskal.
	ErrUnknownAlgorithm = errors.New("generator: unknown algorithm")
	// ErrNilGrid indicates a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("generator: grid is nil")
	// ErrGridNotFresh indicates the grid already has open walls.
	ErrGridNotFresh = errors.New("generator: grid must be freshly constructed")
	// ErrStartOutOfBounds indicates WithStart named a cell outside the grid.
	ErrStartOutOfBounds = errors.New("generator: start cell out of bounds")
)

// Method selects a generation algorithm.
type Method string

const (
	// MethodDFS selects the depth-first recursive backtracker.
	MethodDFS Method = "dfs"
	// MethodPrim selects randomized Prim's algorithm.
	MethodPrim Method = "prim"
	// MethodKruskal selects randomized Kruskal's algorithm.
	MethodKruskal Method = "kruskal"
)

// Methods returns every supported method in presentation order.
func Methods() []Method {
	return []Method{MethodDFS, MethodPrim, MethodKruskal}
}

// ParseMethod maps a case-insensitive selector to a Method.
// Returns ErrUnknownAlgorithm for anything else.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case MethodDFS, MethodPrim, MethodKruskal:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q (want one of dfs, prim, kruskal)", ErrUnknownAlgorithm, s)
	}
}

// Source is the random stream generators draw from.
// Intn must return a uniform value in [0, n) for n > 0. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// CarveFunc observes a wall removal: the passage from → to through side d of from.
type CarveFunc func(from, to grid.Cell, d grid.Direction)

// Options configures a generator run. Use DefaultOptions and Option values.
type Options struct {
	// Source supplies randomness. When nil, a stream seeded from Seed is used.
	Source Source

	// Seed seeds the default stream when Source is nil. 0 ⇒ defaultSeed.
	Seed int64

	// Start is the cell the tree grows from (DFS, Prim). Kruskal does not use
	// it, but every method rejects an out-of-bounds Start with
	// ErrStartOutOfBounds. nil ⇒ (0,0) for DFS and a random cell for Prim.
	Start *grid.Cell

	// OnCarve, if non-nil, is called after every wall removal, in order.
	OnCarve CarveFunc
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options with no source, seed 0, no start and no hook.
func DefaultOptions() Options {
	return Options{}
}

// WithSeed seeds the default random stream. Ignored when WithSource is given.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithSource injects an explicit random stream.
func WithSource(src Source) Option {
	return func(o *Options) {
		o.Source = src
	}
}

// WithStart fixes the cell DFS and Prim grow from. Kruskal carves the same
// maze with or without it; an out-of-bounds cell fails all three methods.
func WithStart(c grid.Cell) Option {
	return func(o *Options) {
		start := c
		o.Start = &start
	}
}

// WithOnCarve installs a hook observing every wall removal.
func WithOnCarve(fn CarveFunc) Option {
	return func(o *Options) {
		o.OnCarve = fn
	}
}

// Generate runs the algorithm selected by m on g.
//
//	– MethodDFS:     DFS(g, opts...)
//	– MethodPrim:    Prim(g, opts...)
//	– MethodKruskal: Kruskal(g, opts...)
//	– otherwise:     ErrUnknownAlgorithm.
func Generate(g *grid.Grid, m Method, opts ...Option) error {
	switch m {
	case MethodDFS:
		return DFS(g, opts...)
	case MethodPrim:
		return Prim(g, opts...)
	case MethodKruskal:
		return Kruskal(g, opts...)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(m))
	}
}

// run is the resolved state shared by all generators.
type run struct {
	g   *grid.Grid
	rng Source
	opt Options
}

// prepare validates g, applies opts and resolves the random source.
func prepare(g *grid.Grid, opts []Option) (*run, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.Size() == 0 {
		return nil, fmt.Errorf("%w: got %dx%d", grid.ErrInvalidDimensions, g.Width(), g.Height())
	}
	if g.OpenWalls() != 0 {
		return nil, fmt.Errorf("%w: %d walls already open", ErrGridNotFresh, g.OpenWalls())
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Start != nil && !g.InBounds(*o.Start) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrStartOutOfBounds, o.Start.Row, o.Start.Col)
	}
	var src Source = o.Source
	if src == nil {
		src = seededSource(o.Seed)
	}

	return &run{g: g, rng: src, opt: o}, nil
}

// carve opens the wall on side d of from and notifies the hook.
// from and d always come from in-bounds enumeration, so the error is impossible.
func (r *run) carve(from grid.Cell, d grid.Direction) {
	_ = r.g.RemoveWall(from, d)
	if r.opt.OnCarve != nil {
		r.opt.OnCarve(from, from.Step(d), d)
	}
}

var _ Source = (*rand.Rand)(nil)
