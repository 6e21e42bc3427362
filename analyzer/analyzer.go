package analyzer

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// Analyze measures g and returns its Report.
//
// Steps:
//  1. Reject a nil grid; resolve options and validate weights.
//  2. If validation is on, Validate(g) must pass.
//  3. Count dead ends and the branching factor in one pass over cells.
//  4. Find the diameter with two BFS sweeps.
//  5. Compute the exact average pairwise distance from subtree sizes.
//  6. Combine into the quality index.
//
// Complexity: O(W×H) time and memory.
func Analyze(g *grid.Grid, opts ...Option) (Report, error) {
	if g == nil {
		return Report{}, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Weights.Validate(); err != nil {
		return Report{}, err
	}
	if o.Validate {
		if err := Validate(g); err != nil {
			return Report{}, err
		}
	}

	r := Report{
		Width:    g.Width(),
		Height:   g.Height(),
		Cells:    g.Size(),
		Passages: g.OpenWalls(),
	}
	r.DeadEnds = DeadEnds(g)
	r.BranchingFactor = BranchingFactor(g)
	r.LongestPath, r.Endpoints[0], r.Endpoints[1] = Diameter(g)
	r.AveragePathLength = AveragePathLength(g)
	r.QualityIndex = QualityIndex(r, o.Weights)

	return r, nil
}

// Validate returns ErrInvalidMaze unless g's passage graph is a spanning tree:
// exactly Size()-1 open walls and every cell reachable from (0,0).
// Complexity: O(W×H).
func Validate(g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	if g.Size() == 0 {
		return fmt.Errorf("%w: grid has no cells", ErrInvalidMaze)
	}
	if got, want := g.OpenWalls(), g.Size()-1; got != want {
		return fmt.Errorf("%w: %d open walls, want %d", ErrInvalidMaze, got, want)
	}
	dist := Distances(g, grid.Cell{})
	unreached := 0
	for _, d := range dist {
		if d < 0 {
			unreached++
		}
	}
	if unreached > 0 {
		// Right edge count but disconnected ⇒ some component holds a cycle.
		return fmt.Errorf("%w: %d cells unreachable from (0,0)", ErrInvalidMaze, unreached)
	}

	return nil
}

// Distances returns the passage distance from start to every cell, indexed
// row-major; unreachable cells hold -1. Returns nil if start is out of bounds.
// Complexity: O(W×H).
func Distances(g *grid.Grid, start grid.Cell) []int {
	if g == nil || !g.InBounds(start) {
		return nil
	}
	dist, _ := sweep(g, start)

	return dist
}

// sweep runs BFS from start and returns the distance slice and BFS order.
func sweep(g *grid.Grid, start grid.Cell) (dist []int, order []grid.Cell) {
	dist = make([]int, g.Size())
	for i := range dist {
		dist[i] = -1
	}
	dist[g.Index(start)] = 0
	order = make([]grid.Cell, 0, g.Size())
	order = append(order, start)
	for qi := 0; qi < len(order); qi++ {
		u := order[qi]
		du := dist[g.Index(u)]
		for _, v := range g.Passages(u) {
			vi := g.Index(v)
			if dist[vi] < 0 {
				dist[vi] = du + 1
				order = append(order, v)
			}
		}
	}

	return dist, order
}

// farthest returns the reached cell with the largest distance; ties keep the
// lowest row-major index.
func farthest(g *grid.Grid, dist []int) (grid.Cell, int) {
	best, bestD := 0, 0
	for i, d := range dist {
		if d > bestD {
			best, bestD = i, d
		}
	}

	return g.CellAt(best), bestD
}

// DeadEnds counts cells with exactly one open passage; 0 for a nil grid.
func DeadEnds(g *grid.Grid) int {
	if g == nil {
		return 0
	}
	n := 0
	for i := 0; i < g.Size(); i++ {
		if g.Degree(g.CellAt(i)) == 1 {
			n++
		}
	}

	return n
}

// BranchingFactor returns the mean passage degree over cells of degree ≥ 2,
// or 0 if there are none or g is nil.
func BranchingFactor(g *grid.Grid) float64 {
	if g == nil {
		return 0
	}
	sum, cells := 0, 0
	for i := 0; i < g.Size(); i++ {
		if d := g.Degree(g.CellAt(i)); d >= 2 {
			sum += d
			cells++
		}
	}
	if cells == 0 {
		return 0
	}

	return float64(sum) / float64(cells)
}

// Diameter returns the longest shortest-path length of a tree maze and its
// two endpoints, using the two-sweep method: the farthest cell a from (0,0),
// then the farthest cell b from a. Exact for trees.
// Complexity: O(W×H).
func Diameter(g *grid.Grid) (length int, a, b grid.Cell) {
	if g == nil || g.Size() == 0 {
		return 0, grid.Cell{}, grid.Cell{}
	}
	first, _ := sweep(g, grid.Cell{})
	a, _ = farthest(g, first)
	second, _ := sweep(g, a)
	b, length = farthest(g, second)

	return length, a, b
}

// AveragePathLength returns the exact mean distance over all unordered pairs
// of distinct cells of a tree maze (0 for a single cell).
//
// Each tree edge separating a subtree of s cells from the other n−s cells lies
// on s·(n−s) paths, so Σ distances = Σ_edges s·(n−s). Subtree sizes come from
// one BFS from (0,0), accumulated in reverse BFS order.
//
// Complexity: O(W×H).
func AveragePathLength(g *grid.Grid) float64 {
	if g == nil {
		return 0
	}
	n := g.Size()
	if n < 2 {
		return 0
	}
	dist, order := sweep(g, grid.Cell{})
	size := make([]int64, n)
	var total int64
	for i := len(order) - 1; i >= 0; i-- {
		u := order[i]
		ui := g.Index(u)
		size[ui]++
		if i == 0 {
			break
		}
		// The BFS parent is the passage neighbor one step closer to the root.
		for _, p := range g.Passages(u) {
			pi := g.Index(p)
			if dist[pi] == dist[ui]-1 {
				size[pi] += size[ui]
				total += size[ui] * (int64(n) - size[ui])
				break
			}
		}
	}
	pairs := int64(n) * int64(n-1) / 2

	return float64(total) / float64(pairs)
}

// QualityIndex combines the metrics in r with weights w; see the package doc
// for the formula.
func QualityIndex(r Report, w Weights) float64 {
	n := float64(r.Cells)
	if n <= 0 {
		return 0
	}
	q := w.DeadEnds * (1 - float64(r.DeadEnds)/n)
	if r.Cells > 1 {
		q += w.LongestPath * float64(r.LongestPath) / (n - 1)
		q += w.AveragePath * r.AveragePathLength / (n - 1)
	}
	branch := (r.BranchingFactor - 2) / 2
	if branch < 0 {
		branch = 0
	}
	if branch > 1 {
		branch = 1
	}
	q += w.Branching * branch

	return q
}
