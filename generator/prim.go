package generator

import "github.com/katalvlaran/labyrinth/grid"

// Cell membership during Prim's growth.
const (
	cellOut uint8 = iota
	cellFrontier
	cellIn
)

// Prim carves a perfect maze into g with randomized Prim's algorithm.
//
// Steps:
//  1. Validate g and resolve options.
//  2. Pick the start cell (WithStart, else uniformly random), mark it in and
//     add its neighbors to the frontier.
//  3. While the frontier is non-empty:
//     a. Remove a uniformly random frontier cell (swap-remove).
//     b. Collect its in-tree neighbors (North, East, South, West order) and carve
//     the wall to one chosen uniformly.
//     c. Mark it in and add its out neighbors to the frontier.
//
// A cell enters the frontier at most once, so exactly W·H−1 walls are carved.
//
// Complexity: O(W·H) time, O(W·H) memory.
func Prim(g *grid.Grid, opts ...Option) error {
	r, err := prepare(g, opts)
	if err != nil {
		return err
	}

	var start grid.Cell
	if r.opt.Start != nil {
		start = *r.opt.Start
	} else {
		start = g.CellAt(r.rng.Intn(g.Size()))
	}

	state := make([]uint8, g.Size())
	front := make([]grid.Cell, 0, g.Size())
	expand := func(c grid.Cell) {
		state[g.Index(c)] = cellIn
		for _, n := range g.Neighbors(c) {
			if state[g.Index(n)] == cellOut {
				state[g.Index(n)] = cellFrontier
				front = append(front, n)
			}
		}
	}
	expand(start)

	var joins [4]grid.Direction
	for len(front) > 0 {
		i := r.rng.Intn(len(front))
		curr := front[i]
		front[i] = front[len(front)-1]
		front = front[:len(front)-1]

		k := 0
		for _, d := range grid.Directions {
			n := curr.Step(d)
			if g.InBounds(n) && state[g.Index(n)] == cellIn {
				joins[k] = d
				k++
			}
		}
		// k ≥ 1: a frontier cell was added by an in-tree neighbor.
		r.carve(curr, joins[r.rng.Intn(k)])
		expand(curr)
	}

	return nil
}
