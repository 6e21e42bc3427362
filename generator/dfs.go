package generator

import "github.com/katalvlaran/labyrinth/grid"

// DFS carves a perfect maze into g with the recursive backtracker, run on an
// explicit stack.
//
// Steps:
//  1. Validate g (non-nil, non-empty, fresh) and resolve options.
//  2. Push the start cell ((0,0) unless WithStart) and mark it visited.
//  3. While the stack is non-empty, look at the top cell:
//     a. Collect its unvisited neighbors in North, East, South, West order.
//     b. If any, pick one with Intn(len), carve the wall to it, mark it and push it.
//     c. Otherwise pop (backtrack).
//
// Every cell is pushed exactly once, so the loop carves exactly W·H−1 walls.
//
// Complexity: O(W·H) time, O(W·H) memory.
func DFS(g *grid.Grid, opts ...Option) error {
	r, err := prepare(g, opts)
	if err != nil {
		return err
	}

	start := grid.Cell{}
	if r.opt.Start != nil {
		start = *r.opt.Start
	}

	visited := make([]bool, g.Size())
	stack := make([]grid.Cell, 0, g.Size())
	visited[g.Index(start)] = true
	stack = append(stack, start)

	var candidates [4]grid.Direction
	for len(stack) > 0 {
		curr := stack[len(stack)-1]

		n := 0
		for _, d := range grid.Directions {
			next := curr.Step(d)
			if g.InBounds(next) && !visited[g.Index(next)] {
				candidates[n] = d
				n++
			}
		}
		if n == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[r.rng.Intn(n)]
		next := curr.Step(d)
		r.carve(curr, d)
		visited[g.Index(next)] = true
		stack = append(stack, next)
	}

	return nil
}
