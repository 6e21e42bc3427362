package generator

import "github.com/katalvlaran/labyrinth/grid"

// edge is a candidate wall between cell index a and the cell across side dir.
type edge struct {
	a   int
	dir grid.Direction
}

// Kruskal carves a perfect maze into g with randomized Kruskal's algorithm.
// It uses an array-backed disjoint set with path compression and union by rank.
//
// Steps:
//  1. Validate g and resolve options (WithStart is ignored).
//  2. List every internal wall row-major: the east wall, then the south wall of each cell.
//  3. Fisher–Yates shuffle the list with the injected source.
//  4. For each wall (a,b): if Union(a,b) merges two sets, carve it; otherwise skip it,
//     since opening it would close a cycle.
//  5. Stop once W·H−1 walls are carved.
//
// The full grid graph is connected, so the accepted edges always form a spanning tree.
//
// Complexity: O(E + E·α(V)) with E ≈ 2·W·H, memory O(W·H).
func Kruskal(g *grid.Grid, opts ...Option) error {
	r, err := prepare(g, opts)
	if err != nil {
		return err
	}

	w, h := g.Width(), g.Height()
	edges := make([]edge, 0, (w-1)*h+w*(h-1))
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			if col < w-1 {
				edges = append(edges, edge{a: idx, dir: grid.East})
			}
			if row < h-1 {
				edges = append(edges, edge{a: idx, dir: grid.South})
			}
		}
	}
	shuffleEdges(edges, r.rng)

	ds := NewDisjointSet(g.Size())
	want := g.Size() - 1
	for _, e := range edges {
		if g.OpenWalls() == want {
			break
		}
		from := g.CellAt(e.a)
		if ds.Union(e.a, g.Index(from.Step(e.dir))) {
			r.carve(from, e.dir)
		}
	}

	return nil
}
