// Package generator carves perfect mazes into a *grid.Grid using three classic
// randomized spanning-tree algorithms: the depth-first backtracker, Prim's and
// Kruskal's.
//
// What & Why
//
//   - What is a perfect maze?
//     A maze whose passage graph is a spanning tree of the grid: every cell is
//     reachable from every other cell along exactly one path. For a W×H grid this
//     means exactly W·H−1 open walls and no cycles.
//
//   - Why three algorithms?
//     They share the spanning-tree contract but differ in traversal policy, which
//     shapes the statistics of the result:
//
//   - DFS (recursive backtracker): long winding corridors, few branches, long diameter.
//
//   - Prim (randomized): grows a blob from one cell, many short dead ends, even branching.
//
//   - Kruskal (randomized): merges random forests, uniform texture, no directional bias.
//
// Algorithms Provided
//
//   - DFS(g *grid.Grid, opts ...Option) error
//     Explicit stack (no recursion) starting at (0,0); each step picks a uniformly random
//     unvisited neighbor, carves to it and pushes it, or pops when none remain.
//     Time O(W·H), memory O(W·H).
//
//   - Prim(g *grid.Grid, opts ...Option) error
//     Frontier of cells adjacent to the tree; each step removes a uniformly random frontier
//     cell and joins it to a uniformly random in-tree neighbor.
//     Time O(W·H), memory O(W·H).
//
//   - Kruskal(g *grid.Grid, opts ...Option) error
//     Shuffles every internal wall, then opens a wall only if a disjoint-set arena reports
//     its two cells in different components. Time O(W·H·α(W·H)), memory O(W·H).
//
//   - Generate(g *grid.Grid, m Method, opts ...Option) error
//     Dispatches by Method ("dfs", "prim", "kruskal").
//
// Randomness & Determinism
//
//	Generators never touch a global random state. A Source (any value with Intn,
//	*rand.Rand included) is injected via WithSource, or built from WithSeed. Seed 0
//	maps to a fixed default seed, so an unconfigured run is still reproducible.
//	Same algorithm + same grid size + same seed ⇒ identical grid.
//
// Error Conditions
//
//   - ErrNilGrid:           g is nil.
//   - grid.ErrInvalidDimensions: g is a zero-value grid with no cells.
//   - ErrGridNotFresh:      g already has open walls; generators need a freshly built grid.
//   - ErrStartOutOfBounds:  WithStart names a cell outside g.
//   - ErrUnknownAlgorithm:  Generate/ParseMethod received an unsupported method name.
//
// For examples of usage, see example_test.go in this package.
package generator
