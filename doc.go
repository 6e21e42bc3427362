// Package labyrinth is a small toolkit for carving perfect mazes on
// rectangular grids and measuring how interesting they are.
//
// 🚀 What is inside?
//
//   - grid/     : W×H cell grid with symmetric wall flags and neighbor queries
//   - generator/: DFS backtracker, randomized Prim, randomized Kruskal
//   - analyzer/ : dead ends, diameter, mean path length, branching, quality index
//   - render/   : deterministic ASCII drawing
//   - runner/   : timed, logged, Prometheus-instrumented runs and comparisons
//   - report/   : terminal output for runs and comparison tables
//   - config/   : YAML, .env and MAZEGEN_* settings
//   - cmd/mazegen: the command-line front end
//
// ✨ Guarantees
//
//   - Every generator yields a spanning tree: W·H−1 open walls, all cells reachable.
//   - Same algorithm and same seed ⇒ identical maze.
//   - Library packages never log and never panic on user input.
//
// Quick ASCII example (3×2, one path between any two cells):
//
//	+---+---+---+
//	|           |
//	+---+---+   +
//	|           |
//	+---+---+---+
//
//	go install github.com/katalvlaran/labyrinth/cmd/mazegen@latest
package labyrinth
