// Package analyzer measures the structure of a finished perfect maze.
//
// What:
//
//   - Dead ends:        cells with exactly one open passage.
//   - Longest path:     the tree diameter in edges, found with two BFS sweeps.
//   - Average path:     exact mean distance over all unordered pairs of distinct cells.
//   - Branching factor: mean passage degree over cells with degree ≥ 2.
//   - Quality index:    weighted combination of the normalized metrics.
//
// Why:
//
//   - The three generators share a contract (spanning tree) but produce very different
//     textures; these numbers make the difference visible and comparable across runs.
//
// Definitions:
//
//	Average path length is computed exactly in O(n) rather than by O(n²) all-pairs BFS.
//	In a tree, the edge joining a subtree of size s to the rest lies on the path of
//	exactly s·(n−s) pairs, so the sum of all pairwise distances is Σ s·(n−s) over edges.
//
//	Quality index, with n = W·H and weights w (DefaultWeights: 0.25, 0.30, 0.25, 0.20):
//
//	    Q = wD·(1 − deadEnds/n)
//	      + wL·longest/(n−1)
//	      + wA·average/(n−1)
//	      + wB·clamp((branching−2)/2, 0, 1)
//
//	Longer corridors raise the L and A terms, richer forking raises the B term, fewer dead
//	ends raise the D term. The path terms are 0 for a single cell.
//
// Complexity:
//
//   - Analyze: O(W×H) time and memory (validation, two diameter sweeps and one
//     subtree-size pass, each linear).
//
// Errors:
//
//   - ErrNilGrid:     g is nil.
//   - ErrInvalidMaze: validation is enabled (the default) and g is not a spanning tree.
//     With WithValidation(false) no check is made and metrics over a non-tree are undefined.
package analyzer
