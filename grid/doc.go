// Package grid models a rectangular maze as a fixed array of cells separated
// by walls, the shared state every generator mutates and every analysis reads.
//
// What:
//
//   - Grid holds Width×Height cells in row-major order; cell (r,c) has index r*Width + c.
//   - Every cell carries four wall flags (North, East, South, West); a fresh grid is fully walled.
//   - RemoveWall opens a passage symmetrically: the wall on the cell's side and the
//     facing wall of its neighbor are cleared together, so both views always agree.
//   - The passage graph (cells as vertices, open walls as edges) is what generators
//     turn into a spanning tree and what the analyzer measures.
//
// Why:
//
//   - One compact, allocation-free representation (a byte per cell) serves generation,
//     rendering and graph analysis alike.
//   - Symmetric mutation makes the wall-consistency invariant impossible to break from
//     outside the package.
//
// Complexity:
//
//   - New:                O(W×H) time and memory.
//   - HasWall/RemoveWall: O(1).
//   - Neighbors/Passages: O(1), at most four cells.
//   - Equal/Clone:        O(W×H).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height is not positive.
//   - ErrOutOfBounds:       the referenced cell lies outside the grid.
//   - ErrNoNeighbor:        the direction points off the grid boundary.
//   - ErrInvalidDirection:  the direction value is not one of the four compass points.
package grid
