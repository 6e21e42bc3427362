// Package grid provides the maze cell/wall store:
//
//   - Construction of a fully walled W×H grid
//   - Symmetric wall removal between adjacent cells
//   - Neighbor and passage enumeration in North, East, South, West order
//   - Row-major index ↔ cell conversion for array-backed algorithms
package grid

import "fmt"

// MaxCells bounds Width×Height so cell arrays stay allocatable and index
// arithmetic cannot overflow.
const MaxCells = 1 << 28

// New constructs a Width×Height grid with every wall present.
// Returns ErrInvalidDimensions if width ≤ 0, height ≤ 0 or the cell count
// exceeds MaxCells.
// Algorithmic complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > MaxCells/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidDimensions, width, height, MaxCells)
	}
	walls := make([]Walls, width*height)
	for i := range walls {
		walls[i] = allWalls
	}

	return &Grid{width: width, height: height, walls: walls}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns the number of cells, Width×Height.
func (g *Grid) Size() int { return g.width * g.height }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// Index maps c to its row-major index: Row*Width + Col.
// The result is meaningless for out-of-bounds cells.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.width + c.Col
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	return Cell{Row: idx / g.width, Col: idx % g.width}
}

// check validates c and d and returns the neighbor across side d.
func (g *Grid) check(c Cell, d Direction) (Cell, error) {
	if !g.InBounds(c) {
		return Cell{}, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, c.Row, c.Col, g.width, g.height)
	}
	if !d.Valid() {
		return Cell{}, fmt.Errorf("%w: %d", ErrInvalidDirection, d)
	}
	n := c.Step(d)
	if !g.InBounds(n) {
		return Cell{}, fmt.Errorf("%w: %s of (%d,%d)", ErrNoNeighbor, d, c.Row, c.Col)
	}

	return n, nil
}

// HasWall reports whether the wall on side d of c is present.
// Boundary sides are rejected with ErrNoNeighbor; use Walls for raw flags.
// Complexity: O(1).
func (g *Grid) HasWall(c Cell, d Direction) (bool, error) {
	if _, err := g.check(c, d); err != nil {
		return false, err
	}

	return g.walls[g.Index(c)].Has(d), nil
}

// RemoveWall opens the passage between c and its neighbor in direction d,
// clearing both c's side d and the neighbor's opposite side.
// Removing an already open wall is a no-op.
// Complexity: O(1).
func (g *Grid) RemoveWall(c Cell, d Direction) error {
	n, err := g.check(c, d)
	if err != nil {
		return err
	}
	ci, ni := g.Index(c), g.Index(n)
	if !g.walls[ci].Has(d) {
		return nil
	}
	g.walls[ci] &^= 1 << d
	g.walls[ni] &^= 1 << d.Opposite()
	g.open++

	return nil
}

// Walls returns the raw wall mask of c, boundary sides included.
// Out-of-bounds cells report a fully walled mask.
func (g *Grid) Walls(c Cell) Walls {
	if !g.InBounds(c) {
		return allWalls
	}

	return g.walls[g.Index(c)]
}

// Neighbors returns the in-bounds cells adjacent to c in North, East, South,
// West order, regardless of walls. Returns nil if c is out of bounds.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	if !g.InBounds(c) {
		return nil
	}
	out := make([]Cell, 0, 4)
	for _, d := range Directions {
		if n := c.Step(d); g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// Passages returns the cells reachable from c through one open wall,
// in North, East, South, West order. Returns nil if c is out of bounds.
// Complexity: O(1).
func (g *Grid) Passages(c Cell) []Cell {
	if !g.InBounds(c) {
		return nil
	}
	w := g.walls[g.Index(c)]
	out := make([]Cell, 0, 4)
	for _, d := range Directions {
		if !w.Has(d) {
			out = append(out, c.Step(d))
		}
	}

	return out
}

// Degree returns the number of open passages of c (0 for out-of-bounds cells).
func (g *Grid) Degree(c Cell) int {
	if !g.InBounds(c) {
		return 0
	}

	return g.walls[g.Index(c)].Open()
}

// OpenWalls returns the number of open internal walls, i.e. the edge count
// of the passage graph.
func (g *Grid) OpenWalls() int { return g.open }

// Equal reports whether o has the same dimensions and identical walls.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.height != o.height || g.open != o.open {
		return false
	}
	for i := range g.walls {
		if g.walls[i] != o.walls[i] {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	walls := make([]Walls, len(g.walls))
	copy(walls, g.walls)

	return &Grid{width: g.width, height: g.height, walls: walls, open: g.open}
}
