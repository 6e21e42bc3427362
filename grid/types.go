// Package grid defines core types, directions and sentinel errors
// for the grid subpackage of github.com/katalvlaran/labyrinth.
package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("grid: width and height must be positive")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrNoNeighbor indicates a direction that leaves the grid.
	ErrNoNeighbor = errors.New("grid: no neighbor in that direction")
	// ErrInvalidDirection indicates a Direction value outside North..West.
	ErrInvalidDirection = errors.New("grid: invalid direction")
)

// Direction names one side of a cell.
// The declaration order North, East, South, West is the canonical
// enumeration order used by Neighbors, Passages and every generator.
type Direction uint8

const (
	// North is the side facing row-1.
	North Direction = iota
	// East is the side facing col+1.
	East
	// South is the side facing row+1.
	South
	// West is the side facing col-1.
	West
)

// Directions lists all four directions in canonical order.
var Directions = [4]Direction{North, East, South, West}

// offsets holds (dRow, dCol) per Direction.
var offsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool { return d <= West }

// Opposite returns the direction facing d. Opposite of an invalid direction is itself.
func (d Direction) Opposite() Direction {
	if !d.Valid() {
		return d
	}

	return (d + 2) % 4
}

// Offset returns the row and column delta of a step in direction d.
func (d Direction) Offset() (dRow, dCol int) {
	if !d.Valid() {
		return 0, 0
	}

	return offsets[d][0], offsets[d][1]
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "invalid"
	}
}

// Cell identifies a grid cell by row and column.
type Cell struct {
	Row, Col int
}

// Step returns the cell one step from c in direction d, without bounds checking.
func (c Cell) Step(d Direction) Cell {
	dr, dc := d.Offset()

	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

// Walls is the four-bit wall mask of a single cell. Bit d is set when the
// wall on side d is present.
type Walls uint8

// allWalls is the mask of a freshly built, isolated cell.
const allWalls Walls = 1<<North | 1<<East | 1<<South | 1<<West

// Has reports whether the wall on side d is present.
func (w Walls) Has(d Direction) bool { return w&(1<<d) != 0 }

// Open returns the number of open sides.
func (w Walls) Open() int {
	n := 0
	for _, d := range Directions {
		if !w.Has(d) {
			n++
		}
	}

	return n
}

// Grid is a rectangular maze of Width×Height cells. Boundary walls are never
// removed; only walls between two in-bounds cells can be opened.
// A Grid is not safe for concurrent mutation.
type Grid struct {
	width, height int
	walls         []Walls // row-major, len == width*height
	open          int     // number of open internal walls
}
