// Package render draws a maze grid as deterministic ASCII art.
//
// Layout: every cell is three characters wide and one line tall, framed by
// '+' corners. A present wall is drawn as "---" (north/south) or '|'
// (east/west); an open wall is drawn as spaces. Each cell row is followed by
// the row of its south walls, so an H-row grid renders as 2·H+1 lines.
//
//	+---+---+
//	| S     |
//	+---+   +
//	| E     |
//	+---+---+
package render

import (
	"io"
	"strings"

	"github.com/katalvlaran/labyrinth/grid"
)

// Option configures rendering.
type Option func(*options)

type options struct {
	marks map[grid.Cell]byte
}

// WithEndpoints marks start with 'S' and end with 'E'. When both are the
// same cell the end mark wins.
func WithEndpoints(start, end grid.Cell) Option {
	return func(o *options) {
		o.marks[start] = 'S'
		o.marks[end] = 'E'
	}
}

// WithMark labels cell c with a single character.
func WithMark(c grid.Cell, ch byte) Option {
	return func(o *options) {
		o.marks[c] = ch
	}
}

// ASCII renders g. A nil grid renders as the empty string.
// Complexity: O(W×H).
func ASCII(g *grid.Grid, opts ...Option) string {
	if g == nil {
		return ""
	}
	o := options{marks: make(map[grid.Cell]byte)}
	for _, opt := range opts {
		opt(&o)
	}

	w, h := g.Width(), g.Height()
	var sb strings.Builder
	sb.Grow((4*w + 2) * (2*h + 1))

	// Top boundary
	sb.WriteString("+")
	for col := 0; col < w; col++ {
		if g.Walls(grid.Cell{Row: 0, Col: col}).Has(grid.North) {
			sb.WriteString("---+")
		} else {
			sb.WriteString("   +")
		}
	}
	sb.WriteByte('\n')

	for row := 0; row < h; row++ {
		// Cell row: west boundary, then interior plus east side per cell.
		if g.Walls(grid.Cell{Row: row, Col: 0}).Has(grid.West) {
			sb.WriteByte('|')
		} else {
			sb.WriteByte(' ')
		}
		for col := 0; col < w; col++ {
			c := grid.Cell{Row: row, Col: col}
			sb.WriteByte(' ')
			if ch, ok := o.marks[c]; ok {
				sb.WriteByte(ch)
			} else {
				sb.WriteByte(' ')
			}
			sb.WriteByte(' ')
			if g.Walls(c).Has(grid.East) {
				sb.WriteByte('|')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')

		// Wall row: south side of each cell.
		sb.WriteByte('+')
		for col := 0; col < w; col++ {
			if g.Walls(grid.Cell{Row: row, Col: col}).Has(grid.South) {
				sb.WriteString("---+")
			} else {
				sb.WriteString("   +")
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Write renders g to w.
func Write(w io.Writer, g *grid.Grid, opts ...Option) error {
	_, err := io.WriteString(w, ASCII(g, opts...))

	return err
}
