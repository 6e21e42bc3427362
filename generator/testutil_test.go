// Package generator_test provides helpers shared across *_test.go files:
// scripted random sources, a carve recorder and a spanning-tree checker.
package generator_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/grid"
)

// firstSource always picks the first candidate.
type firstSource struct{}

func (firstSource) Intn(int) int { return 0 }

// lastSource always picks the last candidate.
type lastSource struct{}

func (lastSource) Intn(n int) int { return n - 1 }

// carve is one recorded wall removal.
type carve struct {
	From, To grid.Cell
	Dir      grid.Direction
}

// recorder returns an Option appending every carve to *out.
func recorder(out *[]carve) generator.Option {
	return generator.WithOnCarve(func(from, to grid.Cell, d grid.Direction) {
		*out = append(*out, carve{From: from, To: to, Dir: d})
	})
}

// c is shorthand for grid.Cell{Row: r, Col: col}.
func c(r, col int) grid.Cell { return grid.Cell{Row: r, Col: col} }

// assertSpanningTree fails t unless g has exactly Size()-1 open walls and
// every cell is reachable from (0,0) through passages.
func assertSpanningTree(t *testing.T, g *grid.Grid) {
	t.Helper()
	if got, want := g.OpenWalls(), g.Size()-1; got != want {
		t.Fatalf("open walls = %d; want %d", got, want)
	}
	seen := make([]bool, g.Size())
	queue := []grid.Cell{{}}
	seen[0] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Passages(queue[qi]) {
			if !seen[g.Index(n)] {
				seen[g.Index(n)] = true
				queue = append(queue, n)
			}
		}
	}
	if len(queue) != g.Size() {
		t.Fatalf("reached %d of %d cells", len(queue), g.Size())
	}
}

// newGrid builds a fresh grid or fails the test.
func newGrid(t testing.TB, w, h int) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h)
	if err != nil {
		t.Fatalf("grid.New(%d,%d): %v", w, h, err)
	}

	return g
}
