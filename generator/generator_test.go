package generator_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Spanning-tree contract
//----------------------------------------------------------------------------//

// TestGenerate_SpanningTree checks every algorithm over a sweep of sizes and seeds.
func TestGenerate_SpanningTree(t *testing.T) {
	for _, m := range generator.Methods() {
		for w := 1; w <= 7; w++ {
			for h := 1; h <= 7; h++ {
				for _, seed := range []int64{0, 7, 42} {
					name := fmt.Sprintf("%s/%dx%d/seed%d", m, w, h, seed)
					t.Run(name, func(t *testing.T) {
						g := newGrid(t, w, h)
						require.NoError(t, generator.Generate(g, m, generator.WithSeed(seed)))
						assertSpanningTree(t, g)
					})
				}
			}
		}
	}
}

// TestGenerate_SingleCell verifies a 1×1 grid stays closed.
func TestGenerate_SingleCell(t *testing.T) {
	for _, m := range generator.Methods() {
		g := newGrid(t, 1, 1)
		var trace []carve
		require.NoError(t, generator.Generate(g, m, recorder(&trace)))
		assert.Zero(t, g.OpenWalls(), string(m))
		assert.Empty(t, trace, string(m))
	}
}

// TestGenerate_TwoByTwo verifies exactly three passages on a 2×2 grid.
func TestGenerate_TwoByTwo(t *testing.T) {
	for _, m := range generator.Methods() {
		for seed := int64(1); seed <= 20; seed++ {
			g := newGrid(t, 2, 2)
			require.NoError(t, generator.Generate(g, m, generator.WithSeed(seed)))
			assert.Equal(t, 3, g.OpenWalls())
			assertSpanningTree(t, g)
		}
	}
}

// TestGenerate_LargeGrid runs every algorithm on 60 000 cells; the DFS stack
// grows to tens of thousands of entries here.
func TestGenerate_LargeGrid(t *testing.T) {
	for _, m := range generator.Methods() {
		g := newGrid(t, 300, 200)
		require.NoError(t, generator.Generate(g, m, generator.WithSeed(3)))
		assertSpanningTree(t, g)
	}
}

//----------------------------------------------------------------------------//
// Determinism
//----------------------------------------------------------------------------//

// TestGenerate_SeedDeterminism checks that the same seed reproduces the same grid.
func TestGenerate_SeedDeterminism(t *testing.T) {
	for _, m := range generator.Methods() {
		t.Run(string(m), func(t *testing.T) {
			a := newGrid(t, 16, 11)
			b := newGrid(t, 16, 11)
			require.NoError(t, generator.Generate(a, m, generator.WithSeed(1234)))
			require.NoError(t, generator.Generate(b, m, generator.WithSeed(1234)))
			assert.True(t, a.Equal(b), "same seed must yield identical grids")

			zero := newGrid(t, 16, 11)
			one := newGrid(t, 16, 11)
			require.NoError(t, generator.Generate(zero, m))
			require.NoError(t, generator.Generate(one, m, generator.WithSeed(1)))
			assert.True(t, zero.Equal(one), "seed 0 maps to the default seed 1")

			other := newGrid(t, 16, 11)
			require.NoError(t, generator.Generate(other, m, generator.WithSeed(99)))
			assert.False(t, a.Equal(other), "different seeds should diverge on 176 cells")
		})
	}
}

// TestGenerate_SourceOverridesSeed verifies WithSource wins over WithSeed.
func TestGenerate_SourceOverridesSeed(t *testing.T) {
	a := newGrid(t, 9, 9)
	b := newGrid(t, 9, 9)
	require.NoError(t, generator.DFS(a, generator.WithSeed(5), generator.WithSource(generator.NewSource(77))))
	require.NoError(t, generator.DFS(b, generator.WithSeed(77)))
	assert.True(t, a.Equal(b))
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

// TestGenerate_Errors verifies every precondition failure.
func TestGenerate_Errors(t *testing.T) {
	used := newGrid(t, 3, 3)
	require.NoError(t, used.RemoveWall(c(0, 0), grid.East))

	cases := []struct {
		name string
		g    *grid.Grid
		opts []generator.Option
		err  error
	}{
		{"NilGrid", nil, nil, generator.ErrNilGrid},
		{"ZeroValueGrid", &grid.Grid{}, nil, grid.ErrInvalidDimensions},
		{"NotFresh", used, nil, generator.ErrGridNotFresh},
		{"StartOutOfBounds", newGrid(t, 3, 3), []generator.Option{generator.WithStart(c(3, 0))}, generator.ErrStartOutOfBounds},
	}
	for _, tc := range cases {
		for _, m := range generator.Methods() {
			t.Run(tc.name+"/"+string(m), func(t *testing.T) {
				err := generator.Generate(tc.g, m, tc.opts...)
				assert.ErrorIs(t, err, tc.err)
			})
		}
	}
}

// TestKruskal_StartUnused verifies an in-bounds start leaves Kruskal's maze
// unchanged while an out-of-bounds one is still rejected.
func TestKruskal_StartUnused(t *testing.T) {
	plain := newGrid(t, 4, 3)
	require.NoError(t, generator.Kruskal(plain, generator.WithSeed(9)))

	started := newGrid(t, 4, 3)
	require.NoError(t, generator.Kruskal(started, generator.WithSeed(9), generator.WithStart(c(2, 3))))
	assert.True(t, plain.Equal(started))

	err := generator.Kruskal(newGrid(t, 4, 3), generator.WithStart(c(0, 4)))
	assert.ErrorIs(t, err, generator.ErrStartOutOfBounds)
}

// TestParseMethod covers accepted spellings and the unknown-algorithm error.
func TestParseMethod(t *testing.T) {
	for in, want := range map[string]generator.Method{
		"dfs":       generator.MethodDFS,
		"PRIM":      generator.MethodPrim,
		" kruskal ": generator.MethodKruskal,
	} {
		got, err := generator.ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := generator.ParseMethod("wilson")
	assert.ErrorIs(t, err, generator.ErrUnknownAlgorithm)

	err = generator.Generate(newGrid(t, 2, 2), generator.Method("eller"))
	assert.ErrorIs(t, err, generator.ErrUnknownAlgorithm)
}
