package generator_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/stretchr/testify/assert"
)

// TestDisjointSet covers singleton initialisation, union results and set counting.
func TestDisjointSet(t *testing.T) {
	ds := generator.NewDisjointSet(6)
	assert.Equal(t, 6, ds.Sets())
	for i := 0; i < 6; i++ {
		assert.Equal(t, i, ds.Find(i))
	}

	assert.True(t, ds.Union(0, 1))
	assert.True(t, ds.Union(2, 3))
	assert.False(t, ds.Union(1, 0), "already merged")
	assert.True(t, ds.Union(1, 3))
	assert.Equal(t, 3, ds.Sets())

	assert.True(t, ds.Connected(0, 2))
	assert.False(t, ds.Connected(0, 4))
	assert.Equal(t, ds.Find(0), ds.Find(3))

	assert.Zero(t, generator.NewDisjointSet(-3).Sets())
}

// TestDisjointSet_Chain merges a long chain and checks a single root remains.
func TestDisjointSet_Chain(t *testing.T) {
	const n = 10000
	ds := generator.NewDisjointSet(n)
	for i := 1; i < n; i++ {
		assert.True(t, ds.Union(i-1, i))
	}
	assert.Equal(t, 1, ds.Sets())
	root := ds.Find(0)
	for i := 0; i < n; i += 997 {
		assert.Equal(t, root, ds.Find(i))
	}
}
