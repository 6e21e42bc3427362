package generator

import "math/rand"

// Every generator draws from one Source per call. Without WithSource the
// stream is math/rand seeded from Options.Seed, so a (method, seed, size)
// triple always carves the same maze. A *rand.Rand must not be shared
// between goroutines.

// defaultSeed replaces seed 0, so the zero Options still give a fixed maze.
const defaultSeed int64 = 1

// seededSource maps seed to its math/rand stream, substituting defaultSeed for 0.
func seededSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// NewSource returns the deterministic Source generators use for seed.
// Exposed so callers can share one stream across several runs.
func NewSource(seed int64) Source {
	return seededSource(seed)
}

// shuffleEdges permutes walls in place, drawing Intn(i+1) for i from the
// last index down to 1.
func shuffleEdges(a []edge, src Source) {
	for i := len(a) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
