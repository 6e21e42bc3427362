package generator

// DisjointSet is an array-backed union-find over the integers [0, n),
// with path compression and union by rank. Kruskal uses cell indices
// as elements.
type DisjointSet struct {
	parent []int
	rank   []uint8
	sets   int
}

// NewDisjointSet returns n singleton sets. n < 0 is treated as 0.
func NewDisjointSet(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	ds := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]uint8, n),
		sets:   n,
	}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// Find returns the representative of x's set.
// Iterative with path halving to avoid deep recursion.
func (ds *DisjointSet) Find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}

	return x
}

// Union merges the sets of x and y and reports whether they were disjoint.
func (ds *DisjointSet) Union(x, y int) bool {
	rx, ry := ds.Find(x), ds.Find(y)
	if rx == ry {
		return false
	}
	// Attach the shallower tree under the deeper root.
	switch {
	case ds.rank[rx] < ds.rank[ry]:
		ds.parent[rx] = ry
	case ds.rank[rx] > ds.rank[ry]:
		ds.parent[ry] = rx
	default:
		ds.parent[ry] = rx
		ds.rank[rx]++
	}
	ds.sets--

	return true
}

// Connected reports whether x and y share a set.
func (ds *DisjointSet) Connected(x, y int) bool {
	return ds.Find(x) == ds.Find(y)
}

// Sets returns the number of disjoint sets.
func (ds *DisjointSet) Sets() int { return ds.sets }
