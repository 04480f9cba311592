package disjointset

// DisjointSet is a union-find forest over [0, Len()).
//
// parent[i] == i marks a root. size[r] is meaningful only for roots and holds
// the number of elements in r's subset.
type DisjointSet struct {
	parent []int
	size   []int
	count  int // number of distinct subsets
}

// New creates size singleton subsets: every element is its own root with size 1.
// Complexity: O(size) time and memory.
func New(size int) *DisjointSet {
	ds := &DisjointSet{
		parent: make([]int, size),
		size:   make([]int, size),
		count:  size,
	}
	for i := range ds.parent {
		ds.parent[i] = i
		ds.size[i] = 1
	}

	return ds
}

// Len returns the number of elements in the structure.
func (ds *DisjointSet) Len() int { return len(ds.parent) }

// Count returns the number of distinct subsets.
func (ds *DisjointSet) Count() int { return ds.count }

// FindSet returns the root of elem's subset.
//
// Two passes: the first walks parent pointers up to the root, the second
// walks the same path again and repoints every visited node directly to the
// root. The loop form keeps the call stack flat on long chains.
func (ds *DisjointSet) FindSet(elem int) int {
	root := elem
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for elem != root {
		next := ds.parent[elem]
		ds.parent[elem] = root
		elem = next
	}

	return root
}

// UnionSets merges the subsets containing elem1 and elem2.
//
// If both already share a root nothing changes. Otherwise the smaller root
// index is attached under the larger one and its size folded into the
// larger root's size.
func (ds *DisjointSet) UnionSets(elem1, elem2 int) {
	set1, set2 := ds.FindSet(elem1), ds.FindSet(elem2)
	if set1 == set2 {
		return
	}
	minSet, maxSet := min(set1, set2), max(set1, set2)
	ds.parent[minSet] = maxSet
	ds.size[maxSet] += ds.size[minSet]
	ds.count--
}

// Connected reports whether a and b belong to the same subset.
func (ds *DisjointSet) Connected(a, b int) bool {
	return ds.FindSet(a) == ds.FindSet(b)
}

// SetSize returns the number of elements in elem's subset.
func (ds *DisjointSet) SetSize(elem int) int {
	return ds.size[ds.FindSet(elem)]
}
