package graph

import (
	"cmp"

	"github.com/katalvlaran/spantree/minheap"
)

// primEntry is a heap candidate: vertex reachable from the tree at cost key.
type primEntry struct {
	vertex int
	key    Weight
}

var byKey = minheap.CompareFunc[primEntry](func(a, b primEntry) int {
	return cmp.Compare(a.key, b.key)
})

// MinSpanTreePrim computes a minimum spanning tree with Prim's algorithm,
// starting from vertex 0.
//
// Steps:
//  1. keys[v] = Infinity for all v except keys[0] = 0; the heap holds (0, 0).
//  2. Pop the cheapest candidate. Entries for vertices already in the tree
//     are stale and skipped; otherwise mark the vertex visited.
//  3. Relax each incident half-edge: an unvisited neighbour whose key
//     improves gets the new key, records the edge in cameFrom, and is pushed.
//  4. When the heap is empty, emit cameFrom[v] for every v ≥ 1 that was
//     reached.
//
// Vertices outside vertex 0's component never get a cameFrom entry and are
// left isolated in the result. An empty graph yields an empty graph.
//
// Complexity: O(E log V) time, O(V + E) memory (lazy deletion may keep up to
// E entries in the heap).
func (g *Graph) MinSpanTreePrim() *Graph {
	n := len(g.adj)
	tree := New(n)
	if n == 0 {
		return tree
	}

	visited := make([]bool, n)
	keys := make([]Weight, n)
	cameFrom := make([]HalfEdge, n)
	for v := range keys {
		keys[v] = Infinity
		cameFrom[v] = HalfEdge{Vertex: noVertex}
	}
	keys[0] = 0

	queue := minheap.From([]primEntry{{vertex: 0, key: 0}}, byKey)
	for {
		cur, ok := queue.PopRoot()
		if !ok {
			break
		}
		if visited[cur.vertex] {
			continue
		}
		visited[cur.vertex] = true

		for _, he := range g.adj[cur.vertex] {
			next := he.Vertex
			if visited[next] {
				continue
			}
			// An unreached vertex accepts any edge, even one of weight Infinity.
			if cameFrom[next].Vertex != noVertex && he.Weight >= keys[next] {
				continue
			}
			keys[next] = he.Weight
			cameFrom[next] = HalfEdge{Vertex: cur.vertex, Weight: he.Weight}
			queue.Insert(primEntry{vertex: next, key: he.Weight})
		}
	}

	for v := 1; v < n; v++ {
		if from := cameFrom[v]; from.Vertex != noVertex {
			tree.AddEdge(NewEdge(v, from.Vertex, from.Weight))
		}
	}

	return tree
}
