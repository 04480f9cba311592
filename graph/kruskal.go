package graph

import (
	"sort"

	"github.com/katalvlaran/spantree/disjointset"
)

// MinSpanTreeKruskal computes a minimum spanning forest with Kruskal's
// algorithm.
//
// Steps:
//  1. Enumerate canonical edges (ListOfEdges) and stable-sort them by weight,
//     so equal weights keep (Start, End) order.
//  2. Start with one disjoint-set singleton per vertex.
//  3. Scan edges in order; accept an edge whose endpoints lie in different
//     subsets and unite them. Self-loops are never accepted.
//  4. Stop once VertexCount()-1 edges are accepted or the edges run out.
//
// A disconnected input yields one tree per component. The result always has
// the input's vertex count.
//
// Complexity: O(E log E + E·α(V)) time, O(V + E) memory.
func (g *Graph) MinSpanTreeKruskal() *Graph {
	n := len(g.adj)
	tree := New(n)

	edges := g.ListOfEdges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	sets := disjointset.New(n)
	accepted := 0
	for _, e := range edges {
		if accepted == n-1 {
			break
		}
		set1, set2 := sets.FindSet(e.Start), sets.FindSet(e.End)
		if set1 == set2 {
			continue
		}
		tree.AddEdge(e)
		sets.UnionSets(set1, set2)
		accepted++
	}

	return tree
}
