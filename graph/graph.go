package graph

import (
	"sort"

	"github.com/katalvlaran/spantree/disjointset"
)

// Graph is an undirected weighted graph stored as one adjacency list per
// vertex. Adjacency is symmetric: HalfEdge{v, w} is in adj[u] exactly as
// often as HalfEdge{u, w} is in adj[v].
type Graph struct {
	adj [][]HalfEdge
}

// New returns a graph with vertexCount vertices and no edges.
func New(vertexCount int) *Graph {
	return &Graph{adj: make([][]HalfEdge, vertexCount)}
}

// FromEdges builds a graph sized to the largest endpoint index + 1 and adds
// every edge. An empty edge list yields a graph with zero vertices.
func FromEdges(edges []Edge) *Graph {
	count := 0
	for _, e := range edges {
		count = max(count, e.Start+1, e.End+1)
	}
	g := New(count)
	for _, e := range edges {
		g.AddEdge(e)
	}

	return g
}

// AddEdge appends the half-edge pair of e to both endpoints' lists.
// Self-loops and duplicates are stored as given.
func (g *Graph) AddEdge(e Edge) {
	g.adj[e.Start] = append(g.adj[e.Start], HalfEdge{Vertex: e.End, Weight: e.Weight})
	g.adj[e.End] = append(g.adj[e.End], HalfEdge{Vertex: e.Start, Weight: e.Weight})
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adj) }

// Neighbors returns a copy of v's adjacency list in insertion order.
func (g *Graph) Neighbors(v int) []HalfEdge {
	return append([]HalfEdge(nil), g.adj[v]...)
}

// ListOfEdges returns every undirected edge once, in canonical form, sorted
// by (Start, End, Weight).
//
// Deduplication is keyed by (Start, End, Weight): parallel edges with equal
// weights collapse, parallel edges with different weights are all kept.
func (g *Graph) ListOfEdges() []Edge {
	seen := make(map[Edge]struct{})
	edges := make([]Edge, 0)
	for start, list := range g.adj {
		for _, he := range list {
			e := NewEdge(start, he.Vertex, he.Weight).Canonical()
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edgeLess(edges[i], edges[j]) })

	return edges
}

// EdgeCount returns len(g.ListOfEdges()).
func (g *Graph) EdgeCount() int { return len(g.ListOfEdges()) }

// TotalWeight returns the sum of all edge weights. Every undirected edge is
// stored twice, so the half-edge sum is halved.
func (g *Graph) TotalWeight() Weight {
	var sum Weight
	for _, list := range g.adj {
		for _, he := range list {
			sum += he.Weight
		}
	}

	return sum / 2
}

// Equal reports whether g and other have the same vertex count and, after
// sorting each adjacency list by neighbour then weight, identical lists.
// Neither graph is modified.
func (g *Graph) Equal(other *Graph) bool {
	if len(g.adj) != len(other.adj) {
		return false
	}
	for v := range g.adj {
		a, b := sortedHalfEdges(g.adj[v]), sortedHalfEdges(other.adj[v])
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
	}

	return true
}

// Components returns the number of connected components. Isolated vertices
// count as components of their own.
func (g *Graph) Components() int {
	sets := disjointset.New(len(g.adj))
	for u, list := range g.adj {
		for _, he := range list {
			sets.UnionSets(u, he.Vertex)
		}
	}

	return sets.Count()
}

func sortedHalfEdges(list []HalfEdge) []HalfEdge {
	out := append([]HalfEdge(nil), list...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Vertex != out[j].Vertex {
			return out[i].Vertex < out[j].Vertex
		}
		return out[i].Weight < out[j].Weight
	})

	return out
}

func edgeLess(a, b Edge) bool {
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	if a.End != b.End {
		return a.End < b.End
	}

	return a.Weight < b.Weight
}
