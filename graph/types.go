package graph

import (
	"errors"
	"fmt"
	"math"
)

// Weight is a non-negative edge weight.
type Weight = uint64

// Infinity is the key of a vertex that no tree edge has reached yet.
const Infinity Weight = math.MaxUint64

// noVertex marks an empty HalfEdge slot, e.g. a vertex without a tree parent.
const noVertex = -1

// Sentinel errors for graph construction and MST dispatch.
var (
	// ErrInvalidLabel indicates a vertex label outside 'A'..'Z' / 'a'..'z'.
	ErrInvalidLabel = errors.New("graph: invalid vertex label")

	// ErrUnknownMethod indicates a Method other than MethodPrim or MethodKruskal.
	ErrUnknownMethod = errors.New("graph: unknown spanning tree method")
)

// HalfEdge is one endpoint of an undirected edge as stored in an adjacency
// list: the neighbour it leads to and the edge weight.
type HalfEdge struct {
	Vertex int
	Weight Weight
}

// Edge is an undirected edge between Start and End.
//
// Edges produced by ListOfEdges are canonical: Start ≤ End. Edges passed to
// AddEdge may use either order.
type Edge struct {
	Start  int
	End    int
	Weight Weight
}

// NewEdge returns the edge start–end with the given weight, keeping the
// endpoint order as given.
func NewEdge(start, end int, weight Weight) Edge {
	return Edge{Start: start, End: end, Weight: weight}
}

// Canonical returns e with its smaller endpoint first.
func (e Edge) Canonical() Edge {
	if e.Start > e.End {
		e.Start, e.End = e.End, e.Start
	}

	return e
}

// String renders e as "start - end: (weight)".
func (e Edge) String() string {
	return fmt.Sprintf("%d - %d: (%d)", e.Start, e.End, e.Weight)
}

// LabeledEdge is an edge whose endpoints are single-letter vertex labels.
type LabeledEdge struct {
	Start  rune
	End    rune
	Weight Weight
}

// Method selects a spanning tree algorithm for SpanningTree.
type Method string

const (
	// MethodPrim grows the tree from vertex 0 using a min-heap.
	MethodPrim Method = "prim"

	// MethodKruskal sorts all edges and merges components with union-find.
	MethodKruskal Method = "kruskal"
)
