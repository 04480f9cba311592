// Package graph provides a weighted, undirected graph over dense vertex
// indices and two independent Minimum Spanning Tree algorithms, Prim's and
// Kruskal's, which always agree on total weight.
//
// What & Why
//
//   - Vertices are the integers [0, VertexCount()); the count is fixed when
//     the Graph is created and never grows.
//   - Each undirected edge is stored as two HalfEdge records, one in each
//     endpoint's adjacency list, so an n-edge graph holds 2n half-edges.
//   - ListOfEdges turns the symmetric storage back into canonical edges
//     (Start ≤ End), each undirected edge exactly once.
//
// Construction
//
//   - New(n) followed by AddEdge calls.
//   - FromEdges(edges): sized to the largest endpoint + 1.
//   - FromLabeledEdges(edges): letters 'A'..'Z' (any case) mapped to 0..25;
//     any other rune fails with ErrInvalidLabel.
//
// AddEdge never rejects anything: self-loops and parallel edges are legal
// storage. Parallel edges with the same weight collapse into one canonical
// edge when enumerated; parallel edges with different weights stay distinct.
//
// Algorithms
//
//   - MinSpanTreePrim: grows a tree from vertex 0 with a minheap.Heap of
//     (vertex, key) pairs. O(E log V) time, O(V + E) memory.
//   - MinSpanTreeKruskal: sorts canonical edges by weight and scans them with
//     a disjointset.DisjointSet. O(E log E) time, O(V + E) memory.
//
// Both return a new Graph with the input's vertex count that holds only the
// tree edges. A disconnected input is not an error: Kruskal returns a
// spanning forest covering every component, Prim returns the tree of vertex
// 0's component and leaves every other vertex isolated. For connected inputs
// both trees have the same TotalWeight; with weight ties the edge sets may
// differ.
//
// A Graph is not safe for concurrent mutation. Out-of-range vertex indices
// are programming errors and panic.
package graph
