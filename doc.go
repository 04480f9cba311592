// Package spantree computes minimum spanning trees (forests) of undirected,
// non-negatively weighted graphs with Prim's and Kruskal's algorithms.
//
// What is in the box?
//
//	• graph       – adjacency-list Graph, canonical edges, equality, rendering,
//	                Prim (heap-driven) and Kruskal (union-find-driven)
//	• minheap     – generic array-backed binary min-heap with a pluggable comparator
//	• disjointset – union-find with iterative path compression
//	• builder     – deterministic generators: path, cycle, star, wheel,
//	                complete, grid, random connected
//	• cmd/spantree – CLI: solve, generate and compare TOML edge files
//
// Quick ASCII example:
//
//	    A──2──B
//	    │     │
//	    7     3
//	    │     │
//	    D──1──C
//
//	MST: D-C (1), A-B (2), B-C (3); total weight 6.
//
// Both algorithms agree on the total weight for every input. On disconnected
// graphs they return a spanning forest; Prim covers only the component of
// vertex 0.
//
//	go get github.com/katalvlaran/spantree
package spantree
