// Package disjointset provides a union-find structure over the dense index
// range [0, n).
//
// What & Why
//
//   - A DisjointSet maintains a partition of {0..n-1} into disjoint subsets.
//     Every subset is a tree of parent pointers; the self-parented node is
//     the root and serves as the subset's representative.
//   - Kruskal's MST uses it to decide in near-constant time whether an edge
//     would close a cycle.
//
// Operations
//
//   - New(size)         — size singletons, each of size 1.
//   - FindSet(elem)     — root of elem's subset, with path compression.
//   - UnionSets(a, b)   — merge the subsets of a and b.
//   - SetSize(elem)     — number of elements in elem's subset.
//   - Count()           — number of distinct subsets.
//
// Union rule
//
//	When two roots differ, the numerically smaller root is attached under the
//	numerically larger one, and the smaller root's tracked size is added into
//	the larger's. The rule looks at root indices only, never at subset sizes,
//	so tree depth is kept low by compression alone.
//
// Complexity
//
//   - FindSet: amortized close to O(1) with compression; O(n) worst case for a
//     single call on an uncompressed chain.
//   - UnionSets: two FindSet calls plus O(1).
//   - Memory: O(n) for parent and size arrays.
//
// Indices are caller-guaranteed to be in range; an out-of-range index is a
// programming error and panics.
package disjointset
