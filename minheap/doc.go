// Package minheap implements a generic, array-backed binary min-heap whose
// ordering is supplied by the caller as a Comparator strategy.
//
// The heap property holds at every node: cmp(parent, child) <= 0. The root is
// therefore always a minimum under the supplied ordering. Elements that
// compare equal come out in unspecified relative order (heaps are not stable).
//
// Lifecycle:
//
//   - New(cmp)         — empty heap.
//   - From(items, cmp) — O(n) bulk build: sift down from the last internal
//     node back to the root.
//   - Insert / PopRoot — O(log n) mutation for the remainder of its life.
//
// PopRoot and Peek on an empty heap return (zero, false); they never panic.
//
// Example:
//
//	h := minheap.New(minheap.Ordered[int]())
//	h.Insert(3)
//	h.Insert(1)
//	v, _ := h.PopRoot() // 1
package minheap
