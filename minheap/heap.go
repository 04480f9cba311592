package minheap

// Heap is a binary min-heap over T. The zero value is not usable; build one
// with New or From. A Heap is not safe for concurrent use.
type Heap[T any] struct {
	data []T
	cmp  Comparator[T]
}

// New returns an empty heap ordered by cmp. Panics if cmp is nil.
func New[T any](cmp Comparator[T]) *Heap[T] {
	if cmp == nil {
		panic("minheap: New(nil comparator)")
	}

	return &Heap[T]{cmp: cmp}
}

// From builds a heap from items in O(len(items)) by sifting down every
// internal node, last to first. The heap takes ownership of items; the caller
// must not use the slice afterwards. Panics if cmp is nil.
func From[T any](items []T, cmp Comparator[T]) *Heap[T] {
	if cmp == nil {
		panic("minheap: From(nil comparator)")
	}
	h := &Heap[T]{data: items, cmp: cmp}
	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.down(i)
	}

	return h
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int { return len(h.data) }

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool { return len(h.data) == 0 }

// Insert adds x and restores the heap property by sifting it up.
// Complexity: O(log n).
func (h *Heap[T]) Insert(x T) {
	h.data = append(h.data, x)
	h.up(len(h.data) - 1)
}

// Peek returns the root without removing it, or (zero, false) if empty.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}

	return h.data[0], true
}

// PopRoot removes and returns the minimum element, or (zero, false) if the
// heap is empty. The last element takes the root's place and is sifted down.
// Complexity: O(log n).
func (h *Heap[T]) PopRoot() (T, bool) {
	var zero T
	n := len(h.data)
	if n == 0 {
		return zero, false
	}
	last := n - 1
	h.swap(0, last)
	root := h.data[last]
	h.data[last] = zero // drop the reference held by the backing array
	h.data = h.data[:last]
	h.down(0)

	return root, true
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }

func (h *Heap[T]) less(i, j int) bool { return h.cmp.Compare(h.data[i], h.data[j]) < 0 }

func (h *Heap[T]) swap(i, j int) { h.data[i], h.data[j] = h.data[j], h.data[i] }

// up moves the element at i towards the root while it orders before its parent.
func (h *Heap[T]) up(i int) {
	for i > 0 {
		p := parent(i)
		if !h.less(i, p) {
			break
		}
		h.swap(i, p)
		i = p
	}
}

// down moves the element at i towards the leaves, always swapping with the
// smaller child, until neither child orders before it.
func (h *Heap[T]) down(i int) {
	n := len(h.data)
	for {
		l := left(i)
		if l >= n {
			return
		}
		smallest := i
		if h.less(l, smallest) {
			smallest = l
		}
		if r := l + 1; r < n && h.less(r, smallest) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}
