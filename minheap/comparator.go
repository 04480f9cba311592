package minheap

import "golang.org/x/exp/constraints"

// Comparator is a total-order strategy over T.
//
// Compare returns a negative number when a orders before b, zero when they
// are equivalent and a positive number when a orders after b.
type Comparator[T any] interface {
	Compare(a, b T) int
}

// CompareFunc adapts an ordinary function to the Comparator interface.
type CompareFunc[T any] func(a, b T) int

// Compare calls f(a, b).
func (f CompareFunc[T]) Compare(a, b T) int { return f(a, b) }

// Ordered returns the natural ascending order of an ordered type.
func Ordered[T constraints.Ordered]() Comparator[T] {
	return CompareFunc[T](func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
}

// Reverse inverts cmp, turning the min-heap into a max-heap.
func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	return CompareFunc[T](func(a, b T) int { return cmp.Compare(b, a) })
}
