// Package rotaset provides a sorted in-memory set with array-like memory
// density: all elements live in one contiguous buffer carved into blocks of
// triangular sizes, each block a cyclic rotation of a sorted run.
//
// The layout keeps the search cost of a sorted array while cutting the
// update cost from O(n) to O(sqrt(n)): an insert or delete shifts a single
// block and then moves exactly one element per later block by bumping that
// block's rotation offset. Per-element overhead is zero; the only metadata
// is one offset integer per block, O(sqrt(n)) in total.
//
// # Core Features
//
//   - O(log n) membership, rank, and lower-bound search via two binary searches
//   - O(sqrt(n)) insert and remove with no per-element pointers
//   - O(1) access by rank and O(1) neighbor steps during iteration
//   - Double-ended, skippable iterators and range-over-func sequences
//   - Lazy merge-based union, intersection, difference, symmetric difference
//   - Order-insensitive xxHash64 content fingerprints for cheap set equality
//
// # Basic Usage
//
// Creating a set of naturally ordered values:
//
//	import "github.com/senderista/rotated-array-set"
//
//	s := rotaset.New[int]()
//	for _, v := range []int{5, 3, 8, 1} {
//	    s.Insert(v)
//	}
//
//	s.Contains(3)   // true
//	s.At(2)         // 5, true: the third-smallest element
//	s.Rank(8)       // 3, true
//
//	for v := range s.All() {
//	    fmt.Println(v) // 1, 3, 5, 8
//	}
//
// Ordering structs by a key:
//
//	type job struct {
//	    priority int
//	    name     string
//	}
//
//	queue := rotaset.NewFunc(func(a, b job) int {
//	    return cmp.Compare(a.priority, b.priority)
//	})
//
// # Package Structure
//
// This package provides convenient top-level constructors around the set
// package. For the full API (iterators, set algebra, fingerprints), use the
// returned *set.Set directly or import the set package.
package rotaset

import (
	"cmp"
	"iter"

	"github.com/senderista/rotated-array-set/set"
)

// New creates an empty set of naturally ordered elements.
//
// Parameters:
//   - opts: Optional configuration (set.WithCapacity, set.WithSelfCheck)
//
// Returns:
//   - *set.Set[T]: The created set.
//
// Example:
//
//	s := rotaset.New[string](set.WithCapacity(1024))
func New[T cmp.Ordered](opts ...set.Option) *set.Set[T] {
	return set.New[T](opts...)
}

// NewFunc creates an empty set ordered by a three-way comparison function,
// for element types without a natural order. It panics if compare is nil.
//
// Parameters:
//   - compare: Three-way comparison defining the element order
//   - opts: Optional configuration (set.WithCapacity, set.WithSelfCheck)
//
// Returns:
//   - *set.Set[T]: The created set.
//
// Example:
//
//	s := rotaset.NewFunc(func(a, b user) int {
//	    return cmp.Compare(a.id, b.id)
//	})
func NewFunc[T any](compare func(a, b T) int, opts ...set.Option) *set.Set[T] {
	return set.NewFunc(compare, opts...)
}

// From creates a set of naturally ordered elements from a slice, collapsing
// duplicates. The slice is not modified. Bulk construction sorts once
// instead of inserting element by element.
//
// Example:
//
//	s := rotaset.From([]int{5, 3, 1, 4, 2})
func From[T cmp.Ordered](items []T, opts ...set.Option) *set.Set[T] {
	return set.From(items, opts...)
}

// FromFunc creates a set from a slice using a three-way comparison function,
// collapsing duplicates with the first occurrence winning. The slice is not
// modified.
func FromFunc[T any](compare func(a, b T) int, items []T, opts ...set.Option) *set.Set[T] {
	return set.FromFunc(compare, items, opts...)
}

// Collect creates a set of naturally ordered elements by draining a
// sequence. Set algebra results materialize directly:
//
//	onlyA := rotaset.Collect(a.Difference(b))
func Collect[T cmp.Ordered](seq iter.Seq[T], opts ...set.Option) *set.Set[T] {
	return set.Collect(seq, opts...)
}

// CollectFunc creates a set by draining a sequence, ordered by a three-way
// comparison function.
func CollectFunc[T any](compare func(a, b T) int, seq iter.Seq[T], opts ...set.Option) *set.Set[T] {
	return set.CollectFunc(compare, seq, opts...)
}
