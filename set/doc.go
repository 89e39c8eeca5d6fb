// Package set implements a sorted set stored in a two-level rotated array,
// a cache-friendly alternative to balanced search trees that keeps every
// element in one contiguous backing slice.
//
// # Memory Layout
//
// Elements live in a single []T partitioned into consecutive blocks of
// triangular sizes: block 0 holds 1 element, block 1 holds 2, block b holds
// b+1, so block b starts at index b*(b+1)/2. Only the final block may be
// partially filled. Blocks are ordered: every element of block b sorts before
// every element of block b+1.
//
// Inside a block, elements are stored in rotated order. A block of length L
// with rotation offset r keeps its k-th smallest element at physical slot
// (k+r) mod L. The per-block offsets are the only metadata the structure
// maintains, so the overhead for n elements is O(sqrt(n)) integers.
//
// Rotation is what makes updates cheap. Inserting an element shifts only the
// block it lands in; each later block absorbs the displaced maximum of its
// predecessor as a new minimum by stepping its offset back by one and
// overwriting a single slot. Deletion runs the same cascade in reverse,
// pulling each successor block's minimum left. Both touch O(1) slots per
// block across O(sqrt(n)) blocks.
//
// # Complexity
//
//   - Contains, Rank, lower-bound Seek: O(log n) via two binary searches,
//     one over block maxima and one inside the matched block
//   - Insert, Remove, Take: O(sqrt(n))
//   - At (access by rank), Min, Max: O(1)
//   - Neighbor steps during iteration: O(1), no pointer chasing
//
// # Basic Usage
//
// Creating a set of ordered values:
//
//	s := set.New[int]()
//	s.Insert(3)
//	s.Insert(1)
//	s.Insert(2)
//
//	for v := range s.All() {
//	    fmt.Println(v) // 1, 2, 3
//	}
//
//	if v, ok := s.At(1); ok {
//	    fmt.Println(v) // 2, the second-smallest element
//	}
//
// Custom element types supply a three-way comparison:
//
//	type user struct {
//	    id   int
//	    name string
//	}
//
//	s := set.NewFunc(func(a, b user) int {
//	    return cmp.Compare(a.id, b.id)
//	})
//
// Bulk construction sorts once instead of inserting n times:
//
//	s := set.From([]int{5, 3, 1, 4, 2})
//
// # Concurrency
//
// A Set is not safe for concurrent use. Callers that share a set across
// goroutines must provide their own synchronization. Read-only access from
// multiple goroutines without a writer is safe.
package set
