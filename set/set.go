package set

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/senderista/rotated-array-set/internal/layout"
	"github.com/senderista/rotated-array-set/internal/options"
	"github.com/senderista/rotated-array-set/internal/rotated"
)

// Set is a sorted set of unique elements backed by a two-level rotated
// array. See the package documentation for the layout and its complexity
// guarantees.
//
// The zero value is not usable; construct sets with New, NewFunc, From,
// FromFunc, Collect, or CollectFunc.
type Set[T any] struct {
	// data holds every element in block order. Block b occupies
	// data[b*(b+1)/2 : b*(b+1)/2+b+1]; only the last block may be shorter.
	data []T

	// offsets holds one rotation offset per block. A partially filled last
	// block always has offset 0 so it can grow and shrink in place.
	offsets []int

	compare   func(a, b T) int
	selfCheck bool
}

// New creates an empty set of naturally ordered elements.
//
// Parameters:
//   - opts: Optional configuration (WithCapacity, WithSelfCheck)
//
// Returns:
//   - *Set[T]: The created set.
//
// Example:
//
//	s := set.New[string](set.WithCapacity(1024))
func New[T cmp.Ordered](opts ...Option) *Set[T] {
	return NewFunc(cmp.Compare[T], opts...)
}

// NewFunc creates an empty set ordered by a three-way comparison function.
// The function must return a negative value when a sorts before b, zero when
// they are equal, and a positive value otherwise. Elements comparing equal
// are considered duplicates and stored once.
//
// NewFunc panics if compare is nil.
//
// Parameters:
//   - compare: Three-way comparison defining the element order
//   - opts: Optional configuration (WithCapacity, WithSelfCheck)
//
// Returns:
//   - *Set[T]: The created set.
//
// Example:
//
//	s := set.NewFunc(func(a, b span) int {
//	    return cmp.Compare(a.start, b.start)
//	})
func NewFunc[T any](compare func(a, b T) int, opts ...Option) *Set[T] {
	if compare == nil {
		panic("set: nil compare function")
	}

	cfg := config{}
	options.Apply(&cfg, opts...)

	s := &Set[T]{compare: compare, selfCheck: cfg.selfCheck}
	if cfg.capacity > 0 {
		s.data = make([]T, 0, cfg.capacity)
		s.offsets = make([]int, 0, layout.Blocks(cfg.capacity))
	}

	return s
}

// From creates a set of naturally ordered elements from a slice. The slice
// is not modified; duplicates are stored once.
//
// Bulk construction sorts the items once, which is considerably faster than
// inserting them one at a time.
func From[T cmp.Ordered](items []T, opts ...Option) *Set[T] {
	return FromFunc(cmp.Compare[T], items, opts...)
}

// FromFunc creates a set from a slice using a three-way comparison function.
// The slice is not modified; elements comparing equal are stored once, first
// occurrence wins.
func FromFunc[T any](compare func(a, b T) int, items []T, opts ...Option) *Set[T] {
	s := NewFunc(compare, opts...)
	s.fill(slices.Clone(items))

	return s
}

// Collect creates a set of naturally ordered elements from a sequence,
// draining it fully.
func Collect[T cmp.Ordered](seq iter.Seq[T], opts ...Option) *Set[T] {
	return CollectFunc(cmp.Compare[T], seq, opts...)
}

// CollectFunc creates a set from a sequence using a three-way comparison
// function, draining the sequence fully.
func CollectFunc[T any](compare func(a, b T) int, seq iter.Seq[T], opts ...Option) *Set[T] {
	s := NewFunc(compare, opts...)

	var items []T
	for v := range seq {
		items = append(items, v)
	}
	s.fill(items)

	return s
}

// Len returns the number of stored elements.
func (s *Set[T]) Len() int {
	return len(s.data)
}

// IsEmpty reports whether the set holds no elements.
func (s *Set[T]) IsEmpty() bool {
	return len(s.data) == 0
}

// Clear removes all elements, retaining the allocated capacity for reuse.
func (s *Set[T]) Clear() {
	clear(s.data)
	s.data = s.data[:0]
	s.offsets = s.offsets[:0]
}

// Contains reports whether an element equal to v is stored. O(log n).
func (s *Set[T]) Contains(v T) bool {
	_, found := s.find(v)
	return found
}

// Get returns the stored element equal to v. The second result is false when
// no such element exists. O(log n).
//
// Get is useful with NewFunc comparators that order by a key embedded in a
// larger struct: the returned value carries the stored struct, not the probe.
func (s *Set[T]) Get(v T) (T, bool) {
	i, found := s.find(v)
	if !found {
		var zero T
		return zero, false
	}

	return s.at(i), true
}

// Min returns the smallest element. The second result is false when the set
// is empty. O(1).
func (s *Set[T]) Min() (T, bool) {
	if len(s.data) == 0 {
		var zero T
		return zero, false
	}

	return s.data[0], true
}

// Max returns the largest element. The second result is false when the set
// is empty. O(1).
func (s *Set[T]) Max() (T, bool) {
	if len(s.data) == 0 {
		var zero T
		return zero, false
	}

	return s.view(len(s.offsets) - 1).Max(), true
}

// At returns the element with rank i, the i-th smallest counting from zero.
// The second result is false when i is out of range. O(1).
func (s *Set[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(s.data) {
		var zero T
		return zero, false
	}

	return s.at(i), true
}

// Rank returns the number of stored elements less than v, which is the rank
// v holds or would receive on insertion. The second result reports whether
// an element equal to v is present. O(log n).
func (s *Set[T]) Rank(v T) (int, bool) {
	return s.find(v)
}

// Values returns all elements in ascending order as a fresh slice. O(n).
func (s *Set[T]) Values() []T {
	out := make([]T, 0, len(s.data))
	for v := range s.All() {
		out = append(out, v)
	}

	return out
}

// Clone returns a deep copy sharing no storage with the receiver. O(n).
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{
		data:      slices.Clone(s.data),
		offsets:   slices.Clone(s.offsets),
		compare:   s.compare,
		selfCheck: s.selfCheck,
	}
}

// String renders the elements in ascending order, formatted like a Go map:
// {1 2 3}.
func (s *Set[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for v := range s.All() {
		if !first {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", v)
		first = false
	}
	sb.WriteByte('}')

	return sb.String()
}

// at returns the element with rank i, which must be in range.
func (s *Set[T]) at(i int) T {
	b := layout.BlockOf(i)
	return s.view(b).At(i - layout.Offset(b))
}

// blockLen returns the element count of block b. Only the last block can be
// shorter than its capacity.
func (s *Set[T]) blockLen(b int) int {
	start := layout.Offset(b)
	end := start + layout.Capacity(b)
	if end > len(s.data) {
		end = len(s.data)
	}

	return end - start
}

// view wraps block b in its rotated view.
func (s *Set[T]) view(b int) rotated.Block[T] {
	start := layout.Offset(b)
	return rotated.View(s.data[start:start+s.blockLen(b)], s.offsets[b])
}

// fill replaces the contents with the given items, taking ownership of the
// slice. Items are sorted and deduplicated in place; the stable sort keeps
// the first of equal items.
func (s *Set[T]) fill(items []T) {
	slices.SortStableFunc(items, s.compare)
	items = slices.CompactFunc(items, func(a, b T) bool { return s.compare(a, b) == 0 })
	s.loadSorted(items)

	if s.selfCheck {
		s.verify("fill")
	}
}

// loadSorted installs strictly ascending items as the new contents, taking
// ownership of the slice. A sorted slice is already a valid layout: every
// block is in order with rotation offset 0.
func (s *Set[T]) loadSorted(items []T) {
	s.data = items
	s.offsets = make([]int, layout.Blocks(len(items)))
}
