package set

import (
	"iter"

	"github.com/senderista/rotated-array-set/internal/layout"
)

// locator addresses one stored element by block index and logical rank
// inside the block. Stepping to a neighbor never recomputes the block from a
// global rank, so iteration costs O(1) per element with no square roots.
type locator struct {
	block int
	rank  int
}

// locatorAt converts a global rank to a locator.
func locatorAt(i int) locator {
	b := layout.BlockOf(i)
	return locator{block: b, rank: i - layout.Offset(b)}
}

// global converts the locator back to a global rank.
func (l locator) global() int {
	return layout.Offset(l.block) + l.rank
}

// deref returns the element the locator points at, which must be in range.
func (s *Set[T]) deref(l locator) T {
	return s.view(l.block).At(l.rank)
}

// stepForward returns the locator of the next greater element.
func (s *Set[T]) stepForward(l locator) locator {
	if l.rank+1 < s.blockLen(l.block) {
		l.rank++
		return l
	}

	return locator{block: l.block + 1}
}

// stepBack returns the locator of the next smaller element, which must
// exist.
func (s *Set[T]) stepBack(l locator) locator {
	if l.rank > 0 {
		l.rank--
		return l
	}

	b := l.block - 1

	return locator{block: b, rank: s.blockLen(b) - 1}
}

// Iterator walks stored elements in ascending order from the front,
// descending order from the back, or both at once; the two ends share one
// budget and never yield the same element twice.
//
// An Iterator is a snapshot of position only, not of content: mutating the
// set invalidates every outstanding iterator. The zero Iterator is
// exhausted.
type Iterator[T any] struct {
	set       *Set[T]
	front     locator
	back      locator
	remaining int
}

// Iter returns an iterator over all elements.
func (s *Set[T]) Iter() *Iterator[T] {
	n := len(s.data)
	it := &Iterator[T]{set: s, remaining: n}
	if n > 0 {
		it.front = locatorAt(0)
		it.back = locatorAt(n - 1)
	}

	return it
}

// Seek returns an iterator over the elements not less than v, positioned so
// the first Next yields the smallest of them. O(log n).
func (s *Set[T]) Seek(v T) *Iterator[T] {
	n := len(s.data)
	i := s.lowerBound(v)
	it := &Iterator[T]{set: s, remaining: n - i}
	if i < n {
		it.front = locatorAt(i)
		it.back = locatorAt(n - 1)
	}

	return it
}

// Len returns the number of elements not yet yielded.
func (it *Iterator[T]) Len() int {
	return it.remaining
}

// Next yields the smallest remaining element. The second result is false
// when the iterator is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.remaining == 0 {
		var zero T
		return zero, false
	}

	v := it.set.deref(it.front)
	it.remaining--
	if it.remaining > 0 {
		it.front = it.set.stepForward(it.front)
	}

	return v, true
}

// NextBack yields the largest remaining element. The second result is false
// when the iterator is exhausted.
func (it *Iterator[T]) NextBack() (T, bool) {
	if it.remaining == 0 {
		var zero T
		return zero, false
	}

	v := it.set.deref(it.back)
	it.remaining--
	if it.remaining > 0 {
		it.back = it.set.stepBack(it.back)
	}

	return v, true
}

// Skip discards the next k elements from the front in O(1), clamping at the
// end. Non-positive k is a no-op.
func (it *Iterator[T]) Skip(k int) {
	if k <= 0 {
		return
	}
	if k >= it.remaining {
		it.remaining = 0
		return
	}

	it.front = locatorAt(it.front.global() + k)
	it.remaining -= k
}

// SkipBack discards the next k elements from the back in O(1), clamping at
// the end. Non-positive k is a no-op.
func (it *Iterator[T]) SkipBack(k int) {
	if k <= 0 {
		return
	}
	if k >= it.remaining {
		it.remaining = 0
		return
	}

	it.back = locatorAt(it.back.global() - k)
	it.remaining -= k
}

// All returns an ascending sequence over every element, usable in a
// range-over-func loop:
//
//	for v := range s.All() {
//	    ...
//	}
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns a descending sequence over every element.
func (s *Set[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iter()
		for v, ok := it.NextBack(); ok; v, ok = it.NextBack() {
			if !yield(v) {
				return
			}
		}
	}
}
