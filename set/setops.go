package set

import "iter"

// Union returns an ascending sequence of the elements present in s, other,
// or both. The sequence is computed lazily by merging the two sorted sets;
// a full drain costs O(n+m).
//
// Both sets must use the same element order. Where an element compares equal
// in both, the one stored in s is yielded.
func (s *Set[T]) Union(other *Set[T]) iter.Seq[T] {
	return s.merge(other, true, true, true)
}

// Intersection returns an ascending sequence of the elements present in both
// s and other, yielding the copies stored in s. Lazy, O(n+m) for a full
// drain.
func (s *Set[T]) Intersection(other *Set[T]) iter.Seq[T] {
	return s.merge(other, false, false, true)
}

// Difference returns an ascending sequence of the elements present in s but
// not in other. Lazy, O(n+m) for a full drain.
func (s *Set[T]) Difference(other *Set[T]) iter.Seq[T] {
	return s.merge(other, true, false, false)
}

// SymmetricDifference returns an ascending sequence of the elements present
// in exactly one of s and other. Lazy, O(n+m) for a full drain.
func (s *Set[T]) SymmetricDifference(other *Set[T]) iter.Seq[T] {
	return s.merge(other, true, true, false)
}

// merge walks both sorted sets in lockstep, yielding elements only in s when
// left is set, only in other when right is set, and in both when both is
// set. The receiver's comparison defines the order.
func (s *Set[T]) merge(other *Set[T], left, right, both bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		a, b := s.Iter(), other.Iter()
		av, aok := a.Next()
		bv, bok := b.Next()

		for aok && bok {
			switch c := s.compare(av, bv); {
			case c < 0:
				if left && !yield(av) {
					return
				}
				av, aok = a.Next()
			case c > 0:
				if right && !yield(bv) {
					return
				}
				bv, bok = b.Next()
			default:
				if both && !yield(av) {
					return
				}
				av, aok = a.Next()
				bv, bok = b.Next()
			}
		}

		if left {
			for ; aok; av, aok = a.Next() {
				if !yield(av) {
					return
				}
			}
		}
		if right {
			for ; bok; bv, bok = b.Next() {
				if !yield(bv) {
					return
				}
			}
		}
	}
}

// SplitOff removes every element not less than v from the set and returns
// them as a new set; the receiver keeps the elements less than v. Both sets
// are rebuilt into fresh compact layouts, so the split costs O(n).
func (s *Set[T]) SplitOff(v T) *Set[T] {
	i := s.lowerBound(v)
	vals := s.Values()

	out := &Set[T]{compare: s.compare, selfCheck: s.selfCheck}
	out.loadSorted(vals[i:])

	// Cap the kept prefix so appends after the split reallocate instead of
	// scribbling over the half handed away.
	s.loadSorted(vals[:i:i])

	if s.selfCheck {
		s.verify("split")
		out.verify("split")
	}

	return out
}
