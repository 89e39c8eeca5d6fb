package set

import "github.com/senderista/rotated-array-set/internal/layout"

// Remove deletes the element equal to v. It returns false when no such
// element is stored.
//
// Cost is O(log n) to locate the rank plus O(sqrt(n)) to close the gap: only
// the block v occupies is shifted, and every later block donates its minimum
// to its predecessor in O(1) by rotating one step.
func (s *Set[T]) Remove(v T) bool {
	i, found := s.find(v)
	if !found {
		return false
	}

	s.removeAt(i)
	if s.selfCheck {
		s.verify("remove")
	}

	return true
}

// Take removes and returns the stored element equal to v. The second result
// is false when no such element is stored.
//
// Like Get, Take matters with NewFunc comparators over partial keys: the
// returned value is the stored element, not the probe.
func (s *Set[T]) Take(v T) (T, bool) {
	i, found := s.find(v)
	if !found {
		var zero T
		return zero, false
	}

	out := s.at(i)
	s.removeAt(i)
	if s.selfCheck {
		s.verify("take")
	}

	return out, true
}

// removeAt deletes the element at rank i, shifting greater elements one rank
// down.
func (s *Set[T]) removeAt(i int) {
	n := len(s.data)
	last := len(s.offsets) - 1
	lastStart := layout.Offset(last)

	// A rotated last block cannot shrink in place. Restore physical order so
	// the tail shift below is a plain copy. Only a full last block can be
	// rotated, so this runs at most once per block refill, O(sqrt(n))
	// amortized.
	if s.offsets[last] != 0 {
		s.view(last).Unrotate()
		s.offsets[last] = 0
	}

	tb := layout.BlockOf(i)
	if tb != last {
		// Close the gap inside tb, freeing its max rank, then pull each
		// following block's min left as its predecessor's new max. The last
		// block donates its min and shrinks.
		blk := s.view(tb)
		if tr := i - layout.Offset(tb); tr == 0 {
			// Removing the minimum: no copying, the vacated slot becomes
			// the max rank.
			blk = blk.RotateBy(1)
			s.offsets[tb] = blk.Offset()
		} else {
			for r := tr; r < blk.Len()-1; r++ {
				blk.Set(r, blk.At(r+1))
			}
		}

		hole := blk
		for b := tb + 1; b < last; b++ {
			cur := s.view(b)
			hole.Set(hole.Len()-1, cur.Min())
			cur = cur.RotateBy(1)
			s.offsets[b] = cur.Offset()
			hole = cur
		}
		hole.Set(hole.Len()-1, s.data[lastStart])
		i = lastStart
	}

	copy(s.data[i:], s.data[i+1:n])

	var zero T
	s.data[n-1] = zero
	s.data = s.data[:n-1]

	if len(s.data) == lastStart {
		s.offsets = s.offsets[:last]
	}
}
