package set

import "github.com/senderista/rotated-array-set/internal/layout"

// Insert adds v to the set. It returns false and leaves the set unchanged
// when an element equal to v is already stored.
//
// Cost is O(log n) to locate the rank plus O(sqrt(n)) to make room: only the
// block v lands in is shifted, and every later block absorbs its
// predecessor's displaced maximum in O(1) by rotating one step.
func (s *Set[T]) Insert(v T) bool {
	i, found := s.find(v)
	if found {
		return false
	}

	s.insertAt(i, v)
	if s.selfCheck {
		s.verify("insert")
	}

	return true
}

// insertAt places v at rank i, shifting greater elements one rank up.
func (s *Set[T]) insertAt(i int, v T) {
	n := len(s.data)
	if n == 0 {
		s.data = append(s.data, v)
		s.offsets = append(s.offsets, 0)

		return
	}

	last := len(s.offsets) - 1
	lastStart := layout.Offset(last)
	fullLast := n-lastStart == layout.Capacity(last)

	// v sorts after every stored element: extend the tail directly.
	if i == n {
		s.data = append(s.data, v)
		if fullLast {
			s.offsets = append(s.offsets, 0)
		}

		return
	}

	tb := layout.BlockOf(i)
	tr := i - layout.Offset(tb)

	// Rank i falls in a partial last block, which is kept in plain sorted
	// order, so this is an ordinary array insertion.
	if tb == last && !fullLast {
		s.data = append(s.data, v)
		copy(s.data[i+1:], s.data[i:n])
		s.data[i] = v

		return
	}

	// Rank i falls in a full block. Grow the tail first so every view below
	// sees the final backing array, then shift v into place inside the
	// target block and cascade the displaced maxima rightward.
	var zero T
	s.data = append(s.data, zero)

	stop, sink := last, lastStart
	if fullLast {
		// All blocks are full: the element falling off the cascade starts a
		// new block at index n.
		s.offsets = append(s.offsets, 0)
		stop, sink = last+1, n
	} else {
		// Shift the partial last block up one slot; its front slot becomes
		// the cascade's sink.
		copy(s.data[lastStart+1:n+1], s.data[lastStart:n])
	}

	blk := s.view(tb)
	displaced := blk.Max()
	if tr == 0 {
		// New minimum: no copying, the old max slot becomes rank 0.
		blk = blk.RotateBy(-1)
		s.offsets[tb] = blk.Offset()
		blk.Set(0, v)
	} else {
		for r := blk.Len() - 2; r >= tr; r-- {
			blk.Set(r+1, blk.At(r))
		}
		blk.Set(tr, v)
	}

	// Each full block after tb gains its predecessor's displaced max as its
	// new min: one offset step back, one slot overwritten.
	for b := tb + 1; b < stop; b++ {
		cur := s.view(b)
		next := cur.Max()
		cur = cur.RotateBy(-1)
		s.offsets[b] = cur.Offset()
		cur.Set(0, displaced)
		displaced = next
	}

	s.data[sink] = displaced
}
