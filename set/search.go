package set

import "github.com/senderista/rotated-array-set/internal/layout"

// lowerBound returns the rank of the first element not less than v, which is
// Len() when every element is less than v.
//
// The search runs in two stages: a binary search over block maxima picks the
// single block that can contain v, then a binary search over logical ranks
// inside that block pins down the rank. Each stage is O(log sqrt(n)), so the
// whole search is O(log n) and never scans a block.
func (s *Set[T]) lowerBound(v T) int {
	mb := len(s.offsets)
	if mb == 0 {
		return 0
	}

	// Smallest block whose max is >= v. Block maxima ascend because blocks
	// partition the sorted order.
	lo, hi := 0, mb
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s.compare(s.view(mid).Max(), v) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo == mb {
		return len(s.data)
	}

	// Smallest rank in block lo holding an element >= v. The block's max is
	// >= v, so the rank exists.
	blk := s.view(lo)
	rlo, rhi := 0, blk.Len()
	for rlo < rhi {
		mid := int(uint(rlo+rhi) >> 1)
		if s.compare(blk.At(mid), v) < 0 {
			rlo = mid + 1
		} else {
			rhi = mid
		}
	}

	return layout.Offset(lo) + rlo
}

// find returns v's rank and whether an element equal to v is stored there.
func (s *Set[T]) find(v T) (int, bool) {
	i := s.lowerBound(v)
	if i == len(s.data) {
		return i, false
	}

	return i, s.compare(s.at(i), v) == 0
}
