package set

import (
	"fmt"

	"github.com/senderista/rotated-array-set/internal/layout"
)

// verify panics when a structural invariant does not hold. It runs after
// every mutation on sets built WithSelfCheck; op names the mutation for the
// diagnostic.
func (s *Set[T]) verify(op string) {
	n := len(s.data)
	mb := len(s.offsets)
	if want := layout.Blocks(n); mb != want {
		panic(fmt.Sprintf("set: %s left %d block offsets for %d elements, want %d", op, mb, n, want))
	}

	for b := 0; b < mb; b++ {
		bl := s.blockLen(b)
		if b < mb-1 && bl != layout.Capacity(b) {
			panic(fmt.Sprintf("set: %s left inner block %d at length %d, want %d", op, b, bl, layout.Capacity(b)))
		}

		off := s.offsets[b]
		if off < 0 || off >= bl {
			panic(fmt.Sprintf("set: %s left block %d offset %d outside [0,%d)", op, b, off, bl))
		}
		if b == mb-1 && bl < layout.Capacity(b) && off != 0 {
			panic(fmt.Sprintf("set: %s left partial last block %d rotated by %d", op, b, off))
		}
	}

	if n == 0 {
		return
	}

	prev := s.at(0)
	for i := 1; i < n; i++ {
		cur := s.at(i)
		if s.compare(prev, cur) >= 0 {
			panic(fmt.Sprintf("set: %s broke the element order at rank %d", op, i))
		}
		prev = cur
	}
}
