// Package rotated provides a view over one block of the backing array,
// interpreting the block's span as a cyclic rotation of an ascending run.
//
// The only bookkeeping is the rotation offset: the physical slot holding the
// smallest element. A block of length 5 rotated by 2 lays out as:
//
//	physical slot:   0    1    2    3    4
//	               ------------------------
//	contents:      | 40 | 50 | 10 | 20 | 30 |
//	               ------------------------
//	logical rank:    3    4    0    1    2      offset = 2
//
// Logical rank k lives at physical slot (k + offset) mod length, so moving
// the run's start costs a single offset update instead of shifting elements.
package rotated

import "slices"

// Block is a rotation-aware window over one block's span of the backing
// array. The view aliases the span: Set writes through to the underlying
// array. A Block must view a non-empty span.
//
// Block is a small value; methods that change the rotation return the updated
// view, and the caller persists Offset() back to the block table.
type Block[T any] struct {
	span []T
	off  int
}

// View wraps a block's span with its current rotation offset.
func View[T any](span []T, off int) Block[T] {
	return Block[T]{span: span, off: off}
}

// Len returns the number of elements in the block.
func (b Block[T]) Len() int {
	return len(b.span)
}

// Offset returns the physical slot of logical rank 0.
func (b Block[T]) Offset() int {
	return b.off
}

// Physical maps a logical rank in [0, Len()) to its physical slot.
func (b Block[T]) Physical(rank int) int {
	return (rank + b.off) % len(b.span)
}

// At returns the element with the given logical rank.
func (b Block[T]) At(rank int) T {
	return b.span[b.Physical(rank)]
}

// Set stores v at the given logical rank, writing through to the backing
// array.
func (b Block[T]) Set(rank int, v T) {
	b.span[b.Physical(rank)] = v
}

// Min returns the smallest element, logical rank 0.
func (b Block[T]) Min() T {
	return b.span[b.off]
}

// Max returns the largest element, logical rank Len()-1.
func (b Block[T]) Max() T {
	return b.span[b.Physical(len(b.span)-1)]
}

// RotateBy shifts the rotation offset by k (mod Len()) without touching any
// element. Rotating by -1 turns the current max slot into rank 0; rotating by
// +1 turns the current min slot into rank Len()-1. Returns the updated view.
func (b Block[T]) RotateBy(k int) Block[T] {
	n := len(b.span)
	b.off = (b.off + k) % n
	if b.off < 0 {
		b.off += n
	}

	return b
}

// Unrotate physically rotates the span so logical and physical order
// coincide, leaving the offset at 0. O(Len()) via three reversals. Returns
// the updated view.
func (b Block[T]) Unrotate() Block[T] {
	if b.off != 0 {
		slices.Reverse(b.span[:b.off])
		slices.Reverse(b.span[b.off:])
		slices.Reverse(b.span)
		b.off = 0
	}

	return b
}
