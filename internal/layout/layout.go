// Package layout computes the triangular block geometry of the backing array.
//
// A set of n elements is carved into m consecutive blocks where block b
// (0-indexed) holds b+1 elements, so m blocks cover T(m) = m(m+1)/2 slots:
//
//	block:    0    1         2              3
//	        ------------------------------------------------
//	slots:  | 0 |  1    2 |  3    4    5 |  6    7    8    9 | ...
//	        ------------------------------------------------
//	start:    0    1         3              6
//
// Block indexes and slot indexes convert both ways in O(1) through the
// triangular numbers and their inverse. Only the trailing block may be
// partially filled; all earlier blocks are exactly full.
package layout

import "math"

// Offset returns the index of the first slot of block b: the triangular
// number T(b) = b(b+1)/2. Offset(m) is also the total capacity of blocks
// 0..m-1.
func Offset(b int) int {
	return b * (b + 1) / 2
}

// Capacity returns the number of slots in block b.
func Capacity(b int) int {
	return b + 1
}

// BlockOf returns the block containing slot i, the unique b with
// Offset(b) <= i < Offset(b+1).
//
// The initial estimate comes from the inverse triangular formula
// (sqrt(8i+1)-1)/2. Near block boundaries the float square root can land one
// block off, so the estimate is nudged until the integer bounds hold exactly.
func BlockOf(i int) int {
	b := int((math.Sqrt(float64(i)*8+1) - 1) / 2)
	if b < 0 {
		b = 0
	}
	for Offset(b+1) <= i {
		b++
	}
	for Offset(b) > i {
		b--
	}

	return b
}

// Blocks returns the number of blocks spanned by n slots, counting a trailing
// partial block. For n > 0 this is the unique m with
// m(m-1)/2 < n <= m(m+1)/2; Blocks(0) is 0, and the result is stable when n
// is exactly triangular.
func Blocks(n int) int {
	if n == 0 {
		return 0
	}

	return BlockOf(n-1) + 1
}
