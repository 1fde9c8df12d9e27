// Copyright 2025 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

// FlatIndex converts a multi-dimensional coordinate to its flat storage
// offset under the row-major convention of this package (dimension 0
// fastest-varying).
//
// The coordinate may have fewer entries than the rank; missing entries
// count as zero. No bounds checking is performed and no allocation takes
// place: this is the high-frequency inner loop, and callers holding
// untrusted coordinates must call CheckBounds first.
func (s Shape) FlatIndex(coord []int) int {
	if len(coord) == 0 {
		return 0
	}
	flat := coord[0]
	stride := s[0]
	for i := 1; i < len(coord); i++ {
		flat += coord[i] * stride
		stride *= s[i]
	}
	return flat
}

// CoordOf converts a flat storage offset back to a multi-dimensional
// coordinate by repeated division and modulo against the shape, writing
// the result into coord when it has the rank's length, otherwise into a
// newly allocated slice. It is the inverse of FlatIndex for in-bounds
// offsets.
func (s Shape) CoordOf(flat int, coord []int) []int {
	if len(coord) != len(s) {
		coord = make([]int, len(s))
	}
	for i, size := range s {
		if size == 0 {
			coord[i] = 0
			continue
		}
		coord[i] = flat % size
		flat /= size
	}
	return coord
}

// Stride returns the number of flat elements spanned by a single unit of
// dimension dim: the product of all sizes below dim. For dim 0 this is 1.
// dim may equal the rank, in which case the result is the stride a
// hypothetical next dimension would have.
func (s Shape) Stride(dim int) int {
	n := 1
	for i := 0; i < dim && i < len(s); i++ {
		n *= s[i]
	}
	return n
}

// BlockSize returns the cumulative size through dimension dim inclusive:
// the product of all sizes from 0 up to and including dim. This is how many
// flat elements one unit of dimension dim+1 represents.
func (s Shape) BlockSize(dim int) int {
	return s.Stride(dim + 1)
}

// PadCoord zero-extends a partial coordinate to the rank of the shape. A
// coordinate with exactly rank entries is returned unchanged, a longer one
// is truncated to rank (CheckBounds is where excess entries are rejected),
// and a shorter one is copied into a new zero-padded slice.
func (s Shape) PadCoord(coord []int) []int {
	if len(coord) >= len(s) {
		return coord[:len(s)]
	}
	padded := make([]int, len(s))
	copy(padded, coord)
	return padded
}

// BlockShape derives the shape of a block of count consecutive units taken
// at dimension dim: the sizes below dim are kept and count becomes the new
// highest dimension. When there is no positive lower dimension the result
// is the single-axis shape [count].
func (s Shape) BlockShape(dim, count int) Shape {
	if dim <= 0 || dim > len(s) {
		return Shape{count}
	}
	for _, v := range s[:dim] {
		if v == 0 {
			return Shape{count}
		}
	}
	out := make(Shape, dim+1)
	copy(out, s[:dim])
	out[dim] = count
	return out
}
