// Copyright 2025 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package densearray

import (
	"fmt"

	"github.com/nlpodyssey/densearray/shape"
)

// At returns the element at the given coordinate.
//
// Like all scalar and ranged accessors, At resolves the coordinate through
// row-major address arithmetic without implicit bounds checking: callers
// holding untrusted coordinates validate with Shape().CheckBounds first.
// A coordinate shorter than the rank counts as zero-padded.
func (a *Array[T]) At(coord []int) T {
	return a.data[a.tr.Shape.FlatIndex(coord)]
}

// SetAt stores v at the given coordinate.
func (a *Array[T]) SetAt(coord []int, v T) {
	a.data[a.tr.Shape.FlatIndex(coord)] = v
}

// Range returns the count consecutive flat elements starting at the given
// coordinate. The result is a view into the backing storage, not a copy:
// writes through it are visible in the array. Callers needing safety
// validate with Shape().CheckAlignedRange first.
func (a *Array[T]) Range(coord []int, count int) []T {
	flat := a.tr.Shape.FlatIndex(coord)
	return a.data[flat : flat+count]
}

// SetRange copies src into the consecutive flat elements starting at the
// given coordinate.
func (a *Array[T]) SetRange(coord []int, src []T) {
	flat := a.tr.Shape.FlatIndex(coord)
	copy(a.data[flat:flat+len(src)], src)
}

// Copy transfers count whole units of dimension dim from src at srcCoord to
// dst at dstCoord. Both coordinates must be aligned at dim (all lower
// entries zero) and the run of count units must fit each side's shape, or
// the first validation error is returned and nothing is transferred. The
// two arrays must agree on the unit size at dim (the product of sizes below
// it), otherwise Copy fails with ErrWrongDataSize.
func Copy[T any](dst *Array[T], dstCoord []int, src *Array[T], srcCoord []int, dim, count int) error {
	if err := src.tr.Shape.CheckAlignedRange(srcCoord, dim, count); err != nil {
		return fmt.Errorf("copy source: %w", err)
	}
	if err := dst.tr.Shape.CheckAlignedRange(dstCoord, dim, count); err != nil {
		return fmt.Errorf("copy destination: %w", err)
	}
	unit := src.tr.Shape.Stride(dim)
	if dstUnit := dst.tr.Shape.Stride(dim); dstUnit != unit {
		return fmt.Errorf("%w: unit size at dimension %d is %d in source, %d in destination", ErrWrongDataSize, dim, unit, dstUnit)
	}
	n := unit * count
	srcFlat := src.tr.Shape.FlatIndex(srcCoord)
	dstFlat := dst.tr.Shape.FlatIndex(dstCoord)
	copy(dst.data[dstFlat:dstFlat+n], src.data[srcFlat:srcFlat+n])
	return nil
}

// Extract copies count whole units of dimension dim starting at the given
// coordinate into a new, independently owned Array. The coordinate must be
// aligned at dim and the run must fit the shape. The result's shape keeps
// the sizes below dim and takes count as its new highest dimension (the
// single-axis shape [count] when dim is 0).
func (a *Array[T]) Extract(coord []int, dim, count int) (*Array[T], error) {
	if err := a.tr.Shape.CheckAlignedRange(coord, dim, count); err != nil {
		return nil, err
	}
	unit := a.tr.Shape.Stride(dim)
	out := make([]T, unit*count)
	flat := a.tr.Shape.FlatIndex(coord)
	copy(out, a.data[flat:flat+len(out)])
	return New(out, a.tr.Shape.BlockShape(dim, count))
}

// blockGeometry returns the unit size, containing block size and number of
// repeating blocks for dimension dim, the three quantities every block-wise
// data movement needs.
func blockGeometry(s shape.Shape, dim int) (unit, block, numBlocks int) {
	unit = s.Stride(dim)
	block = s.BlockSize(dim)
	numBlocks = 1
	for _, v := range s[dim+1:] {
		numBlocks *= v
	}
	return unit, block, numBlocks
}
