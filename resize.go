// Copyright 2025 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package densearray

import (
	"fmt"

	"github.com/nlpodyssey/densearray/shape"
	"github.com/nlpodyssey/densearray/trailer"
)

// Expand inserts count new units at dimension dim, position at, every new
// element set to init. Position 0 inserts before the first unit of that
// dimension; position equal to the current size appends.
//
// When dim is at or beyond the current rank, Expand first adds dimensions of
// size 1 up to dim. On an empty array the zero-size sentinel migrates to the
// newly introduced top dimension, which starts at size 0 and is grown by
// count by this same call; the element count stays 0 until the fill.
//
// Expand validates first and fails with an error wrapping
// shape.ErrInvalidDimensionNumber, shape.ErrInvalidDimensionSize or one of
// the shape.ErrAddressOutOfBounds variants, leaving the array untouched.
// The data movement builds the result in a fresh buffer and swaps it in
// only on full success, so no partial mutation is ever observable.
func (a *Array[T]) Expand(init T, dim, at, count int) error {
	if dim < 0 {
		return fmt.Errorf("%w: dimension %d", shape.ErrInvalidDimensionNumber, dim)
	}
	if count < 1 {
		return fmt.Errorf("%w: insert count %d", shape.ErrInvalidDimensionSize, count)
	}

	s := a.tr.Shape.Clone()
	if dim >= s.Rank() {
		if s.IsEmpty() {
			// The zero sentinel must stay last: the old top regains size 1
			// and the new top carries the emptiness.
			s[len(s)-1] = 1
			for s.Rank() < dim {
				s = append(s, 1)
			}
			s = append(s, 0)
		} else {
			for s.Rank() <= dim {
				s = append(s, 1)
			}
		}
	}

	if at < 0 {
		return fmt.Errorf("%w: dimension %d insert position %d", shape.ErrRangeLowOutOfBounds, dim, at)
	}
	if at > s[dim] {
		return fmt.Errorf("%w: dimension %d insert position %d, size %d", shape.ErrRangeHighOutOfBounds, dim, at, s[dim])
	}

	unit, block, numBlocks := blockGeometry(s, dim)

	// Validate the grown shape before sizing the buffer: its overflow guard
	// is what keeps newBlock*numBlocks from wrapping.
	grown := s.Clone()
	grown[dim] += count
	tr, err := trailer.New(grown)
	if err != nil {
		return err
	}

	gap := unit * count
	newBlock := block + gap

	out := make([]T, newBlock*numBlocks)
	for b := 0; b < numBlocks; b++ {
		srcBase := b * block
		dstBase := b * newBlock
		head := at * unit
		copy(out[dstBase:dstBase+head], a.data[srcBase:srcBase+head])
		for i := dstBase + head; i < dstBase+head+gap; i++ {
			out[i] = init
		}
		copy(out[dstBase+head+gap:dstBase+newBlock], a.data[srcBase+head:srcBase+block])
	}

	a.data, a.tr = out, tr
	return nil
}

// Contract removes count units at dimension dim starting at position at,
// shifting later data down to close the gap.
//
// Only the highest dimension may be shrunk to size 0 directly, which empties
// the array while keeping its rank; with collapseTopOnEmpty set, the shape
// collapses to the canonical single-axis empty shape [0] instead. A non-top
// dimension may only vanish when its size is exactly 1: removing that single
// unit drops the dimension from the shape vector entirely (the higher
// entries chain down one position) without moving any data. Zeroing a
// non-top dimension of size greater than 1 fails with ErrDimensionChainBreak.
//
// Like Expand, Contract validates first and swaps in a freshly built buffer
// only on full success.
func (a *Array[T]) Contract(at, dim, count int, collapseTopOnEmpty bool) error {
	s := a.tr.Shape
	if dim < 0 || dim >= s.Rank() {
		return fmt.Errorf("%w: dimension %d, rank %d", shape.ErrInvalidDimensionNumber, dim, s.Rank())
	}
	if count < 1 {
		return fmt.Errorf("%w: remove count %d", shape.ErrInvalidDimensionSize, count)
	}
	size := s[dim]
	if at < 0 || at >= size {
		return fmt.Errorf("%w: dimension %d remove position %d, size %d", shape.ErrRangeLowOutOfBounds, dim, at, size)
	}
	if at+count > size {
		return fmt.Errorf("%w: dimension %d remove position %d plus %d units, size %d", shape.ErrRangeHighOutOfBounds, dim, at, count, size)
	}

	newSize := size - count
	top := dim == s.Rank()-1

	if newSize == 0 && !top {
		if size != 1 {
			return fmt.Errorf("%w: dimension %d has size %d", ErrDimensionChainBreak, dim, size)
		}
		// Squeeze: the single unit of dim is the whole content of every
		// containing block, so the shape loses the dimension and the data
		// stays where it is.
		ns := make(shape.Shape, 0, s.Rank()-1)
		ns = append(ns, s[:dim]...)
		ns = append(ns, s[dim+1:]...)
		tr, err := trailer.New(ns)
		if err != nil {
			return err
		}
		a.tr = tr
		return nil
	}

	unit, block, numBlocks := blockGeometry(s, dim)
	gap := unit * count
	newBlock := block - gap

	out := make([]T, newBlock*numBlocks)
	for b := 0; b < numBlocks; b++ {
		srcBase := b * block
		dstBase := b * newBlock
		head := at * unit
		copy(out[dstBase:dstBase+head], a.data[srcBase:srcBase+head])
		copy(out[dstBase+head:dstBase+newBlock], a.data[srcBase+head+gap:srcBase+block])
	}

	ns := s.Clone()
	ns[dim] = newSize
	if newSize == 0 && collapseTopOnEmpty {
		ns = shape.Shape{0}
		out = out[:0]
	}
	tr, err := trailer.New(ns)
	if err != nil {
		return err
	}
	a.data, a.tr = out, tr
	return nil
}
