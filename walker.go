// Copyright 2025 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package densearray

import (
	"fmt"

	"github.com/nlpodyssey/densearray/shape"
)

// A Walker visits an array's elements in flat storage order, one step at a
// time, keeping the multi-dimensional coordinate and the flat offset in
// sync. It reports, after every step, which dimensions just moved, so
// callers can detect "finished a row" or "finished a page" without
// recomputing flat indices.
//
// A Walker borrows the array it walks: it must not be used across Expand or
// Contract calls, which relocate the data it points into.
type Walker[T any] struct {
	arr     *Array[T]
	coord   []int
	motions []shape.Motion
	flat    int
}

// Walk positions a new Walker on the array's zero coordinate.
// It fails with ErrEmptyArray when the array has no elements to visit.
func (a *Array[T]) Walk() (*Walker[T], error) {
	if len(a.data) == 0 {
		return nil, fmt.Errorf("%w: shape %v", ErrEmptyArray, a.tr.Shape)
	}
	return &Walker[T]{
		arr:     a,
		coord:   make([]int, a.tr.Rank),
		motions: make([]shape.Motion, a.tr.Rank),
	}, nil
}

// Coord returns the current coordinate. The slice is owned by the Walker
// and is overwritten by every step; callers keeping it must copy it.
func (w *Walker[T]) Coord() []int {
	return w.coord
}

// Flat returns the current flat storage offset.
func (w *Walker[T]) Flat() int {
	return w.flat
}

// Elem returns the element at the current position.
func (w *Walker[T]) Elem() T {
	return w.arr.data[w.flat]
}

// SetElem stores v at the current position.
func (w *Walker[T]) SetElem(v T) {
	w.arr.data[w.flat] = v
}

// Motions returns the per-dimension outcome of the most recent step.
// The slice is owned by the Walker and overwritten by every step.
func (w *Walker[T]) Motions() []shape.Motion {
	return w.motions
}

// Next advances the position by one element. On wrap the Walker is back on
// the zero coordinate, and the returned Step has Wrapped set: the regular
// end-of-traversal signal.
func (w *Walker[T]) Next() shape.Step {
	step := w.arr.tr.Shape.IncrementInfo(w.coord, w.motions)
	if step.Wrapped {
		w.flat = 0
	} else {
		w.flat++
	}
	return step
}

// Prev moves the position back by one element. Stepping back from the zero
// coordinate wraps onto the last element.
func (w *Walker[T]) Prev() shape.Step {
	step := w.arr.tr.Shape.DecrementInfo(w.coord, w.motions)
	if step.Wrapped {
		w.flat = len(w.arr.data) - 1
	} else {
		w.flat--
	}
	return step
}

// Reset puts the Walker back on the zero coordinate.
func (w *Walker[T]) Reset() {
	for i := range w.coord {
		w.coord[i] = 0
	}
	for i := range w.motions {
		w.motions[i] = shape.MotionNone
	}
	w.flat = 0
}
