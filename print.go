// Copyright 2025 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package densearray

import (
	"fmt"
	"strings"

	"github.com/nlpodyssey/densearray/shape"
)

// Sprint renders the array's elements grouped by dimension, for diagnostics
// only: one bracket level per dimension, with the innermost (dimension 0)
// group on a single line. The descriptor is validated first; rendering an
// array with no elements fails with ErrEmptyArray.
func (a *Array[T]) Sprint() (string, error) {
	if err := a.tr.Validate(); err != nil {
		return "", err
	}
	if a.tr.ElemCount == 0 {
		return "", fmt.Errorf("%w: shape %v", ErrEmptyArray, a.tr.Shape)
	}

	s := a.tr.Shape
	rank := s.Rank()
	coord := make([]int, rank)
	motions := make([]shape.Motion, rank)

	var b strings.Builder
	b.WriteString(strings.Repeat("[", rank))
	for flat := 0; ; flat++ {
		if coord[0] > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", a.data[flat])

		step := s.IncrementInfo(coord, motions)
		if step.Wrapped {
			b.WriteString(strings.Repeat("]", rank))
			break
		}
		if step.TopDim > 0 {
			// Dimensions below TopDim rolled over: close their groups,
			// then reopen them on a new line, indented by the dimensions
			// that stayed open.
			b.WriteString(strings.Repeat("]", step.TopDim))
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(" ", rank-step.TopDim))
			b.WriteString(strings.Repeat("[", step.TopDim))
		}
	}
	return b.String(), nil
}
