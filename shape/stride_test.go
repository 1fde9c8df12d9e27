// Copyright 2025 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape_FlatIndex(t *testing.T) {
	testCases := []struct {
		name  string
		s     Shape
		coord []int
		want  int
	}{
		{"origin", Shape{5, 4}, []int{0, 0}, 0},
		{"innermost step", Shape{5, 4}, []int{1, 0}, 1},
		{"outer step", Shape{5, 4}, []int{0, 1}, 5},
		{"last element", Shape{5, 4}, []int{4, 3}, 19},
		{"rank 3", Shape{5, 4, 3}, []int{2, 1, 2}, 2 + 1*5 + 2*20},
		{"partial coordinate", Shape{5, 4, 3}, []int{2}, 2},
		{"empty coordinate", Shape{5, 4}, nil, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s.FlatIndex(tc.coord))
		})
	}
}

// Walking a shape coordinate by coordinate must hit flat offsets 0..n-1 in
// order (dimension 0 is fastest-varying), and CoordOf must invert FlatIndex
// at every position.
func TestShape_FlatIndex_Bijection(t *testing.T) {
	shapes := []Shape{{1}, {7}, {5, 4}, {2, 3, 4}, {3, 1, 4, 2}}

	for _, s := range shapes {
		t.Run(s.String(), func(t *testing.T) {
			coord := make([]int, s.Rank())
			for flat := 0; flat < s.ElemCount(); flat++ {
				require.Equal(t, flat, s.FlatIndex(coord))

				back := s.CoordOf(flat, nil)
				require.Equal(t, coord, back)

				wrapped := s.Increment(coord)
				require.Equal(t, flat == s.ElemCount()-1, wrapped)
			}
		})
	}
}

func TestShape_Stride_BlockSize(t *testing.T) {
	s := Shape{5, 4, 3}

	assert.Equal(t, 1, s.Stride(0))
	assert.Equal(t, 5, s.Stride(1))
	assert.Equal(t, 20, s.Stride(2))
	assert.Equal(t, 60, s.Stride(3))

	assert.Equal(t, 5, s.BlockSize(0))
	assert.Equal(t, 20, s.BlockSize(1))
	assert.Equal(t, 60, s.BlockSize(2))
}

func TestShape_PadCoord(t *testing.T) {
	s := Shape{5, 4, 3}

	assert.Equal(t, []int{2, 0, 0}, s.PadCoord([]int{2}))
	assert.Equal(t, []int{0, 0, 0}, s.PadCoord(nil))

	full := []int{1, 2, 0}
	assert.Equal(t, full, s.PadCoord(full))

	// Excess entries are dropped so the result always has exactly rank
	// entries.
	assert.Equal(t, []int{1, 2, 0}, s.PadCoord([]int{1, 2, 0, 9}))
}

func TestShape_BlockShape(t *testing.T) {
	testCases := []struct {
		name  string
		s     Shape
		dim   int
		count int
		want  Shape
	}{
		{"mid dimension", Shape{5, 4}, 1, 2, Shape{5, 2}},
		{"rank 3", Shape{5, 4, 3}, 2, 1, Shape{5, 4, 1}},
		{"dimension 0", Shape{5, 4}, 0, 7, Shape{7}},
		{"empty lower dimension", Shape{0}, 1, 3, Shape{3}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s.BlockShape(tc.dim, tc.count))
		})
	}
}
