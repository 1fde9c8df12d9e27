// Copyright 2025 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package densearray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlpodyssey/densearray/shape"
)

func TestArray_Expand_InnerDimension(t *testing.T) {
	a, err := New(ramp(6), shape.Shape{2, 3})
	require.NoError(t, err)

	// Insert one unit of dimension 0 in the middle of each row.
	require.NoError(t, a.Expand(-1, 0, 1, 1))

	assert.Equal(t, shape.Shape{3, 3}, a.Shape())
	assert.Equal(t, []int{0, -1, 1, 2, -1, 3, 4, -1, 5}, a.Raw())
}

func TestArray_Expand_AppendAtTop(t *testing.T) {
	a, err := New(ramp(6), shape.Shape{2, 3})
	require.NoError(t, err)

	require.NoError(t, a.Expand(-1, 1, 3, 1))

	assert.Equal(t, shape.Shape{2, 4}, a.Shape())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, -1, -1}, a.Raw())
}

func TestArray_Expand_InsertBeforeFirst(t *testing.T) {
	a, err := New(ramp(6), shape.Shape{2, 3})
	require.NoError(t, err)

	require.NoError(t, a.Expand(-1, 1, 0, 2))

	assert.Equal(t, shape.Shape{2, 5}, a.Shape())
	assert.Equal(t, []int{-1, -1, -1, -1, 0, 1, 2, 3, 4, 5}, a.Raw())
}

func TestArray_Expand_ExtendsRank(t *testing.T) {
	a, err := New(ramp(5), shape.Shape{5})
	require.NoError(t, err)

	// Dimension 2 is beyond the rank: dimensions of size 1 are added first.
	require.NoError(t, a.Expand(-1, 2, 1, 2))

	assert.Equal(t, shape.Shape{5, 1, 3}, a.Shape())
	assert.Equal(t, 15, a.Len())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, a.Range([]int{0, 0, 0}, 5))
	assert.Equal(t, -1, a.At([]int{0, 0, 1}))
	assert.Equal(t, -1, a.At([]int{4, 0, 2}))
}

func TestArray_Expand_EmptyArray(t *testing.T) {
	a, err := New[int](nil, shape.Shape{3, 0})
	require.NoError(t, err)

	require.NoError(t, a.Expand(7, 1, 0, 2))

	assert.Equal(t, shape.Shape{3, 2}, a.Shape())
	assert.Equal(t, []int{7, 7, 7, 7, 7, 7}, a.Raw())
}

func TestArray_Expand_EmptyArrayExtendsRank(t *testing.T) {
	a, err := New[int](nil, shape.Shape{0})
	require.NoError(t, err)

	// The empty sentinel migrates to the new top dimension, which is then
	// filled by the same call.
	require.NoError(t, a.Expand(7, 1, 0, 2))

	assert.Equal(t, shape.Shape{1, 2}, a.Shape())
	assert.Equal(t, []int{7, 7}, a.Raw())
}

func TestArray_Expand_LowerDimensionOfEmptyArray(t *testing.T) {
	a, err := New[int](nil, shape.Shape{3, 0})
	require.NoError(t, err)

	// Growing a non-top dimension of an empty array changes the unit layout
	// without materializing any element.
	require.NoError(t, a.Expand(7, 0, 3, 2))

	assert.Equal(t, shape.Shape{5, 0}, a.Shape())
	assert.Equal(t, 0, a.Len())
}

func TestArray_Expand_Failure(t *testing.T) {
	testCases := []struct {
		name  string
		dim   int
		at    int
		count int
		err   error
	}{
		{"negative dimension", -1, 0, 1, shape.ErrInvalidDimensionNumber},
		{"zero count", 1, 0, 0, shape.ErrInvalidDimensionSize},
		{"negative position", 1, -1, 1, shape.ErrRangeLowOutOfBounds},
		{"position past append point", 1, 4, 1, shape.ErrRangeHighOutOfBounds},
		{"count overflowing the element total", 0, 0, 1 << 62, shape.ErrInvalidDimensionSize},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := New(ramp(6), shape.Shape{2, 3})
			require.NoError(t, err)

			err = a.Expand(-1, tc.dim, tc.at, tc.count)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, shape.Shape{2, 3}, a.Shape(), "failed expand must leave the array unchanged")
			assert.Equal(t, ramp(6), a.Raw())
		})
	}
}

func TestArray_Contract_InnerDimension(t *testing.T) {
	a, err := New(ramp(20), shape.Shape{5, 4})
	require.NoError(t, err)

	// Remove units 1 and 2 of dimension 0 from every row.
	require.NoError(t, a.Contract(1, 0, 2, false))

	assert.Equal(t, shape.Shape{3, 4}, a.Shape())
	assert.Equal(t, []int{
		0, 3, 4,
		5, 8, 9,
		10, 13, 14,
		15, 18, 19,
	}, a.Raw())
}

func TestArray_Contract_TopToZero(t *testing.T) {
	a, err := New(ramp(20), shape.Shape{5, 4})
	require.NoError(t, err)

	require.NoError(t, a.Contract(0, 1, 4, false))

	assert.Equal(t, shape.Shape{5, 0}, a.Shape())
	assert.Equal(t, 0, a.Len())
}

func TestArray_Contract_TopToZeroCollapses(t *testing.T) {
	a, err := New(ramp(20), shape.Shape{5, 4})
	require.NoError(t, err)

	require.NoError(t, a.Contract(0, 1, 4, true))

	assert.Equal(t, shape.Shape{0}, a.Shape())
	assert.Equal(t, 0, a.Len())
}

func TestArray_Contract_SqueezesSizeOneDimension(t *testing.T) {
	a, err := New(ramp(12), shape.Shape{1, 4, 3})
	require.NoError(t, err)

	// Removing the single unit of dimension 0 drops the dimension entirely;
	// the elements stay where they are.
	require.NoError(t, a.Contract(0, 0, 1, false))

	assert.Equal(t, shape.Shape{4, 3}, a.Shape())
	assert.Equal(t, ramp(12), a.Raw())
}

func TestArray_Contract_ChainBreak(t *testing.T) {
	a, err := New(ramp(60), shape.Shape{5, 4, 3})
	require.NoError(t, err)

	err = a.Contract(0, 1, 4, false)
	assert.ErrorIs(t, err, ErrDimensionChainBreak)
	assert.Equal(t, shape.Shape{5, 4, 3}, a.Shape())
	assert.Equal(t, ramp(60), a.Raw())
}

func TestArray_Contract_Failure(t *testing.T) {
	testCases := []struct {
		name  string
		at    int
		dim   int
		count int
		err   error
	}{
		{"dimension out of range", 0, 2, 1, shape.ErrInvalidDimensionNumber},
		{"negative dimension", 0, -1, 1, shape.ErrInvalidDimensionNumber},
		{"zero count", 0, 1, 0, shape.ErrInvalidDimensionSize},
		{"position past end", 4, 1, 1, shape.ErrRangeLowOutOfBounds},
		{"negative position", -1, 1, 1, shape.ErrRangeLowOutOfBounds},
		{"extent overruns", 2, 1, 3, shape.ErrRangeHighOutOfBounds},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := New(ramp(20), shape.Shape{5, 4})
			require.NoError(t, err)

			err = a.Contract(tc.at, tc.dim, tc.count, false)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, shape.Shape{5, 4}, a.Shape(), "failed contract must leave the array unchanged")
			assert.Equal(t, ramp(20), a.Raw())
		})
	}
}

// Expanding and then contracting with the same arguments must restore both
// the shape and every element value outside the touched region.
func TestArray_ExpandContract_RoundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		s     shape.Shape
		dim   int
		at    int
		count int
	}{
		{"inner dimension", shape.Shape{5, 4}, 0, 2, 3},
		{"top dimension middle", shape.Shape{5, 4}, 1, 1, 2},
		{"top dimension append", shape.Shape{5, 4}, 1, 4, 1},
		{"rank 3 middle dimension", shape.Shape{2, 3, 4}, 1, 0, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := New(ramp(tc.s.ElemCount()), tc.s)
			require.NoError(t, err)

			require.NoError(t, a.Expand(-1, tc.dim, tc.at, tc.count))
			require.NoError(t, a.Contract(tc.at, tc.dim, tc.count, false))

			assert.Equal(t, tc.s, a.Shape())
			assert.Equal(t, ramp(tc.s.ElemCount()), a.Raw())
		})
	}
}
