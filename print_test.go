// Copyright 2025 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package densearray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nlpodyssey/densearray/shape"
	"github.com/nlpodyssey/densearray/trailer"
)

func TestArray_Sprint(t *testing.T) {
	testCases := []struct {
		name string
		s    shape.Shape
		want string
	}{
		{"vector", shape.Shape{4}, "[0 1 2 3]"},
		{"matrix", shape.Shape{2, 3}, "[[0 1]\n [2 3]\n [4 5]]"},
		{"rank 3", shape.Shape{2, 2, 2}, "[[[0 1]\n  [2 3]]\n [[4 5]\n  [6 7]]]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := New(ramp(tc.s.ElemCount()), tc.s)
			require.NoError(t, err)

			got, err := a.Sprint()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestArray_Sprint_EmptyArray(t *testing.T) {
	a, err := New[int](nil, shape.Shape{5, 0})
	require.NoError(t, err)

	_, err = a.Sprint()
	assert.ErrorIs(t, err, ErrEmptyArray)
}

func TestArray_Sprint_NotArray(t *testing.T) {
	a := Attach(ramp(6), trailer.Trailer{Shape: shape.Shape{3, 2}, Rank: 2, ElemCount: 6})
	_, err := a.Sprint()
	assert.ErrorIs(t, err, trailer.ErrNotArray)
}
