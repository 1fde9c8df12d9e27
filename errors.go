// Copyright 2025 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package densearray

import "errors"

// Sentinel errors of the array operations. Together with the sentinels of
// the shape and trailer packages they form the closed error set of the
// library; all of them are deterministic results of bad arguments or state,
// never transient conditions, and callers are expected to surface them
// unchanged.
var (
	// ErrWrongDataSize indicates raw data whose length does not match the
	// declared shape's element count, or a block transfer between arrays
	// whose unit sizes disagree.
	ErrWrongDataSize = errors.New("densearray: data length does not match shape")

	// ErrEmptyArray indicates an operation that is meaningless on an array
	// with no elements, such as rendering it element by element.
	ErrEmptyArray = errors.New("densearray: array has no elements")

	// ErrDimensionChainBreak indicates an attempt to contract an
	// intermediate dimension to size zero while its size is greater
	// than one.
	ErrDimensionChainBreak = errors.New("densearray: cannot remove an intermediate dimension of size greater than one")
)
