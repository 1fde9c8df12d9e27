// Copyright 2025 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape provides the shape vector of a dense array together with
// row-major address arithmetic, bounds and alignment validation, and
// odometer-style coordinate iteration.
//
// Throughout the package, dimension 0 is the fastest-varying ("innermost")
// axis: increasing a coordinate's entry 0 by one moves exactly one element
// forward in flat storage.
package shape

import (
	"fmt"
	"math"
	"math/bits"
)

// A Shape is the ordered list of per-dimension sizes of a dense array.
// Its rank is its length.
//
// A valid Shape has rank >= 1. Every entry except the last must be positive;
// the last (highest, slowest-varying) entry may be zero, which is the
// sentinel for an array that is structurally defined but currently empty.
// The lower entries of an empty shape remain meaningful: they describe the
// unit layout the array takes on again when it is re-grown.
type Shape []int

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// ElemCount returns the product of all dimension sizes, i.e. the number of
// elements an array of this shape holds. An empty shape (zero last entry)
// yields 0. The shape is assumed to be valid; see Validate.
func (s Shape) ElemCount() int {
	n := 1
	for _, v := range s {
		n *= v
	}
	return n
}

// IsEmpty reports whether the shape carries the empty sentinel
// (a zero-size last dimension).
func (s Shape) IsEmpty() bool {
	return len(s) > 0 && s[len(s)-1] == 0
}

// Validate checks the Shape against the following rules:
//
//   - the rank must be at least 1
//   - no entry may be negative
//   - only the last entry may be zero
//   - the element count must fit within the "int" type
//
// It returns nil on success, otherwise an error wrapping ErrNoDimensions
// or ErrInvalidDimensionSize.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return ErrNoDimensions
	}
	for i, v := range s {
		if v < 0 {
			return fmt.Errorf("%w: dimension %d has size %d", ErrInvalidDimensionSize, i, v)
		}
		if v == 0 && i != len(s)-1 {
			return fmt.Errorf("%w: dimension %d has size 0, only the last dimension may be empty", ErrInvalidDimensionSize, i)
		}
	}
	count := uint(1)
	for _, v := range s {
		var hi uint
		if hi, count = bits.Mul(count, uint(v)); hi != 0 || count > math.MaxInt {
			return fmt.Errorf("%w: element count overflows int", ErrInvalidDimensionSize)
		}
	}
	return nil
}

// Clone returns a copy of the shape, so that the original is not subject
// to accidental updates.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	c := make(Shape, len(s))
	copy(c, s)
	return c
}

// Equal reports whether two shapes have the same rank and sizes.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// String satisfies the fmt.Stringer interface.
func (s Shape) String() string {
	return fmt.Sprintf("%d", []int(s))
}
