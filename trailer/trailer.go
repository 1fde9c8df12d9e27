// Copyright 2025 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trailer provides the self-describing descriptor of a dense array:
// a fixed-layout record carrying the shape vector, rank, element count and
// a validity tag.
//
// In memory the descriptor is an explicit struct owned by the array. Its
// physical form — a trailer appended after the element data of a flat
// buffer — exists only at the serialization boundary, handled by Append
// and ReadTail:
//
//	[ element bytes | shape_0 .. shape_{rank-1} | rank | element_count | tag ]
//
// with every metadata field a little-endian uint64 and the tag at the
// highest offset, so a reader starts from the tail and walks backward.
package trailer

import (
	"errors"
	"fmt"

	"github.com/nlpodyssey/densearray/shape"
)

// Magic is the validity tag of a well-formed descriptor: the bytes
// "DENARRY\x01" read as a little-endian uint64.
const Magic uint64 = 0x01595252414e4544

// MinSize is the byte size of the smallest possible encoded trailer
// (rank 1: one shape entry, rank, element count, tag).
const MinSize = 4 * 8

// ErrNotArray indicates a buffer or descriptor without a valid trailer:
// a missing or mismatched validity tag, a buffer too short to carry the
// minimum trailer, or descriptor fields inconsistent with the shape.
//
// The tag is a cheap heuristic against gross misuse (such as passing the
// wrong buffer), not a checksum: it does not catch all corruption and must
// not be relied upon for data integrity.
var ErrNotArray = errors.New("trailer: not a dense array")

// A Trailer is the descriptor of a dense array: its shape vector plus the
// derived rank and element count, and the validity tag. Rank and ElemCount
// are carried explicitly because the physical trailer stores them
// explicitly; Validate checks they agree with the shape.
type Trailer struct {
	Shape     shape.Shape
	Rank      int
	ElemCount int
	Tag       uint64
}

// New validates the given shape and returns a tagged Trailer describing it.
// The shape is copied before being assigned.
func New(s shape.Shape) (Trailer, error) {
	if err := s.Validate(); err != nil {
		return Trailer{}, err
	}
	return Trailer{
		Shape:     s.Clone(),
		Rank:      s.Rank(),
		ElemCount: s.ElemCount(),
		Tag:       Magic,
	}, nil
}

// Validate checks that the Trailer carries the validity tag and that its
// explicit fields agree with its shape. It returns nil on success, otherwise
// an error wrapping ErrNotArray or a shape validation error.
func (t Trailer) Validate() error {
	if t.Tag != Magic {
		return fmt.Errorf("%w: validity tag %#x, want %#x", ErrNotArray, t.Tag, Magic)
	}
	if err := t.Shape.Validate(); err != nil {
		return err
	}
	if t.Rank != t.Shape.Rank() {
		return fmt.Errorf("%w: rank field %d does not match shape %v", ErrNotArray, t.Rank, t.Shape)
	}
	if t.ElemCount != t.Shape.ElemCount() {
		return fmt.Errorf("%w: element count field %d does not match shape %v", ErrNotArray, t.ElemCount, t.Shape)
	}
	return nil
}

// Clone returns a deep copy of the Trailer.
func (t Trailer) Clone() Trailer {
	t.Shape = t.Shape.Clone()
	return t
}

// Size returns the encoded byte size of the trailer.
func (t Trailer) Size() int {
	return (len(t.Shape) + 3) * 8
}
