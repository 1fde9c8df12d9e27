// Copyright 2025 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package densearray implements dense arrays of arbitrary rank stored in a
// flat contiguous buffer, with shape metadata carried as a self-describing
// descriptor.
//
// Dimension 0 is the fastest-varying axis: walking flat storage element by
// element advances dimension 0 first. An Array does not impose any element
// type: it is positional storage plus shape bookkeeping, and no operation
// performs arithmetic on the elements themselves.
//
// An Array owns its backing storage exclusively: constructors and Extract
// always produce a fresh, independently owned buffer rather than aliasing a
// source. Operations are synchronous and hold no locks; an Array shared
// across goroutines needs external mutual exclusion, in particular around
// Expand and Contract, which physically relocate data.
package densearray

import (
	"fmt"

	"github.com/nlpodyssey/densearray/shape"
	"github.com/nlpodyssey/densearray/trailer"
)

// An Array is a dense array of arbitrary rank: a contiguous sequence of
// elements of length equal to its shape's element count, plus the
// descriptor for that shape.
type Array[T any] struct {
	data []T
	tr   trailer.Trailer
}

// New performs validity checks over the given data and shape and returns an
// Array wrapping them if validation succeeds, otherwise an error.
//
// The shape must be valid (rank >= 1; only the last entry may be zero) and
// the data length must equal the shape's element count, or the error wraps
// shape.ErrNoDimensions, shape.ErrInvalidDimensionSize or ErrWrongDataSize
// respectively.
//
// The shape is copied before being assigned. Since data can take a large
// amount of memory it is NOT copied: the Array takes ownership of it, and
// further access through the original slice leads to unexpected content.
func New[T any](data []T, s shape.Shape) (*Array[T], error) {
	tr, err := trailer.New(s)
	if err != nil {
		return nil, err
	}
	if len(data) != tr.ElemCount {
		return nil, fmt.Errorf("%w: shape %v wants %d elements, data has %d", ErrWrongDataSize, s, tr.ElemCount, len(data))
	}
	return &Array[T]{data: data, tr: tr}, nil
}

// NewFilled allocates an Array of the given shape with every element set
// to init.
func NewFilled[T any](s shape.Shape, init T) (*Array[T], error) {
	tr, err := trailer.New(s)
	if err != nil {
		return nil, err
	}
	data := make([]T, tr.ElemCount)
	for i := range data {
		data[i] = init
	}
	return &Array[T]{data: data, tr: tr}, nil
}

// Attach wraps raw data and a saved descriptor back into an Array without
// any validation. This is the fast path for reattaching a descriptor
// previously obtained from Detach; callers holding untrusted input should
// call Descriptor (or New) afterward.
func Attach[T any](data []T, tr trailer.Trailer) *Array[T] {
	return &Array[T]{data: data, tr: tr}
}

// Descriptor validates the array's descriptor and returns a copy of it.
// It fails with an error wrapping trailer.ErrNotArray when the validity tag
// is absent or the descriptor fields disagree with the shape, e.g. after an
// Attach of mismatched parts.
func (a *Array[T]) Descriptor() (trailer.Trailer, error) {
	if err := a.tr.Validate(); err != nil {
		return trailer.Trailer{}, err
	}
	return a.tr.Clone(), nil
}

// Shape returns a copy of the array's shape vector
// (copied to prevent tampering).
func (a *Array[T]) Shape() shape.Shape {
	return a.tr.Shape.Clone()
}

// Rank returns the number of dimensions.
func (a *Array[T]) Rank() int {
	return a.tr.Rank
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return len(a.data)
}

// Raw returns the backing storage without its descriptor.
//
// The value returned is NOT a copy: it is the array's own buffer, handed
// out for raw use. The caller must stop using the Array through its typed
// operations while mutating the raw slice's length or sharing it.
func (a *Array[T]) Raw() []T {
	return a.data
}

// Detach splits the array into its backing storage and its descriptor, so
// the descriptor can be reattached later with Attach. The Array must not be
// used afterwards.
func (a *Array[T]) Detach() ([]T, trailer.Trailer) {
	data, tr := a.data, a.tr
	a.data, a.tr = nil, trailer.Trailer{}
	return data, tr
}

// Clone returns a deep copy of the array with independently owned storage.
func (a *Array[T]) Clone() *Array[T] {
	data := make([]T, len(a.data))
	copy(data, a.data)
	return &Array[T]{data: data, tr: a.tr.Clone()}
}

// Fill sets every element to v, keeping the shape.
func (a *Array[T]) Fill(v T) {
	for i := range a.data {
		a.data[i] = v
	}
}
