// Copyright 2025 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by shape validation. They form a closed set:
// callers can rely on errors.Is against these values, and every error
// returned by this package wraps exactly one of them.
var (
	// ErrNoDimensions indicates a Shape of rank zero.
	ErrNoDimensions = errors.New("shape: no dimensions")

	// ErrInvalidDimensionSize indicates a negative entry, a zero entry in a
	// non-last position, or a size/count argument below its allowed minimum.
	ErrInvalidDimensionSize = errors.New("shape: invalid dimension size")

	// ErrInvalidDimensionNumber indicates a dimension argument outside
	// [0, rank), or a coordinate with more entries than the rank.
	ErrInvalidDimensionNumber = errors.New("shape: invalid dimension number")

	// ErrAddressOutOfBounds indicates a coordinate entry outside the valid
	// range of its dimension. All more specific address errors below wrap it,
	// so errors.Is(err, ErrAddressOutOfBounds) matches any of them.
	ErrAddressOutOfBounds = errors.New("shape: address out of bounds")

	// ErrAddressAlignment indicates a coordinate that does not denote the
	// start of a whole sub-block at the requested dimension.
	ErrAddressAlignment = errors.New("shape: address not aligned to dimension boundary")
)

// Range and sign variants of ErrAddressOutOfBounds.
var (
	ErrAddressNegative      = fmt.Errorf("%w: negative coordinate", ErrAddressOutOfBounds)
	ErrRangeLowOutOfBounds  = fmt.Errorf("%w: range start outside dimension", ErrAddressOutOfBounds)
	ErrRangeHighOutOfBounds = fmt.Errorf("%w: range extent overruns dimension", ErrAddressOutOfBounds)
)
