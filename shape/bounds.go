// Copyright 2025 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "fmt"

// CheckBounds reports whether every entry of the coordinate lies within
// its dimension, i.e. coord[i] is in [0, s[i]) for all i.
//
// The coordinate may be shorter than the rank (missing entries count as
// zero, which is always in bounds for a valid shape's non-last dimensions),
// but not longer.
func (s Shape) CheckBounds(coord []int) error {
	if len(coord) > len(s) {
		return fmt.Errorf("%w: coordinate has %d entries, shape has rank %d", ErrInvalidDimensionNumber, len(coord), len(s))
	}
	for i, c := range coord {
		if c < 0 {
			return fmt.Errorf("%w: dimension %d coordinate %d", ErrAddressNegative, i, c)
		}
		if c >= s[i] {
			return fmt.Errorf("%w: dimension %d coordinate %d, size %d", ErrAddressOutOfBounds, i, c, s[i])
		}
	}
	return nil
}

// CheckAligned reports whether the coordinate denotes the start of a whole
// sub-block at dimension dim: every entry below dim must be exactly zero,
// and every entry at or above dim must be in bounds.
func (s Shape) CheckAligned(coord []int, dim int) error {
	if dim < 0 || dim >= len(s) {
		return fmt.Errorf("%w: dimension %d, rank %d", ErrInvalidDimensionNumber, dim, len(s))
	}
	if len(coord) > len(s) {
		return fmt.Errorf("%w: coordinate has %d entries, shape has rank %d", ErrInvalidDimensionNumber, len(coord), len(s))
	}
	for i, c := range coord {
		if i < dim {
			if c != 0 {
				return fmt.Errorf("%w: dimension %d coordinate %d must be 0 below dimension %d", ErrAddressAlignment, i, c, dim)
			}
			continue
		}
		if c < 0 {
			return fmt.Errorf("%w: dimension %d coordinate %d", ErrAddressNegative, i, c)
		}
		if c >= s[i] {
			return fmt.Errorf("%w: dimension %d coordinate %d, size %d", ErrAddressOutOfBounds, i, c, s[i])
		}
	}
	return nil
}

// CheckAlignedRange is CheckAligned extended to a run of count consecutive
// units at dimension dim. It distinguishes a start position already outside
// the dimension (ErrRangeLowOutOfBounds) from a valid start whose extent
// overruns it (ErrRangeHighOutOfBounds).
func (s Shape) CheckAlignedRange(coord []int, dim, count int) error {
	if dim < 0 || dim >= len(s) {
		return fmt.Errorf("%w: dimension %d, rank %d", ErrInvalidDimensionNumber, dim, len(s))
	}
	if count < 1 {
		return fmt.Errorf("%w: unit count %d", ErrInvalidDimensionSize, count)
	}
	if len(coord) > len(s) {
		return fmt.Errorf("%w: coordinate has %d entries, shape has rank %d", ErrInvalidDimensionNumber, len(coord), len(s))
	}
	for i, c := range coord {
		switch {
		case i < dim:
			if c != 0 {
				return fmt.Errorf("%w: dimension %d coordinate %d must be 0 below dimension %d", ErrAddressAlignment, i, c, dim)
			}
		case i == dim:
			// checked below, also for coordinates too short to carry it
		default:
			if c < 0 {
				return fmt.Errorf("%w: dimension %d coordinate %d", ErrAddressNegative, i, c)
			}
			if c >= s[i] {
				return fmt.Errorf("%w: dimension %d coordinate %d, size %d", ErrAddressOutOfBounds, i, c, s[i])
			}
		}
	}
	start := 0
	if dim < len(coord) {
		start = coord[dim]
	}
	if start < 0 || start >= s[dim] {
		return fmt.Errorf("%w: dimension %d start %d, size %d", ErrRangeLowOutOfBounds, dim, start, s[dim])
	}
	if start+count > s[dim] {
		return fmt.Errorf("%w: dimension %d start %d plus %d units, size %d", ErrRangeHighOutOfBounds, dim, start, count, s[dim])
	}
	return nil
}
