// Copyright 2025 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

// Motion describes what happened to one dimension's coordinate during a
// single Increment/Decrement step.
type Motion uint8

const (
	// MotionNone indicates the dimension was not touched.
	MotionNone Motion = iota
	// MotionStep indicates the coordinate moved by one without rolling over.
	MotionStep
	// MotionReset indicates the coordinate rolled over (to 0 on increment,
	// to size-1 on decrement) and the step carried into the next dimension.
	MotionReset
)

// String satisfies the fmt.Stringer interface.
func (m Motion) String() string {
	switch m {
	case MotionNone:
		return "none"
	case MotionStep:
		return "step"
	case MotionReset:
		return "reset"
	}
	return "invalid"
}

// A Step reports the outcome of a single Increment/Decrement step.
type Step struct {
	// TopDim is the highest dimension whose coordinate changed,
	// or -1 when the shape has rank 0.
	TopDim int
	// Wrapped is set when the step carried (or borrowed) past the highest
	// dimension. A wrap is the regular end-of-traversal signal, not an
	// error; the coordinate is left at all zeros (increment) or at the
	// last valid coordinate (decrement).
	Wrapped bool
}

// Increment advances the coordinate by one element in odometer fashion:
// dimension 0 is incremented first, and each dimension that rolls over past
// its size resets to 0 and carries into the next. The coordinate is modified
// in place; the return value is the wrap flag.
//
// The coordinate must have the rank's length and be within bounds; iterating
// an empty shape is meaningless (no coordinate is valid) and callers are
// expected to reject it beforehand.
func (s Shape) Increment(coord []int) bool {
	for i := range coord {
		coord[i]++
		if coord[i] < s[i] {
			return false
		}
		coord[i] = 0
	}
	return true
}

// Decrement is the symmetric borrow: dimension 0 is decremented first, and
// each dimension that drops below zero resets to its size-1 and borrows from
// the next. Decrementing the all-zero coordinate wraps immediately and
// produces the last valid coordinate. The return value is the wrap flag.
func (s Shape) Decrement(coord []int) bool {
	for i := range coord {
		coord[i]--
		if coord[i] >= 0 {
			return false
		}
		coord[i] = s[i] - 1
	}
	return true
}

// IncrementInfo behaves like Increment but additionally records, per
// dimension, whether it was untouched, stepped, or reset. The motions slice
// is caller-supplied scratch space of the rank's length, so that stepping
// stays allocation-free; it is overwritten entirely on every call.
func (s Shape) IncrementInfo(coord []int, motions []Motion) Step {
	for i := range motions {
		motions[i] = MotionNone
	}
	step := Step{TopDim: -1}
	for i := range coord {
		coord[i]++
		step.TopDim = i
		if coord[i] < s[i] {
			motions[i] = MotionStep
			return step
		}
		coord[i] = 0
		motions[i] = MotionReset
	}
	step.Wrapped = true
	return step
}

// DecrementInfo is the borrow counterpart of IncrementInfo.
func (s Shape) DecrementInfo(coord []int, motions []Motion) Step {
	for i := range motions {
		motions[i] = MotionNone
	}
	step := Step{TopDim: -1}
	for i := range coord {
		coord[i]--
		step.TopDim = i
		if coord[i] >= 0 {
			motions[i] = MotionStep
			return step
		}
		coord[i] = s[i] - 1
		motions[i] = MotionReset
	}
	step.Wrapped = true
	return step
}
