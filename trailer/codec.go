// Copyright 2025 The NLP Odyssey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trailer

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/nlpodyssey/densearray/shape"
)

// Append encodes the trailer and appends it to buf, which normally already
// holds the serialized element data. The result is the array in its
// self-describing flat-buffer form. No validation is performed; callers who
// need it call Validate first.
func (t Trailer) Append(buf []byte) []byte {
	for _, v := range t.Shape {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(v))
	}
	buf = binary.LittleEndian.AppendUint64(buf, uint64(t.Rank))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(t.ElemCount))
	buf = binary.LittleEndian.AppendUint64(buf, t.Tag)
	return buf
}

// MarshalBinary encodes the trailer alone. It satisfies
// encoding.BinaryMarshaler.
func (t Trailer) MarshalBinary() ([]byte, error) {
	return t.Append(make([]byte, 0, t.Size())), nil
}

// UnmarshalBinary decodes a buffer that holds a trailer and nothing else.
// It satisfies encoding.BinaryUnmarshaler.
func (t *Trailer) UnmarshalBinary(data []byte) error {
	decoded, dataLen, err := ReadTail(data)
	if err != nil {
		return err
	}
	if dataLen != 0 {
		return fmt.Errorf("%w: %d unexpected bytes before the trailer", ErrNotArray, dataLen)
	}
	*t = decoded
	return nil
}

// ReadTail decodes a trailer from the tail of a self-describing buffer,
// walking backward from the validity tag at the highest offset. On success
// it returns the decoded Trailer and the number of leading bytes that are
// element data.
//
// A buffer shorter than the minimum trailer, a mismatched validity tag, or
// metadata fields that cannot describe the buffer all yield an error
// wrapping ErrNotArray. Shape rule violations surface as shape validation
// errors via Validate.
func ReadTail(buf []byte) (Trailer, int, error) {
	if len(buf) < MinSize {
		return Trailer{}, 0, fmt.Errorf("%w: buffer of %d bytes is shorter than the minimum trailer (%d bytes)", ErrNotArray, len(buf), MinSize)
	}

	end := len(buf)
	tag := binary.LittleEndian.Uint64(buf[end-8:])
	if tag != Magic {
		return Trailer{}, 0, fmt.Errorf("%w: validity tag %#x, want %#x", ErrNotArray, tag, Magic)
	}

	count, err := readIntField(buf, end-16, "element count")
	if err != nil {
		return Trailer{}, 0, err
	}
	rank, err := readIntField(buf, end-24, "rank")
	if err != nil {
		return Trailer{}, 0, err
	}
	if rank < 1 {
		return Trailer{}, 0, fmt.Errorf("%w: rank %d", ErrNotArray, rank)
	}

	// Bound the rank against the buffer before computing the trailer size:
	// (rank+3)*8 wraps for huge ranks and would slip past the size check.
	if rank > (len(buf)-24)/8 {
		return Trailer{}, 0, fmt.Errorf("%w: rank %d wants a trailer larger than the %d-byte buffer", ErrNotArray, rank, len(buf))
	}
	size := (rank + 3) * 8

	s := make(shape.Shape, rank)
	base := end - size
	for i := range s {
		if s[i], err = readIntField(buf, base+i*8, fmt.Sprintf("shape entry %d", i)); err != nil {
			return Trailer{}, 0, err
		}
	}

	t := Trailer{Shape: s, Rank: rank, ElemCount: count, Tag: tag}
	if err := t.Validate(); err != nil {
		return Trailer{}, 0, err
	}
	return t, base, nil
}

func readIntField(buf []byte, off int, name string) (int, error) {
	v := binary.LittleEndian.Uint64(buf[off : off+8])
	if v > math.MaxInt {
		return 0, fmt.Errorf("%w: %s %d overflows int", ErrNotArray, name, v)
	}
	return int(v), nil
}
