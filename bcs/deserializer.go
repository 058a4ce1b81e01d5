// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bcs

import (
	"encoding/binary"
	"math"

	"github.com/aptoskit/aptoskit/fault"
)

// Deserializer - consumes a buffer in the same order the matching
// Serializer wrote it
//
// every read checks the remaining length first; a truncated buffer
// stops the decode with fault.BufferTooShort rather than returning
// zero-padded values
type Deserializer struct {
	data   []byte
	offset int
	err    error
}

// NewDeserializer - wrap a buffer for decoding
//
// the buffer is not copied; the caller must not mutate it during the
// decode
func NewDeserializer(data []byte) *Deserializer {
	return &Deserializer{data: data}
}

// setError - record the first error; later reads become no-ops
func (d *Deserializer) setError(e error) {
	if nil == d.err {
		d.err = e
	}
}

// Abort - record a caller detected error, e.g. a decoded field
// failing its own validation; the first error wins
func (d *Deserializer) Abort(e error) {
	d.setError(e)
}

// require - check that n more bytes are available
func (d *Deserializer) require(n int) bool {
	if nil != d.err {
		return false
	}
	if len(d.data)-d.offset < n {
		d.setError(fault.BufferTooShort)
		return false
	}
	return true
}

// Bool - read one byte as a bool; only 0 and 1 are canonical
func (d *Deserializer) Bool() bool {
	b := d.U8()
	switch b {
	case 0:
		return false
	case 1:
		return true
	default:
		d.setError(fault.BoolOutOfRange)
		return false
	}
}

// U8 - read one byte
func (d *Deserializer) U8() byte {
	if !d.require(1) {
		return 0
	}
	b := d.data[d.offset]
	d.offset += 1
	return b
}

// U16 - read a little-endian 16 bit unsigned integer
func (d *Deserializer) U16() uint16 {
	if !d.require(2) {
		return 0
	}
	v := binary.LittleEndian.Uint16(d.data[d.offset:])
	d.offset += 2
	return v
}

// U32 - read a little-endian 32 bit unsigned integer
func (d *Deserializer) U32() uint32 {
	if !d.require(4) {
		return 0
	}
	v := binary.LittleEndian.Uint32(d.data[d.offset:])
	d.offset += 4
	return v
}

// U64 - read a little-endian 64 bit unsigned integer
func (d *Deserializer) U64() uint64 {
	if !d.require(8) {
		return 0
	}
	v := binary.LittleEndian.Uint64(d.data[d.offset:])
	d.offset += 8
	return v
}

// U128 - read a 128 bit unsigned integer as two 64 bit halves
func (d *Deserializer) U128() (lo uint64, hi uint64) {
	lo = d.U64()
	hi = d.U64()
	return lo, hi
}

// U128Bytes - read a 128 bit unsigned integer as a 16 byte
// little-endian block
func (d *Deserializer) U128Bytes() []byte {
	return d.FixedBytes(16)
}

// U256 - read a 256 bit unsigned integer as a 32 byte little-endian
// block
func (d *Deserializer) U256() []byte {
	return d.FixedBytes(32)
}

// Uleb128 - read a ULEB128 encoded unsigned 32 bit integer
//
// fails on truncation, on values that overflow 32 bits and on
// non-canonical encodings with redundant trailing groups
func (d *Deserializer) Uleb128() uint32 {
	if nil != d.err {
		return 0
	}

	value := uint64(0)
	shift := uint(0)

	for count := 0; count < UlebMaximumBytes; count += 1 {
		if !d.require(1) {
			d.err = fault.UlebTruncated
			return 0
		}
		currByte := d.data[d.offset]
		d.offset += 1

		value |= uint64(currByte&0x7f) << shift

		if 0 == currByte&0x80 {
			if 0 == currByte&0x7f && count > 0 {
				d.setError(fault.UlebNotCanonical)
				return 0
			}
			if value > math.MaxUint32 {
				d.setError(fault.UlebOverflow)
				return 0
			}
			return uint32(value)
		}
		shift += 7
	}
	d.setError(fault.UlebOverflow)
	return 0
}

// Bytes - read a byte vector: ULEB128 length prefix then raw bytes
func (d *Deserializer) Bytes() []byte {
	length := int(d.Uleb128())
	return d.FixedBytes(length)
}

// String - read a length-prefixed UTF-8 string
func (d *Deserializer) String() string {
	return string(d.Bytes())
}

// FixedBytes - read exactly n raw bytes
//
// returns a copy so the decoded value does not alias the input
// buffer
func (d *Deserializer) FixedBytes(n int) []byte {
	if !d.require(n) {
		return nil
	}
	result := make([]byte, n)
	copy(result, d.data[d.offset:d.offset+n])
	d.offset += n
	return result
}

// SequenceLength - read the element count of a sequence
func (d *Deserializer) SequenceLength() int {
	return int(d.Uleb128())
}

// Struct - read a nested structure
func (d *Deserializer) Struct(u Unmarshaler) {
	u.UnmarshalBCS(d)
}

// Remaining - number of unread bytes
func (d *Deserializer) Remaining() int {
	return len(d.data) - d.offset
}

// Error - first error recorded during reading, or nil
func (d *Deserializer) Error() error {
	return d.err
}
