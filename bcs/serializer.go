// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bcs

import (
	"encoding/binary"

	"github.com/aptoskit/aptoskit/fault"
)

// Serializer - accumulates primitive writes, in call order, into one
// buffer
//
// the zero value is ready for use; a Serializer must not be shared
// between concurrent encode calls
type Serializer struct {
	buffer []byte
	err    error
}

// setError - record the first error; later writes become no-ops
func (s *Serializer) setError(e error) {
	if nil == s.err {
		s.err = e
	}
}

// Abort - record a caller detected error, e.g. a value that cannot
// legally be encoded; the first error wins
func (s *Serializer) Abort(e error) {
	s.setError(e)
}

// Bool - write a bool as one byte, 0 or 1
func (s *Serializer) Bool(value bool) {
	if value {
		s.U8(1)
	} else {
		s.U8(0)
	}
}

// U8 - write one byte
func (s *Serializer) U8(value byte) {
	s.buffer = append(s.buffer, value)
}

// U16 - write a 16 bit unsigned integer, little-endian
func (s *Serializer) U16(value uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], value)
	s.buffer = append(s.buffer, b[:]...)
}

// U32 - write a 32 bit unsigned integer, little-endian
func (s *Serializer) U32(value uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	s.buffer = append(s.buffer, b[:]...)
}

// U64 - write a 64 bit unsigned integer, little-endian
func (s *Serializer) U64(value uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], value)
	s.buffer = append(s.buffer, b[:]...)
}

// U128 - write a 128 bit unsigned integer from its two 64 bit
// halves, little-endian: low half first
func (s *Serializer) U128(lo uint64, hi uint64) {
	s.U64(lo)
	s.U64(hi)
}

// U128Bytes - write a 128 bit unsigned integer supplied as a
// little-endian byte block of at most 16 bytes, zero padded
func (s *Serializer) U128Bytes(le []byte) {
	if len(le) > 16 {
		s.setError(fault.U128Length)
		return
	}
	var b [16]byte
	copy(b[:], le)
	s.buffer = append(s.buffer, b[:]...)
}

// U256 - write a 256 bit unsigned integer supplied as a
// little-endian byte block of at most 32 bytes, zero padded
//
// the codec only copies and pads; callers hold the big integer
func (s *Serializer) U256(le []byte) {
	if len(le) > 32 {
		s.setError(fault.U256Length)
		return
	}
	var b [32]byte
	copy(b[:], le)
	s.buffer = append(s.buffer, b[:]...)
}

// Uleb128 - write an unsigned integer as ULEB128
//
// 7 data bits per byte, high bit is the continuation flag,
// little-endian order of the 7 bit groups; used for sequence and
// byte-vector lengths and for variant discriminants
func (s *Serializer) Uleb128(value uint32) {
	for value >= 0x80 {
		s.buffer = append(s.buffer, byte(value&0x7f|0x80))
		value >>= 7
	}
	s.buffer = append(s.buffer, byte(value))
}

// Bytes - write a byte vector: ULEB128 length prefix then raw bytes
func (s *Serializer) Bytes(value []byte) {
	s.Uleb128(uint32(len(value)))
	s.buffer = append(s.buffer, value...)
}

// String - write a string as its UTF-8 bytes with a ULEB128 length
// prefix
func (s *Serializer) String(value string) {
	s.Bytes([]byte(value))
}

// FixedBytes - write raw bytes with no length prefix
//
// for fields whose length the container already fixes, e.g. a
// 32 byte address
func (s *Serializer) FixedBytes(value []byte) {
	s.buffer = append(s.buffer, value...)
}

// SequenceLength - write the element count of a sequence
func (s *Serializer) SequenceLength(n int) {
	s.Uleb128(uint32(n))
}

// Struct - write a nested structure
func (s *Serializer) Struct(m Marshaler) {
	m.MarshalBCS(s)
}

// Error - first error recorded during writing, or nil
func (s *Serializer) Error() error {
	return s.err
}

// Finish - the accumulated buffer
//
// returns a copy so later writes cannot mutate a returned value
func (s *Serializer) Finish() ([]byte, error) {
	if nil != s.err {
		return nil, s.err
	}
	result := make([]byte, len(s.buffer))
	copy(result, s.buffer)
	return result, nil
}
