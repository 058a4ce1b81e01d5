// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/aptoskit/aptoskit/account"
	"github.com/aptoskit/aptoskit/bcs"
	"github.com/aptoskit/aptoskit/fault"
)

// enumeration of script argument variants
// scripts carry a type tag before every argument value; entry
// function arguments do not (see the EntryArg helpers below)
const (
	argU8       = uint32(0)
	argU64      = uint32(1)
	argU128     = uint32(2)
	argAddress  = uint32(3)
	argU8Vector = uint32(4)
	argBool     = uint32(5)
	argU16      = uint32(6)
	argU32      = uint32(7)
	argU256     = uint32(8)
)

// TransactionArgument - a tagged script argument; a closed union
type TransactionArgument interface {
	bcs.Marshaler
}

// ArgU8 - one byte
type ArgU8 byte

// ArgU16 - 16 bit unsigned
type ArgU16 uint16

// ArgU32 - 32 bit unsigned
type ArgU32 uint32

// ArgU64 - 64 bit unsigned
type ArgU64 uint64

// ArgU128 - 128 bit unsigned as two 64 bit halves
type ArgU128 struct {
	Lo uint64
	Hi uint64
}

// ArgU256 - 256 bit unsigned as a little-endian block
type ArgU256 []byte

// ArgAddress - a 32 byte account address
type ArgAddress account.AccountAddress

// ArgU8Vector - a length-prefixed byte vector
type ArgU8Vector []byte

// ArgBool - one byte, 0 or 1
type ArgBool bool

func (a ArgU8) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(argU8)
	s.U8(byte(a))
}

func (a ArgU16) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(argU16)
	s.U16(uint16(a))
}

func (a ArgU32) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(argU32)
	s.U32(uint32(a))
}

func (a ArgU64) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(argU64)
	s.U64(uint64(a))
}

func (a ArgU128) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(argU128)
	s.U128(a.Lo, a.Hi)
}

func (a ArgU256) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(argU256)
	s.U256(a)
}

func (a ArgAddress) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(argAddress)
	s.Struct(account.AccountAddress(a))
}

func (a ArgU8Vector) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(argU8Vector)
	s.Bytes(a)
}

func (a ArgBool) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(argBool)
	s.Bool(bool(a))
}

// DeserializeTransactionArgument - decode any variant from the
// closed union
func DeserializeTransactionArgument(d *bcs.Deserializer) TransactionArgument {
	variant := d.Uleb128()
	if nil != d.Error() {
		return nil
	}
	switch variant {
	case argU8:
		return ArgU8(d.U8())
	case argU16:
		return ArgU16(d.U16())
	case argU32:
		return ArgU32(d.U32())
	case argU64:
		return ArgU64(d.U64())
	case argU128:
		lo, hi := d.U128()
		return ArgU128{Lo: lo, Hi: hi}
	case argU256:
		return ArgU256(d.U256())
	case argAddress:
		address := account.AccountAddress{}
		d.Struct(&address)
		return ArgAddress(address)
	case argU8Vector:
		return ArgU8Vector(d.Bytes())
	case argBool:
		return ArgBool(d.Bool())
	default:
		d.Abort(fault.UnsupportedArgumentVariant)
		return nil
	}
}

// entry function argument encoding
//
// each argument is the raw BCS bytes of the value, no variant tag;
// the payload then wraps every blob with a length prefix

// EntryArgU8 - raw value bytes of a u8 argument
func EntryArgU8(value byte) []byte {
	return entryArg(func(s *bcs.Serializer) { s.U8(value) })
}

// EntryArgU16 - raw value bytes of a u16 argument
func EntryArgU16(value uint16) []byte {
	return entryArg(func(s *bcs.Serializer) { s.U16(value) })
}

// EntryArgU32 - raw value bytes of a u32 argument
func EntryArgU32(value uint32) []byte {
	return entryArg(func(s *bcs.Serializer) { s.U32(value) })
}

// EntryArgU64 - raw value bytes of a u64 argument
func EntryArgU64(value uint64) []byte {
	return entryArg(func(s *bcs.Serializer) { s.U64(value) })
}

// EntryArgU128 - raw value bytes of a u128 argument
func EntryArgU128(lo uint64, hi uint64) []byte {
	return entryArg(func(s *bcs.Serializer) { s.U128(lo, hi) })
}

// EntryArgBool - raw value bytes of a bool argument
func EntryArgBool(value bool) []byte {
	return entryArg(func(s *bcs.Serializer) { s.Bool(value) })
}

// EntryArgAddress - raw value bytes of an address argument
func EntryArgAddress(address account.AccountAddress) []byte {
	return entryArg(func(s *bcs.Serializer) { s.Struct(address) })
}

// EntryArgString - raw value bytes of a string argument
func EntryArgString(value string) []byte {
	return entryArg(func(s *bcs.Serializer) { s.String(value) })
}

// EntryArgBytes - raw value bytes of a vector<u8> argument
func EntryArgBytes(value []byte) []byte {
	return entryArg(func(s *bcs.Serializer) { s.Bytes(value) })
}

// EntryArgOption - raw value bytes of an option argument
//
// a bool marks presence, then the inner value's own entry encoding
// follows; the one place a boolean precedes a value instead of a
// length prefix
func EntryArgOption(value []byte) []byte {
	return entryArg(func(s *bcs.Serializer) {
		if nil == value {
			s.Bool(false)
		} else {
			s.Bool(true)
			s.FixedBytes(value)
		}
	})
}

func entryArg(write func(s *bcs.Serializer)) []byte {
	s := bcs.Serializer{}
	write(&s)
	buffer, _ := s.Finish()
	return buffer
}
