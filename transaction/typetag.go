// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"strings"

	"github.com/aptoskit/aptoskit/account"
	"github.com/aptoskit/aptoskit/bcs"
	"github.com/aptoskit/aptoskit/fault"
)

// enumeration of type tag variants
// this is encoded as a ULEB128 at the start of every type tag
const (
	typeTagBool    = uint32(0)
	typeTagU8      = uint32(1)
	typeTagU64     = uint32(2)
	typeTagU128    = uint32(3)
	typeTagAddress = uint32(4)
	typeTagSigner  = uint32(5)
	typeTagVector  = uint32(6)
	typeTagStruct  = uint32(7)
	typeTagU16     = uint32(8)
	typeTagU32     = uint32(9)
	typeTagU256    = uint32(10)
)

// TypeTag - a Move type name in its wire form; a closed union
type TypeTag interface {
	bcs.Marshaler
	String() string
}

// the primitive tags carry no payload

type BoolTag struct{}
type U8Tag struct{}
type U16Tag struct{}
type U32Tag struct{}
type U64Tag struct{}
type U128Tag struct{}
type U256Tag struct{}
type AddressTag struct{}
type SignerTag struct{}

func (BoolTag) MarshalBCS(s *bcs.Serializer)    { s.Uleb128(typeTagBool) }
func (U8Tag) MarshalBCS(s *bcs.Serializer)      { s.Uleb128(typeTagU8) }
func (U16Tag) MarshalBCS(s *bcs.Serializer)     { s.Uleb128(typeTagU16) }
func (U32Tag) MarshalBCS(s *bcs.Serializer)     { s.Uleb128(typeTagU32) }
func (U64Tag) MarshalBCS(s *bcs.Serializer)     { s.Uleb128(typeTagU64) }
func (U128Tag) MarshalBCS(s *bcs.Serializer)    { s.Uleb128(typeTagU128) }
func (U256Tag) MarshalBCS(s *bcs.Serializer)    { s.Uleb128(typeTagU256) }
func (AddressTag) MarshalBCS(s *bcs.Serializer) { s.Uleb128(typeTagAddress) }
func (SignerTag) MarshalBCS(s *bcs.Serializer)  { s.Uleb128(typeTagSigner) }

func (BoolTag) String() string    { return "bool" }
func (U8Tag) String() string      { return "u8" }
func (U16Tag) String() string     { return "u16" }
func (U32Tag) String() string     { return "u32" }
func (U64Tag) String() string     { return "u64" }
func (U128Tag) String() string    { return "u128" }
func (U256Tag) String() string    { return "u256" }
func (AddressTag) String() string { return "address" }
func (SignerTag) String() string  { return "signer" }

// VectorTag - vector<inner>
type VectorTag struct {
	Inner TypeTag
}

// MarshalBCS - tag then the element type
func (tag VectorTag) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(typeTagVector)
	s.Struct(tag.Inner)
}

func (tag VectorTag) String() string {
	return "vector<" + tag.Inner.String() + ">"
}

// StructTag - a fully qualified Move struct name with optional
// generic arguments
type StructTag struct {
	Address  account.AccountAddress
	Module   string
	Name     string
	TypeArgs []TypeTag
}

// MarshalBCS - address, module, name, generic arguments
func (tag StructTag) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(typeTagStruct)
	s.Struct(tag.Address)
	s.String(tag.Module)
	s.String(tag.Name)
	s.SequenceLength(len(tag.TypeArgs))
	for _, arg := range tag.TypeArgs {
		s.Struct(arg)
	}
}

func (tag StructTag) String() string {
	result := tag.Address.String() + "::" + tag.Module + "::" + tag.Name
	if 0 != len(tag.TypeArgs) {
		names := make([]string, len(tag.TypeArgs))
		for i, arg := range tag.TypeArgs {
			names[i] = arg.String()
		}
		result += "<" + strings.Join(names, ", ") + ">"
	}
	return result
}

// AptosCoinTag - the ubiquitous 0x1::aptos_coin::AptosCoin
func AptosCoinTag() StructTag {
	one, _ := account.AddressFromHex("0x1")
	return StructTag{
		Address: one,
		Module:  "aptos_coin",
		Name:    "AptosCoin",
	}
}

// DeserializeTypeTag - decode any variant from the closed union
func DeserializeTypeTag(d *bcs.Deserializer) TypeTag {
	variant := d.Uleb128()
	if nil != d.Error() {
		return nil
	}
	switch variant {
	case typeTagBool:
		return BoolTag{}
	case typeTagU8:
		return U8Tag{}
	case typeTagU16:
		return U16Tag{}
	case typeTagU32:
		return U32Tag{}
	case typeTagU64:
		return U64Tag{}
	case typeTagU128:
		return U128Tag{}
	case typeTagU256:
		return U256Tag{}
	case typeTagAddress:
		return AddressTag{}
	case typeTagSigner:
		return SignerTag{}
	case typeTagVector:
		inner := DeserializeTypeTag(d)
		if nil != d.Error() {
			return nil
		}
		return VectorTag{Inner: inner}
	case typeTagStruct:
		tag := StructTag{}
		d.Struct(&tag.Address)
		tag.Module = d.String()
		tag.Name = d.String()
		n := d.SequenceLength()
		if nil != d.Error() {
			return nil
		}
		for i := 0; i < n; i += 1 {
			arg := DeserializeTypeTag(d)
			if nil != d.Error() {
				return nil
			}
			tag.TypeArgs = append(tag.TypeArgs, arg)
		}
		return tag
	default:
		d.Abort(fault.UnsupportedTypeTagVariant)
		return nil
	}
}
