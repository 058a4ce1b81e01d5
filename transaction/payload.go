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

// enumeration of payload variants
// encoded as a ULEB128 discriminant before the payload fields
//
// variant 3 is the on-chain multisig payload of the wider protocol
// and is outside this closed set
const (
	ScriptPayloadVariant        = uint32(0)
	ModuleBundlePayloadVariant  = uint32(1)
	EntryFunctionPayloadVariant = uint32(2)
	PayloadV4Variant            = uint32(4)
)

// Payload - what a transaction executes; a closed union
type Payload interface {
	bcs.Marshaler
	PayloadVariant() uint32
}

// ModuleId - a fully qualified Move module name
type ModuleId struct {
	Address account.AccountAddress
	Name    string
}

// MarshalBCS - address then module name
func (module ModuleId) MarshalBCS(s *bcs.Serializer) {
	s.Struct(module.Address)
	s.String(module.Name)
}

// UnmarshalBCS - address then module name
func (module *ModuleId) UnmarshalBCS(d *bcs.Deserializer) {
	d.Struct(&module.Address)
	module.Name = d.String()
}

// Script - compiled Move code with tagged arguments
type Script struct {
	Code     []byte
	TypeArgs []TypeTag
	Args     []TransactionArgument
}

// PayloadVariant - wire tag
func (script *Script) PayloadVariant() uint32 { return ScriptPayloadVariant }

// MarshalBCS - tag then the script fields
func (script *Script) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(ScriptPayloadVariant)
	script.marshalFields(s)
}

// code, type arguments, then arguments each carrying its own tag
func (script *Script) marshalFields(s *bcs.Serializer) {
	s.Bytes(script.Code)
	s.SequenceLength(len(script.TypeArgs))
	for _, tag := range script.TypeArgs {
		s.Struct(tag)
	}
	s.SequenceLength(len(script.Args))
	for _, arg := range script.Args {
		s.Struct(arg)
	}
}

func (script *Script) unmarshalFields(d *bcs.Deserializer) {
	script.Code = d.Bytes()
	n := d.SequenceLength()
	if nil != d.Error() {
		return
	}
	script.TypeArgs = nil
	for i := 0; i < n; i += 1 {
		tag := DeserializeTypeTag(d)
		if nil != d.Error() {
			return
		}
		script.TypeArgs = append(script.TypeArgs, tag)
	}
	n = d.SequenceLength()
	if nil != d.Error() {
		return
	}
	script.Args = nil
	for i := 0; i < n; i += 1 {
		arg := DeserializeTransactionArgument(d)
		if nil != d.Error() {
			return
		}
		script.Args = append(script.Args, arg)
	}
}

// EntryFunction - module, function identifier, type arguments and
// pre-encoded argument blobs
type EntryFunction struct {
	Module   ModuleId
	Function string
	TypeArgs []TypeTag
	Args     [][]byte
}

// PayloadVariant - wire tag
func (entry *EntryFunction) PayloadVariant() uint32 { return EntryFunctionPayloadVariant }

// MarshalBCS - tag then the entry function fields
func (entry *EntryFunction) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(EntryFunctionPayloadVariant)
	entry.marshalFields(s)
}

// module id, function name, type arguments, then one
// length-prefixed blob per argument
func (entry *EntryFunction) marshalFields(s *bcs.Serializer) {
	s.Struct(entry.Module)
	s.String(entry.Function)
	s.SequenceLength(len(entry.TypeArgs))
	for _, tag := range entry.TypeArgs {
		s.Struct(tag)
	}
	s.SequenceLength(len(entry.Args))
	for _, arg := range entry.Args {
		s.Bytes(arg)
	}
}

func (entry *EntryFunction) unmarshalFields(d *bcs.Deserializer) {
	d.Struct(&entry.Module)
	entry.Function = d.String()
	n := d.SequenceLength()
	if nil != d.Error() {
		return
	}
	entry.TypeArgs = nil
	for i := 0; i < n; i += 1 {
		tag := DeserializeTypeTag(d)
		if nil != d.Error() {
			return
		}
		entry.TypeArgs = append(entry.TypeArgs, tag)
	}
	n = d.SequenceLength()
	if nil != d.Error() {
		return
	}
	entry.Args = nil
	for i := 0; i < n; i += 1 {
		entry.Args = append(entry.Args, d.Bytes())
		if nil != d.Error() {
			return
		}
	}
}

// TransferPayload - entry function call for a plain coin transfer
func TransferPayload(to account.AccountAddress, amount uint64) *EntryFunction {
	one, _ := account.AddressFromHex("0x1")
	return &EntryFunction{
		Module:   ModuleId{Address: one, Name: "aptos_account"},
		Function: "transfer",
		Args: [][]byte{
			EntryArgAddress(to),
			EntryArgU64(amount),
		},
	}
}

// DeserializePayload - decode any variant from the closed union
//
// the retired module bundle tag is recognised but refused
func DeserializePayload(d *bcs.Deserializer) Payload {
	variant := d.Uleb128()
	if nil != d.Error() {
		return nil
	}
	switch variant {
	case ScriptPayloadVariant:
		script := &Script{}
		script.unmarshalFields(d)
		return script
	case ModuleBundlePayloadVariant:
		d.Abort(fault.ModuleBundleRetired)
		return nil
	case EntryFunctionPayloadVariant:
		entry := &EntryFunction{}
		entry.unmarshalFields(d)
		return entry
	case PayloadV4Variant:
		payload := &PayloadV4{}
		payload.unmarshalFields(d)
		return payload
	default:
		d.Abort(fault.UnsupportedPayloadVariant)
		return nil
	}
}
