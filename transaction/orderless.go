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

// enumeration of executable variants inside a v4 payload
const (
	ExecutableScriptVariant        = uint32(0)
	ExecutableEntryFunctionVariant = uint32(1)
	ExecutableEmptyVariant         = uint32(2)
)

// extra config variants; only v1 exists
const extraConfigV1Variant = uint32(0)

// Executable - what a v4 payload runs; a closed union
type Executable interface {
	bcs.Marshaler
	ExecutableVariant() uint32
}

// ScriptExecutable - a script inside a v4 payload
type ScriptExecutable struct {
	Script Script
}

// ExecutableVariant - wire tag
func (e *ScriptExecutable) ExecutableVariant() uint32 { return ExecutableScriptVariant }

// MarshalBCS - tag then the script fields
func (e *ScriptExecutable) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(ExecutableScriptVariant)
	e.Script.marshalFields(s)
}

// EntryFunctionExecutable - an entry function inside a v4 payload
type EntryFunctionExecutable struct {
	EntryFunction EntryFunction
}

// ExecutableVariant - wire tag
func (e *EntryFunctionExecutable) ExecutableVariant() uint32 {
	return ExecutableEntryFunctionVariant
}

// MarshalBCS - tag then the entry function fields
func (e *EntryFunctionExecutable) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(ExecutableEntryFunctionVariant)
	e.EntryFunction.marshalFields(s)
}

// EmptyExecutable - runs nothing; used by system generated
// transactions
type EmptyExecutable struct{}

// ExecutableVariant - wire tag
func (e *EmptyExecutable) ExecutableVariant() uint32 { return ExecutableEmptyVariant }

// MarshalBCS - tag only
func (e *EmptyExecutable) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(ExecutableEmptyVariant)
}

// ExtraConfigV1 - the side channel of a v4 payload: an optional
// multisig account and an optional replay protection nonce
//
// a transaction carrying a nonce is orderless: replay protection
// comes from the nonce, not the sequence number
type ExtraConfigV1 struct {
	MultisigAddress       *account.AccountAddress
	ReplayProtectionNonce *uint64
}

// MarshalBCS - tag then the two options, each a presence byte
// followed by the value
func (config *ExtraConfigV1) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(extraConfigV1Variant)
	if nil == config.MultisigAddress {
		s.Bool(false)
	} else {
		s.Bool(true)
		s.Struct(*config.MultisigAddress)
	}
	if nil == config.ReplayProtectionNonce {
		s.Bool(false)
	} else {
		s.Bool(true)
		s.U64(*config.ReplayProtectionNonce)
	}
}

// UnmarshalBCS - tag then the two options
func (config *ExtraConfigV1) UnmarshalBCS(d *bcs.Deserializer) {
	variant := d.Uleb128()
	if nil != d.Error() {
		return
	}
	if extraConfigV1Variant != variant {
		d.Abort(fault.UnsupportedExtraConfigVariant)
		return
	}
	config.MultisigAddress = nil
	if d.Bool() {
		address := account.AccountAddress{}
		d.Struct(&address)
		config.MultisigAddress = &address
	}
	config.ReplayProtectionNonce = nil
	if d.Bool() {
		nonce := d.U64()
		config.ReplayProtectionNonce = &nonce
	}
}

// PayloadV4 - the orderless transaction payload: an executable plus
// its extra config
type PayloadV4 struct {
	Executable  Executable
	ExtraConfig ExtraConfigV1
}

// PayloadVariant - wire tag
func (payload *PayloadV4) PayloadVariant() uint32 { return PayloadV4Variant }

// MarshalBCS - tag, executable, extra config
func (payload *PayloadV4) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(PayloadV4Variant)
	s.Struct(payload.Executable)
	s.Struct(&payload.ExtraConfig)
}

func (payload *PayloadV4) unmarshalFields(d *bcs.Deserializer) {
	variant := d.Uleb128()
	if nil != d.Error() {
		return
	}
	switch variant {
	case ExecutableScriptVariant:
		e := &ScriptExecutable{}
		e.Script.unmarshalFields(d)
		payload.Executable = e
	case ExecutableEntryFunctionVariant:
		e := &EntryFunctionExecutable{}
		e.EntryFunction.unmarshalFields(d)
		payload.Executable = e
	case ExecutableEmptyVariant:
		payload.Executable = &EmptyExecutable{}
	default:
		d.Abort(fault.UnsupportedExecutableVariant)
		return
	}
	d.Struct(&payload.ExtraConfig)
}

// OrderlessPayload - an entry function executable with a replay
// protection nonce instead of a sequence number
func OrderlessPayload(entry EntryFunction, nonce uint64) *PayloadV4 {
	return &PayloadV4{
		Executable:  &EntryFunctionExecutable{EntryFunction: entry},
		ExtraConfig: ExtraConfigV1{ReplayProtectionNonce: &nonce},
	}
}
