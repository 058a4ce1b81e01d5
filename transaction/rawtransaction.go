// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"golang.org/x/crypto/sha3"

	"github.com/aptoskit/aptoskit/account"
	"github.com/aptoskit/aptoskit/bcs"
)

// signing message domain separators; exact ASCII bytes, hashed with
// SHA3-256 before use
const (
	rawTransactionSalt         = "APTOS::RawTransaction"
	rawTransactionWithDataSalt = "APTOS::RawTransactionWithData"
)

// RawTransaction - the unsigned transaction envelope
//
// field order is the wire order; the chain id is one byte, not
// eight
type RawTransaction struct {
	Sender                  account.AccountAddress
	SequenceNumber          uint64
	Payload                 Payload
	MaxGasAmount            uint64
	GasUnitPrice            uint64
	ExpirationTimestampSecs uint64
	ChainId                 byte
}

// MarshalBCS - sender, sequence number, payload, max gas, gas
// price, expiration, chain id, strictly in that order
func (raw *RawTransaction) MarshalBCS(s *bcs.Serializer) {
	s.Struct(raw.Sender)
	s.U64(raw.SequenceNumber)
	s.Struct(raw.Payload)
	s.U64(raw.MaxGasAmount)
	s.U64(raw.GasUnitPrice)
	s.U64(raw.ExpirationTimestampSecs)
	s.U8(raw.ChainId)
}

// UnmarshalBCS - the same field order
func (raw *RawTransaction) UnmarshalBCS(d *bcs.Deserializer) {
	d.Struct(&raw.Sender)
	raw.SequenceNumber = d.U64()
	raw.Payload = DeserializePayload(d)
	raw.MaxGasAmount = d.U64()
	raw.GasUnitPrice = d.U64()
	raw.ExpirationTimestampSecs = d.U64()
	raw.ChainId = d.U8()
}

// Bytes - the canonical BCS bytes
func (raw *RawTransaction) Bytes() ([]byte, error) {
	return bcs.Serialize(raw)
}

// SigningMessage - the exact bytes an account signs:
// SHA3-256("APTOS::RawTransaction") then the BCS bytes
//
// the prefix digest is recomputed per call; the transaction bytes
// differ per signing
func (raw *RawTransaction) SigningMessage() ([]byte, error) {
	buffer, err := raw.Bytes()
	if nil != err {
		return nil, err
	}
	return prependSalt(rawTransactionSalt, buffer), nil
}

// hash the domain separator and prepend it to the payload bytes
func prependSalt(salt string, buffer []byte) []byte {
	prefix := sha3.Sum256([]byte(salt))
	message := make([]byte, 0, len(prefix)+len(buffer))
	message = append(message, prefix[:]...)
	return append(message, buffer...)
}
