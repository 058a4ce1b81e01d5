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

// enumeration of raw-transaction-with-data variants
const (
	MultiAgentRawVariant = uint32(0)
	FeePayerRawVariant   = uint32(1)
)

// MultiAgentRawTransaction - a raw transaction extended with the
// secondary signer addresses; every party signs this wider message
type MultiAgentRawTransaction struct {
	Raw              RawTransaction
	SecondarySigners []account.AccountAddress
}

// MarshalBCS - variant tag, inner transaction, secondary addresses
func (ma *MultiAgentRawTransaction) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(MultiAgentRawVariant)
	s.Struct(&ma.Raw)
	s.SequenceLength(len(ma.SecondarySigners))
	for _, address := range ma.SecondarySigners {
		s.Struct(address)
	}
}

// UnmarshalBCS - the same field order
func (ma *MultiAgentRawTransaction) UnmarshalBCS(d *bcs.Deserializer) {
	variant := d.Uleb128()
	if nil != d.Error() {
		return
	}
	if MultiAgentRawVariant != variant {
		d.Abort(fault.UnsupportedRawVariant)
		return
	}
	d.Struct(&ma.Raw)
	ma.SecondarySigners = deserializeAddressList(d)
}

// SigningMessage - SHA3-256("APTOS::RawTransactionWithData") then
// the BCS bytes; distinct from the plain prefix so a multi agent
// signature can never stand in for a plain one
func (ma *MultiAgentRawTransaction) SigningMessage() ([]byte, error) {
	buffer, err := bcs.Serialize(ma)
	if nil != err {
		return nil, err
	}
	return prependSalt(rawTransactionWithDataSalt, buffer), nil
}

// FeePayerRawTransaction - a raw transaction extended with the
// secondary signer addresses and the gas paying account; every party
// signs this wider message, fee payer included
type FeePayerRawTransaction struct {
	Raw              RawTransaction
	SecondarySigners []account.AccountAddress
	FeePayer         account.AccountAddress
}

// MarshalBCS - variant tag, inner transaction, secondary addresses,
// fee payer address
func (fp *FeePayerRawTransaction) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(FeePayerRawVariant)
	s.Struct(&fp.Raw)
	s.SequenceLength(len(fp.SecondarySigners))
	for _, address := range fp.SecondarySigners {
		s.Struct(address)
	}
	s.Struct(fp.FeePayer)
}

// UnmarshalBCS - the same field order
func (fp *FeePayerRawTransaction) UnmarshalBCS(d *bcs.Deserializer) {
	variant := d.Uleb128()
	if nil != d.Error() {
		return
	}
	if FeePayerRawVariant != variant {
		d.Abort(fault.UnsupportedRawVariant)
		return
	}
	d.Struct(&fp.Raw)
	fp.SecondarySigners = deserializeAddressList(d)
	d.Struct(&fp.FeePayer)
}

// SigningMessage - SHA3-256("APTOS::RawTransactionWithData") then
// the BCS bytes
func (fp *FeePayerRawTransaction) SigningMessage() ([]byte, error) {
	buffer, err := bcs.Serialize(fp)
	if nil != err {
		return nil, err
	}
	return prependSalt(rawTransactionWithDataSalt, buffer), nil
}

func deserializeAddressList(d *bcs.Deserializer) []account.AccountAddress {
	n := d.SequenceLength()
	if nil != d.Error() {
		return nil
	}
	result := make([]account.AccountAddress, n)
	for i := 0; i < n; i += 1 {
		d.Struct(&result[i])
	}
	return result
}
