// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authenticator

import (
	"github.com/aptoskit/aptoskit/account"
	"github.com/aptoskit/aptoskit/bcs"
	"github.com/aptoskit/aptoskit/fault"
)

// enumeration of transaction authenticator variants
// encoded as a ULEB128 discriminant before the payload
//
// there is no MultiKey transaction variant: a MultiKey account
// always travels wrapped in SingleSender
const (
	TxnEd25519Variant      = uint32(0)
	TxnMultiEd25519Variant = uint32(1)
	TxnMultiAgentVariant   = uint32(2)
	TxnFeePayerVariant     = uint32(3)
	TxnSingleSenderVariant = uint32(4)
)

// TransactionAuthenticator - the top level wrapper stored in a
// signed transaction; a closed tagged union
type TransactionAuthenticator interface {
	bcs.Marshaler
	Variant() uint32
}

// Ed25519TxnAuthenticator - plain single sender, legacy scheme
type Ed25519TxnAuthenticator struct {
	PublicKey account.Ed25519PublicKey
	Signature account.Signature
}

// Variant - wire tag
func (a *Ed25519TxnAuthenticator) Variant() uint32 { return TxnEd25519Variant }

// MarshalBCS - tag then the same payload shape as the account level
// proof
func (a *Ed25519TxnAuthenticator) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(TxnEd25519Variant)
	s.Struct(a.PublicKey)
	s.Struct(a.Signature)
}

// MultiEd25519TxnAuthenticator - plain multi-signature sender
type MultiEd25519TxnAuthenticator struct {
	PublicKey *account.MultiEd25519PublicKey
	Signature *account.MultiEd25519Signature
}

// Variant - wire tag
func (a *MultiEd25519TxnAuthenticator) Variant() uint32 { return TxnMultiEd25519Variant }

// MarshalBCS - tag then the blob pair
func (a *MultiEd25519TxnAuthenticator) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(TxnMultiEd25519Variant)
	s.Struct(a.PublicKey)
	s.Struct(a.Signature)
}

// MultiAgentTxnAuthenticator - a sender plus secondary signers
type MultiAgentTxnAuthenticator struct {
	Sender                  AccountAuthenticator
	SecondaryAddresses      []account.AccountAddress
	SecondaryAuthenticators []AccountAuthenticator
}

// Variant - wire tag
func (a *MultiAgentTxnAuthenticator) Variant() uint32 { return TxnMultiAgentVariant }

// MarshalBCS - tag, sender proof, secondary addresses, secondary
// proofs
func (a *MultiAgentTxnAuthenticator) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(TxnMultiAgentVariant)
	s.Struct(a.Sender)
	s.SequenceLength(len(a.SecondaryAddresses))
	for _, address := range a.SecondaryAddresses {
		s.Struct(address)
	}
	s.SequenceLength(len(a.SecondaryAuthenticators))
	for _, auth := range a.SecondaryAuthenticators {
		s.Struct(auth)
	}
}

// FeePayerTxnAuthenticator - a sender plus a third party paying gas
type FeePayerTxnAuthenticator struct {
	Sender                  AccountAuthenticator
	SecondaryAddresses      []account.AccountAddress
	SecondaryAuthenticators []AccountAuthenticator
	FeePayerAddress         account.AccountAddress
	FeePayerAuthenticator   AccountAuthenticator
}

// Variant - wire tag
func (a *FeePayerTxnAuthenticator) Variant() uint32 { return TxnFeePayerVariant }

// MarshalBCS - tag, sender proof, secondaries, fee payer address
// and proof
func (a *FeePayerTxnAuthenticator) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(TxnFeePayerVariant)
	s.Struct(a.Sender)
	s.SequenceLength(len(a.SecondaryAddresses))
	for _, address := range a.SecondaryAddresses {
		s.Struct(address)
	}
	s.SequenceLength(len(a.SecondaryAuthenticators))
	for _, auth := range a.SecondaryAuthenticators {
		s.Struct(auth)
	}
	s.Struct(a.FeePayerAddress)
	s.Struct(a.FeePayerAuthenticator)
}

// SingleSenderTxnAuthenticator - wraps one embedded account level
// proof; the only legal way for SingleKey and MultiKey accounts to
// authenticate a transaction
type SingleSenderTxnAuthenticator struct {
	Sender AccountAuthenticator
}

// Variant - wire tag
func (a *SingleSenderTxnAuthenticator) Variant() uint32 { return TxnSingleSenderVariant }

// MarshalBCS - tag then the embedded account authenticator
func (a *SingleSenderTxnAuthenticator) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(TxnSingleSenderVariant)
	s.Struct(a.Sender)
}

// ForTransaction - sign a message and select the transaction level
// wrapping for the account's concrete variant
//
// legacy ed25519 and multi-ed25519 accounts are first class
// variants; the modern key forms are always wrapped in SingleSender
func ForTransaction(acct account.Account, message []byte) (TransactionAuthenticator, error) {
	switch a := acct.(type) {

	case *account.Ed25519Account:
		return &Ed25519TxnAuthenticator{
			PublicKey: a.PublicKey(),
			Signature: a.Sign(message),
		}, nil

	case *account.MultiEd25519Account:
		signature, err := a.Sign(message)
		if nil != err {
			return nil, err
		}
		return &MultiEd25519TxnAuthenticator{
			PublicKey: a.PublicKey(),
			Signature: signature,
		}, nil

	case *account.SingleKeyAccount, *account.MultiKeyAccount:
		inner, err := ForAccount(acct, message)
		if nil != err {
			return nil, err
		}
		return &SingleSenderTxnAuthenticator{Sender: inner}, nil

	default:
		return nil, fault.UnsupportedAuthenticatorVariant
	}
}

// DeserializeTransactionAuthenticator - decode any variant from the
// tagged union
func DeserializeTransactionAuthenticator(d *bcs.Deserializer) TransactionAuthenticator {
	variant := d.Uleb128()
	if nil != d.Error() {
		return nil
	}
	switch variant {

	case TxnEd25519Variant:
		a := &Ed25519TxnAuthenticator{}
		d.Struct(&a.PublicKey)
		d.Struct(&a.Signature)
		return a

	case TxnMultiEd25519Variant:
		a := &MultiEd25519TxnAuthenticator{
			PublicKey: &account.MultiEd25519PublicKey{},
			Signature: &account.MultiEd25519Signature{},
		}
		d.Struct(a.PublicKey)
		d.Struct(a.Signature)
		return a

	case TxnMultiAgentVariant:
		a := &MultiAgentTxnAuthenticator{}
		a.Sender = DeserializeAccountAuthenticator(d)
		a.SecondaryAddresses = deserializeAddresses(d)
		a.SecondaryAuthenticators = deserializeAccountAuthenticators(d)
		return a

	case TxnFeePayerVariant:
		a := &FeePayerTxnAuthenticator{}
		a.Sender = DeserializeAccountAuthenticator(d)
		a.SecondaryAddresses = deserializeAddresses(d)
		a.SecondaryAuthenticators = deserializeAccountAuthenticators(d)
		d.Struct(&a.FeePayerAddress)
		a.FeePayerAuthenticator = DeserializeAccountAuthenticator(d)
		return a

	case TxnSingleSenderVariant:
		a := &SingleSenderTxnAuthenticator{}
		a.Sender = DeserializeAccountAuthenticator(d)
		return a

	default:
		d.Abort(fault.UnsupportedAuthenticatorVariant)
		return nil
	}
}

func deserializeAddresses(d *bcs.Deserializer) []account.AccountAddress {
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

func deserializeAccountAuthenticators(d *bcs.Deserializer) []AccountAuthenticator {
	n := d.SequenceLength()
	if nil != d.Error() {
		return nil
	}
	result := make([]AccountAuthenticator, 0, n)
	for i := 0; i < n; i += 1 {
		auth := DeserializeAccountAuthenticator(d)
		if nil != d.Error() {
			return nil
		}
		result = append(result, auth)
	}
	return result
}
