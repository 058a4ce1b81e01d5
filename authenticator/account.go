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

// enumeration of account authenticator variants
// encoded as a ULEB128 discriminant before the payload
const (
	Ed25519Variant      = uint32(0)
	MultiEd25519Variant = uint32(1)
	SingleKeyVariant    = uint32(2)
	MultiKeyVariant     = uint32(3)
)

// AccountAuthenticator - proof that one account authorized a
// message; a closed tagged union
type AccountAuthenticator interface {
	bcs.Marshaler
	Variant() uint32
	VerifyMessage(message []byte) error
}

// Ed25519Authenticator - legacy single key proof
type Ed25519Authenticator struct {
	PublicKey account.Ed25519PublicKey
	Signature account.Signature
}

// Variant - wire tag
func (a *Ed25519Authenticator) Variant() uint32 { return Ed25519Variant }

// MarshalBCS - tag, length-prefixed key, length-prefixed signature
func (a *Ed25519Authenticator) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(Ed25519Variant)
	s.Struct(a.PublicKey)
	s.Struct(a.Signature)
}

// VerifyMessage - check the carried signature over a message
func (a *Ed25519Authenticator) VerifyMessage(message []byte) error {
	return a.PublicKey.Verify(message, a.Signature)
}

// MultiEd25519Authenticator - M of N ed25519 proof
type MultiEd25519Authenticator struct {
	PublicKey *account.MultiEd25519PublicKey
	Signature *account.MultiEd25519Signature
}

// Variant - wire tag
func (a *MultiEd25519Authenticator) Variant() uint32 { return MultiEd25519Variant }

// MarshalBCS - tag, then the key set and signature bundle each as
// one length-prefixed blob
func (a *MultiEd25519Authenticator) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(MultiEd25519Variant)
	s.Struct(a.PublicKey)
	s.Struct(a.Signature)
}

// VerifyMessage - check the carried signatures over a message
func (a *MultiEd25519Authenticator) VerifyMessage(message []byte) error {
	return a.PublicKey.Verify(message, a.Signature)
}

// SingleKeyAuthenticator - modern single key proof: the key and
// signature travel variant tagged
type SingleKeyAuthenticator struct {
	PublicKey account.AnyPublicKey
	Signature account.AnySignature
}

// Variant - wire tag
func (a *SingleKeyAuthenticator) Variant() uint32 { return SingleKeyVariant }

// MarshalBCS - tag, AnyPublicKey, AnySignature
func (a *SingleKeyAuthenticator) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(SingleKeyVariant)
	s.Struct(a.PublicKey)
	s.Struct(a.Signature)
}

// VerifyMessage - check the carried signature over a message
func (a *SingleKeyAuthenticator) VerifyMessage(message []byte) error {
	return a.PublicKey.Verify(message, a.Signature)
}

// MultiKeyAuthenticator - M of N mixed key proof
type MultiKeyAuthenticator struct {
	PublicKey *account.MultiKeyPublicKey
	Signature *account.MultiKeySignature
}

// Variant - wire tag
func (a *MultiKeyAuthenticator) Variant() uint32 { return MultiKeyVariant }

// MarshalBCS - tag, vector of keys + threshold, vector of
// signatures + length-prefixed bitmap
func (a *MultiKeyAuthenticator) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(MultiKeyVariant)
	s.Struct(a.PublicKey)
	s.Struct(a.Signature)
}

// VerifyMessage - check the carried signatures over a message
func (a *MultiKeyAuthenticator) VerifyMessage(message []byte) error {
	return a.PublicKey.Verify(message, a.Signature)
}

// ForAccount - sign a message and package the proof for the
// account's concrete variant
//
// one arm per variant keeps the union closed: a new account type
// cannot silently pick up a wrong wrapping
func ForAccount(acct account.Account, message []byte) (AccountAuthenticator, error) {
	switch a := acct.(type) {

	case *account.Ed25519Account:
		return &Ed25519Authenticator{
			PublicKey: a.PublicKey(),
			Signature: a.Sign(message),
		}, nil

	case *account.SingleKeyAccount:
		return &SingleKeyAuthenticator{
			PublicKey: a.AnyPublicKey(),
			Signature: a.SignAny(message),
		}, nil

	case *account.MultiEd25519Account:
		signature, err := a.Sign(message)
		if nil != err {
			return nil, err
		}
		return &MultiEd25519Authenticator{
			PublicKey: a.PublicKey(),
			Signature: signature,
		}, nil

	case *account.MultiKeyAccount:
		signature, err := a.Sign(message)
		if nil != err {
			return nil, err
		}
		return &MultiKeyAuthenticator{
			PublicKey: a.PublicKey(),
			Signature: signature,
		}, nil

	default:
		return nil, fault.UnsupportedAuthenticatorVariant
	}
}

// DeserializeAccountAuthenticator - decode any variant from the
// tagged union
func DeserializeAccountAuthenticator(d *bcs.Deserializer) AccountAuthenticator {
	variant := d.Uleb128()
	if nil != d.Error() {
		return nil
	}
	switch variant {

	case Ed25519Variant:
		a := &Ed25519Authenticator{}
		d.Struct(&a.PublicKey)
		d.Struct(&a.Signature)
		return a

	case MultiEd25519Variant:
		a := &MultiEd25519Authenticator{
			PublicKey: &account.MultiEd25519PublicKey{},
			Signature: &account.MultiEd25519Signature{},
		}
		d.Struct(a.PublicKey)
		d.Struct(a.Signature)
		return a

	case SingleKeyVariant:
		a := &SingleKeyAuthenticator{}
		d.Struct(&a.PublicKey)
		d.Struct(&a.Signature)
		return a

	case MultiKeyVariant:
		a := &MultiKeyAuthenticator{
			PublicKey: &account.MultiKeyPublicKey{},
			Signature: &account.MultiKeySignature{},
		}
		d.Struct(a.PublicKey)
		d.Struct(a.Signature)
		return a

	default:
		d.Abort(fault.UnsupportedAuthenticatorVariant)
		return nil
	}
}
