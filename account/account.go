// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/ed25519"

	"github.com/aptoskit/aptoskit/fault"
)

// PrivateKeyLength - number of bytes in an ed25519 private key seed
const PrivateKeyLength = ed25519.SeedSize

// Account - the contract every signing identity exposes
//
// concrete variants: Ed25519Account, SingleKeyAccount,
// MultiEd25519Account, MultiKeyAccount; authenticator packaging
// selects per concrete type, so the set is closed
type Account interface {
	Address() AccountAddress
	AuthKey() AuthKey
	PublicKeyBytes() []byte
	Scheme() byte
	Verify(message []byte, signature []byte) error
}

// Ed25519Account - a single ed25519 key under the legacy scheme
type Ed25519Account struct {
	priv    ed25519.PrivateKey
	pub     Ed25519PublicKey
	authKey AuthKey
}

// NewEd25519Account - generate a fresh random account
func NewEd25519Account() (*Ed25519Account, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return ed25519AccountFromKey(priv), nil
}

// Ed25519AccountFromSeed - create an account from the 32 byte
// private key seed
func Ed25519AccountFromSeed(seed []byte) (*Ed25519Account, error) {
	if PrivateKeyLength != len(seed) {
		return nil, fault.PrivateKeyLength
	}
	return ed25519AccountFromKey(ed25519.NewKeyFromSeed(seed)), nil
}

// Ed25519AccountFromHex - create an account from a hex encoded
// seed, 0x prefix optional
func Ed25519AccountFromHex(s string) (*Ed25519Account, error) {
	seed, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if nil != err {
		return nil, fault.CannotDecodePrivateKey
	}
	return Ed25519AccountFromSeed(seed)
}

// derive the cached public key and address once
func ed25519AccountFromKey(priv ed25519.PrivateKey) *Ed25519Account {
	var pub Ed25519PublicKey
	copy(pub[:], priv.Public().(ed25519.PublicKey))
	return &Ed25519Account{
		priv:    priv,
		pub:     pub,
		authKey: pub.AuthKey(),
	}
}

// Address - the cached account address
func (account *Ed25519Account) Address() AccountAddress {
	return account.authKey.Address()
}

// AuthKey - the cached authentication key
func (account *Ed25519Account) AuthKey() AuthKey {
	return account.authKey
}

// PublicKey - the account's public key
func (account *Ed25519Account) PublicKey() Ed25519PublicKey {
	return account.pub
}

// PublicKeyBytes - the public key as a fresh byte slice
func (account *Ed25519Account) PublicKeyBytes() []byte {
	return account.pub.Bytes()
}

// PrivateKeySeed - the 32 byte seed as a fresh byte slice
func (account *Ed25519Account) PrivateKeySeed() []byte {
	result := make([]byte, PrivateKeyLength)
	copy(result, account.priv.Seed())
	return result
}

// Scheme - legacy derivation scheme tag
func (account *Ed25519Account) Scheme() byte {
	return Ed25519Scheme
}

// Sign - produce a single ed25519 signature over a message
func (account *Ed25519Account) Sign(message []byte) Signature {
	var signature Signature
	copy(signature[:], ed25519.Sign(account.priv, message))
	return signature
}

// Verify - check a 64 byte signature over a message
func (account *Ed25519Account) Verify(message []byte, signature []byte) error {
	decoded, err := NewSignature(signature)
	if nil != err {
		return err
	}
	return account.pub.Verify(message, decoded)
}

// SingleKeyAccount - a single ed25519 key under the modern
// wrapping: the same address as the legacy scheme, but signatures
// travel as variant-tagged AnySignature values
type SingleKeyAccount struct {
	*Ed25519Account
}

// NewSingleKeyAccount - generate a fresh random account
func NewSingleKeyAccount() (*SingleKeyAccount, error) {
	inner, err := NewEd25519Account()
	if nil != err {
		return nil, err
	}
	return &SingleKeyAccount{Ed25519Account: inner}, nil
}

// SingleKeyAccountFromSeed - create an account from the 32 byte
// private key seed
func SingleKeyAccountFromSeed(seed []byte) (*SingleKeyAccount, error) {
	inner, err := Ed25519AccountFromSeed(seed)
	if nil != err {
		return nil, err
	}
	return &SingleKeyAccount{Ed25519Account: inner}, nil
}

// Scheme - address derivation is shared with the legacy scheme
func (account *SingleKeyAccount) Scheme() byte {
	return SingleKeyScheme
}

// AnyPublicKey - the public key in its variant-tagged form
func (account *SingleKeyAccount) AnyPublicKey() AnyPublicKey {
	return AnyFromEd25519(account.pub)
}

// SignAny - produce the variant-tagged signature form
func (account *SingleKeyAccount) SignAny(message []byte) AnySignature {
	return AnySignatureFromEd25519(account.Sign(message))
}

// make sure the concrete variants satisfy the contract
var (
	_ Account = (*Ed25519Account)(nil)
	_ Account = (*SingleKeyAccount)(nil)
	_ Account = (*MultiEd25519Account)(nil)
	_ Account = (*MultiKeyAccount)(nil)
)
