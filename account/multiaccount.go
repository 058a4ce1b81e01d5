// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"sort"

	"github.com/aptoskit/aptoskit/bcs"
	"github.com/aptoskit/aptoskit/fault"
)

// MultiEd25519Account - one locally held key signing for an M of N
// ed25519 key set
//
// the single serialized signature covers exactly one signer; the
// bitmap is always built from the recorded key index
type MultiEd25519Account struct {
	signer  *Ed25519Account
	index   int
	pub     *MultiEd25519PublicKey
	authKey AuthKey
}

// MultiEd25519AccountFrom - bind a signer to its position in a key
// set
//
// the signer's public key must appear in the set; the derived
// address is computed once here and cached
func MultiEd25519AccountFrom(signer *Ed25519Account, pub *MultiEd25519PublicKey) (*MultiEd25519Account, error) {
	if nil == signer {
		return nil, fault.EmptySignerList
	}
	index, err := pub.IndexOf(signer.PublicKey())
	if nil != err {
		return nil, err
	}
	return &MultiEd25519Account{
		signer:  signer,
		index:   index,
		pub:     pub,
		authKey: pub.AuthKey(),
	}, nil
}

// Address - the cached account address
func (account *MultiEd25519Account) Address() AccountAddress {
	return account.authKey.Address()
}

// AuthKey - the cached authentication key
func (account *MultiEd25519Account) AuthKey() AuthKey {
	return account.authKey
}

// PublicKey - the whole key set
func (account *MultiEd25519Account) PublicKey() *MultiEd25519PublicKey {
	return account.pub
}

// PublicKeyBytes - the raw concatenated key set form
func (account *MultiEd25519Account) PublicKeyBytes() []byte {
	return account.pub.Bytes()
}

// SignerIndex - position of the local key inside the key set
func (account *MultiEd25519Account) SignerIndex() int {
	return account.index
}

// Scheme - multi-signature derivation scheme tag
func (account *MultiEd25519Account) Scheme() byte {
	return MultiEd25519Scheme
}

// Sign - one signature plus a bitmap naming the recorded index
func (account *MultiEd25519Account) Sign(message []byte) (*MultiEd25519Signature, error) {
	bitmap, err := NewBitmap([]int{account.index})
	if nil != err {
		return nil, err
	}
	return NewMultiEd25519Signature([]Signature{account.signer.Sign(message)}, bitmap), nil
}

// Verify - check a packed multi-signature blob over a message
func (account *MultiEd25519Account) Verify(message []byte, signature []byte) error {
	decoded, err := MultiEd25519SignatureFromBytes(signature)
	if nil != err {
		return err
	}
	return account.pub.Verify(message, decoded)
}

// MultiKeyAccount - locally held keys signing for an M of N mixed
// key set
//
// signers are sorted ascending by their index in the key set at
// construction, so signature order in any authenticator built from
// this account follows ascending signer index
type MultiKeyAccount struct {
	signers []*Ed25519Account
	indexes []int
	pub     *MultiKeyPublicKey
	authKey AuthKey
}

// MultiKeyAccountFrom - bind signers to their positions in a mixed
// key set
//
// requires 0 < len(signers) <= threshold and an exact public key
// match inside the set for every signer
func MultiKeyAccountFrom(signers []*Ed25519Account, pub *MultiKeyPublicKey) (*MultiKeyAccount, error) {
	if 0 == len(signers) {
		return nil, fault.EmptySignerList
	}
	if len(signers) > int(pub.Threshold()) {
		return nil, fault.SignerCountExceedsThreshold
	}

	account := &MultiKeyAccount{
		signers: make([]*Ed25519Account, len(signers)),
		indexes: make([]int, len(signers)),
		pub:     pub,
		authKey: pub.AuthKey(),
	}
	copy(account.signers, signers)

	for i, signer := range account.signers {
		index, err := pub.IndexOf(AnyFromEd25519(signer.PublicKey()))
		if nil != err {
			return nil, err
		}
		account.indexes[i] = index
	}

	// signature order must follow ascending signer index, not the
	// order the caller supplied
	sort.Sort(bySignerIndex{account})

	return account, nil
}

// sort signers and indexes together
type bySignerIndex struct {
	account *MultiKeyAccount
}

func (b bySignerIndex) Len() int { return len(b.account.indexes) }
func (b bySignerIndex) Less(i, j int) bool {
	return b.account.indexes[i] < b.account.indexes[j]
}
func (b bySignerIndex) Swap(i, j int) {
	b.account.indexes[i], b.account.indexes[j] = b.account.indexes[j], b.account.indexes[i]
	b.account.signers[i], b.account.signers[j] = b.account.signers[j], b.account.signers[i]
}

// Address - the cached account address
func (account *MultiKeyAccount) Address() AccountAddress {
	return account.authKey.Address()
}

// AuthKey - the cached authentication key
func (account *MultiKeyAccount) AuthKey() AuthKey {
	return account.authKey
}

// PublicKey - the whole key set
func (account *MultiKeyAccount) PublicKey() *MultiKeyPublicKey {
	return account.pub
}

// PublicKeyBytes - the canonical BCS key set form
func (account *MultiKeyAccount) PublicKeyBytes() []byte {
	return account.pub.Bytes()
}

// SignerIndexes - the ascending key set positions of the local
// signers
func (account *MultiKeyAccount) SignerIndexes() []int {
	result := make([]int, len(account.indexes))
	copy(result, account.indexes)
	return result
}

// Scheme - mixed key set derivation scheme tag
func (account *MultiKeyAccount) Scheme() byte {
	return MultiKeyScheme
}

// Sign - one signature per local signer, ascending index order,
// plus the matching bitmap
func (account *MultiKeyAccount) Sign(message []byte) (*MultiKeySignature, error) {
	bitmap, err := NewBitmap(account.indexes)
	if nil != err {
		return nil, err
	}
	signatures := make([]AnySignature, len(account.signers))
	for i, signer := range account.signers {
		signatures[i] = AnySignatureFromEd25519(signer.Sign(message))
	}
	return NewMultiKeySignature(signatures, bitmap), nil
}

// Verify - check a BCS encoded MultiKeySignature over a message
func (account *MultiKeyAccount) Verify(message []byte, signature []byte) error {
	decoded := &MultiKeySignature{}
	if err := bcs.Deserialize(decoded, signature); nil != err {
		return err
	}
	return account.pub.Verify(message, decoded)
}
