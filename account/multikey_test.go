// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"testing"

	"github.com/aptoskit/aptoskit/account"
	"github.com/aptoskit/aptoskit/bcs"
	"github.com/aptoskit/aptoskit/fault"
)

func makeMixedKeySet(t *testing.T, accounts []*account.Ed25519Account, threshold byte) *account.MultiKeyPublicKey {
	t.Helper()
	keys := make([]account.AnyPublicKey, len(accounts))
	for i, acct := range accounts {
		keys[i] = account.AnyFromEd25519(acct.PublicKey())
	}
	pub, err := account.NewMultiKeyPublicKey(keys, threshold)
	if nil != err {
		t.Fatalf("unexpected error: %s", err)
	}
	return pub
}

func TestNewMultiKeyPublicKeyFail(t *testing.T) {
	_, err := account.NewMultiKeyPublicKey(nil, 1)
	if fault.EmptyKeyList != err {
		t.Errorf("actual: %v  expected: %v", err, fault.EmptyKeyList)
	}

	accounts := makeAccounts(t, 2)
	keys := []account.AnyPublicKey{
		account.AnyFromEd25519(accounts[0].PublicKey()),
		account.AnyFromEd25519(accounts[1].PublicKey()),
	}
	_, err = account.NewMultiKeyPublicKey(keys, 3)
	if fault.ThresholdOutOfRange != err {
		t.Errorf("actual: %v  expected: %v", err, fault.ThresholdOutOfRange)
	}
}

// identical key sets derive identical addresses; the derivation is
// over the canonical BCS bytes plus the scheme byte
func TestMultiKeyAddress(t *testing.T) {
	accounts := makeAccounts(t, 3)

	pub := makeMixedKeySet(t, accounts, 2)
	same := makeMixedKeySet(t, accounts, 2)
	reversed := makeMixedKeySet(t, []*account.Ed25519Account{accounts[2], accounts[1], accounts[0]}, 2)

	if pub.Address() != same.Address() {
		t.Errorf("derivation is not deterministic")
	}
	if pub.Address() == reversed.Address() {
		t.Errorf("key order must affect the derived address")
	}
	if pub.AuthKey() != account.NewAuthKey(pub.Bytes(), account.MultiKeyScheme) {
		t.Errorf("auth key derivation mismatch")
	}
}

// a mixed set may hold a keyless member; it contributes to the
// address even though it cannot sign here
func TestMultiKeyWithKeylessMember(t *testing.T) {
	accounts := makeAccounts(t, 1)

	idc := make([]byte, account.IdentityCommitmentLength)
	idc[31] = 0x7f
	keyless, err := account.NewKeylessPublicKey("https://accounts.google.com", idc)
	if nil != err {
		t.Fatalf("unexpected error: %s", err)
	}

	pub, err := account.NewMultiKeyPublicKey([]account.AnyPublicKey{
		account.AnyFromEd25519(accounts[0].PublicKey()),
		account.AnyFromKeyless(keyless),
	}, 1)
	if nil != err {
		t.Fatalf("unexpected error: %s", err)
	}

	acct, err := account.MultiKeyAccountFrom(accounts, pub)
	if nil != err {
		t.Fatalf("unexpected error: %s", err)
	}

	message := []byte("Hello, Aptos!")
	signature, err := acct.Sign(message)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	err = pub.Verify(message, signature)
	if nil != err {
		t.Errorf("verify failed: %s", err)
	}
}

// signers supplied out of order are recorded in ascending key set
// order
func TestMultiKeyAccountSignerOrder(t *testing.T) {
	accounts := makeAccounts(t, 3)
	pub := makeMixedKeySet(t, accounts, 2)

	acct, err := account.MultiKeyAccountFrom([]*account.Ed25519Account{accounts[2], accounts[0]}, pub)
	if nil != err {
		t.Fatalf("unexpected error: %s", err)
	}

	indexes := acct.SignerIndexes()
	if 2 != len(indexes) || 0 != indexes[0] || 2 != indexes[1] {
		t.Fatalf("wrong signer indexes: %v", indexes)
	}

	message := []byte("Hello, Aptos!")
	signature, err := acct.Sign(message)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	if !signature.Bitmap().Contains(0) || !signature.Bitmap().Contains(2) || 2 != signature.Bitmap().Count() {
		t.Errorf("wrong bitmap: %x", signature.Bitmap().Bytes())
	}

	err = pub.Verify(message, signature)
	if nil != err {
		t.Errorf("verify failed: %s", err)
	}

	// and via the packed BCS form
	buffer, err := bcs.Serialize(signature)
	if nil != err {
		t.Fatalf("serialize error: %s", err)
	}
	err = acct.Verify(message, buffer)
	if nil != err {
		t.Errorf("verify via account failed: %s", err)
	}
}

func TestMultiKeyAccountFromFail(t *testing.T) {
	accounts := makeAccounts(t, 3)
	pub := makeMixedKeySet(t, accounts[:2], 1)

	_, err := account.MultiKeyAccountFrom(nil, pub)
	if fault.EmptySignerList != err {
		t.Errorf("actual: %v  expected: %v", err, fault.EmptySignerList)
	}

	// more signers than the threshold needs is refused
	_, err = account.MultiKeyAccountFrom(accounts[:2], pub)
	if fault.SignerCountExceedsThreshold != err {
		t.Errorf("actual: %v  expected: %v", err, fault.SignerCountExceedsThreshold)
	}

	// a signer outside the key set is refused
	_, err = account.MultiKeyAccountFrom([]*account.Ed25519Account{accounts[2]}, pub)
	if fault.SignerKeyNotFound != err {
		t.Errorf("actual: %v  expected: %v", err, fault.SignerKeyNotFound)
	}
}

func TestMultiKeyPublicKeyBCS(t *testing.T) {
	accounts := makeAccounts(t, 2)
	pub := makeMixedKeySet(t, accounts, 1)

	buffer, err := bcs.Serialize(pub)
	if nil != err {
		t.Fatalf("serialize error: %s", err)
	}

	decoded := &account.MultiKeyPublicKey{}
	err = bcs.Deserialize(decoded, buffer)
	if nil != err {
		t.Fatalf("deserialize error: %s", err)
	}
	if decoded.Address() != pub.Address() {
		t.Errorf("round trip changed the address")
	}
	if decoded.Threshold() != pub.Threshold() {
		t.Errorf("round trip changed the threshold")
	}
}
