// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"testing"

	"github.com/aptoskit/aptoskit/account"
	"github.com/aptoskit/aptoskit/fault"
)

// key published as a wallet interop fixture; address verified
// against other SDK implementations
const (
	fixturePrivateKey = "0x5d996aa76b3212142792d9130796cd2e11e3c445a93118c08414df4f66bc60ec"
	fixtureAddress    = "0x07968dab936c1bad187c60ce4082f307d030d780e91e694ae03aef16aba73f30"
)

func TestEd25519AccountFixture(t *testing.T) {
	acct, err := account.Ed25519AccountFromHex(fixturePrivateKey)
	if nil != err {
		t.Fatalf("unexpected error: %s", err)
	}
	if fixtureAddress != acct.Address().String() {
		t.Errorf("address: actual: %s  expected: %s", acct.Address().String(), fixtureAddress)
	}
	if acct.AuthKey().Address() != acct.Address() {
		t.Errorf("address differs from auth key")
	}
}

func TestEd25519SignVerify(t *testing.T) {
	acct, err := account.NewEd25519Account()
	if nil != err {
		t.Fatalf("unexpected error: %s", err)
	}

	message := []byte("Hello, Aptos!")
	signature := acct.Sign(message)

	err = acct.Verify(message, signature.Bytes())
	if nil != err {
		t.Errorf("verify failed: %s", err)
	}

	err = acct.Verify([]byte("Hello, Aptos?"), signature.Bytes())
	if fault.InvalidSignature != err {
		t.Errorf("wrong message: actual: %v  expected: %v", err, fault.InvalidSignature)
	}

	err = acct.Verify(message, signature.Bytes()[:63])
	if fault.SignatureLength != err {
		t.Errorf("short signature: actual: %v  expected: %v", err, fault.SignatureLength)
	}
}

func TestEd25519AccountFromSeedFail(t *testing.T) {
	_, err := account.Ed25519AccountFromSeed(make([]byte, 16))
	if fault.PrivateKeyLength != err {
		t.Errorf("actual: %v  expected: %v", err, fault.PrivateKeyLength)
	}

	_, err = account.Ed25519AccountFromHex("0xnothex")
	if fault.CannotDecodePrivateKey != err {
		t.Errorf("actual: %v  expected: %v", err, fault.CannotDecodePrivateKey)
	}
}

// the modern single key wrapping derives the same address as the
// legacy scheme
func TestSingleKeyAccountAddress(t *testing.T) {
	legacy, err := account.Ed25519AccountFromHex(fixturePrivateKey)
	if nil != err {
		t.Fatalf("unexpected error: %s", err)
	}
	modern, err := account.SingleKeyAccountFromSeed(legacy.PrivateKeySeed())
	if nil != err {
		t.Fatalf("unexpected error: %s", err)
	}

	if legacy.Address() != modern.Address() {
		t.Errorf("addresses differ: %s vs %s", legacy.Address().String(), modern.Address().String())
	}
	if account.SingleKeyScheme != modern.Scheme() {
		t.Errorf("wrong scheme: %d", modern.Scheme())
	}
	if !bytes.Equal(legacy.PublicKeyBytes(), modern.PublicKeyBytes()) {
		t.Errorf("public keys differ")
	}
}

// the same payload under different scheme bytes must derive
// different keys
func TestAuthKeySchemeSeparation(t *testing.T) {
	payload := make([]byte, 32)

	legacy := account.NewAuthKey(payload, account.Ed25519Scheme)
	multi := account.NewAuthKey(payload, account.MultiEd25519Scheme)
	anyKey := account.NewAuthKey(payload, account.AnyKeyScheme)
	mixed := account.NewAuthKey(payload, account.MultiKeyScheme)

	if legacy == multi || legacy == anyKey || legacy == mixed || multi == anyKey || multi == mixed || anyKey == mixed {
		t.Errorf("scheme bytes do not separate derived keys")
	}

	// and the derivation is deterministic
	if legacy != account.NewAuthKey(payload, account.Ed25519Scheme) {
		t.Errorf("derivation is not deterministic")
	}
}

func TestKeylessAuthKey(t *testing.T) {
	idc := make([]byte, account.IdentityCommitmentLength)
	idc[0] = 0x01

	key, err := account.NewKeylessPublicKey("https://accounts.google.com", idc)
	if nil != err {
		t.Fatalf("unexpected error: %s", err)
	}

	other, err := account.NewKeylessPublicKey("https://accounts.google.com", idc)
	if nil != err {
		t.Fatalf("unexpected error: %s", err)
	}
	if key.AuthKey() != other.AuthKey() {
		t.Errorf("derivation is not deterministic")
	}

	// a keyless key can never verify locally
	err = key.Verify(nil, account.Signature{})
	if fault.KeylessCannotVerify != err {
		t.Errorf("actual: %v  expected: %v", err, fault.KeylessCannotVerify)
	}
}
