// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package authenticator_test

import (
	"testing"

	"github.com/aptoskit/aptoskit/account"
	"github.com/aptoskit/aptoskit/authenticator"
	"github.com/aptoskit/aptoskit/bcs"
	"github.com/aptoskit/aptoskit/fault"
)

func makeEd25519(t *testing.T) *account.Ed25519Account {
	t.Helper()
	acct, err := account.NewEd25519Account()
	if nil != err {
		t.Fatalf("unexpected error: %s", err)
	}
	return acct
}

// every account level proof must verify and survive a BCS round trip
func TestForAccountRoundTrip(t *testing.T) {

	message := []byte("Hello, Aptos!")

	ed := makeEd25519(t)
	single, err := account.SingleKeyAccountFromSeed(ed.PrivateKeySeed())
	if nil != err {
		t.Fatalf("unexpected error: %s", err)
	}

	multiPub, err := account.NewMultiEd25519PublicKey([]account.Ed25519PublicKey{
		ed.PublicKey(),
		makeEd25519(t).PublicKey(),
	}, 1)
	if nil != err {
		t.Fatalf("unexpected error: %s", err)
	}
	multi, err := account.MultiEd25519AccountFrom(ed, multiPub)
	if nil != err {
		t.Fatalf("unexpected error: %s", err)
	}

	mixedPub, err := account.NewMultiKeyPublicKey([]account.AnyPublicKey{
		account.AnyFromEd25519(ed.PublicKey()),
		account.AnyFromEd25519(makeEd25519(t).PublicKey()),
	}, 1)
	if nil != err {
		t.Fatalf("unexpected error: %s", err)
	}
	mixed, err := account.MultiKeyAccountFrom([]*account.Ed25519Account{ed}, mixedPub)
	if nil != err {
		t.Fatalf("unexpected error: %s", err)
	}

	testData := []struct {
		acct    account.Account
		variant uint32
	}{
		{acct: ed, variant: authenticator.Ed25519Variant},
		{acct: multi, variant: authenticator.MultiEd25519Variant},
		{acct: single, variant: authenticator.SingleKeyVariant},
		{acct: mixed, variant: authenticator.MultiKeyVariant},
	}

	for i, item := range testData {
		auth, err := authenticator.ForAccount(item.acct, message)
		if nil != err {
			t.Fatalf("%d: unexpected error: %s", i, err)
		}
		if item.variant != auth.Variant() {
			t.Errorf("%d: variant: actual: %d  expected: %d", i, auth.Variant(), item.variant)
		}
		if err := auth.VerifyMessage(message); nil != err {
			t.Errorf("%d: verify failed: %s", i, err)
		}
		if err := auth.VerifyMessage([]byte("tampered")); nil == err {
			t.Errorf("%d: tampered message verified", i)
		}

		buffer, err := bcs.Serialize(auth)
		if nil != err {
			t.Fatalf("%d: serialize error: %s", i, err)
		}

		d := bcs.NewDeserializer(buffer)
		decoded := authenticator.DeserializeAccountAuthenticator(d)
		if nil != d.Error() {
			t.Fatalf("%d: deserialize error: %s", i, d.Error())
		}
		if 0 != d.Remaining() {
			t.Fatalf("%d: %d trailing bytes", i, d.Remaining())
		}
		if item.variant != decoded.Variant() {
			t.Errorf("%d: decoded variant: actual: %d  expected: %d", i, decoded.Variant(), item.variant)
		}
		if err := decoded.VerifyMessage(message); nil != err {
			t.Errorf("%d: decoded verify failed: %s", i, err)
		}
	}
}

// legacy accounts are first class transaction variants; the modern
// key forms always travel wrapped in SingleSender
func TestForTransactionWrapping(t *testing.T) {

	message := []byte("Hello, Aptos!")

	ed := makeEd25519(t)
	single, err := account.SingleKeyAccountFromSeed(ed.PrivateKeySeed())
	if nil != err {
		t.Fatalf("unexpected error: %s", err)
	}

	auth, err := authenticator.ForTransaction(ed, message)
	if nil != err {
		t.Fatalf("unexpected error: %s", err)
	}
	if authenticator.TxnEd25519Variant != auth.Variant() {
		t.Errorf("ed25519: wrong variant: %d", auth.Variant())
	}

	auth, err = authenticator.ForTransaction(single, message)
	if nil != err {
		t.Fatalf("unexpected error: %s", err)
	}
	wrapper, ok := auth.(*authenticator.SingleSenderTxnAuthenticator)
	if !ok {
		t.Fatalf("single key: not wrapped in SingleSender: %T", auth)
	}
	if authenticator.SingleKeyVariant != wrapper.Sender.Variant() {
		t.Errorf("single key: wrong inner variant: %d", wrapper.Sender.Variant())
	}

	// transaction level round trip
	buffer, err := bcs.Serialize(auth)
	if nil != err {
		t.Fatalf("serialize error: %s", err)
	}
	d := bcs.NewDeserializer(buffer)
	decoded := authenticator.DeserializeTransactionAuthenticator(d)
	if nil != d.Error() {
		t.Fatalf("deserialize error: %s", d.Error())
	}
	if authenticator.TxnSingleSenderVariant != decoded.Variant() {
		t.Errorf("decoded: wrong variant: %d", decoded.Variant())
	}
}

func TestDeserializeUnknownVariant(t *testing.T) {
	d := bcs.NewDeserializer([]byte{0x07})
	_ = authenticator.DeserializeAccountAuthenticator(d)
	if fault.UnsupportedAuthenticatorVariant != d.Error() {
		t.Errorf("actual: %v  expected: %v", d.Error(), fault.UnsupportedAuthenticatorVariant)
	}

	d = bcs.NewDeserializer([]byte{0x09})
	_ = authenticator.DeserializeTransactionAuthenticator(d)
	if fault.UnsupportedAuthenticatorVariant != d.Error() {
		t.Errorf("actual: %v  expected: %v", d.Error(), fault.UnsupportedAuthenticatorVariant)
	}
}
