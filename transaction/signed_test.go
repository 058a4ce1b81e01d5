// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"bytes"
	"testing"

	"github.com/aptoskit/aptoskit/account"
	"github.com/aptoskit/aptoskit/authenticator"
	"github.com/aptoskit/aptoskit/bcs"
	"github.com/aptoskit/aptoskit/transaction"
)

func TestSignEd25519(t *testing.T) {
	acct, err := account.NewEd25519Account()
	if nil != err {
		t.Fatalf("unexpected error: %s", err)
	}

	raw := makeRaw(t, acct.Address())
	signed, err := transaction.Sign(acct, raw)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	if authenticator.TxnEd25519Variant != signed.Authenticator.Variant() {
		t.Errorf("wrong variant: %d", signed.Authenticator.Variant())
	}

	// the carried signature covers the prefixed signing message
	message, _ := raw.SigningMessage()
	auth := signed.Authenticator.(*authenticator.Ed25519TxnAuthenticator)
	err = auth.PublicKey.Verify(message, auth.Signature)
	if nil != err {
		t.Errorf("signature does not cover the signing message: %s", err)
	}

	// the submittable bytes are raw transaction then authenticator
	buffer, err := signed.Bytes()
	if nil != err {
		t.Fatalf("serialize error: %s", err)
	}
	rawBytes, _ := raw.Bytes()
	if !bytes.Equal(rawBytes, buffer[:len(rawBytes)]) {
		t.Errorf("raw transaction is not the leading section")
	}

	decoded := transaction.SignedTransaction{}
	err = bcs.Deserialize(&decoded, buffer)
	if nil != err {
		t.Fatalf("deserialize error: %s", err)
	}
	if authenticator.TxnEd25519Variant != decoded.Authenticator.Variant() {
		t.Errorf("decoded: wrong variant: %d", decoded.Authenticator.Variant())
	}
}

func TestSignSingleKeyWrapping(t *testing.T) {
	acct, err := account.NewSingleKeyAccount()
	if nil != err {
		t.Fatalf("unexpected error: %s", err)
	}

	signed, err := transaction.Sign(acct, makeRaw(t, acct.Address()))
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	if authenticator.TxnSingleSenderVariant != signed.Authenticator.Variant() {
		t.Errorf("wrong variant: %d", signed.Authenticator.Variant())
	}
}

func TestSignMultiAgent(t *testing.T) {
	sender, _ := account.NewEd25519Account()
	second, _ := account.NewEd25519Account()

	raw := makeRaw(t, sender.Address())
	signed, err := transaction.SignMultiAgent(sender, []account.Account{second}, raw)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}

	auth, ok := signed.Authenticator.(*authenticator.MultiAgentTxnAuthenticator)
	if !ok {
		t.Fatalf("wrong authenticator type: %T", signed.Authenticator)
	}
	if 1 != len(auth.SecondaryAddresses) || second.Address() != auth.SecondaryAddresses[0] {
		t.Errorf("wrong secondary addresses")
	}

	// every proof covers the multi agent envelope
	ma := transaction.MultiAgentRawTransaction{
		Raw:              raw,
		SecondarySigners: []account.AccountAddress{second.Address()},
	}
	message, _ := ma.SigningMessage()
	if err := auth.Sender.VerifyMessage(message); nil != err {
		t.Errorf("sender proof: %s", err)
	}
	if err := auth.SecondaryAuthenticators[0].VerifyMessage(message); nil != err {
		t.Errorf("secondary proof: %s", err)
	}
}

func TestSignFeePayer(t *testing.T) {
	sender, _ := account.NewEd25519Account()
	payer, _ := account.NewEd25519Account()

	raw := makeRaw(t, sender.Address())
	signed, err := transaction.SignFeePayer(sender, nil, payer, raw)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}

	auth, ok := signed.Authenticator.(*authenticator.FeePayerTxnAuthenticator)
	if !ok {
		t.Fatalf("wrong authenticator type: %T", signed.Authenticator)
	}
	if payer.Address() != auth.FeePayerAddress {
		t.Errorf("wrong fee payer address")
	}

	// both proofs cover the fee payer envelope, not the plain one
	fp := transaction.FeePayerRawTransaction{
		Raw:      raw,
		FeePayer: payer.Address(),
	}
	message, _ := fp.SigningMessage()
	if err := auth.Sender.VerifyMessage(message); nil != err {
		t.Errorf("sender proof: %s", err)
	}
	if err := auth.FeePayerAuthenticator.VerifyMessage(message); nil != err {
		t.Errorf("fee payer proof: %s", err)
	}

	plain, _ := raw.SigningMessage()
	if nil == auth.Sender.VerifyMessage(plain) {
		t.Errorf("sender proof wrongly covers the plain message")
	}

	// full round trip of the submittable unit
	buffer, err := signed.Bytes()
	if nil != err {
		t.Fatalf("serialize error: %s", err)
	}
	decoded := transaction.SignedTransaction{}
	err = bcs.Deserialize(&decoded, buffer)
	if nil != err {
		t.Fatalf("deserialize error: %s", err)
	}
	decodedAuth := decoded.Authenticator.(*authenticator.FeePayerTxnAuthenticator)
	if payer.Address() != decodedAuth.FeePayerAddress {
		t.Errorf("decoded: wrong fee payer address")
	}
	if err := decodedAuth.Sender.VerifyMessage(message); nil != err {
		t.Errorf("decoded sender proof: %s", err)
	}
}
