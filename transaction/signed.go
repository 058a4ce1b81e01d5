// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/aptoskit/aptoskit/account"
	"github.com/aptoskit/aptoskit/authenticator"
	"github.com/aptoskit/aptoskit/bcs"
)

// SignedTransaction - the submittable unit: the raw transaction plus
// the transaction level authenticator proving every required party
// signed it
type SignedTransaction struct {
	Raw           RawTransaction
	Authenticator authenticator.TransactionAuthenticator
}

// MarshalBCS - the raw transaction then the authenticator
func (signed *SignedTransaction) MarshalBCS(s *bcs.Serializer) {
	s.Struct(&signed.Raw)
	s.Struct(signed.Authenticator)
}

// UnmarshalBCS - the same field order
func (signed *SignedTransaction) UnmarshalBCS(d *bcs.Deserializer) {
	d.Struct(&signed.Raw)
	signed.Authenticator = authenticator.DeserializeTransactionAuthenticator(d)
}

// Bytes - the canonical BCS bytes ready for submission
func (signed *SignedTransaction) Bytes() ([]byte, error) {
	return bcs.Serialize(signed)
}

// Sign - produce a submittable transaction for a single sending
// account; the wrapping rules follow the account's concrete variant
func Sign(acct account.Account, raw RawTransaction) (*SignedTransaction, error) {
	message, err := raw.SigningMessage()
	if nil != err {
		return nil, err
	}
	auth, err := authenticator.ForTransaction(acct, message)
	if nil != err {
		return nil, err
	}
	return &SignedTransaction{
		Raw:           raw,
		Authenticator: auth,
	}, nil
}

// SignMultiAgent - produce a submittable transaction carrying a
// sender and secondary signers; every party signs the multi agent
// envelope, not the inner raw transaction
func SignMultiAgent(sender account.Account, secondaries []account.Account, raw RawTransaction) (*SignedTransaction, error) {

	ma := MultiAgentRawTransaction{
		Raw:              raw,
		SecondarySigners: make([]account.AccountAddress, len(secondaries)),
	}
	for i, secondary := range secondaries {
		ma.SecondarySigners[i] = secondary.Address()
	}

	message, err := ma.SigningMessage()
	if nil != err {
		return nil, err
	}

	senderAuth, err := authenticator.ForAccount(sender, message)
	if nil != err {
		return nil, err
	}
	secondaryAuths := make([]authenticator.AccountAuthenticator, len(secondaries))
	for i, secondary := range secondaries {
		secondaryAuths[i], err = authenticator.ForAccount(secondary, message)
		if nil != err {
			return nil, err
		}
	}

	return &SignedTransaction{
		Raw: raw,
		Authenticator: &authenticator.MultiAgentTxnAuthenticator{
			Sender:                  senderAuth,
			SecondaryAddresses:      ma.SecondarySigners,
			SecondaryAuthenticators: secondaryAuths,
		},
	}, nil
}

// SignFeePayer - produce a submittable transaction whose gas is paid
// by a third party; sender, secondaries and fee payer all sign the
// fee payer envelope
func SignFeePayer(sender account.Account, secondaries []account.Account, feePayer account.Account, raw RawTransaction) (*SignedTransaction, error) {

	fp := FeePayerRawTransaction{
		Raw:              raw,
		SecondarySigners: make([]account.AccountAddress, len(secondaries)),
		FeePayer:         feePayer.Address(),
	}
	for i, secondary := range secondaries {
		fp.SecondarySigners[i] = secondary.Address()
	}

	message, err := fp.SigningMessage()
	if nil != err {
		return nil, err
	}

	senderAuth, err := authenticator.ForAccount(sender, message)
	if nil != err {
		return nil, err
	}
	secondaryAuths := make([]authenticator.AccountAuthenticator, len(secondaries))
	for i, secondary := range secondaries {
		secondaryAuths[i], err = authenticator.ForAccount(secondary, message)
		if nil != err {
			return nil, err
		}
	}
	feePayerAuth, err := authenticator.ForAccount(feePayer, message)
	if nil != err {
		return nil, err
	}

	return &SignedTransaction{
		Raw: raw,
		Authenticator: &authenticator.FeePayerTxnAuthenticator{
			Sender:                  senderAuth,
			SecondaryAddresses:      fp.SecondarySigners,
			SecondaryAuthenticators: secondaryAuths,
			FeePayerAddress:         fp.FeePayer,
			FeePayerAuthenticator:   feePayerAuth,
		},
	}, nil
}
