// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/aptoskit/aptoskit/bcs"
	"github.com/aptoskit/aptoskit/fault"
)

// IdentityCommitmentLength - number of bytes in a keyless identity
// commitment
const IdentityCommitmentLength = 32

// KeylessPublicKey - an externally issued identity: an OIDC issuer
// plus a 32 byte commitment to the subject
//
// a keyless key carries no verification capability here; it only
// contributes to address derivation inside a MultiKey key set
type KeylessPublicKey struct {
	iss string
	idc [IdentityCommitmentLength]byte
}

// NewKeylessPublicKey - create a keyless key from an issuer string
// and a 32 byte identity commitment
func NewKeylessPublicKey(iss string, idc []byte) (*KeylessPublicKey, error) {
	if IdentityCommitmentLength != len(idc) {
		return nil, fault.IdentityCommitmentLength
	}
	key := &KeylessPublicKey{iss: iss}
	copy(key.idc[:], idc)
	return key, nil
}

// Iss - the issuer
func (key *KeylessPublicKey) Iss() string {
	return key.iss
}

// Idc - the identity commitment as a fresh byte slice
func (key *KeylessPublicKey) Idc() []byte {
	result := make([]byte, IdentityCommitmentLength)
	copy(result, key.idc[:])
	return result
}

// Bytes - the canonical BCS bytes of the key
func (key *KeylessPublicKey) Bytes() []byte {
	s := bcs.Serializer{}
	key.MarshalBCS(&s)
	buffer, _ := s.Finish()
	return buffer
}

// AuthKey - standalone derivation of a variant-wrapped key
func (key *KeylessPublicKey) AuthKey() AuthKey {
	s := bcs.Serializer{}
	AnyFromKeyless(key).MarshalBCS(&s)
	buffer, _ := s.Finish()
	return NewAuthKey(buffer, AnyKeyScheme)
}

// Verify - capability gap: a standalone keyless key cannot verify
func (key *KeylessPublicKey) Verify(message []byte, signature Signature) error {
	return fault.KeylessCannotVerify
}

// MarshalBCS - issuer string then length-prefixed commitment
func (key *KeylessPublicKey) MarshalBCS(s *bcs.Serializer) {
	s.String(key.iss)
	s.Bytes(key.idc[:])
}

// UnmarshalBCS - issuer string then length-prefixed commitment
func (key *KeylessPublicKey) UnmarshalBCS(d *bcs.Deserializer) {
	key.iss = d.String()
	buffer := d.Bytes()
	if nil == buffer {
		return
	}
	if IdentityCommitmentLength != len(buffer) {
		d.Abort(fault.IdentityCommitmentLength)
		return
	}
	copy(key.idc[:], buffer)
}
