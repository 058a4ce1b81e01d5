// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/ed25519"

	"github.com/aptoskit/aptoskit/bcs"
	"github.com/aptoskit/aptoskit/fault"
)

// PublicKeyLength - number of bytes in an ed25519 public key
const PublicKeyLength = ed25519.PublicKeySize

// Ed25519PublicKey - a 32 byte ed25519 public key
type Ed25519PublicKey [PublicKeyLength]byte

// NewEd25519PublicKey - create a public key from exactly 32 bytes
func NewEd25519PublicKey(buffer []byte) (Ed25519PublicKey, error) {
	var key Ed25519PublicKey
	if PublicKeyLength != len(buffer) {
		return key, fault.PublicKeyLength
	}
	copy(key[:], buffer)
	return key, nil
}

// Ed25519PublicKeyFromHex - create a public key from a hex string,
// 0x prefix optional
func Ed25519PublicKeyFromHex(s string) (Ed25519PublicKey, error) {
	var key Ed25519PublicKey
	buffer, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if nil != err {
		return key, fault.PublicKeyLength
	}
	return NewEd25519PublicKey(buffer)
}

// Bytes - the key as a fresh byte slice
func (key Ed25519PublicKey) Bytes() []byte {
	result := make([]byte, PublicKeyLength)
	copy(result, key[:])
	return result
}

// AuthKey - legacy scheme derivation: SHA3-256(key || 0x00)
func (key Ed25519PublicKey) AuthKey() AuthKey {
	return NewAuthKey(key[:], Ed25519Scheme)
}

// Address - the account address derived from this key
func (key Ed25519PublicKey) Address() AccountAddress {
	return key.AuthKey().Address()
}

// Verify - check an ed25519 signature over a message
func (key Ed25519PublicKey) Verify(message []byte, signature Signature) error {
	if !ed25519.Verify(key[:], message, signature[:]) {
		return fault.InvalidSignature
	}
	return nil
}

// String - 0x prefixed hex
func (key Ed25519PublicKey) String() string {
	return "0x" + hex.EncodeToString(key[:])
}

// MarshalText - for JSON output
func (key Ed25519PublicKey) MarshalText() ([]byte, error) {
	return []byte(key.String()), nil
}

// MarshalBCS - length-prefixed 32 bytes
func (key Ed25519PublicKey) MarshalBCS(s *bcs.Serializer) {
	s.Bytes(key[:])
}

// UnmarshalBCS - length-prefixed 32 bytes
func (key *Ed25519PublicKey) UnmarshalBCS(d *bcs.Deserializer) {
	buffer := d.Bytes()
	if nil == buffer {
		return
	}
	if PublicKeyLength != len(buffer) {
		d.Abort(fault.PublicKeyLength)
		return
	}
	copy(key[:], buffer)
}
