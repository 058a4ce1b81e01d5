// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// AuthKeyLength - number of bytes in an authentication key
const AuthKeyLength = 32

// enumeration of the signature scheme tags appended to the hashed
// payload during authentication key derivation
//
// this table is a public interop contract: other implementations of
// the protocol must reproduce the same bytes
const (
	// Ed25519Scheme - raw 32 byte public key
	Ed25519Scheme = byte(0)

	// MultiEd25519Scheme - concat(publicKeys..., threshold)
	MultiEd25519Scheme = byte(1)

	// AnyKeyScheme - one variant-tagged key in its BCS form
	AnyKeyScheme = byte(2)

	// MultiKeyScheme - BCS vector of variant-tagged keys plus the
	// threshold byte
	MultiKeyScheme = byte(3)

	// SingleKeyScheme - the modern single ed25519 account derives
	// the same address as the legacy scheme
	SingleKeyScheme = Ed25519Scheme
)

// AuthKey - authentication key of an account
//
// always SHA3-256(payload || schemeByte); an account address is
// numerically identical to its authentication key bytes
type AuthKey [AuthKeyLength]byte

// NewAuthKey - derive an authentication key from a scheme payload
// and its scheme tag
func NewAuthKey(payload []byte, scheme byte) AuthKey {
	h := sha3.New256()
	h.Write(payload)
	h.Write([]byte{scheme})

	var key AuthKey
	copy(key[:], h.Sum(nil))
	return key
}

// Address - the account address equal to this authentication key
func (key AuthKey) Address() AccountAddress {
	return AccountAddress(key)
}

// Bytes - the key as a fresh byte slice
func (key AuthKey) Bytes() []byte {
	result := make([]byte, AuthKeyLength)
	copy(result, key[:])
	return result
}

// String - 0x prefixed hex
func (key AuthKey) String() string {
	return "0x" + hex.EncodeToString(key[:])
}

// MarshalText - for JSON output
func (key AuthKey) MarshalText() ([]byte, error) {
	return []byte(key.String()), nil
}
