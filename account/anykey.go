// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/aptoskit/aptoskit/bcs"
	"github.com/aptoskit/aptoskit/fault"
)

// enumeration of AnyPublicKey variants
//
// the gap covers the secp256k1/secp256r1 variants of the wider
// protocol which are outside this closed set; decoding their tags
// is refused
const (
	AnyEd25519KeyVariant = uint32(0)
	AnyKeylessKeyVariant = uint32(3)
)

// AnyPublicKey - variant-tagged wrapper allowing a MultiKey key set
// to mix heterogeneous key types
//
// exactly one of the inner keys is present
type AnyPublicKey struct {
	ed25519 *Ed25519PublicKey
	keyless *KeylessPublicKey
}

// AnyFromEd25519 - wrap an ed25519 public key
func AnyFromEd25519(key Ed25519PublicKey) AnyPublicKey {
	return AnyPublicKey{ed25519: &key}
}

// AnyFromKeyless - wrap a keyless public key
func AnyFromKeyless(key *KeylessPublicKey) AnyPublicKey {
	return AnyPublicKey{keyless: key}
}

// Variant - the ULEB128 discriminant
func (a AnyPublicKey) Variant() uint32 {
	if nil != a.keyless {
		return AnyKeylessKeyVariant
	}
	return AnyEd25519KeyVariant
}

// Ed25519 - the wrapped ed25519 key, if that is the variant
func (a AnyPublicKey) Ed25519() (Ed25519PublicKey, bool) {
	if nil == a.ed25519 {
		return Ed25519PublicKey{}, false
	}
	return *a.ed25519, true
}

// Keyless - the wrapped keyless key, if that is the variant
func (a AnyPublicKey) Keyless() (*KeylessPublicKey, bool) {
	if nil == a.keyless {
		return nil, false
	}
	return a.keyless, true
}

// Verify - check a signature with the wrapped key
//
// keyless keys cannot verify; that is a capability gap, not a
// bad signature
func (a AnyPublicKey) Verify(message []byte, signature AnySignature) error {
	if nil != a.keyless {
		return fault.KeylessCannotVerify
	}
	if nil == a.ed25519 {
		return fault.UnsupportedKeyVariant
	}
	return a.ed25519.Verify(message, signature.Ed25519())
}

// Equal - compare by canonical bytes, variant included
func (a AnyPublicKey) Equal(b AnyPublicKey) bool {
	return bytes.Equal(a.bcsBytes(), b.bcsBytes())
}

func (a AnyPublicKey) bcsBytes() []byte {
	s := bcs.Serializer{}
	a.MarshalBCS(&s)
	buffer, _ := s.Finish()
	return buffer
}

// MarshalBCS - ULEB128 variant tag then the inner key's own BCS
// bytes
func (a AnyPublicKey) MarshalBCS(s *bcs.Serializer) {
	switch {
	case nil != a.keyless:
		s.Uleb128(AnyKeylessKeyVariant)
		s.Struct(a.keyless)
	case nil != a.ed25519:
		s.Uleb128(AnyEd25519KeyVariant)
		s.Struct(*a.ed25519)
	default:
		s.Abort(fault.UnsupportedKeyVariant)
	}
}

// UnmarshalBCS - variant tag then the inner key
func (a *AnyPublicKey) UnmarshalBCS(d *bcs.Deserializer) {
	variant := d.Uleb128()
	if nil != d.Error() {
		return
	}
	switch variant {
	case AnyEd25519KeyVariant:
		key := Ed25519PublicKey{}
		d.Struct(&key)
		a.ed25519 = &key
		a.keyless = nil
	case AnyKeylessKeyVariant:
		key := KeylessPublicKey{}
		d.Struct(&key)
		a.keyless = &key
		a.ed25519 = nil
	default:
		d.Abort(fault.UnsupportedKeyVariant)
	}
}
