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

// SignatureLength - number of bytes in an ed25519 signature
const SignatureLength = ed25519.SignatureSize

// Signature - a single 64 byte ed25519 signature
type Signature [SignatureLength]byte

// NewSignature - create a signature from exactly 64 bytes
func NewSignature(buffer []byte) (Signature, error) {
	var signature Signature
	if SignatureLength != len(buffer) {
		return signature, fault.SignatureLength
	}
	copy(signature[:], buffer)
	return signature, nil
}

// SignatureFromHex - create a signature from a hex string, 0x
// prefix optional
func SignatureFromHex(s string) (Signature, error) {
	var signature Signature
	buffer, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if nil != err {
		return signature, fault.CannotDecodeSignature
	}
	return NewSignature(buffer)
}

// Bytes - the signature as a fresh byte slice
func (signature Signature) Bytes() []byte {
	result := make([]byte, SignatureLength)
	copy(result, signature[:])
	return result
}

// String - 0x prefixed hex
func (signature Signature) String() string {
	return "0x" + hex.EncodeToString(signature[:])
}

// MarshalText - for JSON output
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(signature.String()), nil
}

// MarshalBCS - length-prefixed 64 bytes
func (signature Signature) MarshalBCS(s *bcs.Serializer) {
	s.Bytes(signature[:])
}

// UnmarshalBCS - length-prefixed 64 bytes
func (signature *Signature) UnmarshalBCS(d *bcs.Deserializer) {
	buffer := d.Bytes()
	if nil == buffer {
		return
	}
	if SignatureLength != len(buffer) {
		d.Abort(fault.SignatureLength)
		return
	}
	copy(signature[:], buffer)
}

// enumeration of AnySignature variants
const (
	AnyEd25519SignatureVariant = uint32(0)
	// end of list (one greater than last item)
	anySignatureVariantLimit = uint32(iota)
)

// AnySignature - variant-tagged signature wrapper used by MultiKey
// and SingleKey authenticators
type AnySignature struct {
	ed25519 Signature
}

// AnySignatureFromEd25519 - wrap an ed25519 signature
func AnySignatureFromEd25519(signature Signature) AnySignature {
	return AnySignature{ed25519: signature}
}

// Variant - the ULEB128 discriminant
func (a AnySignature) Variant() uint32 {
	return AnyEd25519SignatureVariant
}

// Ed25519 - the wrapped signature
func (a AnySignature) Ed25519() Signature {
	return a.ed25519
}

// MarshalBCS - ULEB128 variant tag then the length-prefixed 64 byte
// signature
func (a AnySignature) MarshalBCS(s *bcs.Serializer) {
	s.Uleb128(AnyEd25519SignatureVariant)
	s.Struct(a.ed25519)
}

// UnmarshalBCS - variant tag then signature; only ed25519 is in the
// closed set
func (a *AnySignature) UnmarshalBCS(d *bcs.Deserializer) {
	variant := d.Uleb128()
	if nil != d.Error() {
		return
	}
	switch variant {
	case AnyEd25519SignatureVariant:
		d.Struct(&a.ed25519)
	default:
		d.Abort(fault.UnsupportedSignatureVariant)
	}
}
