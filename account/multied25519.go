// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/aptoskit/aptoskit/bcs"
	"github.com/aptoskit/aptoskit/fault"
)

// MultiEd25519PublicKey - an M of N threshold set of ed25519 keys
//
// key order is semantically significant: it decides signer indexes
// and therefore the derived address; it is never reordered
type MultiEd25519PublicKey struct {
	keys      []Ed25519PublicKey
	threshold byte
}

// NewMultiEd25519PublicKey - create a validated threshold key set
//
// requires a non-empty key list of at most 32 keys and
// 1 <= threshold <= N
func NewMultiEd25519PublicKey(keys []Ed25519PublicKey, threshold byte) (*MultiEd25519PublicKey, error) {
	if 0 == len(keys) {
		return nil, fault.EmptyKeyList
	}
	if len(keys) > MaxSigners {
		return nil, fault.TooManyKeys
	}
	if threshold < 1 || int(threshold) > len(keys) {
		return nil, fault.ThresholdOutOfRange
	}
	pub := &MultiEd25519PublicKey{
		keys:      make([]Ed25519PublicKey, len(keys)),
		threshold: threshold,
	}
	copy(pub.keys, keys)
	return pub, nil
}

// MultiEd25519PublicKeyFromBytes - decode the raw concatenated form
// concat(key_1 .. key_n, threshold)
func MultiEd25519PublicKeyFromBytes(buffer []byte) (*MultiEd25519PublicKey, error) {
	if len(buffer) < PublicKeyLength+1 || 1 != len(buffer)%PublicKeyLength {
		return nil, fault.PublicKeyLength
	}
	n := len(buffer) / PublicKeyLength
	keys := make([]Ed25519PublicKey, n)
	for i := 0; i < n; i += 1 {
		copy(keys[i][:], buffer[i*PublicKeyLength:])
	}
	return NewMultiEd25519PublicKey(keys, buffer[len(buffer)-1])
}

// Keys - the key list as a fresh slice
func (pub *MultiEd25519PublicKey) Keys() []Ed25519PublicKey {
	result := make([]Ed25519PublicKey, len(pub.keys))
	copy(result, pub.keys)
	return result
}

// Threshold - minimum number of signatures required
func (pub *MultiEd25519PublicKey) Threshold() byte {
	return pub.threshold
}

// IndexOf - position of a key inside the set; exact match required
func (pub *MultiEd25519PublicKey) IndexOf(key Ed25519PublicKey) (int, error) {
	for i, k := range pub.keys {
		if k == key {
			return i, nil
		}
	}
	return 0, fault.SignerKeyNotFound
}

// Bytes - the raw concatenated form: all keys then the threshold
// byte
func (pub *MultiEd25519PublicKey) Bytes() []byte {
	result := make([]byte, 0, len(pub.keys)*PublicKeyLength+1)
	for _, key := range pub.keys {
		result = append(result, key[:]...)
	}
	return append(result, pub.threshold)
}

// AuthKey - SHA3-256(concat(keys, threshold) || 0x01)
func (pub *MultiEd25519PublicKey) AuthKey() AuthKey {
	return NewAuthKey(pub.Bytes(), MultiEd25519Scheme)
}

// Address - the account address derived from this key set
func (pub *MultiEd25519PublicKey) Address() AccountAddress {
	return pub.AuthKey().Address()
}

// Verify - check that every signature in the bundle matches the key
// its bitmap bit names and that the threshold is met
func (pub *MultiEd25519PublicKey) Verify(message []byte, signature *MultiEd25519Signature) error {
	indexes := make([]int, 0, len(signature.signatures))
	for i := 0; i < MaxSigners; i += 1 {
		if signature.bitmap.Contains(i) {
			indexes = append(indexes, i)
		}
	}
	if len(indexes) != len(signature.signatures) {
		return fault.InvalidSignature
	}
	for j, i := range indexes {
		if i >= len(pub.keys) {
			return fault.InvalidSignature
		}
		if err := pub.keys[i].Verify(message, signature.signatures[j]); nil != err {
			return err
		}
	}
	return nil
}

// MarshalBCS - the whole concatenated form as one length-prefixed
// blob
func (pub *MultiEd25519PublicKey) MarshalBCS(s *bcs.Serializer) {
	s.Bytes(pub.Bytes())
}

// UnmarshalBCS - one length-prefixed blob
func (pub *MultiEd25519PublicKey) UnmarshalBCS(d *bcs.Deserializer) {
	buffer := d.Bytes()
	if nil == buffer {
		return
	}
	decoded, err := MultiEd25519PublicKeyFromBytes(buffer)
	if nil != err {
		d.Abort(err)
		return
	}
	*pub = *decoded
}

// MultiEd25519Signature - N signatures plus the 4 byte signer
// bitmap
type MultiEd25519Signature struct {
	signatures []Signature
	bitmap     Bitmap
}

// NewMultiEd25519Signature - bundle signatures with their bitmap
//
// signature order must follow ascending bitmap index
func NewMultiEd25519Signature(signatures []Signature, bitmap Bitmap) *MultiEd25519Signature {
	result := &MultiEd25519Signature{
		signatures: make([]Signature, len(signatures)),
		bitmap:     bitmap,
	}
	copy(result.signatures, signatures)
	return result
}

// MultiEd25519SignatureFromBytes - decode the raw concatenated form
// concat(sig_1 .. sig_n, bitmap)
func MultiEd25519SignatureFromBytes(buffer []byte) (*MultiEd25519Signature, error) {
	if len(buffer) < BitmapLength || BitmapLength != len(buffer)%SignatureLength {
		return nil, fault.SignatureLength
	}
	n := len(buffer) / SignatureLength
	signatures := make([]Signature, n)
	for i := 0; i < n; i += 1 {
		copy(signatures[i][:], buffer[i*SignatureLength:])
	}
	bitmap, err := BitmapFromBytes(buffer[n*SignatureLength:])
	if nil != err {
		return nil, err
	}
	return &MultiEd25519Signature{signatures: signatures, bitmap: bitmap}, nil
}

// Signatures - the signature list as a fresh slice
func (sig *MultiEd25519Signature) Signatures() []Signature {
	result := make([]Signature, len(sig.signatures))
	copy(result, sig.signatures)
	return result
}

// Bitmap - the signer bitmap
func (sig *MultiEd25519Signature) Bitmap() Bitmap {
	return sig.bitmap
}

// Bytes - the raw concatenated form: all signatures then the bitmap
func (sig *MultiEd25519Signature) Bytes() []byte {
	result := make([]byte, 0, len(sig.signatures)*SignatureLength+BitmapLength)
	for _, signature := range sig.signatures {
		result = append(result, signature[:]...)
	}
	return append(result, sig.bitmap[:]...)
}

// MarshalBCS - the whole concatenated form as one length-prefixed
// blob
func (sig *MultiEd25519Signature) MarshalBCS(s *bcs.Serializer) {
	s.Bytes(sig.Bytes())
}

// UnmarshalBCS - one length-prefixed blob
func (sig *MultiEd25519Signature) UnmarshalBCS(d *bcs.Deserializer) {
	buffer := d.Bytes()
	if nil == buffer {
		return
	}
	decoded, err := MultiEd25519SignatureFromBytes(buffer)
	if nil != err {
		d.Abort(err)
		return
	}
	*sig = *decoded
}
