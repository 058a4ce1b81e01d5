// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/aptoskit/aptoskit/bcs"
	"github.com/aptoskit/aptoskit/fault"
)

// MultiKeyPublicKey - an M of N threshold set over variant-tagged
// keys, so ed25519 and keyless identities can share one account
//
// key order is semantically significant and never reordered
type MultiKeyPublicKey struct {
	keys      []AnyPublicKey
	threshold byte
}

// NewMultiKeyPublicKey - create a validated mixed key set
//
// requires a non-empty key list of at most 32 keys and
// 1 <= threshold <= N
func NewMultiKeyPublicKey(keys []AnyPublicKey, threshold byte) (*MultiKeyPublicKey, error) {
	if 0 == len(keys) {
		return nil, fault.EmptyKeyList
	}
	if len(keys) > MaxSigners {
		return nil, fault.TooManyKeys
	}
	if threshold < 1 || int(threshold) > len(keys) {
		return nil, fault.ThresholdOutOfRange
	}
	pub := &MultiKeyPublicKey{
		keys:      make([]AnyPublicKey, len(keys)),
		threshold: threshold,
	}
	copy(pub.keys, keys)
	return pub, nil
}

// Keys - the key list as a fresh slice
func (pub *MultiKeyPublicKey) Keys() []AnyPublicKey {
	result := make([]AnyPublicKey, len(pub.keys))
	copy(result, pub.keys)
	return result
}

// Threshold - minimum number of signatures required
func (pub *MultiKeyPublicKey) Threshold() byte {
	return pub.threshold
}

// IndexOf - position of a key inside the set; exact match required
func (pub *MultiKeyPublicKey) IndexOf(key AnyPublicKey) (int, error) {
	for i, k := range pub.keys {
		if k.Equal(key) {
			return i, nil
		}
	}
	return 0, fault.SignerKeyNotFound
}

// Bytes - the canonical BCS bytes of the key set
func (pub *MultiKeyPublicKey) Bytes() []byte {
	s := bcs.Serializer{}
	pub.MarshalBCS(&s)
	buffer, _ := s.Finish()
	return buffer
}

// AuthKey - SHA3-256(BCS(vector<AnyPublicKey>) || threshold || 0x03)
//
// identical key sets in identical order always derive the same key
func (pub *MultiKeyPublicKey) AuthKey() AuthKey {
	return NewAuthKey(pub.Bytes(), MultiKeyScheme)
}

// Address - the account address derived from this key set
func (pub *MultiKeyPublicKey) Address() AccountAddress {
	return pub.AuthKey().Address()
}

// Verify - check that every signature in the bundle matches the key
// its bitmap bit names
func (pub *MultiKeyPublicKey) Verify(message []byte, signature *MultiKeySignature) error {
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

// MarshalBCS - vector<AnyPublicKey> then the threshold byte
func (pub *MultiKeyPublicKey) MarshalBCS(s *bcs.Serializer) {
	s.SequenceLength(len(pub.keys))
	for _, key := range pub.keys {
		s.Struct(key)
	}
	s.U8(pub.threshold)
}

// UnmarshalBCS - vector<AnyPublicKey> then the threshold byte
func (pub *MultiKeyPublicKey) UnmarshalBCS(d *bcs.Deserializer) {
	n := d.SequenceLength()
	if nil != d.Error() {
		return
	}
	keys := make([]AnyPublicKey, 0, n)
	for i := 0; i < n; i += 1 {
		key := AnyPublicKey{}
		d.Struct(&key)
		if nil != d.Error() {
			return
		}
		keys = append(keys, key)
	}
	threshold := d.U8()
	if nil != d.Error() {
		return
	}
	decoded, err := NewMultiKeyPublicKey(keys, threshold)
	if nil != err {
		d.Abort(err)
		return
	}
	*pub = *decoded
}

// MultiKeySignature - variant-tagged signatures plus the 4 byte
// signer bitmap
type MultiKeySignature struct {
	signatures []AnySignature
	bitmap     Bitmap
}

// NewMultiKeySignature - bundle signatures with their bitmap
//
// signature order must follow ascending bitmap index
func NewMultiKeySignature(signatures []AnySignature, bitmap Bitmap) *MultiKeySignature {
	result := &MultiKeySignature{
		signatures: make([]AnySignature, len(signatures)),
		bitmap:     bitmap,
	}
	copy(result.signatures, signatures)
	return result
}

// Signatures - the signature list as a fresh slice
func (sig *MultiKeySignature) Signatures() []AnySignature {
	result := make([]AnySignature, len(sig.signatures))
	copy(result, sig.signatures)
	return result
}

// Bitmap - the signer bitmap
func (sig *MultiKeySignature) Bitmap() Bitmap {
	return sig.bitmap
}

// MarshalBCS - vector<AnySignature> then the bitmap as a
// length-prefixed 4 byte vector
func (sig *MultiKeySignature) MarshalBCS(s *bcs.Serializer) {
	s.SequenceLength(len(sig.signatures))
	for _, signature := range sig.signatures {
		s.Struct(signature)
	}
	s.Bytes(sig.bitmap[:])
}

// UnmarshalBCS - vector<AnySignature> then the length-prefixed
// bitmap
func (sig *MultiKeySignature) UnmarshalBCS(d *bcs.Deserializer) {
	n := d.SequenceLength()
	if nil != d.Error() {
		return
	}
	signatures := make([]AnySignature, 0, n)
	for i := 0; i < n; i += 1 {
		signature := AnySignature{}
		d.Struct(&signature)
		if nil != d.Error() {
			return
		}
		signatures = append(signatures, signature)
	}
	buffer := d.Bytes()
	if nil == buffer {
		return
	}
	bitmap, err := BitmapFromBytes(buffer)
	if nil != err {
		d.Abort(err)
		return
	}
	sig.signatures = signatures
	sig.bitmap = bitmap
}
