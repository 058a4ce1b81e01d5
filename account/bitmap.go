// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/aptoskit/aptoskit/fault"
)

// BitmapLength - number of bytes in a signer bitmap
const BitmapLength = 4

// MaxSigners - one bit per signer slot in the bitmap
const MaxSigners = 8 * BitmapLength

// Bitmap - marks which of up to 32 registered keys contributed a
// signature
//
// bit 0 is the most significant bit of byte 0, i.e. MSB-first per
// byte
type Bitmap [BitmapLength]byte

// NewBitmap - build a bitmap from signer indexes
//
// indexes must be strictly increasing and each in [0, 32); both
// conditions are construction-time failures
func NewBitmap(indexes []int) (Bitmap, error) {
	var bitmap Bitmap

	previous := -1
	for _, index := range indexes {
		if index < 0 || index >= MaxSigners {
			return Bitmap{}, fault.BitmapIndexOutOfRange
		}
		if index <= previous {
			return Bitmap{}, fault.BitmapIndexNotAscending
		}
		previous = index
		bitmap[index/8] |= 0x80 >> uint(index%8)
	}
	return bitmap, nil
}

// BitmapFromBytes - create a bitmap from exactly 4 bytes
func BitmapFromBytes(buffer []byte) (Bitmap, error) {
	var bitmap Bitmap
	if BitmapLength != len(buffer) {
		return bitmap, fault.BitmapLength
	}
	copy(bitmap[:], buffer)
	return bitmap, nil
}

// Bytes - the bitmap as a fresh byte slice
func (bitmap Bitmap) Bytes() []byte {
	result := make([]byte, BitmapLength)
	copy(result, bitmap[:])
	return result
}

// Contains - true if the bit for a signer index is set
func (bitmap Bitmap) Contains(index int) bool {
	if index < 0 || index >= MaxSigners {
		return false
	}
	return 0 != bitmap[index/8]&(0x80>>uint(index%8))
}

// Count - number of set bits
func (bitmap Bitmap) Count() int {
	n := 0
	for i := 0; i < MaxSigners; i += 1 {
		if bitmap.Contains(i) {
			n += 1
		}
	}
	return n
}
