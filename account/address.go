// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"
	"strings"

	"github.com/aptoskit/aptoskit/bcs"
	"github.com/aptoskit/aptoskit/fault"
)

// AddressLength - number of bytes in an account address
const AddressLength = 32

// AccountAddress - an on-chain account address
//
// numerically identical to the account's authentication key; never
// mutated after construction, equality is by byte content
type AccountAddress [AddressLength]byte

// ZeroAddress - the distinguished all-zero address
var ZeroAddress = AccountAddress{}

// AddressFromBytes - create an address from exactly 32 bytes
func AddressFromBytes(buffer []byte) (AccountAddress, error) {
	var address AccountAddress
	if AddressLength != len(buffer) {
		return address, fault.AddressLength
	}
	copy(address[:], buffer)
	return address, nil
}

// AddressFromHex - create an address from a hex string
//
// accepts the 0x prefixed and bare forms; short strings are
// left-padded with zeros so special addresses like "0x1" decode
func AddressFromHex(s string) (AccountAddress, error) {
	var address AccountAddress

	s = strings.TrimPrefix(s, "0x")
	if 0 == len(s) || len(s) > 2*AddressLength {
		return address, fault.CannotDecodeAddress
	}
	if 1 == len(s)%2 {
		s = "0" + s
	}

	buffer, err := hex.DecodeString(s)
	if nil != err {
		return address, fault.CannotDecodeAddress
	}
	copy(address[AddressLength-len(buffer):], buffer)
	return address, nil
}

// Bytes - the address as a fresh byte slice
func (address AccountAddress) Bytes() []byte {
	result := make([]byte, AddressLength)
	copy(result, address[:])
	return result
}

// IsSpecial - true for the reserved low addresses 0x0 to 0xf
func (address AccountAddress) IsSpecial() bool {
	for _, b := range address[:AddressLength-1] {
		if 0 != b {
			return false
		}
	}
	return address[AddressLength-1] < 0x10
}

// String - AIP-40 display form
//
// special addresses print short ("0x1"), all others as the full 64
// hex digits
func (address AccountAddress) String() string {
	if address.IsSpecial() {
		return "0x" + hex.EncodeToString(address[AddressLength-1:])[1:]
	}
	return "0x" + hex.EncodeToString(address[:])
}

// MarshalText - for JSON output
func (address AccountAddress) MarshalText() ([]byte, error) {
	return []byte(address.String()), nil
}

// UnmarshalText - from JSON input
func (address *AccountAddress) UnmarshalText(s []byte) error {
	a, err := AddressFromHex(string(s))
	if nil != err {
		return err
	}
	*address = a
	return nil
}

// MarshalBCS - raw 32 bytes, no length prefix
func (address AccountAddress) MarshalBCS(s *bcs.Serializer) {
	s.FixedBytes(address[:])
}

// UnmarshalBCS - raw 32 bytes, no length prefix
func (address *AccountAddress) UnmarshalBCS(d *bcs.Deserializer) {
	buffer := d.FixedBytes(AddressLength)
	if nil != buffer {
		copy(address[:], buffer)
	}
}
