// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"testing"

	"github.com/aptoskit/aptoskit/account"
	"github.com/aptoskit/aptoskit/bcs"
	"github.com/aptoskit/aptoskit/fault"
)

// test the hex decode and AIP-40 display forms
func TestAddressFromHex(t *testing.T) {

	testData := []struct {
		in       string
		display  string
		special  bool
	}{
		{
			in:      "0x1",
			display: "0x1",
			special: true,
		},
		{
			in:      "0x01",
			display: "0x1",
			special: true,
		},
		{
			in:      "0x0",
			display: "0x0",
			special: true,
		},
		{
			in:      "0xf",
			display: "0xf",
			special: true,
		},
		{
			in:      "0x10",
			display: "0x0000000000000000000000000000000000000000000000000000000000000010",
			special: false,
		},
		{
			in:      "0x07968dab936c1bad187c60ce4082f307d030d780e91e694ae03aef16aba73f30",
			display: "0x07968dab936c1bad187c60ce4082f307d030d780e91e694ae03aef16aba73f30",
			special: false,
		},
		{
			in:      "7968dab936c1bad187c60ce4082f307d030d780e91e694ae03aef16aba73f30",
			display: "0x07968dab936c1bad187c60ce4082f307d030d780e91e694ae03aef16aba73f30",
			special: false,
		},
	}

	for i, item := range testData {
		address, err := account.AddressFromHex(item.in)
		if nil != err {
			t.Fatalf("%d: unexpected error: %s", i, err)
		}
		if item.display != address.String() {
			t.Errorf("%d: display: actual: %q  expected: %q", i, address.String(), item.display)
		}
		if item.special != address.IsSpecial() {
			t.Errorf("%d: special: actual: %t  expected: %t", i, address.IsSpecial(), item.special)
		}
	}
}

func TestAddressFromHexFail(t *testing.T) {

	testData := []string{
		"",
		"0x",
		"0xzz",
		"not hex at all",
		"0x0000000000000000000000000000000000000000000000000000000000000000ff", // 33 bytes
	}

	for i, item := range testData {
		_, err := account.AddressFromHex(item)
		if fault.CannotDecodeAddress != err {
			t.Errorf("%d: %q: actual: %v  expected: %v", i, item, err, fault.CannotDecodeAddress)
		}
	}
}

func TestAddressFromBytes(t *testing.T) {
	buffer := make([]byte, account.AddressLength)
	buffer[31] = 0x42

	address, err := account.AddressFromBytes(buffer)
	if nil != err {
		t.Fatalf("unexpected error: %s", err)
	}
	if "0x0000000000000000000000000000000000000000000000000000000000000042" != address.String() {
		t.Errorf("wrong address: %s", address.String())
	}

	_, err = account.AddressFromBytes(buffer[:31])
	if fault.AddressLength != err {
		t.Errorf("short buffer: actual: %v  expected: %v", err, fault.AddressLength)
	}
}

// an address travels as raw 32 bytes, no length prefix
func TestAddressBCS(t *testing.T) {
	address, err := account.AddressFromHex("0xcafe")
	if nil != err {
		t.Fatalf("unexpected error: %s", err)
	}

	buffer, err := bcs.Serialize(address)
	if nil != err {
		t.Fatalf("serialize error: %s", err)
	}
	if account.AddressLength != len(buffer) {
		t.Fatalf("wrong length: actual: %d  expected: %d", len(buffer), account.AddressLength)
	}

	decoded := account.AccountAddress{}
	err = bcs.Deserialize(&decoded, buffer)
	if nil != err {
		t.Fatalf("deserialize error: %s", err)
	}
	if address != decoded {
		t.Errorf("round trip mismatch: actual: %s  expected: %s", decoded.String(), address.String())
	}
}

func TestAddressText(t *testing.T) {
	address, _ := account.AddressFromHex("0x1")

	text, err := address.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	if "0x1" != string(text) {
		t.Errorf("wrong text: %q", text)
	}

	decoded := account.AccountAddress{}
	err = decoded.UnmarshalText(text)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if address != decoded {
		t.Errorf("round trip mismatch: %s", decoded.String())
	}
}
