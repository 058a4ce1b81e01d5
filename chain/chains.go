// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - names and ids of the supported networks
package chain

// names of all chains
const (
	Mainnet = "mainnet"
	Testnet = "testnet"
	Devnet  = "devnet"
	Local   = "local"
)

// well known chain ids; devnet rotates its id on every reset so it
// has no constant here and must be fetched from a node
const (
	MainnetId = byte(1)
	TestnetId = byte(2)
	LocalId   = byte(4)
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Mainnet, Testnet, Devnet, Local:
		return true
	default:
		return false
	}
}

// Id - the fixed chain id of a named chain
//
// returns ok false for devnet and unknown names
func Id(name string) (byte, bool) {
	switch name {
	case Mainnet:
		return MainnetId, true
	case Testnet:
		return TestnetId, true
	case Local:
		return LocalId, true
	default:
		return 0, false
	}
}
