// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - keys, addresses and signing identities
//
// an on-chain address is the SHA3-256 digest of a public key, or of
// a serialized key set, followed by a one byte signature scheme
// tag; this package holds the fixed-length value types, the scheme
// tagged derivation, and the account variants that share the same
// signing contract:
//
//	Ed25519Account      - single key, legacy scheme
//	SingleKeyAccount    - single key, modern wrapping, same address
//	MultiEd25519Account - M of N ed25519 keys
//	MultiKeyAccount     - M of N variant-tagged keys
//
// accounts are immutable once constructed and safe for concurrent
// readers; the address is derived once at construction and cached
package account
