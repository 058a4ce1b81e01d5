// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package authenticator - tagged union wire formats that accompany
// a signed transaction
//
// an account authenticator proves one account authorized a
// transaction; a transaction authenticator is the top level wrapper
// stored in the signed transaction and selects how the account
// level proofs are arranged (plain, fee payer, single sender)
//
// tag values are a wire contract; see the variant constants
package authenticator
