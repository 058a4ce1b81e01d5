// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - envelopes that assemble payloads, accounts
// and authenticators into the final signable and submittable byte
// sequence
//
// the signable bytes are always a SHA3-256 domain separator digest
// followed by the BCS bytes of the envelope, so a signature over
// one envelope kind can never be replayed as another
package transaction
