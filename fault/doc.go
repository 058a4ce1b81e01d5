// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison;
// the classes correspond to: malformed input and unsupported
// variants (InvalidError), missing keys (NotFoundError) and decode
// truncation or remote boundary failures (ProcessError).
package fault
