// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bcs - canonical binary serialization
//
// implements the Binary Canonical Serialization format used on the
// Aptos wire: little-endian fixed-width integers, ULEB128
// variable-length integers for sequence lengths and variant tags,
// and length-prefixed byte vectors and UTF-8 strings
//
// the format is deterministic: one value has exactly one encoding,
// and decoding rejects truncated buffers and non-canonical ULEB128
// sequences instead of silently zero-padding
//
// buffers are local to one Serializer or Deserializer instance and
// must not be shared across concurrent encode or decode calls
package bcs
