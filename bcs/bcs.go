// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bcs

import (
	"github.com/aptoskit/aptoskit/fault"
)

// UlebMaximumBytes - maximum possible number of bytes in a ULEB128
// encoding of a 32 bit value
const UlebMaximumBytes = 5

// Marshaler - a type that can write itself to a Serializer
type Marshaler interface {
	MarshalBCS(s *Serializer)
}

// Unmarshaler - a type that can read itself from a Deserializer
type Unmarshaler interface {
	UnmarshalBCS(d *Deserializer)
}

// Serialize - encode a single value to its canonical bytes
func Serialize(m Marshaler) ([]byte, error) {
	s := Serializer{}
	m.MarshalBCS(&s)
	return s.Finish()
}

// Deserialize - decode a single value from a buffer
//
// the buffer must be wholly consumed; trailing bytes are an error
func Deserialize(u Unmarshaler, buffer []byte) error {
	d := NewDeserializer(buffer)
	u.UnmarshalBCS(d)
	if err := d.Error(); nil != err {
		return err
	}
	if 0 != d.Remaining() {
		return fault.ExcessBytes
	}
	return nil
}
