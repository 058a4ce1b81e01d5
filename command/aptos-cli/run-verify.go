// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/aptoskit/aptoskit/account"
)

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	pub, err := account.Ed25519PublicKeyFromHex(c.String("publickey"))
	if nil != err {
		return err
	}

	message, err := hex.DecodeString(strings.TrimPrefix(c.String("message"), "0x"))
	if nil != err {
		return fmt.Errorf("message is not hex: %s", err)
	}

	signature, err := account.SignatureFromHex(c.String("signature"))
	if nil != err {
		return err
	}

	err = pub.Verify(message, signature)
	printJson(m.w, struct {
		Verified bool `json:"verified"`
	}{
		Verified: nil == err,
	})
	if nil != err {
		return err
	}
	return nil
}
