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

func runSign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	privateKey := c.String("privatekey")
	if "" == privateKey {
		return fmt.Errorf("missing private key")
	}

	message, err := hex.DecodeString(strings.TrimPrefix(c.String("message"), "0x"))
	if nil != err {
		return fmt.Errorf("message is not hex: %s", err)
	}

	acct, err := account.Ed25519AccountFromHex(privateKey)
	if nil != err {
		return err
	}

	signature := acct.Sign(message)

	printJson(m.w, struct {
		PublicKey string `json:"public_key"`
		Signature string `json:"signature"`
	}{
		PublicKey: "0x" + hex.EncodeToString(acct.PublicKeyBytes()),
		Signature: signature.String(),
	})
	return nil
}
