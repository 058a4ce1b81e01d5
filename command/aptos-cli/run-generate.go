// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/aptoskit/aptoskit/account"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	mnemonic := c.String("mnemonic")
	if "" == mnemonic {
		generated, err := account.GenerateMnemonic()
		if nil != err {
			return err
		}
		mnemonic = generated
	}

	path := account.DerivationPath(uint32(c.Uint("account")))

	if m.verbose {
		fmt.Fprintf(m.e, "derivation path: %s\n", path)
	}

	acct, err := account.Ed25519AccountFromMnemonic(mnemonic, path)
	if nil != err {
		return err
	}

	printJson(m.w, struct {
		Mnemonic   string `json:"mnemonic"`
		Path       string `json:"path"`
		PrivateKey string `json:"private_key"`
		PublicKey  string `json:"public_key"`
		Address    string `json:"address"`
	}{
		Mnemonic:   mnemonic,
		Path:       path,
		PrivateKey: "0x" + hex.EncodeToString(acct.PrivateKeySeed()),
		PublicKey:  "0x" + hex.EncodeToString(acct.PublicKeyBytes()),
		Address:    acct.Address().String(),
	})
	return nil
}
