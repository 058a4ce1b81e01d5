// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/aptoskit/aptoskit/account"
)

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	publicKey := c.String("publickey")
	if "" == publicKey {
		return fmt.Errorf("missing public key")
	}

	pub, err := account.Ed25519PublicKeyFromHex(publicKey)
	if nil != err {
		return err
	}

	printJson(m.w, struct {
		AuthKey string `json:"auth_key"`
		Address string `json:"address"`
	}{
		AuthKey: pub.AuthKey().String(),
		Address: pub.Address().String(),
	})
	return nil
}
