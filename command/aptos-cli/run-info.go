// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/aptoskit/aptoskit/client"
)

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	url := c.String("url")
	if "" == url {
		return fmt.Errorf("missing node url")
	}

	info, err := client.New(url).LedgerInfo()
	if nil != err {
		return err
	}

	printJson(m.w, info)
	return nil
}
