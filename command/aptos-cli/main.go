// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/aptoskit/aptoskit/chain"
)

type metadata struct {
	network string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "aptos-cli"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Devnet,
			Usage: " connect to `NETWORK` [mainnet|testnet|devnet|local]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new account, printing mnemonic, keys and address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mnemonic, m",
					Value: "",
					Usage: " recover from existing BIP-39 `MNEMONIC`",
				},
				cli.UintFlag{
					Name:  "account, a",
					Value: 0,
					Usage: " derivation account `INDEX`",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "address",
			Usage:     "derive the account address of an ed25519 public key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "publickey, p",
					Value: "",
					Usage: "*hex public `KEY`",
				},
			},
			Action: runAddress,
		},
		{
			Name:      "sign",
			Usage:     "sign a hex message with an ed25519 private key seed",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "privatekey, k",
					Value: "",
					Usage: "*hex private key `SEED`",
				},
				cli.StringFlag{
					Name:  "message, m",
					Value: "",
					Usage: "*hex `MESSAGE` to sign",
				},
			},
			Action: runSign,
		},
		{
			Name:      "verify",
			Usage:     "verify an ed25519 signature over a hex message",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "publickey, p",
					Value: "",
					Usage: "*hex public `KEY`",
				},
				cli.StringFlag{
					Name:  "message, m",
					Value: "",
					Usage: "*hex `MESSAGE` that was signed",
				},
				cli.StringFlag{
					Name:  "signature, s",
					Value: "",
					Usage: "*hex `SIGNATURE` to check",
				},
			},
			Action: runVerify,
		},
		{
			Name:      "transfer",
			Usage:     "build, sign and optionally submit a coin transfer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "privatekey, k",
					Value: "",
					Usage: "*hex private key `SEED` of the sender",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*receiving `ADDRESS`",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*`AMOUNT` in octas",
				},
				cli.StringFlag{
					Name:  "url, u",
					Value: "",
					Usage: " node `URL`; omit to print the BCS bytes instead of submitting",
				},
			},
			Action: runTransfer,
		},
		{
			Name:  "info",
			Usage: "display node ledger status",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "url, u",
					Value: "",
					Usage: "*node `URL`",
				},
			},
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display aptos-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		network := c.GlobalString("network")
		if !chain.Valid(network) {
			return fmt.Errorf("network: %q can only be mainnet/testnet/devnet/local", network)
		}

		// the client package logs through the shared logger
		logging := logger.Configuration{
			Directory: os.TempDir(),
			File:      app.Name + ".log",
			Size:      1048576,
			Count:     10,
			Console:   c.GlobalBool("verbose"),
			Levels: map[string]string{
				logger.DefaultTag: "error",
			},
		}
		err := logger.Initialise(logging)
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			network: network,
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	logger.Finalise()
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
