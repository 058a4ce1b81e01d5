// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/aptoskit/aptoskit/account"
	"github.com/aptoskit/aptoskit/chain"
	"github.com/aptoskit/aptoskit/client"
	"github.com/aptoskit/aptoskit/transaction"
)

const (
	defaultMaxGasAmount = uint64(100_000)
	defaultGasUnitPrice = uint64(100)
	defaultExpiry       = 10 * time.Minute
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	acct, err := account.Ed25519AccountFromHex(c.String("privatekey"))
	if nil != err {
		return err
	}

	receiver, err := account.AddressFromHex(c.String("receiver"))
	if nil != err {
		return err
	}

	amount := c.Uint64("amount")
	if 0 == amount {
		return fmt.Errorf("missing amount")
	}

	url := c.String("url")

	// offline: chain id from the network name, sequence number zero
	chainId, _ := chain.Id(m.network)
	sequenceNumber := uint64(0)

	var node *client.Client
	if "" != url {
		node = client.New(url)
		chainId, err = node.ChainId()
		if nil != err {
			return err
		}
		sequenceNumber, err = node.SequenceNumber(acct.Address())
		if nil != err {
			return err
		}
	}

	raw := transaction.RawTransaction{
		Sender:                  acct.Address(),
		SequenceNumber:          sequenceNumber,
		Payload:                 transaction.TransferPayload(receiver, amount),
		MaxGasAmount:            defaultMaxGasAmount,
		GasUnitPrice:            defaultGasUnitPrice,
		ExpirationTimestampSecs: uint64(time.Now().Add(defaultExpiry).Unix()),
		ChainId:                 chainId,
	}

	signed, err := transaction.Sign(acct, raw)
	if nil != err {
		return err
	}

	if nil == node {
		buffer, err := signed.Bytes()
		if nil != err {
			return err
		}
		printJson(m.w, struct {
			Sender string `json:"sender"`
			Bcs    string `json:"bcs"`
		}{
			Sender: acct.Address().String(),
			Bcs:    "0x" + hex.EncodeToString(buffer),
		})
		return nil
	}

	hash, err := node.SubmitBCS(signed)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "waiting for: %s\n", hash)
	}
	err = node.WaitForTransaction(hash)
	if nil != err {
		return err
	}

	printJson(m.w, struct {
		Hash string `json:"hash"`
	}{
		Hash: hash,
	})
	return nil
}
