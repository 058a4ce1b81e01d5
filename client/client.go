// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package client - thin REST access to a node and a faucet
//
// only the calls needed to fill in and submit a transaction: chain
// id, account sequence number, BCS submission and funding
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/aptoskit/aptoskit/account"
	"github.com/aptoskit/aptoskit/fault"
	"github.com/aptoskit/aptoskit/transaction"
)

// content type required by the node for BCS submissions
const bcsContentType = "application/x.aptos.signed_transaction+bcs"

const requestTimeout = 30 * time.Second

// Client - connection to one node's REST endpoint
type Client struct {
	log    *logger.L
	client *http.Client
	url    string

	// cached after the first ledger info fetch; a node never
	// changes its chain id while running
	chainId    byte
	chainKnown bool
}

// LedgerInfo - the subset of the node's index response this client
// uses
type LedgerInfo struct {
	ChainId       byte   `json:"chain_id"`
	LedgerVersion string `json:"ledger_version"`
	Epoch         string `json:"epoch"`
	BlockHeight   string `json:"block_height"`
}

// New - create a client for a node URL such as
// https://fullnode.devnet.aptoslabs.com
func New(url string) *Client {
	return &Client{
		log:    logger.New("client"),
		client: &http.Client{Timeout: requestTimeout},
		url:    strings.TrimRight(url, "/"),
	}
}

// LedgerInfo - fetch the node's current ledger state
func (c *Client) LedgerInfo() (*LedgerInfo, error) {
	info := &LedgerInfo{}
	err := c.get(c.url+"/v1", info)
	if nil != err {
		return nil, err
	}
	c.chainId = info.ChainId
	c.chainKnown = true
	return info, nil
}

// ChainId - the chain id reported by the node; fetched once then
// cached
func (c *Client) ChainId() (byte, error) {
	if c.chainKnown {
		return c.chainId, nil
	}
	info, err := c.LedgerInfo()
	if nil != err {
		return 0, err
	}
	return info.ChainId, nil
}

// SequenceNumber - the next sequence number of an on-chain account
func (c *Client) SequenceNumber(address account.AccountAddress) (uint64, error) {
	var reply struct {
		SequenceNumber string `json:"sequence_number"`
	}
	err := c.get(c.url+"/v1/accounts/"+address.String(), &reply)
	if nil != err {
		return 0, err
	}
	n, err := strconv.ParseUint(reply.SequenceNumber, 10, 64)
	if nil != err {
		c.log.Errorf("sequence number: %q error: %s", reply.SequenceNumber, err)
		return 0, fault.JsonParseFail
	}
	return n, nil
}

// SubmitBCS - submit a signed transaction as canonical BCS bytes
// and return the node assigned hash
func (c *Client) SubmitBCS(signed *transaction.SignedTransaction) (string, error) {

	buffer, err := signed.Bytes()
	if nil != err {
		return "", err
	}

	c.log.Debugf("submit: %d bytes", len(buffer))

	response, err := c.client.Post(c.url+"/v1/transactions", bcsContentType, bytes.NewReader(buffer))
	if nil != err {
		c.log.Errorf("submit: error: %s", err)
		return "", fault.SubmitRequestFail
	}
	defer response.Body.Close()

	body, err := ioutil.ReadAll(response.Body)
	if nil != err {
		return "", fault.SubmitRequestFail
	}
	if http.StatusAccepted != response.StatusCode && http.StatusOK != response.StatusCode {
		c.log.Errorf("submit: status: %d body: %q", response.StatusCode, body)
		return "", fault.SubmitRequestFail
	}

	var reply struct {
		Hash string `json:"hash"`
	}
	err = json.Unmarshal(body, &reply)
	if nil != err {
		return "", fault.JsonParseFail
	}

	c.log.Infof("submitted: %s", reply.Hash)
	return reply.Hash, nil
}

// WaitForTransaction - poll until a submitted transaction leaves the
// pending state or the attempt budget runs out
func (c *Client) WaitForTransaction(hash string) error {
	for attempt := 0; attempt < 20; attempt += 1 {
		var reply struct {
			Type    string `json:"type"`
			Success *bool  `json:"success"`
			VmStatus string `json:"vm_status"`
		}
		err := c.get(c.url+"/v1/transactions/by_hash/"+hash, &reply)
		if nil == err && "pending_transaction" != reply.Type {
			if nil != reply.Success && !*reply.Success {
				c.log.Errorf("transaction: %s failed: %s", hash, reply.VmStatus)
				return fault.NodeRequestFail
			}
			return nil
		}
		time.Sleep(time.Second)
	}
	return fault.NodeRequestFail
}

// fetch a URL and decode the JSON reply
// only the fields present in the reply struct are kept
func (c *Client) get(url string, reply interface{}) error {

	request, err := http.NewRequest("GET", url, nil)
	if nil != err {
		return err
	}

	response, err := c.client.Do(request)
	if nil != err {
		c.log.Errorf("get: %q error: %s", url, err)
		return fault.NodeRequestFail
	}
	defer response.Body.Close()

	body, err := ioutil.ReadAll(response.Body)
	if nil != err {
		return fault.NodeRequestFail
	}
	if http.StatusOK != response.StatusCode {
		c.log.Errorf("get: %q status: %d %q", url, response.StatusCode, response.Status)
		return fmt.Errorf("status: %d %q on: %q", response.StatusCode, response.Status, url)
	}

	err = json.Unmarshal(body, reply)
	if nil != err {
		c.log.Errorf("get: %q json error: %s", url, err)
		return fault.JsonParseFail
	}
	return nil
}
