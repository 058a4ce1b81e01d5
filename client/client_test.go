// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package client_test

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/aptoskit/aptoskit/account"
	"github.com/aptoskit/aptoskit/client"
	"github.com/aptoskit/aptoskit/fault"
	"github.com/aptoskit/aptoskit/transaction"
)

const (
	testingDirName = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

func TestChainIdAndSequenceNumber(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ledgerCalls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1":
			ledgerCalls += 1
			fmt.Fprintf(w, `{"chain_id":4,"ledger_version":"100","epoch":"2","block_height":"50"}`)
		case "/v1/accounts/0x1":
			fmt.Fprintf(w, `{"sequence_number":"42","authentication_key":"0x01"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c := client.New(server.URL)

	chainId, err := c.ChainId()
	assert.Nil(t, err, "wrong chain id error")
	assert.Equal(t, byte(4), chainId, "wrong chain id")

	// cached, no second ledger fetch
	chainId, err = c.ChainId()
	assert.Nil(t, err, "wrong cached chain id error")
	assert.Equal(t, byte(4), chainId, "wrong cached chain id")
	assert.Equal(t, 1, ledgerCalls, "ledger info not cached")

	address, _ := account.AddressFromHex("0x1")
	n, err := c.SequenceNumber(address)
	assert.Nil(t, err, "wrong sequence number error")
	assert.Equal(t, uint64(42), n, "wrong sequence number")
}

func TestSequenceNumberFail(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"sequence_number":"not a number"}`)
	}))
	defer server.Close()

	address, _ := account.AddressFromHex("0x1")
	_, err := client.New(server.URL).SequenceNumber(address)
	assert.Equal(t, fault.JsonParseFail, err, "wrong error")
}

func TestSubmitBCS(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	var receivedType string
	var receivedLength int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if "/v1/transactions" == r.URL.Path && "POST" == r.Method {
			receivedType = r.Header.Get("Content-Type")
			body, _ := ioutil.ReadAll(r.Body)
			receivedLength = len(body)
			w.WriteHeader(http.StatusAccepted)
			fmt.Fprintf(w, `{"hash":"0xdeadbeef"}`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	acct, err := account.NewEd25519Account()
	assert.Nil(t, err, "wrong account error")

	receiver, _ := account.AddressFromHex("0xcafe")
	raw := transaction.RawTransaction{
		Sender:                  acct.Address(),
		SequenceNumber:          0,
		Payload:                 transaction.TransferPayload(receiver, 100),
		MaxGasAmount:            2000,
		GasUnitPrice:            100,
		ExpirationTimestampSecs: 1735689600,
		ChainId:                 4,
	}
	signed, err := transaction.Sign(acct, raw)
	assert.Nil(t, err, "wrong sign error")

	hash, err := client.New(server.URL).SubmitBCS(signed)
	assert.Nil(t, err, "wrong submit error")
	assert.Equal(t, "0xdeadbeef", hash, "wrong hash")
	assert.Equal(t, "application/x.aptos.signed_transaction+bcs", receivedType, "wrong content type")

	expected, _ := signed.Bytes()
	assert.Equal(t, len(expected), receivedLength, "wrong body length")
}

func TestSubmitBCSFail(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintf(w, `{"message":"invalid transaction"}`)
	}))
	defer server.Close()

	acct, _ := account.NewEd25519Account()
	receiver, _ := account.AddressFromHex("0xcafe")
	signed, _ := transaction.Sign(acct, transaction.RawTransaction{
		Sender:  acct.Address(),
		Payload: transaction.TransferPayload(receiver, 100),
		ChainId: 4,
	})

	_, err := client.New(server.URL).SubmitBCS(signed)
	assert.Equal(t, fault.SubmitRequestFail, err, "wrong error")
}

func TestFaucetFund(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	var receivedQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if "/mint" == r.URL.Path && "POST" == r.Method {
			receivedQuery = r.URL.RawQuery
			fmt.Fprintf(w, `["0xabc123"]`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	address, _ := account.AddressFromHex("0x42")
	hashes, err := client.NewFaucet(server.URL).Fund(context.Background(), address, 1000)
	assert.Nil(t, err, "wrong fund error")
	assert.Equal(t, 1, len(hashes), "wrong hash count")
	assert.Equal(t, "0xabc123", hashes[0], "wrong hash")
	assert.Equal(t,
		"address=0x0000000000000000000000000000000000000000000000000000000000000042&amount=1000",
		receivedQuery, "wrong query")
}
