// SPDX-License-Identifier: ISC
// Copyright (c) 2021-2026 the aptoskit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/aptoskit/aptoskit/account"
	"github.com/aptoskit/aptoskit/fault"
)

// public faucets throttle aggressively; stay well inside their
// published limit
const faucetRequestsPerMinute = 10

// Faucet - connection to a test network funding service
type Faucet struct {
	log     *logger.L
	client  *http.Client
	url     string
	limiter *rate.Limiter
}

// NewFaucet - create a faucet client for a URL such as
// https://faucet.devnet.aptoslabs.com
func NewFaucet(url string) *Faucet {
	return &Faucet{
		log:     logger.New("faucet"),
		client:  &http.Client{Timeout: requestTimeout},
		url:     strings.TrimRight(url, "/"),
		limiter: rate.NewLimiter(rate.Every(time.Minute/faucetRequestsPerMinute), 1),
	}
}

// Fund - request test coins for an address and return the funding
// transaction hashes
func (f *Faucet) Fund(ctx context.Context, address account.AccountAddress, amount uint64) ([]string, error) {

	err := f.limiter.Wait(ctx)
	if nil != err {
		return nil, err
	}

	url := fmt.Sprintf("%s/mint?address=%s&amount=%d", f.url, address.String(), amount)
	f.log.Debugf("fund: %s amount: %d", address.String(), amount)

	request, err := http.NewRequest("POST", url, nil)
	if nil != err {
		return nil, err
	}
	request = request.WithContext(ctx)

	response, err := f.client.Do(request)
	if nil != err {
		f.log.Errorf("fund: error: %s", err)
		return nil, fault.FaucetRequestFail
	}
	defer response.Body.Close()

	body, err := ioutil.ReadAll(response.Body)
	if nil != err {
		return nil, fault.FaucetRequestFail
	}
	if http.StatusOK != response.StatusCode {
		f.log.Errorf("fund: status: %d body: %q", response.StatusCode, body)
		return nil, fault.FaucetRequestFail
	}

	var hashes []string
	err = json.Unmarshal(body, &hashes)
	if nil != err {
		return nil, fault.JsonParseFail
	}
	return hashes, nil
}
