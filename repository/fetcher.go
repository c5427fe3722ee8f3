// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
)

// defaults for a node connection
const (
	DefaultRequestRate  = 10.0
	DefaultRequestBurst = 20
	DefaultTimeout      = 30 * time.Second
)

// Fetcher - REST transport to a node
type Fetcher interface {
	FetchJSON(ctx context.Context, path string) ([]byte, error)
	PutJSON(ctx context.Context, path string, body []byte) ([]byte, error)
}

// HTTPFetcher - Fetcher over net/http, limited to a request rate
type HTTPFetcher struct {
	log     *logger.L
	client  *http.Client
	url     string
	limiter *rate.Limiter
}

// NewHTTPFetcher - requests to nodeURL, at most requestRate per second
// with bursts up to burst
func NewHTTPFetcher(nodeURL string, requestRate float64, burst int) *HTTPFetcher {
	if requestRate <= 0 {
		requestRate = DefaultRequestRate
	}
	if burst <= 0 {
		burst = DefaultRequestBurst
	}
	return &HTTPFetcher{
		log:     logger.New("repository"),
		client:  &http.Client{Timeout: DefaultTimeout},
		url:     strings.TrimRight(nodeURL, "/"),
		limiter: rate.NewLimiter(rate.Limit(requestRate), burst),
	}
}

// FetchJSON - GET a JSON document
func (f *HTTPFetcher) FetchJSON(ctx context.Context, path string) ([]byte, error) {
	return f.do(ctx, http.MethodGet, path, nil)
}

// PutJSON - PUT a JSON document, returning the reply
func (f *HTTPFetcher) PutJSON(ctx context.Context, path string, body []byte) ([]byte, error) {
	return f.do(ctx, http.MethodPut, path, body)
}

func (f *HTTPFetcher) do(ctx context.Context, method string, path string, body []byte) ([]byte, error) {
	if err := limit(ctx, f.limiter); nil != err {
		f.log.Warnf("%s %s: %s", method, path, err)
		return nil, err
	}

	var content io.Reader
	if nil != body {
		content = bytes.NewReader(body)
	}
	url := f.url + path
	request, err := http.NewRequest(method, url, content)
	if nil != err {
		return nil, err
	}
	request = request.WithContext(ctx)
	request.Header.Set("Accept", "application/json")
	if nil != body {
		request.Header.Set("Content-Type", "application/json")
	}

	f.log.Debugf("%s %s", method, url)
	response, err := f.client.Do(request)
	if nil != err {
		f.log.Errorf("%s %s: %s", method, url, err)
		return nil, fmt.Errorf("%w: %s", fault.ErrRequestFailed, err)
	}
	defer response.Body.Close()

	reply, err := ioutil.ReadAll(response.Body)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrRequestFailed, err)
	}

	switch {
	case http.StatusNotFound == response.StatusCode:
		return nil, fmt.Errorf("%w: %q", fault.ErrResourceNotFound, url)
	case response.StatusCode < 200 || response.StatusCode >= 300:
		f.log.Warnf("%s %s: status: %d", method, url, response.StatusCode)
		return nil, fmt.Errorf("%w: status: %d %q on: %q", fault.ErrRequestFailed, response.StatusCode, response.Status, url)
	}
	return reply, nil
}
