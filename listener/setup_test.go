// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listener_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/catbuffer"
	"github.com/bitmark-inc/symbol-sdk-go/chain"
	"github.com/bitmark-inc/symbol-sdk-go/mapping"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
	"github.com/bitmark-inc/symbol-sdk-go/mosaic"
	"github.com/bitmark-inc/symbol-sdk-go/signing"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

const (
	logDirectory = "testing"

	network = chain.TestNet

	generationHashHex = "57F7DA205008026C776CB6AED843393F04CD458E0AA2D9F1D5F31A402072B2D6"

	keyA = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	keyB = "4ccd089b28ff96da9db6c346ec114e0f5b8a319f35aba624da8cf6ed4fb8a6fb"
)

var serializer = catbuffer.Serializer{}

func setupTestLogger() {
	removeLogFiles()
	_ = os.Mkdir(logDirectory, 0700)

	logging := logger.Configuration{
		Directory: logDirectory,
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
	removeLogFiles()
}

func removeLogFiles() {
	_ = os.RemoveAll(logDirectory)
}

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func makeAccount(t *testing.T, privateKey string) *account.Account {
	a, err := account.AccountFromPrivateHex(privateKey, network)
	if nil != err {
		t.Fatalf("account error: %s", err)
	}
	return a
}

// a signed transfer from A to B and its REST document
func transferDocument(t *testing.T) (*transaction.Signed, string) {
	g, _ := merkle.DigestFromHex(generationHashHex)
	f, err := transaction.NewTransferFactory(network, makeAccount(t, keyB).Address(), []mosaic.Mosaic{{ID: 1, Amount: 5}}, nil)
	if nil != err {
		t.Fatalf("transfer error: %s", err)
	}
	signed, err := signing.SignWith(serializer, f.Deadline(1000).MaxFee(100).Build(), makeAccount(t, keyA), g)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	tx, err := serializer.Deserialize(signed.Payload)
	if nil != err {
		t.Fatalf("deserialize error: %s", err)
	}
	doc, err := mapping.ToJSON(tx)
	if nil != err {
		t.Fatalf("to json error: %s", err)
	}
	return signed, string(doc)
}
