// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catbuffer_test

import (
	"testing"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/chain"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

const (
	network = chain.TestNet

	// RFC 8032 test 1 and 2 keys
	senderPrivateKey = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	otherPrivateKey  = "4ccd089b28ff96da9db6c346ec114e0f5b8a319f35aba624da8cf6ed4fb8a6fb"

	fixedDeadline = transaction.Deadline(0x0123456789)
	fixedFee      = uint64(20000)
)

func makeAccount(t *testing.T, privateKey string) *account.Account {
	a, err := account.AccountFromPrivateHex(privateKey, network)
	if nil != err {
		t.Fatalf("account error: %s", err)
	}
	return a
}

func makeAddress(t *testing.T, privateKey string) account.Address {
	return makeAccount(t, privateKey).Address()
}

// fix the header fields that would otherwise depend on the clock
//
// returns a function so a constructor call can be passed directly:
//   fixed(t)(transaction.NewTransferFactory(...))
func fixed(t *testing.T) func(*transaction.Factory, error) *transaction.Factory {
	return func(f *transaction.Factory, err error) *transaction.Factory {
		if nil != err {
			t.Fatalf("factory error: %s", err)
		}
		return f.Deadline(fixedDeadline).MaxFee(fixedFee)
	}
}

// an inner transaction with the same deadline and fee as its aggregate
func embed(t *testing.T, signer account.PublicAccount) func(*transaction.Factory, error) transaction.Embedded {
	return func(f *transaction.Factory, err error) transaction.Embedded {
		e, err := fixed(t)(f, err).Build().ToAggregate(signer)
		if nil != err {
			t.Fatalf("embed error: %s", err)
		}
		return e
	}
}
