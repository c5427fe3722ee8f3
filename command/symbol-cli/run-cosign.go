// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/mapping"
	"github.com/bitmark-inc/symbol-sdk-go/signing"
	"github.com/bitmark-inc/symbol-sdk-go/storage"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

func runCosign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	hashText := c.String("hash")
	payloadText := c.String("payload")
	if ("" == hashText) == ("" == payloadText) {
		return ErrRequiredHashOrPayload
	}

	cosigner, err := m.unlock(c)
	if nil != err {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()

	var cosignature transaction.CosignatureSigned

	switch {
	case "" != payloadText:
		payload, err := checkPayload(payloadText)
		if nil != err {
			return err
		}
		signed, err := signedFromPayload(payload, c, m)
		if nil != err {
			return err
		}
		tx, err := serializer.Deserialize(signed.Payload)
		if nil != err {
			return err
		}
		tx.Info = &transaction.Info{Hash: &signed.Hash}
		if cosignature, err = cosignTransaction(m, tx, cosigner); nil != err {
			return err
		}

	case "" != c.String("group"):
		hash, err := checkHash(hashText)
		if nil != err {
			return err
		}
		group, err := transaction.GroupFromName(c.String("group"))
		if nil != err {
			return err
		}
		r, err := m.transactionRepository()
		if nil != err {
			return err
		}
		tx, err := r.GetTransaction(ctx, group, hash)
		if nil != err {
			return err
		}
		if cosignature, err = cosignTransaction(m, tx, cosigner); nil != err {
			return err
		}

	default:
		// nothing to inspect, sign the hash as given
		hash, err := checkHash(hashText)
		if nil != err {
			return err
		}
		cosignature = signing.CosignAggregateHash(cosigner, hash)
	}

	if c.Bool("store") {
		if err := m.openStorage(storage.ReadWrite); nil != err {
			return err
		}
		defer storage.Finalise()
		if err := storage.AddCosignature(cosignature); nil != err {
			return err
		}
	}

	if c.Bool("announce") {
		r, err := m.transactionRepository()
		if nil != err {
			return err
		}
		reply, err := r.AnnounceCosignature(ctx, cosignature)
		if nil != err {
			return err
		}
		if m.verbose {
			fmt.Fprintf(m.e, "announced: %s\n", reply.Message)
		}
	}

	document, err := mapping.CosignatureToJSON(cosignature)
	if nil != err {
		return err
	}
	return printDocument(m.w, document)
}

// refuse to sign an aggregate twice
func cosignTransaction(m *metadata, tx *transaction.Transaction, cosigner *account.Account) (transaction.CosignatureSigned, error) {
	if signing.SignedByAccount(tx, cosigner.PublicKey()) {
		return transaction.CosignatureSigned{}, fault.ErrCosignatureExists
	}
	ct, err := signing.NewCosignature(tx)
	if nil != err {
		return transaction.CosignatureSigned{}, err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "cosigning: %s  type: %s\n", ct.Hash(), tx.Type)
	}
	return ct.SignWith(cosigner), nil
}
