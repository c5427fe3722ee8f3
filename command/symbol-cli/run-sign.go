// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
	"github.com/bitmark-inc/symbol-sdk-go/repository"
	"github.com/bitmark-inc/symbol-sdk-go/signing"
	"github.com/bitmark-inc/symbol-sdk-go/storage"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

func runSign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	payload, err := checkPayload(c.String("payload"))
	if nil != err {
		return err
	}

	tx, err := serializer.Deserialize(payload)
	if nil != err {
		return err
	}

	signer, err := m.unlock(c)
	if nil != err {
		return err
	}
	if signer.Network != tx.Network {
		return fault.ErrWrongNetwork
	}

	store := c.Bool("store")

	if m.verbose {
		fmt.Fprintf(m.e, "type: %s  signer: %s\n", tx.Type, signer.Address().Pretty())
	}

	ctx, cancel := requestContext()
	defer cancel()
	generationHash, err := m.generationHash(ctx, c)
	if nil != err {
		return err
	}

	signed, err := signing.SignWith(serializer, tx, signer, generationHash)
	if nil != err {
		return err
	}

	if store {
		if err := m.openStorage(storage.ReadWrite); nil != err {
			return err
		}
		defer storage.Finalise()
		if transaction.AggregateBondedType == tx.Type {
			err = storage.StorePartial(signed)
		} else {
			err = storage.StoreSigned(signed)
		}
		if nil != err {
			return err
		}
	}

	var reply *repository.AnnounceReply
	if c.Bool("announce") {
		reply, err = announceSigned(ctx, m, signed)
		if nil != err {
			return err
		}
	}
	return printSigned(m, signed, reply)
}

// a payload given directly, or one kept in the local store which is
// removed once the node accepts it
func runAnnounce(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var payload []byte
	var stored *merkle.Digest

	switch {
	case "" != c.String("payload"):
		p, err := checkPayload(c.String("payload"))
		if nil != err {
			return err
		}
		payload = p

	case "" != c.String("hash"):
		hash, err := checkHash(c.String("hash"))
		if nil != err {
			return err
		}
		if err := m.openStorage(storage.ReadWrite); nil != err {
			return err
		}
		defer storage.Finalise()

		p, ok := storage.GetSigned(hash)
		if !ok {
			return fault.ErrTransactionNotFound
		}
		payload = p
		stored = &hash

	default:
		return ErrRequiredHashOrPayload
	}

	signed, err := signedFromPayload(payload, c, m)
	if nil != err {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()
	reply, err := announceSigned(ctx, m, signed)
	if nil != err {
		return err
	}

	if nil != stored {
		if err := storage.DeleteSigned(*stored); nil != err {
			return err
		}
	}
	return printSigned(m, signed, reply)
}
