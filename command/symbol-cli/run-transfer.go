// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/message"
	"github.com/bitmark-inc/symbol-sdk-go/repository"
	"github.com/bitmark-inc/symbol-sdk-go/signing"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	mosaics, err := checkMosaics(c.StringSlice("mosaic"))
	if nil != err {
		return err
	}

	sender, err := m.unlock(c)
	if nil != err {
		return err
	}

	recipient, err := m.recipient(c, sender.Network, c.String("recipient"))
	if nil != err {
		return err
	}

	var msg *message.Message
	text := c.String("message")
	if key := c.String("encrypt"); "" != key {
		p, err := account.NewPublicAccount(key, sender.Network)
		if nil != err {
			return err
		}
		if p.Address() != recipient {
			return ErrRecipientKeyMismatch
		}
		msg, err = message.NewEncrypted(text, sender.KeyPair, p.PublicKey)
		if nil != err {
			return err
		}
	} else if "" != text {
		msg, err = message.NewPlain(text)
		if nil != err {
			return err
		}
	}

	ctx, cancel := requestContext()
	defer cancel()

	epoch, err := m.epochAdjustment(ctx)
	if nil != err {
		return err
	}
	generationHash, err := m.generationHash(ctx, c)
	if nil != err {
		return err
	}

	multiplier := m.feeMultiplier(c.Int("fee-multiplier"))

	if m.verbose {
		fmt.Fprintf(m.e, "sender: %s\n", sender.Address().Pretty())
		fmt.Fprintf(m.e, "recipient: %s\n", recipient.Pretty())
		fmt.Fprintf(m.e, "mosaics: %v\n", mosaics)
		fmt.Fprintf(m.e, "fee multiplier: %d\n", multiplier)
	}

	f, err := transaction.NewTransferFactory(sender.Network, recipient, mosaics, msg)
	if nil != err {
		return err
	}
	f.Deadline(transaction.NewDeadline(epoch, c.Duration("deadline")))
	f, err = f.CalculateMaxFeeFromMultiplier(serializer, multiplier)
	if nil != err {
		return err
	}

	signed, err := signing.SignWith(serializer, f.Build(), sender, generationHash)
	if nil != err {
		return err
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
