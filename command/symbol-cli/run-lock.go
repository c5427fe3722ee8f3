// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/symbol-sdk-go/merkle"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
	"github.com/bitmark-inc/symbol-sdk-go/util"
)

type lockResult struct {
	Kind          string `json:"kind"`
	RecordID      string `json:"recordId,omitempty"`
	Owner         string `json:"ownerAddress"`
	MosaicID      string `json:"mosaicId"`
	Amount        string `json:"amount"`
	EndHeight     string `json:"endHeight"`
	Status        string `json:"status"`
	Hash          string `json:"hash,omitempty"`
	Algorithm     string `json:"hashAlgorithm,omitempty"`
	Secret        string `json:"secret,omitempty"`
	Recipient     string `json:"recipientAddress,omitempty"`
	CompositeHash string `json:"compositeHash,omitempty"`
}

func runLock(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	hashText := c.String("hash")
	compositeText := c.String("composite")
	secretText := strings.TrimSpace(c.String("secret"))

	selected := 0
	for _, s := range []string{hashText, compositeText, secretText} {
		if "" != s {
			selected += 1
		}
	}
	if 1 != selected {
		return ErrRequiredLockSelection
	}

	r, err := m.lockRepository()
	if nil != err {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()

	if "" != hashText {
		hash, err := checkHash(hashText)
		if nil != err {
			return err
		}
		info, err := r.GetHashLock(ctx, hash)
		if nil != err {
			return err
		}
		return printJson(m.w, lockResult{
			Kind:      "hash",
			RecordID:  info.RecordID,
			Owner:     info.Owner.Plain(),
			MosaicID:  info.MosaicID.String(),
			Amount:    util.Uint64ToDecimal(info.Amount),
			EndHeight: util.Uint64ToDecimal(info.EndHeight),
			Status:    info.Status.String(),
			Hash:      info.Hash.String(),
		})
	}

	var composite merkle.Digest
	if "" != compositeText {
		if composite, err = checkHash(compositeText); nil != err {
			return err
		}
	} else {
		network, err := m.networkType(c)
		if nil != err {
			return err
		}
		recipient, err := m.recipient(c, network, c.String("recipient"))
		if nil != err {
			return err
		}
		algorithm := transaction.SecretSha3_256
		if 40 == len(secretText) {
			algorithm = transaction.SecretHash160
		}
		secret, err := algorithm.ParseSecret(secretText)
		if nil != err {
			return err
		}
		composite = transaction.CompositeHash(secret, recipient)
	}

	info, err := r.GetSecretLock(ctx, composite)
	if nil != err {
		return err
	}
	return printJson(m.w, lockResult{
		Kind:          "secret",
		RecordID:      info.RecordID,
		Owner:         info.Owner.Plain(),
		MosaicID:      info.MosaicID.String(),
		Amount:        util.Uint64ToDecimal(info.Amount),
		EndHeight:     util.Uint64ToDecimal(info.EndHeight),
		Status:        info.Status.String(),
		Algorithm:     info.Algorithm.String(),
		Secret:        info.Secret.String(),
		Recipient:     info.Recipient.Plain(),
		CompositeHash: info.CompositeHash.String(),
	})
}
