// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"github.com/bitmark-inc/symbol-sdk-go/repository"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

type signedResult struct {
	Hash      string `json:"hash"`
	Type      string `json:"type"`
	Network   string `json:"network"`
	Signer    string `json:"signerPublicKey"`
	Address   string `json:"signerAddress"`
	Payload   string `json:"payload"`
	Announced string `json:"announced,omitempty"`
}

func printSigned(m *metadata, signed *transaction.Signed, reply *repository.AnnounceReply) error {
	result := signedResult{
		Hash:    signed.Hash.String(),
		Type:    signed.Type.String(),
		Network: signed.Network.String(),
		Signer:  signed.Signer.PublicKey.String(),
		Address: signed.Signer.Address().Plain(),
		Payload: signed.PayloadHex(),
	}
	if nil != reply {
		result.Announced = reply.Message
	}
	return printJson(m.w, result)
}

// bonded aggregates go to the partial route
func announceSigned(ctx context.Context, m *metadata, signed *transaction.Signed) (*repository.AnnounceReply, error) {
	r, err := m.transactionRepository()
	if nil != err {
		return nil, err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "announcing: %s  type: %s\n", signed.Hash, signed.Type)
	}

	var reply repository.AnnounceReply
	if transaction.AggregateBondedType == signed.Type {
		reply, err = r.AnnounceAggregateBonded(ctx, signed)
	} else {
		reply, err = r.Announce(ctx, signed)
	}
	if nil != err {
		return nil, err
	}
	return &reply, nil
}
