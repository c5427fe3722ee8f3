// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/mapping"
	"github.com/bitmark-inc/symbol-sdk-go/signing"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

type mapResult struct {
	Type    string `json:"type"`
	Network string `json:"network"`
	Signed  bool   `json:"signed"`
	Hash    string `json:"hash,omitempty"`
	Payload string `json:"payload"`
}

func runMap(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	data, err := readFile(c.String("file"))
	if nil != err {
		return err
	}

	tx, err := mapping.MapTransaction(data)
	if nil != err {
		return err
	}

	payload, err := serializer.Serialize(tx)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "type: %s  size: %d\n", tx.Type, len(payload))
	}

	result := mapResult{
		Type:    tx.Type.String(),
		Network: tx.Network.String(),
		Signed:  tx.IsSigned(),
		Payload: strings.ToUpper(hex.EncodeToString(payload)),
	}

	// a signed document can be checked against its own metadata
	if tx.IsSigned() {
		ctx, cancel := requestContext()
		defer cancel()
		generationHash, err := m.generationHash(ctx, c)
		if nil == err {
			hash, err := signing.Hash(payload, generationHash)
			if nil != err {
				return err
			}
			result.Hash = hash.String()
			if nil != tx.Info && nil != tx.Info.Hash && *tx.Info.Hash != hash {
				fmt.Fprintf(m.e, "warning: document hash: %s differs from computed hash\n", tx.Info.Hash)
			}
		} else if m.verbose {
			fmt.Fprintf(m.e, "no generation hash: %s\n", err)
		}
	}
	return printJson(m.w, result)
}

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	payload, err := checkPayload(c.String("payload"))
	if nil != err {
		return err
	}

	tx, err := serializer.Deserialize(payload)
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "type: %s  version: %d  signed: %t\n", tx.Type, tx.Version, tx.IsSigned())
	}

	document, err := mapping.ToJSON(tx)
	if nil != err {
		return err
	}
	return printDocument(m.w, document)
}

func runHash(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	payload, err := checkPayload(c.String("payload"))
	if nil != err {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()
	generationHash, err := m.generationHash(ctx, c)
	if nil != err {
		return err
	}

	hash, err := signing.Hash(payload, generationHash)
	if nil != err {
		return err
	}

	out := struct {
		Hash     string `json:"hash"`
		Verified bool   `json:"verified"`
	}{
		Hash:     hash.String(),
		Verified: nil == signing.VerifyPayload(payload, generationHash),
	}
	return printJson(m.w, out)
}

// the signed form of a payload that is already signed
func signedFromPayload(payload []byte, c *cli.Context, m *metadata) (*transaction.Signed, error) {
	tx, err := serializer.Deserialize(payload)
	if nil != err {
		return nil, err
	}
	if !tx.IsSigned() {
		return nil, fault.ErrUnsigned
	}

	ctx, cancel := requestContext()
	defer cancel()
	generationHash, err := m.generationHash(ctx, c)
	if nil != err {
		return nil, err
	}
	if err := signing.VerifyPayload(payload, generationHash); nil != err {
		return nil, err
	}
	hash, err := signing.Hash(payload, generationHash)
	if nil != err {
		return nil, err
	}
	return &transaction.Signed{
		Signer:  *tx.Signer,
		Payload: payload,
		Hash:    hash,
		Type:    tx.Type,
		Network: tx.Network,
	}, nil
}
