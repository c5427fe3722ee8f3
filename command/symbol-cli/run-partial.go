// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/mapping"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
	"github.com/bitmark-inc/symbol-sdk-go/signing"
	"github.com/bitmark-inc/symbol-sdk-go/storage"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

type partialEntry struct {
	Hash         string `json:"hash"`
	Signer       string `json:"signerPublicKey"`
	Deadline     string `json:"deadline"`
	Inner        int    `json:"transactions"`
	Cosignatures int    `json:"cosignatures"`
}

func runPartialAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	payload, err := checkPayload(c.String("payload"))
	if nil != err {
		return err
	}
	signed, err := signedFromPayload(payload, c, m)
	if nil != err {
		return err
	}

	if err := m.openStorage(storage.ReadWrite); nil != err {
		return err
	}
	defer storage.Finalise()

	if err := storage.StorePartial(signed); nil != err {
		return err
	}
	return printSigned(m, signed, nil)
}

func runPartialCosignature(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	data, err := readFile(c.String("file"))
	if nil != err {
		return err
	}
	network, err := m.networkType(c)
	if nil != err {
		return err
	}
	n, err := mapping.Parse(data)
	if nil != err {
		return err
	}
	cosignature, err := mapping.MapCosignature(n, network)
	if nil != err {
		return err
	}

	if err := m.openStorage(storage.ReadWrite); nil != err {
		return err
	}
	defer storage.Finalise()

	if err := storage.AddCosignature(cosignature); nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "added: %s  signer: %s\n", cosignature.ParentHash, cosignature.Signer.PublicKey)
	}

	cosignatures, err := storage.CollectCosignatures(cosignature.ParentHash)
	if nil != err {
		return err
	}
	out := struct {
		Hash         string `json:"hash"`
		Cosignatures int    `json:"cosignatures"`
	}{
		Hash:         cosignature.ParentHash.String(),
		Cosignatures: len(cosignatures),
	}
	return printJson(m.w, out)
}

func runPartialList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count <= 0 {
		return fault.ErrInvalidCount
	}

	if err := m.openStorage(storage.ReadOnly); nil != err {
		return err
	}
	defer storage.Finalise()

	ctx, cancel := requestContext()
	defer cancel()
	epoch, err := m.epochAdjustment(ctx)
	if nil != err {
		return err
	}

	elements, err := storage.Pool.Partial.NewFetchCursor().Fetch(count)
	if nil != err {
		return err
	}

	entries := make([]partialEntry, 0, len(elements))
	for _, e := range elements {
		hash, err := merkle.DigestFromBytes(e.Key)
		if nil != err {
			return err
		}
		tx, err := serializer.Deserialize(e.Value)
		if nil != err {
			return err
		}
		cosignatures, err := storage.CollectCosignatures(hash)
		if nil != err {
			return err
		}
		entry := partialEntry{
			Hash:         hash.String(),
			Deadline:     tx.Deadline.Time(epoch).UTC().Format(time.RFC3339),
			Cosignatures: len(cosignatures),
		}
		if nil != tx.Signer {
			entry.Signer = tx.Signer.PublicKey.String()
		}
		if b, ok := tx.Body.(*transaction.Aggregate); ok {
			entry.Inner = len(b.Inner)
		}
		entries = append(entries, entry)
	}
	return printJson(m.w, entries)
}

// the initiator signs again and the stored cosignatures are attached
func runPartialComplete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	hash, err := checkHash(c.String("hash"))
	if nil != err {
		return err
	}

	initiator, err := m.unlock(c)
	if nil != err {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()
	generationHash, err := m.generationHash(ctx, c)
	if nil != err {
		return err
	}

	if err := m.openStorage(storage.ReadWrite); nil != err {
		return err
	}
	defer storage.Finalise()

	payload, ok := storage.GetPartial(hash)
	if !ok {
		return fault.ErrPartialNotFound
	}
	tx, err := serializer.Deserialize(payload)
	if nil != err {
		return err
	}
	if nil == tx.Signer || tx.Signer.PublicKey != initiator.PublicKey() {
		return fault.ErrSignatureVerification
	}

	// any cosignatures already in the payload are replaced by the stored set
	b, ok := tx.Body.(*transaction.Aggregate)
	if !ok {
		return fault.ErrNotAggregate
	}
	f, err := transaction.NewAggregateFactoryWithHash(tx.Type, tx.Network, b.Inner, nil, b.TransactionsHash)
	if nil != err {
		return err
	}
	bare := f.Version(tx.Version).Deadline(tx.Deadline).MaxFee(tx.MaxFee).Build()

	cosignatures, err := storage.CollectCosignatures(hash)
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "cosignatures: %d\n", len(cosignatures))
	}

	signed, err := signing.SignWithCosignatories(serializer, bare, initiator, cosignatures, generationHash)
	if nil != err {
		return err
	}
	if c.Bool("remove") {
		if err := storage.DeletePartial(hash); nil != err {
			return err
		}
	}
	return printSigned(m, signed, nil)
}

func runPartialDelete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	hash, err := checkHash(c.String("hash"))
	if nil != err {
		return err
	}

	if err := m.openStorage(storage.ReadWrite); nil != err {
		return err
	}
	defer storage.Finalise()

	if err := storage.DeletePartial(hash); nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "deleted: %s\n", hash)
	}
	return nil
}

func runPartialExpire(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ctx, cancel := requestContext()
	defer cancel()
	epoch, err := m.epochAdjustment(ctx)
	if nil != err {
		return err
	}

	if err := m.openStorage(storage.ReadWrite); nil != err {
		return err
	}
	defer storage.Finalise()

	if !c.Bool("watch") {
		n, err := storage.ExpirePartials(transaction.DeadlineAt(time.Now(), epoch))
		if nil != err {
			return err
		}
		out := struct {
			Expired int `json:"expired"`
		}{
			Expired: n,
		}
		return printJson(m.w, out)
	}

	interval := time.Duration(m.config.ExpiryInterval) * time.Second
	if m.verbose {
		fmt.Fprintf(m.e, "sweeping every: %s\n", interval)
	}
	expiry := storage.StartExpiry(interval, epoch)

	// wait for CTRL-C SIGINT or SIGTERM
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	if m.verbose {
		fmt.Fprintf(m.e, "received signal: %v\n", sig)
	}

	expiry.Stop()
	return nil
}
