// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mapping

import (
	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/catbuffer"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
	"github.com/bitmark-inc/symbol-sdk-go/util"
)

// derives the transactions hash when a document omits it
var serializer = catbuffer.Serializer{}

// aggregate: transactionsHash, transactions[{meta, id, transaction}],
// cosignatures[{version, signerPublicKey, signature}]
//
// inner transactions take the network, deadline and fee of the
// aggregate; their ledger metadata points back at the aggregate
func mapAggregate(n Node, h header) (*transaction.Factory, error) {
	deadline, err := n.Get("deadline").Uint64()
	if nil != err {
		return nil, err
	}
	maxFee, err := n.Get("maxFee").Uint64()
	if nil != err {
		return nil, err
	}

	items, err := n.Get("transactions").Array()
	if nil != err {
		return nil, err
	}
	var inner []transaction.Embedded
	for _, item := range items {
		e, err := mapEmbedded(item, h, transaction.Deadline(deadline), maxFee)
		if nil != err {
			return nil, err
		}
		inner = append(inner, e)
	}

	items, err = n.Get("cosignatures").Array()
	if nil != err {
		return nil, err
	}
	var cosignatures []transaction.Cosignature
	for _, item := range items {
		c, err := mapCosignature(item, h.network)
		if nil != err {
			return nil, err
		}
		cosignatures = append(cosignatures, c)
	}

	if !n.Has("transactionsHash") {
		return transaction.NewAggregateFactory(serializer, h.kind, h.network, inner, cosignatures)
	}
	hash, err := n.Get("transactionsHash").Digest()
	if nil != err {
		return nil, err
	}
	return transaction.NewAggregateFactoryWithHash(h.kind, h.network, inner, cosignatures, hash)
}

func mapEmbedded(item Node, outer header, deadline transaction.Deadline, maxFee uint64) (transaction.Embedded, error) {
	tx := item
	if item.Has("transaction") {
		tx = item.Get("transaction")
	}
	if _, err := tx.Object(); nil != err {
		return transaction.Embedded{}, err
	}

	h, err := mapHeader(tx, outer.network)
	if nil != err {
		return transaction.Embedded{}, err
	}
	if h.kind.IsAggregate() {
		return transaction.Embedded{}, tx.Get("type").fail(fault.ErrEmbeddedNotAllowed)
	}
	if h.network != outer.network {
		return transaction.Embedded{}, tx.Get("network").fail(fault.ErrWrongNetwork)
	}
	h.legacy = h.legacy || outer.legacy

	f, err := mapBody(tx, h)
	if nil != err {
		return transaction.Embedded{}, err
	}
	key, err := tx.First("signerPublicKey", "signer").PublicKey()
	if nil != err {
		return transaction.Embedded{}, err
	}
	signer := account.PublicAccount{PublicKey: key, Network: h.network}

	info, err := mapInnerInfo(item, outer.parent)
	if nil != err {
		return transaction.Embedded{}, err
	}
	inner := f.Version(h.version).Deadline(deadline).MaxFee(maxFee).Signer(signer).Info(info).Build()
	return transaction.Embedded{
		Signer:      signer,
		Transaction: inner,
	}, nil
}

// the aggregate hash and id default to those of the enclosing document
func mapInnerInfo(item Node, parent *transaction.Info) (*transaction.Info, error) {
	info, err := mapInfo(item)
	if nil != err {
		return nil, err
	}
	if nil == parent {
		return info, nil
	}
	if nil == info {
		info = &transaction.Info{Height: parent.Height}
	}
	if nil == info.AggregateHash && nil != parent.Hash {
		h := *parent.Hash
		info.AggregateHash = &h
	}
	if "" == info.AggregateID {
		info.AggregateID = parent.ID
	}
	return info, nil
}

func printAggregate(tx *transaction.Transaction, out document) error {
	b := tx.Body.(*transaction.Aggregate)
	if !b.TransactionsHash.IsZero() {
		out["transactionsHash"] = b.TransactionsHash.String()
	}

	inner := make([]document, 0, len(b.Inner))
	for _, e := range b.Inner {
		if nil == e.Transaction {
			return fault.ErrInvalidTransaction
		}
		t, err := printTransaction(e.Transaction, true)
		if nil != err {
			return err
		}
		t["signerPublicKey"] = e.Signer.PublicKey.String()

		d := document{"transaction": t}
		if nil != e.Transaction.Info {
			d["meta"] = printInfo(e.Transaction.Info)
			if "" != e.Transaction.Info.ID {
				d["id"] = e.Transaction.Info.ID
			}
		}
		inner = append(inner, d)
	}
	out["transactions"] = inner

	cosignatures := make([]document, 0, len(b.Cosignatures))
	for _, c := range b.Cosignatures {
		cosignatures = append(cosignatures, document{
			"version":         util.Uint64ToDecimal(c.Version),
			"signerPublicKey": c.Signer.PublicKey.String(),
			"signature":       c.Signature.String(),
		})
	}
	out["cosignatures"] = cosignatures
	return nil
}
