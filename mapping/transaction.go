// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mapping

import (
	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/chain"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

// header fields needed by the body mappers
type header struct {
	kind    transaction.Type
	network chain.NetworkType
	version uint8

	// packed network and version: the older schema, whose hash
	// algorithm numbering differs
	legacy bool

	// ledger metadata of the document, passed down to inner
	// transactions
	parent *transaction.Info
}

// body mapper for one kind
type bodyMapper func(n Node, h header) (*transaction.Factory, error)

// one entry per registered kind, filled by init since the aggregate
// mapper maps its inner transactions through the same table
var kinds map[transaction.Type]kindMapper

// MapTransaction - a REST transaction document, {meta, id, transaction}
func MapTransaction(data []byte) (*transaction.Transaction, error) {
	n, err := Parse(data)
	if nil != err {
		return nil, err
	}
	return MapTransactionNode(n)
}

// MapGroupTransaction - as MapTransaction for a document fetched from
// one of the node's transaction groups
func MapGroupTransaction(data []byte, group transaction.Group) (*transaction.Transaction, error) {
	n, err := Parse(data)
	if nil != err {
		return nil, err
	}
	return mapDocument(n, group)
}

// MapGroupTransactionNode - as MapGroupTransaction for an already
// decoded document
func MapGroupTransactionNode(n Node, group transaction.Group) (*transaction.Transaction, error) {
	return mapDocument(n, group)
}

// MapTransactionNode - as MapTransaction for an already decoded
// document
func MapTransactionNode(n Node) (*transaction.Transaction, error) {
	return mapDocument(n, transaction.NoGroup)
}

func mapDocument(n Node, group transaction.Group) (*transaction.Transaction, error) {
	if _, err := n.Object(); nil != err {
		return nil, err
	}
	info, err := mapInfo(n)
	if nil != err {
		return nil, err
	}
	f, err := mapFactory(n.Get("transaction"), info)
	if nil != err {
		return nil, err
	}
	return f.Info(info).Group(group).Build(), nil
}

// the top level part of a transaction object
func mapFactory(tx Node, info *transaction.Info) (*transaction.Factory, error) {
	if _, err := tx.Object(); nil != err {
		return nil, err
	}
	h, err := mapHeader(tx, 0)
	if nil != err {
		return nil, err
	}
	h.parent = info
	f, err := mapBody(tx, h)
	if nil != err {
		return nil, err
	}

	deadline, err := tx.Get("deadline").Uint64()
	if nil != err {
		return nil, err
	}
	maxFee, err := tx.Get("maxFee").Uint64()
	if nil != err {
		return nil, err
	}
	f.Version(h.version).Deadline(transaction.Deadline(deadline)).MaxFee(maxFee)

	if err := mapSignature(tx, f, h); nil != err {
		return nil, err
	}
	return f, nil
}

// signature and signer are optional; an all zero signature is the
// same as none
func mapSignature(tx Node, f *transaction.Factory, h header) error {
	if s := tx.Get("signature"); !s.IsNull() {
		signature, err := s.Signature()
		if nil != err {
			return err
		}
		if !signature.IsZero() {
			f.Signature(signature)
		}
	}
	if s := tx.First("signerPublicKey", "signer"); !s.IsNull() {
		key, err := s.PublicKey()
		if nil != err {
			return err
		}
		if !key.IsZero() {
			f.Signer(account.PublicAccount{PublicKey: key, Network: h.network})
		}
	}
	return nil
}

// type, then either separate network and version or the packed
// network<<8|version form
//
// an inner transaction without a network takes the aggregate's
func mapHeader(tx Node, outer chain.NetworkType) (header, error) {
	h := header{}
	code, err := tx.Get("type").Uint16()
	if nil != err {
		return h, err
	}
	h.kind, err = transaction.TypeFromRaw(code)
	if nil != err {
		return h, tx.Get("type").fail(err)
	}

	v := tx.Get("version")
	raw, err := v.Uint16()
	if nil != err {
		return h, err
	}

	switch {
	case tx.Has("network"):
		b, err := tx.Get("network").Uint8()
		if nil != err {
			return h, err
		}
		h.network, err = chain.NetworkTypeFromByte(b)
		if nil != err {
			return h, tx.Get("network").fail(err)
		}
		if raw > 0xff {
			return h, v.fail(fault.ErrInvalidVersion)
		}
		h.version = uint8(raw)

	case raw > 0xff:
		h.network, h.version, err = chain.UnpackVersion(raw)
		if nil != err {
			return h, v.fail(err)
		}
		h.legacy = true

	case 0 != outer:
		h.network = outer
		h.version = uint8(raw)

	default:
		return h, tx.Get("network").fail(fault.ErrMissingField)
	}

	if !h.kind.AcceptsVersion(h.version) {
		return h, v.fail(fault.ErrInvalidVersion)
	}
	return h, nil
}

func mapBody(tx Node, h header) (*transaction.Factory, error) {
	m, ok := kinds[h.kind]
	if !ok {
		return nil, tx.Get("type").fail(fault.ErrUnknownTransactionType)
	}
	f, err := m.from(tx, h)
	if nil != err {
		if fault.IsErrMapping(err) {
			return nil, err
		}
		return nil, tx.fail(err)
	}
	return f, nil
}

// meta and id of a top level document
//
// the newer schema has id next to meta, the older one inside it
func mapInfo(n Node) (*transaction.Info, error) {
	meta := n.Get("meta")
	if meta.IsNull() {
		return nil, nil
	}
	if _, err := meta.Object(); nil != err {
		return nil, err
	}

	info := &transaction.Info{}
	var err error
	if meta.Has("height") {
		if info.Height, err = meta.Get("height").Uint64(); nil != err {
			return nil, err
		}
	}
	if meta.Has("index") {
		if info.Index, err = meta.Get("index").Uint32(); nil != err {
			return nil, err
		}
	}
	if n.Has("id") {
		info.ID, err = n.Get("id").Text()
	} else if meta.Has("id") {
		info.ID, err = meta.Get("id").Text()
	}
	if nil != err {
		return nil, err
	}
	if info.Hash, err = optionalDigest(meta.Get("hash")); nil != err {
		return nil, err
	}
	if info.MerkleComponentHash, err = optionalDigest(meta.Get("merkleComponentHash")); nil != err {
		return nil, err
	}
	if info.AggregateHash, err = optionalDigest(meta.Get("aggregateHash")); nil != err {
		return nil, err
	}
	if meta.Has("aggregateId") {
		if info.AggregateID, err = meta.Get("aggregateId").Text(); nil != err {
			return nil, err
		}
	}
	return info, nil
}

func optionalDigest(n Node) (*merkle.Digest, error) {
	if n.IsNull() {
		return nil, nil
	}
	d, err := n.Digest()
	if nil != err {
		return nil, err
	}
	return &d, nil
}

// MapCosignature - a cosignature pushed by the listener or returned
// by REST: {parentHash, version, signerPublicKey, signature}
func MapCosignature(n Node, network chain.NetworkType) (transaction.CosignatureSigned, error) {
	c := transaction.CosignatureSigned{}
	if _, err := n.Object(); nil != err {
		return c, err
	}
	var err error
	if c.ParentHash, err = n.Get("parentHash").Digest(); nil != err {
		return c, err
	}
	cosignature, err := mapCosignature(n, network)
	if nil != err {
		return c, err
	}
	c.Version = cosignature.Version
	c.Signer = cosignature.Signer
	c.Signature = cosignature.Signature
	return c, nil
}

// version is optional and defaults to zero; the network of the
// signer is not part of the document
func mapCosignature(n Node, network chain.NetworkType) (transaction.Cosignature, error) {
	c := transaction.Cosignature{}
	if n.Has("version") {
		v, err := n.Get("version").Uint64()
		if nil != err {
			return c, err
		}
		c.Version = v
	}
	key, err := n.First("signerPublicKey", "signer").PublicKey()
	if nil != err {
		return c, err
	}
	c.Signer = account.PublicAccount{PublicKey: key, Network: network}
	c.Signature, err = n.Get("signature").Signature()
	if nil != err {
		return c, err
	}
	return c, nil
}
