// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listener

import (
	"fmt"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/chain"
	"github.com/bitmark-inc/symbol-sdk-go/mapping"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

// StatusError - a transaction the node rejected
type StatusError struct {
	Address  *account.Address
	Hash     merkle.Digest
	Code     string
	Deadline transaction.Deadline
}

func (s StatusError) Error() string {
	return fmt.Sprintf("transaction: %s rejected: %s", s.Hash, s.Code)
}

// BlockInfo - header of a new block
type BlockInfo struct {
	Height         uint64
	Hash           merkle.Digest
	GenerationHash *merkle.Digest
	Timestamp      uint64
	Difficulty     uint64
	FeeMultiplier  uint32
	Signer         account.PublicAccount
	Network        chain.NetworkType
	Version        uint8
	Type           uint16
}

// Finalization - a block that can no longer be rolled back
type Finalization struct {
	Epoch  uint32
	Point  uint32
	Height uint64
	Hash   merkle.Digest
}

var channelGroups = map[Channel]transaction.Group{
	ConfirmedAdded:   transaction.Confirmed,
	UnconfirmedAdded: transaction.Unconfirmed,
	PartialAdded:     transaction.Partial,
}

func mapTransaction(n mapping.Node, channel Channel) (*transaction.Transaction, error) {
	return mapping.MapGroupTransactionNode(n, channelGroups[channel])
}

// {hash, code, deadline}
func mapStatus(n mapping.Node, address *account.Address) (*StatusError, error) {
	s := &StatusError{Address: address}
	var err error
	if s.Hash, err = n.Get("hash").Digest(); nil != err {
		return nil, err
	}
	if s.Code, err = n.Get("code").Text(); nil != err {
		return nil, err
	}
	deadline, err := n.Get("deadline").Uint64()
	if nil != err {
		return nil, err
	}
	s.Deadline = transaction.Deadline(deadline)
	return s, nil
}

// {block: {...}, meta: {hash, generationHash}}
func mapBlock(n mapping.Node) (*BlockInfo, error) {
	block := n.Get("block")
	meta := n.Get("meta")
	b := &BlockInfo{}

	var err error
	if b.Height, err = block.Get("height").Uint64(); nil != err {
		return nil, err
	}
	if b.Timestamp, err = block.Get("timestamp").Uint64(); nil != err {
		return nil, err
	}
	if block.Has("difficulty") {
		if b.Difficulty, err = block.Get("difficulty").Uint64(); nil != err {
			return nil, err
		}
	}
	if block.Has("feeMultiplier") {
		if b.FeeMultiplier, err = block.Get("feeMultiplier").Uint32(); nil != err {
			return nil, err
		}
	}
	if b.Type, err = block.Get("type").Uint16(); nil != err {
		return nil, err
	}

	version, err := block.Get("version").Uint16()
	if nil != err {
		return nil, err
	}
	if block.Has("network") {
		raw, err := block.Get("network").Uint8()
		if nil != err {
			return nil, err
		}
		if b.Network, err = chain.NetworkTypeFromByte(raw); nil != err {
			return nil, block.Get("network").Fail(err)
		}
		b.Version = uint8(version)
	} else if b.Network, b.Version, err = chain.UnpackVersion(version); nil != err {
		return nil, block.Get("version").Fail(err)
	}

	key, err := block.First("signerPublicKey", "signer").PublicKey()
	if nil != err {
		return nil, err
	}
	b.Signer = account.PublicAccount{PublicKey: key, Network: b.Network}

	if b.Hash, err = meta.Get("hash").Digest(); nil != err {
		return nil, err
	}
	if meta.Has("generationHash") {
		g, err := meta.Get("generationHash").Digest()
		if nil != err {
			return nil, err
		}
		b.GenerationHash = &g
	}
	return b, nil
}

// {finalizationEpoch, finalizationPoint, height, hash}
func mapFinalized(n mapping.Node) (*Finalization, error) {
	f := &Finalization{}
	var err error
	if f.Epoch, err = n.Get("finalizationEpoch").Uint32(); nil != err {
		return nil, err
	}
	if f.Point, err = n.Get("finalizationPoint").Uint32(); nil != err {
		return nil, err
	}
	if f.Height, err = n.Get("height").Uint64(); nil != err {
		return nil, err
	}
	if f.Hash, err = n.Get("hash").Digest(); nil != err {
		return nil, err
	}
	return f, nil
}
