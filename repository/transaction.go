// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package repository

import (
	"context"

	"github.com/bitmark-inc/logger"
	jsoniter "github.com/json-iterator/go"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/mapping"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

// REST routes
const (
	transactionsPath = "/transactions"
	partialPath      = "/transactions/partial"
	cosignaturePath  = "/transactions/cosignature"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AnnounceReply - what a node says about an announcement
type AnnounceReply struct {
	Message string `json:"message"`
}

type announceRequest struct {
	Payload string `json:"payload"`
}

// TransactionRepository - read and announce transactions
type TransactionRepository struct {
	log     *logger.L
	fetcher Fetcher
}

// NewTransactionRepository - create a repository on a transport
func NewTransactionRepository(fetcher Fetcher) *TransactionRepository {
	return &TransactionRepository{
		log:     logger.New("repository"),
		fetcher: fetcher,
	}
}

// GetTransaction - fetch one transaction from a group
func (r *TransactionRepository) GetTransaction(ctx context.Context, group transaction.Group, hash merkle.Digest) (*transaction.Transaction, error) {
	if transaction.NoGroup == group || "" == group.String() {
		return nil, fault.ErrInvalidTransaction
	}
	data, err := r.fetcher.FetchJSON(ctx, transactionsPath+"/"+group.String()+"/"+hash.String())
	if nil != err {
		return nil, err
	}
	tx, err := mapping.MapGroupTransaction(data, group)
	if nil != err {
		r.log.Warnf("transaction: %s  mapping error: %s", hash, err)
		return nil, err
	}
	return tx, nil
}

// Announce - send a signed transaction to the node
func (r *TransactionRepository) Announce(ctx context.Context, signed *transaction.Signed) (AnnounceReply, error) {
	if nil == signed {
		return AnnounceReply{}, fault.ErrUnsigned
	}
	if transaction.AggregateBondedType == signed.Type {
		return AnnounceReply{}, fault.ErrUseAnnounceBonded
	}
	return r.announce(ctx, transactionsPath, signed)
}

// AnnounceAggregateBonded - send a bonded aggregate waiting for
// cosignatures
func (r *TransactionRepository) AnnounceAggregateBonded(ctx context.Context, signed *transaction.Signed) (AnnounceReply, error) {
	if nil == signed {
		return AnnounceReply{}, fault.ErrUnsigned
	}
	if transaction.AggregateBondedType != signed.Type {
		return AnnounceReply{}, fault.ErrNotAggregate
	}
	return r.announce(ctx, partialPath, signed)
}

// AnnounceCosignature - send a cosignature of a bonded aggregate
func (r *TransactionRepository) AnnounceCosignature(ctx context.Context, c transaction.CosignatureSigned) (AnnounceReply, error) {
	body, err := mapping.CosignatureToJSON(c)
	if nil != err {
		return AnnounceReply{}, err
	}
	return r.put(ctx, cosignaturePath, body)
}

func (r *TransactionRepository) announce(ctx context.Context, path string, signed *transaction.Signed) (AnnounceReply, error) {
	body, err := json.Marshal(announceRequest{Payload: signed.PayloadHex()})
	if nil != err {
		return AnnounceReply{}, err
	}
	r.log.Infof("announce: %s  type: %s  to: %s", signed.Hash, signed.Type, path)
	return r.put(ctx, path, body)
}

func (r *TransactionRepository) put(ctx context.Context, path string, body []byte) (AnnounceReply, error) {
	data, err := r.fetcher.PutJSON(ctx, path, body)
	if nil != err {
		return AnnounceReply{}, err
	}
	reply := AnnounceReply{}
	if 0 == len(data) {
		return reply, nil
	}
	if err := json.Unmarshal(data, &reply); nil != err {
		return AnnounceReply{}, fault.Mapping([]string{"$"}, fault.ErrTypeMismatch)
	}
	return reply, nil
}
