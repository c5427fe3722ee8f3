// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package repository_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/mapping"
	"github.com/bitmark-inc/symbol-sdk-go/repository"
	"github.com/bitmark-inc/symbol-sdk-go/repository/mocks"
	"github.com/bitmark-inc/symbol-sdk-go/signing"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

func TestGetTransaction(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	signed := signedTransfer(t)
	tx, err := serializer.Deserialize(signed.Payload)
	if !assert.Nil(t, err, "deserialize error") {
		return
	}
	body, err := mapping.ToJSON(tx)
	if !assert.Nil(t, err, "to json error") {
		return
	}

	f := mocks.NewMockFetcher(ctl)
	f.EXPECT().
		FetchJSON(gomock.Any(), "/transactions/confirmed/"+signed.Hash.String()).
		Return(body, nil).
		Times(1)

	r := repository.NewTransactionRepository(f)
	actual, err := r.GetTransaction(context.Background(), transaction.Confirmed, signed.Hash)
	assert.Nil(t, err, "wrong error")
	if assert.NotNil(t, actual, "no transaction") {
		assert.Equal(t, transaction.TransferType, actual.Type, "type")
		assert.Equal(t, transaction.Confirmed, actual.Group, "group")
		assert.Equal(t, tx.Signature, actual.Signature, "signature")
	}
}

func TestGetTransactionErrors(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	signed := signedTransfer(t)

	f := mocks.NewMockFetcher(ctl)
	f.EXPECT().
		FetchJSON(gomock.Any(), "/transactions/partial/"+signed.Hash.String()).
		Return(nil, fault.ErrResourceNotFound).
		Times(1)
	f.EXPECT().
		FetchJSON(gomock.Any(), "/transactions/unconfirmed/"+signed.Hash.String()).
		Return([]byte(`{"transaction": {"type": 16724}}`), nil).
		Times(1)

	r := repository.NewTransactionRepository(f)

	_, err := r.GetTransaction(context.Background(), transaction.NoGroup, signed.Hash)
	assert.Equal(t, fault.ErrInvalidTransaction, err, "no group")

	_, err = r.GetTransaction(context.Background(), transaction.Partial, signed.Hash)
	assert.Equal(t, fault.ErrResourceNotFound, err, "fetch error")

	_, err = r.GetTransaction(context.Background(), transaction.Unconfirmed, signed.Hash)
	assert.True(t, fault.IsErrMapping(err), "mapping error: %v", err)
}

func TestAnnounce(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	signed := signedTransfer(t)
	expected := fmt.Sprintf(`{"payload":"%s"}`, signed.PayloadHex())

	f := mocks.NewMockFetcher(ctl)
	f.EXPECT().
		PutJSON(gomock.Any(), "/transactions", []byte(expected)).
		Return([]byte(`{"message":"packet 9 was pushed to the network via /transactions"}`), nil).
		Times(1)

	r := repository.NewTransactionRepository(f)
	reply, err := r.Announce(context.Background(), signed)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, "packet 9 was pushed to the network via /transactions", reply.Message, "message")
}

func TestAnnounceWrongRoute(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no calls are expected
	f := mocks.NewMockFetcher(ctl)
	r := repository.NewTransactionRepository(f)

	_, err := r.Announce(context.Background(), signedBonded(t))
	assert.Equal(t, fault.ErrUseAnnounceBonded, err, "bonded through announce")

	_, err = r.AnnounceAggregateBonded(context.Background(), signedTransfer(t))
	assert.Equal(t, fault.ErrNotAggregate, err, "transfer through partial")

	_, err = r.Announce(context.Background(), nil)
	assert.Equal(t, fault.ErrUnsigned, err, "nil")
}

func TestAnnounceAggregateBonded(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	signed := signedBonded(t)
	expected := fmt.Sprintf(`{"payload":"%s"}`, signed.PayloadHex())

	f := mocks.NewMockFetcher(ctl)
	f.EXPECT().
		PutJSON(gomock.Any(), "/transactions/partial", []byte(expected)).
		Return([]byte(`{"message":"ok"}`), nil).
		Times(1)

	r := repository.NewTransactionRepository(f)
	reply, err := r.AnnounceAggregateBonded(context.Background(), signed)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, "ok", reply.Message, "message")
}

func TestAnnounceCosignature(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	signed := signedBonded(t)
	c := signing.CosignAggregateHash(makeAccount(t, keyB), signed.Hash)
	expected, err := mapping.CosignatureToJSON(c)
	if !assert.Nil(t, err, "to json error") {
		return
	}

	f := mocks.NewMockFetcher(ctl)
	f.EXPECT().
		PutJSON(gomock.Any(), "/transactions/cosignature", expected).
		Return(nil, nil).
		Times(1)

	r := repository.NewTransactionRepository(f)
	reply, err := r.AnnounceCosignature(context.Background(), c)
	assert.Nil(t, err, "wrong error")
	assert.Equal(t, repository.AnnounceReply{}, reply, "reply")
}
