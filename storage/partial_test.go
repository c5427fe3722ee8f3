// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/catbuffer"
	"github.com/bitmark-inc/symbol-sdk-go/chain"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
	"github.com/bitmark-inc/symbol-sdk-go/mosaic"
	"github.com/bitmark-inc/symbol-sdk-go/signing"
	"github.com/bitmark-inc/symbol-sdk-go/storage"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

const (
	network = chain.TestNet

	generationHashHex = "57F7DA205008026C776CB6AED843393F04CD458E0AA2D9F1D5F31A402072B2D6"

	keyA = "9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60"
	keyB = "4ccd089b28ff96da9db6c346ec114e0f5b8a319f35aba624da8cf6ed4fb8a6fb"
	keyC = "c5aa8df43f9f837bedb7442f31dcb7b166d38535076f094b85ce3a2e0b4458f7"
)

var serializer = catbuffer.Serializer{}

func makeAccount(t *testing.T, privateKey string) *account.Account {
	a, err := account.AccountFromPrivateHex(privateKey, network)
	if nil != err {
		t.Fatalf("account error: %s", err)
	}
	return a
}

// a bonded aggregate from A containing transfers from B and C,
// signed by A only
func makePartial(t *testing.T, deadline transaction.Deadline) *transaction.Signed {
	a := makeAccount(t, keyA)
	b := makeAccount(t, keyB)
	c := makeAccount(t, keyC)

	var inner []transaction.Embedded
	for _, signer := range []*account.Account{b, c} {
		f, err := transaction.NewTransferFactory(network, a.Address(), []mosaic.Mosaic{{ID: 1, Amount: 1}}, nil)
		if nil != err {
			t.Fatalf("transfer error: %s", err)
		}
		e, err := f.Deadline(deadline).Build().ToAggregate(signer.PublicAccount())
		if nil != err {
			t.Fatalf("embed error: %s", err)
		}
		inner = append(inner, e)
	}
	f, err := transaction.NewAggregateBondedFactory(serializer, network, inner, nil)
	if nil != err {
		t.Fatalf("aggregate error: %s", err)
	}

	g, _ := merkle.DigestFromHex(generationHashHex)
	signed, err := signing.SignWith(serializer, f.Deadline(deadline).Build(), a, g)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}
	return signed
}

func TestSigned(t *testing.T) {
	setup(t)
	defer teardown()

	signed := makePartial(t, 1000)
	assert.Nil(t, storage.StoreSigned(signed), "store error")

	payload, found := storage.GetSigned(signed.Hash)
	assert.True(t, found, "not found")
	assert.Equal(t, signed.Payload, payload, "payload")

	assert.Nil(t, storage.DeleteSigned(signed.Hash), "delete error")
	_, found = storage.GetSigned(signed.Hash)
	assert.False(t, found, "found after delete")

	assert.Equal(t, fault.ErrInvalidTransaction, storage.StoreSigned(nil), "nil signed")
}

func TestCollectCosignatures(t *testing.T) {
	setup(t)
	defer teardown()

	b := makeAccount(t, keyB)
	c := makeAccount(t, keyC)

	signed := makePartial(t, 1000)
	assert.Nil(t, storage.StorePartial(signed), "store error")

	payload, found := storage.GetPartial(signed.Hash)
	assert.True(t, found, "partial not found")
	assert.Equal(t, signed.Payload, payload, "partial payload")

	// C arrives before B and the order is kept
	cc := signing.CosignAggregateHash(c, signed.Hash)
	cb := signing.CosignAggregateHash(b, signed.Hash)
	assert.Nil(t, storage.AddCosignature(cc), "add C error")
	assert.Nil(t, storage.AddCosignature(cb), "add B error")
	assert.Equal(t, fault.ErrCosignatureExists, storage.AddCosignature(cb), "duplicate B")

	forged := cb
	forged.Signature[0] ^= 0x01
	assert.Equal(t, fault.ErrSignatureVerification, storage.AddCosignature(forged), "forged")

	unknown := signing.CosignAggregateHash(b, merkle.NewDigest([]byte("unknown")))
	assert.Equal(t, fault.ErrPartialNotFound, storage.AddCosignature(unknown), "unknown partial")

	cosignatures, err := storage.CollectCosignatures(signed.Hash)
	assert.Nil(t, err, "collect error")
	assert.Equal(t, []transaction.CosignatureSigned{cc, cb}, cosignatures, "cosignatures")

	// the collected cosignatures complete the aggregate
	tx, err := serializer.Deserialize(signed.Payload)
	if !assert.Nil(t, err, "deserialize error") {
		return
	}
	g, _ := merkle.DigestFromHex(generationHashHex)
	complete, err := signing.SignWithCosignatories(serializer, tx, makeAccount(t, keyA), cosignatures, g)
	if !assert.Nil(t, err, "complete error") {
		return
	}
	assert.Equal(t, signed.Hash, complete.Hash, "hash changed by cosignatures")
	n, err := signing.VerifyCosignatures(complete.Payload, g)
	assert.Nil(t, err, "verify error")
	assert.Equal(t, 2, n, "verified cosignatures")

	assert.Nil(t, storage.DeletePartial(signed.Hash), "delete error")
	_, found = storage.GetPartial(signed.Hash)
	assert.False(t, found, "partial after delete")
	_, err = storage.CollectCosignatures(signed.Hash)
	assert.Equal(t, fault.ErrPartialNotFound, err, "collect after delete")
	key := b.PublicKey()
	cosignatureKey := append(append([]byte{}, signed.Hash[:]...), key[:]...)
	assert.False(t, storage.Pool.Cosignatures.Has(cosignatureKey), "cosignature left behind")
}

func TestCosignatureCounter(t *testing.T) {
	setup(t)
	defer teardown()

	signed := makePartial(t, 1000)
	assert.Nil(t, storage.StorePartial(signed), "store error")

	_, found := storage.Pool.NextCount.GetN(signed.Hash[:])
	assert.False(t, found, "counter before any cosignature")

	for i, k := range []string{keyB, keyC} {
		signer := makeAccount(t, k)
		assert.Nil(t, storage.AddCosignature(signing.CosignAggregateHash(signer, signed.Hash)), "%d: add error", i)

		key := signer.PublicKey()
		record := storage.Pool.Cosignatures.Get(append(append([]byte{}, signed.Hash[:]...), key[:]...))
		if !assert.True(t, len(record) >= 8, "%d: record missing", i) {
			return
		}
		assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, byte(i)}, record[:8], "%d: arrival count", i)

		next, found := storage.Pool.NextCount.GetN(signed.Hash[:])
		assert.True(t, found, "%d: counter missing", i)
		assert.Equal(t, uint64(i+1), next, "%d: next count", i)
	}
}

func TestStorePartialNotBonded(t *testing.T) {
	setup(t)
	defer teardown()

	a := makeAccount(t, keyA)
	f, _ := transaction.NewTransferFactory(network, a.Address(), nil, nil)
	g, _ := merkle.DigestFromHex(generationHashHex)
	signed, err := signing.SignWith(serializer, f.Deadline(1).Build(), a, g)
	if !assert.Nil(t, err, "sign error") {
		return
	}
	assert.Equal(t, fault.ErrNotAggregate, storage.StorePartial(signed), "transfer stored as partial")
}

func TestExpirePartials(t *testing.T) {
	setup(t)
	defer teardown()

	early := makePartial(t, 1000)
	late := makePartial(t, 5000)
	assert.Nil(t, storage.StorePartial(early), "store early")
	assert.Nil(t, storage.StorePartial(late), "store late")
	assert.Nil(t, storage.AddCosignature(signing.CosignAggregateHash(makeAccount(t, keyB), early.Hash)), "cosign early")

	n, err := storage.ExpirePartials(1000)
	assert.Nil(t, err, "first expire error")
	assert.Equal(t, 0, n, "deadline equal to now is not expired")

	n, err = storage.ExpirePartials(1001)
	assert.Nil(t, err, "second expire error")
	assert.Equal(t, 1, n, "expired count")

	_, found := storage.GetPartial(early.Hash)
	assert.False(t, found, "early partial kept")
	_, found = storage.GetPartial(late.Hash)
	assert.True(t, found, "late partial removed")

	n, err = storage.ExpirePartials(1001)
	assert.Nil(t, err, "third expire error")
	assert.Equal(t, 0, n, "expired twice")
}
