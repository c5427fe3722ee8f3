// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signing_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
	"github.com/bitmark-inc/symbol-sdk-go/signing"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

func TestCosignatureOrder(t *testing.T) {
	a := makeAccount(t, keyA)
	b := makeAccount(t, keyB)
	c := makeAccount(t, keyC)
	d := makeAccount(t, keyD)
	g := generationHash(t)

	tx := makeAggregate(t, true, b, c, a.Address())
	unsigned, err := serializer.Serialize(tx)
	if nil != err {
		t.Fatalf("serialize error: %s", err)
	}

	signed, err := signing.SignWithCosigners(serializer, tx, a, []*account.Account{b, c}, g)
	if nil != err {
		t.Fatalf("cosign error: %s", err)
	}
	assert.Equal(t, len(unsigned)+2*transaction.CosignatureSize, len(signed.Payload), "payload length")
	assert.Equal(t, uint32(len(signed.Payload)), binary.LittleEndian.Uint32(signed.Payload), "size header")

	n, err := signing.VerifyCosignatures(signed.Payload, g)
	assert.Nil(t, err, "verify cosignatures")
	assert.Equal(t, 2, n, "cosignatures verified")

	decoded, err := serializer.Deserialize(signed.Payload)
	if nil != err {
		t.Fatalf("deserialize error: %s", err)
	}
	aggregate := decoded.Body.(*transaction.Aggregate)
	if !assert.Equal(t, 2, len(aggregate.Cosignatures), "cosignature count") {
		t.FailNow()
	}
	assert.Equal(t, b.PublicAccount(), aggregate.Cosignatures[0].Signer, "first cosigner")
	assert.Equal(t, c.PublicAccount(), aggregate.Cosignatures[1].Signer, "second cosigner")
	for i, cosignature := range aggregate.Cosignatures {
		assert.Equal(t, uint64(0), cosignature.Version, "%d: version", i)
		assert.True(t, cosignature.Signer.Verify(signed.Hash[:], cosignature.Signature), "%d: signature", i)
	}

	assert.True(t, signing.SignedByAccount(decoded, a.PublicKey()), "initiator")
	assert.True(t, signing.SignedByAccount(decoded, b.PublicKey()), "cosigner b")
	assert.True(t, signing.SignedByAccount(decoded, c.PublicKey()), "cosigner c")
	assert.False(t, signing.SignedByAccount(decoded, d.PublicKey()), "stranger d")

	// flipping a cosignature bit is detected at its offset
	broken := append([]byte{}, signed.Payload...)
	broken[len(broken)-1] ^= 0x80
	n, err = signing.VerifyCosignatures(broken, g)
	assert.Equal(t, 1, n, "verified before failure")
	assert.True(t, fault.IsErrInvalid(err), "wrong error class: %v", err)
	assert.Contains(t, err.Error(), "cosignatures", "field missing")
}

func TestSignWithCosignatories(t *testing.T) {
	a := makeAccount(t, keyA)
	b := makeAccount(t, keyB)
	c := makeAccount(t, keyC)
	g := generationHash(t)

	tx := makeAggregate(t, true, b, c, a.Address())
	initial, err := signing.SignWith(serializer, tx, a, g)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}

	// cosignatures gathered off line from the announced hash
	cb := signing.CosignAggregateHash(b, initial.Hash)
	cc := signing.CosignAggregateHash(c, initial.Hash)
	assert.Equal(t, initial.Hash, cb.ParentHash, "parent hash")

	signed, err := signing.SignWithCosignatories(serializer, tx, a, []transaction.CosignatureSigned{cb, cc}, g)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}

	direct, err := signing.SignWithCosigners(serializer, tx, a, []*account.Account{b, c}, g)
	assert.Nil(t, err, "direct cosign")
	assert.Equal(t, direct.Payload, signed.Payload, "same payload both ways")

	stale := signing.CosignAggregateHash(b, merkle.NewDigest([]byte("another aggregate")))
	_, err = signing.SignWithCosignatories(serializer, tx, a, []transaction.CosignatureSigned{stale}, g)
	assert.Equal(t, fault.ErrInvalidHash, err, "cosignature of another aggregate")

	forged := cb
	forged.Signer = c.PublicAccount()
	_, err = signing.SignWithCosignatories(serializer, tx, a, []transaction.CosignatureSigned{forged}, g)
	assert.Equal(t, fault.ErrSignatureVerification, err, "forged cosignature")
}

func TestCosignatureTransaction(t *testing.T) {
	a := makeAccount(t, keyA)
	b := makeAccount(t, keyB)
	c := makeAccount(t, keyC)
	g := generationHash(t)

	tx := makeAggregate(t, true, b, c, a.Address())

	_, err := signing.NewCosignature(tx)
	assert.Equal(t, fault.ErrAggregateNotAnnounced, err, "unannounced aggregate")
	assert.True(t, fault.IsErrState(err), "error class")

	_, err = signing.NewCosignature(makeTransfer(t, a.Address(), ""))
	assert.Equal(t, fault.ErrNotAggregate, err, "transfer")

	signed, err := signing.SignWith(serializer, tx, a, g)
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}

	// as fetched back from a node
	announced, err := serializer.Deserialize(signed.Payload)
	if nil != err {
		t.Fatalf("deserialize error: %s", err)
	}
	announced.Info = &transaction.Info{Hash: &signed.Hash}

	ct, err := signing.NewCosignature(announced)
	if nil != err {
		t.Fatalf("cosignature error: %s", err)
	}
	assert.Equal(t, signed.Hash, ct.Hash(), "hash")
	assert.Equal(t, announced, ct.Transaction(), "transaction")

	cosignature := ct.SignWith(b)
	assert.Equal(t, signed.Hash, cosignature.ParentHash, "parent hash")
	assert.Equal(t, b.PublicAccount(), cosignature.Signer, "signer")
	assert.True(t, b.PublicAccount().Verify(signed.Hash[:], cosignature.Signature), "signature")
	assert.Equal(t, transaction.Cosignature{Signer: b.PublicAccount(), Signature: cosignature.Signature}, cosignature.Cosignature(), "appended part")
}
