// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mapping_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/mapping"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
	"github.com/bitmark-inc/symbol-sdk-go/message"
	"github.com/bitmark-inc/symbol-sdk-go/mosaic"
	"github.com/bitmark-inc/symbol-sdk-go/namespace"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
	"github.com/bitmark-inc/symbol-sdk-go/util"
)

const (
	hashHex   = "ACF8D8A8B3AAC52D0B5F8FDB8E7D9F28B2C4B1C4A1DE0A0C1C45C37F4D90A0E1"
	merkleHex = "1F2E3D4C5B6A79880F1E2D3C4B5A69788796A5B4C3D2E1F00112233445566778"
)

func TestMapTransferDocument(t *testing.T) {
	sender := makeAccount(t, senderPrivateKey)
	recipient := makeAccount(t, otherPrivateKey).Address()

	doc := fmt.Sprintf(`{
  "meta": {"height": "12", "hash": "%s", "merkleComponentHash": "%s", "index": 3},
  "id": "5E6F4C2D1A0B3C4D5E6F7A8B",
  "transaction": {
    "signature": "%s",
    "signerPublicKey": "%s",
    "version": 1,
    "network": 152,
    "type": 16724,
    "maxFee": "20000",
    "deadline": "4886718345",
    "recipientAddress": "%s",
    "mosaics": [{"id": "6BED913FA20223F8", "amount": "10"}],
    "message": "0048656C6C6F"
  }
}`, hashHex, merkleHex, strings.Repeat("AB", 64), sender.PublicKey(), recipient.Encoded())

	tx, err := mapping.MapTransaction([]byte(doc))
	if !assert.Nil(t, err, "map error") {
		return
	}

	assert.Equal(t, transaction.TransferType, tx.Type, "type")
	assert.Equal(t, network, tx.Network, "network")
	assert.Equal(t, uint8(1), tx.Version, "version")
	assert.Equal(t, fixedDeadline, tx.Deadline, "deadline")
	assert.Equal(t, fixedFee, tx.MaxFee, "max fee")
	if assert.NotNil(t, tx.Signer, "signer") {
		assert.Equal(t, sender.PublicAccount(), *tx.Signer, "signer")
	}
	if assert.NotNil(t, tx.Signature, "signature") {
		assert.Equal(t, strings.Repeat("AB", 64), tx.Signature.String(), "signature")
	}

	b := tx.Body.(*transaction.Transfer)
	assert.Equal(t, recipient, b.Recipient, "recipient")
	assert.Equal(t, []mosaic.Mosaic{{ID: mosaic.UnresolvedID(0x6BED913FA20223F8), Amount: 10}}, b.Mosaics, "mosaics")
	assert.Equal(t, "Hello", b.Message.Text(), "message")
	assert.Equal(t, message.Plain, b.Message.Type, "message type")

	if assert.NotNil(t, tx.Info, "info") {
		assert.Equal(t, uint64(12), tx.Info.Height, "height")
		assert.Equal(t, uint32(3), tx.Info.Index, "index")
		assert.Equal(t, "5E6F4C2D1A0B3C4D5E6F7A8B", tx.Info.ID, "id")
		assert.Equal(t, hashHex, tx.Info.Hash.String(), "hash")
		assert.Equal(t, merkleHex, tx.Info.MerkleComponentHash.String(), "merkle component hash")
		assert.False(t, tx.Info.IsEmbedded(), "top level reported as embedded")
	}
}

func TestMapLegacyDocument(t *testing.T) {
	sender := makeAccount(t, senderPrivateKey)
	recipient := makeAccount(t, otherPrivateKey).Address()

	// packed version 0x9801, uint64 values as [lo, hi] words, id
	// inside meta and a base32 recipient
	doc := fmt.Sprintf(`{
  "meta": {"height": [1860, 0], "hash": "%s", "merkleComponentHash": "%s", "index": 0, "id": "5A3C5D9B2E7F8A0001000000"},
  "transaction": {
    "signature": "%s",
    "signer": "%s",
    "version": 38913,
    "type": 16724,
    "maxFee": [0, 0],
    "deadline": [3266625578, 11],
    "recipient": "%s",
    "message": {"type": 0, "payload": "48656C6C6F"},
    "mosaics": [{"id": [3646934825, 3576016193], "amount": [10000000, 0]}]
  }
}`, hashHex, merkleHex, strings.Repeat("00", 64), sender.PublicKey(), recipient.Plain())

	tx, err := mapping.MapTransaction([]byte(doc))
	if !assert.Nil(t, err, "map error") {
		return
	}

	assert.Equal(t, network, tx.Network, "network from packed version")
	assert.Equal(t, uint8(1), tx.Version, "version from packed version")
	assert.Equal(t, transaction.Deadline(50511265834), tx.Deadline, "deadline words")
	assert.Equal(t, uint64(0), tx.MaxFee, "max fee words")
	assert.Nil(t, tx.Signature, "zero signature should be absent")
	if assert.NotNil(t, tx.Signer, "signer") {
		assert.Equal(t, sender.PublicKey(), tx.Signer.PublicKey, "signer")
	}

	b := tx.Body.(*transaction.Transfer)
	assert.Equal(t, recipient, b.Recipient, "recipient")
	assert.Equal(t, "Hello", b.Message.Text(), "message")
	if assert.Equal(t, 1, len(b.Mosaics), "mosaic count") {
		assert.Equal(t, uint64(0xD525AD41D95FCF29), b.Mosaics[0].ID.Uint64(), "mosaic id words")
		assert.True(t, b.Mosaics[0].ID.IsAlias(), "high bit id should be an alias")
		assert.Equal(t, uint64(10000000), b.Mosaics[0].Amount, "amount words")
	}

	if assert.NotNil(t, tx.Info, "info") {
		assert.Equal(t, uint64(1860), tx.Info.Height, "height")
		assert.Equal(t, "5A3C5D9B2E7F8A0001000000", tx.Info.ID, "id inside meta")
	}
}

func TestMapLegacyHashAlgorithm(t *testing.T) {
	recipient := makeAccount(t, otherPrivateKey).Address()
	secret := strings.Repeat("3F", 32)

	document := func(algorithm int) string {
		return fmt.Sprintf(`{"transaction": {
  "version": 38913, "type": 16722, "maxFee": "0", "deadline": "1",
  "mosaicId": "6BED913FA20223F8", "amount": "1", "duration": "100",
  "hashAlgorithm": %d, "secret": "%s", "recipient": "%s"}}`, algorithm, secret, recipient.Encoded())
	}

	// older numbering: 0 sha3, 1 keccak, 2 hash160, 3 hash256
	tx, err := mapping.MapTransaction([]byte(document(0)))
	if assert.Nil(t, err, "sha3 error") {
		assert.Equal(t, transaction.SecretSha3_256, tx.Body.(*transaction.SecretLock).Algorithm, "sha3")
	}
	tx, err = mapping.MapTransaction([]byte(document(3)))
	if assert.Nil(t, err, "hash256 error") {
		assert.Equal(t, transaction.SecretHash256, tx.Body.(*transaction.SecretLock).Algorithm, "hash256")
	}

	_, err = mapping.MapTransaction([]byte(document(1)))
	assert.True(t, errors.Is(err, fault.ErrInvalidHashAlgorithm), "keccak accepted: %v", err)
	assert.Equal(t, "transaction.hashAlgorithm", errorPath(err), "path")
}

func TestMapErrors(t *testing.T) {
	recipient := makeAccount(t, otherPrivateKey).Address().Encoded()
	other := makeAccount(t, otherPrivateKey).PublicKey().String()

	transfer := func(extra string) string {
		return fmt.Sprintf(`{"transaction": {"version": 1, "network": 152, "type": 16724,
  "maxFee": "0", "deadline": "1", "recipientAddress": "%s"%s}}`, recipient, extra)
	}

	items := []struct {
		document string
		path     string
		err      error
	}{
		{`[1, 2]`, "", fault.ErrTypeMismatch},
		{`{"transaction": "text"}`, "transaction", fault.ErrTypeMismatch},
		{`{"meta": {}}`, "transaction", fault.ErrMissingField},
		{`{"transaction": {"version": 1, "network": 152, "type": 16793}}`, "transaction.type", fault.ErrUnknownTransactionType},
		{`{"transaction": {"version": 9, "network": 152, "type": 16724}}`, "transaction.version", fault.ErrInvalidVersion},
		{`{"transaction": {"version": 1, "type": 16724}}`, "transaction.network", fault.ErrMissingField},
		{`{"transaction": {"version": 1, "network": 7, "type": 16724}}`, "transaction.network", fault.ErrInvalidNetworkType},
		{transfer(`, "mosaics": [{"id": "01"}]`), "transaction.mosaics[0].amount", fault.ErrMissingField},
		{transfer(`, "mosaics": [{"id": "01", "amount": "1"}, {"id": true, "amount": "1"}]`), "transaction.mosaics[1].id", fault.ErrTypeMismatch},
		{transfer(`, "mosaics": [{"id": "01", "amount": "18446744073709551616"}]`), "transaction.mosaics[0].amount", fault.ErrUint64OutOfRange},
		{transfer(`, "mosaics": [{"id": "01", "amount": ["1", 0]}]`), "transaction.mosaics[0].amount", fault.ErrTypeMismatch},
		{transfer(`, "message": "XYZ"`), "transaction.message", fault.ErrHexDecode},
		{transfer(`, "signature": "0011"`), "transaction.signature", fault.ErrInvalidSignature},
		{fmt.Sprintf(`{"transaction": {"version": 1, "network": 152, "type": 16705, "maxFee": "0", "deadline": "1",
  "transactions": [{"transaction": {"version": 1, "network": 104, "type": 16724, "signerPublicKey": "%s", "recipientAddress": "%s"}}]}}`,
			other, recipient), "transaction.transactions[0].transaction.network", fault.ErrWrongNetwork},
		{fmt.Sprintf(`{"transaction": {"version": 1, "network": 152, "type": 16705, "maxFee": "0", "deadline": "1",
  "transactions": [{"transaction": {"version": 1, "type": 16961, "signerPublicKey": "%s"}}]}}`,
			other), "transaction.transactions[0].transaction.type", fault.ErrEmbeddedNotAllowed},
	}

	for i, item := range items {
		_, err := mapping.MapTransaction([]byte(item.document))
		if !assert.NotNil(t, err, "%d: expected error", i) {
			continue
		}
		assert.True(t, errors.Is(err, item.err), "%d: actual error: %s", i, err)
		if "" != item.path {
			assert.Equal(t, item.path, errorPath(err), "%d: path", i)
		}
	}
}

func TestMapAggregateInheritance(t *testing.T) {
	sender := makeAccount(t, senderPrivateKey)
	other := makeAccount(t, otherPrivateKey)

	doc := fmt.Sprintf(`{
  "meta": {"height": "99", "hash": "%s", "merkleComponentHash": "%s", "index": 1},
  "id": "AGGREGATE-ID",
  "transaction": {
    "version": 1, "network": 152, "type": 16961, "maxFee": "20000", "deadline": "4886718345",
    "signerPublicKey": "%s",
    "transactions": [
      {"meta": {"height": "99", "index": 0}, "id": "INNER-ID",
       "transaction": {"version": 1, "type": 16724, "signerPublicKey": "%s", "recipientAddress": "%s", "mosaics": []}}
    ],
    "cosignatures": [{"signerPublicKey": "%s", "signature": "%s"}]
  }
}`, hashHex, merkleHex, sender.PublicKey(), other.PublicKey(), sender.Address().Encoded(), other.PublicKey(), strings.Repeat("CD", 64))

	tx, err := mapping.MapTransaction([]byte(doc))
	if !assert.Nil(t, err, "map error") {
		return
	}

	b := tx.Body.(*transaction.Aggregate)
	if !assert.Equal(t, 1, len(b.Inner), "inner count") {
		return
	}
	inner := b.Inner[0]
	assert.Equal(t, other.PublicAccount(), inner.Signer, "inner signer")
	assert.Equal(t, network, inner.Transaction.Network, "network from aggregate")
	assert.Equal(t, fixedDeadline, inner.Transaction.Deadline, "deadline from aggregate")
	assert.Equal(t, fixedFee, inner.Transaction.MaxFee, "fee from aggregate")
	if assert.NotNil(t, inner.Transaction.Info, "inner info") {
		assert.True(t, inner.Transaction.Info.IsEmbedded(), "inner not embedded")
		assert.Equal(t, "INNER-ID", inner.Transaction.Info.ID, "inner id")
		assert.Equal(t, "AGGREGATE-ID", inner.Transaction.Info.AggregateID, "aggregate id")
		assert.Equal(t, hashHex, inner.Transaction.Info.AggregateHash.String(), "aggregate hash")
	}

	if assert.Equal(t, 1, len(b.Cosignatures), "cosignature count") {
		c := b.Cosignatures[0]
		assert.Equal(t, uint64(0), c.Version, "default version")
		assert.Equal(t, other.PublicAccount(), c.Signer, "cosigner")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	sender := makeAccount(t, senderPrivateKey)
	other := makeAccount(t, otherPrivateKey)
	recipient := other.Address()
	alias := account.AddressFromNamespace(0x85bbea6cc462b244, network)

	rootID, _ := namespace.IDFromName("bitmark", 0)
	mosaicID := mosaic.IDFromNonce(12345, sender.Address())
	msg, _ := message.NewPlain("round trip")
	secret := transaction.SecretSha3_256.Hash([]byte("proof"))

	inner := []transaction.Embedded{
		embed(t, sender.PublicAccount())(transaction.NewTransferFactory(network, recipient, []mosaic.Mosaic{{ID: 1, Amount: 5}}, msg)),
		embed(t, other.PublicAccount())(transaction.NewAccountMetadataFactory(network, recipient, 7, []byte("abc"))),
	}
	complete := fixed(t)(transaction.NewAggregateCompleteFactory(serializer, network, inner, []transaction.Cosignature{
		{Version: 0, Signer: other.PublicAccount(), Signature: other.Sign([]byte("x"))},
	}))
	bonded := fixed(t)(transaction.NewAggregateBondedFactory(serializer, network, inner[:1], nil))

	hash := merkle.NewDigest([]byte("announced"))
	info := &transaction.Info{Height: 1000, Index: 2, ID: "5E6F4C2D1A0B3C4D5E6F7A8B", Hash: &hash}

	factories := []*transaction.Factory{
		fixed(t)(transaction.NewTransferFactory(network, recipient, nil, nil)),
		fixed(t)(transaction.NewTransferFactory(network, alias, []mosaic.Mosaic{{ID: 3, Amount: 1}, {ID: 2, Amount: 9}}, msg)).Signer(sender.PublicAccount()).Signature(sender.Sign([]byte("x"))).Info(info),
		fixed(t)(transaction.NewRootNamespaceFactory(network, "bitmark", 1000)),
		fixed(t)(transaction.NewChildNamespaceFactory(network, "sub_name", rootID)),
		fixed(t)(transaction.NewAddressAliasFactory(network, namespace.Link, rootID, recipient)),
		fixed(t)(transaction.NewMosaicAliasFactory(network, namespace.Unlink, rootID, mosaicID)),
		fixed(t)(transaction.NewMosaicDefinitionForOwnerFactory(network, 12345, sender.Address(), mosaic.SupplyMutable|mosaic.Transferable, 6, 0)),
		fixed(t)(transaction.NewMosaicSupplyChangeFactory(network, mosaicID.Unresolved(), mosaic.Increase, 1000000)),
		fixed(t)(transaction.NewMosaicSupplyRevocationFactory(network, recipient, mosaic.Mosaic{ID: mosaicID.Unresolved(), Amount: 3})),
		fixed(t)(transaction.NewMultisigAccountModificationFactory(network, 1, -1, []account.Address{recipient}, []account.Address{sender.Address()})),
		complete,
		bonded,
		fixed(t)(transaction.NewHashLockFactory(network, mosaic.Mosaic{ID: mosaicID.Unresolved(), Amount: 10000000}, 480, secret.String())),
		fixed(t)(transaction.NewSecretLockFactory(network, mosaic.Mosaic{ID: 1, Amount: 1}, 100, transaction.SecretSha3_256, secret.String(), recipient)),
		fixed(t)(transaction.NewSecretLockFactory(network, mosaic.Mosaic{ID: 1, Amount: 1}, 100, transaction.SecretHash160, "0102030405060708090a0b0c0d0e0f1011121314", recipient)),
		fixed(t)(transaction.NewSecretProofFactory(network, transaction.SecretSha3_256, recipient, secret.String(), "70726f6f66")),
		fixed(t)(transaction.NewAccountAddressRestrictionFactory(network, transaction.BlockOutgoingAddress, []account.Address{recipient}, nil)),
		fixed(t)(transaction.NewAccountMosaicRestrictionFactory(network, transaction.AllowIncomingMosaic, nil, []mosaic.UnresolvedID{mosaicID.Unresolved()})),
		fixed(t)(transaction.NewAccountOperationRestrictionFactory(network, transaction.AllowOutgoingOperationType, []transaction.Type{transaction.TransferType, transaction.HashLockType}, nil)),
		fixed(t)(transaction.NewMosaicAddressRestrictionFactory(network, mosaicID.Unresolved(), 1, recipient, 0xffffffffffffffff, 2)),
		fixed(t)(transaction.NewMosaicGlobalRestrictionFactory(network, mosaicID.Unresolved(), 1, 0, mosaic.None, 2, mosaic.GE, 0)),
		fixed(t)(transaction.NewAccountMetadataFactory(network, recipient, 1, []byte("value"))),
		fixed(t)(transaction.NewMosaicMetadataFactory(network, recipient, 2, mosaicID.Unresolved(), nil)),
		fixed(t)(transaction.NewNamespaceMetadataFactory(network, recipient, 3, rootID, []byte{1, 2, 3})).ValueSizeDelta(-2),
		fixed(t)(transaction.NewAccountKeyLinkFactory(network, other.PublicKey(), transaction.Link)),
		fixed(t)(transaction.NewNodeKeyLinkFactory(network, other.PublicKey(), transaction.Unlink)),
		fixed(t)(transaction.NewVrfKeyLinkFactory(network, other.PublicKey(), transaction.Link)),
		fixed(t)(transaction.NewVotingKeyLinkFactory(network, other.PublicKey(), 1, 26280, transaction.Link)),
	}

	seen := make(map[transaction.Type]bool)
	for i, f := range factories {
		tx := f.Build()
		seen[tx.Type] = true

		data, err := mapping.ToJSON(tx)
		if nil != err {
			t.Errorf("%d: %s: to json error: %s", i, tx.Type, err)
			continue
		}
		mapped, err := mapping.MapTransaction(data)
		if nil != err {
			t.Errorf("%d: %s: map error: %s", i, tx.Type, err)
			t.Errorf("*** GENERATED JSON:\n%s", data)
			continue
		}
		assert.Equal(t, tx, mapped, "%d: %s: round trip", i, tx.Type)

		again, err := mapping.ToJSON(mapped)
		assert.Nil(t, err, "%d: %s: to json again", i, tx.Type)
		assert.Equal(t, string(data), string(again), "%d: %s: documents differ", i, tx.Type)
	}

	for _, kind := range transaction.AllTypes() {
		assert.True(t, seen[kind], "%s not covered", kind)
	}
}

func TestToJSONSchema(t *testing.T) {
	sender := makeAccount(t, senderPrivateKey)
	recipient := makeAccount(t, otherPrivateKey).Address()

	tx := fixed(t)(transaction.NewTransferFactory(network, recipient, []mosaic.Mosaic{{ID: 0x6BED913FA20223F8, Amount: 0xffffffffffffffff}}, nil)).
		Signer(sender.PublicAccount()).
		Build()
	data, err := mapping.ToJSON(tx)
	if !assert.Nil(t, err, "to json error") {
		return
	}

	n, err := mapping.Parse(data)
	if !assert.Nil(t, err, "parse error") {
		return
	}
	body := n.Get("transaction")

	networkByte, _ := body.Get("network").Uint8()
	assert.Equal(t, uint8(152), networkByte, "network")
	version, _ := body.Get("version").Uint8()
	assert.Equal(t, uint8(1), version, "version")
	deadline, _ := body.Get("deadline").Text()
	assert.Equal(t, "4886718345", deadline, "deadline as decimal text")
	id, _ := body.Get("mosaics").Value().([]interface{})[0].(map[string]interface{})["id"].(string)
	assert.Equal(t, "6BED913FA20223F8", id, "mosaic id as hex")
	amount, _ := body.Get("mosaics").Value().([]interface{})[0].(map[string]interface{})["amount"].(string)
	assert.Equal(t, "18446744073709551615", amount, "amount as decimal text")
	address, _ := body.Get("recipientAddress").Text()
	assert.Equal(t, recipient.Encoded(), address, "recipient")
	assert.True(t, body.Get("signature").IsNull(), "unsigned has signature")
	assert.True(t, n.Get("meta").IsNull(), "meta without info")

	_, err = mapping.ToJSON(nil)
	assert.Equal(t, fault.ErrInvalidTransaction, err, "nil transaction")
}

func TestMapCosignature(t *testing.T) {
	other := makeAccount(t, otherPrivateKey)
	parent := merkle.NewDigest([]byte("aggregate"))

	c := transaction.CosignatureSigned{
		ParentHash: parent,
		Version:    0,
		Signer:     other.PublicAccount(),
		Signature:  other.Sign(parent[:]),
	}
	data, err := mapping.CosignatureToJSON(c)
	if !assert.Nil(t, err, "to json error") {
		return
	}
	n, err := mapping.Parse(data)
	if !assert.Nil(t, err, "parse error") {
		return
	}
	mapped, err := mapping.MapCosignature(n, network)
	assert.Nil(t, err, "map error")
	assert.Equal(t, c, mapped, "round trip")

	// older documents use signer
	doc := fmt.Sprintf(`{"parentHash": "%s", "signer": "%s", "signature": "%s"}`, parent, other.PublicKey(), c.Signature)
	n, _ = mapping.Parse([]byte(doc))
	mapped, err = mapping.MapCosignature(n, network)
	assert.Nil(t, err, "legacy map error")
	assert.Equal(t, c, mapped, "legacy")

	n, _ = mapping.Parse([]byte(`{"signer": "00", "signature": "00"}`))
	_, err = mapping.MapCosignature(n, network)
	assert.Equal(t, "parentHash", errorPath(err), "missing parent hash path")
}

func TestUint64Forms(t *testing.T) {
	max := util.Uint64ToDecimal(0xffffffffffffffff)
	n, err := mapping.Parse([]byte(fmt.Sprintf(`{"a": "%s", "b": 18446744073709551615, "c": [4294967295, 4294967295], "d": [1, 2], "e": "FFFFFFFFFFFFFFFF", "f": [4294967296, 0], "g": -1}`, max)))
	if !assert.Nil(t, err, "parse error") {
		return
	}

	for _, key := range []string{"a", "b", "c"} {
		v, err := n.Get(key).Uint64()
		assert.Nil(t, err, "%s: error", key)
		assert.Equal(t, uint64(0xffffffffffffffff), v, "%s: value", key)
	}
	v, err := n.Get("d").Uint64()
	assert.Nil(t, err, "words error")
	assert.Equal(t, uint64(0x0000000200000001), v, "lo, hi order")

	v, err = n.Get("e").ID()
	assert.Nil(t, err, "hex id error")
	assert.Equal(t, uint64(0xffffffffffffffff), v, "hex id")
	v, err = n.Get("d").ID()
	assert.Nil(t, err, "word id error")
	assert.Equal(t, uint64(0x0000000200000001), v, "word id")

	_, err = n.Get("f").Uint64()
	assert.True(t, errors.Is(err, fault.ErrUint64OutOfRange), "word overflow: %v", err)
	assert.Equal(t, "f", errorPath(err), "word overflow path")
	_, err = n.Get("g").Uint64()
	assert.NotNil(t, err, "negative accepted")
	_, err = n.Get("missing").Uint64()
	assert.True(t, errors.Is(err, fault.ErrMissingField), "missing: %v", err)

	_, err = n.Get("d").Uint8()
	assert.True(t, errors.Is(err, fault.ErrTypeMismatch), "array as uint8: %v", err)
	_, err = mapping.Parse([]byte(`{"a": `))
	assert.True(t, fault.IsErrMapping(err), "broken document: %v", err)
}

func TestMapTransferScenario(t *testing.T) {
	doc := `{"transaction": {
    "version": 1, "network": 152, "type": 16724,
    "maxFee": "0", "deadline": "1",
    "recipientAddress": "98089108860764C22FDD34EB8979FEAE8BD9B9E3030D5C7E",
    "mosaics": [{"id": "0000000000000001", "amount": "1000000"}],
    "message": {"type": 0, "payload": "48656C6C6F"}
  }}`

	tx, err := mapping.MapTransaction([]byte(doc))
	if !assert.Nil(t, err, "map error") {
		return
	}
	b := tx.Body.(*transaction.Transfer)
	assert.Equal(t, "TAEJCCEGA5SMEL65GTVYS6P6V2F5TOPDAMGVY7Q", b.Recipient.Plain(), "recipient")
	if assert.Equal(t, 1, len(b.Mosaics), "mosaics") {
		assert.Equal(t, mosaic.UnresolvedID(1), b.Mosaics[0].ID, "mosaic id")
		assert.Equal(t, uint64(1000000), b.Mosaics[0].Amount, "amount")
	}
	assert.Equal(t, "Hello", b.Message.Text(), "message")
}

func TestMapSecretLockInfo(t *testing.T) {
	owner := makeAccount(t, senderPrivateKey).Address()
	recipient := makeAccount(t, otherPrivateKey).Address()
	secret := "0102030405060708090A0B0C0D0E0F1011121314"

	doc := fmt.Sprintf(`{
  "id": "5F2F3E9D1A0B3C4D5E6F7A8C",
  "lock": {
    "ownerAddress": "%s",
    "mosaicId": "0000000000000001",
    "amount": "5",
    "endHeight": "100",
    "status": 0,
    "hashAlgorithm": 1,
    "secret": "%s000000000000000000000000",
    "recipientAddress": "%s",
    "compositeHash": "%s"
  }
}`, owner.Plain(), secret, recipient.Encoded(), hashHex)

	info, err := mapping.MapSecretLockInfo([]byte(doc))
	if !assert.Nil(t, err, "map error") {
		return
	}
	expected, err := transaction.SecretHash160.ParseSecret(secret)
	assert.Nil(t, err, "parse secret")
	assert.Equal(t, "5F2F3E9D1A0B3C4D5E6F7A8C", info.RecordID, "record id")
	assert.Equal(t, uint16(1), info.Version, "default version")
	assert.Equal(t, owner, info.Owner, "owner")
	assert.Equal(t, recipient, info.Recipient, "recipient")
	assert.Equal(t, mosaic.ID(1), info.MosaicID, "mosaic id")
	assert.Equal(t, transaction.SecretHash160, info.Algorithm, "algorithm")
	assert.Equal(t, expected, info.Secret, "secret")
	assert.Equal(t, hashHex, info.CompositeHash.String(), "composite hash")
	assert.Equal(t, transaction.LockUnused, info.Status, "status")
}

func TestMapLockInfoErrors(t *testing.T) {
	owner := makeAccount(t, senderPrivateKey).Address().Encoded()
	lock := func(extra string) string {
		return fmt.Sprintf(`{"id": "01", "lock": {"ownerAddress": "%s", "mosaicId": "01",
  "amount": "1", "endHeight": "2"%s}}`, owner, extra)
	}

	items := []struct {
		document string
		path     string
		err      error
	}{
		{`[1]`, "", fault.ErrTypeMismatch},
		{`{"id": "01"}`, "lock", fault.ErrMissingField},
		{`{"id": 7, "lock": {}}`, "id", fault.ErrTypeMismatch},
		{`{"lock": {"ownerAddress": "TA"}}`, "lock.ownerAddress", fault.ErrInvalidAddress},
		{lock(``), "lock.status", fault.ErrMissingField},
		{lock(`, "status": 2`), "lock.status", fault.ErrInvalidLockStatus},
		{lock(`, "status": 1`), "lock.hash", fault.ErrMissingField},
		{lock(`, "status": 1, "hash": "00"`), "lock.hash", fault.ErrInvalidHash},
	}
	for i, item := range items {
		_, err := mapping.MapHashLockInfo([]byte(item.document))
		if !assert.NotNil(t, err, "%d: expected error", i) {
			continue
		}
		assert.True(t, errors.Is(err, item.err), "%d: actual error: %s", i, err)
		if "" != item.path {
			assert.Equal(t, item.path, errorPath(err), "%d: path", i)
		}
	}

	_, err := mapping.MapSecretLockInfo([]byte(lock(`, "status": 0, "hashAlgorithm": 2, "secret": "0102"`)))
	assert.True(t, errors.Is(err, fault.ErrInvalidSecret), "short secret: %v", err)
	assert.Equal(t, "lock.secret", errorPath(err), "secret path")

	_, err = mapping.MapSecretLockInfo([]byte(lock(`, "status": 0, "hashAlgorithm": 9`)))
	assert.True(t, errors.Is(err, fault.ErrInvalidHashAlgorithm), "algorithm: %v", err)
	assert.Equal(t, "lock.hashAlgorithm", errorPath(err), "algorithm path")
}
