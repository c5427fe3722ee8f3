// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signing

import (
	"encoding/binary"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/catbuffer"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

// SignWithCosigners - initiator signs, then each cosigner signs the
// resulting hash; cosignatures are appended in the order given
func SignWithCosigners(s transaction.Serializer, tx *transaction.Transaction, initiator *account.Account, cosigners []*account.Account, generationHash merkle.Digest) (*transaction.Signed, error) {
	if nil == tx || !tx.Type.IsAggregate() {
		return nil, fault.ErrNotAggregate
	}
	signed, err := SignWith(s, tx, initiator, generationHash)
	if nil != err {
		return nil, err
	}
	for _, cosigner := range cosigners {
		if nil == cosigner {
			return nil, fault.ErrInvalidTransaction
		}
		c := CosignAggregateHash(cosigner, signed.Hash)
		signed.Payload = appendCosignature(signed.Payload, c.Cosignature())
	}
	rewriteSize(signed.Payload)
	return signed, nil
}

// SignWithCosignatories - initiator signs and cosignatures collected
// off line are attached
//
// a cosignature made for a different aggregate is rejected
func SignWithCosignatories(s transaction.Serializer, tx *transaction.Transaction, initiator *account.Account, cosignatures []transaction.CosignatureSigned, generationHash merkle.Digest) (*transaction.Signed, error) {
	if nil == tx || !tx.Type.IsAggregate() {
		return nil, fault.ErrNotAggregate
	}
	signed, err := SignWith(s, tx, initiator, generationHash)
	if nil != err {
		return nil, err
	}
	for _, c := range cosignatures {
		if c.ParentHash != signed.Hash {
			return nil, fault.ErrInvalidHash
		}
		if !c.Signer.Verify(signed.Hash[:], c.Signature) {
			return nil, fault.ErrSignatureVerification
		}
		signed.Payload = appendCosignature(signed.Payload, c.Cosignature())
	}
	rewriteSize(signed.Payload)
	return signed, nil
}

// CosignAggregateHash - sign the hash of an announced aggregate
func CosignAggregateHash(cosigner *account.Account, hash merkle.Digest) transaction.CosignatureSigned {
	return transaction.CosignatureSigned{
		ParentHash: hash,
		Version:    0,
		Signer:     cosigner.PublicAccount(),
		Signature:  cosigner.Sign(hash[:]),
	}
}

// CosignatureTransaction - a pending request to cosign an aggregate
// already known to the network
type CosignatureTransaction struct {
	tx   *transaction.Transaction
	hash merkle.Digest
}

// NewCosignature - wrap an announced aggregate for cosigning
func NewCosignature(tx *transaction.Transaction) (*CosignatureTransaction, error) {
	if nil == tx || !tx.Type.IsAggregate() {
		return nil, fault.ErrNotAggregate
	}
	if nil == tx.Info || nil == tx.Info.Hash {
		return nil, fault.ErrAggregateNotAnnounced
	}
	return &CosignatureTransaction{
		tx:   tx,
		hash: *tx.Info.Hash,
	}, nil
}

// Transaction - the aggregate being cosigned
func (c *CosignatureTransaction) Transaction() *transaction.Transaction {
	return c.tx
}

// Hash - the aggregate hash that will be signed
func (c *CosignatureTransaction) Hash() merkle.Digest {
	return c.hash
}

// SignWith - produce the cosignature of one account
func (c *CosignatureTransaction) SignWith(cosigner *account.Account) transaction.CosignatureSigned {
	return CosignAggregateHash(cosigner, c.hash)
}

// SignedByAccount - true if the key is the initiator or a cosigner
func SignedByAccount(tx *transaction.Transaction, key account.PublicKey) bool {
	if nil == tx {
		return false
	}
	if nil != tx.Signer && key == tx.Signer.PublicKey {
		return true
	}
	aggregate, ok := tx.Body.(*transaction.Aggregate)
	if !ok {
		return false
	}
	for _, c := range aggregate.Cosignatures {
		if key == c.Signer.PublicKey {
			return true
		}
	}
	return false
}

// VerifyCosignatures - check every cosignature attached to a full
// aggregate payload against its hash
//
// returns the number of cosignatures checked
func VerifyCosignatures(payload []byte, generationHash merkle.Digest) (int, error) {
	hash, err := Hash(payload, generationHash)
	if nil != err {
		return 0, err
	}
	t := transaction.Type(binary.LittleEndian.Uint16(payload[catbuffer.TypeOffset:]))
	if !t.IsAggregate() {
		return 0, fault.ErrNotAggregate
	}
	if len(payload) < catbuffer.PayloadSizeOffset+8 {
		return 0, fault.Wire("payloadSize", len(payload), fault.ErrTruncated)
	}
	start := catbuffer.PayloadSizeOffset + 8 + int(binary.LittleEndian.Uint32(payload[catbuffer.PayloadSizeOffset:]))
	if start > len(payload) {
		return 0, fault.Wire("transactions", catbuffer.PayloadSizeOffset, fault.ErrTruncated)
	}
	block := payload[start:]
	if 0 != len(block)%transaction.CosignatureSize {
		return 0, fault.Wire("cosignatures", start, fault.ErrCosignatureSize)
	}

	n := 0
	for offset := 0; offset < len(block); offset += transaction.CosignatureSize {
		var key account.PublicKey
		copy(key[:], block[offset+8:])
		var signature account.Signature
		copy(signature[:], block[offset+8+account.PublicKeyLength:])
		if !account.Verify(key, hash[:], signature) {
			return n, fault.Wire("cosignatures", start+offset, fault.ErrSignatureVerification)
		}
		n += 1
	}
	return n, nil
}

func appendCosignature(payload []byte, c transaction.Cosignature) []byte {
	var version [8]byte
	binary.LittleEndian.PutUint64(version[:], c.Version)
	payload = append(payload, version[:]...)
	payload = append(payload, c.Signer.PublicKey[:]...)
	return append(payload, c.Signature[:]...)
}

func rewriteSize(payload []byte) {
	binary.LittleEndian.PutUint32(payload, uint32(len(payload)))
}
