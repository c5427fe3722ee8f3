// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sort"
	"sync"

	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/catbuffer"
	"github.com/bitmark-inc/symbol-sdk-go/chain"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

const (
	countSize           = 8
	versionSize         = 8
	cosignatureDataSize = countSize + versionSize + account.SignatureLength
)

// serialises the read-modify-write of cosignature counts
var cosignatureLock sync.Mutex

// StorePartial - keep an aggregate bonded transaction until it has
// collected its cosignatures or its deadline passes
func StorePartial(signed *transaction.Signed) error {
	if nil == signed || len(signed.Payload) < catbuffer.HeaderSize {
		return fault.ErrInvalidTransaction
	}
	if transaction.AggregateBondedType != signed.Type {
		return fault.ErrNotAggregate
	}
	if err := writable(); nil != err {
		return err
	}

	deadline := binary.LittleEndian.Uint64(signed.Payload[catbuffer.DeadlineOffset:])

	b := NewBatch()
	b.Put(Pool.Partial, signed.Hash[:], signed.Payload)
	b.Put(Pool.Expiry, expiryKey(deadline, signed.Hash), []byte{})
	if err := b.Commit(); nil != err {
		return err
	}
	poolData.log.Debugf("partial: %s  deadline: %d", signed.Hash, deadline)
	return nil
}

// GetPartial - payload of a stored partial transaction
func GetPartial(hash merkle.Digest) ([]byte, bool) {
	if nil == Pool.Partial {
		return nil, false
	}
	payload := Pool.Partial.Get(hash[:])
	return payload, nil != payload
}

// AddCosignature - record a cosignature of a stored partial
//
// the signature must be valid for the partial's hash and each signer
// is recorded once
func AddCosignature(c transaction.CosignatureSigned) error {
	if err := writable(); nil != err {
		return err
	}
	if !account.Verify(c.Signer.PublicKey, c.ParentHash[:], c.Signature) {
		return fault.ErrSignatureVerification
	}

	cosignatureLock.Lock()
	defer cosignatureLock.Unlock()

	if !Pool.Partial.Has(c.ParentHash[:]) {
		return fault.ErrPartialNotFound
	}
	key := cosignatureKey(c.ParentHash, c.Signer.PublicKey)
	if Pool.Cosignatures.Has(key) {
		return fault.ErrCosignatureExists
	}

	// first cosignature starts at zero
	count, _ := Pool.NextCount.GetN(c.ParentHash[:])

	value := make([]byte, cosignatureDataSize)
	binary.BigEndian.PutUint64(value, count)
	binary.BigEndian.PutUint64(value[countSize:], c.Version)
	copy(value[countSize+versionSize:], c.Signature[:])

	next := make([]byte, countSize)
	binary.BigEndian.PutUint64(next, count+1)

	b := NewBatch()
	b.Put(Pool.Cosignatures, key, value)
	b.Put(Pool.NextCount, c.ParentHash[:], next)
	if err := b.Commit(); nil != err {
		return err
	}
	poolData.log.Debugf("cosignature: %s  signer: %s  count: %d", c.ParentHash, c.Signer.PublicKey, count)
	return nil
}

// CollectCosignatures - cosignatures of a partial in the order they
// were added
func CollectCosignatures(hash merkle.Digest) ([]transaction.CosignatureSigned, error) {
	payload, ok := GetPartial(hash)
	if !ok {
		return nil, fault.ErrPartialNotFound
	}
	network, err := chain.NetworkTypeFromByte(payload[catbuffer.NetworkOffset])
	if nil != err {
		return nil, err
	}

	type counted struct {
		count       uint64
		cosignature transaction.CosignatureSigned
	}
	var items []counted

	cursor := Pool.Cosignatures.NewPrefixCursor(hash[:])
	err = cursor.Map(func(key []byte, value []byte) error {
		if len(key) != merkle.DigestLength+account.PublicKeyLength || len(value) != cosignatureDataSize {
			return fault.ErrTruncated
		}
		key = key[merkle.DigestLength:]

		c := transaction.CosignatureSigned{
			ParentHash: hash,
			Version:    binary.BigEndian.Uint64(value[countSize:]),
		}
		copy(c.Signer.PublicKey[:], key)
		c.Signer.Network = network
		copy(c.Signature[:], value[countSize+versionSize:])

		items = append(items, counted{
			count:       binary.BigEndian.Uint64(value),
			cosignature: c,
		})
		return nil
	})
	if nil != err {
		return nil, err
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].count < items[j].count
	})
	cosignatures := make([]transaction.CosignatureSigned, len(items))
	for i, item := range items {
		cosignatures[i] = item.cosignature
	}
	return cosignatures, nil
}

// DeletePartial - remove a partial with its cosignatures
func DeletePartial(hash merkle.Digest) error {
	if err := writable(); nil != err {
		return err
	}
	payload, ok := GetPartial(hash)
	if !ok {
		return fault.ErrPartialNotFound
	}
	deadline := binary.LittleEndian.Uint64(payload[catbuffer.DeadlineOffset:])

	b := NewBatch()
	b.Delete(Pool.Partial, hash[:])
	b.Delete(Pool.Expiry, expiryKey(deadline, hash))
	b.Delete(Pool.NextCount, hash[:])

	err := Pool.Cosignatures.NewPrefixCursor(hash[:]).Map(func(key []byte, value []byte) error {
		b.Delete(Pool.Cosignatures, key)
		return nil
	})
	if nil != err {
		return err
	}
	return b.Commit()
}

// ExpirePartials - delete every partial whose deadline is before now
//
// returns the number of partials removed
func ExpirePartials(now transaction.Deadline) (int, error) {
	if err := writable(); nil != err {
		return 0, err
	}

	var expired []merkle.Digest
	cursor := Pool.Expiry.NewFetchCursor()
	err := cursor.Map(func(key []byte, value []byte) error {
		if len(key) != 8+merkle.DigestLength {
			return fault.ErrTruncated
		}
		if binary.BigEndian.Uint64(key) >= now.Uint64() {
			return errStopIteration
		}
		var hash merkle.Digest
		copy(hash[:], key[8:])
		expired = append(expired, hash)
		return nil
	})
	if nil != err && errStopIteration != err {
		return 0, err
	}

	for _, hash := range expired {
		if err := DeletePartial(hash); nil != err && fault.ErrPartialNotFound != err {
			return 0, err
		}
		poolData.log.Infof("expired partial: %s", hash)
	}
	return len(expired), nil
}

// ends a Map early
var errStopIteration = fault.GenericError("stop iteration")

// big endian deadline so the expiry index is in time order
func expiryKey(deadline uint64, hash merkle.Digest) []byte {
	key := make([]byte, 8, 8+merkle.DigestLength)
	binary.BigEndian.PutUint64(key, deadline)
	return append(key, hash[:]...)
}

func cosignatureKey(hash merkle.Digest, signer account.PublicKey) []byte {
	key := make([]byte, 0, merkle.DigestLength+account.PublicKeyLength)
	key = append(key, hash[:]...)
	return append(key, signer[:]...)
}
