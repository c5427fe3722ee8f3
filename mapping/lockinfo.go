// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mapping

import (
	"github.com/bitmark-inc/symbol-sdk-go/account"
	"github.com/bitmark-inc/symbol-sdk-go/mosaic"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

// fields shared by both kinds of lock entry
type lockEntry struct {
	recordID  string
	version   uint16
	owner     account.Address
	mosaicID  mosaic.ID
	amount    uint64
	endHeight uint64
	status    transaction.LockStatus
}

// MapHashLockInfo - a hash lock document, {id, lock: {version,
// ownerAddress, mosaicId, amount, endHeight, status, hash}}
func MapHashLockInfo(data []byte) (*transaction.HashLockInfo, error) {
	n, err := Parse(data)
	if nil != err {
		return nil, err
	}
	return MapHashLockInfoNode(n)
}

// MapHashLockInfoNode - as MapHashLockInfo for a decoded document
func MapHashLockInfoNode(n Node) (*transaction.HashLockInfo, error) {
	e, lock, err := mapLockEntry(n)
	if nil != err {
		return nil, err
	}
	hash, err := lock.Get("hash").Digest()
	if nil != err {
		return nil, err
	}
	return &transaction.HashLockInfo{
		RecordID:  e.recordID,
		Version:   e.version,
		Owner:     e.owner,
		MosaicID:  e.mosaicID,
		Amount:    e.amount,
		EndHeight: e.endHeight,
		Status:    e.status,
		Hash:      hash,
	}, nil
}

// MapSecretLockInfo - a secret lock document, {id, lock: {version,
// ownerAddress, mosaicId, amount, endHeight, status, hashAlgorithm,
// secret, recipientAddress, compositeHash}}
func MapSecretLockInfo(data []byte) (*transaction.SecretLockInfo, error) {
	n, err := Parse(data)
	if nil != err {
		return nil, err
	}
	return MapSecretLockInfoNode(n)
}

// MapSecretLockInfoNode - as MapSecretLockInfo for a decoded document
func MapSecretLockInfoNode(n Node) (*transaction.SecretLockInfo, error) {
	e, lock, err := mapLockEntry(n)
	if nil != err {
		return nil, err
	}

	// lock state always uses the current algorithm numbering
	algorithm, err := mapSecretHashAlgorithm(lock.Get("hashAlgorithm"), header{})
	if nil != err {
		return nil, err
	}
	s := lock.Get("secret")
	text, err := s.Text()
	if nil != err {
		return nil, err
	}
	secret, err := algorithm.ParseSecret(text)
	if nil != err {
		return nil, s.fail(err)
	}
	recipient, err := lock.Get("recipientAddress").Address()
	if nil != err {
		return nil, err
	}
	composite, err := lock.Get("compositeHash").Digest()
	if nil != err {
		return nil, err
	}
	return &transaction.SecretLockInfo{
		RecordID:      e.recordID,
		Version:       e.version,
		Owner:         e.owner,
		MosaicID:      e.mosaicID,
		Amount:        e.amount,
		EndHeight:     e.endHeight,
		Status:        e.status,
		Algorithm:     algorithm,
		Secret:        secret,
		Recipient:     recipient,
		CompositeHash: composite,
	}, nil
}

// the record id is optional, a missing version is the first
func mapLockEntry(n Node) (lockEntry, Node, error) {
	e := lockEntry{version: 1}
	if _, err := n.Object(); nil != err {
		return e, n, err
	}
	if n.Has("id") {
		id, err := n.Get("id").Text()
		if nil != err {
			return e, n, err
		}
		e.recordID = id
	}

	lock := n.Get("lock")
	if _, err := lock.Object(); nil != err {
		return e, lock, err
	}
	var err error
	if lock.Has("version") {
		if e.version, err = lock.Get("version").Uint16(); nil != err {
			return e, lock, err
		}
	}
	if e.owner, err = lock.Get("ownerAddress").Address(); nil != err {
		return e, lock, err
	}
	id, err := lock.Get("mosaicId").ID()
	if nil != err {
		return e, lock, err
	}
	e.mosaicID = mosaic.ID(id)
	if e.amount, err = lock.Get("amount").Uint64(); nil != err {
		return e, lock, err
	}
	if e.endHeight, err = lock.Get("endHeight").Uint64(); nil != err {
		return e, lock, err
	}

	status := lock.Get("status")
	raw, err := status.Uint8()
	if nil != err {
		return e, lock, err
	}
	if e.status, err = transaction.LockStatusFromRaw(raw); nil != err {
		return e, lock, status.fail(err)
	}
	return e, lock, nil
}
