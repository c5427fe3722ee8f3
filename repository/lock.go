// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package repository

import (
	"context"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/symbol-sdk-go/mapping"
	"github.com/bitmark-inc/symbol-sdk-go/merkle"
	"github.com/bitmark-inc/symbol-sdk-go/transaction"
)

// REST routes
const (
	hashLockPath   = "/lock/hash"
	secretLockPath = "/lock/secret"
)

// LockRepository - state of hash and secret locks
type LockRepository struct {
	log     *logger.L
	fetcher Fetcher
}

// NewLockRepository - create a repository on a transport
func NewLockRepository(fetcher Fetcher) *LockRepository {
	return &LockRepository{
		log:     logger.New("repository"),
		fetcher: fetcher,
	}
}

// GetHashLock - the lock made for an aggregate bonded hash
func (r *LockRepository) GetHashLock(ctx context.Context, hash merkle.Digest) (*transaction.HashLockInfo, error) {
	data, err := r.fetcher.FetchJSON(ctx, hashLockPath+"/"+hash.String())
	if nil != err {
		return nil, err
	}
	info, err := mapping.MapHashLockInfo(data)
	if nil != err {
		r.log.Warnf("hash lock: %s  mapping error: %s", hash, err)
		return nil, err
	}
	return info, nil
}

// GetSecretLock - a secret lock by its composite hash
func (r *LockRepository) GetSecretLock(ctx context.Context, compositeHash merkle.Digest) (*transaction.SecretLockInfo, error) {
	data, err := r.fetcher.FetchJSON(ctx, secretLockPath+"/"+compositeHash.String())
	if nil != err {
		return nil, err
	}
	info, err := mapping.MapSecretLockInfo(data)
	if nil != err {
		r.log.Warnf("secret lock: %s  mapping error: %s", compositeHash, err)
		return nil, err
	}
	return info, nil
}
