// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
)

// Batch - a set of writes to several pools applied together
type Batch struct {
	batch   *leveldb.Batch
	touched [][]byte
}

// NewBatch - start an empty batch
func NewBatch() *Batch {
	return &Batch{
		batch: new(leveldb.Batch),
	}
}

// Put - queue a store
func (b *Batch) Put(p *PoolHandle, key []byte, value []byte) {
	k := p.prefixKey(key)
	b.batch.Put(k, value)
	b.touched = append(b.touched, k)
}

// Delete - queue a removal
func (b *Batch) Delete(p *PoolHandle, key []byte) {
	k := p.prefixKey(key)
	b.batch.Delete(k)
	b.touched = append(b.touched, k)
}

// Len - number of queued operations
func (b *Batch) Len() int {
	return b.batch.Len()
}

// Commit - write all queued operations
//
// the batch is empty afterwards and can be reused
func (b *Batch) Commit() error {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.database {
		return fault.ErrNotInitialised
	}
	if poolData.readOnly {
		return fault.ErrReadOnly
	}

	err := poolData.database.Write(b.batch, nil)

	// cached values of written keys are stale either way
	for _, k := range b.touched {
		poolData.cache.Remove(k)
	}
	b.batch.Reset()
	b.touched = nil
	return err
}
