// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
)

// PoolHandle - access to one prefixed table
type PoolHandle struct {
	prefix byte
	limit  []byte
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair to the database
func (p *PoolHandle) Put(key []byte, value []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		logger.Panic("pool.Put nil database")
		return
	}
	k := p.prefixKey(key)
	err := poolData.database.Put(k, value, nil)
	logger.PanicIfError("pool.Put", err)
	poolData.cache.Set(dbPut, k, copyBytes(value))
}

// PutN - store a big endian uint64
func (p *PoolHandle) PutN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.Put(key, buffer)
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		logger.Panic("pool.Delete nil database")
		return
	}
	k := p.prefixKey(key)
	err := poolData.database.Delete(k, nil)
	logger.PanicIfError("pool.Delete", err)
	poolData.cache.Set(dbDelete, k, nil)
}

// Get - read a value for a given key
//
// the result is a copy and may be modified by the caller
func (p *PoolHandle) Get(key []byte) []byte {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return nil
	}
	k := p.prefixKey(key)
	if value, known, deleted := poolData.cache.Get(k); known {
		if deleted {
			return nil
		}
		return copyBytes(value)
	}

	value, err := poolData.database.Get(k, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("pool.Get", err)
	poolData.cache.Set(dbPut, k, copyBytes(value))
	return value
}

// GetN - read a record and decode first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 (or more) bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	buffer := p.Get(key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("pool.GetN truncated record for: %x: %x", key, buffer)
	}
	n := binary.BigEndian.Uint64(buffer[:8])
	return n, true
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) bool {
	poolData.RLock()
	defer poolData.RUnlock()
	if nil == poolData.database {
		return false
	}
	k := p.prefixKey(key)
	if _, known, deleted := poolData.cache.Get(k); known {
		return !deleted
	}
	value, err := poolData.database.Has(k, nil)
	logger.PanicIfError("pool.Has", err)
	return value
}

func copyBytes(b []byte) []byte {
	if nil == b {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
