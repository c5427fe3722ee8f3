// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

const (
	defaultExpiration = 2 * time.Minute
	cleanupInterval   = 5 * time.Minute
)

// read cache in front of the database, keyed by the prefixed key
type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    dbOperation
	value []byte
}

func newCache() *dbCache {
	return &dbCache{
		cache: cache.New(defaultExpiration, cleanupInterval),
	}
}

// second result: the key is known to the cache
// third result: the key is known to be deleted
func (c *dbCache) Get(key []byte) ([]byte, bool, bool) {
	obj, found := c.cache.Get(string(key))
	if !found {
		return nil, false, false
	}

	data := obj.(cacheData)
	if dbDelete == data.op {
		return nil, true, true
	}
	return data.value, true, false
}

func (c *dbCache) Set(op dbOperation, key []byte, value []byte) {
	cached := cacheData{
		op:    op,
		value: value,
	}
	c.cache.Set(string(key), cached, cache.DefaultExpiration)
}

func (c *dbCache) Remove(key []byte) {
	c.cache.Delete(string(key))
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}
