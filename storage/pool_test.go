// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/symbol-sdk-go/fault"
	"github.com/bitmark-inc/symbol-sdk-go/storage"
)

// this is the expected order
var expectedElements = makeElements([]stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one(NEW)"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
})

// a key that must not exist
var nonExistantKey = []byte("/nonexistant")

func populate(p *storage.PoolHandle) {
	p.Put([]byte("key-one"), []byte("data-one"))
	p.Put([]byte("key-two"), []byte("data-two"))
	p.Put([]byte("key-three"), []byte("data-three"))
	p.Put([]byte("key-remove-me"), []byte("to be deleted"))
	p.Delete([]byte("key-remove-me"))
	p.Put([]byte("key-four"), []byte("data-four"))
	p.Put([]byte("key-five"), []byte("data-five"))
	p.Put([]byte("key-six"), []byte("data-six"))
	p.Put([]byte("key-seven"), []byte("data-seven"))
	p.Put([]byte("key-one"), []byte("data-one(NEW)"))
}

func TestPoolPutGet(t *testing.T) {
	setup(t)
	defer teardown()

	p := storage.Pool.TestData
	populate(p)

	for _, e := range expectedElements {
		assert.Equal(t, e.Value, p.Get(e.Key), "value for: %s", e.Key)
		assert.True(t, p.Has(e.Key), "has: %s", e.Key)
	}
	assert.Nil(t, p.Get([]byte("key-remove-me")), "deleted key still present")
	assert.False(t, p.Has([]byte("key-remove-me")), "deleted key has")
	assert.Nil(t, p.Get(nonExistantKey), "nonexistant key found")
	assert.False(t, p.Has(nonExistantKey), "nonexistant key has")

	// a returned value belongs to the caller
	v := p.Get([]byte("key-two"))
	v[0] = 'X'
	assert.Equal(t, []byte("data-two"), p.Get([]byte("key-two")), "cached value was modified")

	// separate pools do not see each other's keys
	assert.Nil(t, storage.Pool.Signed.Get([]byte("key-two")), "key leaked into another pool")
}

func TestPoolN(t *testing.T) {
	setup(t)
	defer teardown()

	p := storage.Pool.TestData
	p.PutN([]byte("count"), 0x0102030405060708)

	n, found := p.GetN([]byte("count"))
	assert.True(t, found, "count not found")
	assert.Equal(t, uint64(0x0102030405060708), n, "count value")
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, p.Get([]byte("count")), "big endian")

	_, found = p.GetN(nonExistantKey)
	assert.False(t, found, "nonexistant count found")
}

func TestFetchCursor(t *testing.T) {
	setup(t)
	defer teardown()

	p := storage.Pool.TestData
	populate(p)

	cursor := p.NewFetchCursor()
	first, err := cursor.Fetch(3)
	assert.Nil(t, err, "first fetch error")
	assert.Equal(t, expectedElements[:3], first, "first fetch")

	rest, err := cursor.Fetch(10)
	assert.Nil(t, err, "second fetch error")
	assert.Equal(t, expectedElements[3:], rest, "second fetch")

	none, err := cursor.Fetch(10)
	assert.Nil(t, err, "third fetch error")
	assert.Equal(t, 0, len(none), "fetch past end")

	_, err = p.NewFetchCursor().Fetch(0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")

	var nilCursor *storage.FetchCursor
	_, err = nilCursor.Fetch(1)
	assert.Equal(t, fault.ErrInvalidCursor, err, "nil cursor")

	seek, err := p.NewFetchCursor().Seek([]byte("key-s")).Fetch(2)
	assert.Nil(t, err, "seek fetch error")
	assert.Equal(t, expectedElements[3:5], seek, "seek")
}

func TestPrefixCursor(t *testing.T) {
	setup(t)
	defer teardown()

	p := storage.Pool.TestData
	populate(p)

	var keys []string
	err := p.NewPrefixCursor([]byte("key-t")).Map(func(key []byte, value []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, []string{"key-three", "key-two"}, keys, "prefix keys")

	stop := fault.InvalidError("stop")
	count := 0
	err = p.NewFetchCursor().Map(func(key []byte, value []byte) error {
		count += 1
		return stop
	})
	assert.Equal(t, stop, err, "map error not returned")
	assert.Equal(t, 1, count, "map did not stop")
}

func TestBatch(t *testing.T) {
	setup(t)
	defer teardown()

	p := storage.Pool.TestData
	p.Put([]byte("old"), []byte("value"))
	assert.Equal(t, []byte("value"), p.Get([]byte("old")), "old value")

	b := storage.NewBatch()
	b.Put(p, []byte("new"), []byte("data"))
	b.Delete(p, []byte("old"))
	assert.Equal(t, 2, b.Len(), "batch length")

	// nothing is visible before commit
	assert.Nil(t, p.Get([]byte("new")), "uncommitted put visible")
	assert.True(t, p.Has([]byte("old")), "uncommitted delete visible")

	assert.Nil(t, b.Commit(), "commit error")
	assert.Equal(t, 0, b.Len(), "batch not reset")
	assert.Equal(t, []byte("data"), p.Get([]byte("new")), "committed put")
	assert.False(t, p.Has([]byte("old")), "committed delete")
}

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown()

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")
}

func TestReadOnly(t *testing.T) {
	setup(t)
	storage.Pool.TestData.Put([]byte("key"), []byte("value"))
	storage.Finalise()
	defer teardown()

	err := storage.Initialise(databaseFileName, storage.ReadOnly)
	if !assert.Nil(t, err, "read only open") {
		return
	}
	assert.Equal(t, []byte("value"), storage.Pool.TestData.Get([]byte("key")), "read only get")

	b := storage.NewBatch()
	b.Put(storage.Pool.TestData, []byte("key"), []byte("other"))
	assert.Equal(t, fault.ErrReadOnly, b.Commit(), "read only commit")
}
