// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/symbol-sdk-go/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Signed       *PoolHandle `prefix:"S"`
	Partial      *PoolHandle `prefix:"P"`
	Expiry       *PoolHandle `prefix:"E"`
	NextCount    *PoolHandle `prefix:"N"`
	Cosignatures *PoolHandle `prefix:"C"`
	TestData     *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const currentDBVersion = 0x100

// holds the database handle
var poolData struct {
	sync.RWMutex
	log      *logger.L
	database *leveldb.DB
	readOnly bool
	cache    *dbCache
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.database {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("storage")
	if nil == log {
		return fault.ErrInvalidLoggerChannel
	}

	db, version, err := getDB(database, readOnly)
	if nil != err {
		return err
	}

	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	// ensure no database downgrade
	if version > currentDBVersion {
		log.Criticalf("database version: %d > current version: %d", version, currentDBVersion)
		return fmt.Errorf("database version: %d > current version: %d", version, currentDBVersion)
	}

	if 0 == version {
		if readOnly {
			log.Criticalf("database: %q is empty", database)
			return fault.ErrNotInitialised
		}
		// database was empty so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			return err
		}
	}

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	poolData.log = log
	poolData.database = db
	poolData.readOnly = readOnly
	poolData.cache = newCache()

	log.Infof("opened: %q  version: 0x%x  read only: %t", database, currentDBVersion, readOnly)

	ok = true // prevent db close
	return nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.database {
		return
	}
	poolData.database.Close()
	poolData.database = nil
	poolData.cache.Clear()
	poolData.log.Info("closed")
	poolData.log.Flush()
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}
