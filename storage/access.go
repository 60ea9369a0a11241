// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/kittyd/fault"
)

// shared by all pools of a store
type accessData struct {
	sync.Mutex
	inUse bool
	db    *leveldb.DB
	batch *leveldb.Batch
	cache *dbCache
}

func newAccess(db *leveldb.DB) *accessData {
	return &accessData{
		db:    db,
		batch: new(leveldb.Batch),
		cache: newCache(),
	}
}

func (d *accessData) begin() error {
	d.Lock()
	defer d.Unlock()

	if d.inUse {
		return fault.TransactionAlreadyInUse
	}
	d.inUse = true
	return nil
}

func (d *accessData) put(key []byte, value []byte) {
	d.cache.set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

func (d *accessData) delete(key []byte) {
	d.cache.set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// get - committed data only
func (d *accessData) get(key []byte) []byte {
	value, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("storage get", err)
	return value
}

func (d *accessData) has(key []byte) bool {
	found, err := d.db.Has(key, nil)
	logger.PanicIfError("storage has", err)
	return found
}

// pendingGet - writes of the open transaction take precedence over
// committed data
func (d *accessData) pendingGet(key []byte) []byte {
	if value, pending := d.cache.get(string(key)); pending {
		return value
	}
	return d.get(key)
}

func (d *accessData) pendingHas(key []byte) bool {
	if value, pending := d.cache.get(string(key)); pending {
		return nil != value
	}
	return d.has(key)
}

func (d *accessData) iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}

func (d *accessData) commit() error {
	d.Lock()
	defer d.Unlock()

	if !d.inUse {
		return fault.TransactionNotInUse
	}
	err := d.db.Write(d.batch, nil)
	d.reset()
	return err
}

func (d *accessData) abort() {
	d.Lock()
	defer d.Unlock()

	d.reset()
}

func (d *accessData) reset() {
	d.batch.Reset()
	d.cache.clear()
	d.inUse = false
}
