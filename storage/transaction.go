// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/kittyd/fault"
)

// Reader - read access to the pools
//
// the Store reads committed data only
type Reader interface {
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
}

// Transaction - a set of writes applied to the database atomically
//
// reads made through a transaction observe its own pending writes
type Transaction interface {
	Reader
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Abort()
	Commit() error
}

type transaction struct {
	access *accessData
	done   bool
}

func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	p.put(key, value)
}

func (t *transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	p.putN(key, value)
}

func (t *transaction) Delete(p *PoolHandle, key []byte) {
	p.remove(key)
}

func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	return p.pendingGet(key)
}

func (t *transaction) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	return p.pendingGetN(key)
}

func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	return p.pendingHas(key)
}

// Abort - discard all pending writes, safe to call after Commit
func (t *transaction) Abort() {
	if t.done {
		return
	}
	t.done = true
	t.access.abort()
}

// Commit - write all pending changes in a single batch
func (t *transaction) Commit() error {
	if t.done {
		return fault.TransactionNotInUse
	}
	t.done = true
	return t.access.commit()
}
