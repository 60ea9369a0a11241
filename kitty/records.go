// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/storage"
)

// Records - the asset store
type Records struct {
	log  *logger.L
	pool *storage.PoolHandle
}

// NewRecords - asset store over a pool keyed by identifier
func NewRecords(pool *storage.PoolHandle) *Records {
	return &Records{
		log:  logger.New("kitty"),
		pool: pool,
	}
}

// Get - fetch a kitty
func (r *Records) Get(reader storage.Reader, id identifier.Identifier) (*Kitty, error) {
	packed := reader.Get(r.pool, id[:])
	if nil == packed {
		return nil, fault.KittyNotFound
	}
	k, err := Unpack(packed)
	if nil != err {
		r.log.Criticalf("kitty: %s corrupt record: %x", id, packed)
		return nil, err
	}
	if k.Id != id {
		r.log.Criticalf("kitty: %s stored under wrong key: %s", k.Id, id)
		return nil, fault.CorruptRecord
	}
	return k, nil
}

// Has - check if a kitty exists
func (r *Records) Has(reader storage.Reader, id identifier.Identifier) bool {
	return reader.Has(r.pool, id[:])
}

// Put - write a kitty record
func (r *Records) Put(trx storage.Transaction, k *Kitty) {
	trx.Put(r.pool, k.Id[:], k.Pack())
}
