// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

type cacheOp int

const (
	dbPut cacheOp = iota
	dbDelete
)

type cacheData struct {
	op    cacheOp
	value []byte
}

// overlay of the writes pending in the current batch
type dbCache struct {
	cache *cache.Cache
}

func newCache() *dbCache {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// get - returns (value, pending) where pending indicates that the key
// was written in this batch; a pending delete returns a nil value
func (c *dbCache) get(key string) ([]byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	data := obj.(cacheData)
	if dbDelete == data.op {
		return nil, true
	}
	return data.value, true
}

func (c *dbCache) set(op cacheOp, key string, value []byte) {
	c.cache.Set(key, cacheData{op: op, value: value}, cache.NoExpiration)
}

func (c *dbCache) clear() {
	c.cache.Flush()
}
