// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"
)

// PoolHandle - the structure for a pool
type PoolHandle struct {
	prefix byte
	limit  []byte
	access *accessData
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// Prefix - the pool's prefix byte
func (p *PoolHandle) Prefix() byte {
	return p.prefix
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Get - read a committed value for a given key
//
// returns nil if the key is absent, writes of an open transaction
// are not visible
func (p *PoolHandle) Get(key []byte) []byte {
	return p.access.get(p.prefixKey(key))
}

// GetN - read a record and decode the first 8 bytes as big endian uint64
//
// second parameter is false if record was not found
// panics if not 8 or more bytes in the record
func (p *PoolHandle) GetN(key []byte) (uint64, bool) {
	return p.decodeN(key, p.Get(key))
}

func (p *PoolHandle) decodeN(key []byte, buffer []byte) (uint64, bool) {
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("storage.GetN(%x): pool: %c truncated record: %x", key, p.prefix, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// Has - check if a key exists in committed data
func (p *PoolHandle) Has(key []byte) bool {
	return p.access.has(p.prefixKey(key))
}

// reads through the pending overlay of the open transaction
func (p *PoolHandle) pendingGet(key []byte) []byte {
	return p.access.pendingGet(p.prefixKey(key))
}

func (p *PoolHandle) pendingGetN(key []byte) (uint64, bool) {
	return p.decodeN(key, p.pendingGet(key))
}

func (p *PoolHandle) pendingHas(key []byte) bool {
	return p.access.pendingHas(p.prefixKey(key))
}

func (p *PoolHandle) put(key []byte, value []byte) {
	p.access.put(p.prefixKey(key), value)
}

func (p *PoolHandle) putN(key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	p.put(key, buffer)
}

func (p *PoolHandle) remove(key []byte) {
	p.access.delete(p.prefixKey(key))
}
