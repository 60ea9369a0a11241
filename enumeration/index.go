// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package enumeration maintains dense sequence indexes of kitty
// identifiers
//
// each index is three pools: scope ++ seq -> id, scope ++ id -> seq
// and scope -> count; the scope is empty for the global index and
// the owner for per-owner indexes
package enumeration

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/storage"
)

// Index - forward, reverse and count pools
type Index struct {
	list      *storage.PoolHandle
	position  *storage.PoolHandle
	count     *storage.PoolHandle
	overflow  error
	underflow error
}

// New - create an index, overflow and underflow are the errors
// reported when the count cannot change
func New(list *storage.PoolHandle, position *storage.PoolHandle, count *storage.PoolHandle, overflow error, underflow error) *Index {
	return &Index{
		list:      list,
		position:  position,
		count:     count,
		overflow:  overflow,
		underflow: underflow,
	}
}

func seqKey(scope []byte, seq uint64) []byte {
	key := make([]byte, len(scope)+8)
	copy(key, scope)
	binary.BigEndian.PutUint64(key[len(scope):], seq)
	return key
}

func idKey(scope []byte, id identifier.Identifier) []byte {
	key := make([]byte, 0, len(scope)+identifier.Length)
	key = append(key, scope...)
	return append(key, id[:]...)
}

// Count - number of entries in scope
func (x *Index) Count(reader storage.Reader, scope []byte) uint64 {
	n, _ := reader.GetN(x.count, scope)
	return n
}

// At - identifier at a position
func (x *Index) At(reader storage.Reader, scope []byte, seq uint64) (identifier.Identifier, bool) {
	id := identifier.Identifier{}
	buffer := reader.Get(x.list, seqKey(scope, seq))
	if nil == buffer {
		return id, false
	}
	if err := identifier.FromBytes(&id, buffer); nil != err {
		return id, false
	}
	return id, true
}

// IndexOf - position of an identifier
func (x *Index) IndexOf(reader storage.Reader, scope []byte, id identifier.Identifier) (uint64, bool) {
	return reader.GetN(x.position, idKey(scope, id))
}

// Range - up to count identifiers from position start
func (x *Index) Range(reader storage.Reader, scope []byte, start uint64, count int) []identifier.Identifier {
	total := x.Count(reader, scope)
	if start >= total || count <= 0 {
		return []identifier.Identifier{}
	}
	if remaining := total - start; uint64(count) > remaining {
		count = int(remaining)
	}

	ids := make([]identifier.Identifier, 0, count)
	for seq := start; seq < start+uint64(count); seq += 1 {
		id, ok := x.At(reader, scope, seq)
		if !ok {
			break
		}
		ids = append(ids, id)
	}
	return ids
}

// Append - add an identifier at the end, returning its position
func (x *Index) Append(trx storage.Transaction, scope []byte, id identifier.Identifier) (uint64, error) {
	seq := x.Count(trx, scope)
	if math.MaxUint64 == seq {
		return 0, x.overflow
	}

	trx.Put(x.list, seqKey(scope, seq), id[:])
	trx.PutN(x.position, idKey(scope, id), seq)
	trx.PutN(x.count, scope, seq+1)
	return seq, nil
}

// Remove - take an identifier out, the last entry moves into the
// vacated position so the sequence stays dense
func (x *Index) Remove(trx storage.Transaction, scope []byte, id identifier.Identifier) error {
	n := x.Count(trx, scope)
	if 0 == n {
		return x.underflow
	}
	last := n - 1

	removed, ok := x.IndexOf(trx, scope, id)
	if !ok || removed > last {
		return fault.CorruptRecord
	}

	if removed != last {
		lastId, ok := x.At(trx, scope, last)
		if !ok {
			return fault.CorruptRecord
		}
		trx.Put(x.list, seqKey(scope, removed), lastId[:])
		trx.PutN(x.position, idKey(scope, lastId), removed)
	}

	trx.Delete(x.list, seqKey(scope, last))
	trx.Delete(x.position, idKey(scope, id))
	if 0 == last {
		trx.Delete(x.count, scope)
	} else {
		trx.PutN(x.count, scope, last)
	}
	return nil
}

// CanAppend - check that one more entry fits
func (x *Index) CanAppend(reader storage.Reader, scope []byte) error {
	if math.MaxUint64 == x.Count(reader, scope) {
		return x.overflow
	}
	return nil
}

// CanRemove - check that there is an entry to remove
func (x *Index) CanRemove(reader storage.Reader, scope []byte) error {
	if 0 == x.Count(reader, scope) {
		return x.underflow
	}
	return nil
}
