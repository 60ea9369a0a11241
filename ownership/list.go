// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/storage"
)

// Record - one entry of an owner's list
type Record struct {
	N  uint64                `json:"n"`
	Id identifier.Identifier `json:"id"`
}

// Count - number of kitties held by an owner
func (m *Map) Count(reader storage.Reader, owner *account.Account) uint64 {
	return m.owned.Count(reader, owner.Bytes())
}

// At - the kitty at a position in an owner's list
func (m *Map) At(reader storage.Reader, owner *account.Account, seq uint64) (identifier.Identifier, bool) {
	return m.owned.At(reader, owner.Bytes(), seq)
}

// IndexOf - position of a kitty in an owner's list
func (m *Map) IndexOf(reader storage.Reader, owner *account.Account, id identifier.Identifier) (uint64, bool) {
	return m.owned.IndexOf(reader, owner.Bytes(), id)
}

// ListFor - a page of an owner's kitties
func (m *Map) ListFor(reader storage.Reader, owner *account.Account, start uint64, count int) []Record {
	ids := m.owned.Range(reader, owner.Bytes(), start, count)

	records := make([]Record, len(ids))
	for i, id := range ids {
		records[i] = Record{
			N:  start + uint64(i),
			Id: id,
		}
	}
	return records
}
