// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership maps each kitty to its owner and keeps every
// owner's kitties enumerable
package ownership

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/enumeration"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/storage"
)

// from storage/doc.go:
//
//   Owners      id -> owner
//   OwnedList   owner ++ seq -> id
//   OwnedIndex  owner ++ id -> seq
//   OwnedCount  owner -> count

// Map - ownership map and per-owner enumeration
type Map struct {
	log    *logger.L
	owners *storage.PoolHandle
	owned  *enumeration.Index
}

// New - ownership over the store's pools
func New(pools *storage.Pools) *Map {
	return &Map{
		log:    logger.New("ownership"),
		owners: pools.Owners,
		owned: enumeration.New(
			pools.OwnedList,
			pools.OwnedIndex,
			pools.OwnedCount,
			fault.OwnedCountOverflow,
			fault.OwnedCountUnderflow,
		),
	}
}

// OwnerOf - current owner of a kitty
func (m *Map) OwnerOf(reader storage.Reader, id identifier.Identifier) (*account.Account, error) {
	buffer := reader.Get(m.owners, id[:])
	if nil == buffer {
		return nil, fault.OwnerNotFound
	}
	owner, err := account.FromBytes(buffer)
	if nil != err {
		m.log.Criticalf("kitty: %s invalid owner: %x  error: %s", id, buffer, err)
		return nil, fault.CorruptRecord
	}
	return owner, nil
}

// Create - attribute a newly minted kitty to its first owner
func (m *Map) Create(trx storage.Transaction, owner *account.Account, id identifier.Identifier) error {
	ownerBytes := owner.Bytes()
	if _, err := m.owned.Append(trx, ownerBytes, id); nil != err {
		return err
	}
	trx.Put(m.owners, id[:], ownerBytes)
	return nil
}

// Transfer - move a kitty from its current owner to a new one
//
// the departing kitty's slot in the sender's list is filled by the
// sender's last kitty, the receiver gets it at the end of their list
func (m *Map) Transfer(trx storage.Transaction, from *account.Account, to *account.Account, id identifier.Identifier) error {
	current, err := m.OwnerOf(trx, id)
	if nil != err {
		return err
	}
	if !current.Equal(from) {
		return fault.NotOwner
	}

	fromBytes := from.Bytes()
	toBytes := to.Bytes()

	// both counts must be able to change before anything is written
	if err := m.owned.CanRemove(trx, fromBytes); nil != err {
		m.log.Criticalf("owner: %s has kitty: %s but no count", from, id)
		return err
	}
	if err := m.owned.CanAppend(trx, toBytes); nil != err {
		return err
	}

	if err := m.owned.Remove(trx, fromBytes, id); nil != err {
		return err
	}
	trx.Put(m.owners, id[:], toBytes)
	if _, err := m.owned.Append(trx, toBytes, id); nil != err {
		return err
	}
	return nil
}
