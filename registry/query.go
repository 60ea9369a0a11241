// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/storage"
)

// Entry - a kitty with its owner and its position in a list
type Entry struct {
	N     uint64           `json:"n"`
	Kitty *kitty.Kitty     `json:"kitty"`
	Owner *account.Account `json:"owner"`
}

// Kitty - fetch a kitty record
func (r *Registry) Kitty(id identifier.Identifier) (*kitty.Kitty, error) {
	r.RLock()
	defer r.RUnlock()

	return r.kitties.Get(r.store, id)
}

// OwnerOf - current owner of a kitty
func (r *Registry) OwnerOf(id identifier.Identifier) (*account.Account, error) {
	r.RLock()
	defer r.RUnlock()

	return r.owners.OwnerOf(r.store, id)
}

// Describe - a kitty with its owner and minting position, all read
// from the same state
func (r *Registry) Describe(id identifier.Identifier) (*Entry, error) {
	r.RLock()
	defer r.RUnlock()

	k, owner, err := r.kittyAndOwner(r.store, id)
	if nil != err {
		return nil, err
	}
	seq, ok := r.all.IndexOf(r.store, nil, id)
	if !ok {
		r.log.Criticalf("describe: kitty: %s is not enumerated", id)
		return nil, fault.KittyNotFound
	}
	return &Entry{N: seq, Kitty: k, Owner: owner}, nil
}

// TotalCount - number of kitties ever minted
func (r *Registry) TotalCount() uint64 {
	r.RLock()
	defer r.RUnlock()

	return r.all.Count(r.store, nil)
}

// KittyByIndex - kitty at a position in minting order
func (r *Registry) KittyByIndex(seq uint64) (identifier.Identifier, error) {
	r.RLock()
	defer r.RUnlock()

	id, ok := r.all.At(r.store, nil, seq)
	if !ok {
		return id, fault.KittyNotFound
	}
	return id, nil
}

// IndexOf - position of a kitty in minting order
func (r *Registry) IndexOf(id identifier.Identifier) (uint64, error) {
	r.RLock()
	defer r.RUnlock()

	seq, ok := r.all.IndexOf(r.store, nil, id)
	if !ok {
		return 0, fault.KittyNotFound
	}
	return seq, nil
}

// OwnedCount - number of kitties an account holds
func (r *Registry) OwnedCount(owner *account.Account) uint64 {
	r.RLock()
	defer r.RUnlock()

	return r.owners.Count(r.store, owner)
}

// OwnedByIndex - kitty at a position in an account's list
func (r *Registry) OwnedByIndex(owner *account.Account, seq uint64) (identifier.Identifier, error) {
	r.RLock()
	defer r.RUnlock()

	id, ok := r.owners.At(r.store, owner, seq)
	if !ok {
		return id, fault.KittyNotFound
	}
	return id, nil
}

// List - a page of kitties in minting order
func (r *Registry) List(start uint64, count int) ([]Entry, error) {
	r.RLock()
	defer r.RUnlock()

	ids := r.all.Range(r.store, nil, start, count)
	entries := make([]Entry, 0, len(ids))
	for i, id := range ids {
		k, owner, err := r.kittyAndOwner(r.store, id)
		if nil != err {
			r.log.Criticalf("list: kitty: %s at: %d  error: %s", id, start+uint64(i), err)
			return nil, err
		}
		entries = append(entries, Entry{N: start + uint64(i), Kitty: k, Owner: owner})
	}
	return entries, nil
}

// ListOwned - a page of an account's kitties
//
// positions change when the account gives a kitty away
func (r *Registry) ListOwned(owner *account.Account, start uint64, count int) ([]Entry, error) {
	r.RLock()
	defer r.RUnlock()

	records := r.owners.ListFor(r.store, owner, start, count)
	entries := make([]Entry, 0, len(records))
	for _, record := range records {
		k, err := r.kitties.Get(r.store, record.Id)
		if nil != err {
			r.log.Criticalf("list owned: owner: %s  kitty: %s at: %d  error: %s", owner, record.Id, record.N, err)
			return nil, err
		}
		entries = append(entries, Entry{N: record.N, Kitty: k, Owner: owner})
	}
	return entries, nil
}

// Nonce - the next identifier nonce
func (r *Registry) Nonce() uint64 {
	r.RLock()
	defer r.RUnlock()

	n, _ := r.store.GetN(r.nonce, nil)
	return n
}

// View - run f with read access while no operation is in progress
func (r *Registry) View(f func(reader storage.Reader)) {
	r.RLock()
	defer r.RUnlock()

	f(r.store)
}
