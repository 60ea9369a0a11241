// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"math"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/balance"
	"github.com/bitmark-inc/kittyd/enumeration"
	"github.com/bitmark-inc/kittyd/event"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/storage"
)

// Registry - the kitty ledger
type Registry struct {
	sync.RWMutex

	log     *logger.L
	store   *storage.Store
	kitties *kitty.Records
	all     *enumeration.Index
	owners  *ownership.Map
	nonce   *storage.PoolHandle
	payment balance.Payment
	source  identifier.Source
	sink    event.Sink
}

// New - create a registry over an open store
func New(store *storage.Store, payment balance.Payment, source identifier.Source, sink event.Sink) *Registry {
	return &Registry{
		log:     logger.New("registry"),
		store:   store,
		kitties: kitty.NewRecords(store.Pool.Kitties),
		all: enumeration.New(
			store.Pool.AllList,
			store.Pool.AllIndex,
			store.Pool.AllCount,
			fault.GlobalCountOverflow,
			fault.GlobalCountOverflow,
		),
		owners:  ownership.New(&store.Pool),
		nonce:   store.Pool.Nonce,
		payment: payment,
		source:  source,
		sink:    sink,
	}
}

// events produced during an operation
type pending []event.Event

func (p *pending) emit(e event.Event) {
	*p = append(*p, e)
}

// run f inside a transaction, committing only if it succeeds and
// then delivering its events
func (r *Registry) update(operation string, f func(trx storage.Transaction, events *pending) error) error {
	trx, err := r.store.Begin()
	if nil != err {
		r.log.Errorf("%s: begin error: %s", operation, err)
		return err
	}

	events := pending{}
	err = f(trx, &events)
	if nil != err {
		trx.Abort()
		r.log.Warnf("%s: rejected: %s", operation, err)
		return err
	}

	err = trx.Commit()
	if nil != err {
		r.log.Errorf("%s: commit error: %s", operation, err)
		return err
	}

	for _, e := range events {
		r.sink.Notify(e)
	}
	return nil
}

// produce a fresh identifier from the current nonce
func (r *Registry) nextIdentifier(trx storage.Transaction, caller *account.Account) (identifier.Identifier, uint64, error) {
	nonce, _ := trx.GetN(r.nonce, nil)
	if math.MaxUint64 == nonce {
		return identifier.Identifier{}, 0, fault.NonceOverflow
	}

	seed, err := r.source.Seed()
	if nil != err {
		r.log.Errorf("seed error: %s", err)
		return identifier.Identifier{}, 0, err
	}
	return identifier.Generate(seed, caller, nonce), nonce, nil
}

// advance the nonce after a successful mint, it is written in the
// same transaction so a rejected operation never consumes it
func (r *Registry) consumeNonce(trx storage.Transaction, nonce uint64) {
	trx.PutN(r.nonce, nil, nonce+1)
}

// add a new kitty to the store and both enumerations
func (r *Registry) mint(trx storage.Transaction, owner *account.Account, k *kitty.Kitty, events *pending) error {
	if r.kitties.Has(trx, k.Id) {
		r.log.Criticalf("identifier collision: %s", k.Id)
		return fault.IdentifierCollision
	}

	if _, err := r.all.Append(trx, nil, k.Id); nil != err {
		return err
	}
	if err := r.owners.Create(trx, owner, k.Id); nil != err {
		return err
	}
	r.kitties.Put(trx, k)

	events.emit(event.Event{
		Kind:    event.Created,
		Owner:   owner,
		KittyId: k.Id,
	})
	return nil
}

// move ownership between two accounts
func (r *Registry) transfer(trx storage.Transaction, from *account.Account, to *account.Account, id identifier.Identifier, events *pending) error {
	if err := r.owners.Transfer(trx, from, to, id); nil != err {
		return err
	}

	events.emit(event.Event{
		Kind:    event.Transferred,
		From:    from,
		To:      to,
		KittyId: id,
	})
	return nil
}

// kitty and its owner, both must exist
func (r *Registry) kittyAndOwner(reader storage.Reader, id identifier.Identifier) (*kitty.Kitty, *account.Account, error) {
	k, err := r.kitties.Get(reader, id)
	if nil != err {
		return nil, nil, err
	}
	owner, err := r.owners.OwnerOf(reader, id)
	if nil != err {
		return nil, nil, err
	}
	return k, owner, nil
}
