// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/event"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/storage"
)

// Create - mint a first generation kitty to the caller
func (r *Registry) Create(caller *account.Account) (*kitty.Kitty, error) {
	if nil == caller {
		return nil, fault.MissingCaller
	}

	r.Lock()
	defer r.Unlock()

	var k *kitty.Kitty
	err := r.update("create", func(trx storage.Transaction, events *pending) error {
		id, nonce, err := r.nextIdentifier(trx, caller)
		if nil != err {
			return err
		}

		k = kitty.New(id)
		if err := r.mint(trx, caller, k, events); nil != err {
			return err
		}
		r.consumeNonce(trx, nonce)
		return nil
	})
	if nil != err {
		return nil, err
	}

	r.log.Infof("create: owner: %s  kitty: %s", caller, k.Id)
	return k, nil
}

// SetPrice - list a kitty for sale, zero withdraws it
func (r *Registry) SetPrice(caller *account.Account, id identifier.Identifier, price uint64) error {
	if nil == caller {
		return fault.MissingCaller
	}

	r.Lock()
	defer r.Unlock()

	err := r.update("set price", func(trx storage.Transaction, events *pending) error {
		k, owner, err := r.kittyAndOwner(trx, id)
		if nil != err {
			return err
		}
		if !owner.Equal(caller) {
			return fault.NotOwner
		}

		k.Price = price
		r.kitties.Put(trx, k)

		events.emit(event.Event{
			Kind:    event.PriceSet,
			Owner:   owner,
			KittyId: id,
			Price:   price,
		})
		return nil
	})
	if nil != err {
		return err
	}

	r.log.Infof("set price: kitty: %s  price: %d", id, price)
	return nil
}

// Transfer - give a kitty to another account
//
// giving a kitty to its current owner succeeds without any change
func (r *Registry) Transfer(caller *account.Account, to *account.Account, id identifier.Identifier) error {
	if nil == caller {
		return fault.MissingCaller
	}
	if nil == to {
		return fault.MissingParameters
	}

	r.Lock()
	defer r.Unlock()

	err := r.update("transfer", func(trx storage.Transaction, events *pending) error {
		owner, err := r.owners.OwnerOf(trx, id)
		if nil != err {
			return err
		}
		if !owner.Equal(caller) {
			return fault.NotOwner
		}
		if owner.Equal(to) {
			return nil
		}
		return r.transfer(trx, owner, to, id, events)
	})
	if nil != err {
		return err
	}

	r.log.Infof("transfer: kitty: %s  from: %s  to: %s", id, caller, to)
	return nil
}

// Buy - pay the listed price to the owner and take the kitty
//
// maxPrice is the most the buyer is willing to pay
func (r *Registry) Buy(buyer *account.Account, id identifier.Identifier, maxPrice uint64) error {
	if nil == buyer {
		return fault.MissingCaller
	}

	r.Lock()
	defer r.Unlock()

	var price uint64
	err := r.update("buy", func(trx storage.Transaction, events *pending) error {
		k, owner, err := r.kittyAndOwner(trx, id)
		if nil != err {
			return err
		}
		if owner.Equal(buyer) {
			return fault.SameBuyerAndOwner
		}
		if !k.ForSale() {
			return fault.NotForSale
		}
		if k.Price > maxPrice {
			return fault.PriceAboveCeiling
		}

		price = k.Price
		if err := r.payment.Transfer(trx, buyer, owner, price); nil != err {
			return err
		}
		if err := r.transfer(trx, owner, buyer, id, events); nil != err {
			return err
		}

		k.Price = 0
		r.kitties.Put(trx, k)

		events.emit(event.Event{
			Kind:    event.Bought,
			From:    owner,
			To:      buyer,
			KittyId: id,
			Price:   price,
		})
		return nil
	})
	if nil != err {
		return err
	}

	r.log.Infof("buy: kitty: %s  buyer: %s  price: %d", id, buyer, price)
	return nil
}

// Breed - mint a child of two existing kitties to the caller
func (r *Registry) Breed(caller *account.Account, idA identifier.Identifier, idB identifier.Identifier) (*kitty.Kitty, error) {
	if nil == caller {
		return nil, fault.MissingCaller
	}

	r.Lock()
	defer r.Unlock()

	var child *kitty.Kitty
	err := r.update("breed", func(trx storage.Transaction, events *pending) error {
		a, err := r.kitties.Get(trx, idA)
		if nil != err {
			return err
		}
		b, err := r.kitties.Get(trx, idB)
		if nil != err {
			return err
		}

		id, nonce, err := r.nextIdentifier(trx, caller)
		if nil != err {
			return err
		}

		child, err = kitty.Offspring(id, a, b)
		if nil != err {
			return err
		}
		if err := r.mint(trx, caller, child, events); nil != err {
			return err
		}
		r.consumeNonce(trx, nonce)
		return nil
	})
	if nil != err {
		return nil, err
	}

	r.log.Infof("breed: %s + %s -> kitty: %s  generation: %d", idA, idB, child.Id, child.Generation)
	return child, nil
}
