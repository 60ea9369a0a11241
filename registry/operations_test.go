// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/balance/mocks"
	"github.com/bitmark-inc/kittyd/event"
	eventmocks "github.com/bitmark-inc/kittyd/event/mocks"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/registry"
	"github.com/bitmark-inc/kittyd/storage"
)

func TestCreate(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	a := makeAccount(t, 0x0a)

	k, err := d.registry.Create(a)
	assert.Nil(t, err, "create error")
	assert.Equal(t, identifier.Generate(d.source.seed, a, 0), k.Id, "identifier not derived from seed, caller and nonce")
	assert.Equal(t, kitty.DNA(k.Id), k.DNA, "first generation dna")
	assert.Equal(t, uint64(0), k.Price, "price")
	assert.Equal(t, uint64(0), k.Generation, "generation")

	stored, err := d.registry.Kitty(k.Id)
	assert.Nil(t, err, "stored kitty error")
	assert.Equal(t, k, stored, "stored kitty")

	owner, err := d.registry.OwnerOf(k.Id)
	assert.Nil(t, err, "owner error")
	assert.True(t, a.Equal(owner), "owner")

	ids := d.create(t, a, 2)
	assert.Equal(t, identifier.Generate(d.source.seed, a, 2), ids[1], "nonce not advanced per mint")
	assert.Equal(t, uint64(3), d.registry.Nonce(), "nonce")
	assert.Equal(t, uint64(3), d.registry.TotalCount(), "total count")
	assert.Equal(t, uint64(3), d.registry.OwnedCount(a), "owned count")

	assert.Equal(t, []event.Kind{event.Created, event.Created, event.Created}, d.sink.kinds(), "events")
	assert.True(t, a.Equal(d.sink.events[0].Owner), "event owner")
	assert.Equal(t, k.Id, d.sink.events[0].KittyId, "event kitty")

	assertConsistent(t, d.registry, a)
}

func TestCreateMissingCaller(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	_, err := d.registry.Create(nil)
	assert.Equal(t, fault.MissingCaller, err, "nil caller")
}

func TestCreateSeedError(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	seedError := errors.New("no entropy")
	d.source.err = seedError

	_, err := d.registry.Create(makeAccount(t, 1))
	assert.Equal(t, seedError, err, "seed error")
	assert.Equal(t, uint64(0), d.registry.Nonce(), "nonce consumed")
	assert.Equal(t, 0, len(d.sink.events), "events on failure")
}

func TestCreateCollision(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	a := makeAccount(t, 1)
	first := d.create(t, a, 1)[0]

	// same seed, caller and nonce produce the same identifier
	d.force(t, d.store.Pool.Nonce, nil, 0)
	d.sink.reset()

	_, err := d.registry.Create(a)
	assert.Equal(t, fault.IdentifierCollision, err, "collision")
	assert.True(t, fault.IsErrExists(err), "collision class")

	assert.Equal(t, uint64(0), d.registry.Nonce(), "nonce consumed")
	assert.Equal(t, uint64(1), d.registry.TotalCount(), "total count")
	assert.Equal(t, []identifier.Identifier{first}, owned(t, d.registry, a), "owned list")
	assert.Equal(t, 0, len(d.sink.events), "events on failure")
}

func TestCreateOwnedOverflow(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	a := makeAccount(t, 1)
	d.force(t, d.store.Pool.OwnedCount, a.Bytes(), math.MaxUint64)

	_, err := d.registry.Create(a)
	assert.Equal(t, fault.OwnedCountOverflow, err, "overflow")
	assert.True(t, fault.IsErrLimit(err), "overflow class")

	// all stores unchanged
	assert.Equal(t, uint64(0), d.registry.TotalCount(), "total count")
	assert.Equal(t, uint64(0), d.registry.Nonce(), "nonce")
	assert.Equal(t, uint64(math.MaxUint64), d.registry.OwnedCount(a), "owned count")
	_, err = d.registry.KittyByIndex(0)
	assert.Equal(t, fault.KittyNotFound, err, "global entry written")
	_, err = d.registry.Kitty(identifier.Generate(d.source.seed, a, 0))
	assert.Equal(t, fault.KittyNotFound, err, "kitty written")
	assert.Equal(t, 0, len(d.sink.events), "events on failure")
}

func TestCreateGlobalOverflow(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	a := makeAccount(t, 1)
	d.force(t, d.store.Pool.AllCount, nil, math.MaxUint64)

	_, err := d.registry.Create(a)
	assert.Equal(t, fault.GlobalCountOverflow, err, "overflow")
	assert.Equal(t, uint64(0), d.registry.OwnedCount(a), "owned count")
	assert.Equal(t, uint64(0), d.registry.Nonce(), "nonce")
}

func TestCreateNonceOverflow(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	d.force(t, d.store.Pool.Nonce, nil, math.MaxUint64)

	_, err := d.registry.Create(makeAccount(t, 1))
	assert.Equal(t, fault.NonceOverflow, err, "overflow")
	assert.Equal(t, uint64(0), d.registry.TotalCount(), "total count")
}

func TestSetPrice(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	a := makeAccount(t, 0x0a)
	b := makeAccount(t, 0x0b)
	id := d.create(t, a, 1)[0]
	d.sink.reset()

	assert.Nil(t, d.registry.SetPrice(a, id, 100), "set price error")
	k, _ := d.registry.Kitty(id)
	assert.Equal(t, uint64(100), k.Price, "price")

	assert.Equal(t, 1, len(d.sink.events), "event count")
	e := d.sink.events[0]
	assert.Equal(t, event.PriceSet, e.Kind, "event kind")
	assert.True(t, a.Equal(e.Owner), "event owner")
	assert.Equal(t, id, e.KittyId, "event kitty")
	assert.Equal(t, uint64(100), e.Price, "event price")

	// zero withdraws from sale
	assert.Nil(t, d.registry.SetPrice(a, id, 0), "withdraw error")
	k, _ = d.registry.Kitty(id)
	assert.False(t, k.ForSale(), "still for sale")

	d.sink.reset()
	assert.Equal(t, fault.NotOwner, d.registry.SetPrice(b, id, 5), "not owner")
	assert.Equal(t, fault.KittyNotFound, d.registry.SetPrice(a, identifier.Identifier{9}, 5), "unknown kitty")
	assert.Equal(t, fault.MissingCaller, d.registry.SetPrice(nil, id, 5), "nil caller")
	assert.Equal(t, 0, len(d.sink.events), "events on failure")

	k, _ = d.registry.Kitty(id)
	assert.Equal(t, uint64(0), k.Price, "price changed by rejected call")
}

func TestSetPriceNoOwner(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	id := d.create(t, makeAccount(t, 1), 1)[0]

	trx, _ := d.store.Begin()
	trx.Delete(d.store.Pool.Owners, id[:])
	assert.Nil(t, trx.Commit(), "commit error")

	assert.Equal(t, fault.OwnerNotFound, d.registry.SetPrice(makeAccount(t, 1), id, 5), "no owner")
}

func TestTransferSwapAndPop(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	a := makeAccount(t, 0x0a)
	c := makeAccount(t, 0x0c)
	ids := d.create(t, a, 3)
	p, q, r := ids[0], ids[1], ids[2]
	existing := d.create(t, c, 1)[0]
	d.sink.reset()

	assert.Nil(t, d.registry.Transfer(a, c, q), "transfer error")

	owner, _ := d.registry.OwnerOf(q)
	assert.True(t, c.Equal(owner), "owner")
	assert.Equal(t, []identifier.Identifier{p, r}, owned(t, d.registry, a), "sender list after swap and pop")
	assert.Equal(t, []identifier.Identifier{existing, q}, owned(t, d.registry, c), "receiver list")
	assert.Equal(t, uint64(2), d.registry.OwnedCount(a), "sender count")
	assert.Equal(t, uint64(2), d.registry.OwnedCount(c), "receiver count")

	// global enumeration keeps minting order
	first, _ := d.registry.KittyByIndex(1)
	assert.Equal(t, q, first, "global order changed")

	assert.Equal(t, 1, len(d.sink.events), "event count")
	e := d.sink.events[0]
	assert.Equal(t, event.Transferred, e.Kind, "event kind")
	assert.True(t, a.Equal(e.From), "event from")
	assert.True(t, c.Equal(e.To), "event to")
	assert.Equal(t, q, e.KittyId, "event kitty")

	assertConsistent(t, d.registry, a, c)
}

func TestTransferToSelf(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	a := makeAccount(t, 0x0a)
	ids := d.create(t, a, 2)
	d.sink.reset()

	assert.Nil(t, d.registry.Transfer(a, a, ids[0]), "self transfer")
	assert.Equal(t, ids, owned(t, d.registry, a), "list changed")
	assert.Equal(t, 0, len(d.sink.events), "self transfer announced")
	assertConsistent(t, d.registry, a)
}

func TestTransferRejected(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	a := makeAccount(t, 0x0a)
	b := makeAccount(t, 0x0b)
	id := d.create(t, a, 1)[0]
	d.sink.reset()

	assert.Equal(t, fault.NotOwner, d.registry.Transfer(b, b, id), "not owner")
	assert.True(t, fault.IsErrUnauthorised(fault.NotOwner), "not owner class")
	assert.Equal(t, fault.OwnerNotFound, d.registry.Transfer(a, b, identifier.Identifier{1}), "unknown kitty")
	assert.Equal(t, fault.MissingParameters, d.registry.Transfer(a, nil, id), "no destination")
	assert.Equal(t, 0, len(d.sink.events), "events on failure")
	assertConsistent(t, d.registry, a, b)
}

func TestTransferReceiverOverflow(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	a := makeAccount(t, 0x0a)
	b := makeAccount(t, 0x0b)
	ids := d.create(t, a, 2)
	d.force(t, d.store.Pool.OwnedCount, b.Bytes(), math.MaxUint64)
	d.sink.reset()

	assert.Equal(t, fault.OwnedCountOverflow, d.registry.Transfer(a, b, ids[0]), "overflow")

	owner, _ := d.registry.OwnerOf(ids[0])
	assert.True(t, a.Equal(owner), "owner changed")
	assert.Equal(t, ids, owned(t, d.registry, a), "sender list changed")
	assert.Equal(t, 0, len(d.sink.events), "events on failure")
}

func TestBuy(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	a := makeAccount(t, 0x0a)
	b := makeAccount(t, 0x0b)
	x := d.create(t, a, 1)[0]
	assert.Nil(t, d.registry.SetPrice(a, x, 100), "set price error")
	d.credit(t, b, 150)
	d.sink.reset()

	assert.Nil(t, d.registry.Buy(b, x, 150), "buy error")

	d.registry.View(func(reader storage.Reader) {
		assert.Equal(t, uint64(100), d.ledger.Get(reader, a), "seller balance")
		assert.Equal(t, uint64(50), d.ledger.Get(reader, b), "buyer balance")
	})

	owner, _ := d.registry.OwnerOf(x)
	assert.True(t, b.Equal(owner), "owner")
	k, _ := d.registry.Kitty(x)
	assert.Equal(t, uint64(0), k.Price, "price not reset")
	assert.Equal(t, uint64(0), d.registry.OwnedCount(a), "seller count")
	assert.Equal(t, uint64(1), d.registry.OwnedCount(b), "buyer count")

	assert.Equal(t, []event.Kind{event.Transferred, event.Bought}, d.sink.kinds(), "events")
	bought := d.sink.events[1]
	assert.True(t, b.Equal(bought.To), "bought buyer")
	assert.True(t, a.Equal(bought.From), "bought seller")
	assert.Equal(t, x, bought.KittyId, "bought kitty")
	assert.Equal(t, uint64(100), bought.Price, "bought price")

	assertConsistent(t, d.registry, a, b)
}

func TestBuyRejected(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	a := makeAccount(t, 0x0a)
	b := makeAccount(t, 0x0b)
	x := d.create(t, a, 1)[0]
	d.credit(t, b, 50)
	d.sink.reset()

	assert.Equal(t, fault.NotForSale, d.registry.Buy(b, x, 1000), "not for sale")

	assert.Nil(t, d.registry.SetPrice(a, x, 100), "set price error")
	d.sink.reset()

	assert.Equal(t, fault.PriceAboveCeiling, d.registry.Buy(b, x, 99), "above ceiling")
	assert.Equal(t, fault.SameBuyerAndOwner, d.registry.Buy(a, x, 100), "own kitty")
	assert.Equal(t, fault.KittyNotFound, d.registry.Buy(b, identifier.Identifier{1}, 100), "unknown kitty")
	assert.Equal(t, fault.InsufficientFunds, d.registry.Buy(b, x, 100), "insufficient funds")
	assert.Equal(t, fault.MissingCaller, d.registry.Buy(nil, x, 100), "nil buyer")

	owner, _ := d.registry.OwnerOf(x)
	assert.True(t, a.Equal(owner), "owner changed")
	k, _ := d.registry.Kitty(x)
	assert.Equal(t, uint64(100), k.Price, "price changed")
	d.registry.View(func(reader storage.Reader) {
		assert.Equal(t, uint64(50), d.ledger.Get(reader, b), "buyer charged")
	})
	assert.Equal(t, 0, len(d.sink.events), "events on failure")
}

func TestBuyPaymentRejected(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newMemoryStore(t)
	defer s.Close()

	a := makeAccount(t, 0x0a)
	b := makeAccount(t, 0x0b)

	payment := mocks.NewMockPayment(ctl)
	sink := eventmocks.NewMockSink(ctl)
	r := registry.New(s, payment, &fixedSource{}, sink)

	sink.EXPECT().Notify(gomock.Any()).Times(2) // created, price set
	k, err := r.Create(a)
	assert.Nil(t, err, "create error")
	assert.Nil(t, r.SetPrice(a, k.Id, 10), "set price error")

	payment.EXPECT().Transfer(gomock.Any(), b, a, uint64(10)).Return(fault.InsufficientFunds).Times(1)

	err = r.Buy(b, k.Id, 10)
	assert.Equal(t, fault.InsufficientFunds, err, "payment error not surfaced")

	owner, _ := r.OwnerOf(k.Id)
	assert.True(t, a.Equal(owner), "owner changed")
}

func TestBreed(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	a := makeAccount(t, 0x0a)
	c := makeAccount(t, 0x0c)
	parents := d.create(t, a, 2)
	d.sink.reset()

	// breeding does not require owning the parents
	child, err := d.registry.Breed(c, parents[0], parents[1])
	assert.Nil(t, err, "breed error")

	expectedId := identifier.Generate(d.source.seed, c, 2)
	assert.Equal(t, expectedId, child.Id, "child identifier")
	assert.Equal(t, kitty.MixDNA(kitty.DNA(parents[0]), kitty.DNA(parents[1]), expectedId), child.DNA, "child dna")
	assert.Equal(t, uint64(1), child.Generation, "child generation")
	assert.Equal(t, uint64(0), child.Price, "child price")
	assert.Equal(t, uint64(3), d.registry.Nonce(), "nonce")

	owner, _ := d.registry.OwnerOf(child.Id)
	assert.True(t, c.Equal(owner), "child owner")
	seq, _ := d.registry.IndexOf(child.Id)
	assert.Equal(t, uint64(2), seq, "child global position")

	assert.Equal(t, []event.Kind{event.Created}, d.sink.kinds(), "events")

	// later generations are one more than the older parent
	grandchild, err := d.registry.Breed(c, child.Id, parents[0])
	assert.Nil(t, err, "second breed error")
	assert.Equal(t, uint64(2), grandchild.Generation, "grandchild generation")

	// a kitty may be bred with itself
	_, err = d.registry.Breed(c, child.Id, child.Id)
	assert.Nil(t, err, "self breed error")

	assertConsistent(t, d.registry, a, c)
}

func TestBreedRejected(t *testing.T) {
	d := setup(t)
	defer d.teardown()

	a := makeAccount(t, 0x0a)
	parent := d.create(t, a, 1)[0]
	d.sink.reset()

	_, err := d.registry.Breed(a, parent, identifier.Identifier{7})
	assert.Equal(t, fault.KittyNotFound, err, "unknown parent")
	_, err = d.registry.Breed(a, identifier.Identifier{7}, parent)
	assert.Equal(t, fault.KittyNotFound, err, "unknown parent")

	// generation overflow
	k, _ := d.registry.Kitty(parent)
	k.Generation = math.MaxUint64
	trx, _ := d.store.Begin()
	trx.Put(d.store.Pool.Kitties, parent[:], k.Pack())
	assert.Nil(t, trx.Commit(), "commit error")

	_, err = d.registry.Breed(a, parent, parent)
	assert.Equal(t, fault.GenerationOverflow, err, "generation overflow")

	assert.Equal(t, uint64(1), d.registry.Nonce(), "nonce consumed")
	assert.Equal(t, uint64(1), d.registry.TotalCount(), "total count")
	assert.Equal(t, 0, len(d.sink.events), "events on failure")
}
