// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"strconv"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/registry"
	"github.com/bitmark-inc/kittyd/rpc/ledger"
	"github.com/bitmark-inc/kittyd/rpc/ratelimit"
	"github.com/bitmark-inc/kittyd/rpc/signed"
)

const (
	// MaximumListCount - most entries in a list reply
	MaximumListCount = 100

	rateLimitKitty = 200
	rateBurstKitty = 100
)

// Kitty - type for the RPC
type Kitty struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Ledger
	Seen    *signed.Seen
	Now     func() time.Time
}

// New - create the kitty RPC service
func New(log *logger.L, l ledger.Ledger) *Kitty {
	return &Kitty{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitKitty, rateBurstKitty),
		Ledger:  l,
		Seen:    signed.NewSeen(),
		Now:     time.Now,
	}
}

// KittyReply - a kitty with its owner and minting position
type KittyReply struct {
	Kitty *kitty.Kitty     `json:"kitty"`
	Owner *account.Account `json:"owner"`
	N     uint64           `json:"n"`
}

// resolve the caller of a signed request, each signature is usable once
func (k *Kitty) verify(r *signed.Request, method string, fields ...string) (*account.Account, error) {
	caller, err := r.Verify(k.Now(), method, fields...)
	if nil != err {
		return nil, err
	}
	if err := k.Seen.Accept(r); nil != err {
		k.Log.Warnf("%s: replayed request from: %s", method, caller)
		return nil, err
	}
	return caller, nil
}

// fill in the reply for a stored kitty
func (k *Kitty) describe(id identifier.Identifier, reply *KittyReply) error {
	entry, err := k.Ledger.Describe(id)
	if nil != err {
		return err
	}
	reply.Kitty = entry.Kitty
	reply.Owner = entry.Owner
	reply.N = entry.N
	return nil
}

// Create
// ------

// CreateArguments - arguments for RPC
type CreateArguments struct {
	signed.Request
}

// Create - mint a new kitty to the caller
func (k *Kitty) Create(arguments *CreateArguments, reply *KittyReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}

	caller, err := k.verify(&arguments.Request, "Kitty.Create")
	if nil != err {
		return err
	}

	k.Log.Infof("Kitty.Create: caller: %s", caller)

	record, err := k.Ledger.Create(caller)
	if nil != err {
		return err
	}
	return k.describe(record.Id, reply)
}

// SetPrice
// --------

// SetPriceArguments - arguments for RPC
type SetPriceArguments struct {
	signed.Request
	Id    identifier.Identifier `json:"id"`
	Price uint64                `json:"price"`
}

// OperationReply - result of an operation on an existing kitty
type OperationReply struct {
	Id identifier.Identifier `json:"id"`
}

// SetPrice - list a kitty for sale, zero withdraws it
func (k *Kitty) SetPrice(arguments *SetPriceArguments, reply *OperationReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}

	caller, err := k.verify(&arguments.Request, "Kitty.SetPrice", arguments.Id.String(), strconv.FormatUint(arguments.Price, 10))
	if nil != err {
		return err
	}

	k.Log.Infof("Kitty.SetPrice: caller: %s  kitty: %s  price: %d", caller, arguments.Id, arguments.Price)

	if err := k.Ledger.SetPrice(caller, arguments.Id, arguments.Price); nil != err {
		return err
	}
	reply.Id = arguments.Id
	return nil
}

// Transfer
// --------

// TransferArguments - arguments for RPC
type TransferArguments struct {
	signed.Request
	Id identifier.Identifier `json:"id"`
	To *account.Account      `json:"to"`
}

// Transfer - give a kitty to another account
func (k *Kitty) Transfer(arguments *TransferArguments, reply *OperationReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}
	if nil == arguments.To {
		return fault.MissingParameters
	}

	caller, err := k.verify(&arguments.Request, "Kitty.Transfer", arguments.Id.String(), arguments.To.String())
	if nil != err {
		return err
	}

	k.Log.Infof("Kitty.Transfer: caller: %s  kitty: %s  to: %s", caller, arguments.Id, arguments.To)

	if err := k.Ledger.Transfer(caller, arguments.To, arguments.Id); nil != err {
		return err
	}
	reply.Id = arguments.Id
	return nil
}

// Buy
// ---

// BuyArguments - arguments for RPC
type BuyArguments struct {
	signed.Request
	Id       identifier.Identifier `json:"id"`
	MaxPrice uint64                `json:"maxPrice"`
}

// Buy - purchase a kitty that is for sale
func (k *Kitty) Buy(arguments *BuyArguments, reply *OperationReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}

	caller, err := k.verify(&arguments.Request, "Kitty.Buy", arguments.Id.String(), strconv.FormatUint(arguments.MaxPrice, 10))
	if nil != err {
		return err
	}

	k.Log.Infof("Kitty.Buy: caller: %s  kitty: %s  max price: %d", caller, arguments.Id, arguments.MaxPrice)

	if err := k.Ledger.Buy(caller, arguments.Id, arguments.MaxPrice); nil != err {
		return err
	}
	reply.Id = arguments.Id
	return nil
}

// Breed
// -----

// BreedArguments - arguments for RPC
type BreedArguments struct {
	signed.Request
	ParentA identifier.Identifier `json:"parentA"`
	ParentB identifier.Identifier `json:"parentB"`
}

// Breed - mint the child of two kitties to the caller
func (k *Kitty) Breed(arguments *BreedArguments, reply *KittyReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}

	caller, err := k.verify(&arguments.Request, "Kitty.Breed", arguments.ParentA.String(), arguments.ParentB.String())
	if nil != err {
		return err
	}

	k.Log.Infof("Kitty.Breed: caller: %s  parents: %s %s", caller, arguments.ParentA, arguments.ParentB)

	child, err := k.Ledger.Breed(caller, arguments.ParentA, arguments.ParentB)
	if nil != err {
		return err
	}
	return k.describe(child.Id, reply)
}

// Get
// ---

// GetArguments - arguments for RPC
type GetArguments struct {
	Id identifier.Identifier `json:"id"`
}

// Get - details of a single kitty
func (k *Kitty) Get(arguments *GetArguments, reply *KittyReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}

	k.Log.Debugf("Kitty.Get: %s", arguments.Id)

	return k.describe(arguments.Id, reply)
}

// List
// ----

// ListArguments - arguments for RPC
type ListArguments struct {
	Start uint64 `json:"start"`
	Count int    `json:"count"`
}

// ListReply - result of list RPC
type ListReply struct {
	Next  uint64           `json:"next"`  // start value for the next call
	Total uint64           `json:"total"` // number of kitties
	Data  []registry.Entry `json:"data"`
}

// List - kitties in minting order
func (k *Kitty) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.LimitN(k.Limiter, arguments.Count, MaximumListCount); nil != err {
		return err
	}

	k.Log.Debugf("Kitty.List: start: %d  count: %d", arguments.Start, arguments.Count)

	entries, err := k.Ledger.List(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Total = k.Ledger.TotalCount()
	reply.Data = entries
	reply.Next = arguments.Start + uint64(len(entries))
	return nil
}
