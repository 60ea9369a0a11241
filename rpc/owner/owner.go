// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/registry"
	"github.com/bitmark-inc/kittyd/rpc/ledger"
	"github.com/bitmark-inc/kittyd/rpc/ratelimit"
)

// Owner
// -----

// Owner - type for the RPC
type Owner struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Ledger
}

const (
	MaximumKittiesCount = 100
	rateLimitOwner      = 200
	rateBurstOwner      = 100
)

// New - create the owner RPC service
func New(log *logger.L, l ledger.Ledger) *Owner {
	return &Owner{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitOwner, rateBurstOwner),
		Ledger:  l,
	}
}

// Owner kitties
// -------------

// KittiesArguments - arguments for RPC
type KittiesArguments struct {
	Owner *account.Account `json:"owner"` // base58
	Start uint64           `json:"start"` // first position in the owner's list
	Count int              `json:"count"` // number of records
}

// KittiesReply - result of owner RPC
type KittiesReply struct {
	Next  uint64           `json:"next"`  // start value for the next call
	Total uint64           `json:"total"` // number of kitties the owner holds
	Data  []registry.Entry `json:"data"`
}

// Kitties - list kitties belonging to an account
func (owner *Owner) Kitties(arguments *KittiesArguments, reply *KittiesReply) error {

	if err := ratelimit.LimitN(owner.Limiter, arguments.Count, MaximumKittiesCount); nil != err {
		return err
	}
	if nil == arguments.Owner {
		return fault.MissingParameters
	}

	log := owner.Log
	log.Infof("Owner.Kitties: %s  start: %d  count: %d", arguments.Owner, arguments.Start, arguments.Count)

	entries, err := owner.Ledger.ListOwned(arguments.Owner, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	log.Debugf("entries: %+v", entries)

	reply.Data = entries
	reply.Total = owner.Ledger.OwnedCount(arguments.Owner)
	reply.Next = arguments.Start + uint64(len(entries))
	return nil
}
