// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/balance"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/rpc/ledger"
	"github.com/bitmark-inc/kittyd/rpc/ratelimit"
	"github.com/bitmark-inc/kittyd/storage"
)

const (
	rateLimitBalance = 200
	rateBurstBalance = 100
)

// Balance - type for the RPC
type Balance struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Ledger   ledger.Ledger
	Balances *balance.Ledger
}

// New - create the balance RPC service
func New(log *logger.L, l ledger.Ledger, balances *balance.Ledger) *Balance {
	return &Balance{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitBalance, rateBurstBalance),
		Ledger:   l,
		Balances: balances,
	}
}

// GetArguments - arguments for RPC
type GetArguments struct {
	Account *account.Account `json:"account"`
}

// GetReply - result of balance RPC
type GetReply struct {
	Account *account.Account `json:"account"`
	Balance uint64           `json:"balance"`
}

// Get - the spendable balance of an account
func (b *Balance) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}
	if nil == arguments.Account {
		return fault.MissingParameters
	}

	b.Log.Debugf("Balance.Get: %s", arguments.Account)

	// read between operations so a pending purchase is never visible
	b.Ledger.View(func(reader storage.Reader) {
		reply.Balance = b.Balances.Get(reader, arguments.Account)
	})
	reply.Account = arguments.Account
	return nil
}
