// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balance keeps account balances and moves amounts between
// them on behalf of purchases
package balance

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
)

//go:generate mockgen -destination=mocks/payment.go -package=mocks github.com/bitmark-inc/kittyd/balance Payment

// Payment - moves value between accounts as part of a transaction
type Payment interface {
	Transfer(trx storage.Transaction, from *account.Account, to *account.Account, amount uint64) error
}

// Ledger - balances held in a pool keyed by account
type Ledger struct {
	log  *logger.L
	pool *storage.PoolHandle
}

// New - ledger over the balances pool
func New(pool *storage.PoolHandle) *Ledger {
	return &Ledger{
		log:  logger.New("balance"),
		pool: pool,
	}
}

// Get - current balance, zero for unknown accounts
func (l *Ledger) Get(reader storage.Reader, a *account.Account) uint64 {
	n, _ := reader.GetN(l.pool, a.Bytes())
	return n
}

// Credit - add to a balance
func (l *Ledger) Credit(trx storage.Transaction, a *account.Account, amount uint64) error {
	if 0 == amount {
		return fault.InvalidAmount
	}
	current := l.Get(trx, a)
	if current > math.MaxUint64-amount {
		return fault.BalanceOverflow
	}
	trx.PutN(l.pool, a.Bytes(), current+amount)
	l.log.Debugf("credit: %s  amount: %d", a, amount)
	return nil
}

// Transfer - move amount from one account to another
func (l *Ledger) Transfer(trx storage.Transaction, from *account.Account, to *account.Account, amount uint64) error {
	fromBalance := l.Get(trx, from)
	if fromBalance < amount {
		return fault.InsufficientFunds
	}
	if from.Equal(to) || 0 == amount {
		return nil
	}

	toBalance := l.Get(trx, to)
	if toBalance > math.MaxUint64-amount {
		return fault.BalanceOverflow
	}

	l.put(trx, from, fromBalance-amount)
	l.put(trx, to, toBalance+amount)
	l.log.Debugf("transfer: %s -> %s  amount: %d", from, to, amount)
	return nil
}

func (l *Ledger) put(trx storage.Transaction, a *account.Account, amount uint64) {
	if 0 == amount {
		trx.Delete(l.pool, a.Bytes())
		return
	}
	trx.PutN(l.pool, a.Bytes(), amount)
}

// Record - one account's balance
type Record struct {
	Account *account.Account `json:"account"`
	Balance uint64           `json:"balance"`
}

// All - every non-zero balance
func (l *Ledger) All() ([]Record, error) {
	records := []Record{}
	err := l.pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		a, err := account.FromBytes(key)
		if nil != err {
			return err
		}
		if len(value) < 8 {
			return fault.RecordTruncated
		}
		records = append(records, Record{Account: a, Balance: binary.BigEndian.Uint64(value[:8])})
		return nil
	})
	return records, err
}
