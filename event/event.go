// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event defines the notifications emitted by ledger operations
package event

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/identifier"
)

// Kind - type of notification
type Kind int

// the notification kinds
const (
	Created Kind = iota
	PriceSet
	Transferred
	Bought
)

var kindNames = [...]string{
	Created:     "created",
	PriceSet:    "price_set",
	Transferred: "transferred",
	Bought:      "bought",
}

// String - name of the kind
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "*unknown*"
	}
	return kindNames[k]
}

// MarshalText - name for JSON
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Event - one notification
//
//   Created      Owner, KittyId
//   PriceSet     Owner, KittyId, Price
//   Transferred  From, To, KittyId
//   Bought       To (buyer), From (seller), KittyId, Price
type Event struct {
	Kind    Kind                  `json:"kind"`
	Owner   *account.Account      `json:"owner,omitempty"`
	From    *account.Account      `json:"from,omitempty"`
	To      *account.Account      `json:"to,omitempty"`
	KittyId identifier.Identifier `json:"kittyId"`
	Price   uint64                `json:"price,omitempty"`
}

//go:generate mockgen -destination=mocks/sink.go -package=mocks github.com/bitmark-inc/kittyd/event Sink

// Sink - receives notifications after they are committed
type Sink interface {
	Notify(Event)
}
