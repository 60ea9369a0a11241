// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger is the view of the registry used by the RPC services
package ledger

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/registry"
	"github.com/bitmark-inc/kittyd/storage"
)

//go:generate mockgen -destination=../mocks/ledger.go -package=mocks github.com/bitmark-inc/kittyd/rpc/ledger Ledger

// Ledger - operations and queries on kitties
type Ledger interface {
	Create(*account.Account) (*kitty.Kitty, error)
	SetPrice(*account.Account, identifier.Identifier, uint64) error
	Transfer(*account.Account, *account.Account, identifier.Identifier) error
	Buy(*account.Account, identifier.Identifier, uint64) error
	Breed(*account.Account, identifier.Identifier, identifier.Identifier) (*kitty.Kitty, error)

	Describe(identifier.Identifier) (*registry.Entry, error)
	TotalCount() uint64
	OwnedCount(*account.Account) uint64
	List(uint64, int) ([]registry.Entry, error)
	ListOwned(*account.Account, uint64, int) ([]registry.Entry, error)
	Nonce() uint64
	View(func(storage.Reader))
}
