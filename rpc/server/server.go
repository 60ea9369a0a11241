// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server assembles the RPC services
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/balance"
	balancerpc "github.com/bitmark-inc/kittyd/rpc/balance"
	"github.com/bitmark-inc/kittyd/rpc/kitty"
	"github.com/bitmark-inc/kittyd/rpc/ledger"
	"github.com/bitmark-inc/kittyd/rpc/node"
	"github.com/bitmark-inc/kittyd/rpc/owner"
)

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, rpcCount node.Counter, l ledger.Ledger, balances *balance.Ledger) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(kitty.New(log, l))
	_ = server.Register(owner.New(log, l))
	_ = server.Register(balancerpc.New(log, l, balances))
	_ = server.Register(node.New(log, l, start, version, rpcCount))

	return server
}
