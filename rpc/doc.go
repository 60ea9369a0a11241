// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - the sub-packages set up and handle the incoming JSON RPC
// requests from kitty clients
//
//   kitty     Kitty.Create Kitty.SetPrice Kitty.Transfer Kitty.Buy Kitty.Breed
//             Kitty.Get Kitty.List
//   owner     Owner.Kitties
//   balance   Balance.Get
//   node      Node.Info
//
// mutating calls carry a signed.Request identifying the caller
//
// standard golang RPC services with the jsonrpc codec can be used on
// the client side to access these services
package rpc
