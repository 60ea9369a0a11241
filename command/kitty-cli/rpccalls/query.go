// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/rpc/balance"
	"github.com/bitmark-inc/kittyd/rpc/node"
	"github.com/bitmark-inc/kittyd/rpc/owner"
)

// Owned - a page of the kitties held by an account
func (client *Client) Owned(a *account.Account, start uint64, count int) (*owner.KittiesReply, error) {
	args := owner.KittiesArguments{
		Owner: a,
		Start: start,
		Count: count,
	}
	reply := &owner.KittiesReply{}
	err := client.call("Owner.Kitties", args, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Balance - spendable balance of an account
func (client *Client) Balance(a *account.Account) (*balance.GetReply, error) {
	reply := &balance.GetReply{}
	err := client.call("Balance.Get", balance.GetArguments{Account: a}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Info - status of the kittyd
func (client *Client) Info() (*node.InfoReply, error) {
	reply := &node.InfoReply{}
	err := client.call("Node.Info", node.InfoArguments{}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
