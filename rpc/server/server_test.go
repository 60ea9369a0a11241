// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/fault"
	balancerpc "github.com/bitmark-inc/kittyd/rpc/balance"
	"github.com/bitmark-inc/kittyd/rpc/fixtures"
	"github.com/bitmark-inc/kittyd/rpc/kitty"
	"github.com/bitmark-inc/kittyd/rpc/listeners"
	"github.com/bitmark-inc/kittyd/rpc/mocks"
	"github.com/bitmark-inc/kittyd/rpc/node"
	"github.com/bitmark-inc/kittyd/rpc/owner"
	"github.com/bitmark-inc/kittyd/rpc/server"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// following tests make sure the proper methods are registered:
// each call fails or succeeds in a way only that method would

func connect(t *testing.T) (*gomock.Controller, *mocks.MockLedger, *rpc.Client) {
	ctl := gomock.NewController(t)
	l := mocks.NewMockLedger(ctl)

	count := listeners.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), "1.0", &count, l, nil)

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	return ctl, l, jsonrpc.NewClient(clientConn)
}

func TestKittyCreate(t *testing.T) {
	ctl, _, client := connect(t)
	defer ctl.Finish()
	defer client.Close()

	var reply kitty.KittyReply
	err := client.Call("Kitty.Create", &kitty.CreateArguments{}, &reply)
	assert.NotNil(t, err, "wrong Kitty.Create")
	assert.Equal(t, fault.MissingCaller.Error(), err.Error(), "wrong reply")
}

func TestKittyList(t *testing.T) {
	ctl, _, client := connect(t)
	defer ctl.Finish()
	defer client.Close()

	var reply kitty.ListReply
	err := client.Call("Kitty.List", &kitty.ListArguments{Count: 0}, &reply)
	assert.NotNil(t, err, "wrong Kitty.List")
	assert.Equal(t, fault.InvalidCount.Error(), err.Error(), "wrong reply")
}

func TestKittyGet(t *testing.T) {
	ctl, l, client := connect(t)
	defer ctl.Finish()
	defer client.Close()

	l.EXPECT().Describe(gomock.Any()).Return(nil, fault.KittyNotFound).Times(1)

	var reply kitty.KittyReply
	err := client.Call("Kitty.Get", &kitty.GetArguments{}, &reply)
	assert.NotNil(t, err, "wrong Kitty.Get")
	assert.Equal(t, fault.KittyNotFound.Error(), err.Error(), "wrong reply")
}

func TestOwnerKitties(t *testing.T) {
	ctl, _, client := connect(t)
	defer ctl.Finish()
	defer client.Close()

	var reply owner.KittiesReply
	err := client.Call("Owner.Kitties", &owner.KittiesArguments{Count: 1}, &reply)
	assert.NotNil(t, err, "wrong Owner.Kitties")
	assert.Equal(t, fault.MissingParameters.Error(), err.Error(), "wrong reply")
}

func TestBalanceGet(t *testing.T) {
	ctl, _, client := connect(t)
	defer ctl.Finish()
	defer client.Close()

	var reply balancerpc.GetReply
	err := client.Call("Balance.Get", &balancerpc.GetArguments{}, &reply)
	assert.NotNil(t, err, "wrong Balance.Get")
	assert.Equal(t, fault.MissingParameters.Error(), err.Error(), "wrong reply")
}

func TestNodeInfo(t *testing.T) {
	ctl, l, client := connect(t)
	defer ctl.Finish()
	defer client.Close()

	l.EXPECT().TotalCount().Return(uint64(3)).Times(1)
	l.EXPECT().Nonce().Return(uint64(4)).Times(1)

	var reply node.InfoReply
	err := client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
	assert.Equal(t, uint64(3), reply.Kitties, "wrong count")
}
