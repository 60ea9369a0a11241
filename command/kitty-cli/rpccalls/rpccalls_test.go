// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"net"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/registry"
	"github.com/bitmark-inc/kittyd/rpc/fixtures"
	"github.com/bitmark-inc/kittyd/rpc/listeners"
	"github.com/bitmark-inc/kittyd/rpc/mocks"
	"github.com/bitmark-inc/kittyd/rpc/server"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func connect(t *testing.T, withKey bool, trace *bytes.Buffer) (*gomock.Controller, *mocks.MockLedger, *Client) {
	ctl := gomock.NewController(t)
	l := mocks.NewMockLedger(ctl)

	count := listeners.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), "test", &count, l, nil)

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	key := fixtures.OwnerPrivateKey
	if !withKey {
		key = nil
	}
	return ctl, l, newClient(clientConn, key, true, nil != trace, trace)
}

func TestCreateIsSigned(t *testing.T) {
	ctl, l, client := connect(t, true, nil)
	defer ctl.Finish()
	defer client.Close()

	owner := fixtures.Account(fixtures.OwnerPrivateKey)
	id := identifier.Identifier{0x77}
	created := kitty.New(id)

	l.EXPECT().Create(owner).Return(created, nil).Times(1)
	l.EXPECT().Describe(id).Return(&registry.Entry{N: 0, Kitty: created, Owner: owner}, nil).Times(1)

	reply, err := client.Create()
	assert.Nil(t, err, "create error")
	assert.Equal(t, id, reply.Kitty.Id, "wrong id")
	assert.Equal(t, kitty.DNA(id), reply.Kitty.DNA, "wrong dna")
	assert.True(t, owner.Equal(reply.Owner), "wrong owner")
}

func TestBuyIsSigned(t *testing.T) {
	ctl, l, client := connect(t, true, nil)
	defer ctl.Finish()
	defer client.Close()

	owner := fixtures.Account(fixtures.OwnerPrivateKey)
	id := identifier.Identifier{0x78}

	l.EXPECT().Buy(owner, id, uint64(12345)).Return(nil).Times(1)

	reply, err := client.Buy(id, 12345)
	assert.Nil(t, err, "buy error")
	assert.Equal(t, id, reply.Id, "wrong id")
}

func TestMutationWithoutKey(t *testing.T) {
	ctl, _, client := connect(t, false, nil)
	defer ctl.Finish()
	defer client.Close()

	_, err := client.Create()
	assert.Equal(t, ErrMissingKey, err, "wrong error")

	_, err = client.SetPrice(identifier.Identifier{}, 1)
	assert.Equal(t, ErrMissingKey, err, "wrong error")
}

func TestInfoVerbose(t *testing.T) {
	trace := &bytes.Buffer{}
	ctl, l, client := connect(t, false, trace)
	defer ctl.Finish()
	defer client.Close()

	l.EXPECT().TotalCount().Return(uint64(9)).Times(1)
	l.EXPECT().Nonce().Return(uint64(11)).Times(1)

	reply, err := client.Info()
	assert.Nil(t, err, "info error")
	assert.Equal(t, uint64(9), reply.Kitties, "wrong count")
	assert.Equal(t, "test", reply.Version, "wrong version")
	assert.Contains(t, trace.String(), "Node.Info Request", "request not traced")
	assert.Contains(t, trace.String(), "Node.Info Reply", "reply not traced")
}
