// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/rpc/fixtures"
	"github.com/bitmark-inc/kittyd/rpc/mocks"
	"github.com/bitmark-inc/kittyd/rpc/node"
)

type fixedCounter uint64

func (c fixedCounter) Uint64() uint64 {
	return uint64(c)
}

func TestInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	l.EXPECT().TotalCount().Return(uint64(12)).Times(1)
	l.EXPECT().Nonce().Return(uint64(15)).Times(1)

	n := node.New(logger.New(fixtures.LogCategory), l, time.Now().Add(-time.Hour), "1.2.3", fixedCounter(3))

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, "1.2.3", reply.Version, "wrong version")
	assert.Equal(t, uint64(12), reply.Kitties, "wrong kitty count")
	assert.Equal(t, uint64(15), reply.Nonce, "wrong nonce")
	assert.Equal(t, uint64(3), reply.RPCs, "wrong connection count")
	assert.NotEmpty(t, reply.Uptime, "missing uptime")
}
