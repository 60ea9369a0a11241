// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/identifier"
	"github.com/bitmark-inc/kittyd/kitty"
	"github.com/bitmark-inc/kittyd/registry"
	"github.com/bitmark-inc/kittyd/rpc/fixtures"
	"github.com/bitmark-inc/kittyd/rpc/mocks"
	"github.com/bitmark-inc/kittyd/rpc/owner"
)

func TestOwnerKitties(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	o := owner.New(logger.New(fixtures.LogCategory), l)

	acc := fixtures.Account(fixtures.OwnerPrivateKey)

	entries := []registry.Entry{
		{N: 5, Kitty: kitty.New(identifier.Identifier{9}), Owner: acc},
	}

	l.EXPECT().ListOwned(acc, uint64(5), 10).Return(entries, nil).Times(1)
	l.EXPECT().OwnedCount(acc).Return(uint64(6)).Times(1)

	arg := owner.KittiesArguments{
		Owner: acc,
		Start: 5,
		Count: 10,
	}
	var reply owner.KittiesReply
	err := o.Kitties(&arg, &reply)
	assert.Nil(t, err, "wrong Kitties")
	assert.Equal(t, entries, reply.Data, "wrong data")
	assert.Equal(t, uint64(6), reply.Next, "wrong next")
	assert.Equal(t, uint64(6), reply.Total, "wrong total")
}

func TestOwnerKittiesWhenOwnerMissing(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	o := owner.New(logger.New(fixtures.LogCategory), mocks.NewMockLedger(ctl))

	var reply owner.KittiesReply
	err := o.Kitties(&owner.KittiesArguments{Count: 1}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}

func TestOwnerKittiesWhenCountInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	o := owner.New(logger.New(fixtures.LogCategory), mocks.NewMockLedger(ctl))

	arg := owner.KittiesArguments{
		Owner: fixtures.Account(fixtures.OwnerPrivateKey),
		Count: owner.MaximumKittiesCount + 1,
	}
	var reply owner.KittiesReply
	err := o.Kitties(&arg, &reply)
	assert.Equal(t, fault.InvalidCount, err, "wrong error")
}
