// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signed_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/rpc/signed"
)

var privateKey = ed25519.NewKeyFromSeed(bytes.Repeat([]byte{0x42}, ed25519.SeedSize))

func TestSigningMessage(t *testing.T) {
	assert.Equal(t, []byte("Kitty.Buy|1577836800|abcd|100"), signed.SigningMessage("Kitty.Buy", "1577836800", "abcd", "100"), "message layout")
	assert.Equal(t, []byte("Kitty.Create|1"), signed.SigningMessage("Kitty.Create", "1"), "no fields")
}

func TestSignVerify(t *testing.T) {
	now := time.Unix(1577836800, 0)

	r, err := signed.Sign(privateKey, true, now, "Kitty.SetPrice", "id", "100")
	assert.Nil(t, err, "sign error")
	assert.Equal(t, "1577836800", r.Timestamp, "timestamp")

	caller, err := r.Verify(now.Add(time.Minute), "Kitty.SetPrice", "id", "100")
	assert.Nil(t, err, "verify error")
	expected, _ := account.New(privateKey.Public().(ed25519.PublicKey), true)
	assert.True(t, expected.Equal(caller), "wrong caller")

	_, err = r.Verify(now, "Kitty.SetPrice", "id", "101")
	assert.Equal(t, fault.InvalidSignature, err, "altered field")

	_, err = r.Verify(now, "Kitty.Buy", "id", "100")
	assert.Equal(t, fault.InvalidSignature, err, "other method")

	_, err = r.Verify(now.Add(signed.MaximumSkew+time.Second), "Kitty.SetPrice", "id", "100")
	assert.Equal(t, fault.InvalidTimestamp, err, "stale request")

	_, err = r.Verify(now.Add(-signed.MaximumSkew-time.Second), "Kitty.SetPrice", "id", "100")
	assert.Equal(t, fault.InvalidTimestamp, err, "future request")
}

func TestVerifyMissing(t *testing.T) {
	now := time.Now()

	r := signed.Request{}
	_, err := r.Verify(now, "Kitty.Create")
	assert.Equal(t, fault.MissingCaller, err, "no caller")

	r, _ = signed.Sign(privateKey, true, now, "Kitty.Create")
	r.Signature = nil
	_, err = r.Verify(now, "Kitty.Create")
	assert.Equal(t, fault.MissingCaller, err, "no signature")

	r, _ = signed.Sign(privateKey, true, now, "Kitty.Create")
	r.Timestamp = "yesterday"
	_, err = r.Verify(now, "Kitty.Create")
	assert.Equal(t, fault.InvalidTimestamp, err, "bad timestamp")
}

func TestJSONRoundTrip(t *testing.T) {
	now := time.Now()
	r, _ := signed.Sign(privateKey, false, now, "Kitty.Create")

	buffer, err := json.Marshal(r)
	assert.Nil(t, err, "marshal error")

	var decoded signed.Request
	assert.Nil(t, json.Unmarshal(buffer, &decoded), "unmarshal error")

	caller, err := decoded.Verify(now, "Kitty.Create")
	assert.Nil(t, err, "verify after transport")
	assert.True(t, r.Caller.Equal(caller), "caller after transport")
}

func TestSeen(t *testing.T) {
	now := time.Now()
	seen := signed.NewSeen()

	first, _ := signed.Sign(privateKey, true, now, "Kitty.Create")
	second, _ := signed.Sign(privateKey, true, now.Add(time.Second), "Kitty.Create")

	assert.Nil(t, seen.Accept(&first), "first use rejected")
	assert.Equal(t, fault.ReplayedRequest, seen.Accept(&first), "replay accepted")

	// same request signed at another time is distinct
	assert.Nil(t, seen.Accept(&second), "new timestamp rejected")
}
