// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package signed resolves the caller of an RPC request from an
// ed25519 signature over the request fields
package signed

import (
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
)

// MaximumSkew - how far a request timestamp may be from server time
const MaximumSkew = 5 * time.Minute

// Request - identity carried by every mutating request
type Request struct {
	Caller    *account.Account  `json:"caller"`
	Timestamp string            `json:"timestamp"` // seconds since epoch
	Signature account.Signature `json:"signature"`
}

// SigningMessage - the bytes covered by a request signature
//
//   method|timestamp|field1|field2|…
func SigningMessage(method string, timestamp string, fields ...string) []byte {
	parts := make([]string, 0, len(fields)+2)
	parts = append(parts, method, timestamp)
	parts = append(parts, fields...)
	return []byte(strings.Join(parts, "|"))
}

// Sign - fill in the request for the given key
func Sign(privateKey ed25519.PrivateKey, test bool, now time.Time, method string, fields ...string) (Request, error) {
	caller, err := account.New(privateKey.Public().(ed25519.PublicKey), test)
	if nil != err {
		return Request{}, err
	}
	timestamp := strconv.FormatInt(now.Unix(), 10)
	return Request{
		Caller:    caller,
		Timestamp: timestamp,
		Signature: ed25519.Sign(privateKey, SigningMessage(method, timestamp, fields...)),
	}, nil
}

// Verify - check the signature and freshness, returning the caller
func (r *Request) Verify(now time.Time, method string, fields ...string) (*account.Account, error) {
	if nil == r.Caller || r.Caller.IsZero() {
		return nil, fault.MissingCaller
	}
	if 0 == len(r.Signature) {
		return nil, fault.MissingCaller
	}

	seconds, err := strconv.ParseInt(r.Timestamp, 10, 64)
	if nil != err {
		return nil, fault.InvalidTimestamp
	}
	skew := now.Sub(time.Unix(seconds, 0))
	if skew > MaximumSkew || skew < -MaximumSkew {
		return nil, fault.InvalidTimestamp
	}

	if err := r.Caller.CheckSignature(SigningMessage(method, r.Timestamp, fields...), r.Signature); nil != err {
		return nil, err
	}
	return r.Caller, nil
}

// Seen - signatures of requests already accepted
//
// each is kept until its timestamp could no longer pass Verify
type Seen struct {
	signatures *cache.Cache
}

// NewSeen - empty set of accepted signatures
func NewSeen() *Seen {
	return &Seen{
		signatures: cache.New(2*MaximumSkew, MaximumSkew),
	}
}

// Accept - record a verified request, a second use of the same
// signature is rejected
func (s *Seen) Accept(r *Request) error {
	err := s.signatures.Add(string(r.Signature), struct{}{}, cache.DefaultExpiration)
	if nil != err {
		return fault.ReplayedRequest
	}
	return nil
}
