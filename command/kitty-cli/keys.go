// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/identifier"
)

// KeyPair - output of the generate command
type KeyPair struct {
	Seed       string           `json:"seed"`
	PrivateKey string           `json:"private_key"`
	PublicKey  string           `json:"public_key"`
	Account    *account.Account `json:"account"`
}

func makeKeyPair(testnet bool) (*KeyPair, error) {
	seed := make([]byte, ed25519.SeedSize)
	if _, err := rand.Read(seed); nil != err {
		return nil, err
	}
	privateKey := ed25519.NewKeyFromSeed(seed)
	publicKey := privateKey.Public().(ed25519.PublicKey)

	a, err := account.New(publicKey, testnet)
	if nil != err {
		return nil, err
	}
	return &KeyPair{
		Seed:       hex.EncodeToString(seed),
		PrivateKey: hex.EncodeToString(privateKey),
		PublicKey:  hex.EncodeToString(publicKey),
		Account:    a,
	}, nil
}

// accepts a hex seed or a hex full private key
func parsePrivateKey(s string) (ed25519.PrivateKey, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if nil != err {
		return nil, fmt.Errorf("private key is not hex: %s", err)
	}
	switch len(b) {
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(b), nil
	case ed25519.PrivateKeySize:
		return ed25519.PrivateKey(b), nil
	default:
		return nil, fmt.Errorf("private key length: %d is not %d or %d", len(b), ed25519.SeedSize, ed25519.PrivateKeySize)
	}
}

// the account of the current key
func keyAccount(m *metadata) (*account.Account, error) {
	if nil == m.privateKey {
		return nil, fmt.Errorf("no account given and no --key")
	}
	return account.New(m.privateKey.Public().(ed25519.PublicKey), m.testnet)
}

// an explicit account, or the key's account when blank
func accountOrKey(m *metadata, s string) (*account.Account, error) {
	if "" == s {
		return keyAccount(m)
	}
	return account.FromBase58(s)
}

func parseIdentifier(s string) (identifier.Identifier, error) {
	var id identifier.Identifier
	if "" == s {
		return id, fmt.Errorf("missing kitty identifier")
	}
	err := id.UnmarshalText([]byte(s))
	return id, err
}
