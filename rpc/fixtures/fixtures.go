// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures holds shared test setup for the rpc packages
package fixtures

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/kittyd/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// deterministic keys for test callers
var (
	OwnerPrivateKey = ed25519.NewKeyFromSeed(bytes.Repeat([]byte{0x11}, ed25519.SeedSize))
	BuyerPrivateKey = ed25519.NewKeyFromSeed(bytes.Repeat([]byte{0x22}, ed25519.SeedSize))
)

var (
	once        sync.Once
	certificate string
	key         string
)

// SetupTestLogger - log into a scratch directory, critical only
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0o700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// Account - the test account for a private key
func Account(privateKey ed25519.PrivateKey) *account.Account {
	a, err := account.New(privateKey.Public().(ed25519.PublicKey), true)
	if nil != err {
		panic(err)
	}
	return a
}

// Certificate - PEM certificate of a self-signed pair shared by all tests
func Certificate() string {
	once.Do(generate)
	return certificate
}

// Key - PEM private key matching Certificate
func Key() string {
	once.Do(generate)
	return key
}

func generate() {
	c, k, err := certgen.NewTLSCertPair("kittyd test", time.Now().Add(24*time.Hour), false, []string{"127.0.0.1"})
	if nil != err {
		panic(err)
	}
	certificate = string(c)
	key = string(k)
}
