// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/kittyd/fault"
)

// Signature - ed25519 signature carried as hex in JSON requests
type Signature []byte

func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// GoString - for %#v
func (signature Signature) GoString() string {
	return "<signature:" + signature.String() + ">"
}

// MarshalText - hex text
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(signature.String()), nil
}

// UnmarshalText - hex text of exactly one ed25519 signature,
// empty text gives an empty signature so that an unsigned
// request can be detected later
func (signature *Signature) UnmarshalText(s []byte) error {
	if 0 == len(s) {
		*signature = nil
		return nil
	}
	b, err := hex.DecodeString(string(s))
	if nil != err || ed25519.SignatureSize != len(b) {
		return fault.InvalidSignature
	}
	*signature = b
	return nil
}
