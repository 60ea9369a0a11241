// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
)

// Length - number of bytes in an identifier
const Length = 32

// Identifier - names exactly one kitty, derived once at create or breed time
//
// the bytes are kept in generation order and printed in the same order;
// breeding relies on byte i of the identifier being the i-th output byte
// of the hash
type Identifier [Length]byte

// Generate - derive an identifier from an unpredictable seed, the
// caller and the current nonce as SHA3-256(seed ++ caller ++ nonce)
//
// pure function: the caller must check the result is not already in
// use and must advance the nonce after a successful mint
func Generate(seed Seed, caller *account.Account, nonce uint64) Identifier {
	callerBytes := caller.Bytes()

	buffer := make([]byte, 0, len(seed)+len(callerBytes)+8)
	buffer = append(buffer, seed[:]...)
	buffer = append(buffer, callerBytes...)

	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, nonce)
	buffer = append(buffer, n...)

	return sha3.Sum256(buffer)
}

// FromBytes - convert and validate a byte slice to an identifier
func FromBytes(id *Identifier, buffer []byte) error {
	if Length != len(buffer) {
		return fault.IdentifierLength
	}
	copy(id[:], buffer)
	return nil
}

// IsZero - true for the all zero identifier, which is never generated in practice
func (id Identifier) IsZero() bool {
	return id == Identifier{}
}

// String - hex form for the fmt package (for %s)
func (id Identifier) String() string {
	return hex.EncodeToString(id[:])
}

// GoString - for %#v
func (id Identifier) GoString() string {
	return "<kitty:" + hex.EncodeToString(id[:]) + ">"
}

// Scan - convert a hex representation for the fmt scan routines
func (id *Identifier) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	return id.UnmarshalText(token)
}

// MarshalText - convert identifier to hex text
func (id Identifier) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(id))
	buffer := make([]byte, size)
	hex.Encode(buffer, id[:])
	return buffer, nil
}

// UnmarshalText - convert hex text to an identifier
func (id *Identifier) UnmarshalText(s []byte) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.IdentifierLength
	}
	buffer := make([]byte, Length)
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	copy(id[:], buffer)
	return nil
}
