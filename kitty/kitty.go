// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kitty holds the asset record, its packed storage form and
// the breeding rule
package kitty

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/identifier"
)

// DNALength - bytes of genetic payload
const DNALength = 32

// DNA - genetic payload of a kitty
type DNA [DNALength]byte

// Kitty - the asset record
type Kitty struct {
	Id         identifier.Identifier `json:"id"`
	DNA        DNA                   `json:"dna"`
	Price      uint64                `json:"price"`
	Generation uint64                `json:"generation"`
}

// id ++ dna ++ price ++ generation
const packedLength = identifier.Length + DNALength + 8 + 8

// New - a first generation kitty, its dna is a copy of its identifier
func New(id identifier.Identifier) *Kitty {
	return &Kitty{
		Id:  id,
		DNA: DNA(id),
	}
}

// ForSale - zero price means not listed
func (k *Kitty) ForSale() bool {
	return 0 != k.Price
}

// Pack - binary form for storage
func (k *Kitty) Pack() []byte {
	buffer := make([]byte, packedLength)
	n := copy(buffer, k.Id[:])
	n += copy(buffer[n:], k.DNA[:])
	binary.BigEndian.PutUint64(buffer[n:], k.Price)
	binary.BigEndian.PutUint64(buffer[n+8:], k.Generation)
	return buffer
}

// Unpack - decode a stored record
func Unpack(buffer []byte) (*Kitty, error) {
	if packedLength != len(buffer) {
		return nil, fault.RecordTruncated
	}
	k := &Kitty{}
	n := copy(k.Id[:], buffer)
	n += copy(k.DNA[:], buffer[n:])
	k.Price = binary.BigEndian.Uint64(buffer[n:])
	k.Generation = binary.BigEndian.Uint64(buffer[n+8:])
	return k, nil
}

// String - hex form
func (dna DNA) String() string {
	return hex.EncodeToString(dna[:])
}

// GoString - debug form
func (dna DNA) GoString() string {
	return "<dna:" + hex.EncodeToString(dna[:]) + ">"
}

// MarshalText - convert to hex for JSON
func (dna DNA) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(dna)))
	hex.Encode(buffer, dna[:])
	return buffer, nil
}

// UnmarshalText - convert from hex in JSON
func (dna *DNA) UnmarshalText(s []byte) error {
	if hex.EncodedLen(DNALength) != len(s) {
		return fault.InvalidDNALength
	}
	_, err := hex.Decode(dna[:], s)
	return err
}

// GoString - debug form
func (k *Kitty) GoString() string {
	return fmt.Sprintf("<kitty id:%s dna:%s price:%d gen:%d>", k.Id, k.DNA, k.Price, k.Generation)
}
