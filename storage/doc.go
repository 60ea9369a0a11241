// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage maintains the on-disk kitty ledger
//
// The LevelDB database is split into a series of pools, each one
// identified by a single prefix byte that is obtained from the prefix
// tag in the Pools struct.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++    = concatenation of byte data
// 3. id    = kitty identifier (32 bytes)
// 4. seq   = enumeration position as big endian uint64 (8 bytes)
// 5. count = big endian uint64 (8 bytes)
// 6. owner = account bytes (variant ++ public key)
//
// Kitties:
//
//   K ++ id            - kitty record
//                        data: id ++ dna ++ price ++ generation
//   O ++ id            - current owner
//                        data: owner
//
// Global enumeration:
//
//   A ++ seq           - kitty at global position
//                        data: id
//   I ++ id            - global position of kitty
//                        data: seq
//   C                  - number of kitties
//                        data: count
//
// Per-owner enumeration:
//
//   L ++ owner ++ seq  - kitty at position in owner's list
//                        data: id
//   D ++ owner ++ id   - position of kitty in owner's list
//                        data: seq
//   N ++ owner         - number of kitties held by owner
//                        data: count
//
// Miscellaneous:
//
//   X                  - identifier nonce
//                        data: count
//   B ++ owner         - account balance
//                        data: count
//
// Database version:
//
//   0x00 ++ "VERSION"  - data: big endian uint32
package storage
