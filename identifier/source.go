// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier

import (
	"crypto/rand"
)

// Seed - unpredictable input to identifier generation, one per call
type Seed [32]byte

// Source - supplies a fresh seed for each identifier generation
type Source interface {
	Seed() (Seed, error)
}

type randomSource struct{}

// NewRandomSource - seeds from the operating system random generator
func NewRandomSource() Source {
	return randomSource{}
}

func (randomSource) Seed() (Seed, error) {
	var s Seed
	_, err := rand.Read(s[:])
	return s, err
}
