// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty

import (
	"math"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/identifier"
)

// MixDNA - take a's dna, replacing each byte with b's where the
// corresponding mask byte is even
func MixDNA(a DNA, b DNA, mask identifier.Identifier) DNA {
	dna := a
	for i := range dna {
		if 0 == mask[i]%2 {
			dna[i] = b[i]
		}
	}
	return dna
}

// Offspring - the unsold child of two parents under a new identifier
func Offspring(id identifier.Identifier, a *Kitty, b *Kitty) (*Kitty, error) {
	generation := a.Generation
	if b.Generation > generation {
		generation = b.Generation
	}
	if math.MaxUint64 == generation {
		return nil, fault.GenerationOverflow
	}

	return &Kitty{
		Id:         id,
		DNA:        MixDNA(a.DNA, b.DNA, id),
		Price:      0,
		Generation: generation + 1,
	}, nil
}
