// MIT License
//
// Copyright (c) 2024 sphinx-core
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package signing derives subseeds, keys, digests and addresses from a
// seed, and produces and verifies Winternitz-style one-time signature
// fragments over a normalized bundle hash.
package signing

import (
	"fmt"
	"strings"

	"github.com/sphinx-core/ternary/src/terr"
	"github.com/sphinx-core/ternary/src/trinary"
)

// NormalizeSeedTrytes right-pads seed with '9' to the next multiple of
// 81 trytes. A seed whose length is already a multiple of 81 trytes
// (such as a seed doubled with itself) is left untouched — Subseed
// absorbs it in as many 243-trit chunks as it takes, which is what
// keeps a seed and that same seed doubled from colliding on the same
// index (data model note in the accompanying design doc; an open
// question in the upstream project that this module resolves by
// documenting it instead of rejecting longer seeds).
func NormalizeSeedTrytes(seed string) string {
	if len(seed) == 0 {
		return strings.Repeat("9", trinary.AddressLengthWithoutChecksum)
	}
	if rem := len(seed) % trinary.AddressLengthWithoutChecksum; rem != 0 {
		return seed + strings.Repeat("9", trinary.AddressLengthWithoutChecksum-rem)
	}
	return seed
}

// incrementTrits adds one to a balanced-ternary trit array in place,
// rippling the carry forward exactly the way a byte odometer ripples:
// bump a position, and if it overflowed past 1 wrap it to -1 and carry
// into the next position; otherwise the addition is done.
func incrementTrits(trits []trinary.Trit) {
	for i := range trits {
		trits[i]++
		if trits[i] > 1 {
			trits[i] = -1
			continue
		}
		return
	}
}

// Subseed derives the 243-trit subseed for key index from seedTrits,
// by incrementing a copy of seedTrits index times (each increment
// rippling through the whole array via incrementTrits) and then
// absorbing the result into the engine's sponge and squeezing 243
// trits (spec.md §4.6). Index 0 is valid and leaves the preimage
// untouched.
func (e *Engine) Subseed(seedTrits []trinary.Trit, index int) ([]trinary.Trit, error) {
	if index < 0 {
		return nil, fmt.Errorf("subseed index %d: %w", index, terr.ErrInvalidIndex)
	}

	preimage := make([]trinary.Trit, len(seedTrits))
	copy(preimage, seedTrits)
	for i := 0; i < index; i++ {
		incrementTrits(preimage)
	}

	sp, err := e.newSponge()
	if err != nil {
		return nil, err
	}
	if err := sp.Absorb(preimage, 0, len(preimage)); err != nil {
		return nil, err
	}

	subseed := make([]trinary.Trit, trinary.HashTrinarySize)
	if err := sp.Squeeze(subseed, 0, trinary.HashTrinarySize); err != nil {
		return nil, err
	}
	return subseed, nil
}
