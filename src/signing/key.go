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

package signing

import (
	"fmt"

	"github.com/sphinx-core/ternary/src/sponge"
	"github.com/sphinx-core/ternary/src/terr"
	"github.com/sphinx-core/ternary/src/trinary"
)

// fragmentBlocks is the number of 243-trit blocks in one key fragment
// or one digest/signature fragment (27).
const fragmentBlocks = trinary.KeyFragmentLength / trinary.HashTrinarySize

// Key derives the signing key for (seedTrits, index, security):
// subseed, then security*27 squeezed 243-trit blocks out of a fresh
// Kerl sponge seeded with that subseed (spec.md §4.6). The subseed
// step uses the engine's configured mode; the squeeze step that
// produces the key always uses Kerl regardless of that mode.
func (e *Engine) Key(seedTrits []trinary.Trit, index, security int) ([]trinary.Trit, error) {
	if !trinary.IsValidSecurityLevel(security) {
		return nil, fmt.Errorf("security level %d: %w", security, terr.ErrInvalidSecurity)
	}

	subseed, err := e.Subseed(seedTrits, index)
	if err != nil {
		return nil, err
	}

	sp := sponge.NewKerl()
	if err := sp.Absorb(subseed, 0, trinary.HashTrinarySize); err != nil {
		return nil, err
	}

	key := make([]trinary.Trit, security*trinary.KeyFragmentLength)
	for i := 0; i < security*fragmentBlocks; i++ {
		block := key[i*trinary.HashTrinarySize : (i+1)*trinary.HashTrinarySize]
		if err := sp.Squeeze(block, 0, trinary.HashTrinarySize); err != nil {
			return nil, err
		}
	}
	return key, nil
}

// Digests reduces a key to one 243-trit digest per key fragment. Each
// fragment's 27 blocks are individually hashed 26 times, the 27
// resulting blocks are concatenated and absorbed into a fresh Kerl,
// and the digest is the 243 trits squeezed out of that (spec.md
// §4.6). The 26 iterations are the far end of the hash chain every
// signature fragment walks partway down.
func Digests(key []trinary.Trit) ([]trinary.Trit, error) {
	if len(key) == 0 || len(key)%trinary.KeyFragmentLength != 0 {
		return nil, fmt.Errorf("key length %d is not a multiple of %d: %w", len(key), trinary.KeyFragmentLength, terr.ErrInvalidLength)
	}

	numFragments := len(key) / trinary.KeyFragmentLength
	digests := make([]trinary.Trit, numFragments*trinary.HashTrinarySize)

	for f := 0; f < numFragments; f++ {
		fragment := key[f*trinary.KeyFragmentLength : (f+1)*trinary.KeyFragmentLength]

		hashedFragment := make([]trinary.Trit, trinary.KeyFragmentLength)
		for b := 0; b < fragmentBlocks; b++ {
			block := make([]trinary.Trit, trinary.HashTrinarySize)
			copy(block, fragment[b*trinary.HashTrinarySize:(b+1)*trinary.HashTrinarySize])
			if err := hashNTimes(block, 26); err != nil {
				return nil, err
			}
			copy(hashedFragment[b*trinary.HashTrinarySize:(b+1)*trinary.HashTrinarySize], block)
		}

		sp := sponge.NewKerl()
		if err := sp.Absorb(hashedFragment, 0, trinary.KeyFragmentLength); err != nil {
			return nil, err
		}
		digest := digests[f*trinary.HashTrinarySize : (f+1)*trinary.HashTrinarySize]
		if err := sp.Squeeze(digest, 0, trinary.HashTrinarySize); err != nil {
			return nil, err
		}
	}
	return digests, nil
}

// Address absorbs every key digest together into a fresh Kerl and
// squeezes the 243-trit address (spec.md §4.6).
func Address(digests []trinary.Trit) ([]trinary.Trit, error) {
	if len(digests) == 0 || len(digests)%trinary.HashTrinarySize != 0 {
		return nil, fmt.Errorf("digests length %d is not a multiple of %d: %w", len(digests), trinary.HashTrinarySize, terr.ErrInvalidLength)
	}

	sp := sponge.NewKerl()
	if err := sp.Absorb(digests, 0, len(digests)); err != nil {
		return nil, err
	}
	address := make([]trinary.Trit, trinary.HashTrinarySize)
	if err := sp.Squeeze(address, 0, trinary.HashTrinarySize); err != nil {
		return nil, err
	}
	return address, nil
}
