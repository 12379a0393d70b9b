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

// wotsChainLength is the total hash-chain depth every block walks
// between key generation and verification: signatureFragment walks
// (13 - h[j]) steps down from the key block, FragmentDigest walks the
// remaining (13 + h[j]) steps back up, and the two always sum to this
// (matching the 26 iterations Digests spends going straight from key
// block to digest block).
const wotsChainLength = 26

// SignatureFragment produces one 6561-trit signature fragment from a
// 6561-trit key fragment, against the matching 27-entry slice of a
// normalized bundle. Block j of the key fragment is hashed
// (13 - bundleGroup[j]) times; bundleGroup[j] in [-13, 13] keeps the
// iteration count in [0, 26] (spec.md §4.6).
func SignatureFragment(bundleGroup []int8, keyFragment []trinary.Trit) ([]trinary.Trit, error) {
	if len(bundleGroup) != bundleGroupSize {
		return nil, fmt.Errorf("bundle group length %d, want %d: %w", len(bundleGroup), bundleGroupSize, terr.ErrInvalidBundleHash)
	}
	if len(keyFragment) != trinary.KeyFragmentLength {
		return nil, fmt.Errorf("key fragment length %d, want %d: %w", len(keyFragment), trinary.KeyFragmentLength, terr.ErrInvalidLength)
	}

	signature := make([]trinary.Trit, trinary.KeyFragmentLength)
	for j := 0; j < fragmentBlocks; j++ {
		block := signature[j*trinary.HashTrinarySize : (j+1)*trinary.HashTrinarySize]
		copy(block, keyFragment[j*trinary.HashTrinarySize:(j+1)*trinary.HashTrinarySize])

		iterations := 13 - int(bundleGroup[j])
		if err := hashNTimes(block, iterations); err != nil {
			return nil, err
		}
	}
	return signature, nil
}

// FragmentDigest reconstructs the 243-trit key digest implied by a
// signature fragment: block j is hashed (13 + bundleGroup[j]) more
// times, the 27 results are concatenated and absorbed into a fresh
// Kerl, and the digest is squeezed out of that (spec.md §4.6, the
// `digest` operation). Rejects a wrong-length fragment outright
// instead of treating it as a semantic mismatch.
func FragmentDigest(bundleGroup []int8, signatureFragment []trinary.Trit) ([]trinary.Trit, error) {
	if len(bundleGroup) != bundleGroupSize {
		return nil, fmt.Errorf("bundle group length %d, want %d: %w", len(bundleGroup), bundleGroupSize, terr.ErrInvalidBundleHash)
	}
	if len(signatureFragment) != trinary.KeyFragmentLength {
		return nil, fmt.Errorf("signature fragment length %d, want %d: %w", len(signatureFragment), trinary.KeyFragmentLength, terr.ErrInvalidLength)
	}

	hashed := make([]trinary.Trit, trinary.KeyFragmentLength)
	for j := 0; j < fragmentBlocks; j++ {
		block := hashed[j*trinary.HashTrinarySize : (j+1)*trinary.HashTrinarySize]
		copy(block, signatureFragment[j*trinary.HashTrinarySize:(j+1)*trinary.HashTrinarySize])

		iterations := wotsChainLength - (13 - int(bundleGroup[j]))
		if err := hashNTimes(block, iterations); err != nil {
			return nil, err
		}
	}

	sp := sponge.NewKerl()
	if err := sp.Absorb(hashed, 0, trinary.KeyFragmentLength); err != nil {
		return nil, err
	}
	digest := make([]trinary.Trit, trinary.HashTrinarySize)
	if err := sp.Squeeze(digest, 0, trinary.HashTrinarySize); err != nil {
		return nil, err
	}
	return digest, nil
}
