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

	"github.com/sphinx-core/ternary/src/checksum"
	"github.com/sphinx-core/ternary/src/terr"
	"github.com/sphinx-core/ternary/src/trinary"
)

// ProofOfWorkFunc is the shape of the minimum-weight-magnitude search
// a caller may inject when attaching a signed bundle to the tangle.
// This package never calls one; proof-of-work search, like network
// I/O and bundle assembly, is plumbing that lives outside the crypto
// core.
type ProofOfWorkFunc func(trytes string, minWeightMagnitude int) (string, error)

func validateSeedParams(seedTrytes string, security, index int) error {
	if !trinary.IsValidTrytes(seedTrytes) {
		return fmt.Errorf("seed: %w", terr.ErrInvalidTryte)
	}
	if !trinary.IsValidSecurityLevel(security) {
		return fmt.Errorf("security level %d: %w", security, terr.ErrInvalidSecurity)
	}
	if !trinary.IsValidIndex(index) {
		return fmt.Errorf("index %d: %w", index, terr.ErrInvalidIndex)
	}
	return nil
}

// NewAddress derives the address for (seed, security, index), per
// spec.md §6. A seed whose length is not a multiple of 81 trytes is
// right-padded with '9' to the next multiple before derivation; a seed
// that already is one (e.g. 162 trytes) is absorbed as-is.
func NewAddress(seed string, security, index int, withChecksum bool) (string, error) {
	if err := validateSeedParams(seed, security, index); err != nil {
		return "", err
	}

	seedTrits, err := trinary.TrytesToTrits(NormalizeSeedTrytes(seed))
	if err != nil {
		return "", err
	}

	e := NewEngine()
	key, err := e.Key(seedTrits, index, security)
	if err != nil {
		return "", err
	}
	digests, err := Digests(key)
	if err != nil {
		return "", err
	}
	addressTrits, err := Address(digests)
	if err != nil {
		return "", err
	}
	address, err := trinary.TritsToTrytes(addressTrits)
	if err != nil {
		return "", err
	}

	if !withChecksum {
		return address, nil
	}
	return checksum.AddChecksum(address)
}

// Sign produces one signature fragment per security level over
// bundleHash, using the key derived from (seed, security, index)
// (spec.md §6).
func Sign(seed string, security, index int, bundleHash string) ([]string, error) {
	if err := validateSeedParams(seed, security, index); err != nil {
		return nil, err
	}
	if !trinary.IsValidHash(bundleHash) {
		return nil, fmt.Errorf("bundle hash %q: %w", bundleHash, terr.ErrInvalidBundleHash)
	}

	seedTrits, err := trinary.TrytesToTrits(NormalizeSeedTrytes(seed))
	if err != nil {
		return nil, err
	}
	bundleTrits, err := trinary.TrytesToTrits(bundleHash)
	if err != nil {
		return nil, err
	}
	normalized, err := NormalizeBundle(bundleTrits)
	if err != nil {
		return nil, err
	}

	e := NewEngine()
	key, err := e.Key(seedTrits, index, security)
	if err != nil {
		return nil, err
	}

	fragments := make([]string, security)
	for s := 0; s < security; s++ {
		keyFragment := key[s*trinary.KeyFragmentLength : (s+1)*trinary.KeyFragmentLength]
		sigTrits, err := SignatureFragment(normalized.Group(s), keyFragment)
		if err != nil {
			return nil, err
		}
		sigTrytes, err := trinary.TritsToTrytes(sigTrits)
		if err != nil {
			return nil, err
		}
		fragments[s] = sigTrytes
	}
	return fragments, nil
}

// Verify reports whether signatureFragments is a valid signature over
// bundleHash for addressNoChecksum (spec.md §6, the `validateSignatures`
// operation). A malformed fragment or bundle hash is an error; a
// well-formed but non-matching signature returns (false, nil).
func Verify(addressNoChecksum string, signatureFragments []string, bundleHash string) (bool, error) {
	if !trinary.IsValidHash(addressNoChecksum) {
		return false, fmt.Errorf("address %q: %w", addressNoChecksum, terr.ErrInvalidLength)
	}
	if !trinary.IsValidHash(bundleHash) {
		return false, fmt.Errorf("bundle hash %q: %w", bundleHash, terr.ErrInvalidBundleHash)
	}

	bundleTrits, err := trinary.TrytesToTrits(bundleHash)
	if err != nil {
		return false, err
	}
	normalized, err := NormalizeBundle(bundleTrits)
	if err != nil {
		return false, err
	}

	digests := make([]trinary.Trit, 0, len(signatureFragments)*trinary.HashTrinarySize)
	for i, fragment := range signatureFragments {
		if !trinary.IsValidSignatureFragment(fragment) {
			return false, fmt.Errorf("signature fragment %d length %d: %w", i, len(fragment), terr.ErrInvalidLength)
		}
		fragTrits, err := trinary.TrytesToTrits(fragment)
		if err != nil {
			return false, err
		}
		digest, err := FragmentDigest(normalized.Group(i), fragTrits)
		if err != nil {
			return false, err
		}
		digests = append(digests, digest...)
	}

	addressTrits, err := Address(digests)
	if err != nil {
		return false, err
	}
	address, err := trinary.TritsToTrytes(addressTrits)
	if err != nil {
		return false, err
	}
	return address == addressNoChecksum, nil
}
