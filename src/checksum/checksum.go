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

// Package checksum computes and validates the 9-tryte Kerl checksum
// appended to an 81-tryte address.
package checksum

import (
	"fmt"

	"github.com/sphinx-core/ternary/src/sponge"
	"github.com/sphinx-core/ternary/src/terr"
	"github.com/sphinx-core/ternary/src/trinary"
)

// AddChecksum absorbs the 81-tryte address into Kerl, squeezes 243
// trits, and appends the last 9 trytes of that hash to the address
// (spec.md §4.7).
func AddChecksum(address string) (string, error) {
	if !trinary.IsValidHash(address) {
		return "", fmt.Errorf("address %q: %w", address, terr.ErrInvalidLength)
	}

	digestTrytes, err := hashAddress(address)
	if err != nil {
		return "", err
	}
	checksumTrytes := digestTrytes[len(digestTrytes)-trinary.ChecksumLength:]
	return address + checksumTrytes, nil
}

// IsValidChecksum recomputes the checksum for the first 81 trytes of
// address90 and compares it against the trailing 9 trytes.
func IsValidChecksum(address90 string) (bool, error) {
	if len(address90) != trinary.AddressLengthWithChecksum || !trinary.IsValidTrytes(address90) {
		return false, fmt.Errorf("address %q: %w", address90, terr.ErrInvalidLength)
	}

	bare := address90[:trinary.AddressLengthWithoutChecksum]
	want := address90[trinary.AddressLengthWithoutChecksum:]

	digestTrytes, err := hashAddress(bare)
	if err != nil {
		return false, err
	}
	got := digestTrytes[len(digestTrytes)-trinary.ChecksumLength:]
	return got == want, nil
}

// RemoveChecksum returns the bare 81-tryte address from address90,
// after confirming the checksum is valid.
func RemoveChecksum(address90 string) (string, error) {
	ok, err := IsValidChecksum(address90)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("address %q: %w", address90, terr.ErrInvalidChecksum)
	}
	return address90[:trinary.AddressLengthWithoutChecksum], nil
}

// hashAddress returns the 81-tryte Kerl hash of an 81-tryte address.
func hashAddress(address string) (string, error) {
	trits, err := trinary.TrytesToTrits(address)
	if err != nil {
		return "", err
	}

	sp := sponge.NewKerl()
	if err := sp.Absorb(trits, 0, trinary.HashTrinarySize); err != nil {
		return "", err
	}
	digest := make([]trinary.Trit, trinary.HashTrinarySize)
	if err := sp.Squeeze(digest, 0, trinary.HashTrinarySize); err != nil {
		return "", err
	}
	return trinary.TritsToTrytes(digest)
}
