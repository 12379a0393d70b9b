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

// Package trinary is the bidirectional bridge between byte strings,
// tryte strings, trit arrays and signed integers that every other
// package in this module builds on.
package trinary

// Trit is a single ternary digit, always one of -1, 0, 1.
type Trit = int8

// TryteAlphabet is the fixed 27-symbol tryte alphabet. Index 0 ('9')
// is the zero tryte; indices 1..13 ('A'..'M') are positive values
// 1..13; indices 14..26 ('N'..'Z') are negative values -13..-1.
const TryteAlphabet = "9ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	// TritsPerTryte is the number of trits one tryte symbol encodes.
	TritsPerTryte = 3

	// HashTrinarySize is the trit length of a Curl/Kerl hash (81 trytes).
	HashTrinarySize = 243

	// KeyFragmentLength is the trit length of one key fragment
	// (27 blocks of 243 trits), also the trit length of one
	// signature fragment.
	KeyFragmentLength = 27 * HashTrinarySize

	// AddressLengthWithoutChecksum is the tryte length of a bare address.
	AddressLengthWithoutChecksum = 81

	// AddressLengthWithChecksum is the tryte length of an address
	// plus its 9-tryte checksum.
	AddressLengthWithChecksum = 90

	// ChecksumLength is the tryte length of an address checksum.
	ChecksumLength = 9

	// MinSecurityLevel and MaxSecurityLevel bound the security parameter.
	MinSecurityLevel = 1
	MaxSecurityLevel = 3
)
