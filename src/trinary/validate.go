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

package trinary

import "strings"

// IsValidTrytes reports whether every character of s is in the tryte
// alphabet. An empty string is valid (it encodes zero trits).
func IsValidTrytes(s string) bool {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(TryteAlphabet, s[i]) < 0 {
			return false
		}
	}
	return true
}

// IsValidTrit reports whether t is one of -1, 0, 1.
func IsValidTrit(t Trit) bool {
	return t >= -1 && t <= 1
}

// IsValidTrits reports whether every element of trits is a valid trit.
func IsValidTrits(trits []Trit) bool {
	for _, t := range trits {
		if !IsValidTrit(t) {
			return false
		}
	}
	return true
}

// IsValidSecurityLevel reports whether level is in {1,2,3}.
func IsValidSecurityLevel(level int) bool {
	return level >= MinSecurityLevel && level <= MaxSecurityLevel
}

// IsValidIndex reports whether index is a non-negative key index.
func IsValidIndex(index int) bool {
	return index >= 0
}

// IsValidHash reports whether s is a well-formed 81-tryte hash.
func IsValidHash(s string) bool {
	return len(s) == AddressLengthWithoutChecksum && IsValidTrytes(s)
}

// IsValidAddress reports whether s is a well-formed address, with or
// without its checksum (81 or 90 trytes).
func IsValidAddress(s string) bool {
	if !IsValidTrytes(s) {
		return false
	}
	return len(s) == AddressLengthWithoutChecksum || len(s) == AddressLengthWithChecksum
}

// IsValidSignatureFragment reports whether s has the tryte length one
// signature fragment must have (2187 trytes = 6561 trits).
func IsValidSignatureFragment(s string) bool {
	return len(s) == KeyFragmentLength/TritsPerTryte && IsValidTrytes(s)
}
