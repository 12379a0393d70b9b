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

import (
	"fmt"
	"strings"

	"github.com/sphinx-core/ternary/src/terr"
)

// tryteTrits[i] holds the 3-trit, little-endian encoding of the tryte
// at TryteAlphabet[i]. Built once at init from the balanced-ternary
// value each symbol represents, rather than hand-typed, so the table
// can never drift from the alphabet's value assignment.
var tryteTrits [len(TryteAlphabet)][TritsPerTryte]Trit

func init() {
	for i := range TryteAlphabet {
		value := i
		if value > 13 {
			value -= len(TryteAlphabet)
		}
		copy(tryteTrits[i][:], valueToTrits(value, TritsPerTryte))
	}
}

// valueToTrits decomposes a signed integer into balanced-ternary trits,
// least-significant first, truncating any high trits that do not fit
// in length. Used only for small, native-int values (the tryte table
// above, TritsFromValue); the 384-bit Kerl bridge never goes through
// here.
func valueToTrits(value int, length int) []Trit {
	trits := make([]Trit, length)
	for i := 0; i < length && value != 0; i++ {
		rem := value % 3
		value /= 3
		if rem > 1 {
			rem -= 3
			value++
		} else if rem < -1 {
			rem += 3
			value--
		}
		trits[i] = Trit(rem)
	}
	return trits
}

// TritsFromValue is the exported form of valueToTrits (spec.md §4.1's
// trits_from_value), for callers outside this package building trit
// vectors from small signed integers.
func TritsFromValue(value int, length int) []Trit {
	return valueToTrits(value, length)
}

// ValueOfTrits computes the balanced-ternary Horner value of a trit
// slice, index 0 being least significant (spec.md §4.1's value()).
func ValueOfTrits(trits []Trit) int {
	value := 0
	for i := len(trits) - 1; i >= 0; i-- {
		value = value*3 + int(trits[i])
	}
	return value
}

// TrytesToTrits expands a tryte string into its trit representation,
// 3 trits per tryte, in order. Returns terr.ErrInvalidTryte if any
// character is outside the tryte alphabet.
func TrytesToTrits(trytes string) ([]Trit, error) {
	trits := make([]Trit, 0, len(trytes)*TritsPerTryte)
	for pos := 0; pos < len(trytes); pos++ {
		idx := strings.IndexByte(TryteAlphabet, trytes[pos])
		if idx < 0 {
			return nil, fmt.Errorf("tryte %q at position %d: %w", trytes[pos], pos, terr.ErrInvalidTryte)
		}
		trits = append(trits, tryteTrits[idx][:]...)
	}
	return trits, nil
}

// TritsToTrytes condenses a trit slice back into a tryte string. The
// length must be a multiple of 3 and every trit must be in {-1,0,1}.
func TritsToTrytes(trits []Trit) (string, error) {
	if len(trits)%TritsPerTryte != 0 {
		return "", fmt.Errorf("trit length %d is not a multiple of %d: %w", len(trits), TritsPerTryte, terr.ErrInvalidLength)
	}
	var b strings.Builder
	b.Grow(len(trits) / TritsPerTryte)
	for pos := 0; pos < len(trits); pos += TritsPerTryte {
		group := trits[pos : pos+TritsPerTryte]
		for _, t := range group {
			if t < -1 || t > 1 {
				return "", fmt.Errorf("trit %d at position %d is out of range: %w", t, pos, terr.ErrInvalidLength)
			}
		}
		value := ValueOfTrits(group)
		if value < 0 {
			value += len(TryteAlphabet)
		}
		b.WriteByte(TryteAlphabet[value])
	}
	return b.String(), nil
}
