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

	"github.com/sphinx-core/ternary/src/terr"
	"github.com/sphinx-core/ternary/src/trinary"
)

// bundleGroups is the number of 27-symbol groups a normalized bundle
// splits into (3), and bundleGroupSize is each group's width.
const (
	bundleGroups    = 3
	bundleGroupSize = trinary.AddressLengthWithoutChecksum / bundleGroups
)

// NormalizedBundle is the length-81 signed representation of a
// 243-trit bundle hash: three zero-summed groups of 27, every entry
// in [-13, 13].
type NormalizedBundle [trinary.AddressLengthWithoutChecksum]int8

// Group returns the 27-entry slice for signature-fragment index i,
// cycling through the 3 groups as i grows past 2 (one security level
// beyond the third reuses group 0, matching how the reference client
// only ever goes up to security 3).
func (b *NormalizedBundle) Group(i int) []int8 {
	start := (i % bundleGroups) * bundleGroupSize
	return b[start : start+bundleGroupSize]
}

// NormalizeBundle converts a 243-trit bundle hash into its normalized
// form (spec.md §4.6, "Bundle normalize"). Each of the 3 groups of 27
// trytes is read off as its balanced-ternary tryte value, then
// rebalanced to zero-sum by repeatedly nudging the lowest-index entry
// that still has headroom. An entry left at 13 after rebalancing is
// not clamped: the reference signature vectors this package is
// verified against are produced without a 13->12 adjustment, so every
// entry in [-13, 13], with each group summing to zero, is the final
// form.
func NormalizeBundle(hashTrits []trinary.Trit) (NormalizedBundle, error) {
	var out NormalizedBundle
	if len(hashTrits) != trinary.HashTrinarySize {
		return out, fmt.Errorf("bundle hash length %d, want %d trits: %w", len(hashTrits), trinary.HashTrinarySize, terr.ErrInvalidBundleHash)
	}

	for g := 0; g < bundleGroups; g++ {
		base := g * bundleGroupSize
		sum := 0
		for j := 0; j < bundleGroupSize; j++ {
			triplet := hashTrits[(base+j)*trinary.TritsPerTryte : (base+j+1)*trinary.TritsPerTryte]
			value := trinary.ValueOfTrits(triplet)
			out[base+j] = int8(value)
			sum += value
		}

		for sum > 0 {
			j := lowestAbove(out[base:base+bundleGroupSize], -13)
			out[base+j]--
			sum--
		}
		for sum < 0 {
			j := lowestBelow(out[base:base+bundleGroupSize], 13)
			out[base+j]++
			sum++
		}
	}
	return out, nil
}

// lowestAbove returns the lowest index whose value is strictly
// greater than floor.
func lowestAbove(group []int8, floor int8) int {
	for i, v := range group {
		if v > floor {
			return i
		}
	}
	panic("signing: no group entry above floor during bundle normalization")
}

// lowestBelow returns the lowest index whose value is strictly less
// than ceil.
func lowestBelow(group []int8, ceil int8) int {
	for i, v := range group {
		if v < ceil {
			return i
		}
	}
	panic("signing: no group entry below ceiling during bundle normalization")
}
