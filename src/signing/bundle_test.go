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
	"testing"

	"github.com/sphinx-core/ternary/src/checksum"
	"github.com/sphinx-core/ternary/src/trinary"
)

// TestNormalizeBundleZeroSumAndRange checks spec.md §8 property 4:
// every group of a normalized bundle sums to zero and every entry
// falls in [-13, 13].
func TestNormalizeBundleZeroSumAndRange(t *testing.T) {
	bareAddr, err := checksum.RemoveChecksum(firstAddr)
	if err != nil {
		t.Fatalf("RemoveChecksum: %v", err)
	}
	hashTrits, err := trinary.TrytesToTrits(bareAddr)
	if err != nil {
		t.Fatalf("TrytesToTrits: %v", err)
	}

	normalized, err := NormalizeBundle(hashTrits)
	if err != nil {
		t.Fatalf("NormalizeBundle: %v", err)
	}

	for g := 0; g < bundleGroups; g++ {
		group := normalized.Group(g)
		sum := 0
		for _, v := range group {
			if v < -13 || v > 13 {
				t.Fatalf("group %d entry %d out of range [-13,13]", g, v)
			}
			sum += int(v)
		}
		if sum != 0 {
			t.Fatalf("group %d sums to %d, want 0", g, sum)
		}
	}
}

func TestNormalizeBundleRejectsWrongLength(t *testing.T) {
	if _, err := NormalizeBundle(make([]trinary.Trit, 10)); err == nil {
		t.Fatal("expected an error for a non-243-trit bundle hash")
	}
}

func TestNormalizeBundleDeterministic(t *testing.T) {
	bareAddr, err := checksum.RemoveChecksum(sixthAddr)
	if err != nil {
		t.Fatalf("RemoveChecksum: %v", err)
	}
	hashTrits, err := trinary.TrytesToTrits(bareAddr)
	if err != nil {
		t.Fatalf("TrytesToTrits: %v", err)
	}

	a, err := NormalizeBundle(hashTrits)
	if err != nil {
		t.Fatalf("NormalizeBundle: %v", err)
	}
	b, err := NormalizeBundle(hashTrits)
	if err != nil {
		t.Fatalf("NormalizeBundle: %v", err)
	}
	if a != b {
		t.Fatal("normalizing the same hash twice produced different results")
	}
}
