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

import "testing"

// TestTryteTrits checks the fixed alphabet-to-trit-triplet mapping
// against the literal examples spec.md §4.1 gives.
func TestTryteTrits(t *testing.T) {
	cases := []struct {
		tryte byte
		trits [3]Trit
	}{
		{'9', [3]Trit{0, 0, 0}},
		{'A', [3]Trit{1, 0, 0}},
		{'B', [3]Trit{-1, 1, 0}},
		{'Z', [3]Trit{-1, 0, 0}},
		{'M', [3]Trit{1, 1, 1}},
		{'N', [3]Trit{-1, -1, -1}},
	}

	for _, tc := range cases {
		trits, err := TrytesToTrits(string(tc.tryte))
		if err != nil {
			t.Fatalf("TrytesToTrits(%q): %v", tc.tryte, err)
		}
		if [3]Trit(trits) != tc.trits {
			t.Fatalf("TrytesToTrits(%q) = %v, want %v", tc.tryte, trits, tc.trits)
		}
	}
}

func TestTrytesToTritsRejectsInvalidCharacter(t *testing.T) {
	if _, err := TrytesToTrits("A1B"); err == nil {
		t.Fatal("expected an error for a non-alphabet character")
	}
}

func TestTritsToTrytesRoundTrip(t *testing.T) {
	const trytes = "IHDEENZYITYVYSPKAURUZAQKGVJEREFDJMYTANNXXGPZ9GJWTEOJJ9IPMXOGZNQLSNMFDSQOTZAEETUEA"

	trits, err := TrytesToTrits(trytes)
	if err != nil {
		t.Fatalf("TrytesToTrits: %v", err)
	}
	if len(trits) != len(trytes)*TritsPerTryte {
		t.Fatalf("got %d trits, want %d", len(trits), len(trytes)*TritsPerTryte)
	}

	back, err := TritsToTrytes(trits)
	if err != nil {
		t.Fatalf("TritsToTrytes: %v", err)
	}
	if back != trytes {
		t.Fatalf("round trip: got %q, want %q", back, trytes)
	}
}

func TestTritsToTrytesRejectsBadLength(t *testing.T) {
	if _, err := TritsToTrytes(make([]Trit, 4)); err == nil {
		t.Fatal("expected an error for a non-multiple-of-3 length")
	}
}

func TestValueOfTrits(t *testing.T) {
	cases := []struct {
		trits []Trit
		value int
	}{
		{[]Trit{0, 0, 0}, 0},
		{[]Trit{1, 0, 0}, 1},
		{[]Trit{-1, 1, 0}, 2},
		{[]Trit{1, -1, 0}, -2},
		{[]Trit{-1, 0, 0}, -1},
	}
	for _, tc := range cases {
		if got := ValueOfTrits(tc.trits); got != tc.value {
			t.Fatalf("ValueOfTrits(%v) = %d, want %d", tc.trits, got, tc.value)
		}
	}
}

func TestTritsFromValueRoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, -1, 13, -13, 364, -364} {
		trits := TritsFromValue(v, 8)
		if got := ValueOfTrits(trits); got != v {
			t.Fatalf("TritsFromValue(%d) round trip got %d", v, got)
		}
	}
}
