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

package checksum

import "testing"

// firstAddr and sixthAddr are transcribed from the same reference
// fixtures src/signing's tests use, so this package's checksum logic
// is checked against a literal known-good 90-tryte address rather
// than only round-tripped against itself.
const (
	firstAddr = "LXQHWNY9CQOHPNMKFJFIJHGEPAENAOVFRDIBF99PPHDTWJDCGHLYETXT9NPUVSNKT9XDTDYNJKJCPQMZCCOZVXMTXC"
	sixthAddr = "HLHRSJNPUUGRYOVYPSTEQJKETXNXDIWQURLTYDBJADGIYZCFXZTTFSOCECPPPPY9BYWPODZOCWJKXEWXDPUYEOTFQA"
)

func TestIsValidChecksumAcceptsKnownGoodAddress(t *testing.T) {
	for _, addr := range []string{firstAddr, sixthAddr} {
		ok, err := IsValidChecksum(addr)
		if err != nil {
			t.Fatalf("IsValidChecksum(%s): %v", addr, err)
		}
		if !ok {
			t.Fatalf("expected %s to carry a valid checksum", addr)
		}
	}
}

func TestAddChecksumRoundTrip(t *testing.T) {
	for _, addr := range []string{firstAddr, sixthAddr} {
		bare, err := RemoveChecksum(addr)
		if err != nil {
			t.Fatalf("RemoveChecksum: %v", err)
		}

		withChecksum, err := AddChecksum(bare)
		if err != nil {
			t.Fatalf("AddChecksum: %v", err)
		}
		if withChecksum != addr {
			t.Fatalf("got %s, want %s", withChecksum, addr)
		}
	}
}

func TestRemoveChecksumRejectsCorruptedChecksum(t *testing.T) {
	corrupted := firstAddr[:len(firstAddr)-1] + flipTryte(firstAddr[len(firstAddr)-1])
	if _, err := RemoveChecksum(corrupted); err == nil {
		t.Fatal("expected an error for a corrupted checksum")
	}
}

func TestIsValidChecksumRejectsWrongLength(t *testing.T) {
	if _, err := IsValidChecksum(firstAddr[:80]); err == nil {
		t.Fatal("expected an error for a too-short address")
	}
}

// flipTryte returns a different tryte alphabet character than c, so
// tests can corrupt a single symbol without needing to know its
// balanced-ternary value.
func flipTryte(c byte) string {
	if c == '9' {
		return "A"
	}
	return "9"
}
