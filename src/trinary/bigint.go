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

	"github.com/sphinx-core/ternary/src/terr"
)

// BigIntByteLength is the fixed width of the big-endian integer Kerl
// converts every 243-trit chunk to and from (384 bits).
const BigIntByteLength = 48

// kerlMeaningfulTrits is the number of trits that actually carry
// magnitude in a Kerl big-integer conversion. The chunk's last trit
// (index 242) is always treated as zero, which is what keeps 243
// balanced trits representable in 384 bits at all: 243 unconstrained
// trits would need 386 bits, two more than fit.
const kerlMeaningfulTrits = HashTrinarySize - 1

// add384 adds two 384-bit values represented as big-endian byte
// arrays, mod 2^384 (the final carry out, if any, is discarded — the
// same wraparound ordinary two's-complement machine arithmetic has).
func add384(a, b [BigIntByteLength]byte) [BigIntByteLength]byte {
	var out [BigIntByteLength]byte
	var carry uint16
	for i := BigIntByteLength - 1; i >= 0; i-- {
		sum := uint16(a[i]) + uint16(b[i]) + carry
		out[i] = byte(sum)
		carry = sum >> 8
	}
	return out
}

// negate384 returns the two's-complement negation of a.
func negate384(a [BigIntByteLength]byte) [BigIntByteLength]byte {
	var inverted [BigIntByteLength]byte
	for i, v := range a {
		inverted[i] = ^v
	}
	one := [BigIntByteLength]byte{BigIntByteLength - 1: 1}
	return add384(inverted, one)
}

// sub384 computes a - b mod 2^384.
func sub384(a, b [BigIntByteLength]byte) [BigIntByteLength]byte {
	return add384(a, negate384(b))
}

// isNegative384 reports whether a, read as a signed two's-complement
// integer, is negative (its sign bit is set).
func isNegative384(a [BigIntByteLength]byte) bool {
	return a[0]&0x80 != 0
}

// udivmod3 divides an unsigned 384-bit value by 3 with a single
// shift-and-subtract pass over its bits (binary long division), never
// needing a general division primitive. Returns the quotient and the
// remainder in {0,1,2}.
func udivmod3(a [BigIntByteLength]byte) ([BigIntByteLength]byte, uint8) {
	var q [BigIntByteLength]byte
	var rem uint8
	for i := 0; i < BigIntByteLength; i++ {
		b := a[i]
		for bit := 7; bit >= 0; bit-- {
			rem = rem*2 + (b>>uint(bit))&1
			q[i] <<= 1
			if rem >= 3 {
				rem -= 3
				q[i] |= 1
			}
		}
	}
	return q, rem
}

// TritsToBigEndianBytes converts a 243-trit chunk to the 48-byte
// big-endian two's-complement integer Kerl absorbs into Keccak-384
// (spec.md §4.2). Only the first 242 trits carry magnitude; index 242
// is never read (the caller is expected to have it at zero, and this
// function would ignore it even if not, since every real 243-trit
// chunk Kerl ever forms already clamps it before conversion). The
// signed balanced-ternary value is written out directly — add384 and
// sub384 already wrap mod 2^384, which is exactly two's-complement
// arithmetic, so no offset into an unsigned range is needed or
// correct.
func TritsToBigEndianBytes(trits []Trit) ([BigIntByteLength]byte, error) {
	var zero [BigIntByteLength]byte
	if len(trits) != HashTrinarySize {
		return zero, fmt.Errorf("chunk length %d, want %d: %w", len(trits), HashTrinarySize, terr.ErrInvalidLength)
	}

	var acc [BigIntByteLength]byte
	one := [BigIntByteLength]byte{BigIntByteLength - 1: 1}
	for i := kerlMeaningfulTrits - 1; i >= 0; i-- {
		// acc = acc*3 + trits[i], tripling via two adds so the whole
		// bridge only ever does add/negate/shift on fixed-width bytes.
		acc = add384(add384(acc, acc), acc)
		switch trits[i] {
		case 1:
			acc = add384(acc, one)
		case -1:
			acc = sub384(acc, one)
		case 0:
			// no-op
		default:
			return zero, fmt.Errorf("trit %d at position %d out of range: %w", trits[i], i, terr.ErrInvalidLength)
		}
	}
	return acc, nil
}

// BigEndianBytesToTrits reverses TritsToBigEndianBytes, returning 243
// trits with index 242 always zero.
func BigEndianBytesToTrits(b [BigIntByteLength]byte) [HashTrinarySize]Trit {
	acc := b

	var trits [HashTrinarySize]Trit
	one := [BigIntByteLength]byte{BigIntByteLength - 1: 1}
	for i := 0; i < kerlMeaningfulTrits; i++ {
		neg := isNegative384(acc)
		abs := acc
		if neg {
			abs = negate384(acc)
		}
		q, r := udivmod3(abs)

		var digit Trit
		var next [BigIntByteLength]byte
		switch {
		case !neg && r == 2:
			digit = -1
			next = add384(q, one)
		case !neg:
			digit = Trit(r)
			next = q
		case neg && r == 0:
			digit = 0
			next = negate384(q)
		case neg && r == 1:
			digit = -1
			next = negate384(q)
		default: // neg && r == 2
			digit = 1
			next = negate384(add384(q, one))
		}
		trits[i] = digit
		acc = next
	}
	trits[HashTrinarySize-1] = 0
	return trits
}
