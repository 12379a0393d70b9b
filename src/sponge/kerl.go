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

package sponge

import (
	"fmt"
	"hash"

	"golang.org/x/crypto/sha3"

	"github.com/sphinx-core/ternary/src/terr"
	"github.com/sphinx-core/ternary/src/trinary"
)

// Kerl is the Keccak-384-backed sponge: it speaks the same trit-based
// Absorb/Squeeze contract as Curl, but every 243-trit chunk crosses
// into and out of Keccak-384 through the 48-byte big-integer bridge in
// package trinary (spec.md §4.5).
type Kerl struct {
	h hash.Hash
	// written mirrors every byte handed to h since the last Reset, so
	// Clone can replay it into a fresh hash.Hash rather than needing
	// Keccak-384 itself to support state duplication.
	written []byte
}

// NewKerl returns a Kerl sponge ready to absorb.
func NewKerl() *Kerl {
	return &Kerl{h: sha3.NewLegacyKeccak384()}
}

func (k *Kerl) write(b []byte) {
	k.h.Write(b)
	k.written = append(k.written, b...)
}

// Absorb converts each 243-trit chunk of input to its 48-byte
// big-endian form and writes it into the underlying Keccak-384 state.
func (k *Kerl) Absorb(input []trinary.Trit, offset, length int) error {
	if length <= 0 || length%trinary.HashTrinarySize != 0 {
		return fmt.Errorf("absorb length %d is not a positive multiple of %d: %w", length, trinary.HashTrinarySize, terr.ErrInvalidLength)
	}
	if offset < 0 || offset+length > len(input) {
		return fmt.Errorf("absorb range [%d:%d] out of bounds for input of length %d: %w", offset, offset+length, len(input), terr.ErrInvalidLength)
	}
	for pos := 0; pos < length; pos += trinary.HashTrinarySize {
		chunk := make([]trinary.Trit, trinary.HashTrinarySize)
		copy(chunk, input[offset+pos:offset+pos+trinary.HashTrinarySize])
		// The 243rd trit of a Kerl chunk never carries magnitude; force
		// it to zero rather than trust the caller, since the big-integer
		// bridge is only defined for values with that trit clamped.
		chunk[trinary.HashTrinarySize-1] = 0
		bytes, err := trinary.TritsToBigEndianBytes(chunk)
		if err != nil {
			return err
		}
		k.write(bytes[:])
	}
	return nil
}

// Squeeze extracts each 243-trit chunk of output from a Keccak-384
// digest of everything absorbed so far. After every chunk, including
// the last, the digest's bytes are bit-flipped and rehashed into a fresh
// Keccak-384 state, so a further Squeeze call continues the same
// stream rather than repeating the first digest.
func (k *Kerl) Squeeze(output []trinary.Trit, offset, length int) error {
	if length <= 0 || length%trinary.HashTrinarySize != 0 {
		return fmt.Errorf("squeeze length %d is not a positive multiple of %d: %w", length, trinary.HashTrinarySize, terr.ErrInvalidLength)
	}
	if offset < 0 || offset+length > len(output) {
		return fmt.Errorf("squeeze range [%d:%d] out of bounds for output of length %d: %w", offset, offset+length, len(output), terr.ErrInvalidLength)
	}
	for pos := 0; pos < length; pos += trinary.HashTrinarySize {
		sum := k.h.Sum(nil)
		var digest [trinary.BigIntByteLength]byte
		copy(digest[:], sum)

		trits := trinary.BigEndianBytesToTrits(digest)
		copy(output[offset+pos:offset+pos+trinary.HashTrinarySize], trits[:])

		flipped := make([]byte, len(sum))
		for i, b := range sum {
			flipped[i] = ^b
		}
		k.h.Reset()
		k.written = k.written[:0]
		k.write(flipped)
	}
	return nil
}

// Reset discards all absorbed input and returns to a fresh Keccak-384
// state.
func (k *Kerl) Reset() {
	k.h.Reset()
	k.written = k.written[:0]
}

// Clone returns an independent Kerl sponge that has absorbed the same
// bytes so far.
func (k *Kerl) Clone() Sponge {
	clone := &Kerl{h: sha3.NewLegacyKeccak384()}
	clone.written = append(clone.written, k.written...)
	clone.h.Write(clone.written)
	return clone
}
