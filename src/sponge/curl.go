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

	"github.com/sphinx-core/ternary/src/terr"
	"github.com/sphinx-core/ternary/src/trinary"
)

// NumberOfRoundsP81 is the number of applications of the Curl
// transform per block, the "81" in Curl-P-81.
const NumberOfRoundsP81 = 81

// curlSBox is the 3x3 truth table the Curl transform applies at every
// state position, indexed [a+1][b+1] for inputs a, b in {-1,0,1}.
var curlSBox = [3][3]trinary.Trit{
	{1, 1, -1},
	{0, -1, 1},
	{-1, 0, 0},
}

// Curl is the Curl-P-81 ternary sponge: a 729-trit state permuted by a
// fixed-point index walk and a 3x3 S-box, run for 81 rounds between
// every absorbed or squeezed block (spec.md §4.3).
type Curl struct {
	state [StateLength]trinary.Trit
}

// NewCurlP81 returns a Curl sponge with a freshly zeroed state.
func NewCurlP81() *Curl {
	return &Curl{}
}

// transform runs NumberOfRoundsP81 applications of the S-box over the
// state, each driven by the fixed index walk: from position p, the
// paired position is p+364 if p<365, else p-365. Grounded on the
// absorb/squeeze/transform loop structure of the ternary Curl
// implementations in the retrieved reference pack.
func (c *Curl) transform() {
	var scratch [StateLength]trinary.Trit
	idx := 0
	for round := 0; round < NumberOfRoundsP81; round++ {
		for i := 0; i < StateLength; i++ {
			var idx2 int
			if idx < 365 {
				idx2 = idx + 364
			} else {
				idx2 = idx - 365
			}
			scratch[i] = curlSBox[c.state[idx]+1][c.state[idx2]+1]
			idx = idx2
		}
		c.state = scratch
	}
}

// Absorb copies each 243-trit block of input into the first third of
// the state, overwriting it, then runs the transform (spec.md §4.4).
func (c *Curl) Absorb(input []trinary.Trit, offset, length int) error {
	if length <= 0 || length%trinary.HashTrinarySize != 0 {
		return fmt.Errorf("absorb length %d is not a positive multiple of %d: %w", length, trinary.HashTrinarySize, terr.ErrInvalidLength)
	}
	if offset < 0 || offset+length > len(input) {
		return fmt.Errorf("absorb range [%d:%d] out of bounds for input of length %d: %w", offset, offset+length, len(input), terr.ErrInvalidLength)
	}
	for pos := 0; pos < length; pos += trinary.HashTrinarySize {
		copy(c.state[0:trinary.HashTrinarySize], input[offset+pos:offset+pos+trinary.HashTrinarySize])
		c.transform()
	}
	return nil
}

// Squeeze emits each 243-trit block of the state's first third into
// output, running the transform after every block so a further
// Squeeze call continues the same stream.
func (c *Curl) Squeeze(output []trinary.Trit, offset, length int) error {
	if length <= 0 || length%trinary.HashTrinarySize != 0 {
		return fmt.Errorf("squeeze length %d is not a positive multiple of %d: %w", length, trinary.HashTrinarySize, terr.ErrInvalidLength)
	}
	if offset < 0 || offset+length > len(output) {
		return fmt.Errorf("squeeze range [%d:%d] out of bounds for output of length %d: %w", offset, offset+length, len(output), terr.ErrInvalidLength)
	}
	for pos := 0; pos < length; pos += trinary.HashTrinarySize {
		copy(output[offset+pos:offset+pos+trinary.HashTrinarySize], c.state[0:trinary.HashTrinarySize])
		c.transform()
	}
	return nil
}

// Reset zeroes the state.
func (c *Curl) Reset() {
	c.state = [StateLength]trinary.Trit{}
}

// Clone returns an independent Curl sponge with the same state.
func (c *Curl) Clone() Sponge {
	clone := *c
	return &clone
}
