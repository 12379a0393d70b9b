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

// Package sponge holds the two ternary sponge constructions the
// signing engine is built on: Curl-P-81 and Kerl. Both implement the
// same Sponge contract so the signing engine can be parameterized
// over either one.
package sponge

import "github.com/sphinx-core/ternary/src/trinary"

// StateLength is the trit length of a sponge's internal state
// (3 * HashTrinarySize), shared by both constructions.
const StateLength = 3 * trinary.HashTrinarySize

// Sponge is the common absorb/squeeze contract every ternary sponge in
// this module implements. Calls on one instance are always sequential
// — nothing here is safe for concurrent use without an external lock,
// matching spec.md §5: callers that need concurrency clone a template
// sponge per call instead of sharing one.
type Sponge interface {
	// Absorb mixes length trits of input, starting at offset, into the
	// state. length must be a positive multiple of
	// trinary.HashTrinarySize.
	Absorb(input []trinary.Trit, offset, length int) error

	// Squeeze writes length trits of output, starting at offset,
	// advancing the state as it goes. length must be a positive
	// multiple of trinary.HashTrinarySize.
	Squeeze(output []trinary.Trit, offset, length int) error

	// Reset zeroes the internal state.
	Reset()

	// Clone returns a deep copy, so the caller can keep using the
	// original while operating on an independent copy of its state.
	Clone() Sponge
}
