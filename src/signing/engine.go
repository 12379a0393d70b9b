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
	"github.com/sphinx-core/ternary/src/sponge"
	"github.com/sphinx-core/ternary/src/trinary"
)

// Engine holds nothing but a choice of sponge construction: every
// method is a pure function of its arguments plus a freshly created
// or cloned sponge, so an Engine value is safe to share across
// goroutines (spec.md §5).
type Engine struct {
	mode sponge.Type
}

// NewEngine returns a signing Engine using Kerl, the default
// construction for every signing operation (spec.md §4.8).
func NewEngine() *Engine {
	return &Engine{mode: sponge.KerlType}
}

// NewEngineWithMode returns a signing Engine parameterized over an
// explicit sponge construction, for callers that need Curl-P-81
// subseed derivation instead of the Kerl default.
func NewEngineWithMode(mode sponge.Type) *Engine {
	return &Engine{mode: mode}
}

// newSponge creates a fresh sponge of the engine's configured type.
func (e *Engine) newSponge() (sponge.Sponge, error) {
	return sponge.Create(e.mode)
}

// hashNTimes repeatedly absorbs block into a fresh Kerl sponge and
// squeezes the result back into block, n times. Key digestion,
// signature fragment generation and fragment digest verification are
// all this same loop at different iteration counts (spec.md §4.6).
func hashNTimes(block []trinary.Trit, n int) error {
	for i := 0; i < n; i++ {
		sp := sponge.NewKerl()
		if err := sp.Absorb(block, 0, trinary.HashTrinarySize); err != nil {
			return err
		}
		if err := sp.Squeeze(block, 0, trinary.HashTrinarySize); err != nil {
			return err
		}
	}
	return nil
}
