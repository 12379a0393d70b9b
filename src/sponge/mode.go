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

import "fmt"

// Type selects which sponge construction a caller wants from Create.
type Type int

const (
	// Curl81 selects the Curl-P-81 construction.
	Curl81 Type = iota
	// KerlType selects the Keccak-384-backed construction.
	KerlType
)

// String renders a Type for logging and error messages.
func (t Type) String() string {
	switch t {
	case Curl81:
		return "curl-p-81"
	case KerlType:
		return "kerl"
	default:
		return fmt.Sprintf("sponge.Type(%d)", int(t))
	}
}

// Create returns a fresh sponge of the requested type. The signing
// engine defaults to KerlType (spec.md §4.8); Curl81 remains available
// for callers that need the older construction explicitly.
func Create(t Type) (Sponge, error) {
	switch t {
	case Curl81:
		return NewCurlP81(), nil
	case KerlType:
		return NewKerl(), nil
	default:
		return nil, fmt.Errorf("unknown sponge type %v", t)
	}
}
