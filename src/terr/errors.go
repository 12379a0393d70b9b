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

// Package terr defines the tagged error kinds the ternary core returns.
// Every kind is a sentinel that callers can match with errors.Is; the
// core always wraps one of these with context via fmt.Errorf("...: %w", ...)
// rather than returning a bare string or throwing.
package terr

import "errors"

// Sentinel error kinds. These never carry their own message text —
// call sites wrap them with fmt.Errorf to add the offending value.
var (
	// ErrInvalidTryte is returned when a character outside the tryte
	// alphabet (9A..Z) appears in a tryte string.
	ErrInvalidTryte = errors.New("invalid tryte")

	// ErrInvalidLength is returned when a tryte or trit buffer does not
	// have the length an operation requires (e.g. a signature fragment
	// that isn't 2187 trytes, or trits not a multiple of 3).
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidSecurity is returned when a security level is outside {1,2,3}.
	ErrInvalidSecurity = errors.New("invalid security level")

	// ErrInvalidIndex is returned for a negative key index.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrInvalidChecksum is returned when an address checksum is present
	// but does not match the recomputed value.
	ErrInvalidChecksum = errors.New("invalid checksum")

	// ErrInvalidBundleHash is returned when a bundle hash is not 81 trytes.
	ErrInvalidBundleHash = errors.New("invalid bundle hash")
)
