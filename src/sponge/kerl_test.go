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
	"testing"

	"github.com/sphinx-core/ternary/src/trinary"
)

// TestKerlIdempotence checks spec.md §8 property 5 for Kerl: reset()
// followed by an identical absorb/squeeze sequence reproduces
// identical output.
func TestKerlIdempotence(t *testing.T) {
	k := NewKerl()
	block := testBlock()

	first := make([]trinary.Trit, trinary.HashTrinarySize)
	if err := k.Absorb(block, 0, trinary.HashTrinarySize); err != nil {
		t.Fatalf("absorb: %v", err)
	}
	if err := k.Squeeze(first, 0, trinary.HashTrinarySize); err != nil {
		t.Fatalf("squeeze: %v", err)
	}

	k.Reset()
	second := make([]trinary.Trit, trinary.HashTrinarySize)
	if err := k.Absorb(block, 0, trinary.HashTrinarySize); err != nil {
		t.Fatalf("absorb after reset: %v", err)
	}
	if err := k.Squeeze(second, 0, trinary.HashTrinarySize); err != nil {
		t.Fatalf("squeeze after reset: %v", err)
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("output differs at trit %d after reset: %d != %d", i, first[i], second[i])
		}
	}
	// Trit 242 never carries magnitude in a Kerl block.
	if first[trinary.HashTrinarySize-1] != 0 {
		t.Fatalf("trit 242 should be zero, got %d", first[trinary.HashTrinarySize-1])
	}
}

// TestKerlDeterministic checks that two independent Kerl instances
// absorbing the same input squeeze the same output.
func TestKerlDeterministic(t *testing.T) {
	block := testBlock()

	a := NewKerl()
	if err := a.Absorb(block, 0, trinary.HashTrinarySize); err != nil {
		t.Fatalf("absorb a: %v", err)
	}
	outA := make([]trinary.Trit, trinary.HashTrinarySize)
	if err := a.Squeeze(outA, 0, trinary.HashTrinarySize); err != nil {
		t.Fatalf("squeeze a: %v", err)
	}

	b := NewKerl()
	if err := b.Absorb(block, 0, trinary.HashTrinarySize); err != nil {
		t.Fatalf("absorb b: %v", err)
	}
	outB := make([]trinary.Trit, trinary.HashTrinarySize)
	if err := b.Squeeze(outB, 0, trinary.HashTrinarySize); err != nil {
		t.Fatalf("squeeze b: %v", err)
	}

	for i := range outA {
		if outA[i] != outB[i] {
			t.Fatalf("independent Kerl instances disagree at trit %d", i)
		}
	}
}

// TestKerlMultiBlockSqueezeContinuation checks that a second squeezed
// block differs from the first (the continuation rule rehashes a
// bit-flipped digest, not the same digest again).
func TestKerlMultiBlockSqueezeContinuation(t *testing.T) {
	k := NewKerl()
	block := testBlock()
	if err := k.Absorb(block, 0, trinary.HashTrinarySize); err != nil {
		t.Fatalf("absorb: %v", err)
	}

	out := make([]trinary.Trit, 2*trinary.HashTrinarySize)
	if err := k.Squeeze(out, 0, 2*trinary.HashTrinarySize); err != nil {
		t.Fatalf("squeeze: %v", err)
	}

	first := out[:trinary.HashTrinarySize]
	second := out[trinary.HashTrinarySize:]
	same := true
	for i := range first {
		if first[i] != second[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("second squeezed block should differ from the first")
	}
}

func TestKerlCloneIndependence(t *testing.T) {
	k := NewKerl()
	block := testBlock()
	if err := k.Absorb(block, 0, trinary.HashTrinarySize); err != nil {
		t.Fatalf("absorb: %v", err)
	}

	clone := k.Clone()
	extra := make([]trinary.Trit, trinary.HashTrinarySize)
	extra[0] = 1
	if err := clone.Absorb(extra, 0, trinary.HashTrinarySize); err != nil {
		t.Fatalf("absorb into clone: %v", err)
	}

	originalOut := make([]trinary.Trit, trinary.HashTrinarySize)
	if err := k.Squeeze(originalOut, 0, trinary.HashTrinarySize); err != nil {
		t.Fatalf("squeeze original: %v", err)
	}

	fresh := NewKerl()
	if err := fresh.Absorb(block, 0, trinary.HashTrinarySize); err != nil {
		t.Fatalf("absorb fresh: %v", err)
	}
	freshOut := make([]trinary.Trit, trinary.HashTrinarySize)
	if err := fresh.Squeeze(freshOut, 0, trinary.HashTrinarySize); err != nil {
		t.Fatalf("squeeze fresh: %v", err)
	}

	for i := range originalOut {
		if originalOut[i] != freshOut[i] {
			t.Fatalf("cloning perturbed the original's state at trit %d", i)
		}
	}
}

func TestKerlAbsorbRejectsBadLength(t *testing.T) {
	k := NewKerl()
	if err := k.Absorb(make([]trinary.Trit, 10), 0, 10); err == nil {
		t.Fatal("expected an error for a non-multiple-of-243 absorb length")
	}
}
