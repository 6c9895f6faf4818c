// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package shani

import (
	"testing"

	"github.com/SnellerInc/sha1/internal/scalar"
	"github.com/SnellerInc/sha1/ints"
)

func TestCompressABC(t *testing.T) {
	block := make([]byte, 64)
	copy(block, "abc")
	block[3] = 0x80
	block[63] = 24

	iv := [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}
	got := Compress(iv, block)
	want := [5]uint32{0xa9993e36, 0x4706816a, 0xba3e2571, 0x7850c26c, 0x9cd0d89d}
	if got != want {
		t.Fatalf("state mismatch\ngot:  %08x\nwant: %08x", got, want)
	}
}

func TestCompressMatchesScalar(t *testing.T) {
	block := make([]byte, 64)
	var state [5]uint32

	for iter := 0; iter < 64; iter++ {
		if err := ints.RandomFillSlice(block); err != nil {
			t.Fatal(err)
		}
		if err := ints.RandomFillSlice(state[:]); err != nil {
			t.Fatal(err)
		}

		got := Compress(state, block)
		if want := scalar.Compress(state, block); got != want {
			t.Fatalf("iter %d: state mismatch\ngot:  %08x\nwant: %08x", iter, got, want)
		}
	}
}
