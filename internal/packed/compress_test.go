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

package packed

import (
	"testing"

	"github.com/SnellerInc/sha1/internal/scalar"
	"github.com/SnellerInc/sha1/ints"
)

func TestScheduleMatchesScalar(t *testing.T) {
	block := make([]byte, 64)
	if err := ints.RandomFillSlice(block); err != nil {
		t.Fatal(err)
	}

	ref := scalar.Schedule(block)
	for j, v := range Schedule(block) {
		for i, w := range v {
			if want := ref[j*4+i]; w != want {
				t.Errorf("v[%d] lane %d: %08x, want %08x", j, i, w, want)
			}
		}
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
