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

package ints

import (
	"testing"
)

func TestAlignment(t *testing.T) {
	tests := []struct {
		v, alignment, up, down uint64
	}{
		{0, 64, 0, 0},
		{1, 64, 64, 0},
		{63, 64, 64, 0},
		{64, 64, 64, 64},
		{65, 64, 128, 64},
		{120, 64, 128, 64},
		{128, 64, 128, 128},
	}
	for _, tt := range tests {
		if got := AlignUp64(tt.v, tt.alignment); got != tt.up {
			t.Errorf("AlignUp64(%d, %d) = %d, want %d", tt.v, tt.alignment, got, tt.up)
		}
		if got := AlignDown(tt.v, tt.alignment); got != tt.down {
			t.Errorf("AlignDown(%d, %d) = %d, want %d", tt.v, tt.alignment, got, tt.down)
		}
		if got := IsAligned(tt.v, tt.alignment); got != (tt.v == tt.down) {
			t.Errorf("IsAligned(%d, %d) = %v", tt.v, tt.alignment, got)
		}
	}

	if got := ChunkCount(uint64(65), uint64(64)); got != 2 {
		t.Errorf("ChunkCount(65, 64) = %d, want 2", got)
	}
}
