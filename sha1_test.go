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

package sha1

import (
	stdsha1 "crypto/sha1"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/SnellerInc/sha1/ints"
)

func TestVectors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"abc", "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"dog", "The quick brown fox jumps over the lazy dog", "2fd4e1c67a2d28fced849ee1bb76e7391b93eb12"},
		{"cog", "The quick brown fox jumps over the lazy cog", "de9f2c7fd25e1b3afad3e85a0bd17d9b100db4b3"},
		{"56 bytes", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "84983e441c3bd26ebaae4aa1f95129e5e54670f1"},
		{"million a", strings.Repeat("a", 1000000), "34aa973cd4c4daa4f61eeb2bdbad27316534016f"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest, err := Sum([]byte(tt.input))
			if err != nil {
				t.Fatalf("Sum: %v", err)
			}
			if got := hex.EncodeToString(digest[:]); got != tt.want {
				t.Errorf("digest mismatch\ngot:  %s\nwant: %s", got, tt.want)
			}
		})
	}
}

// TestBoundaryLengths exercises the padding boundary transitions
// against the standard library
func TestBoundaryLengths(t *testing.T) {
	lengths := []int{0, 1, 55, 56, 57, 63, 64, 65, 119, 120, 121, 127, 128, 2 * 64, 17 * 64, 1000}

	data := make([]byte, 17*64+1000)
	if err := ints.RandomFillSlice(data); err != nil {
		t.Fatal(err)
	}

	for _, n := range lengths {
		digest, err := Sum(data[:n])
		if err != nil {
			t.Fatalf("len %d: %v", n, err)
		}
		if want := stdsha1.Sum(data[:n]); digest != want {
			t.Errorf("len %d: digest mismatch\ngot:  %x\nwant: %x", n, digest, want)
		}
	}
}

// TestPaddedLength checks the padded-message length law
// 64*ceil((L+9)/64) together with the placement of the terminator and
// the length suffix
func TestPaddedLength(t *testing.T) {
	data := make([]byte, 300)
	if err := ints.RandomFillSlice(data); err != nil {
		t.Fatal(err)
	}

	for n := 0; n <= len(data); n++ {
		rest := data[n-(n%BlockSize) : n]
		tail := pad(rest, uint64(n))

		whole := uint64(n-len(rest)) + uint64(len(tail))
		if want := ints.AlignUp64(uint64(n)+9, BlockSize); whole != want {
			t.Fatalf("len %d: padded length %d, want %d", n, whole, want)
		}
		if !ints.IsAligned(uint64(len(tail)), uint64(BlockSize)) {
			t.Fatalf("len %d: tail length %d not block-aligned", n, len(tail))
		}
		if tail[len(rest)] != 0x80 {
			t.Fatalf("len %d: missing 0x80 terminator", n)
		}
		for i := len(rest) + 1; i < len(tail)-8; i++ {
			if tail[i] != 0 {
				t.Fatalf("len %d: nonzero fill byte at %d", n, i)
			}
		}
		if got := binary.BigEndian.Uint64(tail[len(tail)-8:]); got != uint64(n)*8 {
			t.Fatalf("len %d: length suffix %d, want %d", n, got, n*8)
		}
	}
}

func TestDeterminism(t *testing.T) {
	input := []byte("The quick brown fox jumps over the lazy dog")
	first, err := Sum(input)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 16; i++ {
		again, err := Sum(input)
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("digest not deterministic: %x vs %x", again, first)
		}
	}
}

func TestBackendReport(t *testing.T) {
	if Backend() == "" {
		t.Error("empty backend name")
	}
	// must not panic regardless of the host
	_ = Accelerated()
}

func benchmarkSum(b *testing.B, n int) {
	data := make([]byte, n)
	if err := ints.RandomFillSlice(data); err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(n))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Sum(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSum64(b *testing.B) { benchmarkSum(b, 64) }
func BenchmarkSum1K(b *testing.B) { benchmarkSum(b, 1024) }
func BenchmarkSum1M(b *testing.B) { benchmarkSum(b, 1<<20) }
