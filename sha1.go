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

// Package sha1 computes FIPS 180-4 SHA-1 digests with a block
// compression function that exploits 128-bit SIMD lanes and, where the
// target guarantees them, dedicated hash-acceleration instructions.
//
// The package exposes a single one-shot operation, Sum. Exactly one
// back-end variant of the compressor is selected per build: the x86 SHA
// extension on amd64, the ARMv8 crypto extension on arm64, the packed
// 128-bit message schedule elsewhere, and a portable scalar fallback
// under the purego build tag. All variants produce bit-identical
// digests; callers cannot observe which one is compiled in except
// through Backend.
package sha1

import (
	"encoding/binary"
	"errors"

	"github.com/SnellerInc/sha1/ints"
)

const (
	// Size is the length of a SHA-1 digest in bytes.
	Size = 20

	// BlockSize is the compression block length in bytes.
	BlockSize = 64

	// MaxLen is the largest accepted input length in bytes: with the
	// nine bytes of terminator and length suffix added, the message
	// stays within 2^61 bytes, so its bit count fits in 64 bits.
	MaxLen = 1<<61 - 9
)

// ErrTooLarge is returned by Sum when the input exceeds MaxLen.
var ErrTooLarge = errors.New("sha1: input exceeds the representable message length")

// iv is the FIPS 180-4 initialization vector.
var iv = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}

// Sum computes the SHA-1 digest of data in one shot.
//
// Inputs longer than MaxLen are refused rather than silently
// truncating the length field.
func Sum(data []byte) ([Size]byte, error) {
	var digest [Size]byte
	if uint64(len(data)) > MaxLen {
		return digest, ErrTooLarge
	}

	total := uint64(len(data))
	h := iv
	for len(data) >= BlockSize {
		h = compress(h, data[:BlockSize])
		data = data[BlockSize:]
	}

	// the 0x80 terminator and the length suffix span at most two
	// more blocks; the remaining input is shorter than one
	tail := pad(data, total)
	for len(tail) > 0 {
		h = compress(h, tail[:BlockSize])
		tail = tail[BlockSize:]
	}

	serialize(&h, digest[:])
	return digest, nil
}

// pad assembles the final blocks from the trailing partial block: the
// rest of the message, one 0x80 byte, minimal zero fill and the 8-byte
// big-endian bit length. total is the full message length in bytes.
func pad(rest []byte, total uint64) []byte {
	padded := ints.AlignUp64(total+9, BlockSize)
	tail := make([]byte, padded-(total-uint64(len(rest))))
	n := copy(tail, rest)
	tail[n] = 0x80
	binary.BigEndian.PutUint64(tail[len(tail)-8:], total<<3)
	return tail
}

// serialize emits the running state big-endian word by word
func serialize(h *[5]uint32, out []byte) {
	for i, v := range h {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}
}

// Backend returns the name of the compressor variant compiled into
// this build.
func Backend() string {
	return backendName
}

// Accelerated reports whether the host CPU actually implements the ISA
// the compiled-in back-end models. Selection stays fixed at build time
// either way; this is a diagnostic for a dispatcher layered above.
func Accelerated() bool {
	return backendSupported()
}
