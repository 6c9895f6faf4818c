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

// Package armsha implements the SHA-1 block compression in terms of the
// ARMv8 cryptographic extension: SHA1SU0/SHA1SU1 expand the message
// schedule four words at a time, SHA1C/SHA1P/SHA1M perform four rounds
// per invocation, and SHA1H produces the next E value.
//
// State is a 4-lane ABCD vector in ascending order (A in lane 0) plus a
// scalar E. The round constant is added into the schedule vector before
// each mixing call; SHA1H must capture the next E from lane 0 before
// the mixer overwrites the vector.
package armsha

import (
	"golang.org/x/sys/cpu"

	"github.com/SnellerInc/sha1/internal/simd"
)

// Name identifies this back-end.
const Name = "arm-sha1"

// Supported reports whether the host actually carries the SHA-1 crypto
// instructions this back-end models.
func Supported() bool {
	return cpu.ARM64.HasSHA1
}

// loadWords loads one 16-byte slab and byte-swaps each lane, so that
// lane i holds message word 4j+i
func loadWords(block []byte) simd.Vec32x4 {
	q := simd.VLD1Q8(block)
	simd.VREV32Q8(&q, &q)
	return q.ToVec32x4()
}

var roundK = [4]uint32{0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xca62c1d6}

var mix = [4]func(abcd *simd.Vec32x4, e uint32, wk, r *simd.Vec32x4){
	simd.SHA1C,
	simd.SHA1P,
	simd.SHA1M,
	simd.SHA1P,
}

// Compress folds one 64-byte block into the running state and returns
// the updated state
func Compress(h [5]uint32, block []byte) [5]uint32 {
	var v [20]simd.Vec32x4
	v[0] = loadWords(block[0:])
	v[1] = loadWords(block[16:])
	v[2] = loadWords(block[32:])
	v[3] = loadWords(block[48:])

	for j := 4; j < 20; j++ {
		var t simd.Vec32x4
		simd.SHA1SU0(&v[j-4], &v[j-3], &v[j-2], &t)
		simd.SHA1SU1(&t, &v[j-1], &v[j])
	}

	abcd := simd.Vec32x4{h[0], h[1], h[2], h[3]}
	e := h[4]

	for j := 0; j < 20; j++ {
		k := simd.VDUPQ32(roundK[j/5])

		var wk simd.Vec32x4
		simd.VADDQ32(&v[j], &k, &wk)

		// next E comes from lane 0 of the pre-mix state
		next := simd.SHA1H(abcd[0])
		mix[j/5](&abcd, e, &wk, &abcd)
		e = next
	}

	return [5]uint32{h[0] + abcd[0], h[1] + abcd[1], h[2] + abcd[2], h[3] + abcd[3], h[4] + e}
}
