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

// Package shani implements the SHA-1 block compression in terms of the
// x86 SHA extension: SHA1MSG1/SHA1MSG2 pair up the message expansion
// four words at a time, SHA1RNDS4 performs four rounds per invocation
// with the round constant baked into its immediate, and SHA1NEXTE
// carries the E value between invocations.
//
// The extension keeps everything in most-significant-first lane order:
// W[4j] and A occupy lane 3. The caller sees canonical H0..H4 order;
// the packing is internal to this back-end.
package shani

import (
	"github.com/klauspost/cpuid/v2"

	"github.com/SnellerInc/sha1/internal/simd"
)

// Name identifies this back-end.
const Name = "x86-sha"

// Supported reports whether the host actually carries the SHA extension
// this back-end models.
func Supported() bool {
	return cpuid.CPU.Supports(cpuid.SHA, cpuid.SSSE3)
}

// bswapMask reverses all sixteen bytes, mapping the four big-endian
// message words of a slab onto descending lanes in native layout
var bswapMask = simd.Vec8x16{
	15, 14, 13, 12,
	11, 10, 9, 8,
	7, 6, 5, 4,
	3, 2, 1, 0,
}

// loadWords loads one 16-byte slab so that lane 3 holds message word 4j
func loadWords(block []byte) simd.Vec32x4 {
	q := simd.VMOVDQU32(block)
	simd.VPSHUFB(&bswapMask, &q, &q)
	return q.ToVec32x4()
}

// Compress folds one 64-byte block into the running state and returns
// the updated state
func Compress(h [5]uint32, block []byte) [5]uint32 {
	var v [20]simd.Vec32x4
	v[0] = loadWords(block[0:])
	v[1] = loadWords(block[16:])
	v[2] = loadWords(block[32:])
	v[3] = loadWords(block[48:])

	// canonical three-input expansion pattern:
	// v[j] = msg2(msg1(v[j-4], v[j-3]) ^ v[j-2], v[j-1])
	for j := 4; j < 20; j++ {
		var t simd.Vec32x4
		simd.SHA1MSG1(&v[j-4], &v[j-3], &t)
		simd.VPXORD(&t, &v[j-2], &t)
		simd.SHA1MSG2(&t, &v[j-1], &v[j])
	}

	abcd := simd.Vec32x4{h[3], h[2], h[1], h[0]}
	hE := simd.Vec32x4{0, 0, 0, h[4]}

	var ew simd.Vec32x4
	simd.VPADDD(&hE, &v[0], &ew)

	for j := 0; j < 20; j++ {
		var next simd.Vec32x4
		if j < 19 {
			simd.SHA1NEXTE(&abcd, &v[j+1], &next)
		} else {
			// the last carry folds H4 instead of a schedule vector,
			// so E leaves the loop with the state addition done
			simd.SHA1NEXTE(&abcd, &hE, &next)
		}
		simd.SHA1RNDS4(uint8(j/5), &abcd, &ew, &abcd)
		ew = next
	}

	return [5]uint32{
		abcd[3] + h[0],
		abcd[2] + h[1],
		abcd[1] + h[2],
		abcd[0] + h[3],
		ew[3],
	}
}
