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

// Package packed implements the SHA-1 block compression with a 128-bit
// packed-integer message schedule. The eighty expanded words are
// materialized as twenty 4-lane vectors; each vector is produced by one
// of three XOR-and-rotate recurrences and consumed one lane per round
// by the scalar mixing function.
//
// The recurrences operate at three radii. The defining recurrence
//
//	W[t] = (W[t-3] ^ W[t-8] ^ W[t-14] ^ W[t-16]) rol 1
//
// references W[t-3], which for the top lane lies inside the vector
// being produced, so it needs a two-step fold. Iterating the recurrence
// until every index is a multiple of four gives the feedback-free forms
//
//	W[t] = (W[t-6] ^ W[t-16] ^ W[t-28] ^ W[t-32]) rol 2
//	W[t] = (W[t-12] ^ W[t-32] ^ W[t-56] ^ W[t-64]) rol 4
//
// used once enough history exists.
package packed

import (
	"math/bits"

	"github.com/SnellerInc/sha1/internal/simd"
)

// Name identifies this back-end.
const Name = "packed128"

// Supported reports whether the host can run this back-end.
// The packed variant models 128-bit integer SIMD available on every
// target this package emulates on, so it always runs.
func Supported() bool { return true }

// bswapMask reverses the bytes within each 32-bit lane, turning four
// big-endian message words into native layout in one shuffle.
var bswapMask = simd.Vec8x16{
	3, 2, 1, 0,
	7, 6, 5, 4,
	11, 10, 9, 8,
	15, 14, 13, 12,
}

// rotl rotates each lane of a left by imm bits
func rotl(imm uint8, a, r *simd.Vec32x4) {
	var lo, hi simd.Vec32x4
	simd.VPSLLD(imm, a, &hi)
	simd.VPSRLD(32-imm, a, &lo)
	simd.VPXORD(&hi, &lo, r)
}

// loadWords loads one 16-byte slab of the block and byte-swaps each
// lane, so that lane i holds message word 4j+i
func loadWords(block []byte) simd.Vec32x4 {
	q := simd.VMOVDQU32(block)
	simd.VPSHUFB(&bswapMask, &q, &q)
	return q.ToVec32x4()
}

// scheduleV1 produces W[t..t+3] for t in [16,32) from the four
// preceding vectors. The first three lanes are computed together; the
// top lane needs the just-produced bottom lane spliced back in.
func scheduleV1(m16, m12, m8, m4 *simd.Vec32x4) simd.Vec32x4 {
	var m3, m14, sum, top simd.Vec32x4

	// W[t-3] for the low three lanes lives one lane up in the
	// previous vector; the fourth input is produced below
	simd.VPSRLDQ(4, m4, &m3)
	simd.VPALIGNR(8, m12, m16, &m14)

	simd.VPXORD(&m3, m8, &sum)
	simd.VPXORD(&m14, &sum, &sum)
	simd.VPXORD(m16, &sum, &sum)
	rotl(1, &sum, &sum)

	// splice the fresh bottom word into lane 3 and fold it in
	simd.VPSLLDQ(12, &sum, &top)
	rotl(1, &top, &top)
	simd.VPXORD(&top, &sum, &sum)
	return sum
}

// scheduleV2 produces W[t..t+3] for t in [32,64): all four sources lie
// in strictly earlier vectors, leaving a single XOR-then-rotate with
// one splice at the 8-byte boundary
func scheduleV2(m32, m28, m16, m8, m4 *simd.Vec32x4) simd.Vec32x4 {
	var m6, sum simd.Vec32x4
	simd.VPALIGNR(8, m4, m8, &m6)

	simd.VPXORD(&m6, m16, &sum)
	simd.VPXORD(m28, &sum, &sum)
	simd.VPXORD(m32, &sum, &sum)
	rotl(2, &sum, &sum)
	return sum
}

// scheduleV3 produces W[t..t+3] for t in [64,80): every source is
// aligned to a vector boundary, so no splicing at all
func scheduleV3(m64, m56, m32, m12 *simd.Vec32x4) simd.Vec32x4 {
	var sum simd.Vec32x4
	simd.VPXORD(m12, m32, &sum)
	simd.VPXORD(m56, &sum, &sum)
	simd.VPXORD(m64, &sum, &sum)
	rotl(4, &sum, &sum)
	return sum
}

// Schedule expands a block into the twenty 4-lane vectors holding
// W0..W79 in ascending lane order
func Schedule(block []byte) [20]simd.Vec32x4 {
	var v [20]simd.Vec32x4

	v[0] = loadWords(block[0:])
	v[1] = loadWords(block[16:])
	v[2] = loadWords(block[32:])
	v[3] = loadWords(block[48:])

	v[4] = scheduleV1(&v[0], &v[1], &v[2], &v[3])
	v[5] = scheduleV1(&v[1], &v[2], &v[3], &v[4])
	v[6] = scheduleV1(&v[2], &v[3], &v[4], &v[5])
	v[7] = scheduleV1(&v[3], &v[4], &v[5], &v[6])

	for j := 8; j < 16; j++ {
		v[j] = scheduleV2(&v[j-8], &v[j-7], &v[j-4], &v[j-2], &v[j-1])
	}
	for j := 16; j < 20; j++ {
		v[j] = scheduleV3(&v[j-16], &v[j-14], &v[j-8], &v[j-3])
	}
	return v
}

var roundK = [4]uint32{0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xca62c1d6}

func choose(b, c, d uint32) uint32 {
	return (b & c) | (^b & d)
}

func parity(b, c, d uint32) uint32 {
	return b ^ c ^ d
}

func majority(b, c, d uint32) uint32 {
	return (b & c) | (b & d) | (c & d)
}

var roundF = [4]func(b, c, d uint32) uint32{choose, parity, majority, parity}

// Compress folds one 64-byte block into the running state and returns
// the updated state. W+K is formed once per vector; the round function
// consumes the four lanes in order.
func Compress(h [5]uint32, block []byte) [5]uint32 {
	v := Schedule(block)

	a, b, c, d, e := h[0], h[1], h[2], h[3], h[4]
	for j := range v {
		f := roundF[j/5]
		k := simd.VPBROADCASTD(roundK[j/5])

		var wk simd.Vec32x4
		simd.VPADDD(&v[j], &k, &wk)
		for _, w := range wk {
			t := bits.RotateLeft32(a, 5) + f(b, c, d) + e + w
			a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
		}
	}

	return [5]uint32{h[0] + a, h[1] + b, h[2] + c, h[3] + d, h[4] + e}
}
