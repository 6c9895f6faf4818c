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

package simd

import (
	"math/bits"
)

// This file models the SSE2/SSSE3 integer subset and the SHA extension.
// The x86 convention applies throughout: byte shifts move data toward
// lane 0 for "right" and away from lane 0 for "left", and the SHA1*
// instructions expect the most significant lane first (W0 and A live in
// lane 3).

// VMOVDQU32 performs an unaligned 16-byte load of p[0:16]
func VMOVDQU32(p []byte) Vec8x16 {
	var r Vec8x16
	copy(r[:], p[:16])
	return r
}

// VPBROADCASTD broadcasts x to all four lanes
func VPBROADCASTD(x uint32) Vec32x4 {
	return Vec32x4{x, x, x, x}
}

func VPXORD(a, b, r *Vec32x4) {
	for i := range *r {
		r[i] = a[i] ^ b[i]
	}
}

func VPADDD(a, b, r *Vec32x4) {
	for i := range *r {
		r[i] = a[i] + b[i]
	}
}

func VPSLLD(imm uint8, a, r *Vec32x4) {
	for i := range *r {
		r[i] = a[i] << imm
	}
}

func VPSRLD(imm uint8, a, r *Vec32x4) {
	for i := range *r {
		r[i] = a[i] >> imm
	}
}

// VPSLLDQ shifts the whole 128-bit register left by imm bytes,
// shifting in zeros
func VPSLLDQ(imm uint8, a, r *Vec32x4) {
	ab := a.ToVec8x16()
	var rb Vec8x16
	for i := int(imm); i < 16; i++ {
		rb[i] = ab[i-int(imm)]
	}
	*r = rb.ToVec32x4()
}

// VPSRLDQ shifts the whole 128-bit register right by imm bytes,
// shifting in zeros
func VPSRLDQ(imm uint8, a, r *Vec32x4) {
	ab := a.ToVec8x16()
	var rb Vec8x16
	for i := 0; i+int(imm) < 16; i++ {
		rb[i] = ab[i+int(imm)]
	}
	*r = rb.ToVec32x4()
}

// VPALIGNR extracts 16 bytes at byte offset imm from the 256-bit
// concatenation hi:lo
func VPALIGNR(imm uint8, hi, lo, r *Vec32x4) {
	hb := hi.ToVec8x16()
	lb := lo.ToVec8x16()
	var rb Vec8x16
	for i := 0; i < 16; i++ {
		j := i + int(imm)
		if j < 16 {
			rb[i] = lb[j]
		} else if j < 32 {
			rb[i] = hb[j-16]
		}
	}
	*r = rb.ToVec32x4()
}

// VPSHUFB permutes the bytes of a according to mask; a set msb in a
// mask byte zeroes the destination byte
func VPSHUFB(mask, a, r *Vec8x16) {
	var t Vec8x16
	for i := range t {
		if mask[i]&0x80 == 0 {
			t[i] = a[mask[i]&0x0f]
		}
	}
	*r = t
}

// SHA1MSG1 performs the first half of the message-schedule pairing:
// the XOR of the W[t-16] and W[t-14] contributions for four words
func SHA1MSG1(a, b, r *Vec32x4) {
	w0, w1, w2, w3 := a[3], a[2], a[1], a[0]
	w4, w5 := b[3], b[2]
	*r = Vec32x4{w5 ^ w3, w4 ^ w2, w3 ^ w1, w2 ^ w0}
}

// SHA1MSG2 finalizes the schedule computation, folding in the W[t-3]
// contribution and the rotate, including the intra-vector dependency
// of the top word on the bottom one
func SHA1MSG2(a, b, r *Vec32x4) {
	w13, w14, w15 := b[2], b[1], b[0]
	w16 := bits.RotateLeft32(a[3]^w13, 1)
	w17 := bits.RotateLeft32(a[2]^w14, 1)
	w18 := bits.RotateLeft32(a[1]^w15, 1)
	w19 := bits.RotateLeft32(a[0]^w16, 1)
	*r = Vec32x4{w19, w18, w17, w16}
}

// SHA1NEXTE adds the rotated E value (lane 3 of a) into lane 3 of b,
// producing the "E + W" addend vector for the next SHA1RNDS4
func SHA1NEXTE(a, b, r *Vec32x4) {
	*r = Vec32x4{b[0], b[1], b[2], b[3] + bits.RotateLeft32(a[3], 30)}
}

// SHA1RNDS4 executes four SHA-1 rounds. abcd holds the working state
// with A in lane 3; ew holds the four schedule words with E already
// folded into the first one (lane 3). The immediate selects the round
// function and constant: 0 choice, 1 parity, 2 majority, 3 parity.
func SHA1RNDS4(imm uint8, abcd, ew, r *Vec32x4) {
	var f func(b, c, d uint32) uint32
	var k uint32
	switch imm & 3 {
	case 0:
		f = func(b, c, d uint32) uint32 { return (b & c) | (^b & d) }
		k = 0x5a827999
	case 1:
		f = func(b, c, d uint32) uint32 { return b ^ c ^ d }
		k = 0x6ed9eba1
	case 2:
		f = func(b, c, d uint32) uint32 { return (b & c) | (b & d) | (c & d) }
		k = 0x8f1bbcdc
	case 3:
		f = func(b, c, d uint32) uint32 { return b ^ c ^ d }
		k = 0xca62c1d6
	}

	a, b, c, d := abcd[3], abcd[2], abcd[1], abcd[0]
	w := [4]uint32{ew[3], ew[2], ew[1], ew[0]}

	// round 1: E arrives pre-added to w[0]
	e := uint32(0)
	for i := 0; i < 4; i++ {
		t := bits.RotateLeft32(a, 5) + f(b, c, d) + e + w[i] + k
		e = d
		d = c
		c = bits.RotateLeft32(b, 30)
		b = a
		a = t
	}
	*r = Vec32x4{d, c, b, a}
}
