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

// This file models the ARMv8 AdvSIMD subset used by the SHA-1 crypto
// extension. Unlike the x86 SHA instructions, the ARM ones keep the
// words in ascending lane order: W[4j] and A live in lane 0.

// VLD1Q8 performs a 16-byte load of p[0:16]
func VLD1Q8(p []byte) Vec8x16 {
	var r Vec8x16
	copy(r[:], p[:16])
	return r
}

// VREV32Q8 reverses the bytes within each 32-bit element
func VREV32Q8(a, r *Vec8x16) {
	var t Vec8x16
	for i := 0; i < 16; i += 4 {
		t[i+0] = a[i+3]
		t[i+1] = a[i+2]
		t[i+2] = a[i+1]
		t[i+3] = a[i+0]
	}
	*r = t
}

func VEORQ32(a, b, r *Vec32x4) {
	for i := range *r {
		r[i] = a[i] ^ b[i]
	}
}

func VADDQ32(a, b, r *Vec32x4) {
	for i := range *r {
		r[i] = a[i] + b[i]
	}
}

// VDUPQ32 broadcasts x to all four lanes
func VDUPQ32(x uint32) Vec32x4 {
	return Vec32x4{x, x, x, x}
}

// VEXTQ32 extracts four elements starting at element imm from the
// concatenation a:b (a supplies the low elements)
func VEXTQ32(imm uint8, a, b, r *Vec32x4) {
	var t Vec32x4
	for i := 0; i < 4; i++ {
		j := i + int(imm)
		if j < 4 {
			t[i] = a[j]
		} else {
			t[i] = b[j-4]
		}
	}
	*r = t
}

// SHA1H rotates e left by 30 bits, yielding the next E value
func SHA1H(e uint32) uint32 {
	return bits.RotateLeft32(e, 30)
}

// SHA1SU0 XORs the W[t-16], W[t-14] and W[t-8] contributions for four
// schedule words
func SHA1SU0(a, b, c, r *Vec32x4) {
	var mid Vec32x4
	VEXTQ32(2, a, b, &mid)
	*r = Vec32x4{
		a[0] ^ mid[0] ^ c[0],
		a[1] ^ mid[1] ^ c[1],
		a[2] ^ mid[2] ^ c[2],
		a[3] ^ mid[3] ^ c[3],
	}
}

// SHA1SU1 folds the W[t-3] contribution into the SHA1SU0 intermediate
// and applies the rotate; the top lane depends on the freshly produced
// bottom lane
func SHA1SU1(a, b, r *Vec32x4) {
	t0 := a[0] ^ b[1]
	t1 := a[1] ^ b[2]
	t2 := a[2] ^ b[3]
	t3 := a[3]
	w16 := bits.RotateLeft32(t0, 1)
	w17 := bits.RotateLeft32(t1, 1)
	w18 := bits.RotateLeft32(t2, 1)
	w19 := bits.RotateLeft32(t3, 1) ^ bits.RotateLeft32(t0, 2)
	*r = Vec32x4{w16, w17, w18, w19}
}

func sha1choose(b, c, d uint32) uint32 {
	return (b & c) | (^b & d)
}

func sha1parity(b, c, d uint32) uint32 {
	return b ^ c ^ d
}

func sha1majority(b, c, d uint32) uint32 {
	return (b & c) | (b & d) | (c & d)
}

func sha1rounds4(f func(b, c, d uint32) uint32, abcd *Vec32x4, e uint32, wk, r *Vec32x4) {
	a, b, c, d := abcd[0], abcd[1], abcd[2], abcd[3]
	for i := 0; i < 4; i++ {
		t := bits.RotateLeft32(a, 5) + f(b, c, d) + e + wk[i]
		e = d
		d = c
		c = bits.RotateLeft32(b, 30)
		b = a
		a = t
	}
	*r = Vec32x4{a, b, c, d}
}

// SHA1C executes four rounds with the choice function
func SHA1C(abcd *Vec32x4, e uint32, wk, r *Vec32x4) {
	sha1rounds4(sha1choose, abcd, e, wk, r)
}

// SHA1P executes four rounds with the parity function
func SHA1P(abcd *Vec32x4, e uint32, wk, r *Vec32x4) {
	sha1rounds4(sha1parity, abcd, e, wk, r)
}

// SHA1M executes four rounds with the majority function
func SHA1M(abcd *Vec32x4, e uint32, wk, r *Vec32x4) {
	sha1rounds4(sha1majority, abcd, e, wk, r)
}
