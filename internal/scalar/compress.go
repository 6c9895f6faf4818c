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

// Package scalar implements the portable SHA-1 block compression used
// as the fallback back-end and as the reference for the accelerated ones.
package scalar

import (
	"encoding/binary"
	"math/bits"
)

const (
	k0 = 0x5a827999
	k1 = 0x6ed9eba1
	k2 = 0x8f1bbcdc
	k3 = 0xca62c1d6
)

// Name identifies this back-end.
const Name = "scalar"

// Supported reports whether the host can run this back-end.
// The scalar variant runs everywhere.
func Supported() bool { return true }

// Compress folds one 64-byte block into the running state and returns
// the updated state. The schedule is kept in a rolling 16-word window;
// the expansion recurrence is applied in place.
func Compress(h [5]uint32, block []byte) [5]uint32 {
	_ = block[63]

	var w [16]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}

	a, b, c, d, e := h[0], h[1], h[2], h[3], h[4]

	i := 0
	for ; i < 16; i++ {
		f := (b & c) | (^b & d)
		t := bits.RotateLeft32(a, 5) + f + e + w[i&0xf] + k0
		a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
	}
	for ; i < 20; i++ {
		tmp := w[(i-3)&0xf] ^ w[(i-8)&0xf] ^ w[(i-14)&0xf] ^ w[i&0xf]
		w[i&0xf] = bits.RotateLeft32(tmp, 1)

		f := (b & c) | (^b & d)
		t := bits.RotateLeft32(a, 5) + f + e + w[i&0xf] + k0
		a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
	}
	for ; i < 40; i++ {
		tmp := w[(i-3)&0xf] ^ w[(i-8)&0xf] ^ w[(i-14)&0xf] ^ w[i&0xf]
		w[i&0xf] = bits.RotateLeft32(tmp, 1)

		f := b ^ c ^ d
		t := bits.RotateLeft32(a, 5) + f + e + w[i&0xf] + k1
		a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
	}
	for ; i < 60; i++ {
		tmp := w[(i-3)&0xf] ^ w[(i-8)&0xf] ^ w[(i-14)&0xf] ^ w[i&0xf]
		w[i&0xf] = bits.RotateLeft32(tmp, 1)

		f := (b & c) | (b & d) | (c & d)
		t := bits.RotateLeft32(a, 5) + f + e + w[i&0xf] + k2
		a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
	}
	for ; i < 80; i++ {
		tmp := w[(i-3)&0xf] ^ w[(i-8)&0xf] ^ w[(i-14)&0xf] ^ w[i&0xf]
		w[i&0xf] = bits.RotateLeft32(tmp, 1)

		f := b ^ c ^ d
		t := bits.RotateLeft32(a, 5) + f + e + w[i&0xf] + k3
		a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
	}

	return [5]uint32{h[0] + a, h[1] + b, h[2] + c, h[3] + d, h[4] + e}
}

// Schedule materializes all eighty expanded message words of a block.
// The accelerated back-ends are validated against it.
func Schedule(block []byte) [80]uint32 {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[i*4:])
	}
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}
	return w
}
