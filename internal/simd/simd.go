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

// Package simd provides selected intrinsics for 128-bit SIMD emulation,
// covering the SSE integer subset, the x86 SHA extension and the ARMv8
// cryptographic extension. Each function reproduces the architectural
// semantics of the instruction it is named after, lane numbering included:
// lane 0 always denotes bits 31:0 of the 128-bit register.
package simd

import (
	"encoding/binary"
)

type Vec8x16 [16]uint8
type Vec32x4 [4]uint32

func (v Vec8x16) ToVec32x4() Vec32x4 {
	return Vec32x4{
		binary.LittleEndian.Uint32(v[0:4]),
		binary.LittleEndian.Uint32(v[4:8]),
		binary.LittleEndian.Uint32(v[8:12]),
		binary.LittleEndian.Uint32(v[12:16]),
	}
}

func (v Vec32x4) ToVec8x16() Vec8x16 {
	return Vec8x16{
		uint8(v[0] >> 0), uint8(v[0] >> 8), uint8(v[0] >> 16), uint8(v[0] >> 24),
		uint8(v[1] >> 0), uint8(v[1] >> 8), uint8(v[1] >> 16), uint8(v[1] >> 24),
		uint8(v[2] >> 0), uint8(v[2] >> 8), uint8(v[2] >> 16), uint8(v[2] >> 24),
		uint8(v[3] >> 0), uint8(v[3] >> 8), uint8(v[3] >> 16), uint8(v[3] >> 24),
	}
}
