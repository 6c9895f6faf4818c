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

//go:build arm64 && !purego

package sha1

import (
	"github.com/SnellerInc/sha1/internal/armsha"
)

const backendName = armsha.Name

func compress(h [5]uint32, block []byte) [5]uint32 {
	return armsha.Compress(h, block)
}

func backendSupported() bool {
	return armsha.Supported()
}
