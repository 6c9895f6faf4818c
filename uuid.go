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
	"github.com/google/uuid"
)

// NameUUID computes the RFC 4122 version-5 UUID of name within the
// namespace space, using this package's digest engine. The result is
// identical to uuid.NewSHA1 for every input.
func NameUUID(space uuid.UUID, name []byte) (uuid.UUID, error) {
	buf := make([]byte, 0, len(space)+len(name))
	buf = append(buf, space[:]...)
	buf = append(buf, name...)

	digest, err := Sum(buf)
	if err != nil {
		return uuid.UUID{}, err
	}

	var u uuid.UUID
	copy(u[:], digest[:])
	u[6] = (u[6] & 0x0f) | 0x50 // version 5
	u[8] = (u[8] & 0x3f) | 0x80 // RFC 4122 variant
	return u, nil
}
