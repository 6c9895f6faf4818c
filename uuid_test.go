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

package sha1_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/SnellerInc/sha1"
)

func TestNameUUID(t *testing.T) {
	names := []string{"", "sneller.io", "example.com", "a rather longer name that spans more than one block of the underlying digest"}
	spaces := []uuid.UUID{uuid.NameSpaceDNS, uuid.NameSpaceURL, uuid.NameSpaceOID}

	for _, space := range spaces {
		for _, name := range names {
			got, err := sha1.NameUUID(space, []byte(name))
			require.NoError(t, err)
			require.Equal(t, uuid.NewSHA1(space, []byte(name)), got)
			require.Equal(t, uuid.Version(5), got.Version())
			require.Equal(t, uuid.RFC4122, got.Variant())
		}
	}
}
