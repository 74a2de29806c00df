// Copyright Guillermo González Pineda
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package simulator

import (
	"hash/fnv"

	"github.com/Guillermo-Gonzalez-Pineda/sim-mt-cc/pkg/util/collection/hash"
)

// Fingerprint is the canonical rendering of a configuration used for loop
// detection.  Two configurations have equal fingerprints iff they are
// indistinguishable for deterministic step execution, so membership in the
// visited set proves the run has entered a cycle.  Soundness requires
// collision-safe membership, hence this implements hash.Hasher rather than
// feeding raw hashcodes into a plain map.
type Fingerprint string

// Equals compares two fingerprints for equality.
func (p Fingerprint) Equals(other Fingerprint) bool {
	return p == other
}

// Hash generates a 64-bit hashcode from the underlying string.
func (p Fingerprint) Hash() uint64 {
	hasher := fnv.New64a()
	hasher.Write([]byte(p))
	// Done
	return hasher.Sum64()
}

var _ hash.Hasher[Fingerprint] = Fingerprint("")
