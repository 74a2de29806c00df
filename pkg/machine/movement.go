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
package machine

import (
	"fmt"
	"unicode"
)

// Movement describes the displacement a transition applies to a tape head.
type Movement int8

// LEFT moves the head one cell towards lower positions.
const LEFT Movement = -1

// STAY leaves the head where it is.
const STAY Movement = 0

// RIGHT moves the head one cell towards higher positions.
const RIGHT Movement = 1

// Offset returns the signed displacement this movement applies to a head
// position.
func (p Movement) Offset() int {
	return int(p)
}

// String returns the single-letter rendering of this movement, as used in
// machine definition files.
func (p Movement) String() string {
	switch p {
	case LEFT:
		return "L"
	case RIGHT:
		return "R"
	default:
		return "S"
	}
}

// ParseMovement maps a movement letter onto its Movement value.  Accepted
// letters are L, R and S (case-insensitive).
func ParseMovement(letter rune) (Movement, error) {
	switch unicode.ToUpper(letter) {
	case 'L':
		return LEFT, nil
	case 'R':
		return RIGHT, nil
	case 'S':
		return STAY, nil
	default:
		return STAY, fmt.Errorf("invalid movement '%c' (expected L, R or S)", letter)
	}
}
