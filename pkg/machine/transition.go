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

import "fmt"

// Transition is an immutable record describing one edge of a single-tape
// transition function: in a given state, having read a given symbol, the
// machine writes a symbol, moves the head and changes state.
type Transition struct {
	// State this transition fires from.
	from string
	// Symbol which must be under the head for this transition to fire.
	read rune
	// State the machine moves into.
	to string
	// Symbol written under the head before moving.
	write rune
	// Head movement applied after writing.
	movement Movement
}

// NewTransition constructs a single-tape transition.
func NewTransition(from string, read rune, to string, write rune, movement Movement) Transition {
	return Transition{from, read, to, write, movement}
}

// From returns the state this transition fires from.
func (p Transition) From() string {
	return p.from
}

// Read returns the symbol this transition expects under the head.
func (p Transition) Read() rune {
	return p.read
}

// To returns the state this transition moves into.
func (p Transition) To() string {
	return p.to
}

// Write returns the symbol this transition writes under the head.
func (p Transition) Write() rune {
	return p.write
}

// Movement returns the head movement this transition applies.
func (p Transition) Movement() Movement {
	return p.movement
}

// IsApplicable checks whether this transition fires for a given state and
// symbol under the head.
func (p Transition) IsApplicable(state string, read rune) bool {
	return p.from == state && p.read == read
}

// String renders this transition in the machine definition file format.
func (p Transition) String() string {
	return fmt.Sprintf("%s %c %s %c %s", p.from, p.read, p.to, p.write, p.movement)
}
