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
	"slices"
	"strings"
)

// MultiTransition is an immutable record describing one edge of a k-tape
// transition function.  It is well-formed iff its read, write and movement
// vectors all share the same non-zero length k; the constructor rejects
// anything else.
type MultiTransition struct {
	// State this transition fires from.
	from string
	// Symbols which must be under the k heads for this transition to fire.
	reads []rune
	// State the machine moves into.
	to string
	// Symbols written under the k heads before moving.
	writes []rune
	// Head movements applied, one per tape.
	movements []Movement
}

// NewMultiTransition constructs a k-tape transition, or fails if the three
// vectors do not share the same non-zero length.
func NewMultiTransition(from string, reads []rune, to string, writes []rune,
	movements []Movement) (MultiTransition, error) {
	//
	if len(reads) == 0 {
		return MultiTransition{}, fmt.Errorf("transition must operate on at least one tape")
	} else if len(reads) != len(writes) || len(reads) != len(movements) {
		return MultiTransition{}, fmt.Errorf(
			"mismatched transition vectors (%d read symbols, %d write symbols, %d movements)",
			len(reads), len(writes), len(movements))
	}
	//
	return MultiTransition{from, slices.Clone(reads), to, slices.Clone(writes),
		slices.Clone(movements)}, nil
}

// LiftTransition lifts a single-tape transition onto k tapes, making it
// operate on a designated target tape whilst reading blank, writing blank
// and staying put on every other tape.  This is a construction convenience
// only, never an execution pathway.
func LiftTransition(transition Transition, ntapes uint, target uint, blank rune) (MultiTransition, error) {
	if target >= ntapes {
		return MultiTransition{}, fmt.Errorf("target tape %d out of range (machine has %d tapes)",
			target, ntapes)
	}
	//
	reads := make([]rune, ntapes)
	writes := make([]rune, ntapes)
	movements := make([]Movement, ntapes)
	//
	for i := uint(0); i < ntapes; i++ {
		if i == target {
			reads[i] = transition.Read()
			writes[i] = transition.Write()
			movements[i] = transition.Movement()
		} else {
			reads[i] = blank
			writes[i] = blank
			movements[i] = STAY
		}
	}
	//
	return NewMultiTransition(transition.From(), reads, transition.To(), writes, movements)
}

// From returns the state this transition fires from.
func (p MultiTransition) From() string {
	return p.from
}

// Reads returns the symbols this transition expects under the heads.
func (p MultiTransition) Reads() []rune {
	return p.reads
}

// To returns the state this transition moves into.
func (p MultiTransition) To() string {
	return p.to
}

// Writes returns the symbols this transition writes under the heads.
func (p MultiTransition) Writes() []rune {
	return p.writes
}

// Movements returns the per-tape head movements this transition applies.
func (p MultiTransition) Movements() []Movement {
	return p.movements
}

// Arity returns the number of tapes this transition operates on.
func (p MultiTransition) Arity() uint {
	return uint(len(p.reads))
}

// IsApplicable checks whether this transition fires for a given state and
// tuple of symbols under the heads.
func (p MultiTransition) IsApplicable(state string, reads []rune) bool {
	return p.from == state && slices.Equal(p.reads, reads)
}

// String renders this transition in the machine definition file format.
func (p MultiTransition) String() string {
	var (
		reads     = commaJoinRunes(p.reads)
		writes    = commaJoinRunes(p.writes)
		movements = make([]string, len(p.movements))
	)
	//
	for i, m := range p.movements {
		movements[i] = m.String()
	}
	//
	return fmt.Sprintf("%s %s %s %s %s", p.from, reads, p.to, writes,
		strings.Join(movements, ","))
}

func commaJoinRunes(symbols []rune) string {
	parts := make([]string, len(symbols))
	//
	for i, s := range symbols {
		parts[i] = string(s)
	}
	//
	return strings.Join(parts, ",")
}
