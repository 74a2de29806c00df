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
	"strings"
)

// MultiConfiguration is an instantaneous description of a k-tape run: the
// current state, the k tapes (each with its own head) and the number of
// steps executed so far.
type MultiConfiguration struct {
	// Current state.
	state string
	// The k tapes, in order.
	tapes []*Tape
	// Steps executed so far.
	steps uint
}

// NewMultiConfiguration constructs a k-tape configuration holding a given
// input word on the first tape, with all other tapes blank.
func NewMultiConfiguration(state string, input string, ntapes uint, blank rune) *MultiConfiguration {
	tapes := make([]*Tape, ntapes)
	//
	for i := range tapes {
		tapes[i] = NewTape(blank)
	}
	//
	if len(tapes) > 0 {
		tapes[0].Reset(input)
	}
	//
	return &MultiConfiguration{state, tapes, 0}
}

// State returns the current state.
func (p *MultiConfiguration) State() string {
	return p.state
}

// SetState changes the current state.
func (p *MultiConfiguration) SetState(state string) {
	p.state = state
}

// NumTapes returns the number of tapes.
func (p *MultiConfiguration) NumTapes() uint {
	return uint(len(p.tapes))
}

// Tape returns the ith tape.
func (p *MultiConfiguration) Tape(i uint) *Tape {
	return p.tapes[i]
}

// Tapes returns all tapes, in order.
func (p *MultiConfiguration) Tapes() []*Tape {
	return p.tapes
}

// ReadSymbols returns the tuple of symbols currently under the k heads.
func (p *MultiConfiguration) ReadSymbols() []rune {
	reads := make([]rune, len(p.tapes))
	//
	for i, tape := range p.tapes {
		reads[i] = tape.Read()
	}
	//
	return reads
}

// StepCount returns the number of steps executed so far.
func (p *MultiConfiguration) StepCount() uint {
	return p.steps
}

// IncrementStepCount bumps the step counter by one.
func (p *MultiConfiguration) IncrementStepCount() {
	p.steps++
}

// Reset places a new input word on the first tape, blanks every other tape,
// moves back into a given initial state and zeroes the step counter.
func (p *MultiConfiguration) Reset(initial string, input string) {
	p.state = initial
	p.steps = 0
	//
	for i, tape := range p.tapes {
		if i == 0 {
			tape.Reset(input)
		} else {
			tape.Reset("")
		}
	}
}

// Compact returns the canonical fingerprint of this configuration: the
// state, the comma-separated head positions and the per-tape minimal
// contents, all '|'-separated.
func (p *MultiConfiguration) Compact() string {
	var builder strings.Builder
	//
	builder.WriteString(p.state)
	builder.WriteString("|")
	//
	for i, tape := range p.tapes {
		if i > 0 {
			builder.WriteString(",")
		}
		//
		fmt.Fprintf(&builder, "%d", tape.HeadPosition())
	}
	//
	for _, tape := range p.tapes {
		builder.WriteString("|")
		builder.WriteString(tape.Content())
	}
	//
	return builder.String()
}

// IsEquivalent checks whether two configurations are observationally equal
// for the purpose of step transitions.
func (p *MultiConfiguration) IsEquivalent(other *MultiConfiguration) bool {
	if p.state != other.state || len(p.tapes) != len(other.tapes) {
		return false
	}
	//
	for i, tape := range p.tapes {
		if tape.HeadPosition() != other.tapes[i].HeadPosition() {
			return false
		}
		//
		if tape.Content() != other.tapes[i].Content() {
			return false
		}
	}
	//
	return true
}

// Clone constructs a deep copy of this configuration, including every tape.
func (p *MultiConfiguration) Clone() *MultiConfiguration {
	tapes := make([]*Tape, len(p.tapes))
	//
	for i, tape := range p.tapes {
		tapes[i] = tape.Clone()
	}
	//
	return &MultiConfiguration{p.state, tapes, p.steps}
}

// String renders this configuration as a one-line summary.
func (p *MultiConfiguration) String() string {
	heads := make([]string, len(p.tapes))
	//
	for i, tape := range p.tapes {
		heads[i] = fmt.Sprintf("%d", tape.HeadPosition())
	}
	//
	return fmt.Sprintf("step %d: state %s, heads [%s], reading \"%s\"",
		p.steps, p.state, strings.Join(heads, ","), string(p.ReadSymbols()))
}
