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

// Configuration is an instantaneous description of a single-tape run: the
// current state, the tape (with its head) and the number of steps executed
// so far.  The step counter is bookkeeping only; two configurations are
// observationally equal when state, head position and minimal tape content
// coincide, which is exactly what Compact captures.
type Configuration struct {
	// Current state.
	state string
	// The tape, including head position.
	tape *Tape
	// Steps executed so far.
	steps uint
}

// NewConfiguration constructs a configuration holding a given input word,
// starting in a given state.
func NewConfiguration(state string, input string, blank rune) *Configuration {
	return &Configuration{state, NewTapeFromInput(input, blank), 0}
}

// State returns the current state.
func (p *Configuration) State() string {
	return p.state
}

// SetState changes the current state.
func (p *Configuration) SetState(state string) {
	p.state = state
}

// Tape returns the underlying tape.
func (p *Configuration) Tape() *Tape {
	return p.tape
}

// StepCount returns the number of steps executed so far.
func (p *Configuration) StepCount() uint {
	return p.steps
}

// IncrementStepCount bumps the step counter by one.
func (p *Configuration) IncrementStepCount() {
	p.steps++
}

// Reset places a new input word on the tape, moves back into a given initial
// state and zeroes the step counter.
func (p *Configuration) Reset(initial string, input string) {
	p.state = initial
	p.tape.Reset(input)
	p.steps = 0
}

// Compact returns the canonical fingerprint of this configuration.  Two
// configurations produce the same fingerprint iff they agree on state,
// absolute head position and minimal tape content; trailing blank regions
// never participate because Content excludes them.
func (p *Configuration) Compact() string {
	return fmt.Sprintf("%s|%d|%s", p.state, p.tape.HeadPosition(), p.tape.Content())
}

// IsEquivalent checks whether two configurations are observationally equal
// for the purpose of step transitions.
func (p *Configuration) IsEquivalent(other *Configuration) bool {
	return p.state == other.state &&
		p.tape.HeadPosition() == other.tape.HeadPosition() &&
		p.tape.Content() == other.tape.Content()
}

// Clone constructs a deep copy of this configuration, including the tape.
// Snapshots appended to a trace must not share storage with the live
// configuration, since subsequent steps mutate it.
func (p *Configuration) Clone() *Configuration {
	return &Configuration{p.state, p.tape.Clone(), p.steps}
}

// String renders this configuration as a one-line summary.
func (p *Configuration) String() string {
	return fmt.Sprintf("step %d: state %s, head %d, reading '%c'",
		p.steps, p.state, p.tape.HeadPosition(), p.tape.Read())
}
