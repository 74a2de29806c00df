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
	"fmt"

	"github.com/Guillermo-Gonzalez-Pineda/sim-mt-cc/pkg/machine"
	"github.com/Guillermo-Gonzalez-Pineda/sim-mt-cc/pkg/util/collection/hash"
)

// DefaultMaxSteps is the step budget applied when the caller does not choose
// one.  A budget of zero means unbounded, in which case loop detection is
// the only halting oracle for non-terminating machines.
const DefaultMaxSteps uint = 1000

// Simulator drives a single-tape machine through its transition function
// until one of four terminal conditions holds: the step budget is exhausted
// (INFINITE), the current state is accepting (ACCEPTED), no transition is
// enabled (REJECTED), or a configuration is revisited (INFINITE).  Checks
// happen in exactly that order each iteration: budget before accept, so a
// machine cannot evade INFINITE by reaching accept at the cap; accept before
// reject, so an accept state with no outgoing transition accepts.  An accept
// state is therefore terminally accepting even when a transition is enabled
// from it.
//
// The simulator is strictly single-threaded; the machine may be shared
// between simulators, but a simulator's configuration, trace and visited set
// are owned exclusively by it.
type Simulator struct {
	// Machine being simulated (read-only here).
	machine *machine.Machine
	// Current configuration.
	config *machine.Configuration
	// Execution trace, populated only when enabled.
	trace []*machine.Configuration
	// Whether snapshots are appended to the trace.
	traceEnabled bool
	// Step budget (0 = unbounded).
	maxSteps uint
	// Fingerprints of every configuration seen in this run.
	visited *hash.Set[Fingerprint]
	// Whether the last INFINITE was caused by a repeated configuration
	// rather than budget exhaustion.
	loopDetected bool
	// Human-readable description of the last structural problem.
	lastError string
}

// NewSimulator constructs a simulator for a given machine.
func NewSimulator(m *machine.Machine) *Simulator {
	var (
		blank   = machine.DefaultBlank
		initial = ""
	)
	//
	if m != nil {
		blank = m.BlankSymbol()
		initial = m.InitialState()
	}
	//
	return &Simulator{
		machine:  m,
		config:   machine.NewConfiguration(initial, "", blank),
		maxSteps: DefaultMaxSteps,
		visited:  hash.NewSet[Fingerprint](64),
	}
}

// Simulate runs the machine on a given input word until a terminal condition
// holds, and classifies the outcome.  Structural problems (absent machine,
// invalid machine, word outside the input alphabet) yield ERROR without
// executing a single step, and leave a description in LastError.
func (p *Simulator) Simulate(word string, enableTrace bool, maxSteps uint) Result {
	if p.machine == nil {
		p.lastError = "no machine attached to the simulator"
		return ERROR
	}
	//
	if !p.machine.IsValid() {
		p.lastError = "machine definition is not valid"
		return ERROR
	}
	//
	if bad := p.machine.InvalidSymbol(word); bad.HasValue() {
		p.lastError = fmt.Sprintf("input word contains symbol '%c' outside the input alphabet",
			bad.Unwrap())
		return ERROR
	}
	//
	p.traceEnabled = enableTrace
	p.maxSteps = maxSteps
	//
	p.Reset(word)
	// Record the initial configuration before any step fires
	p.addToTrace()
	p.visited.Insert(Fingerprint(p.config.Compact()))
	//
	for {
		// Budget first, so accept cannot mask exhaustion
		if p.maxSteps > 0 && p.config.StepCount() >= p.maxSteps {
			return INFINITE
		}
		// Accept before reject, so accepting sinks need no transitions
		if p.IsAcceptingState() {
			return ACCEPTED
		}
		//
		if !p.HasApplicableTransition() {
			return REJECTED
		}
		//
		if !p.Step() {
			p.lastError = "no transition applicable during step execution"
			return ERROR
		}
		// Loop detection runs after the step, so the initial configuration
		// is never flagged against itself
		if p.visited.Contains(Fingerprint(p.config.Compact())) {
			p.loopDetected = true
			return INFINITE
		}
		//
		p.visited.Insert(Fingerprint(p.config.Compact()))
		p.addToTrace()
	}
}

// Step executes one transition: write under the head, move the head, change
// state, bump the step counter.  Returns false when no transition is
// enabled, leaving the configuration untouched.
func (p *Simulator) Step() bool {
	if p.machine == nil {
		return false
	}
	//
	lookup := p.machine.Transition(p.config.State(), p.config.Tape().Read())
	//
	if lookup.IsEmpty() {
		return false
	}
	//
	transition := lookup.Unwrap()
	// Write lands under the pre-movement head position
	p.config.Tape().Write(transition.Write())
	p.config.Tape().Move(transition.Movement())
	p.config.SetState(transition.To())
	p.config.IncrementStepCount()
	//
	return true
}

// Reset prepares the simulator for a fresh run on a given input word,
// clearing the trace, the visited set and any previous error.
func (p *Simulator) Reset(word string) {
	if p.machine != nil {
		p.config.Reset(p.machine.InitialState(), word)
	}
	//
	p.trace = nil
	p.visited.Clear()
	p.loopDetected = false
	p.lastError = ""
}

// IsAcceptingState checks whether the current state is an accept state.
func (p *Simulator) IsAcceptingState() bool {
	return p.machine != nil && p.machine.IsAcceptState(p.config.State())
}

// HasApplicableTransition checks whether any transition is enabled in the
// current configuration.
func (p *Simulator) HasApplicableTransition() bool {
	if p.machine == nil {
		return false
	}
	//
	return p.machine.Transition(p.config.State(), p.config.Tape().Read()).HasValue()
}

// CurrentConfiguration returns the live configuration.
func (p *Simulator) CurrentConfiguration() *machine.Configuration {
	return p.config
}

// Trace returns the snapshots recorded during the last run, beginning with
// the initial configuration.  Empty unless tracing was enabled.
func (p *Simulator) Trace() []*machine.Configuration {
	return p.trace
}

// StepCount returns the number of steps executed in the current run.
func (p *Simulator) StepCount() uint {
	return p.config.StepCount()
}

// SetTraceEnabled turns trace recording on or off for subsequent runs.
func (p *Simulator) SetTraceEnabled(enable bool) {
	p.traceEnabled = enable
}

// SetMaxSteps changes the step budget (0 = unbounded).
func (p *Simulator) SetMaxSteps(maxSteps uint) {
	p.maxSteps = maxSteps
}

// LoopDetected reports whether the last INFINITE result was caused by a
// repeated configuration, as opposed to budget exhaustion.
func (p *Simulator) LoopDetected() bool {
	return p.loopDetected
}

// LastError returns a human-readable description of the last structural
// problem, or the empty string.
func (p *Simulator) LastError() string {
	return p.lastError
}

// addToTrace snapshots the current configuration, if tracing is enabled.
// Snapshots are deep copies, since later steps mutate the live tape.
func (p *Simulator) addToTrace() {
	if p.traceEnabled {
		p.trace = append(p.trace, p.config.Clone())
	}
}
