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

// MultiSimulator drives a k-tape machine.  The structure and the terminal
// classification mirror Simulator exactly; the read tuple is the vector of
// symbols under the k heads, and a step applies writes and movements
// element-wise.  Within each tape the order is write-then-move, so the write
// lands under the pre-movement head position; across tapes no ordering is
// required, since tapes are independent.
type MultiSimulator struct {
	// Machine being simulated (read-only here).
	machine *machine.MultiMachine
	// Current configuration.
	config *machine.MultiConfiguration
	// Execution trace, populated only when enabled.
	trace []*machine.MultiConfiguration
	// Whether snapshots are appended to the trace.
	traceEnabled bool
	// Step budget (0 = unbounded).
	maxSteps uint
	// Fingerprints of every configuration seen in this run.
	visited *hash.Set[Fingerprint]
	// Whether the last INFINITE was caused by a repeated configuration.
	loopDetected bool
	// Human-readable description of the last structural problem.
	lastError string
}

// NewMultiSimulator constructs a simulator for a given k-tape machine.
func NewMultiSimulator(m *machine.MultiMachine) *MultiSimulator {
	var (
		blank   = machine.DefaultBlank
		initial = ""
		ntapes  = uint(1)
	)
	//
	if m != nil {
		blank = m.BlankSymbol()
		initial = m.InitialState()
		ntapes = m.NumTapes()
	}
	//
	return &MultiSimulator{
		machine:  m,
		config:   machine.NewMultiConfiguration(initial, "", ntapes, blank),
		maxSteps: DefaultMaxSteps,
		visited:  hash.NewSet[Fingerprint](64),
	}
}

// Simulate runs the machine on a given input word (placed on the first tape)
// until a terminal condition holds, and classifies the outcome.
func (p *MultiSimulator) Simulate(word string, enableTrace bool, maxSteps uint) Result {
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

// Step executes one transition element-wise across the k tapes, then changes
// state and bumps the step counter.  Returns false when no transition is
// enabled, leaving the configuration untouched.
func (p *MultiSimulator) Step() bool {
	if p.machine == nil {
		return false
	}
	//
	lookup := p.machine.Transition(p.config.State(), p.config.ReadSymbols())
	//
	if lookup.IsEmpty() {
		return false
	}
	//
	var (
		transition = lookup.Unwrap()
		writes     = transition.Writes()
		movements  = transition.Movements()
	)
	// Apply writes and movements tape by tape (write-then-move within each)
	for i, tape := range p.config.Tapes() {
		tape.Write(writes[i])
		tape.Move(movements[i])
	}
	//
	p.config.SetState(transition.To())
	p.config.IncrementStepCount()
	//
	return true
}

// Reset prepares the simulator for a fresh run on a given input word,
// clearing the trace, the visited set and any previous error.
func (p *MultiSimulator) Reset(word string) {
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
func (p *MultiSimulator) IsAcceptingState() bool {
	return p.machine != nil && p.machine.IsAcceptState(p.config.State())
}

// HasApplicableTransition checks whether any transition is enabled in the
// current configuration.
func (p *MultiSimulator) HasApplicableTransition() bool {
	if p.machine == nil {
		return false
	}
	//
	return p.machine.Transition(p.config.State(), p.config.ReadSymbols()).HasValue()
}

// CurrentConfiguration returns the live configuration.
func (p *MultiSimulator) CurrentConfiguration() *machine.MultiConfiguration {
	return p.config
}

// Trace returns the snapshots recorded during the last run, beginning with
// the initial configuration.  Empty unless tracing was enabled.
func (p *MultiSimulator) Trace() []*machine.MultiConfiguration {
	return p.trace
}

// StepCount returns the number of steps executed in the current run.
func (p *MultiSimulator) StepCount() uint {
	return p.config.StepCount()
}

// SetTraceEnabled turns trace recording on or off for subsequent runs.
func (p *MultiSimulator) SetTraceEnabled(enable bool) {
	p.traceEnabled = enable
}

// SetMaxSteps changes the step budget (0 = unbounded).
func (p *MultiSimulator) SetMaxSteps(maxSteps uint) {
	p.maxSteps = maxSteps
}

// LoopDetected reports whether the last INFINITE result was caused by a
// repeated configuration, as opposed to budget exhaustion.
func (p *MultiSimulator) LoopDetected() bool {
	return p.loopDetected
}

// LastError returns a human-readable description of the last structural
// problem, or the empty string.
func (p *MultiSimulator) LastError() string {
	return p.lastError
}

// addToTrace snapshots the current configuration, if tracing is enabled.
func (p *MultiSimulator) addToTrace() {
	if p.traceEnabled {
		p.trace = append(p.trace, p.config.Clone())
	}
}
