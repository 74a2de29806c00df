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

	"github.com/Guillermo-Gonzalez-Pineda/sim-mt-cc/pkg/util"
)

// multiKey identifies the unique transition enabled in a given state with a
// given tuple of symbols under the heads.  The tuple is flattened into a
// string, which is well-defined because every tuple of a given machine has
// the same length k.
type multiKey struct {
	state string
	reads string
}

// MultiMachine holds a validated k-tape machine definition.  The structure
// mirrors Machine, except that the transition function is indexed by (state,
// read tuple) and every transition must operate on exactly k tapes.  Unlike
// the single-tape builder, AddTransition declares unseen states on the fly;
// IsValid enforces the same closure invariants in both arms regardless.
type MultiMachine struct {
	// State set Q.
	states map[string]bool
	// Input alphabet Σ.
	inputAlphabet map[rune]bool
	// Tape alphabet Γ.
	tapeAlphabet map[rune]bool
	// Initial state.
	initial string
	// Accept states F.
	accept map[string]bool
	// Blank symbol.
	blank rune
	// Number of tapes (k >= 1).
	ntapes uint
	// Transition function δ.
	transitions map[multiKey]MultiTransition
}

// NewMultiMachine constructs an empty k-tape machine with a given blank
// symbol.  A tape count of zero is promoted to one.
func NewMultiMachine(ntapes uint, blank rune) *MultiMachine {
	if ntapes == 0 {
		ntapes = 1
	}
	//
	m := &MultiMachine{
		states:        make(map[string]bool),
		inputAlphabet: make(map[rune]bool),
		tapeAlphabet:  make(map[rune]bool),
		accept:        make(map[string]bool),
		blank:         blank,
		ntapes:        ntapes,
		transitions:   make(map[multiKey]MultiTransition),
	}
	//
	m.tapeAlphabet[blank] = true
	//
	return m
}

// NumTapes returns the number of tapes k.
func (p *MultiMachine) NumTapes() uint {
	return p.ntapes
}

// SetNumTapes changes the number of tapes.  Like blank redefinition, this is
// forbidden once any transition has been recorded, since recorded tuples
// would no longer match.
func (p *MultiMachine) SetNumTapes(ntapes uint) error {
	if ntapes == p.ntapes {
		return nil
	} else if len(p.transitions) > 0 {
		return fmt.Errorf("cannot change tape count after transitions have been added")
	} else if ntapes == 0 {
		return fmt.Errorf("machine must have at least one tape")
	}
	//
	p.ntapes = ntapes
	//
	return nil
}

// AddState declares a state.
func (p *MultiMachine) AddState(state string) {
	p.states[state] = true
}

// AddInputSymbol declares an input symbol.  The blank symbol can never be an
// input symbol.
func (p *MultiMachine) AddInputSymbol(symbol rune) error {
	if symbol == p.blank {
		return fmt.Errorf("blank symbol '%c' cannot be an input symbol", symbol)
	}
	//
	p.inputAlphabet[symbol] = true
	p.tapeAlphabet[symbol] = true
	//
	return nil
}

// AddTapeSymbol declares a tape symbol.
func (p *MultiMachine) AddTapeSymbol(symbol rune) {
	p.tapeAlphabet[symbol] = true
}

// SetInitialState sets the initial state, declaring it if necessary.
func (p *MultiMachine) SetInitialState(state string) {
	p.states[state] = true
	p.initial = state
}

// AddAcceptState declares an accept state, declaring the state itself if
// necessary.
func (p *MultiMachine) AddAcceptState(state string) {
	p.states[state] = true
	p.accept[state] = true
}

// SetBlankSymbol changes the blank symbol.  Redefinition is forbidden once
// any transition has been recorded.
func (p *MultiMachine) SetBlankSymbol(symbol rune) error {
	if symbol == p.blank {
		return nil
	} else if len(p.transitions) > 0 {
		return fmt.Errorf("cannot redefine blank symbol after transitions have been added")
	} else if p.inputAlphabet[symbol] {
		return fmt.Errorf("blank symbol '%c' cannot be an input symbol", symbol)
	}
	//
	p.blank = symbol
	p.tapeAlphabet[symbol] = true
	//
	return nil
}

// AddTransition records a transition.  The transition must operate on
// exactly k tapes.  Unseen states are declared on the fly; read and write
// symbols are inserted into the tape alphabet.  At most one transition may
// exist for a given (state, read tuple) pair.
func (p *MultiMachine) AddTransition(transition MultiTransition) error {
	if transition.Arity() != p.ntapes {
		return fmt.Errorf("transition operates on %d tapes but machine has %d",
			transition.Arity(), p.ntapes)
	}
	//
	p.states[transition.From()] = true
	p.states[transition.To()] = true
	//
	for _, symbol := range transition.Reads() {
		p.tapeAlphabet[symbol] = true
	}
	//
	for _, symbol := range transition.Writes() {
		p.tapeAlphabet[symbol] = true
	}
	//
	key := multiKey{transition.From(), string(transition.Reads())}
	//
	if _, ok := p.transitions[key]; ok {
		return fmt.Errorf("duplicate transition for state '%s' and symbols '%s'",
			transition.From(), commaJoinRunes(transition.Reads()))
	}
	//
	p.transitions[key] = transition
	//
	return nil
}

// Transition returns the unique transition enabled in a given state with a
// given tuple of symbols under the heads, if any.  A tuple whose length
// differs from k never matches.
func (p *MultiMachine) Transition(state string, reads []rune) util.Option[MultiTransition] {
	if uint(len(reads)) != p.ntapes {
		return util.None[MultiTransition]()
	}
	//
	if transition, ok := p.transitions[multiKey{state, string(reads)}]; ok {
		return util.Some(transition)
	}
	//
	return util.None[MultiTransition]()
}

// States returns the declared states in lexicographic order.
func (p *MultiMachine) States() []string {
	return sortedKeys(p.states)
}

// InputAlphabet returns the input alphabet in code-point order.
func (p *MultiMachine) InputAlphabet() []rune {
	return sortedRunes(p.inputAlphabet)
}

// TapeAlphabet returns the tape alphabet in code-point order.
func (p *MultiMachine) TapeAlphabet() []rune {
	return sortedRunes(p.tapeAlphabet)
}

// InitialState returns the initial state.
func (p *MultiMachine) InitialState() string {
	return p.initial
}

// AcceptStates returns the accept states in lexicographic order.
func (p *MultiMachine) AcceptStates() []string {
	return sortedKeys(p.accept)
}

// BlankSymbol returns the blank symbol.
func (p *MultiMachine) BlankSymbol() rune {
	return p.blank
}

// IsAcceptState checks whether a given state is an accept state.
func (p *MultiMachine) IsAcceptState(state string) bool {
	return p.accept[state]
}

// IsInputSymbol checks whether a given symbol belongs to the input alphabet.
func (p *MultiMachine) IsInputSymbol(symbol rune) bool {
	return p.inputAlphabet[symbol]
}

// InvalidSymbol returns the first symbol of a given word which falls outside
// the input alphabet, if any.
func (p *MultiMachine) InvalidSymbol(word string) util.Option[rune] {
	for _, symbol := range word {
		if !p.inputAlphabet[symbol] {
			return util.Some(symbol)
		}
	}
	//
	return util.None[rune]()
}

// Transitions returns every transition, ordered by source state then read
// tuple.
func (p *MultiMachine) Transitions() []MultiTransition {
	keys := make([]multiKey, 0, len(p.transitions))
	//
	for key := range p.transitions {
		keys = append(keys, key)
	}
	//
	slices.SortFunc(keys, func(l, r multiKey) int {
		if c := strings.Compare(l.state, r.state); c != 0 {
			return c
		}
		//
		return strings.Compare(l.reads, r.reads)
	})
	//
	transitions := make([]MultiTransition, len(keys))
	//
	for i, key := range keys {
		transitions[i] = p.transitions[key]
	}
	//
	return transitions
}

// TransitionCount returns the number of recorded transitions.
func (p *MultiMachine) TransitionCount() uint {
	return uint(len(p.transitions))
}

// IsValid checks the structural invariants of this machine.  These are the
// same closure checks as for the single-tape machine, plus the requirement
// that every transition operates on exactly k tapes.
func (p *MultiMachine) IsValid() bool {
	if len(p.states) == 0 || p.ntapes == 0 {
		return false
	}
	//
	if p.initial == "" || !p.states[p.initial] {
		return false
	}
	//
	for state := range p.accept {
		if !p.states[state] {
			return false
		}
	}
	//
	if !p.tapeAlphabet[p.blank] || p.inputAlphabet[p.blank] {
		return false
	}
	//
	for symbol := range p.inputAlphabet {
		if !p.tapeAlphabet[symbol] {
			return false
		}
	}
	//
	for _, transition := range p.transitions {
		if transition.Arity() != p.ntapes {
			return false
		}
		//
		if !p.states[transition.From()] || !p.states[transition.To()] {
			return false
		}
		//
		for _, symbol := range transition.Reads() {
			if !p.tapeAlphabet[symbol] {
				return false
			}
		}
		//
		for _, symbol := range transition.Writes() {
			if !p.tapeAlphabet[symbol] {
				return false
			}
		}
	}
	//
	return true
}

// Info renders a human-readable summary of this machine.
func (p *MultiMachine) Info() string {
	var builder strings.Builder
	//
	fmt.Fprintf(&builder, "tapes: %d\n", p.ntapes)
	fmt.Fprintf(&builder, "states (%d): {%s}\n", len(p.states), strings.Join(p.States(), ", "))
	fmt.Fprintf(&builder, "initial state: %s\n", p.initial)
	fmt.Fprintf(&builder, "accept states (%d): {%s}\n", len(p.accept),
		strings.Join(p.AcceptStates(), ", "))
	fmt.Fprintf(&builder, "input alphabet (%d): {%s}\n", len(p.inputAlphabet),
		joinRunes(p.InputAlphabet()))
	fmt.Fprintf(&builder, "tape alphabet (%d): {%s}\n", len(p.tapeAlphabet),
		joinRunes(p.TapeAlphabet()))
	fmt.Fprintf(&builder, "blank symbol: '%c'\n", p.blank)
	fmt.Fprintf(&builder, "transitions: %d\n", len(p.transitions))
	fmt.Fprintf(&builder, "valid: %t", p.IsValid())
	//
	return builder.String()
}

// Clear removes every state, symbol and transition, retaining the blank
// symbol and the tape count.
func (p *MultiMachine) Clear() {
	clear(p.states)
	clear(p.inputAlphabet)
	clear(p.tapeAlphabet)
	clear(p.accept)
	clear(p.transitions)
	//
	p.initial = ""
	p.tapeAlphabet[p.blank] = true
}
