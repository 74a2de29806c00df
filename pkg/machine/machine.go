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

// DefaultBlank is the blank symbol assumed before a definition declares one.
const DefaultBlank rune = '.'

// monoKey identifies the unique transition enabled in a given state with a
// given symbol under the head.
type monoKey struct {
	state string
	read  rune
}

// Machine holds a validated single-tape machine definition: the state set Q,
// input alphabet Σ, tape alphabet Γ, initial state, accept states, blank
// symbol and the transition function δ indexed by (state, read symbol).  It
// is mutated only through its builder methods and is read-only during
// simulation.
type Machine struct {
	// State set Q.
	states map[string]bool
	// Input alphabet Σ.
	inputAlphabet map[rune]bool
	// Tape alphabet Γ (always a superset of Σ, always containing blank).
	tapeAlphabet map[rune]bool
	// Initial state.
	initial string
	// Accept states F.
	accept map[string]bool
	// Blank symbol.
	blank rune
	// Transition function δ.
	transitions map[monoKey]Transition
}

// NewMachine constructs an empty machine with a given blank symbol.
func NewMachine(blank rune) *Machine {
	m := &Machine{
		states:        make(map[string]bool),
		inputAlphabet: make(map[rune]bool),
		tapeAlphabet:  make(map[rune]bool),
		accept:        make(map[string]bool),
		blank:         blank,
		transitions:   make(map[monoKey]Transition),
	}
	// Blank is always a tape symbol
	m.tapeAlphabet[blank] = true
	//
	return m
}

// AddState declares a state.
func (p *Machine) AddState(state string) {
	p.states[state] = true
}

// AddInputSymbol declares an input symbol.  The blank symbol can never be an
// input symbol.
func (p *Machine) AddInputSymbol(symbol rune) error {
	if symbol == p.blank {
		return fmt.Errorf("blank symbol '%c' cannot be an input symbol", symbol)
	}
	// Input symbols are tape symbols as well
	p.inputAlphabet[symbol] = true
	p.tapeAlphabet[symbol] = true
	//
	return nil
}

// AddTapeSymbol declares a tape symbol.
func (p *Machine) AddTapeSymbol(symbol rune) {
	p.tapeAlphabet[symbol] = true
}

// SetInitialState sets the initial state, declaring it if necessary.
func (p *Machine) SetInitialState(state string) {
	p.states[state] = true
	p.initial = state
}

// AddAcceptState declares an accept state, declaring the state itself if
// necessary.
func (p *Machine) AddAcceptState(state string) {
	p.states[state] = true
	p.accept[state] = true
}

// SetBlankSymbol changes the blank symbol.  Redefinition is forbidden once
// any transition has been recorded, because already-indexed transitions may
// silently depend on the previous blank.  The previous blank remains a tape
// symbol.
func (p *Machine) SetBlankSymbol(symbol rune) error {
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

// AddTransition records a transition.  Both states must have been declared
// already; the read and write symbols are tape symbols by construction, so
// they are inserted into the tape alphabet automatically.  At most one
// transition may exist for a given (state, read symbol) pair.
func (p *Machine) AddTransition(transition Transition) error {
	if !p.states[transition.From()] {
		return fmt.Errorf("undeclared state '%s'", transition.From())
	} else if !p.states[transition.To()] {
		return fmt.Errorf("undeclared state '%s'", transition.To())
	}
	//
	p.tapeAlphabet[transition.Read()] = true
	p.tapeAlphabet[transition.Write()] = true
	//
	key := monoKey{transition.From(), transition.Read()}
	//
	if _, ok := p.transitions[key]; ok {
		return fmt.Errorf("duplicate transition for state '%s' and symbol '%c'",
			transition.From(), transition.Read())
	}
	//
	p.transitions[key] = transition
	//
	return nil
}

// Transition returns the unique transition enabled in a given state with a
// given symbol under the head, if any.
func (p *Machine) Transition(state string, read rune) util.Option[Transition] {
	if transition, ok := p.transitions[monoKey{state, read}]; ok {
		return util.Some(transition)
	}
	//
	return util.None[Transition]()
}

// States returns the declared states in lexicographic order.
func (p *Machine) States() []string {
	return sortedKeys(p.states)
}

// InputAlphabet returns the input alphabet in code-point order.
func (p *Machine) InputAlphabet() []rune {
	return sortedRunes(p.inputAlphabet)
}

// TapeAlphabet returns the tape alphabet in code-point order.
func (p *Machine) TapeAlphabet() []rune {
	return sortedRunes(p.tapeAlphabet)
}

// InitialState returns the initial state.
func (p *Machine) InitialState() string {
	return p.initial
}

// AcceptStates returns the accept states in lexicographic order.
func (p *Machine) AcceptStates() []string {
	return sortedKeys(p.accept)
}

// BlankSymbol returns the blank symbol.
func (p *Machine) BlankSymbol() rune {
	return p.blank
}

// IsAcceptState checks whether a given state is an accept state.
func (p *Machine) IsAcceptState(state string) bool {
	return p.accept[state]
}

// IsInputSymbol checks whether a given symbol belongs to the input alphabet.
func (p *Machine) IsInputSymbol(symbol rune) bool {
	return p.inputAlphabet[symbol]
}

// InvalidSymbol returns the first symbol of a given word which falls outside
// the input alphabet, if any.
func (p *Machine) InvalidSymbol(word string) util.Option[rune] {
	for _, symbol := range word {
		if !p.inputAlphabet[symbol] {
			return util.Some(symbol)
		}
	}
	//
	return util.None[rune]()
}

// Transitions returns every transition, ordered by source state then read
// symbol.
func (p *Machine) Transitions() []Transition {
	keys := make([]monoKey, 0, len(p.transitions))
	//
	for key := range p.transitions {
		keys = append(keys, key)
	}
	//
	slices.SortFunc(keys, func(l, r monoKey) int {
		if c := strings.Compare(l.state, r.state); c != 0 {
			return c
		}
		//
		return int(l.read) - int(r.read)
	})
	//
	transitions := make([]Transition, len(keys))
	//
	for i, key := range keys {
		transitions[i] = p.transitions[key]
	}
	//
	return transitions
}

// TransitionCount returns the number of recorded transitions.
func (p *Machine) TransitionCount() uint {
	return uint(len(p.transitions))
}

// IsValid checks the structural invariants of this machine: at least one
// state; an initial state drawn from the state set; accept states drawn from
// the state set; the blank on the tape alphabet but not the input alphabet;
// the input alphabet contained in the tape alphabet; and every transition
// referring only to declared states and tape symbols.
func (p *Machine) IsValid() bool {
	if len(p.states) == 0 {
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
		if !p.states[transition.From()] || !p.states[transition.To()] {
			return false
		}
		//
		if !p.tapeAlphabet[transition.Read()] || !p.tapeAlphabet[transition.Write()] {
			return false
		}
	}
	//
	return true
}

// Info renders a human-readable summary of this machine.
func (p *Machine) Info() string {
	var builder strings.Builder
	//
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

// Clear removes every state, symbol and transition, retaining only the blank
// symbol.
func (p *Machine) Clear() {
	clear(p.states)
	clear(p.inputAlphabet)
	clear(p.tapeAlphabet)
	clear(p.accept)
	clear(p.transitions)
	//
	p.initial = ""
	p.tapeAlphabet[p.blank] = true
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	//
	for key := range set {
		keys = append(keys, key)
	}
	//
	slices.Sort(keys)
	//
	return keys
}

func sortedRunes(set map[rune]bool) []rune {
	symbols := make([]rune, 0, len(set))
	//
	for symbol := range set {
		symbols = append(symbols, symbol)
	}
	//
	slices.Sort(symbols)
	//
	return symbols
}

func joinRunes(symbols []rune) string {
	parts := make([]string, len(symbols))
	//
	for i, s := range symbols {
		parts[i] = fmt.Sprintf("'%c'", s)
	}
	//
	return strings.Join(parts, ", ")
}
