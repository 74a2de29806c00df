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

import "testing"

func Test_Machine_01(t *testing.T) {
	// Blank can never enter the input alphabet
	m := NewMachine('.')
	//
	if err := m.AddInputSymbol('.'); err == nil {
		t.Error("expected error adding blank as input symbol")
	}
}

func Test_Machine_02(t *testing.T) {
	// Transitions referring to undeclared states are rejected
	m := NewMachine('.')
	m.AddState("q0")
	//
	if err := m.AddTransition(NewTransition("q0", 'a', "q1", 'a', RIGHT)); err == nil {
		t.Error("expected error for undeclared target state")
	}
	//
	if err := m.AddTransition(NewTransition("q9", 'a', "q0", 'a', RIGHT)); err == nil {
		t.Error("expected error for undeclared source state")
	}
}

func Test_Machine_03(t *testing.T) {
	// Determinism: a second transition with the same key is rejected
	m := NewMachine('.')
	m.AddState("q0")
	m.AddState("q1")
	//
	if err := m.AddTransition(NewTransition("q0", 'a', "q1", 'b', RIGHT)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if err := m.AddTransition(NewTransition("q0", 'a', "q0", 'a', STAY)); err == nil {
		t.Error("expected error for duplicate (state, symbol) key")
	}
	// A different read symbol is fine
	if err := m.AddTransition(NewTransition("q0", 'b', "q1", 'b', LEFT)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func Test_Machine_04(t *testing.T) {
	// Transition lookup returns the unique matching edge
	m := buildParityMachine(t)
	//
	lookup := m.Transition("q0", '0')
	if lookup.IsEmpty() {
		t.Fatal("expected transition for (q0, '0')")
	}
	//
	if edge := lookup.Unwrap(); edge.To() != "q1" || edge.Movement() != RIGHT {
		t.Errorf("unexpected transition %s", edge)
	}
	//
	if m.Transition("q0", 'x').HasValue() {
		t.Error("expected no transition for unknown symbol")
	}
}

func Test_Machine_05(t *testing.T) {
	// A machine without an initial state is not valid
	m := NewMachine('.')
	m.AddState("q0")
	//
	if m.IsValid() {
		t.Error("expected machine without initial state to be invalid")
	}
	//
	m.SetInitialState("q0")
	//
	if !m.IsValid() {
		t.Error("expected machine to be valid")
	}
}

func Test_Machine_06(t *testing.T) {
	// Setting initial / accept states declares them
	m := NewMachine('.')
	m.SetInitialState("q0")
	m.AddAcceptState("qf")
	//
	if states := m.States(); len(states) != 2 {
		t.Errorf("expected 2 states, got %v", states)
	}
	//
	if !m.IsAcceptState("qf") || m.IsAcceptState("q0") {
		t.Error("accept state bookkeeping broken")
	}
}

func Test_Machine_07(t *testing.T) {
	// Blank redefinition is forbidden once transitions exist
	m := NewMachine('.')
	m.AddState("q0")
	//
	if err := m.SetBlankSymbol('_'); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	//
	if err := m.AddTransition(NewTransition("q0", 'a', "q0", 'a', STAY)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if err := m.SetBlankSymbol('#'); err == nil {
		t.Error("expected error redefining blank after transitions")
	}
	// The previous blank stays on the tape alphabet
	if alphabet := m.TapeAlphabet(); len(alphabet) != 3 {
		t.Errorf("unexpected tape alphabet %v", alphabet)
	}
}

func Test_Machine_08(t *testing.T) {
	// Read/write symbols of transitions enter the tape alphabet
	m := buildParityMachine(t)
	//
	for _, symbol := range []rune{'0', '1', '.'} {
		found := false
		//
		for _, s := range m.TapeAlphabet() {
			found = found || s == symbol
		}
		//
		if !found {
			t.Errorf("expected '%c' on tape alphabet", symbol)
		}
	}
}

func Test_Machine_09(t *testing.T) {
	// Word validation against the input alphabet
	m := buildParityMachine(t)
	//
	if m.InvalidSymbol("0101").HasValue() {
		t.Error("expected word to be valid")
	}
	//
	if bad := m.InvalidSymbol("01a1"); bad.IsEmpty() || bad.Unwrap() != 'a' {
		t.Error("expected 'a' to be reported as invalid")
	}
	// The empty word is always valid
	if m.InvalidSymbol("").HasValue() {
		t.Error("expected empty word to be valid")
	}
}

func Test_Machine_10(t *testing.T) {
	// Transitions are enumerated deterministically
	m := buildParityMachine(t)
	//
	transitions := m.Transitions()
	//
	if len(transitions) != 5 {
		t.Fatalf("expected 5 transitions, got %d", len(transitions))
	}
	//
	for i := 1; i < len(transitions); i++ {
		l, r := transitions[i-1], transitions[i]
		//
		if l.From() > r.From() || (l.From() == r.From() && l.Read() >= r.Read()) {
			t.Errorf("transitions out of order: %s before %s", l, r)
		}
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

// buildParityMachine constructs the odd-zeros recognizer over {0,1}.
func buildParityMachine(t *testing.T) *Machine {
	t.Helper()
	//
	m := NewMachine('.')
	//
	for _, state := range []string{"q0", "q1", "qf"} {
		m.AddState(state)
	}
	//
	for _, symbol := range []rune{'0', '1'} {
		if err := m.AddInputSymbol(symbol); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	//
	m.SetInitialState("q0")
	m.AddAcceptState("qf")
	//
	transitions := []Transition{
		NewTransition("q0", '0', "q1", '0', RIGHT),
		NewTransition("q0", '1', "q0", '1', RIGHT),
		NewTransition("q1", '0', "q0", '0', RIGHT),
		NewTransition("q1", '1', "q1", '1', RIGHT),
		NewTransition("q1", '.', "qf", '.', STAY),
	}
	//
	for _, transition := range transitions {
		if err := m.AddTransition(transition); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	//
	if !m.IsValid() {
		t.Fatal("parity machine should be valid")
	}
	//
	return m
}
