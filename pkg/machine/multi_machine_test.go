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
	"slices"
	"testing"
)

func Test_MultiMachine_01(t *testing.T) {
	// Transitions must operate on exactly k tapes
	m := NewMultiMachine(2, '.')
	//
	transition, err := NewMultiTransition("q0", []rune{'a'}, "q0", []rune{'a'}, []Movement{STAY})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if err := m.AddTransition(transition); err == nil {
		t.Error("expected arity mismatch error")
	}
}

func Test_MultiMachine_02(t *testing.T) {
	// Unlike the single-tape builder, unseen states are declared on the fly
	m := NewMultiMachine(2, '.')
	//
	transition, err := NewMultiTransition("q0", []rune{'a', '.'}, "q1",
		[]rune{'a', 'a'}, []Movement{RIGHT, RIGHT})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if err := m.AddTransition(transition); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if states := m.States(); !slices.Equal(states, []string{"q0", "q1"}) {
		t.Errorf("expected auto-declared states, got %v", states)
	}
}

func Test_MultiMachine_03(t *testing.T) {
	// Duplicate (state, read tuple) keys are rejected
	m := NewMultiMachine(2, '.')
	//
	first, _ := NewMultiTransition("q0", []rune{'a', '.'}, "q0", []rune{'a', '.'},
		[]Movement{RIGHT, STAY})
	second, _ := NewMultiTransition("q0", []rune{'a', '.'}, "q1", []rune{'b', '.'},
		[]Movement{STAY, STAY})
	//
	if err := m.AddTransition(first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if err := m.AddTransition(second); err == nil {
		t.Error("expected duplicate key error")
	}
}

func Test_MultiMachine_04(t *testing.T) {
	// Lookup returns none for tuples of the wrong length
	m := buildSumMachine(t)
	//
	if m.Transition("q0", []rune{'1'}).HasValue() {
		t.Error("expected no match for short tuple")
	}
	//
	if m.Transition("q0", []rune{'1', '.'}).IsEmpty() {
		t.Error("expected match for (q0, 1, .)")
	}
}

func Test_MultiMachine_05(t *testing.T) {
	// Clearing a valid machine leaves it invalid and without transitions
	m := buildSumMachine(t)
	//
	if !m.IsValid() {
		t.Fatal("sum machine should be valid")
	}
	//
	m.Clear()
	//
	if m.IsValid() {
		t.Error("cleared machine should be invalid")
	}
	//
	if m.TransitionCount() != 0 {
		t.Error("cleared machine should have no transitions")
	}
}

func Test_MultiMachine_06(t *testing.T) {
	// Tape count changes are forbidden once transitions exist
	m := buildSumMachine(t)
	//
	if err := m.SetNumTapes(3); err == nil {
		t.Error("expected error changing tape count after transitions")
	}
	//
	if err := m.SetNumTapes(2); err != nil {
		t.Errorf("unexpected error for unchanged tape count: %v", err)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

// buildSumMachine constructs the two-tape unary adder: input n 0 m on the
// first tape, sum n+m copied onto the second.
func buildSumMachine(t *testing.T) *MultiMachine {
	t.Helper()
	//
	m := NewMultiMachine(2, '.')
	m.SetInitialState("q0")
	m.AddAcceptState("qf")
	//
	if err := m.AddInputSymbol('1'); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if err := m.AddInputSymbol('0'); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	edges := []struct {
		from, reads, to, writes string
		movements               []Movement
	}{
		{"q0", "1.", "q0", "11", []Movement{RIGHT, RIGHT}},
		{"q0", "0.", "q1", "0.", []Movement{RIGHT, STAY}},
		{"q1", "1.", "q1", "11", []Movement{RIGHT, RIGHT}},
		{"q1", "..", "qf", "..", []Movement{STAY, STAY}},
	}
	//
	for _, edge := range edges {
		transition, err := NewMultiTransition(edge.from, []rune(edge.reads), edge.to,
			[]rune(edge.writes), edge.movements)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		//
		if err := m.AddTransition(transition); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	//
	return m
}
