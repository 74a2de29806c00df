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
	"testing"

	"github.com/Guillermo-Gonzalez-Pineda/sim-mt-cc/pkg/machine"
)

func Test_MultiSimulator_UnarySum(t *testing.T) {
	// 3 + 3 in unary: accept, with the sum copied onto the second tape
	sim := NewMultiSimulator(unarySumMachine(t))
	//
	if result := sim.Simulate("1110111", false, 1000); result != ACCEPTED {
		t.Fatalf("expected ACCEPTED, got %s (last error %q)", result, sim.LastError())
	}
	//
	if content := sim.CurrentConfiguration().Tape(1).Content(); content != "111111" {
		t.Errorf("expected six 1s on the second tape, got %q", content)
	}
}

func Test_MultiSimulator_AnBn(t *testing.T) {
	sim := NewMultiSimulator(twoTapeAnBnMachine(t))
	//
	if result := sim.Simulate("aabb", false, 1000); result != ACCEPTED {
		t.Errorf("expected ACCEPTED, got %s", result)
	}
	//
	if result := sim.Simulate("aab", false, 1000); result != REJECTED {
		t.Errorf("expected REJECTED, got %s", result)
	}
}

func Test_MultiSimulator_LoopDetection(t *testing.T) {
	// Stays put on both tapes, rewriting what it read
	m := machine.NewMultiMachine(2, '.')
	m.SetInitialState("l0")
	m.AddAcceptState("lf")
	//
	if err := m.AddInputSymbol('a'); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	addMultiTransition(t, m, "l0", "a.", "l0", "a.", []machine.Movement{machine.STAY, machine.STAY})
	//
	sim := NewMultiSimulator(m)
	//
	if result := sim.Simulate("aaa", false, 50); result != INFINITE {
		t.Fatalf("expected INFINITE, got %s", result)
	}
	//
	if !sim.LoopDetected() {
		t.Error("expected loop detection, not budget exhaustion")
	}
}

func Test_MultiSimulator_AlphabetGate(t *testing.T) {
	sim := NewMultiSimulator(unarySumMachine(t))
	//
	if result := sim.Simulate("11x", false, 100); result != ERROR {
		t.Errorf("expected ERROR, got %s", result)
	}
	//
	if sim.LastError() == "" {
		t.Error("expected a populated error description")
	}
}

func Test_MultiSimulator_Trace(t *testing.T) {
	sim := NewMultiSimulator(unarySumMachine(t))
	//
	if result := sim.Simulate("101", true, 1000); result != ACCEPTED {
		t.Fatalf("expected ACCEPTED, got %s", result)
	}
	//
	trace := sim.Trace()
	//
	if len(trace) == 0 || trace[0].StepCount() != 0 {
		t.Fatal("trace does not start with the initial configuration")
	}
	// Snapshots hold deep copies of every tape
	sim.CurrentConfiguration().Tape(1).Write('z')
	//
	if trace[len(trace)-1].Tape(1).Read() == 'z' {
		t.Error("trace snapshot shares storage with live configuration")
	}
}

func Test_MultiSimulator_Determinism(t *testing.T) {
	sim := NewMultiSimulator(twoTapeAnBnMachine(t))
	//
	first := sim.Simulate("aabb", false, 1000)
	firstFingerprint := sim.CurrentConfiguration().Compact()
	//
	second := sim.Simulate("aabb", false, 1000)
	secondFingerprint := sim.CurrentConfiguration().Compact()
	//
	if first != second || firstFingerprint != secondFingerprint {
		t.Errorf("repeated runs diverged: %s/%q vs %s/%q",
			first, firstFingerprint, second, secondFingerprint)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

// unarySumMachine copies the 1s on either side of the 0 separator onto the
// second tape.
func unarySumMachine(t *testing.T) *machine.MultiMachine {
	t.Helper()
	//
	m := machine.NewMultiMachine(2, '.')
	m.SetInitialState("q0")
	m.AddAcceptState("qf")
	//
	for _, symbol := range []rune{'1', '0'} {
		if err := m.AddInputSymbol(symbol); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	//
	addMultiTransition(t, m, "q0", "1.", "q0", "11", []machine.Movement{machine.RIGHT, machine.RIGHT})
	addMultiTransition(t, m, "q0", "0.", "q1", "0.", []machine.Movement{machine.RIGHT, machine.STAY})
	addMultiTransition(t, m, "q1", "1.", "q1", "11", []machine.Movement{machine.RIGHT, machine.RIGHT})
	addMultiTransition(t, m, "q1", "..", "qf", "..", []machine.Movement{machine.STAY, machine.STAY})
	//
	return m
}

// twoTapeAnBnMachine copies the leading a's onto the second tape, then
// consumes one per b.
func twoTapeAnBnMachine(t *testing.T) *machine.MultiMachine {
	t.Helper()
	//
	m := machine.NewMultiMachine(2, '.')
	m.SetInitialState("p0")
	m.AddAcceptState("pf")
	//
	for _, symbol := range []rune{'a', 'b'} {
		if err := m.AddInputSymbol(symbol); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	//
	addMultiTransition(t, m, "p0", "a.", "p0", "aa", []machine.Movement{machine.RIGHT, machine.RIGHT})
	addMultiTransition(t, m, "p0", "b.", "p1", "b.", []machine.Movement{machine.STAY, machine.LEFT})
	addMultiTransition(t, m, "p1", "ba", "p1", "ba", []machine.Movement{machine.RIGHT, machine.LEFT})
	addMultiTransition(t, m, "p1", "..", "pf", "..", []machine.Movement{machine.STAY, machine.STAY})
	//
	return m
}

func addMultiTransition(t *testing.T, m *machine.MultiMachine, from, reads, to, writes string,
	movements []machine.Movement) {
	t.Helper()
	//
	transition, err := machine.NewMultiTransition(from, []rune(reads), to, []rune(writes), movements)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if err := m.AddTransition(transition); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
