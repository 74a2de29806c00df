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

func Test_MultiTransition_01(t *testing.T) {
	// Mismatched vector lengths are rejected
	_, err := NewMultiTransition("q0", []rune{'a', 'b'}, "q1", []rune{'a'},
		[]Movement{STAY, STAY})
	//
	if err == nil {
		t.Error("expected error for mismatched write vector")
	}
	//
	_, err = NewMultiTransition("q0", []rune{}, "q1", []rune{}, []Movement{})
	//
	if err == nil {
		t.Error("expected error for empty vectors")
	}
}

func Test_MultiTransition_02(t *testing.T) {
	transition, err := NewMultiTransition("q0", []rune{'a', '.'}, "q1",
		[]rune{'b', '.'}, []Movement{RIGHT, STAY})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if !transition.IsApplicable("q0", []rune{'a', '.'}) {
		t.Error("expected transition to be applicable")
	}
	//
	if transition.IsApplicable("q0", []rune{'a', 'b'}) {
		t.Error("expected mismatching tuple to be inapplicable")
	}
	//
	if transition.IsApplicable("q1", []rune{'a', '.'}) {
		t.Error("expected mismatching state to be inapplicable")
	}
}

func Test_MultiTransition_03(t *testing.T) {
	// Lifting a mono edge: designated tape carries the edge, others idle
	mono := NewTransition("q0", 'a', "q1", 'b', RIGHT)
	//
	lifted, err := LiftTransition(mono, 3, 1, '.')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if lifted.Arity() != 3 {
		t.Fatalf("expected arity 3, got %d", lifted.Arity())
	}
	//
	if lifted.Reads()[1] != 'a' || lifted.Writes()[1] != 'b' || lifted.Movements()[1] != RIGHT {
		t.Error("designated tape does not carry the mono edge")
	}
	//
	for _, i := range []int{0, 2} {
		if lifted.Reads()[i] != '.' || lifted.Writes()[i] != '.' || lifted.Movements()[i] != STAY {
			t.Errorf("tape %d should idle", i)
		}
	}
}

func Test_MultiTransition_04(t *testing.T) {
	// Lifting onto an out-of-range tape fails
	mono := NewTransition("q0", 'a', "q1", 'b', RIGHT)
	//
	if _, err := LiftTransition(mono, 2, 2, '.'); err == nil {
		t.Error("expected error for out-of-range target tape")
	}
}

func Test_Movement_01(t *testing.T) {
	// Movement letters parse case-insensitively
	for _, c := range []rune{'L', 'l'} {
		if m, err := ParseMovement(c); err != nil || m != LEFT {
			t.Errorf("expected LEFT for '%c'", c)
		}
	}
	//
	if m, err := ParseMovement('R'); err != nil || m != RIGHT {
		t.Error("expected RIGHT for 'R'")
	}
	//
	if m, err := ParseMovement('s'); err != nil || m != STAY {
		t.Error("expected STAY for 's'")
	}
	//
	if _, err := ParseMovement('x'); err == nil {
		t.Error("expected error for unknown movement letter")
	}
}
