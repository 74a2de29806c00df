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
package parser

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/Guillermo-Gonzalez-Pineda/sim-mt-cc/pkg/machine"
	"github.com/Guillermo-Gonzalez-Pineda/sim-mt-cc/pkg/util/source"
)

// ParseMulti parses a multi-tape machine definition.  The format is the mono
// format preceded by a "MULTICINTA <k>" line, with transitions whose read,
// write and movement fields are comma-separated tuples of length k.
func ParseMulti(file *source.File) (*machine.MultiMachine, error) {
	lastError = ""
	//
	var (
		m *machine.MultiMachine
		// -1 means the MULTICINTA marker is still expected
		section = -1
	)
	//
	for _, line := range file.Lines() {
		if line.IsBlank() || line.IsComment() {
			continue
		}
		//
		if section == -1 {
			ntapes, err := parseMultiHeader(file, line)
			if err != nil {
				return nil, fail(err)
			}
			//
			m = machine.NewMultiMachine(ntapes, scanBlank(file, 1))
			section = 0
			//
			continue
		}
		//
		if err := parseMultiSection(file, line, section, m); err != nil {
			return nil, fail(err)
		}
		//
		if section < 6 {
			section++
		}
	}
	//
	if section < 6 {
		return nil, fail(fmt.Errorf("%s: incomplete machine definition (missing mandatory sections)",
			file.Filename()))
	}
	//
	if !m.IsValid() {
		return nil, fail(fmt.Errorf("%s: machine definition is not valid", file.Filename()))
	}
	//
	log.Debugf("parsed multi-tape machine %s: %d tapes, %d states, %d transitions",
		file.Filename(), m.NumTapes(), len(m.States()), m.TransitionCount())
	//
	return m, nil
}

// parseMultiHeader parses the distinguished "MULTICINTA <k>" line.
func parseMultiHeader(file *source.File, line source.Line) (uint, error) {
	tokens := line.Tokens()
	//
	if tokens[0] != multiMarker {
		return 0, file.SyntaxError(line.Number(),
			fmt.Sprintf("expected %s marker at start of multi-tape definition", multiMarker))
	}
	//
	if len(tokens) != 2 {
		return 0, file.SyntaxError(line.Number(),
			fmt.Sprintf("malformed %s header (expected: %s <tapes>)", multiMarker, multiMarker))
	}
	//
	ntapes, err := strconv.ParseUint(tokens[1], 10, 32)
	if err != nil || ntapes == 0 {
		return 0, file.SyntaxError(line.Number(),
			fmt.Sprintf("%s requires a tape count >= 1, got '%s'", multiMarker, tokens[1]))
	}
	//
	return uint(ntapes), nil
}

// parseMultiSection dispatches one non-comment line against the section
// counter of the multi format.  Sections 0-5 coincide with the mono format;
// everything after is a tuple transition.
func parseMultiSection(file *source.File, line source.Line, section int, m *machine.MultiMachine) error {
	tokens := line.Tokens()
	//
	switch section {
	case 0:
		// States
		for _, state := range tokens {
			m.AddState(state)
		}
	case 1:
		// Input alphabet
		for _, token := range tokens {
			symbol, err := parseSymbol(file, line, token, "input symbol")
			if err != nil {
				return err
			}
			//
			if err := m.AddInputSymbol(symbol); err != nil {
				return file.SyntaxError(line.Number(), err.Error())
			}
		}
	case 2:
		// Tape alphabet
		for _, token := range tokens {
			symbol, err := parseSymbol(file, line, token, "tape symbol")
			if err != nil {
				return err
			}
			//
			m.AddTapeSymbol(symbol)
		}
	case 3:
		// Initial state
		if len(tokens) != 1 {
			return file.SyntaxError(line.Number(), "expected exactly one initial state")
		}
		//
		m.SetInitialState(tokens[0])
	case 4:
		// Blank symbol
		if len(tokens) != 1 {
			return file.SyntaxError(line.Number(), "expected exactly one blank symbol")
		}
		//
		symbol, err := parseSymbol(file, line, tokens[0], "blank symbol")
		if err != nil {
			return err
		}
		//
		if err := m.SetBlankSymbol(symbol); err != nil {
			return file.SyntaxError(line.Number(), err.Error())
		}
	case 5:
		// Accept states
		for _, state := range tokens {
			m.AddAcceptState(state)
		}
	default:
		// Transitions
		transition, err := parseMultiTransition(file, line, m.NumTapes())
		if err != nil {
			return err
		}
		//
		if err := m.AddTransition(transition); err != nil {
			return file.SyntaxError(line.Number(), err.Error())
		}
	}
	//
	return nil
}

// parseMultiTransition parses one "from r1,..,rk to w1,..,wk m1,..,mk" line.
func parseMultiTransition(file *source.File, line source.Line, ntapes uint) (machine.MultiTransition, error) {
	tokens := line.Tokens()
	//
	if len(tokens) != 5 {
		return machine.MultiTransition{}, file.SyntaxError(line.Number(),
			"transition must have 5 fields: from reads to writes movements")
	}
	//
	reads, err := parseSymbolTuple(file, line, tokens[1], ntapes, "read symbols")
	if err != nil {
		return machine.MultiTransition{}, err
	}
	//
	writes, err := parseSymbolTuple(file, line, tokens[3], ntapes, "write symbols")
	if err != nil {
		return machine.MultiTransition{}, err
	}
	//
	movements, err := parseMovementTuple(file, line, tokens[4], ntapes)
	if err != nil {
		return machine.MultiTransition{}, err
	}
	//
	transition, err := machine.NewMultiTransition(tokens[0], reads, tokens[2], writes, movements)
	if err != nil {
		return machine.MultiTransition{}, file.SyntaxError(line.Number(), err.Error())
	}
	//
	return transition, nil
}

// parseSymbolTuple parses a comma-separated tuple of symbols, which must
// have exactly ntapes elements.
func parseSymbolTuple(file *source.File, line source.Line, token string, ntapes uint,
	what string) ([]rune, error) {
	//
	parts := strings.Split(token, ",")
	//
	if uint(len(parts)) != ntapes {
		return nil, file.SyntaxError(line.Number(),
			fmt.Sprintf("number of %s (%d) does not match tape count (%d)",
				what, len(parts), ntapes))
	}
	//
	symbols := make([]rune, len(parts))
	//
	for i, part := range parts {
		symbol, err := parseSymbol(file, line, part, strings.TrimSuffix(what, "s"))
		if err != nil {
			return nil, err
		}
		//
		symbols[i] = symbol
	}
	//
	return symbols, nil
}

// parseMovementTuple parses a comma-separated tuple of movement letters,
// which must have exactly ntapes elements.
func parseMovementTuple(file *source.File, line source.Line, token string,
	ntapes uint) ([]machine.Movement, error) {
	//
	parts := strings.Split(token, ",")
	//
	if uint(len(parts)) != ntapes {
		return nil, file.SyntaxError(line.Number(),
			fmt.Sprintf("number of movements (%d) does not match tape count (%d)",
				len(parts), ntapes))
	}
	//
	movements := make([]machine.Movement, len(parts))
	//
	for i, part := range parts {
		movement, err := parseMovement(file, line, part)
		if err != nil {
			return nil, err
		}
		//
		movements[i] = movement
	}
	//
	return movements, nil
}
