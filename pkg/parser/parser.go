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

// Package parser reads and writes the line-oriented machine definition
// format.  A mono-tape file consists of seven sections in a fixed order
// (states, input alphabet, tape alphabet, initial state, blank symbol,
// accept states, transitions); a multi-tape file is distinguished by a
// leading "MULTICINTA <k>" line and uses comma-separated tuples in its
// transitions.  Lines whose first non-whitespace character is '#' are
// comments; blank lines are ignored.
package parser

import (
	"fmt"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"github.com/Guillermo-Gonzalez-Pineda/sim-mt-cc/pkg/machine"
	"github.com/Guillermo-Gonzalez-Pineda/sim-mt-cc/pkg/util/source"
)

// Marker distinguishing multi-tape definition files.
const multiMarker = "MULTICINTA"

// lastError holds the diagnostic of the most recent failed parse.  The
// parser is used from a single-threaded batch driver, so a process-wide
// slot suffices; it is reset at the start of every top-level call to avoid
// stale diagnostics.
var lastError string

// LastError returns the diagnostic of the most recent failed parse, or the
// empty string if the last parse succeeded.
func LastError() string {
	return lastError
}

// Load reads a mono-tape machine from a given file.
func Load(filename string) (*machine.Machine, error) {
	lastError = ""
	//
	file, err := source.ReadFile(filename)
	if err != nil {
		return nil, fail(fmt.Errorf("cannot open machine file: %w", err))
	}
	//
	return Parse(file)
}

// LoadMulti reads a multi-tape machine from a given file.
func LoadMulti(filename string) (*machine.MultiMachine, error) {
	lastError = ""
	//
	file, err := source.ReadFile(filename)
	if err != nil {
		return nil, fail(fmt.Errorf("cannot open machine file: %w", err))
	}
	//
	return ParseMulti(file)
}

// LoadAuto reads a machine from a given file, deciding between the mono and
// multi formats by peeking the first non-comment line.  Exactly one of the
// returned machines is non-nil on success.
func LoadAuto(filename string) (*machine.Machine, *machine.MultiMachine, error) {
	lastError = ""
	//
	file, err := source.ReadFile(filename)
	if err != nil {
		return nil, nil, fail(fmt.Errorf("cannot open machine file: %w", err))
	}
	//
	return ParseAuto(file)
}

// ParseAuto parses a source file in whichever format its first non-comment
// line announces.
func ParseAuto(file *source.File) (*machine.Machine, *machine.MultiMachine, error) {
	for _, line := range file.Lines() {
		if line.IsBlank() || line.IsComment() {
			continue
		}
		//
		if tokens := line.Tokens(); tokens[0] == multiMarker {
			multi, err := ParseMulti(file)
			return nil, multi, err
		}
		//
		mono, err := Parse(file)
		//
		return mono, nil, err
	}
	//
	return nil, nil, fail(fmt.Errorf("%s: empty machine definition", file.Filename()))
}

// Parse parses a mono-tape machine definition.
func Parse(file *source.File) (*machine.Machine, error) {
	lastError = ""
	// Blank is declared in the fifth section, after both alphabets; scan
	// ahead for it so the builder checks see the real blank from the start.
	m := machine.NewMachine(scanBlank(file, 0))
	section := 0
	//
	for _, line := range file.Lines() {
		if line.IsBlank() || line.IsComment() {
			continue
		}
		//
		if err := parseSection(file, line, section, m); err != nil {
			return nil, fail(err)
		}
		// Transitions are open-ended; every earlier section is one line
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
	log.Debugf("parsed machine %s: %d states, %d transitions",
		file.Filename(), len(m.States()), m.TransitionCount())
	//
	return m, nil
}

// parseSection dispatches one non-comment line against the section counter
// of the mono format.
func parseSection(file *source.File, line source.Line, section int, m *machine.Machine) error {
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
		transition, err := parseTransition(file, line)
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

// parseTransition parses one "from read to write movement" line.
func parseTransition(file *source.File, line source.Line) (machine.Transition, error) {
	tokens := line.Tokens()
	//
	if len(tokens) != 5 {
		return machine.Transition{}, file.SyntaxError(line.Number(),
			"transition must have 5 fields: from read to write movement")
	}
	//
	read, err := parseSymbol(file, line, tokens[1], "read symbol")
	if err != nil {
		return machine.Transition{}, err
	}
	//
	write, err := parseSymbol(file, line, tokens[3], "write symbol")
	if err != nil {
		return machine.Transition{}, err
	}
	//
	movement, err := parseMovement(file, line, tokens[4])
	if err != nil {
		return machine.Transition{}, err
	}
	//
	return machine.NewTransition(tokens[0], read, tokens[2], write, movement), nil
}

// parseSymbol maps a symbol token onto its rune.  A token is either a single
// character or one of the aliases "espacio" / "space", both denoting ' '.
func parseSymbol(file *source.File, line source.Line, token string, what string) (rune, error) {
	switch {
	case token == "espacio" || token == "space":
		return ' ', nil
	case utf8.RuneCountInString(token) == 1:
		r, _ := utf8.DecodeRuneInString(token)
		return r, nil
	default:
		return 0, file.SyntaxError(line.Number(),
			fmt.Sprintf("invalid %s '%s' (must be a single character)", what, token))
	}
}

// parseMovement maps a movement token (a single letter) onto its Movement.
func parseMovement(file *source.File, line source.Line, token string) (machine.Movement, error) {
	letter, err := parseSymbol(file, line, token, "movement")
	if err != nil {
		return machine.STAY, err
	}
	//
	movement, err := machine.ParseMovement(letter)
	if err != nil {
		return machine.STAY, file.SyntaxError(line.Number(), err.Error())
	}
	//
	return movement, nil
}

// scanBlank looks ahead for the blank-symbol section (the fifth non-comment
// line, after skipping a given number of header lines) so machines can be
// built with their real blank from the outset.  Malformed files simply fall
// back to the default blank; the section loop reports them properly.
func scanBlank(file *source.File, skip int) rune {
	count := 0
	//
	for _, line := range file.Lines() {
		if line.IsBlank() || line.IsComment() {
			continue
		}
		//
		if count == skip+4 {
			if symbol, err := parseSymbol(file, line, line.Tokens()[0], "blank symbol"); err == nil {
				return symbol
			}
			//
			break
		}
		//
		count++
	}
	//
	return machine.DefaultBlank
}

// fail records a diagnostic in the parser-wide last-error slot and passes
// the error through.
func fail(err error) error {
	lastError = err.Error()
	//
	return err
}
