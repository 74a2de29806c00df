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
	"os"
	"strings"

	"github.com/Guillermo-Gonzalez-Pineda/sim-mt-cc/pkg/machine"
)

// Save re-serializes a mono-tape machine back to the definition file format,
// with commented section headers.  Loading the produced file yields an
// equivalent machine.
func Save(filename string, m *machine.Machine) error {
	lastError = ""
	//
	var builder strings.Builder
	//
	builder.WriteString("# Turing machine definition\n")
	builder.WriteString("# states\n")
	builder.WriteString(strings.Join(m.States(), " "))
	builder.WriteString("\n# input alphabet\n")
	builder.WriteString(renderSymbols(m.InputAlphabet()))
	builder.WriteString("\n# tape alphabet\n")
	builder.WriteString(renderSymbols(m.TapeAlphabet()))
	builder.WriteString("\n# initial state\n")
	builder.WriteString(m.InitialState())
	builder.WriteString("\n# blank symbol\n")
	builder.WriteString(renderSymbol(m.BlankSymbol()))
	builder.WriteString("\n# accept states\n")
	builder.WriteString(strings.Join(m.AcceptStates(), " "))
	builder.WriteString("\n# transitions\n")
	//
	for _, t := range m.Transitions() {
		fmt.Fprintf(&builder, "%s %s %s %s %s\n",
			t.From(), renderSymbol(t.Read()), t.To(), renderSymbol(t.Write()), t.Movement())
	}
	//
	if err := os.WriteFile(filename, []byte(builder.String()), 0644); err != nil {
		return fail(fmt.Errorf("cannot write machine file: %w", err))
	}
	//
	return nil
}

// renderSymbol maps a symbol back onto its file token.  The space symbol
// must round-trip through its alias, since a raw space would vanish during
// tokenization.
func renderSymbol(symbol rune) string {
	if symbol == ' ' {
		return "space"
	}
	//
	return string(symbol)
}

func renderSymbols(symbols []rune) string {
	parts := make([]string, len(symbols))
	//
	for i, s := range symbols {
		parts[i] = renderSymbol(s)
	}
	//
	return strings.Join(parts, " ")
}
