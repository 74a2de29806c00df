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
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Guillermo-Gonzalez-Pineda/sim-mt-cc/pkg/machine"
	"github.com/Guillermo-Gonzalez-Pineda/sim-mt-cc/pkg/parser"
	"github.com/Guillermo-Gonzalez-Pineda/sim-mt-cc/pkg/simulator"
)

// Exit codes of the batch runner.
const (
	// Machine definition could not be loaded.
	exitLoadError = 2
	// Words file could not be opened.
	exitWordsError = 3
)

// batch bundles everything needed to process one stream of words against one
// loaded machine.
type batch struct {
	// Simulator for a mono machine (nil when multi-tape).
	mono *simulator.Simulator
	// Simulator for a multi machine (nil when mono-tape).
	multi *simulator.MultiSimulator
	// Machine summaries and word validation, independent of kind.
	monoMachine  *machine.Machine
	multiMachine *machine.MultiMachine
	// Whether to print a step-by-step trace per word.
	trace bool
	// Whether to diagnose out-of-alphabet words on stderr.
	strict bool
	// Step budget per word (0 = unbounded).
	maxSteps uint
	// Half-width of the tape rendering window.
	window int
}

// run drives the whole batch: load the machine, pick the words source and
// process words one at a time, in order.
func run(cmd *cobra.Command, machineFile string) int {
	mono, multi, err := parser.LoadAuto(machineFile)
	if err != nil {
		log.Errorf("load error: %v", err)
		return exitLoadError
	}
	//
	if GetFlag(cmd, "info") {
		printInfo(mono, multi)
		return 0
	}
	//
	b := &batch{
		monoMachine:  mono,
		multiMachine: multi,
		trace:        GetFlag(cmd, "trace"),
		strict:       GetFlag(cmd, "strict"),
		maxSteps:     GetUint(cmd, "max-steps"),
		window:       renderWindow(),
	}
	//
	if multi != nil {
		b.multi = simulator.NewMultiSimulator(multi)
	} else {
		b.mono = simulator.NewSimulator(mono)
	}
	// Pick words source: file if given, stdin otherwise
	var reader io.Reader = os.Stdin
	//
	if words := GetString(cmd, "words"); words != "" {
		file, err := os.Open(words)
		if err != nil {
			log.Errorf("cannot open words file: %v", err)
			return exitWordsError
		}
		//
		defer file.Close()
		//
		reader = file
	}
	//
	scanner := bufio.NewScanner(reader)
	//
	for scanner.Scan() {
		// Whitespace within a line is stripped; an empty line is the empty word
		b.processWord(stripSpaces(scanner.Text()))
	}
	//
	if err := scanner.Err(); err != nil {
		log.Errorf("error reading words: %v", err)
		return exitWordsError
	}
	//
	return 0
}

// processWord validates one word against the input alphabet, simulates it
// and prints its result followed by the final tape rendering.  A word with a
// symbol outside the input alphabet is not simulated: only REJECT is
// printed for it, with no tape rendering.
func (p *batch) processWord(word string) {
	// Alphabet gate: no step executes for an out-of-alphabet word
	if bad := p.invalidSymbol(word); bad != 0 {
		if p.strict {
			log.Errorf("word %q: symbol '%c' outside the input alphabet", word, bad)
		}
		//
		fmt.Println(simulator.REJECTED)
		//
		return
	}
	//
	if p.multi != nil {
		p.processMultiWord(word)
	} else {
		p.processMonoWord(word)
	}
}

func (p *batch) processMonoWord(word string) {
	result := p.mono.Simulate(word, p.trace, p.maxSteps)
	//
	fmt.Println(result)
	fmt.Printf("Cinta final: %s\n", p.mono.CurrentConfiguration().Tape().Render(p.window))
	//
	if p.trace {
		fmt.Printf("\n=== trace for %q ===\n", word)
		//
		for _, config := range p.mono.Trace() {
			fmt.Println(config)
			fmt.Printf("  %s\n", config.Tape().Render(p.window))
		}
		//
		fmt.Println("=== end of trace ===")
	}
	//
	p.explain(result, p.mono.LoopDetected(), p.mono.LastError())
}

func (p *batch) processMultiWord(word string) {
	result := p.multi.Simulate(word, p.trace, p.maxSteps)
	//
	fmt.Println(result)
	fmt.Println("Cintas finales:")
	//
	for i, tape := range p.multi.CurrentConfiguration().Tapes() {
		fmt.Printf("  Cinta %d: %s\n", i+1, tape.Render(p.window))
	}
	//
	if p.trace {
		fmt.Printf("\n=== trace for %q ===\n", word)
		//
		for _, config := range p.multi.Trace() {
			fmt.Println(config)
			//
			for i, tape := range config.Tapes() {
				fmt.Printf("  Cinta %d: %s\n", i+1, tape.Render(p.window))
			}
		}
		//
		fmt.Println("=== end of trace ===")
	}
	//
	p.explain(result, p.multi.LoopDetected(), p.multi.LastError())
}

// explain prints the extra cause line for INFINITE results, and routes
// simulation errors to stderr.
func (p *batch) explain(result simulator.Result, loopDetected bool, lastError string) {
	switch result {
	case simulator.INFINITE:
		if loopDetected {
			fmt.Println("stopped: infinite loop detected (repeated configuration)")
		} else {
			fmt.Printf("stopped: step limit reached (%d)\n", p.maxSteps)
		}
	case simulator.ERROR:
		log.Errorf("simulation error: %s", lastError)
	}
}

// invalidSymbol returns the first symbol of a word outside the machine's
// input alphabet, or zero.
func (p *batch) invalidSymbol(word string) rune {
	if p.multiMachine != nil {
		if s := p.multiMachine.InvalidSymbol(word); s.HasValue() {
			return s.Unwrap()
		}
		//
		return 0
	}
	//
	if s := p.monoMachine.InvalidSymbol(word); s.HasValue() {
		return s.Unwrap()
	}
	//
	return 0
}

// printInfo prints the machine summary for --info.
func printInfo(mono *machine.Machine, multi *machine.MultiMachine) {
	if multi != nil {
		fmt.Println("=== multi-tape Turing machine ===")
		fmt.Println(multi.Info())
	} else {
		fmt.Println("=== Turing machine ===")
		fmt.Println(mono.Info())
	}
}

// renderWindow determines the half-width of the tape rendering window.  When
// stdout is a terminal the window adapts to its width (each cell renders as
// three characters); otherwise a fixed window keeps batch output stable.
func renderWindow() int {
	fd := int(os.Stdout.Fd())
	//
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil {
			cells := (width / 3) - 1
			return min(max(cells/2, 5), 40)
		}
	}
	//
	return 20
}

// stripSpaces removes every whitespace character from a line.
func stripSpaces(line string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		//
		return r
	}, line)
}
