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
	"math"
	"strings"
)

// Tape models a bi-infinite tape with a single head.  Storage is sparse: a
// cell is present in the underlying map only whilst it holds a non-blank
// symbol, hence memory is proportional to the number of non-blank cells ever
// written.  Reading any absent position yields the blank symbol, and head
// positions range over the full signed-integer range.
type Tape struct {
	// Mapping from position to symbol for all non-blank cells.
	cells map[int]rune
	// Current head position.
	head int
	// Symbol filling every position never written.
	blank rune
}

// NewTape constructs an empty tape with a given blank symbol and the head at
// position zero.
func NewTape(blank rune) *Tape {
	return &Tape{make(map[int]rune), 0, blank}
}

// NewTapeFromInput constructs a tape holding a given input word, placed
// left-to-right starting at position zero, with the head at position zero.
func NewTapeFromInput(input string, blank rune) *Tape {
	tape := NewTape(blank)
	tape.Reset(input)
	//
	return tape
}

// Read returns the symbol at the current head position, or the blank symbol
// if that position was never written.
func (p *Tape) Read() rune {
	if symbol, ok := p.cells[p.head]; ok {
		return symbol
	}
	//
	return p.blank
}

// Write places a symbol at the current head position.  Writing the blank
// symbol erases the cell so that the sparse representation stays minimal.
func (p *Tape) Write(symbol rune) {
	if symbol == p.blank {
		delete(p.cells, p.head)
	} else {
		p.cells[p.head] = symbol
	}
}

// MoveLeft moves the head one position towards lower positions.
func (p *Tape) MoveLeft() {
	p.head--
}

// MoveRight moves the head one position towards higher positions.
func (p *Tape) MoveRight() {
	p.head++
}

// Move applies a given movement to the head.
func (p *Tape) Move(movement Movement) {
	p.head += movement.Offset()
}

// HeadPosition returns the current head position.
func (p *Tape) HeadPosition() int {
	return p.head
}

// SetHeadPosition moves the head to an arbitrary position.
func (p *Tape) SetHeadPosition(position int) {
	p.head = position
}

// Blank returns the blank symbol of this tape.
func (p *Tape) Blank() rune {
	return p.blank
}

// IsEmpty checks whether this tape holds no non-blank cell at all.
func (p *Tape) IsEmpty() bool {
	return len(p.cells) == 0
}

// Reset clears all cells, writes a given input word left-to-right starting at
// position zero (skipping any character equal to the blank symbol) and places
// the head back at position zero.
func (p *Tape) Reset(input string) {
	clear(p.cells)
	p.head = 0
	//
	for i, symbol := range []rune(input) {
		if symbol != p.blank {
			p.cells[i] = symbol
		}
	}
}

// Content returns the minimal string covering every non-blank position, with
// interior gaps filled by the blank symbol.  An entirely blank tape yields
// the empty string.  Observe that, since leading and trailing blanks never
// appear, two tapes differing only in how far their heads have wandered
// produce identical content.
func (p *Tape) Content() string {
	if len(p.cells) == 0 {
		return ""
	}
	// Determine occupied extent
	minPos, maxPos := math.MaxInt, math.MinInt
	//
	for pos := range p.cells {
		minPos = min(minPos, pos)
		maxPos = max(maxPos, pos)
	}
	//
	var builder strings.Builder
	//
	for pos := minPos; pos <= maxPos; pos++ {
		if symbol, ok := p.cells[pos]; ok {
			builder.WriteRune(symbol)
		} else {
			builder.WriteRune(p.blank)
		}
	}
	//
	return builder.String()
}

// Render returns a human-readable view of the window spanning window cells
// either side of the head, with the cell under the head bracketed.
func (p *Tape) Render(window int) string {
	var builder strings.Builder
	//
	for pos := p.head - window; pos <= p.head+window; pos++ {
		symbol, ok := p.cells[pos]
		if !ok {
			symbol = p.blank
		}
		//
		if pos == p.head {
			builder.WriteRune('[')
			builder.WriteRune(symbol)
			builder.WriteRune(']')
		} else {
			builder.WriteRune(' ')
			builder.WriteRune(symbol)
			builder.WriteRune(' ')
		}
	}
	//
	return builder.String()
}

// Clone constructs a deep copy of this tape which shares no storage with the
// original.
func (p *Tape) Clone() *Tape {
	cells := make(map[int]rune, len(p.cells))
	//
	for pos, symbol := range p.cells {
		cells[pos] = symbol
	}
	//
	return &Tape{cells, p.head, p.blank}
}
