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
package source

import (
	"os"
	"strings"
)

// ReadFile reads a given source file, or produces an error.
func ReadFile(filename string) (*File, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	//
	return NewSourceFile(filename, bytes), nil
}

// Line provides information about a given line within the original file.
// This includes the line number (counting from 1) and the raw text of the
// line (excluding its terminator).
type Line struct {
	// Raw text of this line.
	text string
	// Line number of this line (counting from 1).
	number int
}

// String returns the raw text of this line.
func (p Line) String() string {
	return p.text
}

// Number gets the line number of this line, where the first line in a file
// has line number 1.
func (p Line) Number() int {
	return p.number
}

// IsBlank checks whether this line contains only whitespace.
func (p Line) IsBlank() bool {
	return strings.TrimSpace(p.text) == ""
}

// IsComment checks whether this line is a comment (i.e. its first
// non-whitespace character is '#').
func (p Line) IsComment() bool {
	trimmed := strings.TrimSpace(p.text)
	return strings.HasPrefix(trimmed, "#")
}

// Tokens splits this line into its whitespace-separated tokens.
func (p Line) Tokens() []string {
	return strings.Fields(p.text)
}

// File represents a given source file (typically stored on disk) viewed as a
// sequence of lines.
type File struct {
	// File name for this source file.
	filename string
	// Lines of this file, in order.
	lines []Line
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *File {
	// Normalise line endings before splitting
	contents := strings.ReplaceAll(string(bytes), "\r\n", "\n")
	split := strings.Split(contents, "\n")
	lines := make([]Line, len(split))
	//
	for i, text := range split {
		lines[i] = Line{text, i + 1}
	}
	//
	return &File{filename, lines}
}

// Filename returns the filename associated with this source file.
func (s *File) Filename() string {
	return s.filename
}

// Lines returns the lines of this source file, in order of appearance.
func (s *File) Lines() []Line {
	return s.lines
}

// SyntaxError constructs a syntax error at a given line of this file with a
// given message.
func (s *File) SyntaxError(line int, msg string) *SyntaxError {
	return &SyntaxError{s.filename, line, msg}
}
