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

import "fmt"

// SyntaxError is a structured error which identifies the line of a source
// file where the problem arose, along with a brief cause.
type SyntaxError struct {
	// Filename of the file in which the error arose.
	filename string
	// Line number (counting from 1) at which the error arose.
	line int
	// Brief description of the problem.
	msg string
}

// Filename returns the name of the file in which this error arose.
func (p *SyntaxError) Filename() string {
	return p.filename
}

// Line returns the line number (counting from 1) at which this error arose.
func (p *SyntaxError) Line() int {
	return p.line
}

// Message returns the underlying cause of this error, without positional
// information.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface, rendering this error in the usual
// "file:line: cause" form.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", p.filename, p.line, p.msg)
}
