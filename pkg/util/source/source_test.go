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
	"slices"
	"testing"
)

func Test_SourceFile_01(t *testing.T) {
	file := NewSourceFile("test.tm", []byte("a b\n# comment\n\n  \t\nq0"))
	lines := file.Lines()
	//
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	// Line numbers count from 1
	for i, line := range lines {
		if line.Number() != i+1 {
			t.Errorf("line %d numbered %d", i, line.Number())
		}
	}
	//
	if lines[0].IsComment() || !lines[1].IsComment() {
		t.Error("comment detection broken")
	}
	//
	if !lines[2].IsBlank() || !lines[3].IsBlank() || lines[4].IsBlank() {
		t.Error("blank detection broken")
	}
	//
	if !slices.Equal(lines[0].Tokens(), []string{"a", "b"}) {
		t.Errorf("unexpected tokens %v", lines[0].Tokens())
	}
}

func Test_SourceFile_02(t *testing.T) {
	// Windows line endings are normalised
	file := NewSourceFile("test.tm", []byte("a\r\nb"))
	lines := file.Lines()
	//
	if len(lines) != 2 || lines[0].String() != "a" || lines[1].String() != "b" {
		t.Errorf("unexpected lines %v", lines)
	}
}

func Test_SourceFile_03(t *testing.T) {
	// Comments may be indented
	file := NewSourceFile("test.tm", []byte("   # indented"))
	//
	if !file.Lines()[0].IsComment() {
		t.Error("expected indented comment to be recognised")
	}
}

func Test_SyntaxError_01(t *testing.T) {
	file := NewSourceFile("machine.tm", nil)
	err := file.SyntaxError(7, "something broke")
	//
	if err.Error() != "machine.tm:7: something broke" {
		t.Errorf("unexpected rendering %q", err.Error())
	}
	//
	if err.Line() != 7 || err.Filename() != "machine.tm" || err.Message() != "something broke" {
		t.Error("accessors broken")
	}
}
