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

// Result classifies the outcome of simulating one input word.
type Result uint8

// ACCEPTED indicates the machine halted in an accept state.
const ACCEPTED Result = 0

// REJECTED indicates the machine halted outside an accept state (i.e. no
// transition was enabled).
const REJECTED Result = 1

// INFINITE indicates the step budget was exhausted, or a configuration was
// provably revisited.
const INFINITE Result = 2

// ERROR indicates a structural problem: no machine, an invalid machine, an
// input word outside the input alphabet, or an unexpected fault whilst
// stepping.
const ERROR Result = 3

// String returns the fixed boundary token for this result, as printed on
// stdout for every word.
func (p Result) String() string {
	switch p {
	case ACCEPTED:
		return "ACCEPT"
	case REJECTED:
		return "REJECT"
	case INFINITE:
		return "INFINITE"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
