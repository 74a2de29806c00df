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
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Guillermo-Gonzalez-Pineda/sim-mt-cc/pkg/simulator"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sim-mt-cc <machine-file>",
	Short: "A batch simulator for deterministic Turing machines.",
	Long: `A batch simulator for deterministic Turing machines (mono- and multi-tape).

Reads a machine definition file, then one word per line (from stdin, or from
a file given with --words) and prints ACCEPT, REJECT, INFINITE or ERROR for
each, followed by a rendering of the final tape(s).  A word with a symbol
outside the input alphabet prints REJECT alone, without a tape rendering.
An empty line denotes the empty word.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		os.Exit(run(cmd, args[0]))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		// Usage error
		os.Exit(1)
	}
}

//nolint:errcheck
func init() {
	rootCmd.Flags().Bool("trace", false, "emit the step-by-step trace after each word's result")
	rootCmd.Flags().String("words", "", "read words from a file (one per line) instead of stdin")
	rootCmd.Flags().Bool("strict", false,
		"diagnose words containing symbols outside the input alphabet")
	rootCmd.Flags().Uint("max-steps", simulator.DefaultMaxSteps,
		"step budget per word (0 = unbounded)")
	rootCmd.Flags().Bool("info", false, "print machine summary and exit")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}
