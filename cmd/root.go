// Copyright © 2016 NAME HERE <EMAIL ADDRESS>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"os"

	"github.com/evolbioinfo/labelgtc/io"
	"github.com/spf13/cobra"
)

var rootVerbose bool

var RootCmd = &cobra.Command{
	Use:   "labelgtc",
	Short: "Validate, label and resolve a gene tree against a covering set of trusted subtrees",
	Long: `labelgtc checks a gene tree against a covering set of trees (CST) trusted
from an independent source, binarizes its support values against a
threshold, classifies the tree into a resolution regime, and resolves any
remaining polytomies by delegating to a polytomy solver and a minimum
supertree solver.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		io.Verbose = rootVerbose
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "print debug information")
}
