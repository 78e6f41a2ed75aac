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
	"context"
	"fmt"
	"os"

	"github.com/evolbioinfo/labelgtc/io"
	"github.com/evolbioinfo/labelgtc/labelgtc"
	"github.com/evolbioinfo/labelgtc/minsgt"
	"github.com/evolbioinfo/labelgtc/polytomysolver"
	"github.com/evolbioinfo/labelgtc/tree"
	"github.com/spf13/cobra"
)

var (
	resolveSpeciesFile string
	resolveGeneFile    string
	resolveCSTFiles    []string
	resolveThreshold   float64
	resolveLimit       int
	resolveOutputFile  string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a gene tree's polytomies against a covering set of trusted subtrees",
	Long: `resolve reads a species tree, a gene tree and one or more trusted subtrees
(the covering set of trees, or CST), validates the CST against the gene
tree's leafset, binarizes branch support against --threshold, classifies
the tree into a resolution regime, and writes the resolved binary trees
(up to --limit of them) to --output, one Newick tree per line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		species, err := readNewickFile(resolveSpeciesFile)
		if err != nil {
			io.LogError(err)
			return err
		}
		gene, err := readNewickFile(resolveGeneFile)
		if err != nil {
			io.LogError(err)
			return err
		}
		cst := make([]*tree.Tree, 0, len(resolveCSTFiles))
		for _, f := range resolveCSTFiles {
			t, err := readNewickFile(f)
			if err != nil {
				io.LogError(err)
				return err
			}
			cst = append(cst, t)
		}

		engine := labelgtc.NewEngine(species, gene, cst, resolveThreshold,
			labelgtc.WithLimit(resolveLimit),
			labelgtc.WithPolytomySolver(polytomysolver.Reference{}),
			labelgtc.WithMinSGT(minsgt.Reference{}),
		)

		results, err := engine.Resolve(context.Background())
		if err != nil {
			io.LogError(err)
			return err
		}
		io.Info("regime: %s", engine.Regime())

		out := os.Stdout
		if resolveOutputFile != "" && resolveOutputFile != "-" {
			f, err := os.Create(resolveOutputFile)
			if err != nil {
				io.LogError(err)
				return err
			}
			defer f.Close()
			out = f
		}
		for _, t := range results {
			fmt.Fprintln(out, t.Newick())
		}
		return nil
	},
}

func readNewickFile(path string) (*tree.Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	t, err := tree.ParseNewickString(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return t, nil
}

func init() {
	RootCmd.AddCommand(resolveCmd)
	resolveCmd.PersistentFlags().StringVar(&resolveSpeciesFile, "species", "", "species tree, in Newick format")
	resolveCmd.PersistentFlags().StringVar(&resolveGeneFile, "genes", "", "gene tree, in Newick format")
	resolveCmd.PersistentFlags().StringArrayVar(&resolveCSTFiles, "cst", nil, "a trusted subtree, in Newick format (repeatable)")
	resolveCmd.PersistentFlags().Float64Var(&resolveThreshold, "threshold", 0.9, "support threshold in [0,1] for binarizing confidence")
	resolveCmd.PersistentFlags().IntVar(&resolveLimit, "limit", 1, "maximum number of alternative resolved trees to return")
	resolveCmd.PersistentFlags().StringVar(&resolveOutputFile, "output", "-", "output file, or - for stdout")
	resolveCmd.MarkPersistentFlagRequired("species")
	resolveCmd.MarkPersistentFlagRequired("genes")
	resolveCmd.MarkPersistentFlagRequired("cst")
}
