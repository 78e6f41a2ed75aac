package labelgtc

import (
	"context"

	"github.com/evolbioinfo/labelgtc/tree"
)

// PolytomyProblem is the input to a PolytomySolver: a gene tree
// containing one or more polytomies to refine, the species tree it must
// reconcile against, and the LCA mapping between them.
type PolytomyProblem struct {
	GeneTree        *tree.Tree
	SpeciesTree     *tree.Tree
	LCA             tree.LCAMap
	DuplicationCost float64
	LossCost        float64
}

// PolytomySolver binarizes the polytomies of a gene tree so as to
// minimize duplication-loss cost against a species tree. A real solver
// is an external collaborator and out of scope for this package, which
// only depends on it through this interface; see package polytomysolver
// for a reference implementation.
type PolytomySolver interface {
	// Solve returns up to k distinct binary refinements of problem's gene
	// tree, ranked by ascending cost.
	Solve(ctx context.Context, problem PolytomyProblem, k int) ([]*tree.Tree, error)
}

// SupertreeProblem is the input to a MinSGT solver: a set of
// leaf-disjoint, already-trusted subtrees to embed verbatim, the species
// tree providing the cost model, and the clades that must additionally
// survive in the result.
type SupertreeProblem struct {
	Subtrees         []*tree.Tree
	SpeciesTree      *tree.Tree
	CladesToPreserve []*tree.Tree
}

// MinSGT computes a minimum duplication-loss-cost supertree that embeds
// every given subtree and clade-to-preserve verbatim. See package minsgt
// for a reference implementation.
type MinSGT interface {
	// Solve returns up to k distinct supertrees, ranked by ascending cost.
	Solve(ctx context.Context, problem SupertreeProblem, k int) ([]*tree.Tree, error)
}
