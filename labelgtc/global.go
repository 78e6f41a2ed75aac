package labelgtc

import (
	"github.com/evolbioinfo/labelgtc/tree"
)

// resolveInstance dispatches a single recursion step:
// classify the subtree gene owns against its restricted covering set,
// then hand off to the matching regime's resolver. Unlike the top-level
// entry point, it never re-validates the covering set or re-binarizes
// support: both were already computed once, globally, by Engine.Resolve,
// and the annotation table (keyed by node identity) carries those
// results into every subtree built from the same nodes.
func resolveInstance(ctx *Context, gene *tree.Tree, cst []*tree.Tree) ([]*tree.Node, error) {
	cls := classify(ctx.ann, gene, cst)
	switch cls.regime {
	case RegimeMPolyRes:
		return resolveViaPolytomySolver(ctx, gene, func(n *tree.Node) bool { return !ctx.ann.binConf(n) })
	case RegimePolyRes:
		return resolveViaPolytomySolver(ctx, gene, func(n *tree.Node) bool { return ctx.ann.cst(n) == Untagged })
	default:
		return resolveGlobal(ctx, gene, cst)
	}
}

// resolveViaPolytomySolver implements the POLYRES/M-POLYRES branches:
// contract the edges shouldContract selects, reconcile the
// remaining polytomies against the species tree, and hand the result to
// the PolytomySolver adapter.
func resolveViaPolytomySolver(ctx *Context, gene *tree.Tree, shouldContract func(*tree.Node) bool) ([]*tree.Node, error) {
	contracted := tree.ContractEdges(gene, shouldContract)
	lca, err := tree.LCAMapping(contracted, ctx.Species)
	if err != nil {
		return nil, wrapError(ErrSolverFailure, err, "computing LCA mapping for polytomy solver")
	}

	problem := PolytomyProblem{
		GeneTree:        contracted,
		SpeciesTree:     ctx.Species,
		LCA:             lca,
		DuplicationCost: 1,
		LossCost:        1,
	}
	results, err := ctx.PolytomySolver.Solve(ctx.Go, problem, ctx.Budget.Ask())
	if err != nil {
		return nil, wrapError(ErrSolverFailure, err, "polytomy solver failed")
	}
	if len(results) == 0 {
		return nil, newError(ErrSolverFailure, "polytomy solver returned no solutions")
	}
	if len(results) > 1 {
		ctx.Budget.Deduct(len(results) - 1)
	}

	roots := make([]*tree.Node, len(results))
	for i, r := range results {
		roots[i] = r.Root()
	}
	roots = dedupeByFingerprint(roots)
	for _, r := range roots {
		if !sameLeafSet(r, gene.Root()) {
			return nil, newError(ErrInconsistent, "polytomy solver returned a tree with a different leafset")
		}
	}
	return roots, nil
}

// resolveGlobal implements the GlobalResolver: it computes the
// Largest Covering Set of Edges, recursively resolves every admissible
// member that is still worth decomposing, and finalizes the combined
// result through local MinSGT calls, one per combination of member
// alternatives, each treating the (possibly just-resolved) LCSE members
// as the subtrees to preserve.
//
// This uniformly finalizes every GLOBAL-classified instance through its
// own MinSGT call, rather than only the top-level instance doing so and
// every other level reading a result out of a shared collection keyed
// by node name — resolved here in favour of the simpler, symmetric rule
// recorded in DESIGN.md: every GLOBAL instance must return fully binary
// trees to its caller, so every GLOBAL instance must finalize.
func resolveGlobal(ctx *Context, gene *tree.Tree, cst []*tree.Tree) ([]*tree.Node, error) {
	lcseNodes := computeLCSE(ctx.ann, gene)

	altSets := make([][]*tree.Node, len(lcseNodes))
	for i, v := range lcseNodes {
		recursable := ctx.ann.binConf(v) && ctx.ann.cst(v) == Untagged && bigEnough(v)
		if !recursable {
			altSets[i] = []*tree.Node{v}
			continue
		}

		subCST := restrictCST(cst, v.LeafNames())
		subAlts, err := resolveInstance(ctx, tree.New(v), subCST)
		if err != nil {
			return nil, err
		}
		subAlts = dedupeByFingerprint(subAlts)
		if len(subAlts) > 1 {
			ctx.Budget.Deduct(len(subAlts) - 1)
		}
		altSets[i] = subAlts
	}

	combos := cartesianProduct(altSets, ctx.Budget.Ask())

	var finals []*tree.Node
	seen := make(map[uint64]bool)
	for _, combo := range combos {
		if len(finals) >= ctx.Budget.Ask() {
			break
		}
		subtrees := make([]*tree.Tree, len(combo))
		for i, n := range combo {
			subtrees[i] = tree.New(n)
		}
		preserve := ctx.ctpWithin(gene.Root())
		preserveTrees := make([]*tree.Tree, len(preserve))
		for i, n := range preserve {
			preserveTrees[i] = tree.New(n)
		}

		problem := SupertreeProblem{
			Subtrees:         subtrees,
			SpeciesTree:      ctx.Species,
			CladesToPreserve: preserveTrees,
		}
		results, err := ctx.MinSGT.Solve(ctx.Go, problem, ctx.Budget.Ask())
		if err != nil {
			return nil, wrapError(ErrSolverFailure, err, "minimum supertree solver failed")
		}
		if len(results) == 0 {
			return nil, newError(ErrSolverFailure, "minimum supertree solver returned no solutions")
		}
		if len(results) > 1 {
			ctx.Budget.Deduct(len(results) - 1)
		}

		for _, r := range results {
			root := r.Root()
			fp := root.Fingerprint()
			if seen[fp] {
				continue
			}
			if !sameLeafSet(root, gene.Root()) {
				return nil, newError(ErrInconsistent, "minimum supertree solver returned a tree with a different leafset")
			}
			seen[fp] = true
			finals = append(finals, root)
		}
	}
	return finals, nil
}
