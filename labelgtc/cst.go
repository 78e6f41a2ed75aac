package labelgtc

import (
	"sort"

	"github.com/evolbioinfo/labelgtc/tree"
)

// validateAndTagCST checks that the covering set of trees tiles the
// gene tree's leafset and tags matched nodes in place via ann.
//
// Contract: returns success iff
//  (i)   the leaf counts across cst sum to |leaves(gene)|,
//  (ii)  the multiset of leaf names in cst equals that of gene,
//  (iii) every member of cst has an embedded topological match in gene.
//
// Tie-break: topology equality is unordered on children; if a member
// matches multiple nodes, the first postorder match wins. A node already
// tagged INSIDE is not downgraded to ROOT; the first CST member to claim
// a node as ROOT wins over any later member matching the same node.
func validateAndTagCST(ann *annotations, gene *tree.Tree, cst []*tree.Tree) error {
	geneLeaves := gene.Root().LeafNames()
	cstLeafCount := 0
	cstLeafSet := make(map[string]int)
	for _, sub := range cst {
		names := sub.Root().LeafNames()
		cstLeafCount += len(names)
		for _, n := range names {
			cstLeafSet[n]++
		}
	}

	if cstLeafCount != len(geneLeaves) {
		return newError(ErrInvalidCoveringSet,
			"covering set of trees has %d leaves total, gene tree has %d", cstLeafCount, len(geneLeaves))
	}

	geneLeafSet := make(map[string]int)
	for _, n := range geneLeaves {
		geneLeafSet[n]++
	}
	if missing := setDifference(geneLeafSet, cstLeafSet); len(missing) > 0 {
		sort.Strings(missing)
		return newError(ErrInvalidCoveringSet, "gene tree leaves missing from covering set: %v", missing)
	}
	if extra := setDifference(cstLeafSet, geneLeafSet); len(extra) > 0 {
		sort.Strings(extra)
		return newError(ErrInvalidCoveringSet, "covering set names not present in gene tree: %v", extra)
	}

	for i, sub := range cst {
		match := tree.FirstPostorderMatch(gene.Root(), sub.Root())
		if match == nil {
			return newError(ErrInvalidCoveringSet, "covering set member %d (%s) is not embedded in the gene tree", i, sub.Newick())
		}
		if ann.cst(match) == Untagged {
			ann.setCST(match, Root)
		}
		match.Preorder(func(n *tree.Node) {
			if n == match {
				return
			}
			if ann.cst(n) == Untagged {
				ann.setCST(n, Inside)
			}
		})
	}
	return nil
}

func setDifference(a, b map[string]int) []string {
	diff := make([]string, 0)
	for k := range a {
		if b[k] < a[k] {
			diff = append(diff, k)
		}
	}
	return diff
}
