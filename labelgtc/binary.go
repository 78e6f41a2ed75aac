package labelgtc

import "github.com/evolbioinfo/labelgtc/tree"

// labelBinary implements the BinaryLabeller: it binarizes every
// node's support against threshold, and, when collectCTP is true (the
// top-level instance only), accumulates the clades the threshold and the
// CST together trust enough to preserve through the eventual MinSGT call.
func labelBinary(ann *annotations, gene *tree.Tree, threshold float64, collectCTP bool) []*tree.Node {
	var ctp []*tree.Node
	gene.Root().LevelOrder(func(n *tree.Node) {
		var binConf bool
		if n.IsLeaf() {
			binConf = true
		} else if s, ok := n.Support(); ok {
			binConf = s >= threshold
		} else {
			binConf = false
		}
		ann.setBinConf(n, binConf)

		if collectCTP && !n.IsLeaf() && binConf {
			switch ann.cst(n) {
			case Root, Inside:
				ctp = append(ctp, n)
			}
		}
	})
	return ctp
}

// minimalCTP returns the minimal antichain of clades (no clade whose
// leafset is a strict subset of another's survives), computed
// functionally, rather than by mutating the input slice during iteration
// (a mutate-while-iterating approach whose result depends on iteration
// order — a latent bug, not a behaviour worth preserving).
// Subset tests run over the gene tree's leafset bitset universe rather
// than per-node name maps, the same bitset-subset idiom gotree's own
// bipartition comparisons use.
func minimalCTP(universe *tree.Universe, ctp []*tree.Node) []*tree.Node {
	leafSets := make([]*tree.LeafSet, len(ctp))
	for i, n := range ctp {
		leafSets[i] = universe.OfNode(n)
	}

	keep := make([]bool, len(ctp))
	for i := range ctp {
		keep[i] = true
	}
	for i := range ctp {
		for j := range ctp {
			if i == j {
				continue
			}
			if isStrictSubset(leafSets[i], leafSets[j]) {
				keep[i] = false
			}
		}
	}

	out := make([]*tree.Node, 0, len(ctp))
	for i, n := range ctp {
		if keep[i] {
			out = append(out, n)
		}
	}
	return out
}

func isStrictSubset(a, b *tree.LeafSet) bool {
	if a.Len() >= b.Len() {
		return false
	}
	return a.IsSubsetOf(b)
}
