package labelgtc

import "github.com/evolbioinfo/labelgtc/tree"

// admissible reports whether node n may belong to the largest covering
// set of edges: either it is trusted enough on its own (binConf==1 and
// not a strict descendant of an already-matched CST root), or it is
// itself the exact root of a CST member.
func admissible(ann *annotations, n *tree.Node) bool {
	if ann.cst(n) == Root {
		return true
	}
	return ann.binConf(n) && ann.cst(n) != Inside
}

// computeLCSE builds the largest covering set of edges: a breadth-first
// sweep from the root that greedily admits the first admissible node on
// every path, descending only where it must. Returns the antichain and
// marks each member's lcse annotation.
//
// Coverage is tracked as a bitset over the gene tree's leaves (the same
// Universe/LeafSet machinery the CTP antichain computation uses), rather
// than a map of leaf names, since "is this node's leafset already fully
// covered" is exactly the subset test gotree builds its own bipartition
// bitsets for.
func computeLCSE(ann *annotations, gene *tree.Tree) []*tree.Node {
	root := gene.Root()
	universe := tree.NewUniverse(gene)
	full := universe.OfNode(root)
	covered := universe.Empty()

	var result []*tree.Node
	queue := []*tree.Node{root}

	for len(queue) > 0 && covered.Len() < full.Len() {
		cur := queue[0]
		queue = queue[1:]

		for _, child := range cur.Children() {
			childSet := universe.OfNode(child)
			if childSet.IsSubsetOf(covered) {
				continue
			}
			if admissible(ann, child) {
				ann.setLCSE(child, true)
				result = append(result, child)
				covered.UnionInPlace(childSet)
			} else {
				queue = append(queue, child)
			}
		}
	}
	return result
}
