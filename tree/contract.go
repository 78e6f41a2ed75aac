package tree

// ContractEdges returns a new tree in which every non-root internal node n
// for which shouldContract(n) is true is removed and its children
// reattached directly to n's former parent, widening that parent into a
// polytomy. Leaves are never contracted. This is the tree-structural
// primitive behind the PolytomySolver adapter's two contraction modes
// (POLYRES: contract every untagged internal edge; M-POLYRES: contract
// every sub-threshold edge), kept here since it is a general operation on
// rooted trees, the same way gotree's own Tree.CollapseLowSupport/
// Tree.RemoveEdges merge nodes into multifurcations.
func ContractEdges(t *Tree, shouldContract func(*Node) bool) *Tree {
	roots := contractRecur(t.Root(), shouldContract, true)
	return New(roots[0])
}

func contractRecur(n *Node, shouldContract func(*Node) bool, isRoot bool) []*Node {
	if n.IsLeaf() {
		return []*Node{NewLeaf(n.name)}
	}
	newChildren := make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		newChildren = append(newChildren, contractRecur(c, shouldContract, false)...)
	}
	if !isRoot && shouldContract(n) {
		return newChildren
	}
	cp := &Node{name: n.name, support: n.support}
	for _, c := range newChildren {
		cp.AddChild(c)
	}
	return []*Node{cp}
}
