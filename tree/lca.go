package tree

// LCAMap maps every node of a gene tree to the node of a species tree
// that is the lowest common ancestor, in the species tree, of the
// species tags of the gene node's leaves. It is a precomputed utility
// the solver adapters consume rather than something the reconciliation
// engine itself derives on demand.
type LCAMap map[*Node]*Node

// speciesIndex indexes a rooted species tree by leaf (species) name so
// that repeated LCA queries do not re-walk the tree.
type speciesIndex struct {
	tree      *Tree
	leafNode  map[string]*Node
	ancestors map[*Node]map[*Node]bool // node -> set of its ancestors incl. itself
}

func newSpeciesIndex(species *Tree) *speciesIndex {
	si := &speciesIndex{
		tree:      species,
		leafNode:  make(map[string]*Node),
		ancestors: make(map[*Node]map[*Node]bool),
	}
	for _, tip := range species.Tips() {
		si.leafNode[tip.Name()] = tip
	}
	for _, n := range species.Nodes() {
		set := make(map[*Node]bool)
		for cur := n; cur != nil; cur = cur.Parent() {
			set[cur] = true
		}
		si.ancestors[n] = set
	}
	return si
}

// lca returns the lowest common ancestor, in the species tree, of the
// given species-tree leaf nodes.
func (si *speciesIndex) lca(leaves []*Node) *Node {
	if len(leaves) == 0 {
		return nil
	}
	common := si.ancestors[leaves[0]]
	candidates := make([]*Node, 0, len(common))
	for n := range common {
		candidates = append(candidates, n)
	}
	for _, l := range leaves[1:] {
		anc := si.ancestors[l]
		filtered := candidates[:0]
		for _, c := range candidates {
			if anc[c] {
				filtered = append(filtered, c)
			}
		}
		candidates = filtered
	}
	// The LCA is the remaining candidate with maximal depth (furthest from
	// the species root, i.e. most ancestors of its own).
	var best *Node
	bestDepth := -1
	for _, c := range candidates {
		d := len(si.ancestors[c])
		if d > bestDepth {
			bestDepth = d
			best = c
		}
	}
	return best
}

// LCAMapping computes the LCA map of gene onto species, using each gene
// leaf's species tag (Node.SpeciesTag) to locate the corresponding
// species-tree leaf. Returns an error if a gene leaf's species tag does
// not name a species-tree tip.
func LCAMapping(gene, species *Tree) (LCAMap, error) {
	si := newSpeciesIndex(species)
	mapping := make(LCAMap)

	var err error
	gene.Root().Postorder(func(n *Node) {
		if err != nil {
			return
		}
		if n.IsLeaf() {
			sp := n.SpeciesTag()
			if sp == "" {
				sp = n.Name()
			}
			sn, ok := si.leafNode[sp]
			if !ok {
				err = &unmappedLeafError{leaf: n.Name(), species: sp}
				return
			}
			mapping[n] = sn
			return
		}
		leaves := make([]*Node, 0, len(n.children))
		for _, c := range n.children {
			leaves = append(leaves, mapping[c])
		}
		mapping[n] = si.lca(leaves)
	})
	if err != nil {
		return nil, err
	}
	return mapping, nil
}

type unmappedLeafError struct {
	leaf    string
	species string
}

func (e *unmappedLeafError) Error() string {
	return "tree: gene leaf " + e.leaf + " has no matching species tip " + e.species + " in the species tree"
}
