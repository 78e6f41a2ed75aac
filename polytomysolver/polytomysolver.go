// Package polytomysolver provides a reference implementation of the
// PolytomySolver adapter that labelgtc.Engine drives for its M-POLYRES
// and POLYRES regimes. The real PolytomySolver (Lafond & Swenson's
// dynamic-programming algorithm over a species tree) is out of scope;
// this package offers a greedy, nearest-species-neighbour heuristic that
// satisfies the same contract so the engine is runnable end to end.
package polytomysolver

import (
	"context"

	"github.com/evolbioinfo/labelgtc/labelgtc"
	"github.com/evolbioinfo/labelgtc/tree"
)

// Reference is a greedy PolytomySolver: it repeatedly joins the pair of
// siblings whose species mapping is closest on the species tree,
// minimizing the number of extra duplication nodes introduced, until
// every polytomy in the gene tree is fully binary.
type Reference struct{}

// Solve implements labelgtc.PolytomySolver.
func (Reference) Solve(_ context.Context, problem labelgtc.PolytomyProblem, k int) ([]*tree.Tree, error) {
	if problem.GeneTree == nil || problem.GeneTree.Root() == nil {
		return nil, errNilGeneTree
	}
	root := problem.GeneTree.Root()

	primary := resolveNode(root, problem.LCA, false)
	results := []*tree.Tree{tree.New(primary)}

	if k > 1 {
		alt := resolveNode(root, problem.LCA, true)
		if alt.Fingerprint() != primary.Fingerprint() {
			results = append(results, tree.New(alt))
		}
	}
	return results, nil
}

var errNilGeneTree = nilGeneTreeError{}

type nilGeneTreeError struct{}

func (nilGeneTreeError) Error() string { return "polytomysolver: problem has no gene tree" }

// resolveNode rebuilds orig's subtree, binarizing any node with more
// than two children. preferLater changes the tie-break rule used when
// two candidate pairs are equally close, giving a second, possibly
// distinct, solution for Solve's k>1 path.
func resolveNode(orig *tree.Node, mapping tree.LCAMap, preferLater bool) *tree.Node {
	if orig.IsLeaf() {
		return tree.NewLeaf(orig.Name())
	}

	origChildren := orig.Children()
	resolvedChildren := make([]*tree.Node, len(origChildren))
	for i, c := range origChildren {
		resolvedChildren[i] = resolveNode(c, mapping, preferLater)
	}

	if len(resolvedChildren) <= 2 {
		p := tree.NewNode()
		p.SetName(orig.Name())
		if s, ok := orig.Support(); ok {
			p.SetSupport(s)
		}
		for _, c := range resolvedChildren {
			p.AddChild(c)
		}
		return p
	}

	type item struct {
		resolved *tree.Node
		species  *tree.Node
	}
	items := make([]item, len(origChildren))
	for i, c := range origChildren {
		items[i] = item{resolved: resolvedChildren[i], species: mapping[c]}
	}

	for len(items) > 1 {
		bi, bj, best := 0, 1, speciesDistance(items[0].species, items[1].species)
		for i := range items {
			for j := i + 1; j < len(items); j++ {
				d := speciesDistance(items[i].species, items[j].species)
				better := d < best
				if preferLater {
					better = d <= best
				}
				if better {
					best, bi, bj = d, i, j
				}
			}
		}
		left, right := items[bi], items[bj]
		parent := tree.NewNode()
		parent.AddChild(left.resolved)
		parent.AddChild(right.resolved)
		parentSpecies := speciesLCA(left.species, right.species)

		next := make([]item, 0, len(items)-1)
		for idx, it := range items {
			if idx != bi && idx != bj {
				next = append(next, it)
			}
		}
		next = append(next, item{resolved: parent, species: parentSpecies})
		items = next
	}

	result := items[0].resolved
	result.SetName(orig.Name())
	return result
}

// speciesDistance is the topological distance between two species-tree
// nodes: the number of edges on the path between them through their
// lowest common ancestor. Identical nodes (a shared speciation) cost 0.
func speciesDistance(a, b *tree.Node) int {
	if a == nil || b == nil {
		return 1 << 30
	}
	depths := ancestorDepths(a)
	steps := 0
	for cur := b; cur != nil; cur = cur.Parent() {
		if da, ok := depths[cur]; ok {
			return da + steps
		}
		steps++
	}
	return steps
}

func speciesLCA(a, b *tree.Node) *tree.Node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	depths := ancestorDepths(a)
	var last *tree.Node
	for cur := b; cur != nil; cur = cur.Parent() {
		if _, ok := depths[cur]; ok {
			return cur
		}
		last = cur
	}
	return last
}

func ancestorDepths(n *tree.Node) map[*tree.Node]int {
	depths := make(map[*tree.Node]int)
	d := 0
	for cur := n; cur != nil; cur = cur.Parent() {
		depths[cur] = d
		d++
	}
	return depths
}
