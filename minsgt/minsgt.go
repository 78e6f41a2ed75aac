// Package minsgt provides a reference implementation of the MinSGT
// adapter that labelgtc.Engine drives to finalize every GLOBAL regime
// instance. The real MinSGT (minimum duplication-loss-cost supertree
// construction) is out of scope; this package offers a greedy supertree
// builder that preserves every given subtree verbatim (and therefore
// every clade-to-preserve nested inside one, which the engine guarantees
// by construction) and joins them by nearest species-tree neighbour.
package minsgt

import (
	"context"
	"errors"

	"github.com/evolbioinfo/labelgtc/labelgtc"
	"github.com/evolbioinfo/labelgtc/tree"
)

// ErrNoSubtrees is returned when a SupertreeProblem names no subtrees to
// embed: MinSGT always has at least one leaf-disjoint piece to place.
var ErrNoSubtrees = errors.New("minsgt: supertree problem has no subtrees to embed")

// Reference is a greedy MinSGT: it maps every given subtree to the
// species-tree node its leaves imply, then repeatedly joins the two
// closest pieces (by species-tree distance) until one tree remains.
// Every input subtree is embedded unmodified, as a clone, as a single
// unit — it is never internally restructured.
type Reference struct{}

// Solve implements labelgtc.MinSGT.
func (Reference) Solve(_ context.Context, problem labelgtc.SupertreeProblem, k int) ([]*tree.Tree, error) {
	if len(problem.Subtrees) == 0 {
		return nil, ErrNoSubtrees
	}
	if len(problem.Subtrees) == 1 {
		return []*tree.Tree{tree.New(problem.Subtrees[0].Root().Clone())}, nil
	}

	primary := join(problem, false)
	results := []*tree.Tree{tree.New(primary)}

	if k > 1 {
		alt := join(problem, true)
		if alt.Fingerprint() != primary.Fingerprint() {
			results = append(results, tree.New(alt))
		}
	}
	return results, nil
}

type piece struct {
	node    *tree.Node
	species *tree.Node
}

// join greedily pairs subtrees by species-tree proximity until a single
// root remains. preferLater breaks proximity ties toward the
// later-indexed pair, offering Solve's k>1 path a second topology.
func join(problem labelgtc.SupertreeProblem, preferLater bool) *tree.Node {
	pieces := make([]piece, len(problem.Subtrees))
	for i, sub := range problem.Subtrees {
		root := sub.Root().Clone()
		mapping, err := tree.LCAMapping(tree.New(root), problem.SpeciesTree)
		var species *tree.Node
		if err == nil {
			species = mapping[root]
		}
		pieces[i] = piece{node: root, species: species}
	}

	for len(pieces) > 1 {
		bi, bj, best := 0, 1, speciesDistance(pieces[0].species, pieces[1].species)
		for i := range pieces {
			for j := i + 1; j < len(pieces); j++ {
				d := speciesDistance(pieces[i].species, pieces[j].species)
				better := d < best
				if preferLater {
					better = d <= best
				}
				if better {
					best, bi, bj = d, i, j
				}
			}
		}
		left, right := pieces[bi], pieces[bj]
		parent := tree.NewNode()
		parent.AddChild(left.node)
		parent.AddChild(right.node)
		parentSpecies := speciesLCA(left.species, right.species)

		next := make([]piece, 0, len(pieces)-1)
		for idx, p := range pieces {
			if idx != bi && idx != bj {
				next = append(next, p)
			}
		}
		next = append(next, piece{node: parent, species: parentSpecies})
		pieces = next
	}
	return pieces[0].node
}

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
