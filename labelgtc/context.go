package labelgtc

import (
	"context"

	"github.com/evolbioinfo/labelgtc/tree"
)

// Context carries everything a recursive resolution step needs, in place
// of module-level globals: the species tree, the shared solution budget,
// the clades-to-preserve set computed once at the top of the run, the
// external solver adapters, and the single annotation table shared by
// every instance in this Resolve call.
//
// A Context is built once per top-level Engine.Resolve call and passed
// down by pointer (its fields are shared, mutable collaborators — the
// Budget and the annotation table — and the Context struct itself is
// never copied-and-diverged).
type Context struct {
	Species        *tree.Tree
	Threshold      float64
	Budget         *Budget
	CTP            []*tree.Node
	PolytomySolver PolytomySolver
	MinSGT         MinSGT
	Go             context.Context
	ann            *annotations
	universe       *tree.Universe
}

// ctpWithin filters the globally computed CTP set down to the clades
// whose leafset is contained in the current subtree. The containment
// test runs over the run's leafset bitset universe rather than a
// per-call name map, since every clade compared here belongs to the same
// gene tree the universe was built from.
func (c *Context) ctpWithin(gene *tree.Node) []*tree.Node {
	within := c.universe.OfNode(gene)
	var out []*tree.Node
	for _, clade := range c.CTP {
		if c.universe.OfNode(clade).IsSubsetOf(within) {
			out = append(out, clade)
		}
	}
	return out
}
