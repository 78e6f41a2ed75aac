package labelgtc

import "github.com/evolbioinfo/labelgtc/tree"

// CSTClass is a node's relationship to the covering set of trees.
type CSTClass int

const (
	// Untagged: neither the root of, nor strictly inside, any CST member.
	Untagged CSTClass = iota
	// Inside: a strict descendant of some CST-matched root.
	Inside
	// Root: this node is the root of an exact CST topology match.
	Root
)

func (c CSTClass) String() string {
	switch c {
	case Inside:
		return "INSIDE"
	case Root:
		return "ROOT"
	default:
		return "UNTAGGED"
	}
}

// annotation holds the per-node side-table state of the data model:
// everything the labeling passes compute is kept off the node itself,
// rather than mutated onto it in place, so that the subtrees GLOBAL
// recursion wraps in new tree.Tree values (sharing the original nodes)
// see the same labels without deep-cloning state.
type annotation struct {
	cst     CSTClass
	binConf bool
	lcse    bool
}

// annotations is the side table, keyed by node identity, for a single
// top-level Resolve invocation, rather than per-node feature mutation.
type annotations struct {
	byNode map[*tree.Node]*annotation
}

func newAnnotations() *annotations {
	return &annotations{byNode: make(map[*tree.Node]*annotation)}
}

func (a *annotations) get(n *tree.Node) *annotation {
	ann, ok := a.byNode[n]
	if !ok {
		ann = &annotation{}
		a.byNode[n] = ann
	}
	return ann
}

func (a *annotations) cst(n *tree.Node) CSTClass   { return a.get(n).cst }
func (a *annotations) binConf(n *tree.Node) bool   { return a.get(n).binConf }
func (a *annotations) lcse(n *tree.Node) bool      { return a.get(n).lcse }
func (a *annotations) setCST(n *tree.Node, c CSTClass)   { a.get(n).cst = c }
func (a *annotations) setBinConf(n *tree.Node, b bool)   { a.get(n).binConf = b }
func (a *annotations) setLCSE(n *tree.Node, b bool)      { a.get(n).lcse = b }
