package labelgtc

import (
	"sort"

	"github.com/evolbioinfo/labelgtc/tree"
)

// Budget is the shared, explicit solution-enumeration resource, an
// initial cap k drained as sub-solves return more than one alternative.
type Budget struct {
	remaining int
}

// NewBudget creates a Budget with an initial cap of k (floored at 1).
func NewBudget(k int) *Budget {
	if k < 1 {
		k = 1
	}
	return &Budget{remaining: k}
}

// Ask returns how many alternatives the next solver call should request:
// always at least 1.
func (b *Budget) Ask() int {
	if b.remaining < 1 {
		return 1
	}
	return b.remaining
}

// Remaining reports the budget's current value without flooring it for
// display purposes.
func (b *Budget) Remaining() int { return b.remaining }

// Deduct lowers the budget by delta (never below 1): once a sub-solve
// returns more than one alternative, later calls are asked for fewer.
func (b *Budget) Deduct(delta int) {
	if delta < 0 {
		delta = 0
	}
	b.remaining -= delta
	if b.remaining < 1 {
		b.remaining = 1
	}
}

// dedupeByFingerprint keeps the first tree of every distinct topology
// fingerprint, preserving relative order.
func dedupeByFingerprint(nodes []*tree.Node) []*tree.Node {
	seen := make(map[uint64]bool, len(nodes))
	out := make([]*tree.Node, 0, len(nodes))
	for _, n := range nodes {
		fp := n.Fingerprint()
		if seen[fp] {
			continue
		}
		seen[fp] = true
		out = append(out, n)
	}
	return out
}

// cartesianProduct expands the Cartesian product of per-position
// alternative lists, pruning duplicate combinations (by the order
// independent hash of the combination's member fingerprints) as soon as
// they're built, and never keeping more than limit combinations after
// any step.
func cartesianProduct(altSets [][]*tree.Node, limit int) [][]*tree.Node {
	if limit < 1 {
		limit = 1
	}
	combos := [][]*tree.Node{{}}
	for _, alts := range altSets {
		if len(combos) == 0 {
			break
		}
		next := make([][]*tree.Node, 0, len(combos)*len(alts))
		for _, combo := range combos {
			for _, alt := range alts {
				extended := append(append([]*tree.Node(nil), combo...), alt)
				next = append(next, extended)
			}
		}
		combos = dedupeCombos(next)
		if len(combos) > limit {
			combos = combos[:limit]
		}
	}
	return combos
}

func dedupeCombos(combos [][]*tree.Node) [][]*tree.Node {
	seen := make(map[uint64]bool, len(combos))
	out := make([][]*tree.Node, 0, len(combos))
	for _, combo := range combos {
		fps := make([]uint64, len(combo))
		for i, n := range combo {
			fps[i] = n.Fingerprint()
		}
		sort.Slice(fps, func(i, j int) bool { return fps[i] < fps[j] })
		key := combineFingerprints(fps)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, combo)
	}
	return out
}

func combineFingerprints(fps []uint64) uint64 {
	var h uint64 = 1469598103934665603 // FNV offset basis
	for _, fp := range fps {
		h ^= fp
		h *= 1099511628211 // FNV prime
	}
	return h
}

// restrictCST returns the members of cst whose entire leafset is
// contained in leafNames — the covering set handed to a recursive
// sub-instance, restricted to the subtree it owns.
func restrictCST(cst []*tree.Tree, leafNames []string) []*tree.Tree {
	allowed := make(map[string]bool, len(leafNames))
	for _, n := range leafNames {
		allowed[n] = true
	}
	out := make([]*tree.Tree, 0, len(cst))
	for _, sub := range cst {
		included := true
		for _, n := range sub.Root().LeafNames() {
			if !allowed[n] {
				included = false
				break
			}
		}
		if included {
			out = append(out, sub)
		}
	}
	return out
}

// sameLeafSet reports whether a and b induce the same multiset of leaf
// names, used to check for leafset drift after every solver call.
func sameLeafSet(a, b *tree.Node) bool {
	la, lb := a.LeafNames(), b.LeafNames()
	if len(la) != len(lb) {
		return false
	}
	sort.Strings(la)
	sort.Strings(lb)
	for i := range la {
		if la[i] != lb[i] {
			return false
		}
	}
	return true
}

// bigEnough reports whether n has at least one non-leaf child, the
// "worth recursing into" test for whether an LCSE member should be
// resolved recursively rather than treated as a fixed leaf of the
// decomposition.
func bigEnough(n *tree.Node) bool {
	for _, c := range n.Children() {
		if !c.IsLeaf() {
			return true
		}
	}
	return false
}
