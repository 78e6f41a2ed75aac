package tree

import (
	"sort"

	"github.com/fredericlemoine/bitset"
)

// Universe assigns a stable bit index to every tip name of a reference
// tree, so that the labelgtc engine's clade subset tests (CTP antichain
// and containment filtering, LCSE covered-so-far tracking) run as bitset
// operations instead of map/slice scans, the way
// gotree's own Tree.UpdateTipIndex/ClearBitSets/UpdateBitSet back
// CommonEdges bipartition comparisons.
type Universe struct {
	index map[string]uint
	size  uint
}

// NewUniverse builds a Universe over the given tree's tip names.
func NewUniverse(t *Tree) *Universe {
	names := t.LeafNames()
	sort.Strings(names)
	u := &Universe{index: make(map[string]uint, len(names)), size: uint(len(names))}
	for i, n := range names {
		u.index[n] = uint(i)
	}
	return u
}

// Size returns the number of tips in the universe.
func (u *Universe) Size() uint { return u.size }

// LeafSet is a bitset of tip indices drawn from a single Universe.
type LeafSet struct {
	u  *Universe
	bs *bitset.BitSet
}

// Empty returns a LeafSet with no members.
func (u *Universe) Empty() *LeafSet {
	return &LeafSet{u: u, bs: bitset.New(u.size)}
}

// OfNames builds a LeafSet from a list of tip names. Names outside the
// universe are ignored (callers validate membership separately via the
// CST validator).
func (u *Universe) OfNames(names []string) *LeafSet {
	ls := u.Empty()
	for _, n := range names {
		if idx, ok := u.index[n]; ok {
			ls.bs.Set(idx)
		}
	}
	return ls
}

// OfNode builds a LeafSet from a node's induced leaf set.
func (u *Universe) OfNode(n *Node) *LeafSet {
	return u.OfNames(n.LeafNames())
}

// Union returns a new LeafSet containing the members of ls and other.
func (ls *LeafSet) Union(other *LeafSet) *LeafSet {
	return &LeafSet{u: ls.u, bs: ls.bs.Union(other.bs)}
}

// UnionInPlace adds other's members into ls.
func (ls *LeafSet) UnionInPlace(other *LeafSet) {
	ls.bs.InPlaceUnion(other.bs)
}

// IsSubsetOf reports whether every member of ls is also a member of other.
func (ls *LeafSet) IsSubsetOf(other *LeafSet) bool {
	return ls.bs.DifferenceCardinality(other.bs) == 0
}

// Equals reports whether ls and other contain the same members.
func (ls *LeafSet) Equals(other *LeafSet) bool {
	return ls.bs.Equal(other.bs)
}

// Len returns the number of members of ls.
func (ls *LeafSet) Len() uint {
	return ls.bs.Count()
}
