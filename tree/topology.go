package tree

import (
	"hash/fnv"
	"sort"
)

// Fingerprint returns an order-independent hash of the topology rooted
// at n: leaves hash their name, internal nodes hash the sorted
// multiset of their children's fingerprints. Cached on the node and
// invalidated by SetName/AddChild/Detach.
//
// Used for (a) CST matching, (b) clade containment checks
// (ContainsClade), (c) deduplication in the solution enumerator.
func (n *Node) Fingerprint() uint64 {
	if n.fingerprintSet {
		return n.fingerprint
	}
	h := fnv.New64a()
	if n.IsLeaf() {
		h.Write([]byte("L:"))
		h.Write([]byte(n.name))
	} else {
		children := make([]uint64, len(n.children))
		for i, c := range n.children {
			children[i] = c.Fingerprint()
		}
		sort.Slice(children, func(i, j int) bool { return children[i] < children[j] })
		h.Write([]byte("N:"))
		for _, cf := range children {
			writeUint64(h, cf)
		}
	}
	n.fingerprint = h.Sum64()
	n.fingerprintSet = true
	return n.fingerprint
}

func writeUint64(h interface{ Write([]byte) (int, error) }, v uint64) {
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
	h.Write(b[:])
}

// SameTopology reports whether n and other have identical topology:
// same (possibly reordered) child structure all the way down to
// identical leaf names. Equivalent to comparing fingerprints, but
// exposed separately since a fingerprint collision, while astronomically
// unlikely, should not be how correctness is defined.
func SameTopology(n, other *Node) bool {
	if n.Fingerprint() != other.Fingerprint() {
		return false
	}
	return sameTopologyRecur(n, other)
}

func sameTopologyRecur(a, b *Node) bool {
	if a.IsLeaf() != b.IsLeaf() {
		return false
	}
	if a.IsLeaf() {
		return a.name == b.name
	}
	if len(a.children) != len(b.children) {
		return false
	}
	used := make([]bool, len(b.children))
	for _, ac := range a.children {
		matched := false
		for j, bc := range b.children {
			if used[j] {
				continue
			}
			if ac.Fingerprint() == bc.Fingerprint() && sameTopologyRecur(ac, bc) {
				used[j] = true
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// ContainsClade reports whether some node in the subtree rooted at root
// induces a subtree topologically equal to clade.
func ContainsClade(root, clade *Node) bool {
	found := false
	root.Preorder(func(n *Node) {
		if found {
			return
		}
		if len(n.LeafNames()) != len(clade.LeafNames()) {
			return
		}
		if SameTopology(n, clade) {
			found = true
		}
	})
	return found
}

// FirstPostorderMatch returns the first node (in postorder) of root whose
// induced subtree is topologically equal to clade, or nil.
func FirstPostorderMatch(root, clade *Node) *Node {
	var match *Node
	root.Postorder(func(n *Node) {
		if match != nil {
			return
		}
		if len(n.LeafNames()) != len(clade.LeafNames()) {
			return
		}
		if SameTopology(n, clade) {
			match = n
		}
	})
	return match
}
