package labelgtc

import "github.com/evolbioinfo/labelgtc/tree"

// Regime is the resolution strategy selected by the classifier.
type Regime int

const (
	// RegimeMPolyRes: the covering set of trees is exactly the leafset of
	// the gene tree.
	RegimeMPolyRes Regime = iota
	// RegimePolyRes: every CST edge is trusted and every non-CST
	// internal edge is untrusted.
	RegimePolyRes
	// RegimeGlobal: the recursive decomposition regime. Subsumes the
	// MinTRS and MinSGT detections, which the dispatch rule routes here
	// (MinTRS because it has no specialised solver of its own, MinSGT
	// because it is itself a global case once every CST edge is untrusted).
	RegimeGlobal
)

func (r Regime) String() string {
	switch r {
	case RegimeMPolyRes:
		return "m-polyres"
	case RegimePolyRes:
		return "polyres"
	default:
		return "global"
	}
}

// detail records which of the finer-grained regimes actually fired, for
// logging/SpecialCase() only. It is informational: dispatch behaviour is
// fully determined by Regime.
type detail int

const (
	detailNone detail = iota
	detailMinTRS
	detailMinSGT
)

type classification struct {
	regime      Regime
	detail      detail
	specialCase bool
}

// classify implements the case classifier. It is called by every
// resolveInstance step (once per node of the recursion tree) on the
// subtree that step owns, and once more by Engine.Resolve on the whole
// gene tree to report the top-level regime. Only the owned subtree's own
// root is skipped — there is no "previously recursed" marking, since
// classification always precedes recursion within a single step, never
// interleaves with it. An
// ambiguity over whether POLYRES should also fall through to a GLOBAL
// check is resolved here in favour of straight first-match dispatch,
// recorded in DESIGN.md.
func classify(ann *annotations, gene *tree.Tree, cst []*tree.Tree) classification {
	onlyLeaves := true
	for _, sub := range cst {
		if !sub.Root().IsLeaf() {
			onlyLeaves = false
			break
		}
	}
	if onlyLeaves {
		return classification{regime: RegimeMPolyRes}
	}

	polyResCompatible := true
	minTRSCompatible := true
	minSGTCompatible := true
	nontrivial := 0

	root := gene.Root()
	gene.Root().LevelOrder(func(n *tree.Node) {
		if n == root {
			return
		}
		if !polyResCompatible && !minTRSCompatible && !minSGTCompatible {
			return
		}
		switch ann.cst(n) {
		case Untagged:
			if ann.binConf(n) {
				polyResCompatible = false
				minSGTCompatible = false
				nontrivial++
			} else {
				minTRSCompatible = false
				nontrivial++
			}
		case Root:
			if !ann.binConf(n) {
				polyResCompatible = false
				nontrivial++
			} else {
				minTRSCompatible = false
				minSGTCompatible = false
				nontrivial++
			}
		case Inside:
			// no effect: only UNTAGGED/ROOT clades constrain compatibility.
		}
	})

	switch {
	case polyResCompatible:
		return classification{regime: RegimePolyRes, specialCase: true}
	case minTRSCompatible && nontrivial > 2:
		return classification{regime: RegimeGlobal, detail: detailMinTRS, specialCase: true}
	case minSGTCompatible:
		return classification{regime: RegimeGlobal, detail: detailMinSGT}
	default:
		return classification{regime: RegimeGlobal}
	}
}
