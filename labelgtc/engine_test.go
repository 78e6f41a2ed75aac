package labelgtc_test

import (
	"context"
	"testing"

	"github.com/evolbioinfo/labelgtc/labelgtc"
	"github.com/evolbioinfo/labelgtc/minsgt"
	"github.com/evolbioinfo/labelgtc/polytomysolver"
	"github.com/evolbioinfo/labelgtc/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newickTree(t *testing.T, s string) *tree.Tree {
	t.Helper()
	tr, err := tree.ParseNewickString(s)
	require.NoError(t, err)
	return tr
}

// Scenario: M-POLYRES. The covering set is exactly the gene tree's
// leafset, so the whole tree is a single polytomy to be resolved.
func TestEngineResolveMPolyRes(t *testing.T) {
	species := newickTree(t, "((A,B),(C,D));")
	gene := newickTree(t, "(a1_A,b1_B,c1_C,d1_D);")
	cst := []*tree.Tree{
		newickTree(t, "a1_A;"),
		newickTree(t, "b1_B;"),
		newickTree(t, "c1_C;"),
		newickTree(t, "d1_D;"),
	}

	engine := labelgtc.NewEngine(species, gene, cst, 0.9,
		labelgtc.WithPolytomySolver(polytomysolver.Reference{}),
		labelgtc.WithMinSGT(minsgt.Reference{}),
	)
	results, err := engine.Resolve(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, labelgtc.RegimeMPolyRes, engine.Regime())

	got := results[0].Root().LeafNames()
	assert.ElementsMatch(t, []string{"a1_A", "b1_B", "c1_C", "d1_D"}, got)
	assertBinary(t, results[0].Root())
}

// Scenario: POLYRES. Every CST edge is trusted (high support), every
// non-CST internal edge is untrusted (low support).
func TestEngineResolvePolyRes(t *testing.T) {
	species := newickTree(t, "((A,B),(C,D));")
	gene := newickTree(t, "((a1_A,a2_A)0.95,(c1_C,c2_C)0.95)0.1;")
	cst := []*tree.Tree{
		newickTree(t, "(a1_A,a2_A);"),
		newickTree(t, "(c1_C,c2_C);"),
	}

	engine := labelgtc.NewEngine(species, gene, cst, 0.9,
		labelgtc.WithPolytomySolver(polytomysolver.Reference{}),
		labelgtc.WithMinSGT(minsgt.Reference{}),
	)
	results, err := engine.Resolve(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, labelgtc.RegimePolyRes, engine.Regime())
	assert.True(t, engine.SpecialCase())
	assertBinary(t, results[0].Root())
	assertLeafsetPreserved(t, gene.Root(), results[0].Root())
	assertCladePreserved(t, results[0].Root(), "a1_A", "a2_A")
	assertCladePreserved(t, results[0].Root(), "c1_C", "c2_C")
}

// Scenario: GLOBAL. An UNTAGGED, confident internal edge exists outside
// the covering set, so the tree must be resolved via recursive
// decomposition and MinSGT, not simple polytomy contraction.
func TestEngineResolveGlobal(t *testing.T) {
	species := newickTree(t, "(((A,B),C),D);")
	gene := newickTree(t, "(((a1_A,a2_A)0.95,b1_B)0.95,d1_D);")
	cst := []*tree.Tree{
		newickTree(t, "(a1_A,a2_A);"),
		newickTree(t, "b1_B;"),
		newickTree(t, "d1_D;"),
	}

	engine := labelgtc.NewEngine(species, gene, cst, 0.9,
		labelgtc.WithPolytomySolver(polytomysolver.Reference{}),
		labelgtc.WithMinSGT(minsgt.Reference{}),
	)
	results, err := engine.Resolve(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, labelgtc.RegimeGlobal, engine.Regime())
	assertBinary(t, results[0].Root())
	assertLeafsetPreserved(t, gene.Root(), results[0].Root())
	assertCladePreserved(t, results[0].Root(), "a1_A", "a2_A")
}

func TestEngineResolveRejectsThresholdOutOfRange(t *testing.T) {
	species := newickTree(t, "(A,B);")
	gene := newickTree(t, "(a1_A,b1_B);")
	cst := []*tree.Tree{newickTree(t, "a1_A;"), newickTree(t, "b1_B;")}

	engine := labelgtc.NewEngine(species, gene, cst, 1.5,
		labelgtc.WithPolytomySolver(polytomysolver.Reference{}),
		labelgtc.WithMinSGT(minsgt.Reference{}),
	)
	_, err := engine.Resolve(context.Background())
	require.Error(t, err)
	assert.True(t, labelgtc.IsKind(err, labelgtc.ErrThresholdOutOfRange))
}

func TestEngineResolveRejectsInvalidCoveringSet(t *testing.T) {
	species := newickTree(t, "(A,B);")
	gene := newickTree(t, "(a1_A,b1_B);")
	cst := []*tree.Tree{newickTree(t, "a1_A;")}

	engine := labelgtc.NewEngine(species, gene, cst, 0.9,
		labelgtc.WithPolytomySolver(polytomysolver.Reference{}),
		labelgtc.WithMinSGT(minsgt.Reference{}),
	)
	_, err := engine.Resolve(context.Background())
	require.Error(t, err)
	assert.True(t, labelgtc.IsKind(err, labelgtc.ErrInvalidCoveringSet))
}

func assertBinary(t *testing.T, n *tree.Node) {
	t.Helper()
	n.Preorder(func(cur *tree.Node) {
		if !cur.IsLeaf() {
			assert.LessOrEqual(t, cur.NumChildren(), 2, "node %q has more than two children", cur.Name())
		}
	})
}

func assertLeafsetPreserved(t *testing.T, before, after *tree.Node) {
	t.Helper()
	assert.ElementsMatch(t, before.LeafNames(), after.LeafNames())
}

func assertCladePreserved(t *testing.T, root *tree.Node, leaves ...string) {
	t.Helper()
	want := make(map[string]bool, len(leaves))
	for _, l := range leaves {
		want[l] = true
	}
	found := false
	root.Preorder(func(n *tree.Node) {
		if found || n.IsLeaf() {
			return
		}
		got := n.LeafNames()
		if len(got) != len(want) {
			return
		}
		for _, l := range got {
			if !want[l] {
				return
			}
		}
		found = true
	})
	assert.True(t, found, "no clade found with exactly leaves %v", leaves)
}
