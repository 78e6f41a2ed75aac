package labelgtc

import (
	"testing"

	"github.com/evolbioinfo/labelgtc/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelBinaryLeavesAlwaysConfident(t *testing.T) {
	gene, err := tree.ParseNewickString("(a1_A,b1_B)0.1;")
	require.NoError(t, err)

	ann := newAnnotations()
	labelBinary(ann, gene, 0.9, false)

	assert.True(t, ann.binConf(gene.Root().Children()[0]))
	assert.True(t, ann.binConf(gene.Root().Children()[1]))
	assert.False(t, ann.binConf(gene.Root()))
}

func TestLabelBinaryUnsetSupportIsNotConfident(t *testing.T) {
	gene, err := tree.ParseNewickString("(a1_A,b1_B);")
	require.NoError(t, err)

	ann := newAnnotations()
	labelBinary(ann, gene, 0.5, false)

	assert.False(t, ann.binConf(gene.Root()))
}

func TestLabelBinaryCollectsCTPOnlyForTaggedConfidentClades(t *testing.T) {
	gene, err := tree.ParseNewickString("((a1_A,a2_A)0.95,(b1_B,b2_B)0.3);")
	require.NoError(t, err)
	cstMember, err := tree.ParseNewickString("(a1_A,a2_A);")
	require.NoError(t, err)
	lowMember, err := tree.ParseNewickString("(b1_B,b2_B);")
	require.NoError(t, err)

	ann := newAnnotations()
	require.NoError(t, validateAndTagCST(ann, gene, []*tree.Tree{cstMember, lowMember}))

	ctp := labelBinary(ann, gene, 0.9, true)
	require.Len(t, ctp, 1)
	assert.Same(t, gene.Root().Children()[0], ctp[0])
}

func TestMinimalCTPDropsNestedClades(t *testing.T) {
	outer, err := tree.ParseNewickString("((a1_A,a2_A),a3_A);")
	require.NoError(t, err)
	inner := outer.Root().Children()[0]

	universe := tree.NewUniverse(outer)
	min := minimalCTP(universe, []*tree.Node{outer.Root(), inner})
	require.Len(t, min, 1)
	assert.Same(t, outer.Root(), min[0])
}
