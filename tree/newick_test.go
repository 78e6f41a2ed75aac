package tree

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNewickLeaf(t *testing.T) {
	tr, err := ParseNewickString("a_A;")
	require.NoError(t, err)
	assert.Equal(t, "a_A", tr.Root().Name())
	assert.True(t, tr.Root().IsLeaf())
}

func TestParseNewickSupport(t *testing.T) {
	tr, err := ParseNewickString("((a_A,b_B)0.9,c_C)0.5;")
	require.NoError(t, err)
	root := tr.Root()
	s, ok := root.Support()
	require.True(t, ok)
	assert.InDelta(t, 0.5, s, 1e-9)

	inner := root.Children()[0]
	s2, ok := inner.Support()
	require.True(t, ok)
	assert.InDelta(t, 0.9, s2, 1e-9)
}

func TestParseNewickRoundTrip(t *testing.T) {
	in := "((a_A,b_B)0.9,c_C)0.2;"
	tr, err := ParseNewickString(in)
	require.NoError(t, err)
	assert.Equal(t, in, tr.Newick())
}

func TestParseNewickForest(t *testing.T) {
	forest, err := ParseNewickForest("(a_A,b_B);\nc_C;\n((d1_D,e1_E),c2_C);")
	require.NoError(t, err)
	require.Len(t, forest, 3)
	names := forest[0].LeafNames()
	sort.Strings(names)
	assert.Equal(t, []string{"a_A", "b_B"}, names)
}

func TestSpeciesTag(t *testing.T) {
	n := NewLeaf("gene1_HUMAN")
	assert.Equal(t, "HUMAN", n.SpeciesTag())

	noTag := NewLeaf("orphan")
	assert.Equal(t, "", noTag.SpeciesTag())
}
