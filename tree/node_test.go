package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetachReturnsFormerParent(t *testing.T) {
	tr, err := ParseNewickString("((a_A,b_B),c_C);")
	require.NoError(t, err)

	ab := tr.Root().Children()[0]
	former := ab.Detach()

	require.NotNil(t, former)
	assert.Same(t, tr.Root(), former)
	assert.Nil(t, ab.Parent())
	assert.Len(t, tr.Root().Children(), 1)
}

func TestWithChildAtDoesNotMutateOriginal(t *testing.T) {
	tr, err := ParseNewickString("((a_A,b_B),c_C);")
	require.NoError(t, err)

	root := tr.Root()
	replacement := NewLeaf("z_Z")
	updated := root.WithChildAt(1, replacement)

	assert.Equal(t, "c_C", root.Children()[1].Name())
	assert.Equal(t, "z_Z", updated.Children()[1].Name())
	assert.Same(t, updated, replacement.Parent())
}

func TestLabelInternalNodesNamesEveryInternalNode(t *testing.T) {
	tr, err := ParseNewickString("((a_A,b_B),c_C);")
	require.NoError(t, err)
	tr.LabelInternalNodes()

	for _, n := range tr.Nodes() {
		if !n.IsLeaf() {
			assert.NotEmpty(t, n.Name())
		}
	}
}
