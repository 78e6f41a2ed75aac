package labelgtc

import (
	"testing"

	"github.com/evolbioinfo/labelgtc/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetNeverGoesBelowOne(t *testing.T) {
	b := NewBudget(3)
	assert.Equal(t, 3, b.Ask())
	b.Deduct(2)
	assert.Equal(t, 1, b.Ask())
	b.Deduct(5)
	assert.Equal(t, 1, b.Ask())
}

func TestNewBudgetFloorsNonPositiveInput(t *testing.T) {
	assert.Equal(t, 1, NewBudget(0).Ask())
	assert.Equal(t, 1, NewBudget(-4).Ask())
}

func TestDedupeByFingerprintKeepsFirstOfEachTopology(t *testing.T) {
	a, err := tree.ParseNewickString("(x,y);")
	require.NoError(t, err)
	b, err := tree.ParseNewickString("(x,y);")
	require.NoError(t, err)
	c, err := tree.ParseNewickString("(x,z);")
	require.NoError(t, err)

	out := dedupeByFingerprint([]*tree.Node{a.Root(), b.Root(), c.Root()})
	require.Len(t, out, 2)
	assert.Same(t, a.Root(), out[0])
	assert.Same(t, c.Root(), out[1])
}

func TestRestrictCSTKeepsOnlyFullyContainedMembers(t *testing.T) {
	inside, err := tree.ParseNewickString("(a1_A,a2_A);")
	require.NoError(t, err)
	outside, err := tree.ParseNewickString("(a1_A,b1_B);")
	require.NoError(t, err)

	got := restrictCST([]*tree.Tree{inside, outside}, []string{"a1_A", "a2_A"})
	require.Len(t, got, 1)
	assert.Same(t, inside, got[0])
}

func TestCartesianProductRespectsLimit(t *testing.T) {
	n1, _ := tree.ParseNewickString("x;")
	n2, _ := tree.ParseNewickString("y;")
	n3, _ := tree.ParseNewickString("u;")
	n4, _ := tree.ParseNewickString("v;")

	combos := cartesianProduct([][]*tree.Node{{n1.Root(), n2.Root()}, {n3.Root(), n4.Root()}}, 2)
	assert.LessOrEqual(t, len(combos), 2)
}
