package rope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveWithinSameLeaf(t *testing.T) {
	r := FromString("Hello there World")
	require.NoError(t, r.RemoveBetweenGraphemeIndices(5, 11))
	assert.Equal(t, "Hello World", r.String())
}

func TestRemoveInvertedRange(t *testing.T) {
	r := FromString("abc")
	err := r.RemoveBetweenGraphemeIndices(2, 1)
	require.Error(t, err)
	assert.Equal(t, "abc", r.String())
}

func TestRemoveOutOfBounds(t *testing.T) {
	r := FromString("abc")
	err := r.RemoveBetweenGraphemeIndices(0, 10)
	require.Error(t, err)
	assert.Equal(t, "abc", r.String())
}

func TestRemoveEmptyRangeIsNoop(t *testing.T) {
	r := FromString("abc")
	require.NoError(t, r.RemoveBetweenGraphemeIndices(1, 1))
	assert.Equal(t, "abc", r.String())
}

// Removing a range spanning several leaves keeps counts consistent.
func TestRemoveAcrossLeaves(t *testing.T) {
	unit := "abcdefghijklmnopqrstuvwxyz"
	var b strings.Builder
	for b.Len() < 4*MaxNodeSize {
		b.WriteString(unit)
	}
	input := b.String()

	r := FromString(input)
	n := r.GraphemeCount()
	a, e := n/4, 3*n/4

	want := input[:a] + input[e:]
	require.NoError(t, r.RemoveBetweenGraphemeIndices(a, e))

	assert.Equal(t, want, r.String())
	assertCountsConsistent(t, r.root)
	assert.True(t, r.IsBalanced())
}

func assertCountsConsistent(t *testing.T, n *node) {
	t.Helper()
	if n.isLeaf() {
		chars, graphemes, lineEnds := countText(n.leaf.text)
		assert.Equal(t, chars, n.chars)
		assert.Equal(t, graphemes, n.graphemes)
		assert.Equal(t, lineEnds, n.lineEnds)
		assert.Equal(t, 1, n.height)
		return
	}
	assertCountsConsistent(t, n.left)
	assertCountsConsistent(t, n.right)
	assert.Equal(t, n.left.chars+n.right.chars, n.chars)
	assert.Equal(t, n.left.graphemes+n.right.graphemes, n.graphemes)
	assert.Equal(t, n.left.lineEnds+n.right.lineEnds, n.lineEnds)
	assert.Equal(t, 1+maxInt(n.left.height, n.right.height), n.height)
}

func TestMergeIfTooSmall(t *testing.T) {
	limits := Limits{Min: 8, Max: 16}
	r := FromStringWithLimits(strings.Repeat("a", 16)+strings.Repeat("b", 16), limits)
	require.NoError(t, r.RemoveBetweenGraphemeIndices(2, 30))
	assert.Equal(t, "aabb", r.String())
	assertCountsConsistent(t, r.root)
	assert.True(t, r.root.isLeaf(), "branch below Min should coalesce into a single leaf")
}
