package rope

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cordage/rope/internal/difftest"
)

// Building a rope from a string and reading it back must reproduce it
// exactly, across a range of input shapes.
func TestPropertyRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"hello world",
		strings.Repeat("the quick brown fox\n", 200),
		"mixed\r\nline\nendings\x0bhere\x0c",
		strings.Repeat("日本語のテキスト", 500),
	}
	for _, s := range inputs {
		r := FromString(s)
		difftest.RequireTextEqual(t, s, r.String())
	}
}

// Inserting text then removing the same span reproduces the original text.
func TestPropertyInsertRemoveInverse(t *testing.T) {
	original := strings.Repeat("abcdefghij", 300)
	insertedText := strings.Repeat("XYZ", 50)
	positions := []int{0, 17, len(original) / 2, len(original) - 1, len(original)}

	for _, p := range positions {
		r := FromString(original)
		require.NoError(t, r.InsertAtGraphemeIndex(insertedText, p))

		insGraphemes := countGraphemes(insertedText)
		require.NoError(t, r.RemoveBetweenGraphemeIndices(p, p+insGraphemes))

		difftest.RequireTextEqual(t, original, r.String())
	}
}

// Splitting a rope then appending the two halves back together is a
// no-op on the text.
func TestPropertySplitAppendInverse(t *testing.T) {
	original := strings.Repeat("0123456789", 300)
	positions := []int{0, 1, 200, len(original) / 2, len(original) - 1, len(original)}

	for _, p := range positions {
		r := FromString(original)
		right, err := r.SplitAtGraphemeIndex(p)
		require.NoError(t, err)
		r.Append(right)

		difftest.RequireTextEqual(t, original, r.String())
		require.True(t, r.IsBalanced())
	}
}

// Cached counts must equal recomputed counts after a mix of mutations.
func TestPropertyCountConsistency(t *testing.T) {
	r := FromString(strings.Repeat("abcdef\n", 500))
	require.NoError(t, r.InsertAtGraphemeIndex("XYZ", 10))
	require.NoError(t, r.RemoveBetweenGraphemeIndices(100, 150))
	require.NoError(t, r.InsertAtGraphemeIndex(strings.Repeat("q", 300), r.GraphemeCount()/2))

	assertCountsConsistent(t, r.root)
	require.True(t, r.IsBalanced())
}
