package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Out-of-range line/column lookups clamp to the nearest valid position.
func TestLineColClampsOutOfRange(t *testing.T) {
	r := FromString("abc\ndef")

	assert.Equal(t, 3, r.LineColToGraphemeIndex(LineCol{Line: 0, Column: 100}))
	assert.Equal(t, 7, r.LineColToGraphemeIndex(LineCol{Line: 1, Column: 100}))
	assert.Equal(t, 7, r.LineColToGraphemeIndex(LineCol{Line: 5, Column: 0}))
}

// Line/column round-trip for every valid grapheme index.
func TestLineColRoundTrip(t *testing.T) {
	r := FromString("abc\ndef\r\nghi\njkl")
	for i := 0; i <= r.GraphemeCount(); i++ {
		lc := r.GraphemeIndexToLineCol(i)
		got := r.LineColToGraphemeIndex(lc)
		assert.Equal(t, i, got, "round trip failed at grapheme index %d", i)
	}
}

func TestGraphemeAt(t *testing.T) {
	r := FromString("Hello\r\nthere!")
	g, err := r.GraphemeAt(5)
	require.NoError(t, err)
	assert.Equal(t, "\r\n", g)

	_, err = r.GraphemeAt(100)
	require.Error(t, err)
}

func TestCharGraphemeConversion(t *testing.T) {
	r := FromString("a🎃b")
	assert.Equal(t, 3, r.CharCount())
	assert.Equal(t, 3, r.GraphemeCount())

	gi, err := r.CharIndexToGraphemeIndex(1)
	require.NoError(t, err)
	assert.Equal(t, 1, gi)

	ci, err := r.GraphemeIndexToCharIndex(2)
	require.NoError(t, err)
	assert.Equal(t, 2, ci)
}

func TestLineIndexToGraphemeIndexRejectsPastEnd(t *testing.T) {
	r := FromString("abc")
	_, err := r.LineIndexToGraphemeIndex(5)
	require.Error(t, err)
}

func TestCharIteratorYieldsEveryRune(t *testing.T) {
	r := FromString("a🎃b")
	it := r.CharIterator()

	var got []rune
	for {
		c, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, c)
	}
	assert.Equal(t, []rune("a🎃b"), got)
}

func TestCharIteratorAtMidGrapheme(t *testing.T) {
	// "e" + combining acute (U+0301) is a single grapheme cluster made of
	// two chars; starting mid-grapheme should still yield the second
	// char, not round down and repeat the first.
	r := FromString("e\u0301x")
	require.Equal(t, 2, r.GraphemeCount())
	require.Equal(t, 3, r.CharCount())

	it, err := r.CharIteratorAt(1)
	require.NoError(t, err)
	c, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, rune(0x0301), c)
	c, ok = it.Next()
	require.True(t, ok)
	assert.Equal(t, 'x', c)
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestCharIteratorAtEndYieldsNothing(t *testing.T) {
	r := FromString("abc")
	it, err := r.CharIteratorAt(r.CharCount())
	require.NoError(t, err)
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestCharIteratorAtOutOfBounds(t *testing.T) {
	r := FromString("abc")
	_, err := r.CharIteratorAt(100)
	require.Error(t, err)
}
