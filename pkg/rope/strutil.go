package rope

import (
	"unicode/utf8"

	"github.com/clipperhouse/uax29/graphemes"
)

// This file holds the only code that manipulates leaf bytes directly.
// Every other component reaches text through these primitives, so
// UTF-8 validity and grapheme-boundary integrity (invariant 4) only need
// to be argued once, here.

// lineEndingSet is the eight canonical line-ending grapheme clusters.
// CRLF is listed as its own entry because uax29 already reports it
// as a single extended grapheme cluster (UAX #29 rule GB3): it never
// needs to be special-cased above this layer.
var lineEndingSet = map[string]bool{
	"\r\n":     true,
	"\n":       true,
	"\v":       true,
	"\f":       true,
	"\r":       true,
	"\u0085":   true, // NEL
	"\u2028":   true, // LS
	"\u2029":   true, // PS
}

func isLineEnding(g string) bool { return lineEndingSet[g] }

// grapheme describes one extended grapheme cluster within a leaf, with
// its byte and char offsets relative to the start of that leaf's text.
type grapheme struct {
	byteStart, byteEnd int
	charStart, charEnd int
	text               string
	isLineEnding       bool
}

// segmentLeaf splits s into its grapheme clusters, in order, with byte
// and char offsets. This is the one place uax29 is invoked on leaf text.
func segmentLeaf(s string) []grapheme {
	if s == "" {
		return nil
	}
	segs := graphemes.SegmentAllString(s)
	out := make([]grapheme, len(segs))
	byteOff, charOff := 0, 0
	for i, seg := range segs {
		cl := utf8.RuneCountInString(seg)
		out[i] = grapheme{
			byteStart:    byteOff,
			byteEnd:      byteOff + len(seg),
			charStart:    charOff,
			charEnd:      charOff + cl,
			text:         seg,
			isLineEnding: isLineEnding(seg),
		}
		byteOff += len(seg)
		charOff += cl
	}
	return out
}

// countText returns the char, grapheme, and line-ending counts of s in a
// single pass. This is the leaf half of recomputing a node's aggregates.
func countText(s string) (chars, graphemeCount, lineEndings int) {
	if s == "" {
		return 0, 0, 0
	}
	segs := segmentLeaf(s)
	graphemeCount = len(segs)
	for _, g := range segs {
		if g.isLineEnding {
			lineEndings++
		}
	}
	chars = utf8.RuneCountInString(s)
	return chars, graphemeCount, lineEndings
}

// graphemeByteOffset returns the byte offset of the grapheme boundary at
// grapheme index pos within s (0 <= pos <= grapheme count of s).
func graphemeByteOffset(s string, pos int) int {
	if pos == 0 {
		return 0
	}
	segs := segmentLeaf(s)
	if pos >= len(segs) {
		return len(s)
	}
	return segs[pos].byteStart
}

// spliceInsert inserts ins at the given byte offset within s, returning a
// new string made of the bytes before the offset, ins, and the tail.
func spliceInsert(s string, byteOffset int, ins string) string {
	return s[:byteOffset] + ins + s[byteOffset:]
}

// spliceDelete removes the bytes in [startByte, endByte) from s, returning
// a new string that joins the bytes before startByte with those from
// endByte on.
func spliceDelete(s string, startByte, endByte int) string {
	return s[:startByte] + s[endByte:]
}

// splitAtByte splits s into its left and right remnants at the given byte
// offset. The caller is responsible for choosing a grapheme-aligned
// offset (graphemeByteOffset does this).
func splitAtByte(s string, byteOffset int) (string, string) {
	return s[:byteOffset], s[byteOffset:]
}
