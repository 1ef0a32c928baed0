package rope

// GraphemeAt returns the grapheme cluster at grapheme index i. O(log N +
// max leaf size).
func (r *Rope) GraphemeAt(i int) (string, error) {
	if i < 0 || i >= r.root.graphemes {
		return "", errOOB("GraphemeAt", "grapheme", i, r.root.graphemes)
	}
	n := r.root
	for !n.isLeaf() {
		if i < n.left.graphemes {
			n = n.left
		} else {
			i -= n.left.graphemes
			n = n.right
		}
	}
	segs := segmentLeaf(n.leaf.text)
	return segs[i].text, nil
}

// GraphemeIndexToLineIndex returns the zero-based line containing grapheme
// index i. i may equal GraphemeCount() (the position just past the last
// grapheme, on the final line).
func (r *Rope) GraphemeIndexToLineIndex(i int) (int, error) {
	if i < 0 || i > r.root.graphemes {
		return 0, errOOB("GraphemeIndexToLineIndex", "grapheme", i, r.root.graphemes)
	}
	return graphemeToLine(r.root, i), nil
}

func graphemeToLine(n *node, pos int) int {
	if n.isLeaf() {
		count := 0
		idx := 0
		for _, g := range segmentLeaf(n.leaf.text) {
			if idx >= pos {
				break
			}
			if g.isLineEnding {
				count++
			}
			idx++
		}
		return count
	}
	if pos < n.left.graphemes {
		return graphemeToLine(n.left, pos)
	}
	return n.left.lineEnds + graphemeToLine(n.right, pos-n.left.graphemes)
}

// LineIndexToGraphemeIndex returns the grapheme index at which line li
// begins. Requires li <= LineCount()-1 (i.e. li <= line ending count).
func (r *Rope) LineIndexToGraphemeIndex(li int) (int, error) {
	if li < 0 || li > r.root.lineEnds {
		return 0, errOOB("LineIndexToGraphemeIndex", "line", li, r.root.lineEnds)
	}
	if li == 0 {
		return 0, nil
	}
	return lineToGrapheme(r.root, li), nil
}

func lineToGrapheme(n *node, li int) int {
	if n.isLeaf() {
		idx := 0
		for _, g := range segmentLeaf(n.leaf.text) {
			idx++
			if g.isLineEnding {
				li--
				if li == 0 {
					return idx
				}
			}
		}
		return idx
	}
	if li <= n.left.lineEnds {
		return lineToGrapheme(n.left, li)
	}
	return n.left.graphemes + lineToGrapheme(n.right, li-n.left.lineEnds)
}

// LineCol is a (line, column) position, both zero-based, counted in
// graphemes.
type LineCol struct {
	Line   int
	Column int
}

// GraphemeIndexToLineCol converts a grapheme index to (line, column). i is
// clamped to GraphemeCount().
func (r *Rope) GraphemeIndexToLineCol(i int) LineCol {
	if i > r.root.graphemes {
		i = r.root.graphemes
	}
	if i < 0 {
		i = 0
	}
	line := graphemeToLine(r.root, i)
	lineStart, _ := r.LineIndexToGraphemeIndex(line)
	return LineCol{Line: line, Column: i - lineStart}
}

// LineColToGraphemeIndex converts (line, column) to a grapheme index. A
// line beyond the last one clamps to GraphemeCount(); a column beyond a
// line's own length clamps to that line's end.
func (r *Rope) LineColToGraphemeIndex(lc LineCol) int {
	lastLine := r.root.lineEnds
	if lc.Line >= lastLine {
		if lc.Line > lastLine {
			return r.root.graphemes
		}
	}
	start, _ := r.LineIndexToGraphemeIndex(minInt(lc.Line, lastLine))
	var end int
	if lc.Line >= lastLine {
		end = r.root.graphemes
	} else {
		end, _ = r.LineIndexToGraphemeIndex(lc.Line + 1)
		end--
	}
	pos := start + lc.Column
	if pos > end {
		pos = end
	}
	if pos < start {
		pos = start
	}
	return pos
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// CharIndexToGraphemeIndex converts a char index to the index of the
// grapheme it falls in. A char index strictly inside a multi-char grapheme
// rounds down to that grapheme's start.
func (r *Rope) CharIndexToGraphemeIndex(ci int) (int, error) {
	if ci < 0 || ci > r.root.chars {
		return 0, errOOB("CharIndexToGraphemeIndex", "char", ci, r.root.chars)
	}
	return charToGrapheme(r.root, ci), nil
}

func charToGrapheme(n *node, ci int) int {
	if n.isLeaf() {
		idx := 0
		for _, g := range segmentLeaf(n.leaf.text) {
			if ci < g.charEnd {
				return idx
			}
			idx++
		}
		return idx
	}
	if ci < n.left.chars {
		return charToGrapheme(n.left, ci)
	}
	return n.left.graphemes + charToGrapheme(n.right, ci-n.left.chars)
}

// GraphemeIndexToCharIndex returns the char index at which grapheme index
// gi begins.
func (r *Rope) GraphemeIndexToCharIndex(gi int) (int, error) {
	if gi < 0 || gi > r.root.graphemes {
		return 0, errOOB("GraphemeIndexToCharIndex", "grapheme", gi, r.root.graphemes)
	}
	return graphemeToChar(r.root, gi), nil
}

func graphemeToChar(n *node, gi int) int {
	if n.isLeaf() {
		segs := segmentLeaf(n.leaf.text)
		if gi >= len(segs) {
			return n.chars
		}
		return segs[gi].charStart
	}
	if gi < n.left.graphemes {
		return graphemeToChar(n.left, gi)
	}
	return n.left.chars + graphemeToChar(n.right, gi-n.left.graphemes)
}

// CharAt returns the grapheme cluster containing char index ci — the
// grapheme it rounds down to, per CharIndexToGraphemeIndex.
func (r *Rope) CharAt(ci int) (string, error) {
	gi, err := r.CharIndexToGraphemeIndex(ci)
	if err != nil {
		return "", err
	}
	return r.GraphemeAt(gi)
}
