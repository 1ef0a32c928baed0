package rope

// LineIter is a cursor keyed by line index. Each call to Next
// computes the grapheme range of the current line and advances to the
// next one.
type LineIter struct {
	rope     *Rope
	li       int
	lastLine int
}

// LineIter returns a line iterator starting at line 0.
func (r *Rope) LineIter() *LineIter {
	return &LineIter{rope: r, li: 0, lastLine: r.root.lineEnds}
}

// LineIterAt returns a line iterator starting at line index li. Requires
// li <= LineCount()-1.
func (r *Rope) LineIterAt(li int) (*LineIter, error) {
	if li < 0 || li > r.root.lineEnds {
		return nil, errOOB("LineIterAt", "line", li, r.root.lineEnds)
	}
	return &LineIter{rope: r, li: li, lastLine: r.root.lineEnds}, nil
}

// Next returns the line's text as a Slice and true, or (Slice{}, false)
// once every line has been yielded.
func (it *LineIter) Next() (Slice, bool) {
	if it.li > it.lastLine {
		return Slice{}, false
	}
	start, _ := it.rope.LineIndexToGraphemeIndex(it.li)
	var end int
	if it.li == it.lastLine {
		end = it.rope.root.graphemes
	} else {
		end, _ = it.rope.LineIndexToGraphemeIndex(it.li + 1)
	}
	it.li++
	s, _ := it.rope.Slice(start, end)
	return s, true
}
