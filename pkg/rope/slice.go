package rope

// Slice is an immutable view naming a containing rope plus grapheme bounds
// [start, end). It borrows the rope read-only and must not outlive a
// mutation of it.
type Slice struct {
	rope       *Rope
	start, end int
}

// Slice returns the view over grapheme range [a, b). b is clamped to
// GraphemeCount(); a must not exceed b.
func (r *Rope) Slice(a, b int) (Slice, error) {
	if a < 0 || b < a {
		return Slice{}, errRange("Slice", a, b, r.root.graphemes)
	}
	if b > r.root.graphemes {
		b = r.root.graphemes
	}
	return Slice{rope: r, start: a, end: b}, nil
}

// Len returns the number of graphemes the slice spans.
func (s Slice) Len() int { return s.end - s.start }

// String materializes the slice's text, O(len(s)).
func (s Slice) String() string {
	var b []byte
	it := s.GraphemeIter()
	for {
		g, ok := it.Next()
		if !ok {
			break
		}
		b = append(b, g...)
	}
	return string(b)
}

// GraphemeIter returns a grapheme iterator bounded to the slice's range.
func (s Slice) GraphemeIter() *GraphemeIter {
	return newGraphemeIter(s.rope.root, s.start, s.end-s.start)
}

// Slice returns a sub-slice relative to s's own start, clamped at s's end.
func (s Slice) Slice(a, b int) (Slice, error) {
	na, nb := s.start+a, s.start+b
	if nb > s.end {
		nb = s.end
	}
	if a < 0 || na > nb {
		return Slice{}, errRange("Slice", a, b, s.Len())
	}
	return Slice{rope: s.rope, start: na, end: nb}, nil
}
