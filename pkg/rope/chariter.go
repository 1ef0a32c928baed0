package rope

// CharIter walks a rope's Unicode scalar values (chars) in order,
// transparently crossing grapheme cluster and leaf boundaries. It wraps a
// GraphemeIter and decomposes each grapheme cluster it yields into its
// constituent runes.
type CharIter struct {
	gIter *GraphemeIter
	runes []rune
	idx   int
}

func newCharIter(gIter *GraphemeIter, skip int) *CharIter {
	it := &CharIter{gIter: gIter}
	it.loadNextGrapheme()
	it.idx = skip
	return it
}

func (it *CharIter) loadNextGrapheme() bool {
	g, ok := it.gIter.Next()
	if !ok {
		it.runes = nil
		it.idx = 0
		return false
	}
	it.runes = []rune(g)
	it.idx = 0
	return true
}

// Next returns the next char and true, or (0, false) once exhausted.
func (it *CharIter) Next() (rune, bool) {
	for it.idx >= len(it.runes) {
		if !it.loadNextGrapheme() {
			return 0, false
		}
	}
	c := it.runes[it.idx]
	it.idx++
	return c, true
}

// CharIterator returns a char iterator starting at the rope's beginning.
func (r *Rope) CharIterator() *CharIter {
	it, _ := r.CharIteratorAt(0)
	return it
}

// CharIteratorAt returns a char iterator starting at char index ci. ci may
// equal CharCount(), yielding nothing. ci may fall strictly inside a
// multi-char grapheme cluster, in which case iteration starts at that char
// rather than rounding down to the grapheme's start — CharAt and the other
// Char* lookups round down because they return a whole grapheme, but a
// char iterator can resume mid-grapheme since it yields individual runes.
func (r *Rope) CharIteratorAt(ci int) (*CharIter, error) {
	if ci < 0 || ci > r.root.chars {
		return nil, errOOB("CharIteratorAt", "char", ci, r.root.chars)
	}
	gi := charToGrapheme(r.root, ci)
	graphemeStart := graphemeToChar(r.root, gi)
	giter, err := r.GraphemeIterAt(gi)
	if err != nil {
		return nil, err
	}
	return newCharIter(giter, ci-graphemeStart), nil
}
