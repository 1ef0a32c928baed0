// Package rope implements a balanced binary-tree text buffer for very
// large Unicode documents: insertion, deletion, and positional queries
// stay O(log N) in the number of tree nodes rather than O(N) in document
// length.
//
// A Rope is a tree of two node shapes — leaves holding at most MAX
// graphemes of text (see Limits) and branches holding two children — each carrying
// cached char, grapheme, and line-ending counts so every descent can
// choose a side without touching leaf bytes. Mutating operations (Insert,
// Remove, Split, Append) descend to the affected leaves, splice bytes,
// and unwind recomputing counts and rebalancing (AVL-style) on the way
// back up.
//
// A Rope is owned by a single logical writer at a time: reads (slices,
// iterators) may run concurrently with each other, but never overlap a
// mutation. DESIGN.md records how each component is built and the
// decisions taken along the way.
//
// Basic usage:
//
//	r := rope.FromString("Hello World")
//	r.InsertAtGraphemeIndex(" there", 5)
//	r.RemoveBetweenGraphemeIndices(0, 6)
//	fmt.Println(r.String()) // "there World"
package rope

// Rope is the balanced tree itself: a single root node plus the leaf
// size limits that its own mutations enforce.
type Rope struct {
	root   *node
	limits Limits
}

// New returns an empty rope using the default leaf limits.
func New() *Rope {
	return NewWithLimits(DefaultLimits())
}

// NewWithLimits returns an empty rope using caller-supplied leaf limits.
// Panics if limits are nonsensical (Min <= 0 or Max < 2*Min) —
// that is a programmer error in the host application, not a runtime
// condition callers need to recover from.
func NewWithLimits(limits Limits) *Rope {
	if !limits.Valid() {
		panic("rope: invalid limits")
	}
	return &Rope{root: newLeaf(""), limits: limits}
}

// FromString builds a rope from a UTF-8 string in one pass, using
// the default leaf limits.
func FromString(s string) *Rope {
	return FromStringWithLimits(s, DefaultLimits())
}

// FromStringWithLimits builds a rope from s using caller-supplied leaf
// limits.
func FromStringWithLimits(s string, limits Limits) *Rope {
	if !limits.Valid() {
		panic("rope: invalid limits")
	}
	return &Rope{root: buildFromString(s, limits), limits: limits}
}

// CharCount returns the number of Unicode scalar values in the rope.
func (r *Rope) CharCount() int { return r.root.chars }

// GraphemeCount returns the number of extended grapheme clusters in the
// rope — the unit at which edits are positioned.
func (r *Rope) GraphemeCount() int { return r.root.graphemes }

// LineCount returns line_ending_count + 1; an empty document has one
// line.
func (r *Rope) LineCount() int { return r.root.lineEnds + 1 }

// String materializes the whole document, O(N).
func (r *Rope) String() string {
	var b []byte
	it := r.ChunkIter()
	for it.Next() {
		chunk, _ := it.Chunk()
		b = append(b, chunk...)
	}
	return string(b)
}

// IsBalanced verifies invariant (3) — every branch's children's heights
// differ by at most one — across the whole tree. A debugging predicate,
// not something production code should call on a hot path.
func (r *Rope) IsBalanced() bool {
	return isBalancedNode(r.root)
}

func isBalancedNode(n *node) bool {
	if n.isLeaf() {
		return true
	}
	bf := balanceFactor(n)
	if bf < -1 || bf > 1 {
		return false
	}
	return isBalancedNode(n.left) && isBalancedNode(n.right)
}
