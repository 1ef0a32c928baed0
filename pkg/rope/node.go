package rope

import "github.com/google/uuid"

// node is the tagged union at the heart of the rope: every node is either
// a leaf (owns a contiguous, grapheme-bounded run of text) or a branch
// (owns two children and no text of its own). Both shapes carry the same
// cached aggregates so that every positional query can choose a child by
// comparing against a cached count instead of descending blind.
type node struct {
	// leaf fields. leaf is non-nil for a leaf node, nil for a branch.
	leaf *leafText

	// branch fields. Both are nil for a leaf node.
	left  *node
	right *node

	// Cached aggregates, valid for both shapes. For a leaf these describe
	// the leaf's own text; for a branch they are the sum over children.
	chars      int // Unicode scalar values
	graphemes  int // extended grapheme clusters (UAX #29)
	lineEnds   int // line-ending grapheme clusters
	height     int // 1 for a leaf, 1+max(child heights) for a branch

	// id labels this node in to_graphviz output. It has no bearing on
	// rope semantics; it exists purely so two renders of equal-shape,
	// different-identity trees are visually distinguishable without
	// printing a process-local pointer address.
	id string
}

// leafText is the owned, mutable UTF-8 byte sequence of a leaf.
type leafText struct {
	text string
}

func newNodeID() string {
	return uuid.NewString()[:8]
}

// newLeaf builds a leaf node from raw text and counts it from scratch.
func newLeaf(text string) *node {
	n := &node{leaf: &leafText{text: text}, height: 1, id: newNodeID()}
	n.recountLeaf()
	return n
}

// newBranch wires two already-counted children under a fresh branch node
// and derives the branch's own cached aggregates from them.
func newBranch(left, right *node) *node {
	n := &node{left: left, right: right, id: newNodeID()}
	n.recountBranch()
	return n
}

func (n *node) isLeaf() bool { return n.leaf != nil }

// recountLeaf recomputes a leaf's cached aggregates from its text: the
// single source of truth that keeps positional queries O(log N).
func (n *node) recountLeaf() {
	c, g, l := countText(n.leaf.text)
	n.chars, n.graphemes, n.lineEnds = c, g, l
	n.height = 1
}

// recountBranch recomputes a branch's cached aggregates and height from
// its children, the counterpart to recountLeaf.
func (n *node) recountBranch() {
	n.chars = n.left.chars + n.right.chars
	n.graphemes = n.left.graphemes + n.right.graphemes
	n.lineEnds = n.left.lineEnds + n.right.lineEnds
	n.height = 1 + maxInt(n.left.height, n.right.height)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func balanceFactor(n *node) int {
	if n.isLeaf() {
		return 0
	}
	return n.left.height - n.right.height
}

func heightOf(n *node) int {
	if n == nil {
		return 0
	}
	return n.height
}
