package rope

// opSplit divides the subtree rooted at n at grapheme index pos, returning
// (left, right) such that concatenating left then right reproduces n's
// text exactly. Both halves are rebalanced before returning.
func opSplit(n *node, pos int, limits Limits) (*node, *node) {
	if n.isLeaf() {
		byteOff := graphemeByteOffset(n.leaf.text, pos)
		leftText, rightText := splitAtByte(n.leaf.text, byteOff)
		return newLeaf(leftText), newLeaf(rightText)
	}

	if pos < n.left.graphemes {
		splitLeft, splitRight := opSplit(n.left, pos, limits)
		right := opAppend(splitRight, n.right, limits)
		return rebalance(splitLeft, limits), rebalance(right, limits)
	}

	splitLeft, splitRight := opSplit(n.right, pos-n.left.graphemes, limits)
	left := opAppend(n.left, splitLeft, limits)
	return rebalance(left, limits), rebalance(splitRight, limits)
}

// SplitAtGraphemeIndex splits the rope at grapheme index pos: r keeps the
// text before pos, and the returned rope holds the text from pos onward.
// pos must be at most GraphemeCount().
func (r *Rope) SplitAtGraphemeIndex(pos int) (*Rope, error) {
	if pos < 0 || pos > r.root.graphemes {
		return nil, errOOB("SplitAtGraphemeIndex", "grapheme", pos, r.root.graphemes)
	}
	left, right := opSplit(r.root, pos, r.limits)
	r.root = left
	return &Rope{root: right, limits: r.limits}, nil
}
