package rope

// buildFromString constructs a rope from s in one pass. The input's
// graphemes are divided into leaf-sized chunks up front — evenly, so every
// chunk lands in [limits.Min, limits.Max] rather than leaving a short tail —
// then each chunk is pushed onto a stack, merging the top two entries into
// a branch whenever their heights allow it. This yields a near-balanced
// tree in linear total work. When the input is exhausted, the remaining
// stack entries are folded together with append.
func buildFromString(s string, limits Limits) *node {
	if s == "" {
		return newLeaf("")
	}

	segs := segmentLeaf(s)
	n := len(segs)

	if n <= limits.Max {
		// Whole document fits one leaf; it may become a small root, which
		// invariant (1) permits.
		return newLeaf(s)
	}

	sizes := chunkSizes(n, limits)

	var stack []*node
	idx := 0
	for _, size := range sizes {
		chunkEnd := idx + size
		byteStart := segs[idx].byteStart
		var byteEnd int
		if chunkEnd >= n {
			byteEnd = len(s)
		} else {
			byteEnd = segs[chunkEnd].byteStart
		}

		stack = append(stack, newLeaf(s[byteStart:byteEnd]))
		stack = mergeStack(stack)

		idx = chunkEnd
	}

	result := stack[0]
	for i := 1; i < len(stack); i++ {
		result = opAppend(result, stack[i], limits)
	}
	return result
}

// chunkSizes divides n graphemes into k = ceil(n / limits.Max) chunks of as
// close to equal size as possible (the first n%k chunks get one extra
// grapheme). Since limits.Max >= 2*limits.Min is enforced by Limits.Valid,
// every chunk this produces falls within [limits.Min, limits.Max]: the
// smallest chunk k forces is bounded below by limits.Max*(k-1)/k, which is
// at least limits.Min once k >= 2.
func chunkSizes(n int, limits Limits) []int {
	k := (n + limits.Max - 1) / limits.Max
	base := n / k
	rem := n % k

	sizes := make([]int, k)
	for i := range sizes {
		sizes[i] = base
		if i < rem {
			sizes[i]++
		}
	}
	return sizes
}

// mergeStack implements the builder's merge loop: while the
// top two stack entries have equal-or-increasing height front-to-back,
// pop both and push a branch combining them.
func mergeStack(stack []*node) []*node {
	for len(stack) >= 2 {
		top := stack[len(stack)-1]
		second := stack[len(stack)-2]
		if second.height > top.height {
			break
		}
		stack = stack[:len(stack)-2]
		stack = append(stack, newBranch(second, top))
	}
	return stack
}
