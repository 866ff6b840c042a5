package levdict

// matchFrame pairs a position in the NFA's depth-indexed state stack
// with an edge still to be explored in the trie: an explicit stack frame
// for a depth-first walk, generalized from a trie node + NFA diagonal to
// an edge index + NFA depth (see DESIGN.md).
type matchFrame struct {
	nfaDepth int32
	edgeIdx  int32
}

// iterMatches walks the subtree of t rooted at startNode depth-first,
// calling yield once for every node reachable along some pattern-
// matching path under matcher, paired with the smallest edit distance
// accepted along that path. Nodes are visited in increasing edge-symbol
// order at every level because children are pushed in reverse.
//
// matcher's depth indexing is relative to startNode: iterMatches always
// begins at NFA depth 0, regardless of how deep startNode sits in the
// trie. This is what lets the FB-Trie two-step search resume the tail
// matcher, freshly initialized, from the node where the head matcher
// left off.
func iterMatches(t *trie, startNode int32, matcher *nfa, yield func(node int32, distance int)) {
	if d := matcher.getDistance(0); d >= 0 {
		yield(startNode, d)
	}

	var stack []matchFrame
	stack = pushChildren(stack, t, startNode, 0)

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		symbol := t.edges[f.edgeIdx]
		matcher.processSymbol(symbol, int(f.nfaDepth))

		nextDepth := f.nfaDepth + 1
		if !matcher.isActive(int(nextDepth)) {
			continue
		}

		node := t.children[f.edgeIdx]
		if distance := matcher.getDistance(int(nextDepth)); distance >= 0 {
			yield(node, distance)
		}
		stack = pushChildren(stack, t, node, nextDepth)
	}
}

// pushChildren pushes every outgoing edge of node onto stack in reverse
// symbol order, so that popping the stack visits them in increasing
// symbol order.
func pushChildren(stack []matchFrame, t *trie, node int32, nfaDepth int32) []matchFrame {
	lo, hi := t.edgeRange(node)
	for i := hi - 1; i >= lo; i-- {
		stack = append(stack, matchFrame{nfaDepth: nfaDepth, edgeIdx: i})
	}
	return stack
}
