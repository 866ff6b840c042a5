package levdict

// nfa is a bit-parallel Levenshtein automaton for a fixed pattern. It is
// driven one trie-edge symbol at a time by iterMatches: processSymbol
// advances the automaton's state by one position in the trie, and
// isActive/getDistance report whether the path walked so far can still
// (or already does) match the pattern within the edit budget.
//
// State is a two-dimensional stack of 64-bit rows, state[d][i], one row
// per (trie depth reached, edits spent). Bit j of state[d][i] is set iff
// some alignment consuming exactly d trie-path symbols and i edits is
// currently matching pattern prefix j. Because rows are indexed by trie
// depth rather than absolute trie coordinates, backtracking during the
// trie traversal is free: popping back to a shallower depth just means
// reading an already-computed row instead of recomputing it.
type nfa struct {
	bitmaps map[rune]uint64 // bitmaps[c] has bit j set iff pattern[j] == c
	m       int             // pattern length
	check   uint64          // accept bit: 1<<m

	state       [][]uint64 // state[depth][0..maxEdits]
	firstActive []int      // firstActive[depth] = smallest i with state[depth][i] != 0
	maxEdits    int        // mutable: FB-Trie tightens this mid-query
}

// newNFA builds the automaton for pattern, allocating state rows up to
// maxDepth deep and maxEdits edits wide. maxDepth must be at least the
// depth of every trie this matcher will be driven across.
func newNFA(pattern []rune, maxDepth int32, maxEdits int) *nfa {
	bitmaps := make(map[rune]uint64, len(pattern))
	for j, c := range pattern {
		bitmaps[c] |= uint64(1) << uint(j)
	}

	stateSize := maxEdits + 1
	state := make([][]uint64, maxDepth)
	for d := range state {
		state[d] = make([]uint64, stateSize)
	}
	// Initial row: budget i admits up to i leading deletions from the
	// pattern.
	if stateSize > 0 {
		state[0][0] = 1
		for i := 1; i < stateSize; i++ {
			state[0][i] = (uint64(1)<<uint(i) - 1) << 1
		}
	}

	return &nfa{
		bitmaps:     bitmaps,
		m:           len(pattern),
		check:       uint64(1) << uint(len(pattern)),
		state:       state,
		firstActive: make([]int, maxDepth),
		maxEdits:    maxEdits,
	}
}

// processSymbol advances the automaton by one trie-edge symbol, writing
// state[d+1] from state[d].
func (n *nfa) processSymbol(symbol rune, d int) {
	B := n.bitmaps[symbol] // zero value for a symbol never seen in pattern
	old := n.state[d]
	next := n.state[d+1]
	fa := n.firstActive[d]

	for i := 0; i < fa && i < len(next); i++ {
		next[i] = 0
	}

	newFirstActive := fa
	for i := fa; i <= n.maxEdits; i++ {
		v := (old[i] & B) << 1
		if i > 0 {
			v |= old[i-1] | (old[i-1] << 1) | (next[i-1] << 1)
		}
		next[i] = v
		if v == 0 {
			newFirstActive++
		}
	}
	n.firstActive[d+1] = newFirstActive
}

// isActive reports whether any edit budget up to maxEdits keeps at least
// one position of the pattern alive at depth d.
func (n *nfa) isActive(d int) bool {
	return n.firstActive[d] <= n.maxEdits
}

// getDistance returns the smallest i <= maxEdits for which the path
// reaching depth d accepts the full pattern, or -1 if none does.
func (n *nfa) getDistance(d int) int {
	for i := n.firstActive[d]; i <= n.maxEdits; i++ {
		if n.state[d][i]&n.check != 0 {
			return i
		}
	}
	return -1
}
