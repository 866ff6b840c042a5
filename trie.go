package levdict

import "sort"

// trie is an immutable compressed-sparse-row trie over encoded strings.
// Node 0 is the root. Node v's outgoing edges occupy
// edges[edgePtr[v]:edgePtr[v+1]] (and the parallel children slice) in
// strictly increasing symbol order, which lets searchExact binary-search
// them and iterMatches push them in reverse to visit increasing order.
type trie struct {
	edgePtr  []int32
	edges    []rune
	children []int32
	records  map[int32][]int32 // node -> record ids ending at node
	depth    int32             // one greater than the longest indexed string
}

// edgeTriple is a (parent, symbol, child) row collected while walking
// the sorted input and later sorted lexicographically to produce the
// CSR arrays.
type edgeTriple struct {
	parent, child int32
	symbol        rune
}

// recordString pairs an original input index with its encoded string,
// the unit buildTrie sorts by string value before insertion.
type recordString struct {
	recordID int32
	runes    []rune
}

// buildTrie builds a CSR trie from strings, recording for each input
// position i the record id i at the terminal node for strings[i].
// Strings need not be sorted or unique on input.
func buildTrie(strings []string) *trie {
	data := make([]recordString, len(strings))
	for i, s := range strings {
		data[i] = recordString{recordID: int32(i), runes: encode(s)}
	}
	return buildTrieFromRunes(data)
}

// buildTrieFromRunes builds a CSR trie from already-encoded strings. Used
// directly by the FB-Trie index to build the reversed trie without
// re-encoding.
func buildTrieFromRunes(data []recordString) *trie {
	sort.Slice(data, func(i, j int) bool {
		return lessRunes(data[i].runes, data[j].runes)
	})

	var rows []edgeTriple
	path := []int32{0} // trie nodes along the word currently being inserted
	var last []rune
	nodeCount := int32(1)
	records := make(map[int32][]int32)
	depth := int32(0)

	for _, rs := range data {
		s := rs.runes
		start := commonPrefixLength(s, last)
		last = s
		if int32(len(s))+1 > depth {
			depth = int32(len(s)) + 1
		}
		parent := path[start]
		path = path[:start+1]

		for _, c := range s[start:] {
			rows = append(rows, edgeTriple{parent: parent, symbol: c, child: nodeCount})
			path = append(path, nodeCount)
			parent = nodeCount
			nodeCount++
		}
		terminal := path[len(path)-1]
		records[terminal] = append(records[terminal], rs.recordID)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].parent != rows[j].parent {
			return rows[i].parent < rows[j].parent
		}
		return rows[i].symbol < rows[j].symbol
	})

	edgePtr := make([]int32, nodeCount+1)
	for _, row := range rows {
		edgePtr[row.parent+1]++
	}
	for v := int32(0); v < nodeCount; v++ {
		edgePtr[v+1] += edgePtr[v]
	}
	edges := make([]rune, len(rows))
	children := make([]int32, len(rows))
	cursor := make([]int32, nodeCount)
	copy(cursor, edgePtr[:nodeCount])
	for _, row := range rows {
		idx := cursor[row.parent]
		edges[idx] = row.symbol
		children[idx] = row.child
		cursor[row.parent]++
	}

	if depth == 0 {
		depth = 1
	}

	return &trie{
		edgePtr:  edgePtr,
		edges:    edges,
		children: children,
		records:  records,
		depth:    depth,
	}
}

func lessRunes(a, b []rune) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// edgeRange returns the half-open range of edge indices leaving node v.
func (t *trie) edgeRange(v int32) (int32, int32) {
	return t.edgePtr[v], t.edgePtr[v+1]
}

// searchExact walks pattern from the root via binary search on each
// node's sorted edges, returning the record ids at the terminal node, or
// nil if no string in the trie equals pattern exactly.
func (t *trie) searchExact(pattern []rune) []int32 {
	node := int32(0)
	for _, c := range pattern {
		lo, hi := t.edgeRange(node)
		idx := lo + int32(sort.Search(int(hi-lo), func(i int) bool {
			return t.edges[lo+int32(i)] >= c
		}))
		if idx >= hi || t.edges[idx] != c {
			return nil
		}
		node = t.children[idx]
	}
	return t.records[node]
}
