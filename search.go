package levdict

// trieSearch runs a single-trie approximate search: every node reachable
// under an NFA-driven traversal of t that carries a record id
// contributes that id to the result, keeping the minimum distance seen
// across all paths that reach it.
func trieSearch(t *trie, pattern []rune, maxEdits int) map[int32]int {
	matcher := newNFA(pattern, t.depth, maxEdits)
	result := make(map[int32]int)
	iterMatches(t, 0, matcher, func(node int32, distance int) {
		recordMatch(result, t.records[node], distance)
	})
	return result
}

// recordMatch adds every record id in ids to dst with distance, keeping
// the minimum distance on collision. Shared by the single-trie and
// FB-Trie search paths.
func recordMatch(dst map[int32]int, ids []int32, distance int) {
	for _, id := range ids {
		updateMinDistance(dst, id, distance)
	}
}

// updateMinDistance sets dst[id] = distance unless dst already holds a
// smaller distance for id.
func updateMinDistance(dst map[int32]int, id int32, distance int) {
	if cur, ok := dst[id]; !ok || distance < cur {
		dst[id] = distance
	}
}
