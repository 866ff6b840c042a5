package levdict

// forwardBackwardIndex is a pair of tries built over the same strings —
// one forward, one over each string's reversed encoding — sharing
// record-id assignment. twoStep and fbTrieSearch use it to run the
// two-step FB-Trie search described in Boytsov's survey of approximate-
// dictionary indexing methods.
type forwardBackwardIndex struct {
	forward  *trie
	backward *trie
}

// buildForwardBackward builds both tries for the FB-Trie index variant.
func buildForwardBackward(strings []string) *forwardBackwardIndex {
	data := make([]recordString, len(strings))
	for i, s := range strings {
		data[i] = recordString{recordID: int32(i), runes: encode(s)}
	}
	forward := buildTrieFromRunes(data)

	backwardData := make([]recordString, len(data))
	for i, rs := range data {
		backwardData[i] = recordString{recordID: rs.recordID, runes: reverseRunes(rs.runes)}
	}
	backward := buildTrieFromRunes(backwardData)

	return &forwardBackwardIndex{forward: forward, backward: backward}
}

// twoStep runs one half of the FB-Trie search over trie t: it matches
// head with budget maxEditsHead, then, for every node reached, resumes a
// fresh tail matcher from that node with whatever edit budget remains.
func twoStep(t *trie, head, tail []rune, maxEdits, maxEditsHead int, yield func(recordID int32, distance int)) {
	headMatcher := newNFA(head, t.depth, maxEditsHead)
	tailMatcher := newNFA(tail, t.depth, maxEdits)

	iterMatches(t, 0, headMatcher, func(nodeHead int32, distHead int) {
		tailMatcher.maxEdits = maxEdits - distHead
		iterMatches(t, nodeHead, tailMatcher, func(nodeTail int32, distTail int) {
			for _, id := range t.records[nodeTail] {
				yield(id, distHead+distTail)
			}
		})
	})
}

// fbTrieSearch runs the forward and backward passes of the FB-Trie
// search and unions their results, keeping the minimum distance across
// both passes when a record is reachable from each.
func fbTrieSearch(fb *forwardBackwardIndex, pattern []rune, maxEdits int) map[int32]int {
	split := len(pattern) / 2
	head, tail := pattern[:split], pattern[split:]

	// Any alignment with total edits <= maxEdits concentrates at most
	// floor(maxEdits/2) edits in one of its halves; exploring both
	// parities with these two head caps is complete.
	kHeadForward := (maxEdits+1)/2 - 1
	kHeadBackward := maxEdits / 2

	result := make(map[int32]int)
	collect := func(id int32, distance int) {
		updateMinDistance(result, id, distance)
	}

	twoStep(fb.forward, head, tail, maxEdits, kHeadForward, collect)
	twoStep(fb.backward, reverseRunes(tail), reverseRunes(head), maxEdits, kHeadBackward, collect)

	return result
}
