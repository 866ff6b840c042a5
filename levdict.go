// Package levdict provides an in-memory approximate string dictionary:
// given a fixed set of strings indexed once, it answers queries of the
// form "return every indexed string within Levenshtein edit distance k
// of a pattern", for small k (typically 0-4).
//
// The index is a compact immutable trie stored in compressed-sparse-row
// form, searched by driving a row-wise bit-parallel Levenshtein NFA
// character by character alongside a depth-first trie traversal. State
// is stacked by trie depth rather than recomputed, so backtracking
// during the traversal is free:
//
//	root ──a──▷ node ──n──▷ node ──n──▷ node ...
//	state[0]    state[1]    state[2]    state[3]
//
// Every column above is one 64-bit-wide row per edit budget i in
// [0, maxEdits]; advancing a column populates the next one from the
// last, and popping the traversal stack back to a shallower node simply
// rereads an already-computed column instead of rebuilding it.
//
// Two index methods trade memory for speed: SingleTrie drives the NFA
// over one trie built from the indexed strings; ForwardBackwardTrie (an
// "FB-Trie", see Boytsov's survey of approximate-dictionary indexing
// methods) splits the pattern in half and reconciles matches between a
// forward trie and a trie built over the reversed strings, pruning the
// search space at the cost of roughly double the memory.
//
// The index is built once from a finite sequence of strings and frozen;
// there is no mutation API. Concurrent callers may share one *Index and
// call Search without locking.
package levdict

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// wordBits is the machine word width the bit-parallel NFA packs one row
// into. maxEditDistance leaves room for the accept bit and one bit of
// shift headroom (see nfa.go).
const (
	wordBits         = 64
	maxEditDistance  = wordBits - 2
	maxPatternDouble = wordBits - 1
)

// Method selects which index variant CreateIndex builds.
type Method int

const (
	// SingleTrie drives the NFA over one trie built from the indexed
	// strings. Supports patterns with |pattern| + maxEdits <= 63.
	SingleTrie Method = iota
	// ForwardBackwardTrie splits the pattern and searches a forward
	// trie and a trie over the reversed strings. Roughly twice the
	// memory of SingleTrie, several times faster, and supports
	// patterns up to twice as long.
	ForwardBackwardTrie
)

// Index is an immutable, searchable approximate dictionary built by
// CreateIndex. The zero value is not usable.
type Index struct {
	method Method
	single *trie
	fb     *forwardBackwardIndex
}

// CreateIndex builds a searchable index over strings using the given
// method. Record ids returned by Search are the zero-based positions of
// strings as given here. CreateIndex returns ErrInvalidMethod for an
// unrecognized method.
func CreateIndex(strings []string, method Method) (*Index, error) {
	switch method {
	case SingleTrie:
		return &Index{method: method, single: buildTrie(strings)}, nil
	case ForwardBackwardTrie:
		return &Index{method: method, fb: buildForwardBackward(strings)}, nil
	default:
		return nil, errors.Wrapf(ErrInvalidMethod, "CreateIndex: method=%d", method)
	}
}

// Search returns the indexed strings within maxEdits of pattern, as a
// map from record id to the minimum edit distance at which that record
// matched. If returnDistances is false, the returned map's values are
// not meaningful; only its key set is — treat it as a set of record ids.
//
// maxEdits must be non-negative and within the cap for the index's
// method (ErrInvalidEditDistance); pattern must fit within the method's
// length cap for the requested maxEdits (ErrPatternTooLong).
func (ix *Index) Search(pattern string, maxEdits int, returnDistances bool) (map[int32]int, error) {
	patternLen := utf8.RuneCountInString(pattern)
	if err := validateSearchArgs(ix.method, patternLen, maxEdits); err != nil {
		return nil, err
	}

	encoded := encode(pattern)
	var hits map[int32]int
	if maxEdits == 0 {
		hits = make(map[int32]int)
		recordMatch(hits, ix.exactTrie().searchExact(encoded), 0)
	} else if ix.method == SingleTrie {
		hits = trieSearch(ix.single, encoded, maxEdits)
	} else {
		hits = fbTrieSearch(ix.fb, encoded, maxEdits)
	}

	if !returnDistances {
		for id := range hits {
			hits[id] = 0
		}
	}
	return hits, nil
}

// Contains reports whether pattern is present in the index exactly
// (edit distance 0).
func (ix *Index) Contains(pattern string) (bool, error) {
	hits, err := ix.Search(pattern, 0, false)
	if err != nil {
		return false, err
	}
	return len(hits) > 0, nil
}

// exactTrie returns the trie to use for exact lookups: the single trie,
// or the forward trie of an FB-Trie index (both tries of an FB-Trie
// index share the same record ids, so either would do).
func (ix *Index) exactTrie() *trie {
	if ix.method == SingleTrie {
		return ix.single
	}
	return ix.fb.forward
}

// validateSearchArgs enforces the InvalidConfiguration error taxonomy at
// the API boundary, before any search work begins.
func validateSearchArgs(method Method, patternLen, maxEdits int) error {
	if maxEdits < 0 {
		return errors.Wrapf(ErrInvalidEditDistance, "Search: maxEdits=%d is negative", maxEdits)
	}
	if maxEdits > maxEditDistance {
		return errors.Wrapf(ErrInvalidEditDistance, "Search: maxEdits=%d exceeds cap %d", maxEdits, maxEditDistance)
	}

	switch method {
	case SingleTrie:
		if patternLen+maxEdits > maxPatternDouble {
			return errors.Wrapf(ErrPatternTooLong,
				"Search: |pattern|=%d + maxEdits=%d exceeds single-trie cap %d", patternLen, maxEdits, maxPatternDouble)
		}
	case ForwardBackwardTrie:
		headLen := patternLen / 2
		tailLen := patternLen - headLen
		kHead := (maxEdits + 1) / 2
		if headLen+kHead > maxPatternDouble || tailLen+kHead > maxPatternDouble {
			return errors.Wrapf(ErrPatternTooLong,
				"Search: pattern halves (%d,%d) + half-budget %d exceed fb-trie cap %d",
				headLen, tailLen, kHead, maxPatternDouble)
		}
	default:
		return errors.Wrapf(ErrInvalidMethod, "Search: method=%d", method)
	}
	return nil
}
