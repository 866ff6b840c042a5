package levdict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTrieExactSearch(t *testing.T) {
	strings := []string{"anneal", "annualy", "but", "bat", "robot"}
	tr := buildTrie(strings)

	for i, s := range strings {
		got := tr.searchExact(encode(s))
		assert.Equal(t, []int32{int32(i)}, got, "searchExact(%q)", s)
	}

	assert.Nil(t, tr.searchExact(encode("nope")))
	assert.Nil(t, tr.searchExact(encode("ann")))
}

func TestBuildTrieEmptyDictionary(t *testing.T) {
	tr := buildTrie(nil)
	assert.Nil(t, tr.searchExact(encode("")))
	assert.Nil(t, tr.searchExact(encode("a")))
	assert.Equal(t, int32(1), tr.depth)
}

func TestBuildTrieSingleEmptyString(t *testing.T) {
	tr := buildTrie([]string{""})
	assert.Equal(t, []int32{0}, tr.searchExact(encode("")))
}

func TestBuildTrieDuplicateStrings(t *testing.T) {
	// Per DESIGN.md's resolution of the duplicate-strings open question,
	// every record id that shares a string is retained at that string's
	// terminal node.
	tr := buildTrie([]string{"foo", "bar", "foo"})
	assert.ElementsMatch(t, []int32{0, 2}, tr.searchExact(encode("foo")))
	assert.Equal(t, []int32{1}, tr.searchExact(encode("bar")))
}

func TestEdgesSortedPerNode(t *testing.T) {
	tr := buildTrie([]string{"cat", "car", "can", "bat"})
	for v := int32(0); v < int32(len(tr.edgePtr)-1); v++ {
		lo, hi := tr.edgeRange(v)
		for i := lo + 1; i < hi; i++ {
			assert.Less(t, tr.edges[i-1], tr.edges[i], "edges of node %d not strictly increasing", v)
		}
	}
}

func TestTrieDepthIsOneGreaterThanLongestString(t *testing.T) {
	tr := buildTrie([]string{"a", "abc", "ab"})
	assert.Equal(t, int32(4), tr.depth)
}
