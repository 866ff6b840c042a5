package levdict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildForwardBackwardSharesRecordIDs(t *testing.T) {
	strings := []string{"cat", "tac", "dog"}
	fb := buildForwardBackward(strings)

	got := fb.forward.searchExact(encode("cat"))
	assert.Equal(t, []int32{0}, got)

	// backward trie is built over reversed strings, sharing record ids
	got = fb.backward.searchExact(encode("tac")) // reverse of "cat"
	assert.Equal(t, []int32{0}, got)
	got = fb.backward.searchExact(encode("cat")) // reverse of "tac"
	assert.Equal(t, []int32{1}, got)
}

func TestHalfBoundSplitCoversBothParities(t *testing.T) {
	// kHeadForward = ceil(k/2) - 1, kHeadBackward = floor(k/2); together
	// they cover every way a budget of k edits can split across a
	// pattern's two halves.
	cases := []struct {
		k                      int
		wantForward, wantBack int
	}{
		{1, 0, 0},
		{2, 0, 1},
		{3, 1, 1},
		{4, 1, 2},
	}
	for _, c := range cases {
		forward := (c.k+1)/2 - 1
		back := c.k / 2
		assert.Equal(t, c.wantForward, forward, "k=%d", c.k)
		assert.Equal(t, c.wantBack, back, "k=%d", c.k)
	}
}

func TestTwoStepFindsSplitAcrossBothHalves(t *testing.T) {
	strings := []string{"abcdef"}
	fb := buildForwardBackward(strings)

	got := fbTrieSearch(fb, encode("abcdxf"), 1)
	assert.Equal(t, map[int32]int{0: 1}, got)
}
