package levdict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	for _, method := range []Method{SingleTrie, ForwardBackwardTrie} {
		ix, err := CreateIndex(scenarioStrings, method)
		require.NoError(t, err)

		data, err := ix.Marshal()
		require.NoError(t, err)

		loaded, err := UnmarshalIndex(data)
		require.NoError(t, err)

		for _, q := range []string{"anneal", "bet", "robotic", ""} {
			for k := 0; k <= 3; k++ {
				want, err := ix.Search(q, k, true)
				require.NoError(t, err)
				got, err := loaded.Search(q, k, true)
				require.NoError(t, err)
				assert.Equal(t, want, got, "query %q, k=%d, method=%d", q, k, method)
			}
		}
	}
}

func TestUnmarshalRejectsBadVersion(t *testing.T) {
	payload := serializedIndex{Version: serializedVersion + 1, Method: SingleTrie}
	buf, err := marshalPayload(payload)
	require.NoError(t, err)

	_, err = UnmarshalIndex(buf)
	assert.Error(t, err)
}
