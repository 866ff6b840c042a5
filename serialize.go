package levdict

import (
	"bytes"
	"encoding/gob"

	"github.com/pkg/errors"
)

// serializedVersion tags the on-disk layout so UnmarshalIndex can reject
// a payload written by an incompatible future version of levdict.
const serializedVersion = 1

// serializedTrie mirrors trie's exported-for-gob fields: the five CSR
// fields needed to rebuild a trie without replaying string insertion.
type serializedTrie struct {
	EdgePtr  []int32
	Edges    []rune
	Children []int32
	Records  map[int32][]int32
	Depth    int32
}

// serializedIndex is the gob wire format for Index.Marshal.
type serializedIndex struct {
	Version int
	Method  Method
	Single  *serializedTrie
	Forward *serializedTrie
	Backward *serializedTrie
}

func toSerializedTrie(t *trie) *serializedTrie {
	if t == nil {
		return nil
	}
	return &serializedTrie{
		EdgePtr:  t.edgePtr,
		Edges:    t.edges,
		Children: t.children,
		Records:  t.records,
		Depth:    t.depth,
	}
}

func fromSerializedTrie(st *serializedTrie) *trie {
	if st == nil {
		return nil
	}
	return &trie{
		edgePtr:  st.EdgePtr,
		edges:    st.Edges,
		children: st.Children,
		records:  st.Records,
		depth:    st.Depth,
	}
}

// Marshal serializes the index to a self-describing binary payload that
// UnmarshalIndex can round-trip. This is a supplemental feature: the
// core contract is in-memory only (see SPEC_FULL.md §6).
func (ix *Index) Marshal() ([]byte, error) {
	payload := serializedIndex{
		Version: serializedVersion,
		Method:  ix.method,
	}
	if ix.method == SingleTrie {
		payload.Single = toSerializedTrie(ix.single)
	} else {
		payload.Forward = toSerializedTrie(ix.fb.forward)
		payload.Backward = toSerializedTrie(ix.fb.backward)
	}
	return marshalPayload(payload)
}

// marshalPayload gob-encodes a serializedIndex. Split out from Marshal so
// tests can exercise UnmarshalIndex's version check with a hand-built
// payload.
func marshalPayload(payload serializedIndex) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(payload); err != nil {
		return nil, errors.Wrapf(err, "Index.Marshal: gob.Encode")
	}
	return buf.Bytes(), nil
}

// UnmarshalIndex is the inverse of Index.Marshal.
func UnmarshalIndex(data []byte) (*Index, error) {
	var payload serializedIndex
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&payload); err != nil {
		return nil, errors.Wrapf(err, "UnmarshalIndex: gob.Decode")
	}
	if payload.Version != serializedVersion {
		return nil, errors.Errorf("UnmarshalIndex: unsupported version %d", payload.Version)
	}

	ix := &Index{method: payload.Method}
	switch payload.Method {
	case SingleTrie:
		ix.single = fromSerializedTrie(payload.Single)
	case ForwardBackwardTrie:
		ix.fb = &forwardBackwardIndex{
			forward:  fromSerializedTrie(payload.Forward),
			backward: fromSerializedTrie(payload.Backward),
		}
	default:
		return nil, errors.Wrapf(ErrInvalidMethod, "UnmarshalIndex: method=%d", payload.Method)
	}
	return ix, nil
}
