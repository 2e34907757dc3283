package cyan

import "sort"

// PrefixTree is a trie over byte sequences whose nodes are sorted
// arrays, keyed by the longest matching prefix. Insertion is expected
// only during initialization (building the lexer's dispatch table);
// lookups dominate at lex time and are O(m·log 256) for a probe of
// length m.
type PrefixTree[V any] struct {
	table    prefixTable[V]
	value    *V
	hasValue bool
}

type prefixTable[V any] struct {
	entries []prefixEntry[V]
}

type prefixEntry[V any] struct {
	key   byte
	value *PrefixTree[V]
}

func (t *prefixTable[V]) get(key byte) (*PrefixTree[V], bool) {
	idx := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].key >= key })
	if idx < len(t.entries) && t.entries[idx].key == key {
		return t.entries[idx].value, true
	}
	return nil, false
}

func (t *prefixTable[V]) entry(key byte) *PrefixTree[V] {
	idx := sort.Search(len(t.entries), func(i int) bool { return t.entries[i].key >= key })
	if idx < len(t.entries) && t.entries[idx].key == key {
		return t.entries[idx].value
	}
	node := &PrefixTree[V]{}
	entry := prefixEntry[V]{key: key, value: node}
	t.entries = append(t.entries, prefixEntry[V]{})
	copy(t.entries[idx+1:], t.entries[idx:])
	t.entries[idx] = entry
	return node
}

// Get returns the value associated with the longest prefix of seq
// present in the tree, if any.
func (t *PrefixTree[V]) Get(seq []byte) (V, bool) {
	if len(seq) > 0 {
		if child, ok := t.table.get(seq[0]); ok {
			if longer, ok := child.Get(seq[1:]); ok {
				return longer, true
			}
		}
	}
	if t.hasValue {
		return *t.value, true
	}
	var zero V
	return zero, false
}

// InsertSeq associates value with seq, overwriting any previous value
// stored at that exact sequence.
func (t *PrefixTree[V]) InsertSeq(seq []byte, value V) {
	node := t
	for _, key := range seq {
		node = node.table.entry(key)
	}
	v := value
	node.value = &v
	node.hasValue = true
}
