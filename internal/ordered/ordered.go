// Package ordered provides a string-keyed map that preserves insertion order.
//
// Sibling sections in a confindent document are keyed by name but must iterate
// in declaration order, both for round-trip fidelity and because parent
// resolution during parsing depends on which sibling was declared most
// recently. A plain Go map cannot provide either guarantee.
package ordered

import "iter"

type entry[V any] struct {
	key string
	val V
}

// Map is an insertion-ordered map from string keys to values of type V.
// The zero Map is empty and ready to use.
type Map[V any] struct {
	entries []entry[V]
	index   map[string]int
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) {
	if i, ok := m.index[key]; ok {
		return m.entries[i].val, true
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.index[key]
	return ok
}

// Set inserts val under key, replacing any existing entry. A replaced entry
// moves to the end of the iteration order: re-declaring a key counts as a new
// declaration.
func (m *Map[V]) Set(key string, val V) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.entries = append(m.entries[:i], m.entries[i+1:]...)
		for j := i; j < len(m.entries); j++ {
			m.index[m.entries[j].key] = j
		}
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, entry[V]{key: key, val: val})
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return len(m.entries)
}

// Keys returns the keys in insertion order.
func (m *Map[V]) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.key
	}
	return keys
}

// All iterates over key/value pairs in insertion order.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, e := range m.entries {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// Values iterates over values in insertion order.
func (m *Map[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, e := range m.entries {
			if !yield(e.val) {
				return
			}
		}
	}
}
