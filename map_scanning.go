package frozen

import "iter"

// scanningMap is used for tiny maps. A flat array and a linear scan
// beat any hashed scheme at this size.
type scanningMap[K comparable, V any] struct {
	entries []entry[K, V]
}

func newScanningMap[K comparable, V any](pairs []entry[K, V]) *scanningMap[K, V] {
	return &scanningMap[K, V]{entries: pairs}
}

func (m *scanningMap[K, V]) get(k K) (*V, bool) {
	for i := range m.entries {
		if m.entries[i].key == k {
			return &m.entries[i].val, true
		}
	}
	return nil, false
}

func (m *scanningMap[K, V]) getKeyValue(k K) (K, *V, bool) {
	for i := range m.entries {
		if m.entries[i].key == k {
			return m.entries[i].key, &m.entries[i].val, true
		}
	}
	var zero K
	return zero, nil, false
}

func (m *scanningMap[K, V]) len() int { return len(m.entries) }

func (m *scanningMap[K, V]) all() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}
