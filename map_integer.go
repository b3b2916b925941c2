package frozen

import (
	"iter"
	"sort"
)

// integerMap handles fixed-width integer keys with gaps. Built on
// hashTable with the identity hash.
type integerMap[K integerKey, V any] struct {
	t genericTable[K, V]
}

func newIntegerMap[K integerKey, V any](pairs []entry[K, V]) (*integerMap[K, V], error) {
	t, err := buildTableAuto[K, V](pairs, bucketCount(len(pairs)), hashIdentity[K])
	if err != nil {
		return nil, err
	}
	return &integerMap[K, V]{t: t}, nil
}

func (m *integerMap[K, V]) get(k K) (*V, bool) {
	e, ok := m.t.find(hashIdentity(k), func(x K) bool { return x == k })
	if !ok {
		return nil, false
	}
	return &e.val, true
}

func (m *integerMap[K, V]) getKeyValue(k K) (K, *V, bool) {
	e, ok := m.t.find(hashIdentity(k), func(x K) bool { return x == k })
	if !ok {
		var zero K
		return zero, nil, false
	}
	return e.key, &e.val, true
}

func (m *integerMap[K, V]) len() int          { return m.t.len() }
func (m *integerMap[K, V]) all() iter.Seq2[K, V] { return m.t.all() }

// integerRangeMap handles a dense [min,max] key range: a
// subtract-and-bound-check, no hashing or bucket indirection.
type integerRangeMap[K integerKey, V any] struct {
	min, max K
	entries  []V
}

func newIntegerRangeMap[K integerKey, V any](pairs []entry[K, V], min, max K) *integerRangeMap[K, V] {
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })
	entries := make([]V, len(pairs))
	for i, p := range pairs {
		entries[i] = p.val
	}
	return &integerRangeMap[K, V]{min: min, max: max, entries: entries}
}

func (m *integerRangeMap[K, V]) get(k K) (*V, bool) {
	if k < m.min || k > m.max {
		return nil, false
	}
	idx := uint64(k) - uint64(m.min)
	return &m.entries[idx], true
}

func (m *integerRangeMap[K, V]) getKeyValue(k K) (K, *V, bool) {
	v, ok := m.get(k)
	if !ok {
		var zero K
		return zero, nil, false
	}
	return k, v, true
}

func (m *integerRangeMap[K, V]) len() int { return len(m.entries) }

func (m *integerRangeMap[K, V]) all() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, v := range m.entries {
			if !yield(m.min+K(i), v) {
				return
			}
		}
	}
}
