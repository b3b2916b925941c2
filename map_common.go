package frozen

import (
	"fmt"
	"iter"
)

// commonMap is the fallback representation for any key type with no
// sharper specialization. Built on hashTable with a supplied
// general-purpose hasher applied to the whole key.
type commonMap[K comparable, V any] struct {
	t      genericTable[K, V]
	hashOf func(K) uint64
}

func newCommonMap[K comparable, V any](pairs []entry[K, V], hashOf func(K) uint64) (*commonMap[K, V], error) {
	t, err := buildTableAuto[K, V](pairs, bucketCount(len(pairs)), hashOf)
	if err != nil {
		return nil, err
	}
	return &commonMap[K, V]{t: t, hashOf: hashOf}, nil
}

func (m *commonMap[K, V]) get(k K) (*V, bool) {
	e, ok := m.t.find(m.hashOf(k), func(x K) bool { return x == k })
	if !ok {
		return nil, false
	}
	return &e.val, true
}

func (m *commonMap[K, V]) getKeyValue(k K) (K, *V, bool) {
	e, ok := m.t.find(m.hashOf(k), func(x K) bool { return x == k })
	if !ok {
		var zero K
		return zero, nil, false
	}
	return e.key, &e.val, true
}

func (m *commonMap[K, V]) len() int            { return m.t.len() }
func (m *commonMap[K, V]) all() iter.Seq2[K, V] { return m.t.all() }

// defaultOpaqueHasher formats the key and hashes the formatting. Keys
// whose Go representation can collide under formatting (a custom
// String() that collapses distinct values) should supply WithKeyHasher
// instead.
func defaultOpaqueHasher[K comparable](factory HasherFactory) func(K) uint64 {
	return func(k K) uint64 {
		return hashBytes(factory, []byte(fmt.Sprintf("%#v", k)))
	}
}
