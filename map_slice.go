package frozen

import "iter"

// sliceSpecialMap is the shared shape of the sub-slice and length
// representations: a hashTable keyed by a cheap-to-compute
// discriminator instead of a hash of the whole key, with equality
// still checked against the whole key inside the bucket.
type sliceSpecialMap[V any] struct {
	t genericTable[string, V]
}

func (m *sliceSpecialMap[V]) getWithHash(k string, hashCode uint64) (*V, bool) {
	e, ok := m.t.find(hashCode, func(x string) bool { return x == k })
	if !ok {
		return nil, false
	}
	return &e.val, true
}

func (m *sliceSpecialMap[V]) getKeyValueWithHash(k string, hashCode uint64) (string, *V, bool) {
	e, ok := m.t.find(hashCode, func(x string) bool { return x == k })
	if !ok {
		return "", nil, false
	}
	return e.key, &e.val, true
}

func (m *sliceSpecialMap[V]) len() int              { return m.t.len() }
func (m *sliceSpecialMap[V]) all() iter.Seq2[string, V] { return m.t.all() }

// leftSliceMap hashes each key by its [start,start+len) byte window.
// Keys too short for the window hash to the sentinel bucket 0 and
// still reach the correct bucket, since construction applies the
// identical rule.
type leftSliceMap[V any] struct {
	sliceSpecialMap[V]
	factory    HasherFactory
	start, len int
}

func newLeftSliceMap[V any](pairs []entry[string, V], factory HasherFactory, start, length int) (*leftSliceMap[V], error) {
	hashOf := func(k string) uint64 { return windowHash(factory(), k, start, length) }
	t, err := buildTableAuto[string, V](pairs, bucketCount(len(pairs)), hashOf)
	if err != nil {
		return nil, err
	}
	return &leftSliceMap[V]{sliceSpecialMap: sliceSpecialMap[V]{t: t}, factory: factory, start: start, len: length}, nil
}

func (m *leftSliceMap[V]) hashOf(k string) uint64 { return windowHash(m.factory(), k, m.start, m.len) }

func (m *leftSliceMap[V]) get(k string) (*V, bool) { return m.getWithHash(k, m.hashOf(k)) }
func (m *leftSliceMap[V]) getKeyValue(k string) (string, *V, bool) {
	return m.getKeyValueWithHash(k, m.hashOf(k))
}

// rightSliceMap resolves its window against each key's actual length
// at hash time: [len-start-len, len-start) from the right.
type rightSliceMap[V any] struct {
	sliceSpecialMap[V]
	factory    HasherFactory
	start, len int
}

func newRightSliceMap[V any](pairs []entry[string, V], factory HasherFactory, start, length int) (*rightSliceMap[V], error) {
	hashOf := func(k string) uint64 { return rightWindowHash(factory(), k, start, length) }
	t, err := buildTableAuto[string, V](pairs, bucketCount(len(pairs)), hashOf)
	if err != nil {
		return nil, err
	}
	return &rightSliceMap[V]{sliceSpecialMap: sliceSpecialMap[V]{t: t}, factory: factory, start: start, len: length}, nil
}

func (m *rightSliceMap[V]) hashOf(k string) uint64 {
	return rightWindowHash(m.factory(), k, m.start, m.len)
}

func (m *rightSliceMap[V]) get(k string) (*V, bool) { return m.getWithHash(k, m.hashOf(k)) }
func (m *rightSliceMap[V]) getKeyValue(k string) (string, *V, bool) {
	return m.getKeyValueWithHash(k, m.hashOf(k))
}

// lengthMap hashes on key length, for key sets where length alone
// distinguishes every key.
type lengthMap[V any] struct {
	sliceSpecialMap[V]
}

func newLengthMap[V any](pairs []entry[string, V]) (*lengthMap[V], error) {
	hashOf := func(k string) uint64 { return uint64(len(k)) }
	t, err := buildTableAuto[string, V](pairs, bucketCount(len(pairs)), hashOf)
	if err != nil {
		return nil, err
	}
	return &lengthMap[V]{sliceSpecialMap: sliceSpecialMap[V]{t: t}}, nil
}

func (m *lengthMap[V]) get(k string) (*V, bool) { return m.getWithHash(k, uint64(len(k))) }
func (m *lengthMap[V]) getKeyValue(k string) (string, *V, bool) {
	return m.getKeyValueWithHash(k, uint64(len(k)))
}
