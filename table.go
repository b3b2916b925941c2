package frozen

import (
	"iter"

	"github.com/pkg/errors"
)

// entry is the unit of payload owned by exactly one representation,
// never moved after construction.
type entry[K any, V any] struct {
	key K
	val V
}

// unsignedSlot is every integer width a bucket descriptor may be
// compressed to. uint64 stands in for a platform word.
type unsignedSlot interface {
	~uint8 | ~uint16 | ~uint64
}

// maxOf returns the maximum value representable by S, via the
// all-ones-bit-pattern trick: the zero value's bitwise complement is
// exactly an unsigned type's maximum.
func maxOf[S unsignedSlot]() uint64 {
	var z S
	return uint64(^z)
}

// slot is a half-open [min,max) range into the entry array. An
// empty/unused bucket has min==max==0.
type slot[S unsignedSlot] struct {
	min, max S
}

// hashTable is a build-once, closed-addressing table. S is the
// compressed descriptor width chosen by the caller from the entry
// count.
type hashTable[K any, V any, S unsignedSlot] struct {
	entries []entry[K, V]
	slots   []slot[S]
	numSlots uint64
}

// buildHashTable hashes every entry, groups by bucket so same-bucket
// entries land contiguously in entries, and records each bucket's
// [min,max) range. Entries within a bucket are not further ordered.
// Fails with ErrCapacityExceeded if the entry count overflows S's
// range.
func buildHashTable[K any, V any, S unsignedSlot](pairs []entry[K, V], numSlots int, hashOf func(K) uint64) (*hashTable[K, V, S], error) {
	if numSlots < 1 {
		numSlots = 1
	}

	n := len(pairs)
	if uint64(n) > maxOf[S]() {
		return nil, errors.Wrapf(ErrCapacityExceeded, "%d entries exceed descriptor width capacity %d", n, maxOf[S]())
	}

	if n == 0 {
		return &hashTable[K, V, S]{
			entries:  nil,
			slots:    make([]slot[S], numSlots),
			numSlots: uint64(numSlots),
		}, nil
	}

	bucketOf := make([]int, n)
	counts := make([]int, numSlots)
	for i, p := range pairs {
		b := int(hashOf(p.key) % uint64(numSlots))
		bucketOf[i] = b
		counts[b]++
	}

	// Prefix sums give each bucket's starting offset; entries land
	// contiguously per bucket without an explicit sort, one pass to
	// place them after the offsets are known.
	offsets := make([]int, numSlots)
	running := 0
	for b := 0; b < numSlots; b++ {
		offsets[b] = running
		running += counts[b]
	}

	entries := make([]entry[K, V], n)
	cursor := append([]int(nil), offsets...)
	for i, p := range pairs {
		b := bucketOf[i]
		entries[cursor[b]] = p
		cursor[b]++
	}

	slots := make([]slot[S], numSlots)
	for b := 0; b < numSlots; b++ {
		if counts[b] == 0 {
			continue
		}
		slots[b] = slot[S]{min: S(offsets[b]), max: S(offsets[b] + counts[b])}
	}

	return &hashTable[K, V, S]{
		entries:  entries,
		slots:    slots,
		numSlots: uint64(numSlots),
	}, nil
}

// bucketRange computes h(key) mod B and fetches the bucket's
// descriptor range.
func (t *hashTable[K, V, S]) bucketRange(hashCode uint64) (int, int) {
	b := hashCode % t.numSlots
	s := t.slots[b]
	return int(s.min), int(s.max)
}

// find linear-scans the bucket for a key equal to the one sought;
// first match wins.
func (t *hashTable[K, V, S]) find(hashCode uint64, eq func(K) bool) (*entry[K, V], bool) {
	lo, hi := t.bucketRange(hashCode)
	for i := lo; i < hi; i++ {
		if eq(t.entries[i].key) {
			return &t.entries[i], true
		}
	}
	return nil, false
}

func (t *hashTable[K, V, S]) len() int { return len(t.entries) }

func (t *hashTable[K, V, S]) all() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range t.entries {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}

// genericTable is the width-erased view of hashTable[K,V,S]: callers
// program against it so the descriptor-width tier stays an internal
// construction-time decision invisible past buildTableAuto.
type genericTable[K any, V any] interface {
	find(hashCode uint64, eq func(K) bool) (*entry[K, V], bool)
	len() int
	all() iter.Seq2[K, V]
}

// buildTableAuto picks the descriptor width from the entry count
// (8-bit for N<=255, 16-bit for N<=65535, platform word otherwise)
// and builds the table at that width.
func buildTableAuto[K any, V any](pairs []entry[K, V], numSlots int, hashOf func(K) uint64) (genericTable[K, V], error) {
	n := len(pairs)
	switch {
	case n <= 255:
		return buildHashTable[K, V, uint8](pairs, numSlots, hashOf)
	case n <= 65535:
		return buildHashTable[K, V, uint16](pairs, numSlots, hashOf)
	default:
		return buildHashTable[K, V, uint64](pairs, numSlots, hashOf)
	}
}
