package frozen

import "iter"

// Pair is one (key, value) input to NewMap. A slice of Pair lets
// callers pass duplicate keys through to construction instead of a
// native Go map silently deduplicating them first.
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// config holds the optional construction-time knobs. keyHasher is
// stored as any and type-asserted back to func(K) uint64 inside the
// Common branch, since a non-generic Option type is far easier to call
// than threading K, V through every option.
type config struct {
	hasherFactory HasherFactory
	keyHasher     any
}

func defaultConfig() *config {
	return &config{hasherFactory: newXXHasher}
}

// Option configures a NewMap/NewSet build.
type Option func(*config)

// WithHasher overrides the byte-hashing primitive used for string
// whole-key and sub-slice hashing. Defaults to xxhash.
func WithHasher(f HasherFactory) Option {
	return func(c *config) { c.hasherFactory = f }
}

// WithKeyHasher supplies a general-purpose hash function for an opaque
// key type K that isn't a recognized integer width or string. Without
// one, opaque keys fall back to hashing a %#v rendering of the key
// (see defaultOpaqueHasher), which is correct but slower.
func WithKeyHasher[K comparable](f func(K) uint64) Option {
	return func(c *config) { c.keyHasher = f }
}

// kOps is a representation's operations, closed over its concrete
// internal key type T and re-exposed in terms of the facade's own K
// via a pair of type assertions.
type kOps[K comparable, V any] struct {
	get         func(K) (*V, bool)
	getKeyValue func(K) (K, *V, bool)
	length      func() int
	all         iter.Seq2[K, V]
}

// repOf is satisfied by every specialized representation, parameterized
// by whichever concrete key type it actually stores (K itself for
// Scanning/Common, one predeclared integer width for Integer/
// Integer-range, or string for the slice-keyed family).
type repOf[T comparable, V any] interface {
	get(T) (*V, bool)
	getKeyValue(T) (T, *V, bool)
	len() int
	all() iter.Seq2[T, V]
}

// erase closes a repOf[T,V] over the facade's own key type K, via type
// assertions. buildOps only calls erase[K,V,T] after confirming, by a
// type switch over a live key, that this batch of keys really is of
// type T, so the assertions always succeed.
func erase[K comparable, V any, T comparable](rep repOf[T, V]) kOps[K, V] {
	return kOps[K, V]{
		get: func(k K) (*V, bool) {
			tk, ok := any(k).(T)
			if !ok {
				return nil, false
			}
			return rep.get(tk)
		},
		getKeyValue: func(k K) (K, *V, bool) {
			tk, ok := any(k).(T)
			if !ok {
				var zero K
				return zero, nil, false
			}
			tv, v, ok2 := rep.getKeyValue(tk)
			if !ok2 {
				var zero K
				return zero, nil, false
			}
			kk, _ := any(tv).(K)
			return kk, v, true
		},
		length: rep.len,
		all: func(yield func(K, V) bool) {
			for t, v := range rep.all() {
				k, _ := any(t).(K)
				if !yield(k, v) {
					return
				}
			}
		},
	}
}

func convertEntries[K comparable, V any, T comparable](pairs []entry[K, V]) []entry[T, V] {
	out := make([]entry[T, V], len(pairs))
	for i, p := range pairs {
		t, _ := any(p.key).(T)
		out[i] = entry[T, V]{key: t, val: p.val}
	}
	return out
}

// buildOps picks a representation:
//
//	if N < 4:            Scanning
//	else if K integer:   analyze -> Range | Normal
//	else if K string:    analyze -> Common | Length | Left | Right
//	else:                Common
//
// "K is an integer type" is tested against every predeclared integer
// width uniformly. "K is a string type" is tested against exactly
// `string`: a type switch matches concrete types, not underlying
// kinds, so a named type over one of these (`type Weekday int32`)
// falls through to Common. Always correct, just not maximally
// specialized.
func buildOps[K comparable, V any](pairs []entry[K, V], cfg *config) (kOps[K, V], string, error) {
	if len(pairs) < 4 {
		rep := newScanningMap(pairs)
		return erase[K, V, K](rep), "scanning", nil
	}

	switch any(pairs[0].key).(type) {
	case int:
		return buildIntegerOps[K, V, int](pairs)
	case int8:
		return buildIntegerOps[K, V, int8](pairs)
	case int16:
		return buildIntegerOps[K, V, int16](pairs)
	case int32:
		return buildIntegerOps[K, V, int32](pairs)
	case int64:
		return buildIntegerOps[K, V, int64](pairs)
	case uint:
		return buildIntegerOps[K, V, uint](pairs)
	case uint8:
		return buildIntegerOps[K, V, uint8](pairs)
	case uint16:
		return buildIntegerOps[K, V, uint16](pairs)
	case uint32:
		return buildIntegerOps[K, V, uint32](pairs)
	case uint64:
		return buildIntegerOps[K, V, uint64](pairs)
	case uintptr:
		return buildIntegerOps[K, V, uintptr](pairs)
	case string:
		return buildStringOps[K, V](pairs, cfg)
	}

	return buildCommonOps(pairs, cfg)
}

func buildIntegerOps[K comparable, V any, T integerKey](pairs []entry[K, V]) (kOps[K, V], string, error) {
	conv := convertEntries[K, V, T](pairs)
	keys := make([]T, len(conv))
	for i, e := range conv {
		keys[i] = e.key
	}

	class, min, max := analyzeIntKeys(keys)
	if class == intClassRange {
		rep := newIntegerRangeMap[T, V](conv, min, max)
		return erase[K, V, T](rep), "integer-range", nil
	}

	rep, err := newIntegerMap[T, V](conv)
	if err != nil {
		return kOps[K, V]{}, "", err
	}
	return erase[K, V, T](rep), "integer", nil
}

func buildStringOps[K comparable, V any](pairs []entry[K, V], cfg *config) (kOps[K, V], string, error) {
	conv := convertEntries[K, V, string](pairs)
	keys := make([]string, len(conv))
	for i, e := range conv {
		keys[i] = e.key
	}

	analysis := analyzeSliceKeys(keys)
	factory := cfg.hasherFactory

	switch analysis.class {
	case sliceClassLength:
		rep, err := newLengthMap[V](conv)
		if err != nil {
			return kOps[K, V]{}, "", err
		}
		return erase[K, V, string](rep), "length", nil

	case sliceClassLeftSlice:
		rep, err := newLeftSliceMap[V](conv, factory, analysis.start, analysis.len)
		if err != nil {
			return kOps[K, V]{}, "", err
		}
		return erase[K, V, string](rep), "left-slice", nil

	case sliceClassRightSlice:
		rep, err := newRightSliceMap[V](conv, factory, analysis.start, analysis.len)
		if err != nil {
			return kOps[K, V]{}, "", err
		}
		return erase[K, V, string](rep), "right-slice", nil

	default: // Normal
		hashOf := func(k string) uint64 { return hashBytes(factory, []byte(k)) }
		rep, err := newCommonMap[string, V](conv, hashOf)
		if err != nil {
			return kOps[K, V]{}, "", err
		}
		return erase[K, V, string](rep), "common", nil
	}
}

func buildCommonOps[K comparable, V any](pairs []entry[K, V], cfg *config) (kOps[K, V], string, error) {
	hashOf, _ := cfg.keyHasher.(func(K) uint64)
	if hashOf == nil {
		hashOf = defaultOpaqueHasher[K](cfg.hasherFactory)
	}
	rep, err := newCommonMap(pairs, hashOf)
	if err != nil {
		return kOps[K, V]{}, "", err
	}
	return erase[K, V, K](rep), "common", nil
}

// Map is a single user-facing read-optimized map that picked one
// internal representation at construction and routes every operation
// to it. Selection depends only on K, never on runtime introspection
// of V.
type Map[K comparable, V any] struct {
	ops  kOps[K, V]
	kind string
}

// NewMap analyzes pairs and builds the representation K and the shape
// of the key set call for. Duplicate keys are not deduplicated: which
// mapping survives is unspecified but the result is always
// memory-safe.
func NewMap[K comparable, V any](pairs []Pair[K, V], opts ...Option) (*Map[K, V], error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}

	ents := make([]entry[K, V], len(pairs))
	for i, p := range pairs {
		ents[i] = entry[K, V]{key: p.Key, val: p.Value}
	}

	ops, kind, err := buildOps(ents, cfg)
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{ops: ops, kind: kind}, nil
}

// Get returns the value for key, and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.ops.get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return *v, true
}

// GetMut returns a mutable reference to the value for key. Values are
// interior-mutable; keys are not and must never change through an
// aliased reference.
func (m *Map[K, V]) GetMut(key K) (*V, bool) {
	return m.ops.get(key)
}

// GetKeyValue returns the stored key (not necessarily == key by
// identity, but always Go `==`-equal to it) alongside its value.
func (m *Map[K, V]) GetKeyValue(key K) (K, V, bool) {
	k, v, ok := m.ops.getKeyValue(key)
	if !ok {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return k, *v, true
}

// ContainsKey reports whether key is present.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.ops.get(key)
	return ok
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int { return m.ops.length() }

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool { return m.Len() == 0 }

// MustGet returns the value for key, panicking with a *KeyNotFoundError
// if it is absent.
func (m *Map[K, V]) MustGet(key K) V {
	v, ok := m.Get(key)
	if !ok {
		panic(&KeyNotFoundError{Key: key})
	}
	return v
}

// GetManyMut returns a mutable reference to every value in keys, in the
// same order, or ok=false if keys are not pairwise distinct or any is
// absent.
func (m *Map[K, V]) GetManyMut(keys []K) (vals []*V, ok bool) {
	seen := make(map[K]struct{}, len(keys))
	out := make([]*V, len(keys))
	for i, k := range keys {
		if _, dup := seen[k]; dup {
			return nil, false
		}
		seen[k] = struct{}{}

		v, found := m.ops.get(k)
		if !found {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// All iterates every (key, value) pair. Iteration order is unspecified.
func (m *Map[K, V]) All() iter.Seq2[K, V] { return m.ops.all }

// Keys iterates every key.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k, _ := range m.ops.all {
			if !yield(k) {
				return
			}
		}
	}
}

// Values iterates every value.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.ops.all {
			if !yield(v) {
				return
			}
		}
	}
}
