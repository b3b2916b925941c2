package frozen

import "iter"

// Set wraps a Map[T, struct{}]: it owns nothing beyond the wrapped map
// and adds no representation of its own.
type Set[T comparable] struct {
	m *Map[T, struct{}]
}

// NewSet analyzes values the same way NewMap analyzes keys, with a
// unit-valued payload.
func NewSet[T comparable](values []T, opts ...Option) (*Set[T], error) {
	pairs := make([]Pair[T, struct{}], len(values))
	for i, v := range values {
		pairs[i] = Pair[T, struct{}]{Key: v}
	}
	m, err := NewMap(pairs, opts...)
	if err != nil {
		return nil, err
	}
	return &Set[T]{m: m}, nil
}

// Contains reports whether v is a member.
func (s *Set[T]) Contains(v T) bool { return s.m.ContainsKey(v) }

// Get returns the member equal to v, if present.
func (s *Set[T]) Get(v T) (T, bool) {
	k, _, ok := s.m.GetKeyValue(v)
	return k, ok
}

// Len returns the number of members.
func (s *Set[T]) Len() int { return s.m.Len() }

// IsEmpty reports whether the set has no members.
func (s *Set[T]) IsEmpty() bool { return s.m.IsEmpty() }

// MustGet returns the member equal to v, panicking if absent.
func (s *Set[T]) MustGet(v T) T {
	k, ok := s.Get(v)
	if !ok {
		panic(&KeyNotFoundError{Key: v})
	}
	return k
}

// All iterates every member. Iteration order is unspecified.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := range s.m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// containerView is membership and iteration, nothing more. Any
// *Set[T], frozen or not, that exposes these can be an operand of the
// set algebra below.
type containerView[T comparable] interface {
	Contains(T) bool
	All() iter.Seq[T]
	Len() int
}

// Union returns the members present in a or b.
func Union[T comparable](a, b containerView[T]) []T {
	seen := make(map[T]struct{}, a.Len()+b.Len())
	out := make([]T, 0, a.Len()+b.Len())
	for v := range a.All() {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	for v := range b.All() {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// Intersect returns the members present in both a and b.
func Intersect[T comparable](a, b containerView[T]) []T {
	out := make([]T, 0)
	for v := range a.All() {
		if b.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// Difference returns the members of a not present in b.
func Difference[T comparable](a, b containerView[T]) []T {
	out := make([]T, 0)
	for v := range a.All() {
		if !b.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// SymmetricDifference returns the members present in exactly one of
// a or b.
func SymmetricDifference[T comparable](a, b containerView[T]) []T {
	out := Difference(a, b)
	return append(out, Difference(b, a)...)
}

// IsSubset reports whether every member of a is a member of b.
func IsSubset[T comparable](a, b containerView[T]) bool {
	for v := range a.All() {
		if !b.Contains(v) {
			return false
		}
	}
	return true
}

// IsSuperset reports whether every member of b is a member of a.
func IsSuperset[T comparable](a, b containerView[T]) bool {
	return IsSubset(b, a)
}

// IsDisjoint reports whether a and b share no members.
func IsDisjoint[T comparable](a, b containerView[T]) bool {
	for v := range a.All() {
		if b.Contains(v) {
			return false
		}
	}
	return true
}
