package frozen

import "iter"

// collectSeq drains a finite iter.Seq into a slice.
func collectSeq[T any](seq iter.Seq[T]) []T {
	out := make([]T, 0)
	for v := range seq {
		out = append(out, v)
	}
	return out
}

// collectSeq2 is collectSeq for two-valued sequences.
func collectSeq2[K, V any](seq iter.Seq2[K, V]) ([]K, []V) {
	var keys []K
	var vals []V
	for k, v := range seq {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	return keys, vals
}
