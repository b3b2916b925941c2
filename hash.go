package frozen

import (
	"github.com/cespare/xxhash/v2"
)

// Hasher hashes whole keys or key sub-slices. cespare/xxhash/v2's
// Digest already satisfies this shape.
type Hasher interface {
	Reset()
	Write(p []byte) (int, error)
	Sum64() uint64
}

// HasherFactory produces a fresh Hasher, one per table build or
// isolated hash operation.
type HasherFactory func() Hasher

func newXXHasher() Hasher {
	return xxhash.New()
}

// hashBytes hashes b in one shot with a fresh hasher from factory.
func hashBytes(factory HasherFactory, b []byte) uint64 {
	h := factory()
	h.Write(b)
	return h.Sum64()
}

// hashIdentity hashes an integer key as its own bit pattern: no mixing,
// since an integer key already carries near-uniform low bits.
func hashIdentity[I integerKey](k I) uint64 {
	return uint64(k)
}

// bucketCount picks a bucket count for n hash codes: the smallest
// power of two >= n, floored at 1.
func bucketCount(n int) int {
	if n <= 1 {
		return 1
	}
	b := uint64(n - 1)
	b |= b >> 1
	b |= b >> 2
	b |= b >> 4
	b |= b >> 8
	b |= b >> 16
	b |= b >> 32
	return int(b + 1)
}

// bucketCountForCodes tries power-of-two candidates between n and 4n
// and keeps whichever minimizes the worst-case bucket occupancy.
func bucketCountForCodes(codes []uint64) int {
	n := len(codes)
	if n == 0 {
		return 1
	}
	best := bucketCount(n)
	bestMax := maxOccupancy(codes, best)
	for cand := best * 2; cand <= n*4 && cand > 0; cand *= 2 {
		if m := maxOccupancy(codes, cand); m < bestMax {
			best, bestMax = cand, m
		}
	}
	return best
}

func maxOccupancy(codes []uint64, buckets int) int {
	counts := make(map[uint64]int, len(codes))
	max := 0
	for _, c := range codes {
		k := c % uint64(buckets)
		counts[k]++
		if counts[k] > max {
			max = counts[k]
		}
	}
	return max
}
