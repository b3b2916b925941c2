package frozen

import "testing"

func TestAnalyzeSliceKeys(t *testing.T) {
	t.Run("unique lengths chooses Length", func(t *testing.T) {
		a := analyzeSliceKeys([]string{"a", "bb", "ccc", "dddd"})
		if a.class != sliceClassLength {
			t.Fatalf("got %v, want Length", a.class)
		}
	})

	t.Run("differ only in first byte chooses LeftSlice", func(t *testing.T) {
		a := analyzeSliceKeys([]string{"0bcdefghi", "1bcdefghi", "2bcdefghi", "3bcdefghi"})
		if a.class != sliceClassLeftSlice || a.start != 0 || a.len != 1 {
			t.Fatalf("got %+v", a)
		}
	})

	t.Run("differ only in last byte chooses RightSlice", func(t *testing.T) {
		a := analyzeSliceKeys([]string{"abcdefghi0", "abcdefghi1", "abcdefghi2", "abcdefghi3"})
		if a.class != sliceClassRightSlice || a.start != 0 || a.len != 1 {
			t.Fatalf("got %+v", a)
		}
	})

	t.Run("no discriminator falls back to Normal", func(t *testing.T) {
		a := analyzeSliceKeys([]string{"aa", "aa", "bb"})
		if a.class != sliceClassNormal {
			t.Fatalf("got %v, want Normal", a.class)
		}
	})

	t.Run("shortest window wins over a longer one", func(t *testing.T) {
		// Keys differ at byte 0 (1 vs 2) and, redundantly, at byte 2;
		// the length-1 window at start=0 must win over any length-2
		// alternative.
		a := analyzeSliceKeys([]string{"1xa", "2xb"})
		if a.len != 1 {
			t.Fatalf("got len=%d, want 1", a.len)
		}
	})
}

func TestWindowHash(t *testing.T) {
	h := newXXHasher()
	a := windowHash(h, "abcdef", 0, 3)
	h2 := newXXHasher()
	b := windowHash(h2, "abcxyz", 0, 3)
	if a != b {
		t.Fatalf("same window bytes produced different hashes: %d != %d", a, b)
	}

	h3 := newXXHasher()
	tooShort := windowHash(h3, "ab", 0, 3)
	if tooShort != 0 {
		t.Fatalf("got %d, want sentinel 0 for a too-short key", tooShort)
	}
}

func TestRightWindowHash(t *testing.T) {
	h := newXXHasher()
	a := rightWindowHash(h, "abcdefghi0", 0, 1)
	h2 := newXXHasher()
	b := rightWindowHash(h2, "zzzzzzzzz0", 0, 1)
	if a != b {
		t.Fatalf("same trailing byte produced different hashes: %d != %d", a, b)
	}
}
