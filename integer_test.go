package frozen

import "testing"

func TestAnalyzeIntKeys(t *testing.T) {
	t.Run("dense range", func(t *testing.T) {
		class, min, max := analyzeIntKeys([]int{0, 1, 2, 3, 4})
		if class != intClassRange || min != 0 || max != 4 {
			t.Fatalf("got class=%v min=%v max=%v", class, min, max)
		}
	})

	t.Run("dense range unordered", func(t *testing.T) {
		class, min, max := analyzeIntKeys([]int{4, 1, 3, 0, 2})
		if class != intClassRange || min != 0 || max != 4 {
			t.Fatalf("got class=%v min=%v max=%v", class, min, max)
		}
	})

	t.Run("hole forces normal", func(t *testing.T) {
		class, _, _ := analyzeIntKeys([]int{0, 2, 4, 6, 8})
		if class != intClassNormal {
			t.Fatalf("got class=%v, want Normal", class)
		}
	})

	t.Run("duplicate forces normal", func(t *testing.T) {
		class, _, _ := analyzeIntKeys([]int{0, 1, 1, 2})
		if class != intClassNormal {
			t.Fatalf("got class=%v, want Normal", class)
		}
	})

	t.Run("single key is never Range", func(t *testing.T) {
		class, _, _ := analyzeIntKeys([]int{5})
		if class != intClassNormal {
			t.Fatalf("got class=%v, want Normal (count < 2)", class)
		}
	})

	t.Run("two consecutive keys is Range", func(t *testing.T) {
		class, min, max := analyzeIntKeys([]int{5, 6})
		if class != intClassRange || min != 5 || max != 6 {
			t.Fatalf("got class=%v min=%v max=%v", class, min, max)
		}
	})
}
