package frozen

// sliceKeyClass is the verdict of analyzing a set of slice-like keys.
type sliceKeyClass int

const (
	sliceClassNormal sliceKeyClass = iota
	sliceClassLength
	sliceClassLeftSlice
	sliceClassRightSlice
)

// align distinguishes the two sub-slice orientations a discriminator
// window may use.
type align int

const (
	alignLeft align = iota
	alignRight
)

// sliceKeyAnalysis is the full result of analyzeSliceKeys: which
// representation to build, and for the sub-slice verdicts, the window.
type sliceKeyAnalysis struct {
	class sliceKeyClass
	start int
	len   int
}

// analyzeSliceKeys finds the shortest aligned byte window that
// uniquely distinguishes all keys, preferring Length when lengths
// alone already distinguish every key. Ties break shortest len first,
// then smallest start, then Left over Right.
func analyzeSliceKeys[S sliceLike](keys []S) sliceKeyAnalysis {
	if allLengthsUnique(keys) {
		return sliceKeyAnalysis{class: sliceClassLength}
	}

	lmin := sliceLen(keys[0])
	for _, k := range keys[1:] {
		if l := sliceLen(k); l < lmin {
			lmin = l
		}
	}

	for length := 1; length <= lmin; length++ {
		for start := 0; start <= lmin-length; start++ {
			if windowIsUnique(keys, alignLeft, start, length) {
				return sliceKeyAnalysis{class: sliceClassLeftSlice, start: start, len: length}
			}
			if windowIsUnique(keys, alignRight, start, length) {
				return sliceKeyAnalysis{class: sliceClassRightSlice, start: start, len: length}
			}
		}
	}

	return sliceKeyAnalysis{class: sliceClassNormal}
}

func allLengthsUnique[S sliceLike](keys []S) bool {
	seen := make(map[int]struct{}, len(keys))
	for _, k := range keys {
		l := sliceLen(k)
		if _, ok := seen[l]; ok {
			return false
		}
		seen[l] = struct{}{}
	}
	return true
}

// windowIsUnique reports whether extracting [start,start+len) (left) or
// the right-aligned equivalent from every key yields pairwise distinct
// byte windows.
func windowIsUnique[S sliceLike](keys []S, a align, start, length int) bool {
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		b := sliceBytes(k)
		var w []byte
		switch a {
		case alignLeft:
			w = b[start : start+length]
		case alignRight:
			n := len(b)
			w = b[n-start-length : n-start]
		}
		s := string(w)
		if _, ok := seen[s]; ok {
			return false
		}
		seen[s] = struct{}{}
	}
	return true
}
