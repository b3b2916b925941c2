package frozen

import "testing"

func TestHashTableBuildAndFind(t *testing.T) {
	pairs := []entry[int, string]{
		{key: 1, val: "one"},
		{key: 2, val: "two"},
		{key: 3, val: "three"},
		{key: 17, val: "seventeen"}, // collides with 1 at B=16
	}

	tbl, err := buildHashTable[int, string, uint8](pairs, 16, func(k int) uint64 { return uint64(k) })
	if err != nil {
		t.Fatalf("buildHashTable: %v", err)
	}
	if tbl.len() != 4 {
		t.Fatalf("len = %d, want 4", tbl.len())
	}

	for _, p := range pairs {
		e, ok := tbl.find(uint64(p.key), func(k int) bool { return k == p.key })
		if !ok {
			t.Fatalf("key %d not found", p.key)
		}
		if e.val != p.val {
			t.Fatalf("key %d: got %q, want %q", p.key, e.val, p.val)
		}
	}

	if _, ok := tbl.find(uint64(99), func(k int) bool { return k == 99 }); ok {
		t.Fatalf("absent key 99 unexpectedly found")
	}
}

func TestHashTableCapacityExceeded(t *testing.T) {
	pairs := make([]entry[int, struct{}], 300)
	for i := range pairs {
		pairs[i] = entry[int, struct{}]{key: i}
	}

	_, err := buildHashTable[int, struct{}, uint8](pairs, 512, func(k int) uint64 { return uint64(k) })
	if err == nil {
		t.Fatalf("expected ErrCapacityExceeded for 300 entries at uint8 width")
	}
}

func TestHashTableEmpty(t *testing.T) {
	tbl, err := buildHashTable[int, string, uint8](nil, 16, func(k int) uint64 { return uint64(k) })
	if err != nil {
		t.Fatalf("buildHashTable: %v", err)
	}
	if tbl.len() != 0 {
		t.Fatalf("len = %d, want 0", tbl.len())
	}
	if _, ok := tbl.find(0, func(int) bool { return true }); ok {
		t.Fatalf("find on empty table unexpectedly succeeded")
	}
}
