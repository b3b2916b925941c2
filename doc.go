// Package frozen implements read-optimized, immutable associative
// containers: Map[K,V] and Set[T].
//
// A frozen container pays its analysis and layout cost once, at
// construction, in exchange for lookups that are faster than a general
// hash table for the shape of key set it was built from. Construction
// picks one internal representation before the first Get is ever
// called: a flat scan for tiny maps, a dense integer range, an
// identity-hashed integer table, a sub-slice-hashed string table, or a
// general hash table.
//
// Containers are immutable after construction except through values:
// keys can never change, but GetMut returns a mutable reference to a
// stored value. Mutating a key after insertion, or supplying a K whose
// Equal/hash contract is broken, is a logic error with unspecified but
// memory-safe results, the same contract Go's own map gives you.
package frozen

import "fmt"

func Example() {
	m, err := NewMap([]Pair[string, int]{
		{Key: "first_key", Value: 1},
		{Key: "second_key", Value: 2},
		{Key: "third_key", Value: 3},
		{Key: "fourth_key", Value: 4},
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(m.ContainsKey("first_key"))

	v, ok := m.Get("second_key")
	fmt.Println(v, ok)

	fmt.Println(m.MustGet("third_key"))

	total := 0
	for _, v := range m.All() {
		total += v
	}
	fmt.Println(total)

	// Output:
	// true
	// 2 true
	// 3
	// 10
}
