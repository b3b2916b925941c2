package frozen

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Stats reports which representation a Map/Set chose and how large it
// ended up, for tests and for humans tuning a large literal table.
type Stats struct {
	Representation string
	Entries        int
}

// String renders Stats the way an operator would want to read it in a
// log line or test failure message.
func (s Stats) String() string {
	return fmt.Sprintf("%s map, %s entries", s.Representation, humanize.Comma(int64(s.Entries)))
}

// Stats reports the chosen representation and entry count.
func (m *Map[K, V]) Stats() Stats {
	return Stats{Representation: m.kind, Entries: m.Len()}
}

// Stats reports the chosen representation and entry count.
func (s *Set[T]) Stats() Stats {
	return s.m.Stats()
}

// String renders a compact, human-readable summary of the map. Not
// a dump of every entry — callers that want that can range over All.
func (m *Map[K, V]) String() string {
	return fmt.Sprintf("frozen.Map{%s}", m.Stats())
}

// String renders a compact, human-readable summary of the set.
func (s *Set[T]) String() string {
	return fmt.Sprintf("frozen.Set{%s}", s.Stats())
}
