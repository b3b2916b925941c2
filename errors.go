package frozen

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrCapacityExceeded is returned when a container's entry count
// exceeds what its chosen bucket-descriptor width can represent.
// Auto-selected widths make this unreachable in normal use.
var ErrCapacityExceeded = errors.New("frozen: capacity exceeded for descriptor width")

// KeyNotFoundError is the panic value MustGet raises for an absent key.
type KeyNotFoundError struct {
	Key any
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("frozen: key not found: %v", e.Key)
}
