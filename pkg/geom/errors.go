package geom

import (
	"fmt"
)

// ErrInvalidArgument indicates a caller passed an argument the operation
// cannot accept, such as a nil point slice.
type ErrInvalidArgument struct {
	Op     string
	Reason string
}

func (e *ErrInvalidArgument) Error() string {
	return fmt.Sprintf("geom: %s: %s", e.Op, e.Reason)
}
