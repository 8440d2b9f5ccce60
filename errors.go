package smolvec

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is the cause of every out-of-range access panic.
	ErrIndexOutOfRange = errors.New("smolvec: index out of range")

	// ErrCapacityOverflow is the cause of every failed growth or pre-sized
	// construction. It is raised as a panic: there is no partial state to
	// recover.
	ErrCapacityOverflow = errors.New("smolvec: capacity overflow")
)

// IndexError is the panic value for an index outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("smolvec: index %d out of range [0:%d]", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// CapacityError is the panic value for a capacity that cannot be allocated.
//
// It matches ErrCapacityOverflow and the allocator's error (if any) under
// errors.Is and errors.As.
type CapacityError struct {
	Requested int
	cause     error
}

func (e *CapacityError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("smolvec: cannot allocate %d slots: %v", e.Requested, e.cause)
	}
	return fmt.Sprintf("smolvec: cannot allocate %d slots", e.Requested)
}

// Unwrap returns ErrCapacityOverflow together with the allocator's error.
func (e *CapacityError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrCapacityOverflow}
	}
	return []error{ErrCapacityOverflow, e.cause}
}

func newCapacityError(requested int, cause error) *CapacityError {
	return &CapacityError{Requested: requested, cause: cause}
}

func checkIndex(i, n int) {
	if uint(i) >= uint(n) {
		panic(&IndexError{Index: i, Len: n})
	}
}
