package errs

import "errors"

// Sentinel errors shared by the engines. Callers detect them with errors.Is;
// engines wrap them with the offending detail.
var (
	// ErrInvalidInput is returned when a process, resource or size value
	// violates its constraints. Nothing is computed or mutated.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfMemory is returned when no free block can satisfy an
	// allocation. The allocator state is left unchanged.
	ErrOutOfMemory = errors.New("out of memory")
)
