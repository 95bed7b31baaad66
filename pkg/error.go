package pkg

import "errors"

// Descriptor arena and parser errors.
var (
	// ErrCapacityExceeded indicates an append would exceed the arena's
	// configured total size. Previously written bytes are left intact.
	ErrCapacityExceeded = errors.New("arena capacity exceeded")

	// ErrNotFound indicates a string, configuration, endpoint, or
	// descriptor index is out of the assigned range.
	ErrNotFound = errors.New("descriptor not found")

	// ErrMalformedDescriptor indicates structurally invalid descriptor
	// bytes, such as a zero-length record or a record overrunning its
	// buffer.
	ErrMalformedDescriptor = errors.New("malformed descriptor")

	// ErrDescriptorTooShort indicates the descriptor data is too short.
	ErrDescriptorTooShort = errors.New("descriptor too short")

	// ErrDescriptorTypeMismatch indicates the descriptor type does not match expected.
	ErrDescriptorTypeMismatch = errors.New("descriptor type mismatch")

	// ErrInvalidParameter indicates an invalid parameter was provided.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrAlreadyPopulated indicates the arena has been written to and its
	// total size can no longer be changed.
	ErrAlreadyPopulated = errors.New("arena already populated")
)
