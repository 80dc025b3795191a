package bucketmap

import "errors"

var (
	// ErrInvalidCapacity is returned by the constructors when the requested
	// capacity is not positive or doesn't fit the slot index type.
	ErrInvalidCapacity = errors.New("bucketmap: invalid capacity")

	// ErrTableFull is returned when a new key is inserted into a table that
	// already holds capacity keys. Updates of present keys never fail.
	ErrTableFull = errors.New("bucketmap: table is full")

	// ErrNotFound is returned by lookups and removals of an absent key.
	ErrNotFound = errors.New("bucketmap: key not found")
)
