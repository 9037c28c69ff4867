package gita

import (
	"errors"
	"fmt"
)

// ErrEmptyGeneration is returned when the generator answered with no text.
var ErrEmptyGeneration = errors.New("empty response from generator")

// ErrStorageRead marks an unreadable or corrupt override document. Stores log it and
// fall back to an empty document; it never reaches callers of the resolver.
var ErrStorageRead = errors.New("override storage unreadable")

// FormatError is returned when generator text does not match the requested schema.
type FormatError struct {
	Body string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("generator response does not match schema: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// TransportError is returned when the generator could not be reached or refused the call.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("generator %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
