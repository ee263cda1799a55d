package document

import (
	"errors"
	"fmt"
)

var (
	// ErrIO classifies every failure to obtain a document's text.
	ErrIO = errors.New("document read failed")
	// ErrInvalidText is returned when the file content is not valid UTF-8.
	ErrInvalidText = errors.New("stream did not contain valid UTF-8")
)

// ReadError records the path that could not be read and the underlying cause.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Is reports ErrIO for every ReadError so callers can classify without a type switch.
func (e *ReadError) Is(target error) bool {
	return target == ErrIO
}
