package config

import (
	"errors"
	"fmt"
)

var (
	// ErrArgument classifies problems with the positional arguments.
	// They are detected before any file access.
	ErrArgument = errors.New("invalid arguments")
	// ErrMissingQuery is returned when no query argument is supplied.
	ErrMissingQuery = fmt.Errorf("%w: missing query", ErrArgument)
	// ErrMissingFilePath is returned when no file path argument is supplied.
	ErrMissingFilePath = fmt.Errorf("%w: missing file path", ErrArgument)
)
