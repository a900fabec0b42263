package markdown

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a load path does not exist.
	ErrNotFound = errors.New("markdown: file not found")
	// ErrInvalidInput is returned when a load path exists but is not a regular file.
	ErrInvalidInput = errors.New("markdown: path is not a regular file")
	// ErrNoContent is returned when parsing is requested before any content is loaded.
	ErrNoContent = errors.New("markdown: no content loaded")
)

// PathError decorates a load failure with the offending path.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	if e == nil {
		return ErrInvalidInput.Error()
	}
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Path)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
