package assetgen

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGeometry reports degenerate or out-of-range shape parameters.
	ErrInvalidGeometry = errors.New("assetgen: invalid geometry")

	// ErrIOFailure reports that a directory or file could not be created,
	// written or removed.
	ErrIOFailure = errors.New("assetgen: i/o failure")

	// ErrUnsupportedFormat reports an export container the exporter does
	// not implement.
	ErrUnsupportedFormat = errors.New("assetgen: unsupported format")
)

// Geometryf returns an error wrapping ErrInvalidGeometry.
func Geometryf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidGeometry, fmt.Sprintf(format, args...))
}

// IOError records a failed file-system operation.
// errors.Is matches both ErrIOFailure and the underlying cause.
type IOError struct {
	Op   string // "mkdir", "create", "write", "remove", "copy"
	Path string
	Err  error
}

// NewIOError wraps err as an IOError, or returns nil when err is nil.
func NewIOError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Op: op, Path: path, Err: err}
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns ErrIOFailure and the underlying cause.
func (e *IOError) Unwrap() []error {
	return []error{ErrIOFailure, e.Err}
}
