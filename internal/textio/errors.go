package textio

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Classification sentinels.
var (
	ErrNotFound    = errors.New("file not found")
	ErrPermission  = errors.New("permission denied")
	ErrIsDirectory = errors.New("is a directory")
	ErrUnknown     = errors.New("unknown I/O error")
)

type operation string

const (
	opRead  operation = "read"
	opWrite operation = "write"
)

// Error describes a failed read or write of a user-supplied path.
type Error struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func newError(op operation, path string, err error) *Error {
	return &Error{Op: string(op), Path: path, Kind: classify(err), Err: err}
}

// Error returns the user-facing message for the failure.
func (e *Error) Error() string {
	if e.Op == string(opWrite) {
		switch e.Kind {
		case ErrPermission:
			return fmt.Sprintf("The provided output file -- %s -- cannot be opened for writing.", e.Path)
		case ErrIsDirectory:
			return fmt.Sprintf("The provided output file -- %s -- is a directory.", e.Path)
		case ErrNotFound:
			return fmt.Sprintf("The provided output file -- %s -- is in a directory that does not exist.", e.Path)
		}
		return fmt.Sprintf("An unknown IO error occurred while attempting to open the provided output file -- %s -- for writing.", e.Path)
	}
	switch e.Kind {
	case ErrNotFound:
		return fmt.Sprintf("The provided input file -- %s -- does not exist.", e.Path)
	case ErrPermission:
		return fmt.Sprintf("The provided input file -- %s -- cannot be read.", e.Path)
	case ErrIsDirectory:
		return fmt.Sprintf("The provided input file -- %s -- is a directory.", e.Path)
	}
	return fmt.Sprintf("An unknown IO error occurred while attempting to read the provided input file -- %s.", e.Path)
}

// Unwrap exposes both the classification and the underlying cause.
func (e *Error) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// ErrorKind returns a short machine-readable classification.
func (e *Error) ErrorKind() string {
	switch e.Kind {
	case ErrNotFound:
		return "not_found"
	case ErrPermission:
		return "permission"
	case ErrIsDirectory:
		return "is_directory"
	}
	return "unknown"
}

func classify(err error) error {
	switch {
	case errors.Is(err, unix.ENOENT), errors.Is(err, unix.ENOTDIR):
		return ErrNotFound
	case errors.Is(err, unix.EACCES), errors.Is(err, unix.EPERM), errors.Is(err, unix.EROFS):
		return ErrPermission
	case errors.Is(err, unix.EISDIR):
		return ErrIsDirectory
	}
	return ErrUnknown
}
