// Package textio reads input text and writes concordance reports.
//
// Failures are returned as *Error values that name the file, carry the
// underlying cause, and wrap exactly one classification sentinel
// (ErrNotFound, ErrPermission, ErrIsDirectory, ErrUnknown) so callers can
// branch with errors.Is and show the message to users as-is.
package textio
