package documents

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidInput covers missing required fields and unknown document types.
	ErrInvalidInput = errors.New("invalid input")
	// errVersionMismatch is returned by repos when a conditional write loses.
	errVersionMismatch = errors.New("version mismatch")
)

// ValidationError carries every violated field rule so clients can display
// all of them at once.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// ConflictError reports a stale-version PATCH. Current holds the stored
// document so the client can re-render and merge.
type ConflictError struct {
	CurrentVersion int64
	Current        Document
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("version conflict: current version is %d", e.CurrentVersion)
}
