package scaffold

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// -----------------------------------------------------------------------------
// [ERRORS] Failure categories surfaced by the scaffold engine
// -----------------------------------------------------------------------------

var (
	// ErrInvalidName is returned for empty identifiers and ones containing
	// whitespace, path separators or "..".
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidRequest is returned when a request combines fields that do not fit its kind.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrAnchorNotFound is returned when a registry file lacks an expected literal marker.
	ErrAnchorNotFound = errors.New("anchor not found")
	// ErrAnchorOrder is returned when resolved insertion points are not ascending.
	ErrAnchorOrder = errors.New("anchors out of order")
	// ErrAlreadyRegistered is returned when a registry file already references the artifact.
	ErrAlreadyRegistered = errors.New("artifact already registered")
	// ErrFileExists is returned when a generated file would overwrite an existing one.
	ErrFileExists = errors.New("file already exists")
)

// PatchError names the registry file and the edit whose anchor could not be used.
type PatchError struct {
	File   string
	Edit   string
	Anchor string
	Err    error
}

func (e *PatchError) Error() string {
	return fmt.Sprintf("patch %s: edit %q: anchor %q: %v", e.File, e.Edit, e.Anchor, e.Err)
}

func (e *PatchError) Unwrap() error { return e.Err }

// IsInvalidInput reports whether err was caused by user-supplied input.
func IsInvalidInput(err error) bool {
	return errors.IsAny(err, ErrInvalidName, ErrInvalidRequest)
}
