package probe

import "fmt"

// ErrorKind tags the fatal failure classes of a probe run. Per-layout and
// per-master failures are recovered internally and surface as warnings, not
// as errors of these kinds.
type ErrorKind string

const (
	// KindDocumentUnreadable means the file could not be opened or parsed
	// as a presentation at all. Raised before any analysis begins.
	KindDocumentUnreadable ErrorKind = "DocumentUnreadable"

	// KindIntegrityViolation means the document fingerprint changed during
	// analysis. This indicates an internal bug: the non-mutation contract
	// was broken, so no result is returned.
	KindIntegrityViolation ErrorKind = "IntegrityViolation"
)

// Error is a fatal probe failure carrying its taxonomy kind.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
