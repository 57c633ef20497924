package reminder

import "errors"

// Error kinds surfaced by the package. Callers match them with errors.Is
// and decide whether to re-prompt; nothing here retries or recovers.
var (
	// ErrValidation is returned when a description or tag is set to an
	// empty value.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned by Get when no reminder exists at the
	// requested index.
	ErrNotFound = errors.New("reminder not found")

	// ErrIndexOutOfRange is returned by the one-based operations when the
	// index does not resolve to an existing reminder.
	ErrIndexOutOfRange = errors.New("index out of range")
)
