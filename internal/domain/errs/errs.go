package errs

import "errors"

// Error kinds. Aggregate packages wrap one of these with %w so the HTTP
// layer can map any domain error to a status code with errors.Is.
var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
)

// Validation builds an ad-hoc validation error for a single field message.
func Validation(msg string) error {
	return &kindError{msg: msg, kind: ErrValidation}
}

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }
