package domain

import "errors"

// Sentinel errors shared across services and controllers. Controllers map
// these to HTTP status codes and API error codes with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrGateNotFound  = errors.New("gate not found")
	ErrGuestNotFound = errors.New("guest not found")
	ErrEventNotFound = errors.New("event not found")

	ErrInvalidAccessCode = errors.New("invalid gate access code")
	ErrGateInactive      = errors.New("gate is not active")
	ErrInvalidGateToken  = errors.New("invalid gate session token")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrAccessCodeTaken    = errors.New("access code already in use")
	ErrCodeGeneration     = errors.New("failed to generate unique access code")

	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError reports invariant violations from entity constructors.
// Controllers treat it as a client error, never a server fault.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NewValidationError returns a ValidationError with the given message.
func NewValidationError(msg string) error { return &ValidationError{Msg: msg} }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
