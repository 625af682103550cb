package domain

import "errors"

// Domain errors - business conditions the command layer translates into
// user-facing replies. A failing request never terminates the process.

var (
	// Upstream errors
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
	ErrCatalogEmpty        = errors.New("problem catalog is not loaded")

	// Profile errors
	ErrUserNotFound = errors.New("user not found or profile is private")

	// Session errors
	ErrNoActiveSession = errors.New("no active daily session")

	// Command errors
	ErrInvalidArgument = errors.New("invalid or missing argument")
)

// DomainError wraps an error with additional context
type DomainError struct {
	Err     error
	Message string
}

func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &DomainError{
		Err:     err,
		Message: message,
	}
}
