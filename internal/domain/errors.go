package domain

import "errors"

var (
	// ErrEmptyCollection is returned when a nearest-neighbor search runs over an empty collection.
	ErrEmptyCollection = errors.New("embedding collection is empty")
	// ErrStreamClosed is returned when writing to a data stream that was already closed.
	ErrStreamClosed = errors.New("data stream is closed")
	// ErrNoAgent is returned when no agent can be found to serve a request.
	ErrNoAgent = errors.New("no agent defined")
)

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// ProviderErr represents a failure of an external collaborator such as an
// embedding model or an agent backend.
type ProviderErr struct {
	domainErr
	cause error
}

// NewProviderErr creates a new ProviderErr with the given message and cause.
func NewProviderErr(message string, cause error) *ProviderErr {
	if cause != nil {
		message = message + ": " + cause.Error()
	}
	return &ProviderErr{
		domainErr: domainErr{message: message},
		cause:     cause,
	}
}

// Unwrap returns the underlying cause.
func (e *ProviderErr) Unwrap() error {
	return e.cause
}
