package apperrors

import "errors"

// Kind classifies a service failure. The HTTP layer maps kinds to
// status codes; services never expose raw storage errors.
type Kind string

const (
	KindNotFound      Kind = "NOT_FOUND"
	KindAlreadyExists Kind = "ALREADY_EXISTS"
	KindInvalidInput  Kind = "INVALID_INPUT"
	KindDependency    Kind = "DEPENDENCY_ERROR"
	KindInternal      Kind = "INTERNAL_ERROR"
)

// Error is a service-level failure with a user-visible message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

// Unwrap implements errors.Unwrap
func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound creates an error for a missing resource
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// AlreadyExists creates an error for a uniqueness violation
func AlreadyExists(message string) *Error {
	return &Error{Kind: KindAlreadyExists, Message: message}
}

// InvalidInput creates an error for malformed or missing input
func InvalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

// Dependency creates an error for a delete blocked by existing references
func Dependency(message string) *Error {
	return &Error{Kind: KindDependency, Message: message}
}

// Internal wraps a storage or transport fault behind a user-visible message
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf classifies any error. Errors that are not *Error are treated
// as internal faults.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
