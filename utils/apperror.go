package utils

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates AppError values. Callers branch on the kind, never
// on concrete error types.
type ErrorKind string

const (
	KindValidation        ErrorKind = "validation"
	KindNotFound          ErrorKind = "not_found"
	KindConflict          ErrorKind = "conflict"
	KindInvalidTransition ErrorKind = "invalid_transition"
	KindAuthorization     ErrorKind = "authorization"
	KindDatabase          ErrorKind = "database"
)

// AppError is the one error type the service layer returns. The transport
// layer maps kinds to HTTP statuses; services only set kind and message.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error // underlying cause, optional

	// ConflictIDs carries the ids of colliding bookings on KindConflict.
	ConflictIDs []string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// KindOf extracts the kind of err, or "" when err is not an AppError.
func KindOf(err error) ErrorKind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

func ValidationError(format string, args ...any) *AppError {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundError(resource string) *AppError {
	return &AppError{Kind: KindNotFound, Message: resource + " not found"}
}

func ConflictError(message string, conflictIDs ...string) *AppError {
	return &AppError{Kind: KindConflict, Message: message, ConflictIDs: conflictIDs}
}

func InvalidTransitionError(format string, args ...any) *AppError {
	return &AppError{Kind: KindInvalidTransition, Message: fmt.Sprintf(format, args...)}
}

func AuthorizationError(message string) *AppError {
	return &AppError{Kind: KindAuthorization, Message: message}
}

func DatabaseError(message string, err error) *AppError {
	return &AppError{Kind: KindDatabase, Message: message, Err: err}
}
