package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found, or is not
// in the state the operation expects (e.g. no active shift, pending item not found).
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrConflict indicates a uniqueness or state conflict with existing data
// (duplicate open shift, duplicate open reading, duplicate reference number).
var ErrConflict = errors.New("conflict with current state")

// ErrDependency indicates that an external collaborator (audit sink, pump/tank registry) is unavailable.
var ErrDependency = errors.New("dependency unavailable")

// ErrForbidden indicates the caller is authenticated but may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid caller identity.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal is a catch-all for failures the caller cannot correct.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish code and a safe message alongside the underlying cause.
// Repositories use it to wrap driver failures without leaking them to callers.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Kind reduces err to one of the taxonomy sentinels. Unknown errors are ErrInternal.
func Kind(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrValidation):
		return ErrValidation
	case errors.Is(err, ErrNotFound):
		return ErrNotFound
	case errors.Is(err, ErrConflict):
		return ErrConflict
	case errors.Is(err, ErrDependency):
		return ErrDependency
	case errors.Is(err, ErrForbidden):
		return ErrForbidden
	case errors.Is(err, ErrUnauthorized):
		return ErrUnauthorized
	default:
		return ErrInternal
	}
}

// HTTPStatus maps an error to the status code handlers respond with.
func HTTPStatus(err error) int {
	switch Kind(err) {
	case nil:
		return http.StatusOK
	case ErrValidation:
		return http.StatusBadRequest
	case ErrNotFound:
		return http.StatusNotFound
	case ErrConflict:
		return http.StatusConflict
	case ErrDependency:
		return http.StatusFailedDependency
	case ErrForbidden:
		return http.StatusForbidden
	case ErrUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message that is safe to show to a caller.
// Internal failures never expose their cause.
func PublicMessage(err error) string {
	if Kind(err) == ErrInternal {
		return "internal error"
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// CleanupError reports that a shift was closed but its cleanup step failed.
// The close itself stands.
type CleanupError struct {
	ShiftID string
	Err     error
}

func (e *CleanupError) Error() string {
	return "shift " + e.ShiftID + " closed but cleanup failed: " + e.Err.Error()
}

func (e *CleanupError) Unwrap() error {
	return e.Err
}
