package apperrors

import "errors"

// Error families. Domain errors below wrap one of these so callers can match
// either the precise error or its family.
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrPermissionDenied = errors.New("permission denied")
	ErrValidationFailed = errors.New("validation failed")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
)

// User errors
var (
	ErrUserNotFound          = NewResourceNotFoundError("user not found")
	ErrTeacherNotFound       = NewResourceNotFoundError("teacher not found")
	ErrEmailAlreadyExists    = NewConflictError("email already exists")
	ErrUsernameAlreadyExists = NewConflictError("username already exists")
	ErrInvalidEmail          = NewValidationError("invalid email")
	ErrInvalidPassword       = NewValidationError("invalid password")
)

// Catalog errors
var (
	ErrUniversityNotFound = NewResourceNotFoundError("university not found")
	ErrCategoryNotFound   = NewResourceNotFoundError("category not found")
	ErrCourseNotFound     = NewResourceNotFoundError("course not found")
	ErrMessageNotFound    = NewResourceNotFoundError("message not found")
)

// Enrollment errors
var (
	ErrAlreadyEnrolled = NewConflictError("already enrolled in this course")
	ErrNotEnrolled     = NewForbiddenError("not enrolled in this course")
	ErrInvalidRating   = NewValidationError("rating must be between 1 and 5")
)

func NewResourceNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewForbiddenError is returned when the caller is known but not allowed.
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// CustomError carries a user-facing message over one of the error families.
type CustomError struct {
	Err     error
	Message string
}

func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *CustomError) Unwrap() error {
	return e.Err
}
