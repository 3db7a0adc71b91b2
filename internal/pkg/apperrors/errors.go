package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")
	ErrBadRequest       = errors.New("bad request")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidDataURI   = errors.New("invalid data URI payload")
)

// Student errors
var (
	ErrStudentNotFound   = errors.New("student not found")
	ErrStudentLocked     = errors.New("student profile is locked")
	ErrSlugAlreadyExists = errors.New("student slug already exists")
)

// Submission errors
var (
	ErrSubmissionNotFound        = errors.New("submission not found")
	ErrSubmissionAlreadyReviewed = errors.New("submission has already been reviewed")
	ErrInvalidSubmissionType     = errors.New("invalid submission type")
	ErrInvalidDecision           = errors.New("invalid review decision")
)

// Notice and resource errors
var (
	ErrNoticeNotFound          = errors.New("notice not found")
	ErrLibraryResourceNotFound = errors.New("library resource not found")
)

// Campus media errors
var (
	ErrCampusImageNotFound = errors.New("campus image not found")
	ErrSlideLimitReached   = errors.New("maximum of 5 slides allowed")
	ErrMemoryNotFound      = errors.New("campus memory not found")
	ErrMemoryImageLimit    = errors.New("a memory may hold at most 15 images")
)

// Team member errors
var (
	ErrTeamMemberNotFound    = errors.New("team member not found")
	ErrUsernameAlreadyExists = errors.New("username already exists")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}
