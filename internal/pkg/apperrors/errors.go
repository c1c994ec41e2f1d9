package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrConflict         = errors.New("conflict")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Note errors
	ErrNoteNotFound = errors.New("note not found")

	// Subject errors
	ErrSubjectNotFound = errors.New("subject not found")

	// Approval errors
	ErrInvalidApprovalKind = errors.New("invalid approval kind")

	// External dependency errors
	ErrDocumentStore     = errors.New("document store error")
	ErrBlobStore         = errors.New("blob store error")
	ErrCompletionService = errors.New("completion service error")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewExternalError wraps a dependency failure so the underlying message
// reaches the caller without being masked.
func NewExternalError(kind error, cause error) error {
	return &CustomError{
		Err:     kind,
		Message: cause.Error(),
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
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

// Unwrap implements the errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
