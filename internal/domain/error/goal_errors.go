// Package error defines domain-specific errors for the Marcus Savings Tracker.
package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the collection.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrGoalCompleted is returned when progress is added to an already completed goal.
	ErrGoalCompleted = errors.New("cannot add progress to completed goal")

	// ErrGoalValidation is returned when goal form data fails validation.
	ErrGoalValidation = errors.New("goal validation failed")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalValidation   GoalErrorCode = "GOL-010001"
	ErrCodeDuplicateName    GoalErrorCode = "GOL-010002"
	ErrCodeGoalLimitReached GoalErrorCode = "GOL-010003"
	ErrCodeInvalidProgress  GoalErrorCode = "GOL-010004"

	// State errors (02XXXX)
	ErrCodeGoalNotFound  GoalErrorCode = "GOL-020001"
	ErrCodeGoalCompleted GoalErrorCode = "GOL-020002"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// ValidationError carries the per-field validation results for a rejected
// goal form. Message holds the first violation, Fields the full mapping.
type ValidationError struct {
	Code    GoalErrorCode
	Message string
	Fields  map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap lets errors.Is match ErrGoalValidation.
func (e *ValidationError) Unwrap() error {
	return ErrGoalValidation
}

// NewValidationError creates a ValidationError from a field→message mapping.
// The first message (field iteration order is not significant; callers pass
// the leading violation explicitly) becomes the error message.
func NewValidationError(code GoalErrorCode, message string, fields map[string]string) *ValidationError {
	return &ValidationError{
		Code:    code,
		Message: message,
		Fields:  fields,
	}
}
