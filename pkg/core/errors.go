package core

import (
	"fmt"
)

// ErrorCategory classifies gesture-layer failures for reporting and handling.
type ErrorCategory int

const (
	ErrCategoryNone       ErrorCategory = iota // No error
	ErrCategoryConfig                          // Invalid crop factors, degenerate region, bad arguments
	ErrCategoryElement                         // Element could not be located
	ErrCategoryGesture                         // Pointer primitive failed on the device
	ErrCategoryConnection                      // Driver/session transport failure
)

// String returns the string representation of ErrorCategory.
func (c ErrorCategory) String() string {
	switch c {
	case ErrCategoryNone:
		return "none"
	case ErrCategoryConfig:
		return "config"
	case ErrCategoryElement:
		return "element"
	case ErrCategoryGesture:
		return "gesture"
	case ErrCategoryConnection:
		return "connection"
	default:
		return "unknown"
	}
}

// GestureError represents a structured error with category and details.
type GestureError struct {
	Category ErrorCategory
	Code     string                 // Machine-readable code: element_not_found, gesture_failed, etc.
	Message  string                 // Human-readable message
	Details  map[string]interface{} // Additional context
	Cause    error                  // Underlying error
}

// Error implements the error interface.
func (e *GestureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *GestureError) Unwrap() error {
	return e.Cause
}

// Is matches on category and code so sentinel comparisons survive WithCause
// and WithDetails copies.
func (e *GestureError) Is(target error) bool {
	t, ok := target.(*GestureError)
	if !ok {
		return false
	}
	return e.Category == t.Category && e.Code == t.Code
}

// WithCause returns a copy of the error with the given cause.
func (e *GestureError) WithCause(cause error) *GestureError {
	return &GestureError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Details:  e.Details,
		Cause:    cause,
	}
}

// WithMessage returns a copy of the error with a custom message.
func (e *GestureError) WithMessage(msg string) *GestureError {
	return &GestureError{
		Category: e.Category,
		Code:     e.Code,
		Message:  msg,
		Details:  e.Details,
		Cause:    e.Cause,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *GestureError) WithDetails(details map[string]interface{}) *GestureError {
	merged := make(map[string]interface{})
	for k, v := range e.Details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}
	return &GestureError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Details:  merged,
		Cause:    e.Cause,
	}
}

// Predefined errors
var (
	// Configuration errors: fatal to the session, raised at initialization.
	ErrInvalidCropFactors = &GestureError{
		Category: ErrCategoryConfig,
		Code:     "invalid_crop_factors",
		Message:  "crop factors must lie in (0,1) with upper < lower and left < right",
	}
	ErrDegenerateRegion = &GestureError{
		Category: ErrCategoryConfig,
		Code:     "degenerate_region",
		Message:  "scrollable region has zero or negative area",
	}
	ErrInvalidArgument = &GestureError{
		Category: ErrCategoryConfig,
		Code:     "invalid_argument",
		Message:  "invalid argument",
	}

	// Element errors
	ErrElementNotFound = &GestureError{
		Category: ErrCategoryElement,
		Code:     "element_not_found",
		Message:  "element not found",
	}

	// Gesture errors: pointer state may be inconsistent after a partial
	// failure, so these are never retried locally.
	ErrGestureFailed = &GestureError{
		Category: ErrCategoryGesture,
		Code:     "gesture_failed",
		Message:  "pointer gesture failed",
	}

	// Connection errors
	ErrViewportUnavailable = &GestureError{
		Category: ErrCategoryConnection,
		Code:     "viewport_unavailable",
		Message:  "could not retrieve viewport dimensions",
	}
	ErrServerUnreachable = &GestureError{
		Category: ErrCategoryConnection,
		Code:     "server_unreachable",
		Message:  "could not connect to automation server",
	}
)

// NewGestureError creates a new GestureError with the given parameters.
func NewGestureError(category ErrorCategory, code, message string) *GestureError {
	return &GestureError{
		Category: category,
		Code:     code,
		Message:  message,
	}
}
