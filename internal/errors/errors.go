package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Common error types that can be used across the application
var (
	ErrNotFound         = new(ErrCodeNotFound, "resource not found")
	ErrAlreadyExists    = new(ErrCodeAlreadyExists, "resource already exists")
	ErrValidation       = new(ErrCodeValidation, "validation error")
	ErrInvalidOperation = new(ErrCodeInvalidOperation, "invalid operation")

	// Entitlement domain errors. These signal programmer or configuration
	// mistakes, never transient conditions, so retrying is pointless.
	ErrInvalidMode          = new(ErrCodeInvalidMode, "invalid factory mode")
	ErrUninitializedMode    = new(ErrCodeUninitializedMode, "factory mode not set")
	ErrInvalidInterval      = new(ErrCodeInvalidInterval, "invalid billing interval")
	ErrRefreshRequired      = new(ErrCodeRefreshRequired, "refresh required before cumulate")
	ErrInsufficientQuantity = new(ErrCodeInsufficientQuantity, "insufficient remaining quantity")
	ErrNoDrawerAvailable    = new(ErrCodeNoDrawerAvailable, "no invoice drawer available")
	ErrUnknownFeatureKind   = new(ErrCodeUnknownFeatureKind, "unknown feature kind")
)

const (
	ErrCodeNotFound         = "not_found"
	ErrCodeAlreadyExists    = "already_exists"
	ErrCodeValidation       = "validation_error"
	ErrCodeInvalidOperation = "invalid_operation"

	ErrCodeInvalidMode          = "invalid_mode"
	ErrCodeUninitializedMode    = "uninitialized_mode"
	ErrCodeInvalidInterval      = "invalid_interval"
	ErrCodeRefreshRequired      = "refresh_required"
	ErrCodeInsufficientQuantity = "insufficient_quantity"
	ErrCodeNoDrawerAvailable    = "no_drawer_available"
	ErrCodeUnknownFeatureKind   = "unknown_feature_kind"
)

// InternalError represents a domain error
type InternalError struct {
	Code    string // Machine-readable error code
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.DisplayError()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err.Error())
}

func (e *InternalError) DisplayError() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Is implements error matching for wrapped errors
func (e *InternalError) Is(target error) bool {
	if target == nil {
		return false
	}

	t, ok := target.(*InternalError)
	if !ok {
		return errors.Is(e.Err, target)
	}

	return e.Code == t.Code
}

// new creates a new InternalError
func new(code string, message string) *InternalError {
	return &InternalError{
		Code:    code,
		Message: message,
	}
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidOperation checks if an error is an invalid operation error
func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidOperation)
}

func IsInvalidMode(err error) bool {
	return errors.Is(err, ErrInvalidMode)
}

func IsUninitializedMode(err error) bool {
	return errors.Is(err, ErrUninitializedMode)
}

func IsInvalidInterval(err error) bool {
	return errors.Is(err, ErrInvalidInterval)
}

func IsRefreshRequired(err error) bool {
	return errors.Is(err, ErrRefreshRequired)
}

func IsInsufficientQuantity(err error) bool {
	return errors.Is(err, ErrInsufficientQuantity)
}

func IsNoDrawerAvailable(err error) bool {
	return errors.Is(err, ErrNoDrawerAvailable)
}

func IsUnknownFeatureKind(err error) bool {
	return errors.Is(err, ErrUnknownFeatureKind)
}
