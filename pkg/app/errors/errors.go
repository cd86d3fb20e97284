// Package errors contains helper functions and types to work with errors
package errors

import (
	"errors"
	"net/http"
)

// Category defines error category
type Category int

const (
	// CategoryNoError marks a step or request that completed without error.
	CategoryNoError Category = iota
	// CategoryDataError The operator supplied invalid data, for example a malformed
	// account id, a missing environment variable or an unreadable plan file.
	CategoryDataError
	// CategoryResourceNotFound The requested ledger entity (account, token, balance) does not exist
	CategoryResourceNotFound
	// CategoryDependencyFailure The ledger network or the mirror node rejected the request
	CategoryDependencyFailure
	// CategoryGeneralError The tool failed in an unexpected way
	CategoryGeneralError
	// CategoryRecovering The dependency is failing but is expected to recover (throttling, 5xx)
	CategoryRecovering
	// CategoryConnectionTimeout Connection to a dependent service timing out
	CategoryConnectionTimeout
)

func (c Category) String() string {
	switch c {
	case CategoryNoError:
		return "CategoryNoError"
	case CategoryDataError:
		return "CategoryDataError"
	case CategoryResourceNotFound:
		return "CategoryResourceNotFound"
	case CategoryDependencyFailure:
		return "CategoryDependencyFailure"
	case CategoryRecovering:
		return "CategoryRecovering"
	case CategoryConnectionTimeout:
		return "CategoryConnectionTimeout"
	default:
		return "CategoryGeneralError"
	}
}

// ServiceError is the categorized error returned by the ledger, mirror and
// staking clients.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

// Error method to comply with error interface
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Message + ": " + err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Category == cat {
		return true
	}
	return false
}

// CategoryOf returns the category of the first ServiceError in the chain,
// CategoryGeneralError for any other non-nil error.
func CategoryOf(err error) Category {
	if err == nil {
		return CategoryNoError
	}
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Category
	}
	return CategoryGeneralError
}

// IsRetryable reports whether the failure is transient.
func IsRetryable(err error) bool {
	switch CategoryOf(err) {
	case CategoryRecovering, CategoryConnectionTimeout:
		return true
	default:
		return false
	}
}

func newError(cat Category, err error, message, fallback string) error {
	if err == nil {
		err = errors.New(fallback)
	}
	return &ServiceError{
		Category: cat,
		Message:  message,
		Err:      err,
	}
}

// DataError returns an error with category DataError
func DataError(err error, message string) error {
	return newError(CategoryDataError, err, message, "invalid data")
}

// ResourceNotFoundError returns an error with category ResourceNotFound
func ResourceNotFoundError(err error, message string) error {
	return newError(CategoryResourceNotFound, err, message, "resource not found")
}

// DependencyError returns an error with category DependencyFailure
func DependencyError(err error, message string) error {
	return newError(CategoryDependencyFailure, err, message, "dependency failure")
}

// RecoveringError returns an error with category Recovering
func RecoveringError(err error, message string) error {
	return newError(CategoryRecovering, err, message, "service unavailable")
}

// TimeoutError returns an error with category ConnectionTimeout
func TimeoutError(err error, message string) error {
	return newError(CategoryConnectionTimeout, err, message, "timeout")
}

// FromHTTPStatus maps a non-2xx response status of a dependency to a category.
func FromHTTPStatus(code int) Category {
	switch {
	case code == http.StatusNotFound:
		return CategoryResourceNotFound
	case code == http.StatusTooManyRequests, code == http.StatusBadGateway,
		code == http.StatusServiceUnavailable:
		return CategoryRecovering
	case code == http.StatusGatewayTimeout, code == http.StatusRequestTimeout:
		return CategoryConnectionTimeout
	case code >= 500:
		return CategoryRecovering
	case code >= 400:
		return CategoryDataError
	default:
		return CategoryGeneralError
	}
}
