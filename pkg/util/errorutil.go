package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

// FieldError describes a single failed field check.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DomainError standardizes application errors. Code carries an upstream
// error code (e.g. a Postgres SQLSTATE) when one is worth surfacing.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Fields     []FieldError
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(message string, status int) *DomainError {
	return &DomainError{Message: message, HTTPStatus: status}
}

// NewValidationError reports accumulated field check failures.
func NewValidationError(fields []FieldError) error {
	return &DomainError{
		Message:    "validation failed",
		HTTPStatus: http.StatusBadRequest,
		Fields:     fields,
	}
}

// NewBadRequest reports a request-level failure with its observed message.
func NewBadRequest(message string) error {
	return NewDomainError(message, http.StatusBadRequest)
}

func NewNotFound(resource string) error {
	return NewDomainError(fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

func NewUnauthorized(message string) error {
	return NewDomainError(message, http.StatusUnauthorized)
}

// NewUpstreamError wraps a store or image-host failure. The upstream code,
// when present, is echoed in the response body.
func NewUpstreamError(message string, status int, code string, err error) error {
	return &DomainError{
		Code:       code,
		Message:    message,
		HTTPStatus: status,
		Err:        err,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Message:    "Something went wrong, try again",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		if de, ok := NewNotFound("Resource").(*DomainError); ok {
			return de
		}
	}
	if de, ok := NewInternalError(err).(*DomainError); ok {
		return de
	}
	return &DomainError{
		Message:    "Something went wrong, try again",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
