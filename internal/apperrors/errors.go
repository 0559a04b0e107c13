// Package apperrors classifies failures into user-visible error responses.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeInternal         = "INTERNAL_ERROR"
	CodeValidation       = "VALIDATION_ERROR"
	CodeBadRequest       = "BAD_REQUEST"
	CodeUnknownCategory  = "UNKNOWN_CATEGORY"
	CodeEmptyDepartment  = "EMPTY_DEPARTMENT"
	CodePredictionFailed = "PREDICTION_FAILED"
)

// AppError is an error with a stable code and an HTTP status.
type AppError struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	StatusCode int               `json:"-"`
	Err        error             `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key, value string) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithError wraps an underlying error
func (e *AppError) WithError(err error) *AppError {
	e.Err = err
	return e
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func Internal(message string) *AppError {
	return New(CodeInternal, message, http.StatusInternalServerError)
}

func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func BadRequest(message string) *AppError {
	return New(CodeBadRequest, message, http.StatusBadRequest)
}

func UnknownCategory(field, value string) *AppError {
	return New(CodeUnknownCategory,
		fmt.Sprintf("%q is not a known value for %s", value, field),
		http.StatusUnprocessableEntity).
		WithDetail("field", field).
		WithDetail("value", value)
}

func EmptyDepartment(department string) *AppError {
	return New(CodeEmptyDepartment,
		fmt.Sprintf("no salary data for department %q", department),
		http.StatusUnprocessableEntity).
		WithDetail("department", department)
}

func PredictionFailed(message string) *AppError {
	return New(CodePredictionFailed, message, http.StatusInternalServerError)
}

// As extracts an AppError from an error chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// StatusCode returns the HTTP status for err, defaulting to 500.
func StatusCode(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

func IsCode(err error, code string) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == code
}
