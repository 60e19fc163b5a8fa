package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error classes surfaced by the API. Codes travel in the response envelope;
// Status decides the HTTP status the handler writes.
const (
	CodeValidation         = "validation_error"
	CodeNotFound           = "not_found"
	CodeAlreadyExists      = "already_exists"
	CodeUnsupportedFormat  = "unsupported_format"
	CodeGatewayUnavailable = "gateway_unavailable"
	CodeEmptyResponse      = "empty_response"
	CodeMalformedResponse  = "malformed_response"
	CodeInternal           = "internal_error"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func Validation(msg string) *Error {
	return New(http.StatusBadRequest, CodeValidation, errors.New(msg))
}

func NotFound(msg string) *Error {
	return New(http.StatusNotFound, CodeNotFound, errors.New(msg))
}

func AlreadyExists(msg string) *Error {
	return New(http.StatusBadRequest, CodeAlreadyExists, errors.New(msg))
}

func UnsupportedFormat(msg string) *Error {
	return New(http.StatusOK, CodeUnsupportedFormat, errors.New(msg))
}

func GatewayUnavailable(msg string) *Error {
	return New(http.StatusInternalServerError, CodeGatewayUnavailable, errors.New(msg))
}

func EmptyResponse(msg string) *Error {
	return New(http.StatusInternalServerError, CodeEmptyResponse, errors.New(msg))
}

func MalformedResponse(err error) *Error {
	return New(http.StatusInternalServerError, CodeMalformedResponse, err)
}

func Internal(err error) *Error {
	return New(http.StatusInternalServerError, CodeInternal, err)
}

// StatusOf resolves the HTTP status for any error. Non-API errors map to 500.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Status != 0 {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}

// CodeOf resolves the envelope code for any error. Non-API errors map to
// internal_error.
func CodeOf(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Code != "" {
		return apiErr.Code
	}
	return CodeInternal
}

func IsCode(err error, code string) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Code == code
}
