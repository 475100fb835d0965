package internal

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError carries a status code and a user-facing message out of a handler.
// Err is kept for logging and never shown to the user.
type HTTPError struct {
	Err       error
	Message   string
	RequestID string
	Code      int
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func (e *HTTPError) StatusCode() int {
	return e.Code
}

func (e *HTTPError) StatusText() string {
	return http.StatusText(e.Code)
}

// HTTPErrorOption configures an HTTPError.
type HTTPErrorOption func(*HTTPError)

// NewHTTPError creates an HTTPError. An empty message falls back to the
// status text.
func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	if message == "" {
		message = http.StatusText(code)
	}
	e := &HTTPError{Code: code, Message: message}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func WithError(err error) HTTPErrorOption {
	return func(e *HTTPError) {
		e.Err = err
	}
}

func WithRequestID(id string) HTTPErrorOption {
	return func(e *HTTPError) {
		e.RequestID = id
	}
}

func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message, opts...)
}

func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message, opts...)
}

func ErrUnprocessable(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusUnprocessableEntity, message, opts...)
}

func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, message, opts...)
}

func ErrServiceUnavailable(message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(http.StatusServiceUnavailable, message, opts...)
}

// AsHTTPError extracts an *HTTPError from the error chain.
// Returns nil if there is none.
func AsHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return nil
}
