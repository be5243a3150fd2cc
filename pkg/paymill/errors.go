package paymill

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Static errors for err113 compliance.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIKeyRequired      = errors.New("API key is required")
	ErrIDRequired          = errors.New("resource id is required")
	ErrEmptyResponse       = errors.New("empty response body")
	ErrUnexpectedToken     = errors.New("unexpected token")
	ErrInvalidInteger      = errors.New("expected integer")
	ErrInvalidInterval     = errors.New("invalid interval")
	ErrUnknownIntervalUnit = errors.New("unknown interval unit")
)

// ValidationError reports a missing or malformed input detected before any
// request is sent.
type ValidationError struct {
	Field   string `json:"field"   yaml:"field"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}

	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// TransportError wraps a network, timeout or connection failure.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// CancelledError is returned when the caller's context was cancelled while
// the request was in flight.
type CancelledError struct {
	Method string
	Path   string
	Err    error
}

// Error implements the error interface.
func (e *CancelledError) Error() string {
	return fmt.Sprintf("%s %s cancelled: %v", e.Method, e.Path, e.Err)
}

// Unwrap returns the context error.
func (e *CancelledError) Unwrap() error {
	return e.Err
}

// APIError is the error document returned by the API alongside a non-success
// status.
type APIError struct {
	Message   string `json:"error"`
	Exception string `json:"exception"`
}

// HTTPStatusError carries a non-success HTTP status and the raw body.
type HTTPStatusError struct {
	StatusCode int
	Body       []byte
	Message    string
	Exception  string
}

// NewHTTPStatusError builds an HTTPStatusError, extracting the API error
// document from body when it has one.
func NewHTTPStatusError(statusCode int, body []byte) *HTTPStatusError {
	statusErr := &HTTPStatusError{
		StatusCode: statusCode,
		Body:       body,
	}

	var apiErr APIError
	if json.Unmarshal(body, &apiErr) == nil {
		statusErr.Message = apiErr.Message
		statusErr.Exception = apiErr.Exception
	}

	return statusErr
}

// Error implements the error interface.
func (e *HTTPStatusError) Error() string {
	text := http.StatusText(e.StatusCode)

	switch {
	case e.Message != "" && e.Exception != "":
		return fmt.Sprintf("%d %s: %s (%s)", e.StatusCode, text, e.Message, e.Exception)
	case e.Message != "":
		return fmt.Sprintf("%d %s: %s", e.StatusCode, text, e.Message)
	default:
		return fmt.Sprintf("%d %s", e.StatusCode, text)
	}
}

// DecodeError reports a malformed or type-mismatched JSON payload.
type DecodeError struct {
	Value string
	Err   error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("decoding response: %v", e.Err)
	}

	return fmt.Sprintf("decoding %q: %v", e.Value, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// FormatError reports a structured wire string that does not match its
// grammar.
type FormatError struct {
	Input string
	Err   error
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed value %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the error is a 404 from the API.
func IsNotFound(err error) bool {
	statusErr := &HTTPStatusError{}
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsValidation checks if the error was raised before any request was sent.
func IsValidation(err error) bool {
	validationErr := &ValidationError{}

	return errors.As(err, &validationErr)
}

// IsCancelled checks if the request was aborted by the caller.
func IsCancelled(err error) bool {
	cancelledErr := &CancelledError{}

	return errors.As(err, &cancelledErr)
}
