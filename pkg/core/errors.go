package core

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of a client error.
type ErrorType int

// Error type constants categorize failures for programmatic handling.
const (
	// ErrorTypeUnknown indicates an unclassified error.
	ErrorTypeUnknown ErrorType = iota
	// ErrorTypeNetwork indicates a transport-level failure before any
	// response was received.
	ErrorTypeNetwork
	// ErrorTypeUnexpectedStatus indicates a status-only call returned a
	// status code other than 200.
	ErrorTypeUnexpectedStatus
	// ErrorTypeInvalidBody indicates a response body was present but
	// structurally unexpected, such as a missing required key.
	ErrorTypeInvalidBody
	// ErrorTypeDecode indicates the typed JSON decode of a response body
	// failed with a structural mismatch.
	ErrorTypeDecode
	// ErrorTypeInvalidURL indicates the composed request URL was not
	// syntactically valid.
	ErrorTypeInvalidURL
	// ErrorTypeNoResponse indicates the call completed without a usable
	// response body.
	ErrorTypeNoResponse
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	return [...]string{
		"UNKNOWN",
		"NETWORK",
		"UNEXPECTED_STATUS",
		"INVALID_BODY",
		"DECODE",
		"INVALID_URL",
		"NO_RESPONSE",
	}[t]
}

// Sentinel errors for common client conditions.
var (
	// ErrNoCredentials is returned when an endpoint requiring an API key
	// is called on a client configured without credentials.
	ErrNoCredentials = errors.New("no credentials configured")
)

// APIError represents a structured failure from a single API call.
// Each call produces its own instance; there is no shared error state and
// no error is fatal to the client.
type APIError struct {
	// Type categorizes the error for programmatic handling.
	Type ErrorType `json:"type"`
	// StatusCode is the HTTP status code, when a response was received.
	StatusCode int `json:"status_code,omitempty"`
	// Message is the human-readable error description.
	Message string `json:"message"`
	// Raw holds the offending response body for InvalidBody errors.
	Raw []byte `json:"raw,omitempty"`
	// Cause is the underlying error, when one exists.
	Cause error `json:"-"`
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Cause != nil:
		return fmt.Sprintf("%s (%d): %s: %v", e.Type, e.StatusCode, e.Message, e.Cause)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s (%d): %s", e.Type, e.StatusCode, e.Message)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	default:
		return fmt.Sprintf("%s: %s", e.Type, e.Message)
	}
}

// Unwrap returns the underlying cause for use with errors.Is and errors.As.
func (e *APIError) Unwrap() error {
	return e.Cause
}

// NewAPIError creates an APIError with the specified type and message.
func NewAPIError(errorType ErrorType, message string) *APIError {
	return &APIError{Type: errorType, Message: message}
}

// NewStatusError creates an UnexpectedStatus error carrying the exact
// status code returned by the server.
func NewStatusError(statusCode int) *APIError {
	return &APIError{
		Type:       ErrorTypeUnexpectedStatus,
		StatusCode: statusCode,
		Message:    "unexpected status code",
	}
}

// NewBodyError creates an InvalidBody error preserving the raw response
// bytes for debugging.
func NewBodyError(message string, raw []byte) *APIError {
	return &APIError{Type: ErrorTypeInvalidBody, Message: message, Raw: raw}
}

// NewDecodeError creates a Decode error wrapping the structural mismatch
// reported by the JSON decoder.
func NewDecodeError(cause error) *APIError {
	return &APIError{Type: ErrorTypeDecode, Message: "decode response", Cause: cause}
}

// errType extracts the APIError type from an error chain, or Unknown.
func errType(err error) ErrorType {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type
	}
	return ErrorTypeUnknown
}

// IsUnexpectedStatus returns true if the error is a status-code mismatch.
func IsUnexpectedStatus(err error) bool {
	return errType(err) == ErrorTypeUnexpectedStatus
}

// IsDecodeError returns true if the error is a typed decode failure.
func IsDecodeError(err error) bool {
	return errType(err) == ErrorTypeDecode
}

// IsInvalidBody returns true if the error is a structurally unexpected body.
func IsInvalidBody(err error) bool {
	return errType(err) == ErrorTypeInvalidBody
}

// IsNoResponse returns true if the call completed without a usable body.
func IsNoResponse(err error) bool {
	return errType(err) == ErrorTypeNoResponse
}

// IsNetworkError returns true if the error is a transport-level failure.
func IsNetworkError(err error) bool {
	return errType(err) == ErrorTypeNetwork
}
