package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "voucherNo", "error": "is required" }
type FieldError struct {
	// Field is the payload key the error relates to (e.g. "voucherNo").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error() and is serialized directly
// to JSON by the global error handler.
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message, sent as "error".
//   - Status: HTTP status code.
//   - Missing: names of required payload fields that were absent or blank.
//   - Errors: list of per-field errors (validation).
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"error"`
	Status  int    `json:"status"`

	// Missing lists every required field that failed, not just the first one.
	Missing []string `json:"missing,omitempty"`

	// Errors holds field-level validation errors.
	Errors []FieldError `json:"errors,omitempty"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
//
// Printing/logging the error shows the Message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is customizes how errors.Is(...) treats HTTPError.
//
// It returns true if `target` is also a *HTTPError. It does NOT compare
// Code/Status/etc, only the type.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a *copy* of this HTTPError with Message replaced.
//
// Useful if you have a base error template and want to customize message
// without mutating the original.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
		Missing: e.Missing,
		Errors:  e.Errors,
	}
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
//
// Used to create stable machine-readable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
