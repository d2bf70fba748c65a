package errs

import (
	"net/http"
)

// NewForbiddenError creates a 403 Forbidden HTTPError.
func NewForbiddenError(message string) *HTTPError {
	return &HTTPError{
		// http.StatusText(403) => "Forbidden" => "FORBIDDEN"
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusForbidden)),
		Message: message,
		Status:  http.StatusForbidden,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// This supports extra payload:
//   - code: optional custom code string (if nil, defaults to "BAD_REQUEST")
//   - errors: optional slice of field errors (validation errors)
func NewBadRequestError(message string, code *string, errors []FieldError) *HTTPError {
	// Default code comes from HTTP status text:
	// http.StatusText(400) => "Bad Request" => "BAD_REQUEST"
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))

	// If caller supplies custom code pointer, use it.
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusBadRequest,
		Errors:  errors,
	}
}

// CodeMissingFields is the error code used when required fields are absent.
const CodeMissingFields = "MISSING_FIELDS"

// NewMissingFieldsError creates a 400 Bad Request HTTPError that names every
// missing field, both in Missing and as field-level errors.
func NewMissingFieldsError(message string, missing []string) *HTTPError {
	fieldErrors := make([]FieldError, 0, len(missing))
	for _, field := range missing {
		fieldErrors = append(fieldErrors, FieldError{Field: field, Error: "is required"})
	}

	code := CodeMissingFields
	err := NewBadRequestError(message, &code, fieldErrors)
	err.Missing = missing

	return err
}

// NewNotFoundError creates a 404 Not Found HTTPError.
//
// Supports optional custom code override similar to NewBadRequestError.
func NewNotFoundError(message string, code *string) *HTTPError {
	// Default code: "NOT_FOUND"
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:    formattedCode,
		Message: message,
		Status:  http.StatusNotFound,
	}
}

// NewTooManyRequestsError creates a 429 Too Many Requests HTTPError.
func NewTooManyRequestsError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)),
		Message: message,
		Status:  http.StatusTooManyRequests,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// Note:
//   - message is the generic status text, not the real internal error message.
//   - callers that may expose the cause use WithMessage.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
	}
}

// ValidationError converts a generic validation error into a 400 Bad Request HTTPError.
//
// This is a helper so you can do:
//
//	return errs.ValidationError(err)
//
// and clients get consistent error structure.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), nil, nil)
}
