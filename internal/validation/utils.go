// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required, non-blank fields) defined in struct tags
// and extracts validation errors into a format the client can
// understand
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/deppfellow/docgen/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Validate checks the payload shape and runs Struct on nested records. It
// returns *errs.HTTPError for checks with a fixed client message, or
// validator.ValidationErrors for plain tag failures.
type Validatable interface {
	Validate() error
}

// validate is the shared validator instance.
//
// validator caches struct metadata per type, so a single instance is reused.
// Field names in errors are the JSON keys, so clients see "voucherNo", not "VoucherNo".
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	// notblank rejects strings made only of whitespace.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return true
		}
		return strings.TrimSpace(field.String()) != ""
	})

	return v
}

// Struct validates a struct against its `validate` tags.
//
// Every failing field is reported, in declaration order.
func Struct(s any) error {
	return validate.Struct(s)
}

// MissingFieldsError converts a validation failure into a 400 that lists every
// failing field under "missing".
//
// Errors that are not validator.ValidationErrors are wrapped as a plain 400.
func MissingFieldsError(message string, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errs.ValidationError(err)
	}

	missing := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		missing = append(missing, fe.Field())
	}

	return errs.NewMissingFieldsError(message, missing)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
// 1) c.Bind(payload) populates request struct from the incoming request body.
// 2) payload.Validate() applies validation rules.
// 3) Returns *errs.HTTPError (400) describing exactly what failed.
//
// NOTE: c.Bind expects a pointer to a struct. If payload is not a pointer,
// binding will fail or behave unexpectedly.
func BindAndValidate(c echo.Context, payload Validatable) error {
	// Bind request body into payload.
	// Echo returns an *echo.HTTPError when JSON is malformed or types mismatch.
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), nil, nil)
	}

	return Validate(payload)
}

// bindErrorMessage extracts the client-facing part of a bind failure.
func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok {
			return msg
		}
		return fmt.Sprint(echoErr.Message)
	}
	return err.Error()
}

// Validate calls v.Validate() and normalizes whatever it returns into an HTTP error.
func Validate(v Validatable) error {
	err := v.Validate()
	if err == nil {
		return nil
	}

	// Payloads that already produced a client-facing error keep it verbatim.
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	msg, fieldErrors := extractValidationError(err)
	if fieldErrors == nil {
		return errs.ValidationError(err)
	}

	return errs.NewBadRequestError(msg, nil, fieldErrors)
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "", nil
	}

	var fieldErrors []errs.FieldError

	// Convert validator.ValidationErrors into user-friendly messages.
	for _, fe := range validationErrors {
		var msg string

		switch fe.Tag() {
		case "required", "notblank":
			msg = "is required"

		case "min":
			if fe.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", fe.Param())
			}

		default:
			// Fallback for tags not explicitly handled above.
			if fe.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", fe.Field(), fe.Tag(), fe.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", fe.Field(), fe.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: fe.Field(),
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
