package validation_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/deppfellow/docgen/internal/errs"
	"github.com/deppfellow/docgen/internal/validation"
	"github.com/labstack/echo/v4"
)

type booking struct {
	Code  string `json:"code" validate:"required,notblank"`
	Guest string `json:"guest" validate:"required,notblank"`
	Rooms int    `json:"rooms" validate:"min=1"`
}

func (b *booking) Validate() error {
	return validation.Struct(b)
}

func newContext(body string) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T (%v)", err, err)
	}
	return httpErr
}

func TestBindAndValidate_Success(t *testing.T) {
	var b booking
	if err := validation.BindAndValidate(newContext(`{"code":"A","guest":"Ann","rooms":2}`), &b); err != nil {
		t.Fatalf("BindAndValidate: %v", err)
	}
	if b.Guest != "Ann" || b.Rooms != 2 {
		t.Fatalf("bound %+v", b)
	}
}

func TestBindAndValidate_FieldErrorsUseJSONNames(t *testing.T) {
	var b booking
	httpErr := asHTTPError(t, validation.BindAndValidate(newContext(`{"guest":"   ","rooms":0}`), &b))

	if httpErr.Status != http.StatusBadRequest {
		t.Fatalf("status = %d", httpErr.Status)
	}

	want := []errs.FieldError{
		{Field: "code", Error: "is required"},
		{Field: "guest", Error: "is required"},
		{Field: "rooms", Error: "must be at least 1"},
	}
	if !reflect.DeepEqual(httpErr.Errors, want) {
		t.Fatalf("errors = %+v, want %+v", httpErr.Errors, want)
	}
}

func TestBindAndValidate_MalformedJSON(t *testing.T) {
	var b booking
	httpErr := asHTTPError(t, validation.BindAndValidate(newContext(`{"code":`), &b))

	if httpErr.Status != http.StatusBadRequest || httpErr.Message == "" {
		t.Fatalf("got %+v", httpErr)
	}
}

func TestMissingFieldsError(t *testing.T) {
	err := validation.MissingFieldsError("Missing booking fields", validation.Struct(&booking{Rooms: 1}))
	httpErr := asHTTPError(t, err)

	if httpErr.Code != errs.CodeMissingFields {
		t.Fatalf("code = %q", httpErr.Code)
	}
	if !reflect.DeepEqual(httpErr.Missing, []string{"code", "guest"}) {
		t.Fatalf("missing = %q", httpErr.Missing)
	}
}
