package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/deppfellow/docgen/internal/config"
	"github.com/deppfellow/docgen/internal/handler"
	"github.com/deppfellow/docgen/internal/router"
	"github.com/deppfellow/docgen/internal/server"
	"github.com/deppfellow/docgen/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

type errorBody struct {
	Error   string   `json:"error"`
	Code    string   `json:"code"`
	Status  int      `json:"status"`
	Missing []string `json:"missing"`
}

func newTestRouter(t *testing.T, mutate func(*config.Config)) *echo.Echo {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Render.Compress = false
	if mutate != nil {
		mutate(cfg)
	}

	logger := zerolog.Nop()
	s, err := server.New(cfg, &logger, nil)
	if err != nil {
		t.Fatalf("server.New: %v", err)
	}

	services, err := service.NewServices(s)
	if err != nil {
		t.Fatalf("service.NewServices: %v", err)
	}

	return router.NewRouter(s, handler.NewHandlers(s, services))
}

func do(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestRoot(t *testing.T) {
	rec := do(t, newTestRouter(t, nil), http.MethodGet, "/", "")

	if rec.Code != http.StatusOK || rec.Body.String() != "Server is running" {
		t.Fatalf("GET / = %d %q", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response has no X-Request-ID")
	}
}

func TestStatus(t *testing.T) {
	rec := do(t, newTestRouter(t, nil), http.MethodGet, "/status", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /status = %d %s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "healthy" || body["environment"] != "development" {
		t.Fatalf("status body = %v", body)
	}
}

func TestPages(t *testing.T) {
	e := newTestRouter(t, nil)

	tests := []struct {
		target string
		want   int
		msg    string
	}{
		{"/pages/billing-generator", http.StatusOK, ""},
		{"/pages/voucher-generator", http.StatusOK, ""},
		{"/pages/../etc", http.StatusForbidden, "Direct file access not allowed"},
		{"/pages/billing-generator.html", http.StatusForbidden, "Direct file access not allowed"},
		{"/pages/unknown", http.StatusNotFound, "Page not found"},
		{"/pages/login", http.StatusNotFound, "Page not found"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := do(t, e, http.MethodGet, tt.target, "")
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.want, rec.Body.String())
			}

			if tt.want == http.StatusOK {
				if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, "text/html") {
					t.Errorf("content type = %q", ct)
				}
				if rec.Header().Get("Cache-Control") != "no-cache" {
					t.Error("page should not be cached")
				}
				if !strings.Contains(rec.Body.String(), "<form") {
					t.Error("page has no form")
				}
				return
			}

			if got := decodeError(t, rec).Error; got != tt.msg {
				t.Errorf("error = %q, want %q", got, tt.msg)
			}
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	rec := do(t, newTestRouter(t, nil), http.MethodGet, "/nope", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decodeError(t, rec).Error; got != "Route not found" {
		t.Fatalf("error = %q", got)
	}
}

func TestBilling(t *testing.T) {
	body := `{
		"clientInfo": {"voucherNo": "INV 9", "dateOfIssue": "2024-03-05", "name": "Acme"},
		"items": [{"item": "Design", "quantity": 2, "price": 500.25}, {"item": "Hosting", "quantity": 1, "price": 234}]
	}`

	rec := do(t, newTestRouter(t, nil), http.MethodPost, "/api/billing", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); cd != `attachment; filename="invoice-INV_9.pdf"` {
		t.Errorf("content disposition = %q", cd)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Fatal("body is not a PDF")
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("$1,234.50")) {
		t.Error("PDF does not contain the grand total")
	}
}

func TestBilling_Invalid(t *testing.T) {
	e := newTestRouter(t, nil)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing clientInfo", `{"items": []}`, "Invalid payload: clientInfo required"},
		{"missing items", `{"clientInfo": {}}`, "Invalid payload: items array required"},
		{"items not array", `{"clientInfo": {}, "items": "x"}`, "Invalid payload: items array required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, e, http.MethodPost, "/api/billing", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d", rec.Code)
			}
			if got := decodeError(t, rec).Error; got != tt.want {
				t.Fatalf("error = %q, want %q", got, tt.want)
			}
		})
	}

	rec := do(t, e, http.MethodPost, "/api/billing", `{"clientInfo":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed JSON status = %d", rec.Code)
	}
}

func TestBilling_RenderFailure(t *testing.T) {
	body := `{"clientInfo": {"dateOfIssue": "sometime"}, "items": []}`

	rec := do(t, newTestRouter(t, nil), http.MethodPost, "/api/billing", body)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decodeError(t, rec).Error; !strings.Contains(got, "sometime") {
		t.Fatalf("development error should carry the cause, got %q", got)
	}

	prod := newTestRouter(t, func(cfg *config.Config) {
		cfg.Observability.Environment = "production"
	})
	rec = do(t, prod, http.MethodPost, "/api/billing", body)
	if got := decodeError(t, rec).Error; got != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("production error = %q", got)
	}
}

func TestVoucher(t *testing.T) {
	body := `{
		"voucherInfo": {
			"name": "Ann", "voucherNo": "V-1", "dateOfIssue": "2024-01-02", "destination": "Cebu",
			"dateOfTravel": "2024-02-03", "hotel": "H", "hotelConfirmation": "C", "hotelAddress": "A",
			"rooms": 1, "namesList": "Ann\nBob"
		},
		"flights": [{"flightNo": "PR 1", "depDate": "2024-02-03"}],
		"itineraries": [{"city": "Cebu", "breakfast": true}]
	}`

	rec := do(t, newTestRouter(t, nil), http.MethodPost, "/api/voucher", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d %s", rec.Code, rec.Body.String())
	}
	if cd := rec.Header().Get(echo.HeaderContentDisposition); cd != `attachment; filename="voucher-V-1.pdf"` {
		t.Errorf("content disposition = %q", cd)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Fatal("body is not a PDF")
	}
}

func TestVoucher_MissingFields(t *testing.T) {
	rec := do(t, newTestRouter(t, nil), http.MethodPost, "/api/voucher", `{"voucherInfo": {"name": "Ann", "rooms": "  "}}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}

	body := decodeError(t, rec)
	if body.Error != "Missing voucherInfo fields" {
		t.Fatalf("error = %q", body.Error)
	}

	want := []string{
		"voucherNo", "dateOfIssue", "destination", "dateOfTravel", "hotel",
		"hotelConfirmation", "hotelAddress", "rooms", "namesList",
	}
	if !reflect.DeepEqual(body.Missing, want) {
		t.Fatalf("missing = %q, want %q", body.Missing, want)
	}
}

func TestVoucher_ShapeErrors(t *testing.T) {
	e := newTestRouter(t, nil)

	rec := do(t, e, http.MethodPost, "/api/voucher", `{}`)
	if got := decodeError(t, rec).Error; got != "Invalid payload: voucherInfo required" {
		t.Fatalf("error = %q", got)
	}
}

func TestBodyLimit(t *testing.T) {
	e := newTestRouter(t, func(cfg *config.Config) {
		cfg.Server.BodyLimit = "1K"
	})

	body := `{"clientInfo": {"name": "` + strings.Repeat("x", 2048) + `"}, "items": []}`
	rec := do(t, e, http.MethodPost, "/api/billing", body)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	e := newTestRouter(t, func(cfg *config.Config) {
		cfg.RateLimit.Enabled = true
		cfg.RateLimit.RequestsPerSecond = 0.001
		cfg.RateLimit.Burst = 2
	})

	for i := 0; i < 2; i++ {
		if rec := do(t, e, http.MethodGet, "/", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, rec.Code)
		}
	}

	rec := do(t, e, http.MethodGet, "/", "")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
}
