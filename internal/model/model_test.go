package model_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/deppfellow/docgen/internal/errs"
	"github.com/deppfellow/docgen/internal/model"
)

func decode[T any](t *testing.T, body string) *T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		t.Fatalf("decode %s: %v", body, err)
	}
	return &v
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T (%v)", err, err)
	}
	return httpErr
}

func TestText_AcceptsScalars(t *testing.T) {
	tests := []struct {
		in   string
		want model.Text
	}{
		{`"Lagos"`, "Lagos"},
		{`2`, "2"},
		{`2.5`, "2.5"},
		{`true`, "true"},
		{`null`, ""},
	}

	for _, tt := range tests {
		var got model.Text
		if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("unmarshal %s = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestText_RejectsObjects(t *testing.T) {
	var got model.Text
	if err := json.Unmarshal([]byte(`{"a":1}`), &got); err == nil {
		t.Fatal("expected error for object value")
	}
}

func TestText_Lines(t *testing.T) {
	text := model.Text("Ann\n\nBob\n  Cy  \n")
	got := text.Lines()
	want := []string{"Ann", "Bob", "  Cy  "}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Lines() = %q, want %q", got, want)
	}
	if n := text.LineCount(); n != 5 {
		t.Fatalf("LineCount() = %d, want 5", n)
	}
}

func TestFlag_Truthiness(t *testing.T) {
	tests := map[string]bool{
		`true`:    true,
		`false`:   false,
		`null`:    false,
		`0`:       false,
		`1`:       true,
		`""`:      false,
		`"false"`: true,
		`"yes"`:   true,
		`{}`:      true,
	}

	for in, want := range tests {
		var got model.Flag
		if err := json.Unmarshal([]byte(in), &got); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		if bool(got) != want {
			t.Errorf("unmarshal %s = %v, want %v", in, got, want)
		}
	}
}

func TestSequence_Shapes(t *testing.T) {
	type payload struct {
		Flights model.Sequence[model.Flight] `json:"flights"`
	}

	absent := decode[payload](t, `{}`)
	if absent.Flights.Present() || absent.Flights.IsArray() {
		t.Fatal("absent sequence should be neither present nor an array")
	}

	null := decode[payload](t, `{"flights":null}`)
	if null.Flights.Present() {
		t.Fatal("null sequence should not be present")
	}

	malformed := decode[payload](t, `{"flights":"PR 100"}`)
	if !malformed.Flights.Present() || malformed.Flights.IsArray() {
		t.Fatal("string sequence should be present but not an array")
	}

	ok := decode[payload](t, `{"flights":[{"flightNo":"PR 100"},{"flightNo":200}]}`)
	if !ok.Flights.IsArray() || ok.Flights.Len() != 2 {
		t.Fatalf("expected 2 flights, got %+v", ok.Flights)
	}
	if ok.Flights.Items[1].FlightNo != "200" {
		t.Fatalf("flightNo = %q, want 200", ok.Flights.Items[1].FlightNo)
	}
}

func TestInvoice_Validate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing clientInfo", `{"items":[]}`, "Invalid payload: clientInfo required"},
		{"null clientInfo", `{"clientInfo":null,"items":[]}`, "Invalid payload: clientInfo required"},
		{"missing items", `{"clientInfo":{}}`, "Invalid payload: items array required"},
		{"items not array", `{"clientInfo":{},"items":{"a":1}}`, "Invalid payload: items array required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := decode[model.Invoice](t, tt.body)
			httpErr := asHTTPError(t, inv.Validate())
			if httpErr.Status != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", httpErr.Status)
			}
			if httpErr.Message != tt.wantMsg {
				t.Fatalf("message = %q, want %q", httpErr.Message, tt.wantMsg)
			}
		})
	}

	valid := decode[model.Invoice](t, `{"clientInfo":{"name":"Acme"},"items":[]}`)
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid invoice: %v", err)
	}
}

func TestInvoice_TotalAndCurrency(t *testing.T) {
	inv := decode[model.Invoice](t, `{
		"clientInfo": {},
		"items": [
			{"item": "Design", "quantity": 2, "price": 500.25},
			{"item": "Hosting", "quantity": "1", "price": "234", "currency": "EUR"}
		]
	}`)

	if got := inv.Total().StringFixed(2); got != "1234.50" {
		t.Fatalf("Total() = %s, want 1234.50", got)
	}
	if got := inv.Currency(); got != "USD" {
		t.Fatalf("Currency() = %s, want USD", got)
	}

	empty := decode[model.Invoice](t, `{"clientInfo":{},"items":[]}`)
	if !empty.Total().IsZero() {
		t.Fatalf("empty Total() = %s, want 0", empty.Total())
	}
}

func TestLineItem_Label(t *testing.T) {
	if got := (model.LineItem{Item: "A", Description: "B"}).Label(); got != "A" {
		t.Fatalf("Label() = %q, want A", got)
	}
	if got := (model.LineItem{Description: "B"}).Label(); got != "B" {
		t.Fatalf("Label() = %q, want B", got)
	}
	if got := (model.LineItem{}).Label(); got != "-" {
		t.Fatalf("Label() = %q, want -", got)
	}
}

func TestVoucher_Validate_ListsEveryMissingField(t *testing.T) {
	v := decode[model.Voucher](t, `{"voucherInfo":{"name":"Ann","rooms":0,"hotel":"   ","destination":null}}`)

	httpErr := asHTTPError(t, v.Validate())
	if httpErr.Message != "Missing voucherInfo fields" {
		t.Fatalf("message = %q", httpErr.Message)
	}

	want := []string{
		"voucherNo", "dateOfIssue", "destination", "dateOfTravel", "hotel",
		"hotelConfirmation", "hotelAddress", "namesList",
	}
	if !reflect.DeepEqual(httpErr.Missing, want) {
		t.Fatalf("missing = %q, want %q", httpErr.Missing, want)
	}
	if len(httpErr.Errors) != len(want) {
		t.Fatalf("field errors = %d, want %d", len(httpErr.Errors), len(want))
	}
}

func TestVoucher_Validate_Order(t *testing.T) {
	const info = `"voucherInfo":{"name":"Ann","voucherNo":"V1","dateOfIssue":"2024-01-02",
		"destination":"Cebu","dateOfTravel":"2024-02-03","hotel":"H","hotelConfirmation":"C",
		"hotelAddress":"A","rooms":1,"namesList":"Ann"}`

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing voucherInfo", `{}`, "Invalid payload: voucherInfo required"},
		{"flights not array", `{` + info + `,"flights":{"flightNo":"X"}}`, "Invalid payload: flights must be an array"},
		{"itineraries not array", `{` + info + `,"itineraries":"Cebu"}`, "Invalid payload: itineraries must be an array"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := decode[model.Voucher](t, tt.body)
			if got := asHTTPError(t, v.Validate()).Message; got != tt.wantMsg {
				t.Fatalf("message = %q, want %q", got, tt.wantMsg)
			}
		})
	}

	valid := decode[model.Voucher](t, `{`+info+`,"flights":null,"itineraries":[]}`)
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid voucher: %v", err)
	}
}

func TestItinerary_Meals(t *testing.T) {
	it := model.Itinerary{Breakfast: true, Dinner: true}
	if got := it.Meals(); got != "B - D" {
		t.Fatalf("Meals() = %q, want %q", got, "B - D")
	}
}

func TestScopeOfWork_Sections(t *testing.T) {
	var nilScope *model.ScopeOfWork
	if got := nilScope.Sections(); got != nil {
		t.Fatalf("nil scope sections = %v", got)
	}

	scope := &model.ScopeOfWork{Inclusions: "Transfers", Remarks: "None"}
	got := scope.Sections()
	if len(got) != 2 || got[0].Label != "Inclusions:" || got[1].Label != "Remarks:" {
		t.Fatalf("Sections() = %+v", got)
	}
}
