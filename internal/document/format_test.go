package document_test

import (
	"testing"

	"github.com/deppfellow/docgen/internal/document"
	"github.com/deppfellow/docgen/internal/model"
	"github.com/shopspring/decimal"
)

func TestFormatNumber(t *testing.T) {
	tests := map[string]string{
		"0":                     "0.00",
		"5":                     "5.00",
		"1234.5":                "1,234.50",
		"1000000":               "1,000,000.00",
		"12.345":                "12.35",
		"-1500.1":               "-1,500.10",
		"-0.5":                  "-0.50",
		"99999999999999.99":     "99,999,999,999,999.99",
		"12345678901234567.89":  "12,345,678,901,234,567.89",
		"123456789012345678901": "123,456,789,012,345,678,901.00",
	}

	for in, want := range tests {
		if got := document.FormatNumber(decimal.RequireFromString(in)); got != want {
			t.Errorf("FormatNumber(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestCurrencySymbol(t *testing.T) {
	tests := map[string]string{
		"USD": "$",
		"EUR": "EUR ",
		"PHP": "PHP ",
		"JPY": "JPY ",
		"":    "",
	}

	for code, want := range tests {
		if got := document.CurrencySymbol(code); got != want {
			t.Errorf("CurrencySymbol(%q) = %q, want %q", code, got, want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := map[model.Text]string{
		"":                     "-",
		"2024-03-05":           "5/3/2024",
		"2024-12-31T10:00:00Z": "31/12/2024",
		"01/02/2024":           "2/1/2024",
		"Jan 2, 2024":          "2/1/2024",
		"March 15, 2024":       "15/3/2024",
	}

	for in, want := range tests {
		got, err := document.FormatDate(in)
		if err != nil {
			t.Fatalf("FormatDate(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("FormatDate(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := document.FormatDate("next tuesday"); err == nil {
		t.Fatal("expected error for unparseable date")
	}
}

func TestFormatDateTime(t *testing.T) {
	got, err := document.FormatDateTime("2024-03-05", "14:30")
	if err != nil {
		t.Fatal(err)
	}
	if got != "5/3/2024 14:30" {
		t.Fatalf("FormatDateTime = %q", got)
	}

	got, err = document.FormatDateTime("", "")
	if err != nil {
		t.Fatal(err)
	}
	if got != "-" {
		t.Fatalf("FormatDateTime of empty = %q, want -", got)
	}
}

func TestTruncateAndPad(t *testing.T) {
	if got := document.Truncate("Ünïcödé", 3); got != "Ünï" {
		t.Fatalf("Truncate = %q", got)
	}
	if got := document.Truncate("short", 45); got != "short" {
		t.Fatalf("Truncate = %q", got)
	}
	if got := document.PadTwo("7"); got != "07" {
		t.Fatalf("PadTwo = %q", got)
	}
	if got := document.PadTwo("12"); got != "12" {
		t.Fatalf("PadTwo = %q", got)
	}
	if got := document.PadTwo("é"); got != "0é" {
		t.Fatalf("PadTwo = %q", got)
	}
}
