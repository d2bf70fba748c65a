package document

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/deppfellow/docgen/internal/model"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// MaxDescriptionLen is the number of characters of a line item label that fit
// in the description column. Longer labels are cut, never wrapped.
const MaxDescriptionLen = 45

// numberPrinter formats amounts with "," thousands separators and "." decimals.
var numberPrinter = message.NewPrinter(language.English)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "EUR ",
	"GBP": "GBP ",
	"NGN": "NGN ",
	"PHP": "PHP ",
}

// FormatNumber renders an amount with exactly two decimals and thousands
// separators, e.g. 1234.5 -> "1,234.50". Rounding to two decimals is the only
// loss of precision.
func FormatNumber(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	sign := ""
	if rest, ok := strings.CutPrefix(fixed, "-"); ok {
		sign, fixed = "-", rest
	}

	whole, frac, _ := strings.Cut(fixed, ".")

	return sign + groupThousands(whole) + "." + frac
}

// groupThousands inserts "," separators into a string of digits.
func groupThousands(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return numberPrinter.Sprint(number.Decimal(n))
	}

	// Past int64 range.
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CurrencySymbol returns the display prefix for a currency code.
//
// Known codes map through a fixed table, unknown codes are used verbatim
// followed by a space, and an empty code has no prefix.
func CurrencySymbol(code string) string {
	if symbol, ok := currencySymbols[code]; ok {
		return symbol
	}
	if code == "" {
		return ""
	}
	return code + " "
}

// FormatDate renders a date as D/M/YYYY. An empty value renders as "-".
func FormatDate(value model.Text) (string, error) {
	if value.IsEmpty() {
		return "-", nil
	}

	t, err := parseDate(strings.TrimSpace(value.String()))
	if err != nil {
		return "", errors.Wrapf(err, "invalid date %q", value)
	}

	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year()), nil
}

// Month-first and month-name layouts tried when the ISO-style formats fail.
var fallbackDateLayouts = []string{
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"January 2 2006",
}

func parseDate(s string) (time.Time, error) {
	t, err := cast.ToTimeE(s)
	if err == nil {
		return t, nil
	}

	for _, layout := range fallbackDateLayouts {
		if t, perr := time.Parse(layout, s); perr == nil {
			return t, nil
		}
	}

	return time.Time{}, err
}

// FormatDateTime renders a date followed by an optional time of day.
func FormatDateTime(date, clock model.Text) (string, error) {
	formatted, err := FormatDate(date)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(formatted + " " + clock.String()), nil
}

// Truncate cuts s to at most n characters.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// PadTwo left-pads s with zeros to two characters.
func PadTwo(s string) string {
	n := utf8.RuneCountInString(s)
	if n >= 2 {
		return s
	}
	return strings.Repeat("0", 2-n) + s
}
