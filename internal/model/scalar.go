package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

var jsonNull = []byte("null")

// Text is a JSON scalar kept as text.
//
// Strings are kept verbatim, numbers and booleans are converted to their
// textual form (2 -> "2", true -> "true"), and null behaves like an absent field.
// Objects and arrays are rejected.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch v.(type) {
	case nil:
		*t = ""
		return nil
	case map[string]any, []any:
		return fmt.Errorf("expected a text value, got %s", data)
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return err
	}

	*t = Text(s)
	return nil
}

// String returns the raw text.
func (t Text) String() string {
	return string(t)
}

// IsEmpty reports whether the field was absent, null or an empty string.
func (t Text) IsEmpty() bool {
	return t == ""
}

// Or returns the text, or fallback when the text is empty.
func (t Text) Or(fallback string) string {
	if t.IsEmpty() {
		return fallback
	}
	return string(t)
}

// Lines splits the text on line breaks and drops empty lines.
// Lines are returned untrimmed.
func (t Text) Lines() []string {
	if t.IsEmpty() {
		return nil
	}

	var lines []string
	for _, line := range strings.Split(string(t), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// LineCount is the number of line-break separated segments, empty ones included.
func (t Text) LineCount() int {
	return strings.Count(string(t), "\n") + 1
}

// Flag is a JSON value read for its truthiness.
//
// false, null, 0 and "" are false. Everything else, including "false"
// as a string, is true.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch x := v.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(x)
	case string:
		*f = x != ""
	case float64:
		*f = x != 0
	default:
		*f = true
	}
	return nil
}

// Sequence is an optional JSON array of T.
//
// A present value that is not an array does not fail decoding. It is
// recorded instead, so the payload's Validate method can report the field by
// name. Null is treated the same as an absent field.
type Sequence[T any] struct {
	Items []T

	present   bool
	malformed bool
}

// NewSequence builds a present, well-formed sequence.
func NewSequence[T any](items ...T) Sequence[T] {
	return Sequence[T]{Items: items, present: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Sequence[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	if bytes.Equal(trimmed, jsonNull) {
		*s = Sequence[T]{}
		return nil
	}

	if len(trimmed) == 0 || trimmed[0] != '[' {
		*s = Sequence[T]{present: true, malformed: true}
		return nil
	}

	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return err
	}

	*s = Sequence[T]{Items: items, present: true}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Sequence[T]) MarshalJSON() ([]byte, error) {
	if !s.present {
		return jsonNull, nil
	}
	if s.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.Items)
}

// Present reports whether the field was supplied with a non-null value.
func (s Sequence[T]) Present() bool {
	return s.present
}

// IsArray reports whether the field was supplied as a JSON array.
func (s Sequence[T]) IsArray() bool {
	return s.present && !s.malformed
}

// Len returns the number of decoded items.
func (s Sequence[T]) Len() int {
	return len(s.Items)
}
