// Package model holds the request payloads accepted by the document endpoints.
//
// Payloads come from hand-filled HTML forms, so most fields are loosely typed:
// a field may arrive as a string, a number, a boolean or null. The scalar types
// in this package (Text, Flag, Sequence) absorb that looseness at decode time so
// the validation and rendering layers only ever see plain Go values.
package model
