// Package document lays out invoices and travel vouchers as single-page A4
// PDFs.
//
// Rendering is a flat sequence of drawing calls (bands, rectangles, a curved
// accent, text lines) at computed coordinates on a 595×842pt page with a 40pt
// content margin. The vertical cursor is advanced by fixed amounts derived from
// the payload, so the same payload always produces the same layout. Content
// that runs past the bottom of the page is not paginated.
package document

import (
	"io"
)

// Renderer draws documents. It holds only immutable options and is safe for
// concurrent use; every render call builds its own page.
type Renderer struct {
	compress bool
	creator  string
	author   string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithCompression toggles PDF stream compression. Uncompressed output keeps
// page content readable, which helps when debugging a layout.
func WithCompression(on bool) Option {
	return func(r *Renderer) {
		r.compress = on
	}
}

// WithCreator sets the PDF Creator metadata.
func WithCreator(name string) Option {
	return func(r *Renderer) {
		r.creator = name
	}
}

// WithAuthor sets the PDF Author metadata.
func WithAuthor(name string) Option {
	return func(r *Renderer) {
		r.author = name
	}
}

// NewRenderer builds a Renderer. Compression is on unless disabled.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{compress: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Probe renders an empty branded page and discards it. It is used by the
// health endpoint to prove the drawing pipeline works.
func (r *Renderer) Probe() error {
	l := r.newLayout("probe")
	l.headerBand("Probe", 80)
	l.footerBand()
	return l.finish(io.Discard)
}
