package document

import (
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
)

// Page geometry, in points.
const (
	pageWidth    = 595.0
	pageHeight   = 842.0
	margin       = 40.0
	contentWidth = pageWidth - margin*2

	headerHeight = 50.0
	footerHeight = 15.0

	fontFamily = "Helvetica"
	regular    = ""
	bold       = "B"

	alignLeft  = "L"
	alignRight = "R"

	// lineHeightFactor approximates Helvetica's ascender+descender box.
	lineHeightFactor = 1.15
)

// layout is the render context threaded through every drawing step of one
// document: the page, a UTF-8 to cp1252 translator for the core fonts, and
// the running vertical cursor. It never outlives a single render call.
type layout struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
	y   float64
}

func (r *Renderer) newLayout(title string) *layout {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})

	pdf.SetMargins(0, 0, 0)
	pdf.SetCellMargin(0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(r.compress)
	pdf.SetTitle(title, true)
	if r.creator != "" {
		pdf.SetCreator(r.creator, true)
	}
	if r.author != "" {
		pdf.SetAuthor(r.author, true)
	}

	pdf.AddPage()

	return &layout{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (l *layout) fillRect(x, y, w, h float64, c color) {
	l.pdf.SetFillColor(c.r, c.g, c.b)
	l.pdf.Rect(x, y, w, h, "F")
}

func (l *layout) strokeRect(x, y, w, h float64, c color) {
	l.pdf.SetDrawColor(c.r, c.g, c.b)
	l.pdf.Rect(x, y, w, h, "D")
}

func (l *layout) line(x1, y1, x2, y2 float64, c color) {
	l.pdf.SetDrawColor(c.r, c.g, c.b)
	l.pdf.Line(x1, y1, x2, y2)
}

func (l *layout) font(style string, size float64, c color) {
	l.pdf.SetFont(fontFamily, style, size)
	l.pdf.SetTextColor(c.r, c.g, c.b)
}

func (l *layout) lineHeight() float64 {
	_, size := l.pdf.GetFontSize()
	return size * lineHeightFactor
}

// text draws a single line with its top edge at y.
// A zero width extends the line to the page edge.
func (l *layout) text(x, y, w float64, align, s string) {
	l.pdf.SetXY(x, y)
	l.pdf.CellFormat(w, l.lineHeight(), l.tr(s), "", 0, align, false, 0, "")
}

// block draws left-aligned text wrapped to width w with its top edge at y.
func (l *layout) block(x, y, w float64, s string) {
	l.pdf.SetXY(x, y)
	l.pdf.MultiCell(w, l.lineHeight(), l.tr(s), "", alignLeft, false)
}

// headerBand draws the full-width title band at the top of the page.
func (l *layout) headerBand(title string, titleWidth float64) {
	l.fillRect(0, 0, pageWidth, headerHeight, teal)
	l.font(bold, 16, white)
	l.text(pageWidth-margin-titleWidth, 15, titleWidth, alignRight, title)
}

// footerBand draws the full-width band at the bottom of the page.
func (l *layout) footerBand() {
	l.fillRect(0, pageHeight-footerHeight, pageWidth, footerHeight, teal)
}

// finish serializes the document into w.
func (l *layout) finish(w io.Writer) error {
	if err := l.pdf.Output(w); err != nil {
		return errors.Wrap(err, "write pdf")
	}
	return nil
}
