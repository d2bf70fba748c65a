package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/deppfellow/docgen/internal/model"
	"github.com/pkg/errors"
)

// MaxPassengers is the number of names listed under "Passengers:".
const MaxPassengers = 8

// RenderVoucher draws v and writes the finished PDF to w.
//
// v must have passed Validate.
func (r *Renderer) RenderVoucher(w io.Writer, v *model.Voucher) error {
	info := v.VoucherInfo
	if info == nil {
		info = &model.VoucherInfo{}
	}

	issued, err := FormatDate(info.DateOfIssue)
	if err != nil {
		return errors.Wrap(err, "dateOfIssue")
	}
	travel, err := FormatDate(info.DateOfTravel)
	if err != nil {
		return errors.Wrap(err, "dateOfTravel")
	}
	flights, err := flightLines(v.Flights.Items)
	if err != nil {
		return err
	}

	l := r.newLayout("Voucher " + info.VoucherNo.Or(""))

	l.headerBand("Voucher", 100)

	// Meta block, right aligned.
	const metaWidth = 220.0
	metaX := pageWidth - margin - metaWidth

	l.font(regular, 10, greyDark)
	l.text(metaX, 70, metaWidth, alignRight, "Voucher No: "+info.VoucherNo.Or("-"))
	l.text(metaX, 86, metaWidth, alignRight, "Issued: "+issued)
	l.text(metaX, 102, metaWidth, alignRight, "Travel Date: "+travel)
	l.text(metaX, 118, metaWidth, alignRight, "Destination: "+info.Destination.Or("-"))

	// Voucher-to block, left aligned.
	l.font(bold, 10, greyDark)
	l.text(margin, 70, 0, alignLeft, "VOUCHER TO:")
	l.font(regular, 9, greyDark)
	l.text(margin, 88, 0, alignLeft, "Name: "+info.Name.Or("-"))
	l.text(margin, 104, 0, alignLeft, "Hotel: "+info.Hotel.Or("-"))
	l.text(margin, 120, 0, alignLeft, "Hotel CN: "+info.HotelConfirmation.Or("-"))
	l.text(margin, 136, 0, alignLeft, "Rooms: "+info.Rooms.Or("-"))

	l.passengers(info.Passengers())

	// Flights.
	l.y += 6
	l.line(margin, l.y, pageWidth-margin, l.y, greyLight)
	l.y += 10
	l.font(bold, 10, greyDark)
	l.text(margin, l.y, 0, alignLeft, "Flights:")
	l.y += 16
	l.font(regular, 9, greyDark)
	for _, flight := range flights {
		l.block(margin, l.y, contentWidth, flight)
		l.y += 14
	}

	l.itineraries(v.Itineraries.Items)
	l.scopeOfWork(v.ScopeOfWork.Sections())
	l.footerBand()

	return l.finish(w)
}

// passengers lists up to MaxPassengers names and moves the cursor below them.
func (l *layout) passengers(names []string) {
	if len(names) == 0 {
		l.y = 170
		return
	}

	l.font(bold, 9, greyDark)
	l.text(margin, 154, 0, alignLeft, "Passengers:")

	l.font(regular, 9, greyDark)
	shown := min(len(names), MaxPassengers)
	for i, name := range names[:shown] {
		l.text(margin, 170+float64(i)*12, 0, alignLeft, strings.TrimSpace(name))
	}

	l.y = 170 + float64(shown)*12 + 10
}

// itineraries draws one block per stop: a summary line and an optional
// indented description.
func (l *layout) itineraries(stops []model.Itinerary) {
	l.y += 8
	l.font(bold, 10, greyDark)
	l.text(margin, l.y, 0, alignLeft, "Itineraries:")
	l.y += 14

	l.font(regular, 9, greyDark)
	for i, stop := range stops {
		summary := fmt.Sprintf("%d. %s — %s — Meals: %s", i+1, stop.City.Or("-"), stop.Hotel.Or("-"), stop.Meals())
		l.block(margin, l.y, contentWidth, summary)
		l.y += 12

		if !stop.Description.IsEmpty() {
			l.block(margin+10, l.y, contentWidth-10, stop.Description.String())
			l.y += textAdvance(stop.Description)
		}
		l.y += 6
	}
}

// scopeOfWork draws the labeled free-text blocks.
func (l *layout) scopeOfWork(sections []model.Section) {
	l.y += 6
	l.font(bold, 10, greyDark)
	l.text(margin, l.y, 0, alignLeft, "Scope of Work:")
	l.y += 14

	l.font(regular, 9, greyDark)
	for _, section := range sections {
		l.text(margin, l.y, 0, alignLeft, section.Label)
		l.y += 12
		l.block(margin+8, l.y, contentWidth-8, section.Body.String())
		l.y += textAdvance(section.Body)
	}
}

// textAdvance is how far the cursor moves past a free-text block. It depends
// only on the number of line breaks, not on wrapping.
func textAdvance(t model.Text) float64 {
	return 12 + float64(t.LineCount())*6
}

// flightLines formats one line per flight: number, departure and arrival.
func flightLines(flights []model.Flight) ([]string, error) {
	lines := make([]string, 0, len(flights))

	for i, f := range flights {
		dep, err := FormatDateTime(f.DepDate, f.DepTime)
		if err != nil {
			return nil, errors.Wrapf(err, "flights[%d].depDate", i)
		}
		arr, err := FormatDateTime(f.ArrDate, f.ArrTime)
		if err != nil {
			return nil, errors.Wrapf(err, "flights[%d].arrDate", i)
		}

		lines = append(lines, fmt.Sprintf("%d. %s — Dep: %s — Arr: %s", i+1, f.FlightNo.Or("-"), dep, arr))
	}

	return lines, nil
}
