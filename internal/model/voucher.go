package model

import (
	"github.com/deppfellow/docgen/internal/errs"
	"github.com/deppfellow/docgen/internal/validation"
)

// VoucherInfo describes the traveller and the booked hotel.
//
// Field order is the order missing fields are reported in.
type VoucherInfo struct {
	Name              Text `json:"name" validate:"required,notblank"`
	VoucherNo         Text `json:"voucherNo" validate:"required,notblank"`
	DateOfIssue       Text `json:"dateOfIssue" validate:"required,notblank"`
	Destination       Text `json:"destination" validate:"required,notblank"`
	DateOfTravel      Text `json:"dateOfTravel" validate:"required,notblank"`
	Hotel             Text `json:"hotel" validate:"required,notblank"`
	HotelConfirmation Text `json:"hotelConfirmation" validate:"required,notblank"`
	HotelAddress      Text `json:"hotelAddress" validate:"required,notblank"`
	Rooms             Text `json:"rooms" validate:"required,notblank"`
	NamesList         Text `json:"namesList" validate:"required,notblank"`
}

// Passengers returns the non-empty lines of the names list.
func (vi *VoucherInfo) Passengers() []string {
	return vi.NamesList.Lines()
}

// Flight is one flight leg.
type Flight struct {
	FlightNo Text `json:"flightNo"`
	DepDate  Text `json:"depDate"`
	DepTime  Text `json:"depTime"`
	ArrDate  Text `json:"arrDate"`
	ArrTime  Text `json:"arrTime"`
}

// Itinerary is one stop of the trip.
type Itinerary struct {
	City        Text `json:"city"`
	Hotel       Text `json:"hotel"`
	Breakfast   Flag `json:"breakfast"`
	Lunch       Flag `json:"lunch"`
	Dinner      Flag `json:"dinner"`
	Description Text `json:"description"`
}

// Meals renders the meal plan as "B L D", with "-" for each meal not included.
func (it Itinerary) Meals() string {
	mark := func(included Flag, letter string) string {
		if included {
			return letter
		}
		return "-"
	}
	return mark(it.Breakfast, "B") + " " + mark(it.Lunch, "L") + " " + mark(it.Dinner, "D")
}

// ScopeOfWork holds the free-text terms of a voucher.
type ScopeOfWork struct {
	Description         Text `json:"description"`
	Inclusions          Text `json:"inclusions"`
	Exclusions          Text `json:"exclusions"`
	ArrivalInstructions Text `json:"arrivalInstructions"`
	Remarks             Text `json:"remarks"`
}

// Section is a labeled free-text block.
type Section struct {
	Label string
	Body  Text
}

// Sections returns the non-empty blocks in display order.
func (s *ScopeOfWork) Sections() []Section {
	if s == nil {
		return nil
	}

	all := []Section{
		{Label: "Description:", Body: s.Description},
		{Label: "Inclusions:", Body: s.Inclusions},
		{Label: "Exclusions:", Body: s.Exclusions},
		{Label: "Arrival Instructions:", Body: s.ArrivalInstructions},
		{Label: "Remarks:", Body: s.Remarks},
	}

	sections := make([]Section, 0, len(all))
	for _, section := range all {
		if !section.Body.IsEmpty() {
			sections = append(sections, section)
		}
	}
	return sections
}

// Voucher is the POST /api/voucher payload.
type Voucher struct {
	VoucherInfo *VoucherInfo        `json:"voucherInfo"`
	Flights     Sequence[Flight]    `json:"flights"`
	Itineraries Sequence[Itinerary] `json:"itineraries"`
	ScopeOfWork *ScopeOfWork        `json:"scopeOfWork"`
}

// Validate checks the structural preconditions of a voucher payload.
//
// Every missing voucherInfo field is reported at once.
func (v *Voucher) Validate() error {
	if v.VoucherInfo == nil {
		return errs.NewBadRequestError("Invalid payload: voucherInfo required", nil, nil)
	}

	if err := validation.Struct(v.VoucherInfo); err != nil {
		return validation.MissingFieldsError("Missing voucherInfo fields", err)
	}

	if v.Flights.Present() && !v.Flights.IsArray() {
		return errs.NewBadRequestError("Invalid payload: flights must be an array", nil, nil)
	}

	if v.Itineraries.Present() && !v.Itineraries.IsArray() {
		return errs.NewBadRequestError("Invalid payload: itineraries must be an array", nil, nil)
	}

	return nil
}
