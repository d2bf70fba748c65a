package model

import (
	"github.com/deppfellow/docgen/internal/errs"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when the first line item names no currency.
const DefaultCurrency = "USD"

// ClientInfo describes who an invoice is addressed to.
type ClientInfo struct {
	VoucherNo         Text `json:"voucherNo"`
	DateOfIssue       Text `json:"dateOfIssue"`
	TINNumber         Text `json:"tinNumber"`
	DeadlineOfPayment Text `json:"deadlineOfPayment"`
	Name              Text `json:"name"`
	CustomerAttention Text `json:"customerAttention"`
}

// LineItem is one billable row of an invoice.
//
// The form posts the row label as "item"; "description" is accepted too.
// Quantity and price accept JSON numbers or numeric strings.
type LineItem struct {
	Item        Text            `json:"item"`
	Description Text            `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Currency    Text            `json:"currency"`
}

// Label is the row text shown in the description column.
func (li LineItem) Label() string {
	if !li.Item.IsEmpty() {
		return li.Item.String()
	}
	return li.Description.Or("-")
}

// Amount is quantity × price.
func (li LineItem) Amount() decimal.Decimal {
	return li.Quantity.Mul(li.Price)
}

// Invoice is the POST /api/billing payload.
type Invoice struct {
	ClientInfo  *ClientInfo        `json:"clientInfo"`
	Items       Sequence[LineItem] `json:"items"`
	BankDetails Text               `json:"bankDetails"`
}

// Validate checks the structural preconditions of an invoice payload.
func (inv *Invoice) Validate() error {
	if inv.ClientInfo == nil {
		return errs.NewBadRequestError("Invalid payload: clientInfo required", nil, nil)
	}

	if !inv.Items.IsArray() {
		return errs.NewBadRequestError("Invalid payload: items array required", nil, nil)
	}

	return nil
}

// Currency is the document-level currency: the first item's, else USD.
func (inv *Invoice) Currency() string {
	if inv.Items.Len() == 0 {
		return DefaultCurrency
	}
	return inv.Items.Items[0].Currency.Or(DefaultCurrency)
}

// Total sums quantity × price over every item, in input order.
func (inv *Invoice) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range inv.Items.Items {
		total = total.Add(item.Amount())
	}
	return total
}

// BankLines returns the non-empty lines of the free-text bank details.
func (inv *Invoice) BankLines() []string {
	return inv.BankDetails.Lines()
}
