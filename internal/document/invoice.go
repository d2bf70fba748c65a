package document

import (
	"io"
	"strconv"
	"strings"

	"github.com/deppfellow/docgen/internal/model"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Invoice table geometry.
const (
	rowHeight = 24.0

	colNoWidth    = 35.0
	colDescWidth  = 220.0
	colPriceWidth = 70.0
	colQtyWidth   = 60.0
	colTotalWidth = 100.0

	colNo    = margin
	colDesc  = colNo + colNoWidth
	colPrice = colDesc + colDescWidth
	colQty   = colPrice + colPriceWidth
	colTotal = colQty + colQtyWidth

	cellPad = 5.0

	maxBankLines = 4
)

// RenderInvoice draws inv and writes the finished PDF to w.
//
// inv must have passed Validate.
func (r *Renderer) RenderInvoice(w io.Writer, inv *model.Invoice) error {
	client := inv.ClientInfo
	if client == nil {
		client = &model.ClientInfo{}
	}

	issued, err := FormatDate(client.DateOfIssue)
	if err != nil {
		return errors.Wrap(err, "dateOfIssue")
	}
	deadline, err := FormatDate(client.DeadlineOfPayment)
	if err != nil {
		return errors.Wrap(err, "deadlineOfPayment")
	}

	currency := inv.Currency()

	l := r.newLayout("Invoice " + client.VoucherNo.Or(""))

	l.headerBand("Invoice", 80)
	l.y = headerHeight

	l.accent()
	l.y += 55

	// Meta block, right aligned.
	const metaWidth = 200.0
	metaX := pageWidth - margin - metaWidth

	l.font(regular, 10, greyDark)
	l.text(metaX, l.y, metaWidth, alignRight, "Invoice No: #"+client.VoucherNo.Or("-"))
	l.text(metaX, l.y+14, metaWidth, alignRight, "Date: "+issued)
	l.text(metaX, l.y+28, metaWidth, alignRight, "Account No: "+client.TINNumber.Or("-"))
	l.text(metaX, l.y+42, metaWidth, alignRight, "Deadline: "+deadline)
	l.y += 80

	l.clientBlock(client, inv.BankLines())
	l.y += 80

	subtotal := l.itemsTable(inv.Items.Items, currency)
	l.y += 20

	l.summary(CurrencySymbol(currency) + FormatNumber(subtotal))
	l.footerBand()

	return l.finish(w)
}

// accent draws the curved shape hanging under the header band.
func (l *layout) accent() {
	y := l.y
	l.pdf.SetFillColor(tealLight.r, tealLight.g, tealLight.b)
	l.pdf.MoveTo(0, y)
	l.pdf.LineTo(0, y+70)
	l.pdf.CurveTo(150, y+85, 320, y+45)
	l.pdf.LineTo(pageWidth, y)
	l.pdf.ClosePath()
	l.pdf.DrawPath("F")
}

// clientBlock draws "INVOICE TO:" on the left and, when bank details are
// given, up to four payment lines on the right.
func (l *layout) clientBlock(client *model.ClientInfo, bankLines []string) {
	l.font(bold, 10, greyDark)
	l.text(margin, l.y, 0, alignLeft, "INVOICE TO:")

	l.font(regular, 9, greyDark)
	l.text(margin, l.y+18, 0, alignLeft, "Name: "+client.Name.Or("-"))
	l.text(margin, l.y+32, 0, alignLeft, "Customer Attention: "+client.CustomerAttention.Or("-"))

	if len(bankLines) == 0 {
		return
	}

	const bankWidth = 180.0
	bankX := pageWidth - margin - bankWidth

	l.font(bold, 9, greyDark)
	l.text(bankX, l.y, bankWidth, alignRight, "Payment Info:")

	l.font(regular, 9, greyDark)
	for i, line := range bankLines {
		if i == maxBankLines {
			break
		}
		l.text(bankX, l.y+18+float64(i)*14, bankWidth, alignRight, strings.TrimSpace(line))
	}
}

// itemsTable draws the header row and one shaded row per item, and returns
// the running sum of line amounts.
func (l *layout) itemsTable(items []model.LineItem, currency string) decimal.Decimal {
	l.fillRect(margin, l.y, contentWidth, rowHeight, teal)

	l.font(bold, 9, white)
	l.text(colNo+cellPad, l.y+8, colNoWidth, alignLeft, "NO.")
	l.text(colDesc+cellPad, l.y+8, colDescWidth, alignLeft, "PRODUCT DESCRIPTION")
	l.text(colPrice+cellPad, l.y+8, colPriceWidth, alignLeft, "PRICE")
	l.text(colQty+cellPad, l.y+8, colQtyWidth, alignLeft, "QUANTITY")
	l.text(colTotal+cellPad, l.y+8, colTotalWidth, alignRight, "TOTAL")
	l.y += rowHeight

	subtotal := decimal.Zero

	for i, item := range items {
		amount := item.Amount()
		subtotal = subtotal.Add(amount)

		symbol := CurrencySymbol(item.Currency.Or(currency))

		background := white
		if i%2 == 1 {
			background = greyLight
		}
		l.fillRect(margin, l.y, contentWidth, rowHeight, background)
		l.strokeRect(margin, l.y, contentWidth, rowHeight, rowBorder)

		l.font(regular, 9, greyDark)
		l.text(colNo+cellPad, l.y+6, colNoWidth, alignLeft, PadTwo(strconv.Itoa(i+1)))
		l.text(colDesc+cellPad, l.y+6, colDescWidth, alignLeft, Truncate(item.Label(), MaxDescriptionLen))
		l.text(colPrice+cellPad, l.y+6, colPriceWidth, alignLeft, symbol+FormatNumber(item.Price))
		l.text(colQty+cellPad, l.y+6, colQtyWidth, alignLeft, PadTwo(item.Quantity.String()))
		l.text(colTotal+cellPad, l.y+6, colTotalWidth, alignRight, symbol+FormatNumber(amount))

		l.y += rowHeight
	}

	return subtotal
}

// summary draws the "Total:" label and the highlighted grand total box.
func (l *layout) summary(total string) {
	l.font(bold, 10, greyDark)
	l.text(colTotal-60, l.y, 60, alignLeft, "Total:")

	l.fillRect(colTotal, l.y-4, colTotalWidth+10, 30, teal)

	l.font(bold, 12, white)
	l.text(colTotal+cellPad, l.y, colTotalWidth, alignRight, total)
}
