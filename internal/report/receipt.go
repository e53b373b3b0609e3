package report

import (
	"fmt"
	"strconv"

	"github.com/gompdf/pdfreport/internal/dataset"
	"github.com/gompdf/pdfreport/internal/layout"
	"github.com/gompdf/pdfreport/internal/text"
)

const receiptTitle = "Przyjęcie na magazyn"

// Receipt builds a warehouse goods-received document. Item values are printed
// with one decimal and the document total with two, in Polish notation.
func Receipt(ctx Context, page Page, r dataset.Receipt, loc *text.Locale) *Report {
	r = r.WithDefaults()
	if loc == nil {
		loc = text.NewLocale("pl")
	}
	number := r.Number
	if ctx.Number != "" {
		number = ctx.Number
	}
	date := r.Date.Format(dataset.DateLayout)

	rows := make([]layout.Row, len(r.Items))
	for i, it := range r.Items {
		rows[i] = layout.Row{Cells: []string{
			strconv.Itoa(i + 1), it.Index, it.Name, strconv.Itoa(it.Quantity), it.Unit, loc.Decimal(it.Value, 1),
		}}
	}

	issuer := append([]string{}, r.CompanyName...)
	issuer = append(issuer, "NIP "+r.NIP)

	return &Report{
		Type:    TypeReceipt,
		Title:   ctx.title(receiptTitle),
		Subject: fmt.Sprintf("%s %s", receiptTitle, number),
		Header: layout.Header{
			Issuer:      issuer,
			NumberLabel: "Nr. dokumentu:",
			Number:      number,
			Reference:   r.Reference,
			Code:        "PZ",
			Title:       ctx.title(receiptTitle),
			DateLabel:   "Data:",
			Date:        date,
			PartyLabel:  "Nazwisko/Nazwa:",
			Party:       r.Recipient,
			Barcode:     ctx.Barcode,
		},
		Table: layout.Table{
			Kind:    layout.KindReceipt,
			Columns: layout.ColumnsFor(layout.KindReceipt, page.width()),
			Rows:    rows,
			Footer: &layout.Footer{
				Label:       "Razem dokument",
				Value:       loc.Decimal(r.Total(), 2),
				LabelColumn: 3,
				ValueColumn: 5,
			},
			Continuation: layout.Continuation{
				Title:       receiptTitle,
				Subtitle:    layout.KindReceipt.ContinuationSubtitle(),
				NumberLabel: layout.KindReceipt.ContinuationNumberLabel(),
				Number:      number,
				Date:        date,
			},
		},
		Signature: layout.Signature{
			Name:    r.ReceivedBy,
			Caption: "Przyjął dnia " + date,
			Slots:   []string{"Przyjął", "podpis", "podpis*"},
		},
	}
}
