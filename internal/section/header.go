package section

import (
	"fmt"

	"github.com/gompdf/pdfreport/internal/canvas"
	"github.com/gompdf/pdfreport/internal/layout"
	"github.com/gompdf/pdfreport/internal/pagination"
	"github.com/gompdf/pdfreport/internal/text"
)

// Header block layout: the issuer on the left half, four rows of document
// data on the right half
const (
	headerRow       = 30.0
	headerValueX    = 80.0
	headerRefX      = 160.0
	headerCodeWidth = 80.0
	issuerLeading   = 12.0
	issuerBudget    = 48
	titleBudget     = 32
)

// HeaderRenderer draws the full document header block
type HeaderRenderer struct {
	Metrics layout.Metrics
	Debug   bool
}

// Render draws h at the cursor
func (r *HeaderRenderer) Render(cur *pagination.Cursor, h layout.Header) error {
	m := r.Metrics
	height := h.Measure(m)
	if err := fitOrBreak(cur, height); err != nil {
		return err
	}

	g := cur.Geometry()
	x, y, w := g.Margin, cur.Y(), g.ContentWidth()
	left := w / 2
	rx := x + left
	p := newPen(cur.Canvas())

	p.frame(x, y, w, height)
	p.line(rx, y, rx, y+height)

	// issuer
	ty := y + 15
	for i, line := range h.Issuer {
		font := canvas.RegularFont(9)
		if i == 0 {
			font = canvas.BoldFont(9)
		}
		p.text(x+5, ty, font, text.Truncate(line, issuerBudget))
		ty += issuerLeading
	}
	if top := max(ty, y+height-50); h.Barcode && y+height-10-top > 10 {
		if drawBarcode(p, h.Number, x+5, top, left-10, y+height-10-top) && r.Debug {
			fmt.Printf("Barcode drawn for %s\n", h.Number)
		}
	}

	// number row
	p.text(rx+5, y+15, canvas.RegularFont(8), h.NumberLabel)
	p.text(rx+headerValueX+5, y+15, canvas.RegularFont(9), h.Number)
	if h.Reference != "" {
		p.line(rx+headerValueX, y, rx+headerValueX, y+headerRow)
		p.line(rx+headerRefX, y, rx+headerRefX, y+headerRow)
		p.text(rx+headerRefX+5, y+15, canvas.RegularFont(9), h.Reference)
	}
	p.line(rx, y+headerRow, x+w, y+headerRow)

	// title row
	row := y + headerRow
	if h.Code != "" {
		p.line(rx+headerCodeWidth, row, rx+headerCodeWidth, row+headerRow)
		p.text(rx+headerCodeWidth/2-10, row+20, canvas.BoldFont(14), h.Code)
		p.text(rx+headerCodeWidth+10, row+20, canvas.RegularFont(10), text.Truncate(h.Title, titleBudget))
	} else {
		p.text(rx+10, row+20, canvas.BoldFont(14), text.Truncate(h.Title, titleBudget))
	}
	p.line(rx, row+headerRow, x+w, row+headerRow)

	// date row
	row += headerRow
	p.text(rx+5, row+20, canvas.RegularFont(8), h.DateLabel)
	p.text(rx+headerValueX+5, row+20, canvas.RegularFont(9), h.Date)
	p.line(rx, row+headerRow, x+w, row+headerRow)

	// party row
	row += headerRow
	p.text(rx+5, row+20, canvas.RegularFont(8), h.PartyLabel)
	p.text(rx+headerValueX+5, row+20, canvas.BoldFont(9), h.Party)

	if p.err != nil {
		return p.err
	}
	cur.Advance(height)
	return nil
}
