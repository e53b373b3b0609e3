package section

import (
	"fmt"

	"github.com/gompdf/pdfreport/internal/canvas"
	"github.com/gompdf/pdfreport/internal/layout"
	"github.com/gompdf/pdfreport/internal/pagination"
	"github.com/gompdf/pdfreport/internal/text"
)

// SummaryRenderer draws a labelled frequency table closed by a bold total row
type SummaryRenderer struct {
	Metrics layout.Metrics
	Locale  *text.Locale
	Debug   bool
}

// Render draws s at the cursor. An empty summary draws nothing, label
// included, and leaves the cursor untouched.
func (r *SummaryRenderer) Render(cur *pagination.Cursor, s layout.Summary) error {
	if s.Empty() {
		return nil
	}
	m := r.Metrics
	height := s.Measure(m)
	if err := fitOrBreak(cur, height); err != nil {
		return err
	}
	// summaries never split; one taller than a page body runs past the bottom margin
	if r.Debug && height > cur.Bottom()-cur.Top() {
		fmt.Printf("Summary %q needs %.2f pt but a page holds %.2f pt; drawing past the bottom margin\n",
			s.Label, height, cur.Bottom()-cur.Top())
	}

	x := cur.Geometry().Margin
	cols := layout.SummaryColumns(s, cur.Geometry().ContentWidth())
	offsets := cols.Offsets()
	p := newPen(cur.Canvas())

	p.text(x, cur.Y()+m.TextBaseline, canvas.BoldFont(m.LabelFontSize), s.Label)
	if p.err != nil {
		return p.err
	}
	cur.Advance(m.SummaryLabelHeight)

	p.grid(x, cur.Y(), m.RowHeight, offsets, true)
	for i, col := range cols {
		p.text(x+offsets[i]+m.CellPadding, cur.Y()+m.TextBaseline, cellFont(m, true), col.Label)
	}
	if p.err != nil {
		return p.err
	}
	cur.Advance(m.RowHeight)

	for _, row := range layout.SummaryRows(s, r.locale()) {
		p.grid(x, cur.Y(), m.RowHeight, offsets, false)
		for i, cell := range row.Cells {
			p.text(x+offsets[i]+m.CellPadding, cur.Y()+m.TextBaseline, cellFont(m, row.Emphasis), cell)
		}
		if p.err != nil {
			return p.err
		}
		cur.Advance(m.RowHeight)
	}

	if r.Debug {
		fmt.Printf("Summary %q: %d entries on page %d\n", s.Label, len(s.Entries), cur.Page())
	}
	return nil
}

func (r *SummaryRenderer) locale() *text.Locale {
	if r.Locale == nil {
		r.Locale = text.NewLocale("pl")
	}
	return r.Locale
}
