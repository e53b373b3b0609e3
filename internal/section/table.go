package section

import (
	"fmt"

	"github.com/gompdf/pdfreport/internal/canvas"
	"github.com/gompdf/pdfreport/internal/layout"
	"github.com/gompdf/pdfreport/internal/pagination"
	"github.com/gompdf/pdfreport/internal/text"
)

type tableState int

const (
	drawingHeader tableState = iota
	drawingRows
	pageFull
	drawingContinuation
	done
)

func (s tableState) String() string {
	return [...]string{"DrawingHeader", "DrawingRows", "PageFull", "DrawingContinuationHeader", "Done"}[s]
}

// TableRenderer draws a data table, splitting it across pages. Each page the
// table continues onto starts with a continuation header followed by the
// repeated column header row, so body rows are never shown without labels.
type TableRenderer struct {
	Metrics layout.Metrics
	// Debug enables verbose logging to stdout
	Debug bool
}

// Render draws t at the cursor and leaves the cursor below the last row
func (r *TableRenderer) Render(cur *pagination.Cursor, t layout.Table) error {
	m := r.Metrics
	x := cur.Geometry().Margin
	p := newPen(cur.Canvas())

	rows := len(t.Rows)
	footerPending := t.Footer != nil

	// the column header row never ends a page on its own
	state := drawingHeader
	opening := m.HeaderRowHeight
	if rows > 0 || footerPending {
		opening += m.RowHeight
	}
	if !cur.AtTop() && cur.NeedsNewPage(opening) {
		state = pageFull
	}

	next, onPage := 0, 0
	for state != done {
		switch state {
		case drawingHeader:
			r.drawHeaderRow(p, x, cur.Y(), t.Columns)
			if p.err != nil {
				return p.err
			}
			cur.Advance(m.HeaderRowHeight)
			onPage = 0
			state = drawingRows

		case drawingRows:
			if next == rows && !footerPending {
				state = done
				continue
			}
			if onPage > 0 && cur.NeedsNewPage(m.RowHeight) {
				state = pageFull
				continue
			}
			if next < rows {
				r.drawRow(p, x, cur.Y(), t.Columns, next, t.Rows[next])
				next++
			} else {
				r.drawFooter(p, x, cur.Y(), t.Columns, *t.Footer)
				footerPending = false
			}
			if p.err != nil {
				return p.err
			}
			cur.Advance(m.RowHeight)
			onPage++

		case pageFull:
			page, err := cur.BreakPage()
			if err != nil {
				return err
			}
			if r.Debug {
				fmt.Printf("Table %s continues on page %d at row %d of %d\n", t.Kind, page, next+1, rows)
			}
			state = drawingContinuation

		case drawingContinuation:
			r.drawContinuation(p, x, cur.Y(), cur.Geometry().ContentWidth(), cur.Page(), t.Continuation)
			if p.err != nil {
				return p.err
			}
			cur.Advance(m.ContinuationBlockHeight())
			state = drawingHeader
		}
	}
	return nil
}

func (r *TableRenderer) drawHeaderRow(p *pen, x, y float64, cols layout.ColumnSpec) {
	m := r.Metrics
	p.grid(x, y, m.HeaderRowHeight, cols.Offsets(), true)
	offsets := cols.Offsets()
	for i, col := range cols {
		p.text(x+offsets[i]+m.CellPadding, y+m.TextBaseline, cellFont(m, true), col.Label)
	}
}

func (r *TableRenderer) drawRow(p *pen, x, y float64, cols layout.ColumnSpec, index int, row layout.Row) {
	m := r.Metrics
	offsets := cols.Offsets()
	p.grid(x, y, m.RowHeight, offsets, false)
	for i, col := range cols {
		if i >= len(row.Cells) {
			break
		}
		bold := row.Emphasis && col.Emphasizable
		p.text(x+offsets[i]+m.CellPadding, y+m.TextBaseline, cellFont(m, bold), text.Truncate(row.Cells[i], col.Budget))
	}
	if r.Debug && p.err == nil {
		fmt.Printf("Row %d drawn at y=%.2f\n", index+1, y)
	}
}

func (r *TableRenderer) drawFooter(p *pen, x, y float64, cols layout.ColumnSpec, f layout.Footer) {
	m := r.Metrics
	offsets := cols.Offsets()
	if f.LabelColumn < 0 || f.ValueColumn >= len(cols) || f.LabelColumn > f.ValueColumn {
		p.err = fmt.Errorf("footer columns %d..%d outside a %d column table", f.LabelColumn, f.ValueColumn, len(cols))
		return
	}
	left := x + offsets[f.LabelColumn]
	right := x + offsets[len(offsets)-1]
	p.line(left, y, right, y)
	p.line(left, y+m.RowHeight, right, y+m.RowHeight)
	p.line(left, y, left, y+m.RowHeight)
	p.line(x+offsets[f.ValueColumn], y, x+offsets[f.ValueColumn], y+m.RowHeight)
	p.line(right, y, right, y+m.RowHeight)
	p.text(left+m.CellPadding, y+m.TextBaseline, cellFont(m, true), f.Label)
	p.text(x+offsets[f.ValueColumn]+m.CellPadding, y+m.TextBaseline, cellFont(m, true), f.Value)
}

func (r *TableRenderer) drawContinuation(p *pen, x, y, width float64, page int, c layout.Continuation) {
	p.frame(x, y, width, r.Metrics.ContinuationHeight)
	p.text(x+10, y+20, canvas.BoldFont(10), c.Title)
	p.text(x+10, y+35, canvas.RegularFont(9), c.SubtitleFor(page))
	p.text(x+width-150, y+20, canvas.RegularFont(8), c.NumberLabel+c.Number)
	p.text(x+width-150, y+35, canvas.RegularFont(8), "Data: "+c.Date)
}

// Plan predicts how the rows of t will be spread over pages when drawing
// starts at the cursor position
func (r *TableRenderer) Plan(cur *pagination.Cursor, t layout.Table) []int {
	m := r.Metrics
	items := len(t.Rows)
	if t.Footer != nil {
		items++
	}
	if items == 0 {
		if !cur.AtTop() && cur.NeedsNewPage(m.HeaderRowHeight) {
			return []int{0, 0}
		}
		return []int{0}
	}
	pageSpace := cur.Bottom() - cur.Top()
	first := max(1, pagination.RowsThatFit(cur.Remaining()-m.HeaderRowHeight, m.RowHeight))
	if !cur.AtTop() && cur.NeedsNewPage(m.HeaderRowHeight+m.RowHeight) {
		first = 0
	}
	per := pagination.RowsThatFit(pageSpace-m.BreakOverhead(), m.RowHeight)
	return pagination.PlanTable(items, first, per)
}
