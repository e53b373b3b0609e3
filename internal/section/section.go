// Package section draws the self-contained blocks of a report.
//
// Every renderer draws one content model at the cursor position and advances
// the cursor by exactly the height it consumed. Blocks that cannot split check
// the remaining space first and move to a fresh page when they do not fit.
// Renderers never call one another.
package section

import (
	"github.com/gompdf/pdfreport/internal/canvas"
	"github.com/gompdf/pdfreport/internal/layout"
	"github.com/gompdf/pdfreport/internal/pagination"
)

// pen draws on a canvas and keeps the first error, so a block can issue its
// primitives without checking each call
type pen struct {
	c   canvas.Canvas
	err error
}

func newPen(c canvas.Canvas) *pen { return &pen{c: c} }

func (p *pen) line(x1, y1, x2, y2 float64) {
	if p.err == nil {
		p.err = p.c.DrawLine(x1, y1, x2, y2)
	}
}

func (p *pen) dotted(x1, y1, x2, y2 float64) {
	if p.err == nil {
		p.err = p.c.DrawDottedLine(x1, y1, x2, y2)
	}
}

func (p *pen) text(x, y float64, font canvas.Font, s string) {
	if p.err == nil && s != "" {
		p.err = p.c.DrawText(x, y, font, s)
	}
}

func (p *pen) rect(x, y, w, h float64) {
	if p.err == nil {
		p.err = p.c.FillRect(x, y, w, h)
	}
}

// frame draws the four edges of a box
func (p *pen) frame(x, y, w, h float64) {
	p.line(x, y, x+w, y)
	p.line(x, y+h, x+w, y+h)
	p.line(x, y, x, y+h)
	p.line(x+w, y, x+w, y+h)
}

// grid draws the bottom edge and column separators of a row at y.
// The top edge is drawn only when top is set.
func (p *pen) grid(x, y, h float64, offsets []float64, top bool) {
	right := x + offsets[len(offsets)-1]
	if top {
		p.line(x, y, right, y)
	}
	p.line(x, y+h, right, y+h)
	for _, off := range offsets {
		p.line(x+off, y, x+off, y+h)
	}
}

// fitOrBreak moves to a new page when a block of the given height does not
// fit, unless the current page is still empty
func fitOrBreak(cur *pagination.Cursor, height float64) error {
	if cur.AtTop() || !cur.NeedsNewPage(height) {
		return nil
	}
	_, err := cur.BreakPage()
	return err
}

func cellFont(m layout.Metrics, bold bool) canvas.Font {
	if bold {
		return canvas.BoldFont(m.CellFontSize)
	}
	return canvas.RegularFont(m.CellFontSize)
}
