package section

import (
	"github.com/gompdf/pdfreport/internal/canvas"
	"github.com/gompdf/pdfreport/internal/layout"
	"github.com/gompdf/pdfreport/internal/pagination"
)

// SignatureRenderer draws the closing signature block
type SignatureRenderer struct {
	Metrics layout.Metrics
}

// Render draws s at the cursor. The block needs SignatureReserve points of
// free space so it is never left alone at the foot of a page.
func (r *SignatureRenderer) Render(cur *pagination.Cursor, s layout.Signature) error {
	m := r.Metrics
	if err := fitOrBreak(cur, max(m.SignatureReserve, s.Measure(m))); err != nil {
		return err
	}

	g := cur.Geometry()
	x, y, w := g.Margin, cur.Y(), g.ContentWidth()
	third := w / 3
	right := x + w - third/2
	line := y + 80

	p := newPen(cur.Canvas())
	p.text(right-60, y+40, canvas.BoldFont(8), s.Name)
	p.text(right-70, y+55, canvas.RegularFont(8), s.Caption)
	for _, c := range slotCenters(x, w, len(s.Slots)) {
		p.dotted(c-50, line, c+50, line)
	}
	for i, c := range slotCenters(x, w, len(s.Slots)) {
		p.text(c-15, line+15, canvas.RegularFont(8), s.Slots[i])
	}
	if p.err != nil {
		return p.err
	}
	cur.Advance(m.SignatureHeight)
	return nil
}

// slotCenters spreads n signature slots evenly across the width; a single
// slot sits in the right third
func slotCenters(x, w float64, n int) []float64 {
	if n == 1 {
		return []float64{x + w - w/6}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = x + w*float64(2*i+1)/float64(2*n)
	}
	return out
}
