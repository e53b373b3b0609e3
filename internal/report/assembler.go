package report

import (
	"fmt"

	"github.com/gompdf/pdfreport/internal/canvas"
	"github.com/gompdf/pdfreport/internal/layout"
	"github.com/gompdf/pdfreport/internal/pagination"
	"github.com/gompdf/pdfreport/internal/section"
	"github.com/gompdf/pdfreport/internal/text"
)

// Assembler lays out a Report on a canvas. One Assembler may build many
// reports in sequence; every build owns its own cursor.
type Assembler struct {
	Metrics layout.Metrics
	Locale  *text.Locale
	// Debug enables verbose logging to stdout
	Debug bool
}

// NewAssembler creates an assembler with the default metrics
func NewAssembler() *Assembler {
	return &Assembler{Metrics: layout.DefaultMetrics(), Locale: text.NewLocale("pl")}
}

// Build draws every section of r in order and serializes the document.
// The first drawing failure aborts the build and no bytes are returned.
func (a *Assembler) Build(c canvas.Canvas, r *Report) ([]byte, error) {
	m := a.Metrics
	minBottom := r.MinBottom
	if minBottom == 0 {
		minBottom = m.MinBottomMargin
	}
	cur, err := pagination.NewCursor(c, minBottom)
	if err != nil {
		return nil, err
	}
	cur.Debug = a.Debug

	fail := func(name string, err error) error {
		return &BuildError{Section: name, Page: cur.Page(), Err: err}
	}

	header := &section.HeaderRenderer{Metrics: m, Debug: a.Debug}
	if err := header.Render(cur, r.Header); err != nil {
		return nil, fail("header", err)
	}
	gap := r.HeaderGap
	if gap == 0 {
		gap = m.HeaderGap
	}
	cur.Advance(gap)

	table := &section.TableRenderer{Metrics: m, Debug: a.Debug}
	if a.Debug {
		plan := table.Plan(cur, r.Table)
		fmt.Printf("Table %s: %d rows planned over %d pages %v\n", r.Table.Kind, len(r.Table.Rows), len(plan), plan)
	}
	if err := table.Render(cur, r.Table); err != nil {
		return nil, fail("table", err)
	}

	summary := &section.SummaryRenderer{Metrics: m, Locale: a.Locale, Debug: a.Debug}
	for _, s := range r.Summaries {
		if s.Empty() {
			continue
		}
		a.space(cur)
		if err := summary.Render(cur, s); err != nil {
			return nil, fail("summary "+s.Label, err)
		}
	}

	a.space(cur)
	signature := &section.SignatureRenderer{Metrics: m}
	if err := signature.Render(cur, r.Signature); err != nil {
		return nil, fail("signature", err)
	}

	out, err := c.Finish()
	if err != nil {
		return nil, fail("finish", err)
	}
	if a.Debug {
		fmt.Printf("Report %s built: %d pages, %d bytes\n", r.Type, c.PageCount(), len(out))
	}
	return out, nil
}

// space separates two sections unless the page is still empty
func (a *Assembler) space(cur *pagination.Cursor) {
	if !cur.AtTop() {
		cur.Advance(a.Metrics.SectionSpacing)
	}
}
