package layout

import "fmt"

// Block is a content model the assembler places on the page
type Block interface {
	// Measure returns the vertical extent of the block when it fits on one page
	Measure(m Metrics) float64
}

// Column is one column of a table: its header label, width in points and the
// character budget its cells are truncated to. A zero budget means no limit.
type Column struct {
	Label  string
	Width  float64
	Budget int
	// Emphasizable columns are drawn in bold on emphasized rows
	Emphasizable bool
}

// ColumnSpec is the ordered column layout of a table
type ColumnSpec []Column

// Width returns the sum of all column widths
func (cs ColumnSpec) Width() float64 {
	var w float64
	for _, c := range cs {
		w += c.Width
	}
	return w
}

// Offsets returns the left edge of every column relative to the table origin,
// followed by the right edge of the last column
func (cs ColumnSpec) Offsets() []float64 {
	out := make([]float64, 0, len(cs)+1)
	x := 0.0
	for _, c := range cs {
		out = append(out, x)
		x += c.Width
	}
	return append(out, x)
}

// Row is one table row: a display string per column and an emphasis flag
type Row struct {
	Cells    []string
	Emphasis bool
}

// Footer is a trailing total row spanning the columns from LabelColumn up to
// ValueColumn, with the value drawn in ValueColumn
type Footer struct {
	Label       string
	Value       string
	LabelColumn int
	ValueColumn int
}

// Continuation describes the short header repeated on every page a table
// continues onto
type Continuation struct {
	Title string
	// Subtitle is a format string receiving the new page number
	Subtitle    string
	NumberLabel string
	Number      string
	Date        string
}

// SubtitleFor returns the subtitle for the given page
func (c Continuation) SubtitleFor(page int) string {
	return fmt.Sprintf(c.Subtitle, page)
}

// Table is a paged data table. It does not know its own position.
type Table struct {
	Kind         TableKind
	Columns      ColumnSpec
	Rows         []Row
	Footer       *Footer
	Continuation Continuation
}

// Measure implements Block
func (t Table) Measure(m Metrics) float64 {
	return m.TableHeight(len(t.Rows), t.Footer != nil)
}

// SummaryEntry is a (label, count) pair. Total carries an optional second
// aggregate, such as the summed overdue days of a category.
type SummaryEntry struct {
	Label string
	Count int
	Total int
}

// Summary is a frequency table closed by a total row
type Summary struct {
	Label       string
	KeyHeader   string
	CountHeader string
	Entries     []SummaryEntry
	// Aggregate adds total and mean columns driven by SummaryEntry.Total
	Aggregate   bool
	TotalHeader string
	MeanHeader  string
}

// TotalLabel is the key of the closing row of every summary
const TotalLabel = "RAZEM"

// Measure implements Block
func (s Summary) Measure(m Metrics) float64 {
	return m.SummaryHeight(len(s.Entries))
}

// Empty reports whether the summary has nothing to draw
func (s Summary) Empty() bool {
	return len(s.Entries) == 0
}

// Totals returns the closing entry: the sum of all counts and totals
func (s Summary) Totals() SummaryEntry {
	t := SummaryEntry{Label: TotalLabel}
	for _, e := range s.Entries {
		t.Count += e.Count
		t.Total += e.Total
	}
	return t
}

// Header is the full document header block
type Header struct {
	// Issuer lines are drawn top to bottom in the left half, the first in bold
	Issuer      []string
	NumberLabel string
	Number      string
	Reference   string
	Title       string
	// Code is an optional short document code drawn before the title, e.g. "PZ"
	Code       string
	DateLabel  string
	Date       string
	PartyLabel string
	Party      string
	Barcode    bool
}

// Measure implements Block
func (h Header) Measure(m Metrics) float64 {
	return m.HeaderHeight()
}

// Signature is the closing block with signature slots
type Signature struct {
	Name string
	// Caption is drawn under the name, e.g. "Wygenerowano dnia 2025-01-01"
	Caption string
	// Slots are the labels under the dotted lines. One slot is drawn in the
	// right third, three slots fill the left, middle and right thirds.
	Slots []string
}

// Measure implements Block
func (s Signature) Measure(m Metrics) float64 {
	return m.SignatureHeight
}
