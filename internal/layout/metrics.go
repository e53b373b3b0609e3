package layout

// Metrics holds the fixed layout constants of the report family, in points
type Metrics struct {
	RowHeight       float64
	HeaderRowHeight float64
	CellPadding     float64
	// TextBaseline is the distance from a row top to the text baseline
	TextBaseline  float64
	CellFontSize  float64
	LabelFontSize float64

	HeaderBlockHeight float64
	HeaderGap         float64

	ContinuationHeight float64
	ContinuationGap    float64

	SummaryLabelHeight float64
	SectionSpacing     float64

	SignatureHeight  float64
	SignatureReserve float64

	MinBottomMargin float64
}

// DefaultMetrics returns the reference layout for library reports
func DefaultMetrics() Metrics {
	return Metrics{
		RowHeight:          25,
		HeaderRowHeight:    25,
		CellPadding:        5,
		TextBaseline:       15,
		CellFontSize:       8,
		LabelFontSize:      10,
		HeaderBlockHeight:  120,
		HeaderGap:          20,
		ContinuationHeight: 50,
		ContinuationGap:    20,
		SummaryLabelHeight: 20,
		SectionSpacing:     25,
		SignatureHeight:    100,
		SignatureReserve:   150,
		MinBottomMargin:    50,
	}
}

// TableHeight returns the height of a table with n body rows drawn without a
// page break: the column header row, the body rows and the optional footer row.
func (m Metrics) TableHeight(n int, footer bool) float64 {
	h := m.HeaderRowHeight + float64(max(n, 0))*m.RowHeight
	if footer {
		h += m.RowHeight
	}
	return h
}

// SummaryHeight returns the height of a summary block with n entries:
// the section label, the header row, the entries and the total row.
// An empty summary is not drawn and measures zero.
func (m Metrics) SummaryHeight(n int) float64 {
	if n <= 0 {
		return 0
	}
	return m.SummaryLabelHeight + float64(n+2)*m.RowHeight
}

// HeaderHeight returns the height of the full document header block
func (m Metrics) HeaderHeight() float64 {
	return m.HeaderBlockHeight
}

// ContinuationBlockHeight returns the space a continuation header takes,
// including the gap before the repeated column header row
func (m Metrics) ContinuationBlockHeight() float64 {
	return m.ContinuationHeight + m.ContinuationGap
}

// BreakOverhead returns the height a table spends after each page break
// before it can draw its next body row
func (m Metrics) BreakOverhead() float64 {
	return m.ContinuationBlockHeight() + m.HeaderRowHeight
}
