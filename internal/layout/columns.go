package layout

import (
	"fmt"
	"strconv"

	"github.com/gompdf/pdfreport/internal/text"
)

// TableKind selects the column layout and continuation wording of a table
type TableKind int

const (
	KindInventory TableKind = iota
	KindPopularity
	KindOverdue
	KindReceipt
)

func (k TableKind) String() string {
	switch k {
	case KindInventory:
		return "inventory"
	case KindPopularity:
		return "popularity"
	case KindOverdue:
		return "overdue"
	case KindReceipt:
		return "receipt"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ContinuationSubtitle returns the subtitle format used on continuation pages
func (k TableKind) ContinuationSubtitle() string {
	switch k {
	case KindPopularity:
		return "Kontynuacja raportu popularności - strona %d"
	case KindOverdue:
		return "Kontynuacja - strona %d"
	case KindReceipt:
		return "Kontynuacja dokumentu - strona %d"
	default:
		return "Kontynuacja raportu - strona %d"
	}
}

// ContinuationNumberLabel returns the prefix of the number on continuation pages
func (k TableKind) ContinuationNumberLabel() string {
	switch k {
	case KindOverdue:
		return "Nr: "
	case KindReceipt:
		return "Nr dokumentu: "
	default:
		return "Nr raportu: "
	}
}

// ColumnsFor returns the column layout of a table kind for the given content
// width. The last column takes whatever width the fixed columns leave; it may
// become narrow or negative on small pages, which only affects appearance.
func ColumnsFor(kind TableKind, width float64) ColumnSpec {
	var cs ColumnSpec
	switch kind {
	case KindPopularity:
		cs = ColumnSpec{
			{Label: "Lp.", Width: 20},
			{Label: "Rank", Width: 25},
			{Label: "ID", Width: 50},
			{Label: "Tytuł", Width: 140, Budget: 25},
			{Label: "Autor(zy)", Width: 110, Budget: 20},
			{Label: "Wydawca", Width: 80, Budget: 15},
			{Label: "Gatunek", Width: 50, Budget: 10},
			{Label: "Wypożyczeń"},
		}
	case KindOverdue:
		cs = ColumnSpec{
			{Label: "Lp.", Width: 20},
			{Label: "ID wyp.", Width: 45},
			{Label: "Tytuł", Width: 100, Budget: 20},
			{Label: "Autor", Width: 80, Budget: 15},
			{Label: "Użytkownik", Width: 70, Budget: 12},
			{Label: "Email", Width: 120, Budget: 30},
			{Label: "Termin", Width: 50},
			{Label: "Dni zaleg.", Emphasizable: true},
		}
	case KindReceipt:
		cs = ColumnSpec{
			{Label: "Lp.", Width: 30},
			{Label: "Indeks", Width: 100},
			{Label: "Nazwa narzędzia, wymiar", Width: width - 30 - 100 - 150},
			{Label: "Ilość", Width: 50},
			{Label: "jm", Width: 50},
			{Label: "Wartość ISO"},
		}
	default:
		cs = ColumnSpec{
			{Label: "Lp.", Width: 30},
			{Label: "ID", Width: 60},
			{Label: "Tytuł", Width: 160, Budget: 30},
			{Label: "Autor(zy)", Width: 120, Budget: 25},
			{Label: "Wydawca", Width: 90, Budget: 20},
			{Label: "Status"},
		}
	}
	last := len(cs) - 1
	cs[last].Width = width - cs[:last].Width()
	return cs
}

// SummaryColumns returns the column layout of a summary block
func SummaryColumns(s Summary, width float64) ColumnSpec {
	if s.Aggregate {
		return ColumnSpec{
			{Label: s.KeyHeader, Width: 120},
			{Label: s.CountHeader, Width: 80},
			{Label: s.TotalHeader, Width: 100},
			{Label: s.MeanHeader, Width: width - 300},
		}
	}
	return ColumnSpec{
		{Label: s.KeyHeader, Width: 200},
		{Label: s.CountHeader, Width: width - 200},
	}
}

// SummaryRows returns the display rows of a summary, the total row last
func SummaryRows(s Summary, loc *text.Locale) []Row {
	if s.Empty() {
		return nil
	}
	rows := make([]Row, 0, len(s.Entries)+1)
	for _, e := range s.Entries {
		rows = append(rows, Row{Cells: summaryCells(s, e, loc)})
	}
	return append(rows, Row{Cells: summaryCells(s, s.Totals(), loc), Emphasis: true})
}

func summaryCells(s Summary, e SummaryEntry, loc *text.Locale) []string {
	cells := []string{e.Label, strconv.Itoa(e.Count)}
	if !s.Aggregate {
		return cells
	}
	mean := 0.0
	if e.Count > 0 {
		mean = float64(e.Total) / float64(e.Count)
	}
	return append(cells, strconv.Itoa(e.Total), loc.Decimal(mean, 1))
}
