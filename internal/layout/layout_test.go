package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gompdf/pdfreport/internal/text"
)

const contentWidth = 535.28

func TestColumnsFillContentWidth(t *testing.T) {
	for _, kind := range []TableKind{KindInventory, KindPopularity, KindOverdue, KindReceipt} {
		cs := ColumnsFor(kind, contentWidth)
		if got := cs.Width(); got < contentWidth-0.001 || got > contentWidth+0.001 {
			t.Errorf("%s: columns width = %v, want %v", kind, got, contentWidth)
		}
	}
}

func TestInventoryColumns(t *testing.T) {
	cs := ColumnsFor(KindInventory, contentWidth)
	var labels []string
	var budgets []int
	for _, c := range cs {
		labels = append(labels, c.Label)
		budgets = append(budgets, c.Budget)
	}
	if diff := cmp.Diff([]string{"Lp.", "ID", "Tytuł", "Autor(zy)", "Wydawca", "Status"}, labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 0, 30, 25, 20, 0}, budgets); diff != "" {
		t.Errorf("budgets mismatch (-want +got):\n%s", diff)
	}
	offsets := cs.Offsets()
	if offsets[2] != 90 || len(offsets) != len(cs)+1 {
		t.Errorf("Offsets() = %v", offsets)
	}
}

func TestOverdueColumnEmphasis(t *testing.T) {
	cs := ColumnsFor(KindOverdue, contentWidth)
	if !cs[len(cs)-1].Emphasizable {
		t.Error("overdue days column should be emphasizable")
	}
}

func TestMeasurement(t *testing.T) {
	m := DefaultMetrics()
	if got := m.TableHeight(0, false); got != 25 {
		t.Errorf("TableHeight(0) = %v, want 25", got)
	}
	if got := m.TableHeight(3, false); got != 100 {
		t.Errorf("TableHeight(3) = %v, want 100", got)
	}
	if got := m.TableHeight(3, true); got != 125 {
		t.Errorf("TableHeight(3, footer) = %v, want 125", got)
	}
	if got := m.SummaryHeight(0); got != 0 {
		t.Errorf("SummaryHeight(0) = %v, want 0", got)
	}
	if got := m.SummaryHeight(2); got != 120 {
		t.Errorf("SummaryHeight(2) = %v, want 120", got)
	}
	if got := (Header{}).Measure(m); got != 120 {
		t.Errorf("Header.Measure = %v, want 120", got)
	}
}

func TestSummaryTotals(t *testing.T) {
	s := Summary{KeyHeader: "Status", CountHeader: "Ilość", Entries: []SummaryEntry{{Label: "A", Count: 2}, {Label: "B", Count: 3}}}
	rows := SummaryRows(s, text.NewLocale("pl"))
	want := []Row{
		{Cells: []string{"A", "2"}},
		{Cells: []string{"B", "3"}},
		{Cells: []string{"RAZEM", "5"}, Emphasis: true},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("SummaryRows mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateSummaryRows(t *testing.T) {
	s := Summary{
		Aggregate: true,
		Entries: []SummaryEntry{
			{Label: "Powyżej 30 dni", Count: 2, Total: 75},
			{Label: "Do 7 dni", Count: 0},
		},
	}
	rows := SummaryRows(s, text.NewLocale("pl"))
	want := []Row{
		{Cells: []string{"Powyżej 30 dni", "2", "75", "37,5"}},
		{Cells: []string{"Do 7 dni", "0", "0", "0,0"}},
		{Cells: []string{"RAZEM", "2", "75", "37,5"}, Emphasis: true},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("SummaryRows mismatch (-want +got):\n%s", diff)
	}
	cols := SummaryColumns(s, contentWidth)
	if len(cols) != 4 {
		t.Errorf("aggregate summary has %d columns, want 4", len(cols))
	}
}

func TestEmptySummaryRows(t *testing.T) {
	if rows := SummaryRows(Summary{}, text.NewLocale("pl")); rows != nil {
		t.Errorf("SummaryRows(empty) = %v, want nil", rows)
	}
}

func TestContinuationSubtitle(t *testing.T) {
	c := Continuation{Subtitle: KindInventory.ContinuationSubtitle()}
	if got := c.SubtitleFor(3); got != "Kontynuacja raportu - strona 3" {
		t.Errorf("SubtitleFor(3) = %q", got)
	}
}
