package pagination

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gompdf/pdfreport/internal/canvas"
)

func newTestCursor(t *testing.T, height, minBottom float64) (*Cursor, *canvas.Recorder) {
	t.Helper()
	rec := canvas.NewRecorder(canvas.Geometry{Width: 300, Height: height, Margin: 30})
	cur, err := NewCursor(rec, minBottom)
	if err != nil {
		t.Fatalf("NewCursor: %v", err)
	}
	return cur, rec
}

func TestCursorRemainingAndAdvance(t *testing.T) {
	cur, rec := newTestCursor(t, 400, 50)
	if rec.PageCount() != 1 {
		t.Fatalf("PageCount() = %d, want 1", rec.PageCount())
	}
	if got := cur.Remaining(); got != 320 {
		t.Fatalf("Remaining() = %v, want 320", got)
	}
	if !cur.AtTop() {
		t.Error("fresh cursor should be at top")
	}
	cur.Advance(100)
	if got := cur.Remaining(); got != 220 {
		t.Errorf("Remaining() after advance = %v, want 220", got)
	}
	if cur.NeedsNewPage(220) {
		t.Error("NeedsNewPage(220) = true, want false")
	}
	if !cur.NeedsNewPage(220.5) {
		t.Error("NeedsNewPage(220.5) = false, want true")
	}
	if got := cur.Consumed(); got != 100 {
		t.Errorf("Consumed() = %v, want 100", got)
	}
}

func TestCursorBreakPage(t *testing.T) {
	cur, rec := newTestCursor(t, 400, 50)
	cur.Advance(300)
	page, err := cur.BreakPage()
	if err != nil {
		t.Fatal(err)
	}
	if page != 2 || cur.Page() != 2 {
		t.Errorf("BreakPage() = %d, Page() = %d, want 2", page, cur.Page())
	}
	if cur.Y() != cur.Top() {
		t.Errorf("Y() = %v after break, want %v", cur.Y(), cur.Top())
	}
	if rec.PageCount() != 2 {
		t.Errorf("canvas pages = %d, want 2", rec.PageCount())
	}
	if cur.Consumed() != 300 {
		t.Errorf("break must not count as consumed height, got %v", cur.Consumed())
	}
}

func TestCursorBreakPageFailure(t *testing.T) {
	rec := canvas.NewRecorder(canvas.Geometry{Width: 300, Height: 400, Margin: 30})
	rec.FailAfter = 1
	cur, err := NewCursor(rec, 50)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cur.BreakPage(); !errors.Is(err, canvas.ErrInjected) {
		t.Fatalf("BreakPage() error = %v, want ErrInjected", err)
	}
	if cur.Page() != 1 {
		t.Errorf("failed break moved to page %d", cur.Page())
	}
}

func TestNewCursorRejectsOversizedMargin(t *testing.T) {
	rec := canvas.NewRecorder(canvas.Geometry{Width: 300, Height: 100, Margin: 30})
	if _, err := NewCursor(rec, 80); !errors.Is(err, ErrInvalidPageSize) {
		t.Fatalf("NewCursor error = %v, want ErrInvalidPageSize", err)
	}
	if rec.PageCount() != 0 {
		t.Error("no page may be allocated on a configuration error")
	}
}

func TestLookupPageSize(t *testing.T) {
	ps, err := LookupPageSize("a5")
	if err != nil || ps != PageSizeA5 {
		t.Errorf("LookupPageSize(a5) = %v, %v", ps, err)
	}
	ps, err = LookupPageSize("")
	if err != nil || ps != PageSizeA4 {
		t.Errorf("LookupPageSize(\"\") = %v, %v", ps, err)
	}
	if _, err := LookupPageSize("B7"); !errors.Is(err, ErrInvalidPageSize) {
		t.Errorf("LookupPageSize(B7) error = %v", err)
	}
}

func TestPageSizeGeometry(t *testing.T) {
	g, err := PageSizeA4.Geometry(30)
	if err != nil {
		t.Fatal(err)
	}
	if g.Width != 595.28 || g.Height != 841.89 || g.Margin != 30 {
		t.Errorf("Geometry() = %+v", g)
	}
	if _, err := PageSizeA5.Geometry(300); !errors.Is(err, ErrInvalidPageSize) {
		t.Errorf("oversized margin error = %v", err)
	}
}

func TestPlanTable(t *testing.T) {
	tests := []struct {
		rows, first, per int
		want             []int
	}{
		{0, 5, 5, []int{0}},
		{3, 2, 1, []int{2, 1}},
		{10, 4, 3, []int{4, 3, 3}},
		{4, 0, 3, []int{0, 3, 1}},
		{2, 0, 0, []int{0, 1, 1}},
	}
	for _, tt := range tests {
		got := PlanTable(tt.rows, tt.first, tt.per)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("PlanTable(%d, %d, %d) mismatch (-want +got):\n%s", tt.rows, tt.first, tt.per, diff)
		}
	}
}

func TestPageBreaksFormula(t *testing.T) {
	const rowHeight = 25.0
	for capacity := 1; capacity <= 6; capacity++ {
		for rows := 1; rows <= 30; rows++ {
			plan := PlanTable(rows, capacity, capacity)
			total := float64(rows) * rowHeight
			perPage := float64(capacity) * rowHeight
			want := int(math.Ceil(total/perPage)) - 1
			if got := PageBreaks(plan); got != want {
				t.Errorf("rows=%d capacity=%d: breaks = %d, want %d", rows, capacity, got, want)
			}
		}
	}
}

func TestRowsThatFit(t *testing.T) {
	if got := RowsThatFit(74, 25); got != 2 {
		t.Errorf("RowsThatFit(74, 25) = %d, want 2", got)
	}
	if got := RowsThatFit(24, 25); got != 0 {
		t.Errorf("RowsThatFit(24, 25) = %d, want 0", got)
	}
}
