package report

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/gompdf/pdfreport/internal/canvas"
	"github.com/gompdf/pdfreport/internal/dataset"
	"github.com/gompdf/pdfreport/internal/layout"
)

var buildDate = time.Date(2025, 5, 12, 9, 0, 0, 0, time.UTC)

func testContext() Context {
	return Context{
		Institution: DefaultInstitution(),
		Number:      "INV-20250512-007",
		Date:        buildDate,
		GeneratedBy: "Anna Nowak",
	}
}

func a4Recorder() *canvas.Recorder {
	return canvas.NewRecorder(canvas.Geometry{Width: 595.28, Height: 841.89, Margin: 30})
}

func books(n int) []dataset.Book {
	out := make([]dataset.Book, n)
	for i := range out {
		status := dataset.StatusAvailable
		if i%3 == 0 {
			status = dataset.StatusBorrowed
		}
		out[i] = dataset.Book{
			ID:        fmt.Sprintf("b%d", i+1),
			Title:     fmt.Sprintf("Tytuł %d", i+1),
			Authors:   []string{"Autor"},
			Publisher: []string{"PWN", "Znak"}[i%2],
			Genre:     "Powieść",
			Status:    status,
		}
	}
	return out
}

func build(t *testing.T, r *Report) *canvas.Recorder {
	t.Helper()
	rec := a4Recorder()
	out, err := NewAssembler().Build(rec, r)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("Build returned no bytes")
	}
	return rec
}

func TestParseType(t *testing.T) {
	for _, typ := range Types {
		got, err := ParseType(strings.ToUpper(string(typ)))
		if err != nil || got != typ {
			t.Errorf("ParseType(%q) = %q, %v", typ, got, err)
		}
	}
	if _, err := ParseType("invoice"); !errors.Is(err, ErrUnknownReportType) {
		t.Errorf("ParseType(invoice) error = %v, want ErrUnknownReportType", err)
	}
}

func TestInventoryMovesSignatureToFreshPage(t *testing.T) {
	rec := build(t, Inventory(testContext(), DefaultPage(), books(3)))

	// the three summaries leave less than the signature reserve on page 1
	if got := rec.PageCount(); got != 2 {
		t.Fatalf("PageCount() = %d, want 2", got)
	}
	texts := rec.Texts(1)
	for _, want := range []string{
		"Biblioteka Miejska", "INV-20250512-007", "Raport biblioteczny", "2025-05-12", "Anna Nowak",
		"Tytuł 3", statusLabel, genreLabel, publisherLabel, layout.TotalLabel,
	} {
		if !slices.Contains(texts, want) {
			t.Errorf("page 1 is missing %q", want)
		}
	}
	status := slices.Index(texts, statusLabel)
	genre := slices.Index(texts, genreLabel)
	publisher := slices.Index(texts, publisherLabel)
	if !(status < genre && genre < publisher) {
		t.Errorf("summary order = %d, %d, %d", status, genre, publisher)
	}
	if diff := cmp.Diff([]string{"Anna Nowak", "Wygenerowano dnia 2025-05-12", "podpis"}, rec.Texts(2)); diff != "" {
		t.Errorf("page 2 mismatch (-want +got):\n%s", diff)
	}
}

func TestInventoryContinuesAcrossPages(t *testing.T) {
	r := Inventory(testContext(), DefaultPage(), books(60))
	rec := build(t, r)

	if rec.PageCount() < 3 {
		t.Fatalf("PageCount() = %d, want at least 3", rec.PageCount())
	}
	texts := rec.Texts(2)
	if len(texts) == 0 || texts[1] != "Kontynuacja raportu - strona 2" {
		t.Errorf("page 2 starts with %v", texts[:min(3, len(texts))])
	}
	if !slices.Contains(texts, "Nr raportu: INV-20250512-007") {
		t.Error("continuation header is missing the report number")
	}
	if _, ok := rec.FindText("Tytuł 60"); !ok {
		t.Error("last row was not drawn")
	}
	last := rec.Texts(rec.PageCount())
	if !slices.Contains(last, "podpis") {
		t.Errorf("signature is not on the last page: %v", last)
	}
}

func TestBorrowedKeepsZeroStatus(t *testing.T) {
	none := []dataset.Book{{ID: "b1", Title: "Lalka", Status: dataset.StatusAvailable, Genre: "Powieść"}}
	r := Borrowed(testContext(), DefaultPage(), none)

	want := []layout.SummaryEntry{{Label: dataset.StatusBorrowed, Count: 0}}
	if diff := cmp.Diff(want, r.Summaries[0].Entries); diff != "" {
		t.Errorf("status entries mismatch (-want +got):\n%s", diff)
	}
	if got := r.Header.Issuer[1]; got != "System Zarządzania Księgozbiorem - Raport książek wypożyczonych" {
		t.Errorf("description = %q", got)
	}

	rec := build(t, r)
	if _, ok := rec.FindText(statusLabel); !ok {
		t.Error("status summary with a zero count was skipped")
	}
	if _, ok := rec.FindText(genreLabel); ok {
		t.Error("empty genre summary drew its label")
	}
}

func TestFilteredDescription(t *testing.T) {
	f := dataset.BookFilter{Genre: "powieść", Publisher: "PWN"}
	r := Filtered(testContext(), DefaultPage(), books(6), f)

	if got, want := r.Header.Issuer[1], "System Zarządzania Księgozbiorem - Gatunek: powieść - Wydawca: PWN"; got != want {
		t.Errorf("description = %q, want %q", got, want)
	}
	if got := len(r.Table.Rows); got != 3 {
		t.Errorf("rows = %d, want 3", got)
	}
	if r.Type != TypeFiltered {
		t.Errorf("Type = %q", r.Type)
	}
}

func TestPopularityRanksByLoans(t *testing.T) {
	bs := books(3)
	at := buildDate.AddDate(0, 0, -3)
	loans := []dataset.Loan{
		{BookID: "b2", BorrowedAt: at},
		{BookID: "b2", BorrowedAt: at},
		{BookID: "b3", BorrowedAt: at},
		{BookID: "b1", BorrowedAt: buildDate.AddDate(-1, 0, 0)},
	}
	period := dataset.Period{From: buildDate.AddDate(0, -1, 0), To: buildDate}
	r := Popularity(testContext(), DefaultPage(), bs, loans, period)

	var got [][]string
	for _, row := range r.Table.Rows {
		got = append(got, []string{row.Cells[1], row.Cells[2], row.Cells[7]})
	}
	want := [][]string{{"1", "b2", "2"}, {"2", "b3", "1"}, {"3", "b1", "0"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ranking mismatch (-want +got):\n%s", diff)
	}

	var labels []string
	for _, s := range r.Summaries {
		labels = append(labels, s.Label)
	}
	if diff := cmp.Diff([]string{genreLabel, publisherLabel}, labels); diff != "" {
		t.Fatalf("summary sections mismatch (-want +got):\n%s", diff)
	}
	wantPublishers := []layout.SummaryEntry{{Label: "Znak", Count: 2}, {Label: "PWN", Count: 1}}
	if diff := cmp.Diff(wantPublishers, r.Summaries[1].Entries); diff != "" {
		t.Errorf("publisher loans mismatch (-want +got):\n%s", diff)
	}
	if !strings.HasSuffix(r.Header.Issuer[1], " - Od: 2025-04-12 - Do: 2025-05-12") {
		t.Errorf("description = %q", r.Header.Issuer[1])
	}
	if r.Header.Title != popularityTitle {
		t.Errorf("Title = %q", r.Header.Title)
	}
}

func TestOverdueReport(t *testing.T) {
	ds := &dataset.Dataset{
		Books: books(2),
		Users: []dataset.User{{ID: "u1", Name: "Jan Kowalski", Email: "jan@example.com"}},
		Loans: []dataset.Loan{
			{ID: "L1", BookID: "b1", UserID: "u1", BorrowedAt: buildDate.AddDate(0, 0, -60), DueDate: buildDate.AddDate(0, 0, -40)},
			{ID: "L2", BookID: "b2", UserID: "u1", BorrowedAt: buildDate.AddDate(0, 0, -20), DueDate: buildDate.AddDate(0, 0, -3)},
		},
	}
	r := Overdue(testContext(), DefaultPage(), ds, dataset.OverdueFilter{}, buildDate)

	if r.MinBottom != 120 || r.HeaderGap != 25 {
		t.Errorf("MinBottom %v HeaderGap %v", r.MinBottom, r.HeaderGap)
	}
	if !r.Table.Rows[0].Emphasis || r.Table.Rows[1].Emphasis {
		t.Errorf("emphasis = %v, %v", r.Table.Rows[0].Emphasis, r.Table.Rows[1].Emphasis)
	}
	if got := r.Table.Rows[0].Cells[6]; got != "04-02" {
		t.Errorf("due date cell = %q, want 04-02", got)
	}

	rec := build(t, r)
	op, ok := rec.FindText("40")
	if !ok || op.Font.Style != canvas.Bold {
		t.Errorf("40 days cell = %+v, %v; want bold", op, ok)
	}
	if op, ok := rec.FindText("3"); !ok || op.Font.Style != canvas.Regular {
		t.Errorf("3 days cell = %+v, %v; want regular", op, ok)
	}
	for _, want := range []string{"RAPORT ZALEGAJĄCYCH", "Data raportu:", dataset.CategoryLonger, dataset.CategoryWeek, "43", "21,5"} {
		if _, ok := rec.FindText(want); !ok {
			t.Errorf("missing %q", want)
		}
	}
}

func TestReceipt(t *testing.T) {
	rc := dataset.Receipt{Items: []dataset.ReceiptItem{
		{Index: "W-001", Name: "Wiertło 8 mm", Quantity: 10, Unit: "szt", Value: 10.5},
		{Index: "W-002", Name: "Frez 12 mm", Quantity: 1, Unit: "szt", Value: 2.5},
	}}
	rec := build(t, Receipt(Context{Barcode: true}, DefaultPage(), rc, nil))

	for _, want := range []string{
		"Projektowanie i Wdrażanie", "NIP 631-132-20-90", "Pz 1/2006", "123/06", "PZ", receiptTitle,
		"HURTOWNIA WIERTELKO", "10,5", "2,5", "Razem dokument", "13,00", "Jacek Krywult", "Przyjął dnia 2006-02-28", "podpis*",
	} {
		if _, ok := rec.FindText(want); !ok {
			t.Errorf("missing %q", want)
		}
	}
	rects := 0
	for _, op := range rec.Ops() {
		if op.Kind == canvas.OpRect {
			rects++
		}
	}
	if rects == 0 {
		t.Error("barcode was not drawn")
	}
}

func TestGeneratedReportNumber(t *testing.T) {
	ctx := testContext()
	ctx.Number = ""
	ctx.Rand = rand.New(rand.NewPCG(7, 7))
	r := Inventory(ctx, DefaultPage(), nil)
	if !regexp.MustCompile(`^INV-20250512-\d{3}$`).MatchString(r.Header.Number) {
		t.Errorf("Number = %q", r.Header.Number)
	}
	if r.Table.Continuation.Number != r.Header.Number {
		t.Errorf("continuation number %q differs from header %q", r.Table.Continuation.Number, r.Header.Number)
	}
}

func TestBuildAbortsOnCanvasFailure(t *testing.T) {
	for _, after := range []int{1, 10, 200} {
		rec := a4Recorder()
		rec.FailAfter = after
		out, err := NewAssembler().Build(rec, Inventory(testContext(), DefaultPage(), books(40)))
		if out != nil {
			t.Errorf("FailAfter %d: got output on failure", after)
		}
		if !errors.Is(err, canvas.ErrInjected) {
			t.Fatalf("FailAfter %d: error = %v, want ErrInjected", after, err)
		}
		var be *BuildError
		if !errors.As(err, &be) {
			t.Fatalf("FailAfter %d: error %T is not a BuildError", after, err)
		}
		if be.Section == "" || be.Page < 1 {
			t.Errorf("FailAfter %d: BuildError = %+v", after, be)
		}
	}
}

func TestBuildRejectsOversizedBottomMargin(t *testing.T) {
	r := Inventory(testContext(), DefaultPage(), nil)
	r.MinBottom = 900
	if _, err := NewAssembler().Build(a4Recorder(), r); err == nil {
		t.Fatal("expected a configuration error")
	}
}
