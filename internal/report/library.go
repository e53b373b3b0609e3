package report

import (
	"strconv"
	"strings"

	"github.com/gompdf/pdfreport/internal/dataset"
	"github.com/gompdf/pdfreport/internal/layout"
	"github.com/gompdf/pdfreport/internal/pagination"
)

const (
	libraryTitle    = "Raport biblioteczny"
	popularityTitle = "Raport popularności książek"

	statusLabel    = "Podsumowanie statusów książek:"
	genreLabel     = "Podsumowanie gatunków książek:"
	publisherLabel = "Podsumowanie wydawców:"
	countHeader    = "Ilość"
)

// Page is the page a report is laid out on
type Page struct {
	Size   pagination.PageSize
	Margin float64
}

// DefaultPage returns A4 with a 30 point margin
func DefaultPage() Page {
	return Page{Size: pagination.PageSizeA4, Margin: 30}
}

// width is the table width every builder lays columns out for
func (p Page) width() float64 {
	return p.Size.Width - 2*p.Margin
}

// Inventory builds the full book inventory report
func Inventory(ctx Context, page Page, books []dataset.Book) *Report {
	return inventoryReport(TypeInventory, ctx, page, books, dataset.PrefixInventory, "", dataset.StatusCounts(books))
}

// Borrowed builds the inventory of books currently lent out
func Borrowed(ctx Context, page Page, books []dataset.Book) *Report {
	borrowed := dataset.BorrowedBooks(books)
	status := []layout.SummaryEntry{{Label: dataset.StatusBorrowed, Count: len(borrowed)}}
	return inventoryReport(TypeBorrowed, ctx, page, borrowed, dataset.PrefixBorrowed, " - Raport książek wypożyczonych", status)
}

// Filtered builds the inventory of books matching f. Every active filter is
// named in the header description.
func Filtered(ctx Context, page Page, books []dataset.Book, f dataset.BookFilter) *Report {
	matched := dataset.FilterBooks(books, f)
	var suffix strings.Builder
	if f.Genre != "" {
		suffix.WriteString(" - Gatunek: " + f.Genre)
	}
	if f.Status != "" {
		suffix.WriteString(" - Status: " + f.Status)
	}
	if f.Publisher != "" {
		suffix.WriteString(" - Wydawca: " + f.Publisher)
	}
	return inventoryReport(TypeFiltered, ctx, page, matched, dataset.PrefixFiltered, suffix.String(), dataset.StatusCounts(matched))
}

func inventoryReport(typ Type, ctx Context, page Page, books []dataset.Book, prefix, suffix string, status []layout.SummaryEntry) *Report {
	number := ctx.number(prefix)
	title := ctx.title(libraryTitle)

	rows := make([]layout.Row, len(books))
	for i, b := range books {
		rows[i] = layout.Row{Cells: []string{strconv.Itoa(i + 1), b.ID, b.Title, b.AuthorList(), b.Publisher, b.Status}}
	}

	return &Report{
		Type:    typ,
		Title:   title,
		Subject: ctx.Institution.Description + suffix,
		Header:  libraryHeader(ctx, title, number, suffix),
		Table: layout.Table{
			Kind:         layout.KindInventory,
			Columns:      layout.ColumnsFor(layout.KindInventory, page.width()),
			Rows:         rows,
			Continuation: continuation(ctx, layout.KindInventory, number),
		},
		Summaries: []layout.Summary{
			countSummary(statusLabel, "Status", status),
			countSummary(genreLabel, "Gatunek", dataset.GenreCounts(books)),
			countSummary(publisherLabel, "Wydawca", dataset.PublisherCounts(books)),
		},
		Signature: librarySignature(ctx),
	}
}

// Popularity ranks books by the loans borrowed within period. The genre and
// publisher summaries add up loans rather than books.
func Popularity(ctx Context, page Page, books []dataset.Book, loans []dataset.Loan, period dataset.Period) *Report {
	number := ctx.number(dataset.PrefixPopularity)
	title := ctx.title(popularityTitle)
	suffix := periodSuffix(period)

	ranked := dataset.RankBooks(books, dataset.LoanCounts(loans, period))
	rows := make([]layout.Row, len(ranked))
	for i, b := range ranked {
		rows[i] = layout.Row{Cells: []string{
			strconv.Itoa(i + 1), strconv.Itoa(b.Rank), b.ID, b.Title, b.AuthorList(), b.Publisher, b.Genre, strconv.Itoa(b.Loans),
		}}
	}
	loansOf := func(b dataset.RankedBook) int { return b.Loans }

	return &Report{
		Type:    TypePopularity,
		Title:   title,
		Subject: ctx.Institution.Description + suffix,
		Header:  libraryHeader(ctx, title, number, suffix),
		Table: layout.Table{
			Kind:         layout.KindPopularity,
			Columns:      layout.ColumnsFor(layout.KindPopularity, page.width()),
			Rows:         rows,
			Continuation: continuation(ctx, layout.KindPopularity, number),
		},
		Summaries: []layout.Summary{
			countSummary(genreLabel, "Gatunek", dataset.SumBy(ranked, func(b dataset.RankedBook) string { return b.Genre }, loansOf)),
			countSummary(publisherLabel, "Wydawca", dataset.SumBy(ranked, func(b dataset.RankedBook) string { return b.Publisher }, loansOf)),
		},
		Signature: librarySignature(ctx),
	}
}

func periodSuffix(p dataset.Period) string {
	var b strings.Builder
	if !p.From.IsZero() {
		b.WriteString(" - Od: " + p.From.Format(dataset.DateLayout))
	}
	if !p.To.IsZero() {
		b.WriteString(" - Do: " + p.To.Format(dataset.DateLayout))
	}
	return b.String()
}

func libraryHeader(ctx Context, title, number, suffix string) layout.Header {
	in := ctx.Institution
	issuer := []string{in.Name, in.Description + suffix, in.Address, in.City}
	if in.TaxID != "" {
		issuer = append(issuer, "NIP "+in.TaxID)
	}
	return layout.Header{
		Issuer:      issuer,
		NumberLabel: "Nr raportu:",
		Number:      number,
		Title:       title,
		DateLabel:   "Data:",
		Date:        ctx.date(),
		PartyLabel:  "Wygenerował:",
		Party:       ctx.GeneratedBy,
		Barcode:     ctx.Barcode,
	}
}

func continuation(ctx Context, kind layout.TableKind, number string) layout.Continuation {
	return layout.Continuation{
		Title:       ctx.Institution.Name,
		Subtitle:    kind.ContinuationSubtitle(),
		NumberLabel: kind.ContinuationNumberLabel(),
		Number:      number,
		Date:        ctx.date(),
	}
}

func countSummary(label, key string, entries []layout.SummaryEntry) layout.Summary {
	return layout.Summary{Label: label, KeyHeader: key, CountHeader: countHeader, Entries: entries}
}

func librarySignature(ctx Context) layout.Signature {
	return layout.Signature{
		Name:    ctx.GeneratedBy,
		Caption: "Wygenerowano dnia " + ctx.date(),
		Slots:   []string{"podpis"},
	}
}
