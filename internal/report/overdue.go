package report

import (
	"strconv"
	"time"

	"github.com/gompdf/pdfreport/internal/dataset"
	"github.com/gompdf/pdfreport/internal/layout"
)

const (
	overdueTitle       = "Raport zalegających użytkowników"
	overdueHeaderTitle = "RAPORT ZALEGAJĄCYCH"

	// overdueEmphasis is the day count above which a loan is printed in bold
	overdueEmphasis = 30

	overdueMinBottom = 120
	overdueHeaderGap = 25
)

// Overdue builds the report of loans past their due date at now
func Overdue(ctx Context, page Page, ds *dataset.Dataset, f dataset.OverdueFilter, now time.Time) *Report {
	number := ctx.number(dataset.PrefixOverdue)
	suffix := overdueSuffix(f)

	loans := dataset.OverdueLoans(ds, f, now)
	rows := make([]layout.Row, len(loans))
	books := make([]dataset.Book, len(loans))
	for i, o := range loans {
		rows[i] = layout.Row{
			Cells: []string{
				strconv.Itoa(i + 1), o.Loan.ID, o.Book.Title, o.Book.AuthorList(), o.User.Name, o.User.Email,
				o.Loan.DueDate.Format("01-02"), strconv.Itoa(o.Days),
			},
			Emphasis: o.Days > overdueEmphasis,
		}
		books[i] = o.Book
	}

	header := libraryHeader(ctx, ctx.title(overdueHeaderTitle), number, suffix)
	header.DateLabel = "Data raportu:"

	return &Report{
		Type:    TypeOverdue,
		Title:   ctx.title(overdueTitle),
		Subject: ctx.Institution.Description + suffix,
		Header:  header,
		Table: layout.Table{
			Kind:         layout.KindOverdue,
			Columns:      layout.ColumnsFor(layout.KindOverdue, page.width()),
			Rows:         rows,
			Continuation: continuation(ctx, layout.KindOverdue, number),
		},
		Summaries: []layout.Summary{
			{
				Label:       "Podsumowanie kategorii zaległości:",
				KeyHeader:   "Kategoria",
				CountHeader: "Liczba",
				Entries:     dataset.CategorySummary(loans),
				Aggregate:   true,
				TotalHeader: "Łączne dni",
				MeanHeader:  "Średnia",
			},
			countSummary(genreLabel, "Gatunek", dataset.GenreCounts(books)),
			countSummary(publisherLabel, "Wydawca", dataset.PublisherCounts(books)),
		},
		Signature: librarySignature(ctx),
		HeaderGap: overdueHeaderGap,
		MinBottom: overdueMinBottom,
	}
}

func overdueSuffix(f dataset.OverdueFilter) string {
	s := ""
	if f.Genre != "" {
		s += " - Gatunek: " + f.Genre
	}
	if f.Publisher != "" {
		s += " - Wydawca: " + f.Publisher
	}
	return s + periodSuffix(f.Period)
}
