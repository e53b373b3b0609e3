package dataset

import (
	"cmp"
	"slices"
	"time"

	"github.com/gompdf/pdfreport/internal/layout"
)

// Overdue categories, from the least to the most severe
const (
	CategoryNone   = "Brak zaległości"
	CategoryWeek   = "Do 7 dni"
	CategoryTwoWk  = "8-14 dni"
	CategoryMonth  = "15-30 dni"
	CategoryLonger = "Powyżej 30 dni"
)

// categoryOrder lists the categories as they appear in the summary
var categoryOrder = []string{CategoryLonger, CategoryMonth, CategoryTwoWk, CategoryWeek}

// OverdueDays returns the calendar days from the due date to the date of
// now, both taken in now's time zone, or 0 when the loan is not yet due
func OverdueDays(due, now time.Time) int {
	days := int(day(now).Sub(day(due.In(now.Location()))) / (24 * time.Hour))
	return max(days, 0)
}

// Category buckets a number of overdue days
func Category(days int) string {
	switch {
	case days <= 0:
		return CategoryNone
	case days <= 7:
		return CategoryWeek
	case days <= 14:
		return CategoryTwoWk
	case days <= 30:
		return CategoryMonth
	default:
		return CategoryLonger
	}
}

// OverdueLoan joins a late loan with its book and borrower
type OverdueLoan struct {
	Loan Loan
	Book Book
	User User
	Days int
}

// Category returns the overdue bucket of the loan
func (o OverdueLoan) Category() string {
	return Category(o.Days)
}

// OverdueFilter narrows overdue loans by book fields and borrow date
type OverdueFilter struct {
	Genre     string
	Publisher string
	Period    Period
}

// OverdueLoans returns the unreturned loans that are past due at now and
// pass the filter, most overdue first. Loans referencing unknown books or
// users keep empty fields for them.
func OverdueLoans(d *Dataset, f OverdueFilter, now time.Time) []OverdueLoan {
	books := d.BookIndex()
	users := d.UserIndex()
	var out []OverdueLoan
	for _, l := range d.Loans {
		if l.ReturnedAt != nil {
			continue
		}
		days := OverdueDays(l.DueDate, now)
		if days <= 0 {
			continue
		}
		b := books[l.BookID]
		if !matchField(f.Genre, b.Genre) || !matchField(f.Publisher, b.Publisher) {
			continue
		}
		if !f.Period.Contains(l.BorrowedAt) {
			continue
		}
		out = append(out, OverdueLoan{Loan: l, Book: b, User: users[l.UserID], Days: days})
	}
	slices.SortStableFunc(out, func(a, b OverdueLoan) int {
		return cmp.Compare(b.Days, a.Days)
	})
	return out
}

// CategorySummary counts overdue loans and their total days per category.
// Only categories that occur are returned, the most severe first.
func CategorySummary(loans []OverdueLoan) []layout.SummaryEntry {
	counts := make(map[string]*layout.SummaryEntry)
	for _, o := range loans {
		c := o.Category()
		e, ok := counts[c]
		if !ok {
			e = &layout.SummaryEntry{Label: c}
			counts[c] = e
		}
		e.Count++
		e.Total += o.Days
	}
	var entries []layout.SummaryEntry
	for _, c := range categoryOrder {
		if e, ok := counts[c]; ok {
			entries = append(entries, *e)
		}
	}
	return entries
}
