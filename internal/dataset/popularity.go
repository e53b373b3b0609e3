package dataset

import (
	"cmp"
	"slices"
	"time"
)

// Period bounds a date range. Zero bounds are open.
type Period struct {
	From time.Time
	To   time.Time
}

// IsZero reports whether the period is unbounded
func (p Period) IsZero() bool {
	return p.From.IsZero() && p.To.IsZero()
}

// Contains reports whether the calendar day of t lies within the period, bounds included
func (p Period) Contains(t time.Time) bool {
	d := day(t)
	if !p.From.IsZero() && d.Before(day(p.From)) {
		return false
	}
	if !p.To.IsZero() && d.After(day(p.To)) {
		return false
	}
	return true
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// RankedBook is a book with its loan count and popularity rank
type RankedBook struct {
	Book
	Rank  int
	Loans int
}

// LoanCounts counts loans per book ID for loans borrowed within the period
func LoanCounts(loans []Loan, p Period) map[string]int {
	counts := make(map[string]int)
	for _, l := range loans {
		if p.Contains(l.BorrowedAt) {
			counts[l.BookID]++
		}
	}
	return counts
}

// RankBooks orders books by descending loan count. Books with equal counts
// keep their input order. Ranks start at 1.
func RankBooks(books []Book, counts map[string]int) []RankedBook {
	ranked := make([]RankedBook, len(books))
	for i, b := range books {
		ranked[i] = RankedBook{Book: b, Loans: counts[b.ID]}
	}
	slices.SortStableFunc(ranked, func(a, b RankedBook) int {
		return cmp.Compare(b.Loans, a.Loans)
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
