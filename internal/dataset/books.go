package dataset

import (
	"cmp"
	"slices"
	"strings"

	"github.com/gompdf/pdfreport/internal/layout"
)

// BookFilter selects books by case-insensitive field equality.
// Empty fields match every book.
type BookFilter struct {
	Genre     string
	Status    string
	Publisher string
}

// IsZero reports whether the filter matches everything
func (f BookFilter) IsZero() bool {
	return f == BookFilter{}
}

// Match reports whether b passes the filter
func (f BookFilter) Match(b Book) bool {
	return matchField(f.Genre, b.Genre) && matchField(f.Status, b.Status) && matchField(f.Publisher, b.Publisher)
}

func matchField(want, got string) bool {
	return want == "" || strings.EqualFold(want, got)
}

// FilterBooks returns the books passing f, in input order
func FilterBooks(books []Book, f BookFilter) []Book {
	out := make([]Book, 0, len(books))
	for _, b := range books {
		if f.Match(b) {
			out = append(out, b)
		}
	}
	return out
}

// CountBy groups items by key and counts them. Missing keys are counted as
// Unknown. Entries are ordered by descending count, then by label.
func CountBy[T any](items []T, key func(T) string) []layout.SummaryEntry {
	return SumBy(items, key, func(T) int { return 1 })
}

// SumBy groups items by key and adds up weight per group, ordered like CountBy
func SumBy[T any](items []T, key func(T) string, weight func(T) int) []layout.SummaryEntry {
	totals := make(map[string]int)
	for _, it := range items {
		k := key(it)
		if k == "" {
			k = Unknown
		}
		totals[k] += weight(it)
	}
	entries := make([]layout.SummaryEntry, 0, len(totals))
	for k, n := range totals {
		entries = append(entries, layout.SummaryEntry{Label: k, Count: n})
	}
	slices.SortFunc(entries, byCountDesc)
	return entries
}

func byCountDesc(a, b layout.SummaryEntry) int {
	if c := cmp.Compare(b.Count, a.Count); c != 0 {
		return c
	}
	return cmp.Compare(a.Label, b.Label)
}

// StatusCounts counts books per status
func StatusCounts(books []Book) []layout.SummaryEntry {
	return CountBy(books, func(b Book) string { return b.Status })
}

// GenreCounts counts books per genre
func GenreCounts(books []Book) []layout.SummaryEntry {
	return CountBy(books, func(b Book) string { return b.Genre })
}

// PublisherCounts counts books per publisher
func PublisherCounts(books []Book) []layout.SummaryEntry {
	return CountBy(books, func(b Book) string { return b.Publisher })
}

// BorrowedBooks returns the books currently lent out
func BorrowedBooks(books []Book) []Book {
	return FilterBooks(books, BookFilter{Status: StatusBorrowed})
}
