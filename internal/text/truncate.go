package text

import (
	"fmt"
	"unicode/utf8"
)

// Ellipsis is appended to cell strings cut down to their budget
const Ellipsis = "..."

// Truncate limits s to budget characters. Longer strings keep their first
// budget-3 characters followed by Ellipsis. A budget of zero or less means
// the column has no limit. Characters are counted as runes, not bytes.
func Truncate(s string, budget int) string {
	if budget <= 0 || utf8.RuneCountInString(s) <= budget {
		return s
	}
	keep := budget - len(Ellipsis)
	if keep < 0 {
		keep = 0
	}
	n := 0
	for i := range s {
		if n == keep {
			return s[:i] + Ellipsis
		}
		n++
	}
	return s + Ellipsis
}

// Cell converts an optional value to its display string.
// Absent values render as an empty string.
func Cell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case *string:
		if x == nil {
			return ""
		}
		return *x
	case *int:
		if x == nil {
			return ""
		}
		return fmt.Sprint(*x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
