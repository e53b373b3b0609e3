package pagination

import "math"

// RowsThatFit returns how many rows of rowHeight fit into space
func RowsThatFit(space, rowHeight float64) int {
	if rowHeight <= 0 || space < rowHeight {
		return 0
	}
	return int(math.Floor(space / rowHeight))
}

// PlanTable distributes rows over pages given how many rows fit on the
// first page and on every continuation page. A zero first entry means the
// table starts on a fresh page. Continuation pages always receive at least
// one row so the plan makes progress even on undersized pages.
func PlanTable(rows, first, perPage int) []int {
	if rows <= 0 {
		return []int{0}
	}
	if perPage < 1 {
		perPage = 1
	}
	var plan []int
	if first > 0 {
		n := min(first, rows)
		plan = append(plan, n)
		rows -= n
	} else {
		plan = append(plan, 0)
	}
	for rows > 0 {
		n := min(perPage, rows)
		plan = append(plan, n)
		rows -= n
	}
	return plan
}

// PageBreaks returns the number of page breaks a plan implies
func PageBreaks(plan []int) int {
	if len(plan) == 0 {
		return 0
	}
	return len(plan) - 1
}
