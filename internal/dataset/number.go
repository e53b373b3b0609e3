package dataset

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Report number prefixes
const (
	PrefixInventory  = "INV"
	PrefixBorrowed   = "BR"
	PrefixFiltered   = "FR"
	PrefixPopularity = "POP"
	PrefixOverdue    = "OVR"
	PrefixReceipt    = "PZ"
)

// DateLayout is the display format of every date printed in a report
const DateLayout = "2006-01-02"

// ReportNumber formats PREFIX-YYYYMMDD-NNN. The sequence part is drawn from
// rnd, or from the global source when rnd is nil.
func ReportNumber(prefix string, date time.Time, rnd *rand.Rand) string {
	var n int
	if rnd != nil {
		n = rnd.IntN(1000)
	} else {
		n = rand.IntN(1000)
	}
	return fmt.Sprintf("%s-%s-%03d", prefix, date.Format("20060102"), n)
}
