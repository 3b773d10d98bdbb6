package types

import (
	"math"
	"time"
)

// DateLayout is the day-month-year form used across stage records.
const DateLayout = "02/01/2006"

// FormatDate renders t in the DD/MM/YYYY form used across stage records.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DelayDays returns the whole days elapsed from a DD/MM/YYYY date string
// to now, rounded up. Unparseable input yields 0 rather than an error;
// the delay is an indicator, not a ledger.
func DelayDays(dateStr string, now time.Time) int {
	start, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return 0
	}
	diff := now.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}
