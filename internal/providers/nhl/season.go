package nhl

import (
	"fmt"
	"time"
)

// seasonString renders the two-year NHL season identifier (e.g. "20242025")
// containing the given instant. The season starts in October: before
// October we are still in the previous-year/current-year pair.
func seasonString(t time.Time) string {
	year := t.Year()
	if t.Month() < time.October {
		return fmt.Sprintf("%d%d", year-1, year)
	}
	return fmt.Sprintf("%d%d", year, year+1)
}
