package timeutil

import "time"

// DateLayout defines the canonical date-key format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// DefaultHorizonMonths is how far ahead schedule windows reach by default.
const DefaultHorizonMonths = 9

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// LocationOrUTC loads an IANA zone, falling back to UTC when the name is
// empty or unknown.
func LocationOrUTC(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DateKeyInZone renders the calendar date of an instant in the given IANA
// zone. Invalid zones fall back to the UTC calendar date; it never fails.
func DateKeyInZone(t time.Time, timeZone string) string {
	return t.In(LocationOrUTC(timeZone)).Format(DateLayout)
}

// Window is a [start, end] calendar-date range for schedule fetches.
type Window struct {
	StartISO string
	EndISO   string
}

// ComputeWindowStartEnd returns the fetch window beginning on the UTC
// calendar date of from and ending months later on the same day-of-month,
// with overflow handled by standard date arithmetic. months <= 0 uses
// DefaultHorizonMonths.
func ComputeWindowStartEnd(from time.Time, months int) Window {
	if months <= 0 {
		months = DefaultHorizonMonths
	}
	start := from.UTC()
	end := start.AddDate(0, months, 0)
	return Window{
		StartISO: FormatDate(start),
		EndISO:   FormatDate(end),
	}
}
