package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-02")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2024-01-02" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestDateKeyInZoneConvertsAcrossMidnight(t *testing.T) {
	// 03:00 UTC is still the previous evening in New York.
	instant := time.Date(2024, 7, 5, 3, 0, 0, 0, time.UTC)
	if got := DateKeyInZone(instant, "America/New_York"); got != "2024-07-04" {
		t.Fatalf("expected 2024-07-04, got %s", got)
	}
	if got := DateKeyInZone(instant, "UTC"); got != "2024-07-05" {
		t.Fatalf("expected 2024-07-05, got %s", got)
	}
}

func TestDateKeyInZoneFallsBackToUTC(t *testing.T) {
	instant := time.Date(2024, 7, 5, 3, 0, 0, 0, time.UTC)
	if got := DateKeyInZone(instant, "Not/AZone"); got != "2024-07-05" {
		t.Fatalf("expected UTC fallback date, got %s", got)
	}
	if got := DateKeyInZone(instant, ""); got != "2024-07-05" {
		t.Fatalf("expected UTC fallback for empty zone, got %s", got)
	}
}

func TestComputeWindowStartEndDefaultHorizon(t *testing.T) {
	from := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	w := ComputeWindowStartEnd(from, 0)
	if w.StartISO != "2024-03-15" {
		t.Fatalf("unexpected start %s", w.StartISO)
	}
	if w.EndISO != "2024-12-15" {
		t.Fatalf("expected nine months ahead, got %s", w.EndISO)
	}
}

func TestComputeWindowStartEndPreservesDayOfMonth(t *testing.T) {
	from := time.Date(2024, 10, 31, 0, 0, 0, 0, time.UTC)
	w := ComputeWindowStartEnd(from, 9)
	if w.StartISO != "2024-10-31" || w.EndISO != "2025-07-31" {
		t.Fatalf("unexpected window %+v", w)
	}
}
