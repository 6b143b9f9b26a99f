package utils

import (
	"testing"
	"time"
)

func TestCurrentWeekBounds_Midweek(t *testing.T) {
	// Wednesday 2025-06-04
	now := time.Date(2025, 6, 4, 14, 30, 0, 0, time.UTC)

	start, end := CurrentWeekBounds(now)

	wantStart := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 6, 8, 23, 59, 59, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Fatalf("start = %v, want %v", start, wantStart)
	}
	if !end.Equal(wantEnd) {
		t.Fatalf("end = %v, want %v", end, wantEnd)
	}
}

func TestCurrentWeekBounds_Sunday(t *testing.T) {
	// Sunday 2025-06-08 belongs to the week starting Monday 2025-06-02
	now := time.Date(2025, 6, 8, 9, 0, 0, 0, time.UTC)

	start, end := CurrentWeekBounds(now)

	if !start.Equal(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start = %v, want Monday 2025-06-02", start)
	}
	if !end.Equal(time.Date(2025, 6, 8, 23, 59, 59, 0, time.UTC)) {
		t.Fatalf("end = %v, want Sunday 2025-06-08 23:59:59", end)
	}
}

func TestCurrentWeekBounds_Monday(t *testing.T) {
	// A Monday maps onto itself
	now := time.Date(2025, 6, 2, 0, 0, 1, 0, time.UTC)

	start, _ := CurrentWeekBounds(now)

	if !start.Equal(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("start = %v, want same Monday", start)
	}
}
