package usecase

import (
	"testing"
	"time"

	"studio-booking/internal/data/entity"

	"github.com/google/uuid"
)

func classAt(t *testing.T, date string, start, end string, booked, capacity int) *entity.Class {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("parse date %s: %v", date, err)
	}
	return &entity.Class{
		Base:        entity.Base{ID: uuid.New()},
		Title:       "Class " + start,
		Date:        d,
		StartTime:   start,
		EndTime:     end,
		Capacity:    capacity,
		BookedSlots: booked,
		IsActive:    true,
	}
}

func rawName(id uuid.UUID) string { return id.String() }

func TestProjectWeekPlacesClassesByDayAndTime(t *testing.T) {
	classes := []*entity.Class{
		classAt(t, "2026-08-24", "09:00", "10:00", 2, 10), // Monday
		classAt(t, "2026-08-26", "18:30", "19:30", 0, 8),  // Wednesday
	}

	schedule := ProjectWeek(classes, rawName)

	cell := schedule.Grid["Monday"]["09:00"]
	if cell == nil {
		t.Fatalf("expected Monday 09:00 cell, got none")
	}
	if cell.SpotsLeft != 8 {
		t.Fatalf("expected 8 spots left, got %d", cell.SpotsLeft)
	}

	if schedule.Grid["Wednesday"]["18:30"] == nil {
		t.Fatalf("expected Wednesday 18:30 cell, got none")
	}
	if schedule.Grid["Tuesday"]["09:00"] != nil {
		t.Fatalf("unexpected cell on Tuesday")
	}
}

func TestProjectWeekFirstClassWinsCollision(t *testing.T) {
	first := classAt(t, "2026-08-25", "10:00", "11:00", 0, 5)
	second := classAt(t, "2026-08-25", "10:00", "11:00", 0, 5)

	schedule := ProjectWeek([]*entity.Class{first, second}, rawName)

	cell := schedule.Grid["Tuesday"]["10:00"]
	if cell == nil {
		t.Fatalf("expected Tuesday 10:00 cell, got none")
	}
	if cell.ClassID != first.ID.String() {
		t.Fatalf("expected first class %s to hold the cell, got %s", first.ID, cell.ClassID)
	}
}

func TestProjectWeekTimesSortedDistinct(t *testing.T) {
	classes := []*entity.Class{
		classAt(t, "2026-08-24", "18:00", "19:00", 0, 5),
		classAt(t, "2026-08-25", "07:30", "08:30", 0, 5),
		classAt(t, "2026-08-26", "18:00", "19:00", 0, 5),
	}

	schedule := ProjectWeek(classes, rawName)

	if len(schedule.Times) != 2 {
		t.Fatalf("expected 2 distinct times, got %d", len(schedule.Times))
	}
	if schedule.Times[0] != "07:30" || schedule.Times[1] != "18:00" {
		t.Fatalf("expected ascending times [07:30 18:00], got %v", schedule.Times)
	}
}

func TestProjectWeekIncludesFullClasses(t *testing.T) {
	full := classAt(t, "2026-08-28", "12:00", "13:00", 5, 5) // Friday

	schedule := ProjectWeek([]*entity.Class{full}, rawName)

	cell := schedule.Grid["Friday"]["12:00"]
	if cell == nil {
		t.Fatalf("expected full class to appear in the grid")
	}
	if cell.SpotsLeft != 0 {
		t.Fatalf("expected 0 spots left on full class, got %d", cell.SpotsLeft)
	}
}

func TestProjectWeekEmptyInput(t *testing.T) {
	schedule := ProjectWeek(nil, rawName)

	if len(schedule.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(schedule.Days))
	}
	if len(schedule.Times) != 0 {
		t.Fatalf("expected no times, got %v", schedule.Times)
	}
	for _, day := range schedule.Days {
		if len(schedule.Grid[day]) != 0 {
			t.Fatalf("expected empty grid for %s", day)
		}
	}
}
