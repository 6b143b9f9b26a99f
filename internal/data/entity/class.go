package entity

import (
	"time"

	"github.com/google/uuid"
)

// Class is one scheduled studio session. BookedSlots is mutated only by the
// slot ledger; everywhere else it is read-only.
type Class struct {
	Base
	Title        string    `db:"title"`
	InstructorID uuid.UUID `db:"instructor_id"`
	Date         time.Time `db:"date"`
	StartTime    string    `db:"start_time"`
	EndTime      string    `db:"end_time"`
	Capacity     int       `db:"capacity"`
	BookedSlots  int       `db:"booked_slots"`
	IsActive     bool      `db:"is_active"`
}

func (c *Class) SpotsLeft() int {
	return c.Capacity - c.BookedSlots
}

func (c *Class) HasOpenSlots() bool {
	return c.BookedSlots < c.Capacity
}

// FilterOpen drops classes with no remaining capacity. Applied after retrieval
// so the availability query itself stays index-friendly.
func FilterOpen(classes []*Class) []*Class {
	var open []*Class
	for _, c := range classes {
		if c.HasOpenSlots() {
			open = append(open, c)
		}
	}
	return open
}
