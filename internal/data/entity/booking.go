package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is one client's reservation of one class. The Class* fields are a
// snapshot captured at booking time; they are never reconciled against later
// edits or deletion of the class.
type Booking struct {
	BaseSimple
	FirstName      string        `db:"first_name"`
	LastName       string        `db:"last_name"`
	Email          string        `db:"email"`
	Phone          string        `db:"phone"`
	ClassID        uuid.UUID     `db:"class_id"`
	ClassTitle     string        `db:"class_title"`
	InstructorID   uuid.UUID     `db:"instructor_id"`
	ClassDate      time.Time     `db:"class_date"`
	ClassStartTime string        `db:"class_start_time"`
	ClassEndTime   string        `db:"class_end_time"`
	Notes          *string       `db:"notes"`
	Status         BookingStatus `db:"status"`
}
