package response

import (
	"time"

	"studio-booking/internal/data/entity"
)

type BookingResponse struct {
	ID             string               `json:"id"`
	FirstName      string               `json:"first_name"`
	LastName       string               `json:"last_name"`
	Email          string               `json:"email"`
	Phone          string               `json:"phone"`
	ClassID        string               `json:"class_id"`
	ClassTitle     string               `json:"class_title"`
	InstructorName string               `json:"instructor_name"`
	ClassDate      string               `json:"class_date"`
	ClassStartTime string               `json:"class_start_time"`
	ClassEndTime   string               `json:"class_end_time"`
	Notes          *string              `json:"notes,omitempty"`
	Status         entity.BookingStatus `json:"status"`
	CreatedAt      time.Time            `json:"created_at"`
}

// BookingToResponse renders a booking from its snapshot fields. The
// instructor name is resolved by the caller and may be the raw id when the
// instructor no longer exists.
func BookingToResponse(booking *entity.Booking, instructorName string) BookingResponse {
	return BookingResponse{
		ID:             booking.ID.String(),
		FirstName:      booking.FirstName,
		LastName:       booking.LastName,
		Email:          booking.Email,
		Phone:          booking.Phone,
		ClassID:        booking.ClassID.String(),
		ClassTitle:     booking.ClassTitle,
		InstructorName: instructorName,
		ClassDate:      booking.ClassDate.Format("2006-01-02"),
		ClassStartTime: booking.ClassStartTime,
		ClassEndTime:   booking.ClassEndTime,
		Notes:          booking.Notes,
		Status:         booking.Status,
		CreatedAt:      booking.CreatedAt,
	}
}
