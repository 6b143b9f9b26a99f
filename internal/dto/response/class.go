package response

import (
	"time"

	"studio-booking/internal/data/entity"
)

type ClassResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	InstructorID   string    `json:"instructor_id"`
	InstructorName string    `json:"instructor_name"`
	Date           string    `json:"date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	Capacity       int       `json:"capacity"`
	BookedSlots    int       `json:"booked_slots"`
	SpotsLeft      int       `json:"spots_left"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

func ClassToResponse(class *entity.Class, instructorName string) ClassResponse {
	return ClassResponse{
		ID:             class.ID.String(),
		Title:          class.Title,
		InstructorID:   class.InstructorID.String(),
		InstructorName: instructorName,
		Date:           class.Date.Format("2006-01-02"),
		StartTime:      class.StartTime,
		EndTime:        class.EndTime,
		Capacity:       class.Capacity,
		BookedSlots:    class.BookedSlots,
		SpotsLeft:      class.SpotsLeft(),
		IsActive:       class.IsActive,
		CreatedAt:      class.CreatedAt,
	}
}
