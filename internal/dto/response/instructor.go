package response

import (
	"time"

	"studio-booking/internal/data/entity"
)

type InstructorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Bio       *string   `json:"bio,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func InstructorToResponse(instructor *entity.Instructor) InstructorResponse {
	return InstructorResponse{
		ID:        instructor.ID.String(),
		Name:      instructor.Name,
		Bio:       instructor.Bio,
		IsActive:  instructor.IsActive,
		CreatedAt: instructor.CreatedAt,
	}
}
