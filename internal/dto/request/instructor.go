package request

type CreateInstructorRequest struct {
	Name string  `json:"name" validate:"required,min=2,max=100"`
	Bio  *string `json:"bio,omitempty" validate:"omitempty,max=1000"`
}

type UpdateInstructorRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Bio      *string `json:"bio,omitempty" validate:"omitempty,max=1000"`
	IsActive *bool   `json:"is_active,omitempty"`
}
