package request

type CreateBookingRequest struct {
	FirstName   string  `json:"first_name" validate:"required,min=2,max=50"`
	LastName    string  `json:"last_name" validate:"required,min=2,max=50"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       string  `json:"phone" validate:"required,min=7,max=20"`
	ClassID     string  `json:"class_id" validate:"required,uuid4"`
	Notes       *string `json:"notes,omitempty" validate:"omitempty,max=500"`
	AgreePolicy bool    `json:"agree_policy" validate:"eq=true"`
	AgreeWaiver bool    `json:"agree_waiver" validate:"eq=true"`
}

type UpdateBookingStatusRequest struct {
	Status  string  `json:"status" validate:"required,oneof=confirmed cancelled"`
	ClassID *string `json:"class_id,omitempty" validate:"omitempty,uuid4"`
}
