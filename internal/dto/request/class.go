package request

type CreateClassRequest struct {
	Title        string `json:"title" validate:"required,min=2,max=100"`
	InstructorID string `json:"instructor_id" validate:"required,uuid4"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime    string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime      string `json:"end_time" validate:"required,datetime=15:04"`
	Capacity     int    `json:"capacity" validate:"required,min=1"`
}

type UpdateClassRequest struct {
	Title        string `json:"title" validate:"required,min=2,max=100"`
	InstructorID string `json:"instructor_id" validate:"required,uuid4"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime    string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime      string `json:"end_time" validate:"required,datetime=15:04"`
	Capacity     int    `json:"capacity" validate:"required,min=1"`
	IsActive     *bool  `json:"is_active,omitempty"`
}
