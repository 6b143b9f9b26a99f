package response

// ScheduleCell is one class slot in the weekly grid.
type ScheduleCell struct {
	ClassID        string `json:"class_id"`
	Title          string `json:"title"`
	InstructorName string `json:"instructor_name"`
	EndTime        string `json:"end_time"`
	SpotsLeft      int    `json:"spots_left"`
}

// WeekSchedule lays classes out as weekday name -> start time -> cell.
// Times holds the distinct start times in ascending order so clients can
// render rows without re-sorting.
type WeekSchedule struct {
	WeekStart string                              `json:"week_start"`
	WeekEnd   string                              `json:"week_end"`
	Days      []string                            `json:"days"`
	Times     []string                            `json:"times"`
	Grid      map[string]map[string]*ScheduleCell `json:"grid"`
}

type OverviewResponse struct {
	TotalClasses    int `json:"total_classes"`
	ActiveBookings  int `json:"active_bookings"`
	RegisteredUsers int `json:"registered_users"`
}
