package adaptor

import (
	"net/http"

	"studio-booking/internal/usecase"
	"studio-booking/pkg/utils"

	"go.uber.org/zap"
)

type ScheduleHandler struct {
	service usecase.ScheduleService
	log     *zap.Logger
}

func NewScheduleHandler(service usecase.ScheduleService, log *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		service: service,
		log:     log.With(zap.String("handler", "schedule")),
	}
}

// GetWeeklySchedule handles GET /api/schedule (public)
func (h *ScheduleHandler) GetWeeklySchedule(w http.ResponseWriter, r *http.Request) {
	var instructorID *string
	if v := r.URL.Query().Get("instructor"); v != "" {
		instructorID = &v
	}

	schedule, err := h.service.GetWeeklySchedule(r.Context(), instructorID)
	if err != nil {
		handleServiceError(w, h.log, err, "get weekly schedule")
		return
	}

	utils.ResponseSuccess(w, "success", schedule)
}
