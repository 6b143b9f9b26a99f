package adaptor

import (
	"encoding/json"
	"net/http"

	"studio-booking/internal/dto/request"
	"studio-booking/internal/usecase"
	"studio-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type InstructorHandler struct {
	service usecase.InstructorService
	log     *zap.Logger
}

func NewInstructorHandler(service usecase.InstructorService, log *zap.Logger) *InstructorHandler {
	return &InstructorHandler{
		service: service,
		log:     log.With(zap.String("handler", "instructor")),
	}
}

// GetActiveInstructors handles GET /api/instructors (public)
func (h *InstructorHandler) GetActiveInstructors(w http.ResponseWriter, r *http.Request) {
	instructors, err := h.service.GetActiveInstructors(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get instructors")
		return
	}

	utils.ResponseSuccess(w, "success", instructors)
}

// GetInstructors handles GET /api/admin/instructors (admin)
func (h *InstructorHandler) GetInstructors(w http.ResponseWriter, r *http.Request) {
	instructors, err := h.service.GetInstructors(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get instructors")
		return
	}

	utils.ResponseSuccess(w, "success", instructors)
}

// CreateInstructor handles POST /api/admin/instructors (admin)
func (h *InstructorHandler) CreateInstructor(w http.ResponseWriter, r *http.Request) {
	var req request.CreateInstructorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	instructor, err := h.service.CreateInstructor(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create instructor")
		return
	}

	utils.ResponseCreated(w, "success", instructor)
}

// UpdateInstructor handles PUT /api/admin/instructors/{id} (admin)
func (h *InstructorHandler) UpdateInstructor(w http.ResponseWriter, r *http.Request) {
	instructorID := chi.URLParam(r, "id")

	var req request.UpdateInstructorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	instructor, err := h.service.UpdateInstructor(r.Context(), instructorID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update instructor")
		return
	}

	utils.ResponseSuccess(w, "success", instructor)
}

// DeleteInstructor handles DELETE /api/admin/instructors/{id} (admin)
func (h *InstructorHandler) DeleteInstructor(w http.ResponseWriter, r *http.Request) {
	instructorID := chi.URLParam(r, "id")

	if err := h.service.DeleteInstructor(r.Context(), instructorID); err != nil {
		handleServiceError(w, h.log, err, "delete instructor")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
