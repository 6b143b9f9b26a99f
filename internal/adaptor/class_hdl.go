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

type ClassHandler struct {
	service usecase.ClassService
	log     *zap.Logger
}

func NewClassHandler(service usecase.ClassService, log *zap.Logger) *ClassHandler {
	return &ClassHandler{
		service: service,
		log:     log.With(zap.String("handler", "class")),
	}
}

// GetAvailableClasses handles GET /api/classes/available (public)
func (h *ClassHandler) GetAvailableClasses(w http.ResponseWriter, r *http.Request) {
	var instructorID *string
	if v := r.URL.Query().Get("instructor"); v != "" {
		instructorID = &v
	}

	classes, err := h.service.GetAvailableClasses(r.Context(), instructorID)
	if err != nil {
		handleServiceError(w, h.log, err, "get available classes")
		return
	}

	utils.ResponseSuccess(w, "success", classes)
}

// GetClasses handles GET /api/admin/classes (admin)
func (h *ClassHandler) GetClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.service.GetClasses(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get classes")
		return
	}

	utils.ResponseSuccess(w, "success", classes)
}

// CreateClass handles POST /api/admin/classes (admin)
func (h *ClassHandler) CreateClass(w http.ResponseWriter, r *http.Request) {
	var req request.CreateClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	class, err := h.service.CreateClass(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create class")
		return
	}

	utils.ResponseCreated(w, "success", class)
}

// UpdateClass handles PUT /api/admin/classes/{id} (admin)
func (h *ClassHandler) UpdateClass(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "id")

	var req request.UpdateClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	class, err := h.service.UpdateClass(r.Context(), classID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update class")
		return
	}

	utils.ResponseSuccess(w, "success", class)
}

// DeleteClass handles DELETE /api/admin/classes/{id} (admin)
func (h *ClassHandler) DeleteClass(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "id")

	if err := h.service.DeleteClass(r.Context(), classID); err != nil {
		handleServiceError(w, h.log, err, "delete class")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
