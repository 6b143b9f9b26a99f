package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"studio-booking/internal/data/repository"
	"studio-booking/internal/usecase"
	"studio-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Instructor *InstructorHandler
	Class      *ClassHandler
	Schedule   *ScheduleHandler
	Booking    *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, log),
		User:       NewUserHandler(service.User, log),
		Instructor: NewInstructorHandler(service.Instructor, log),
		Class:      NewClassHandler(service.Class, log),
		Schedule:   NewScheduleHandler(service.Schedule, log),
		Booking:    NewBookingHandler(service.Booking, log),
	}
}

// handleServiceError maps service errors onto the response envelope. Sentinel
// errors carry the status; everything else falls through on message shape and
// finally to a generic 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, repository.ErrClassNotFound),
		errors.Is(err, repository.ErrBookingNotFound),
		errors.Is(err, repository.ErrInstructorNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, repository.ErrClassFull):
		log.Warn(operation+" failed - class full",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case errors.Is(err, repository.ErrConflict):
		log.Warn(operation+" failed - transaction conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, "The class filled up while processing, please try again")

	case errors.Is(err, repository.ErrInvalidTransition):
		log.Warn(operation+" failed - invalid transition",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case errors.Is(err, repository.ErrEmailTaken):
		log.Warn(operation+" failed - email taken",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid credentials"):
		log.Warn(operation+" failed - unauthorized",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
