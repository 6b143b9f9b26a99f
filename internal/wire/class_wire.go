package wire

import (
	"studio-booking/internal/adaptor"
	"studio-booking/internal/data/repository"
	"studio-booking/pkg/middleware"
	"studio-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireClass(
	r chi.Router,
	classHandler *adaptor.ClassHandler,
	scheduleHandler *adaptor.ScheduleHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public
	r.Get("/api/classes/available", classHandler.GetAvailableClasses)
	r.Get("/api/schedule", scheduleHandler.GetWeeklySchedule)

	// Admin
	r.Route("/api/admin/classes", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.AdminRole, log))

		r.Get("/", classHandler.GetClasses)
		r.Post("/", classHandler.CreateClass)
		r.Put("/{id}", classHandler.UpdateClass)
		r.Delete("/{id}", classHandler.DeleteClass)
	})
}
