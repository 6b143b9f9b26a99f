package wire

import (
	"studio-booking/internal/adaptor"
	"studio-booking/internal/data/repository"
	"studio-booking/pkg/middleware"
	"studio-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireInstructor(
	r chi.Router,
	instructorHandler *adaptor.InstructorHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public
	r.Get("/api/instructors", instructorHandler.GetActiveInstructors)

	// Admin
	r.Route("/api/admin/instructors", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.AdminRole, log))

		r.Get("/", instructorHandler.GetInstructors)
		r.Post("/", instructorHandler.CreateInstructor)
		r.Put("/{id}", instructorHandler.UpdateInstructor)
		r.Delete("/{id}", instructorHandler.DeleteInstructor)
	})
}
