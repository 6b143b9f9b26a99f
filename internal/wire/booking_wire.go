package wire

import (
	"studio-booking/internal/adaptor"
	"studio-booking/internal/data/repository"
	"studio-booking/pkg/middleware"
	"studio-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Protected
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/api/booking", bookingHandler.CreateBooking)
	})

	// Admin
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.AdminRole, log))

		r.Get("/api/admin/overview", bookingHandler.GetOverview)

		r.Route("/api/admin/bookings", func(r chi.Router) {
			r.Get("/", bookingHandler.GetBookings)
			r.Put("/{id}/status", bookingHandler.UpdateBookingStatus)
			r.Delete("/{id}", bookingHandler.DeleteBooking)
		})
	})
}
