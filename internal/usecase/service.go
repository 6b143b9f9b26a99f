package usecase

import (
	"studio-booking/internal/data/repository"
	"studio-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth       AuthService
	User       UserService
	Instructor InstructorService
	Class      ClassService
	Schedule   ScheduleService
	Booking    BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	names := NewInstructorNames(repo.Instructor, log)

	return &Service{
		Auth:       NewAuthService(repo, config, log),
		User:       NewUserService(repo.UserProfile, log),
		Instructor: NewInstructorService(repo, names, log),
		Class:      NewClassService(repo, names, log),
		Schedule:   NewScheduleService(repo, names, log),
		Booking:    NewBookingService(repo, names, log),
	}
}
