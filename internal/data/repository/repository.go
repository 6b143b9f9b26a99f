package repository

import (
	"studio-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	UserProfile UserProfileRepository
	AdminRole   AdminRoleRepository
	Session     SessionRepository
	Instructor  InstructorRepository
	Class       ClassRepository
	Booking     BookingRepository
	Ledger      LedgerRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		UserProfile: NewUserProfileRepository(db, log),
		AdminRole:   NewAdminRoleRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Instructor:  NewInstructorRepository(db, log),
		Class:       NewClassRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		Ledger:      NewLedgerRepository(db, log),
	}
}
