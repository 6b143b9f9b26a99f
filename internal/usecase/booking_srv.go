package usecase

import (
	"context"
	"fmt"
	"time"

	"studio-booking/internal/data/entity"
	"studio-booking/internal/data/repository"
	"studio-booking/internal/dto/request"
	"studio-booking/internal/dto/response"
	"studio-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error)
	GetBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	DeleteBooking(ctx context.Context, bookingID string, classID *string) error
	GetOverview(ctx context.Context) (*response.OverviewResponse, error)
}

type bookingService struct {
	repo  *repository.Repository
	names *InstructorNames
	log   *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	names *InstructorNames,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		repo:  repo,
		names: names,
		log:   log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		return nil, fmt.Errorf("invalid class id")
	}

	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Notes:     req.Notes,
		Status:    entity.BookingStatusConfirmed,
	}

	// The ledger re-checks capacity and fills the class snapshot inside its
	// transaction.
	if _, err := s.repo.Ledger.CreateBooking(ctx, classID, booking); err != nil {
		s.log.Warn("Failed to create booking",
			zap.Error(err),
			zap.String("class_id", classID.String()))
		return nil, fmt.Errorf("create booking: %w", err)
	}

	resp := response.BookingToResponse(booking, s.names.Resolve(ctx, booking.InstructorID))
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]response.BookingResponse, error) {
	user, err := s.repo.UserProfile.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("profile %s: %w", userID.String(), repository.ErrUserNotFound)
	}

	bookings, err := s.repo.Booking.FindByEmail(ctx, user.Email)
	if err != nil {
		s.log.Error("Failed to get user bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	return s.toBookingResponses(ctx, bookings), nil
}

func (s *bookingService) GetBookings(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get bookings", zap.Error(err))
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	return response.NewPaginatedResponse(s.toBookingResponses(ctx, bookings), req.Page, req.Limit(), total), nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking id")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	classID, err := s.resolveClassID(ctx, id, req.ClassID)
	if err != nil {
		return nil, err
	}

	newStatus := entity.BookingStatus(req.Status)
	if err := s.repo.Ledger.TransitionStatus(ctx, id, newStatus, classID); err != nil {
		s.log.Warn("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("status", req.Status))
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", req.Status))

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to reload booking after status update", zap.Error(err), zap.String("booking_id", bookingID))
		return nil, fmt.Errorf("reload booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID, repository.ErrBookingNotFound)
	}

	resp := response.BookingToResponse(booking, s.names.Resolve(ctx, booking.InstructorID))
	return &resp, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string, classIDParam *string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("invalid booking id")
	}

	classID, err := s.resolveClassID(ctx, id, classIDParam)
	if err != nil {
		return err
	}

	if err := s.repo.Ledger.DeleteBooking(ctx, id, classID); err != nil {
		s.log.Warn("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", bookingID))
		return fmt.Errorf("delete booking: %w", err)
	}

	s.log.Info("Booking deleted", zap.String("booking_id", bookingID))
	return nil
}

func (s *bookingService) GetOverview(ctx context.Context) (*response.OverviewResponse, error) {
	totalClasses, err := s.repo.Class.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count classes", zap.Error(err))
		return nil, fmt.Errorf("count classes: %w", err)
	}

	activeBookings, err := s.repo.Booking.CountOccupying(ctx)
	if err != nil {
		s.log.Error("Failed to count active bookings", zap.Error(err))
		return nil, fmt.Errorf("count active bookings: %w", err)
	}

	registeredUsers, err := s.repo.UserProfile.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count user profiles", zap.Error(err))
		return nil, fmt.Errorf("count user profiles: %w", err)
	}

	return &response.OverviewResponse{
		TotalClasses:    int(totalClasses),
		ActiveBookings:  int(activeBookings),
		RegisteredUsers: registeredUsers,
	}, nil
}

// resolveClassID prefers an explicitly supplied class id and otherwise falls
// back to the booking's snapshot, so the ledger can release the slot without
// the caller knowing the class.
func (s *bookingService) resolveClassID(ctx context.Context, bookingID uuid.UUID, param *string) (*uuid.UUID, error) {
	if param != nil && *param != "" {
		id, err := uuid.Parse(*param)
		if err != nil {
			return nil, fmt.Errorf("invalid class id")
		}
		return &id, nil
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", bookingID.String(), repository.ErrBookingNotFound)
	}

	classID := booking.ClassID
	return &classID, nil
}

func (s *bookingService) toBookingResponses(ctx context.Context, bookings []*entity.Booking) []response.BookingResponse {
	resp := make([]response.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		resp = append(resp, response.BookingToResponse(booking, s.names.Resolve(ctx, booking.InstructorID)))
	}
	return resp
}
