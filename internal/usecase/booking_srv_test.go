package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"studio-booking/internal/data/entity"
	"studio-booking/internal/data/repository"
	"studio-booking/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stubLedger struct {
	transitionErr error
}

func (s *stubLedger) CreateBooking(ctx context.Context, classID uuid.UUID, booking *entity.Booking) (uuid.UUID, error) {
	return booking.ID, nil
}

func (s *stubLedger) TransitionStatus(ctx context.Context, bookingID uuid.UUID, newStatus entity.BookingStatus, classID *uuid.UUID) error {
	return s.transitionErr
}

func (s *stubLedger) DeleteBooking(ctx context.Context, bookingID uuid.UUID, classID *uuid.UUID) error {
	return nil
}

type stubBookings struct {
	byID    *entity.Booking
	findErr error
}

func (s *stubBookings) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return s.byID, s.findErr
}

func (s *stubBookings) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	return nil, nil
}

func (s *stubBookings) Count(ctx context.Context) (int64, error) { return 0, nil }

func (s *stubBookings) FindByEmail(ctx context.Context, email string) ([]*entity.Booking, error) {
	return nil, nil
}

func (s *stubBookings) CountOccupying(ctx context.Context) (int64, error) { return 0, nil }

type stubInstructors struct{}

func (s *stubInstructors) Create(ctx context.Context, instructor *entity.Instructor) error {
	return nil
}

func (s *stubInstructors) FindByID(ctx context.Context, id uuid.UUID) (*entity.Instructor, error) {
	return nil, nil
}

func (s *stubInstructors) FindAll(ctx context.Context) ([]*entity.Instructor, error) {
	return nil, nil
}

func (s *stubInstructors) FindActive(ctx context.Context) ([]*entity.Instructor, error) {
	return nil, nil
}

func (s *stubInstructors) Update(ctx context.Context, instructor *entity.Instructor) error {
	return nil
}

func (s *stubInstructors) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func newBookingServiceWith(bookings *stubBookings, ledger *stubLedger) BookingService {
	instructors := &stubInstructors{}
	repo := &repository.Repository{
		Booking:    bookings,
		Ledger:     ledger,
		Instructor: instructors,
	}
	names := NewInstructorNames(instructors, zap.NewNop())
	return NewBookingService(repo, names, zap.NewNop())
}

func cancelRequest() *request.UpdateBookingStatusRequest {
	classID := uuid.New().String()
	return &request.UpdateBookingStatusRequest{
		Status:  string(entity.BookingStatusCancelled),
		ClassID: &classID,
	}
}

func TestUpdateBookingStatusReloadFailureReturnsError(t *testing.T) {
	bookings := &stubBookings{findErr: fmt.Errorf("connection reset")}
	svc := newBookingServiceWith(bookings, &stubLedger{})

	resp, err := svc.UpdateBookingStatus(context.Background(), uuid.New().String(), cancelRequest())
	if err == nil {
		t.Fatalf("expected an error when the reload fails, got nil")
	}
	if resp != nil {
		t.Fatalf("expected no response alongside the error, got %+v", resp)
	}
}

func TestUpdateBookingStatusReloadMissingReturnsNotFound(t *testing.T) {
	svc := newBookingServiceWith(&stubBookings{}, &stubLedger{})

	_, err := svc.UpdateBookingStatus(context.Background(), uuid.New().String(), cancelRequest())
	if !errors.Is(err, repository.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestUpdateBookingStatusReturnsUpdatedBooking(t *testing.T) {
	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		FirstName:  "Dana",
		LastName:   "Reyes",
		Email:      "dana@example.com",
		Phone:      "5550001",
		ClassID:    uuid.New(),
		ClassTitle: "Morning Flow",
		ClassDate:  time.Now(),
		Status:     entity.BookingStatusCancelled,
	}
	svc := newBookingServiceWith(&stubBookings{byID: booking}, &stubLedger{})

	resp, err := svc.UpdateBookingStatus(context.Background(), booking.ID.String(), cancelRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp == nil || resp.Status != entity.BookingStatusCancelled {
		t.Fatalf("expected cancelled booking response, got %+v", resp)
	}
}

func TestUpdateBookingStatusLedgerErrorPropagates(t *testing.T) {
	ledger := &stubLedger{transitionErr: repository.ErrInvalidTransition}
	svc := newBookingServiceWith(&stubBookings{}, ledger)

	_, err := svc.UpdateBookingStatus(context.Background(), uuid.New().String(), cancelRequest())
	if !errors.Is(err, repository.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}
