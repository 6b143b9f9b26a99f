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

type ClassService interface {
	// GetAvailableClasses returns the current week's bookable classes:
	// active, inside the week window and with at least one open slot.
	GetAvailableClasses(ctx context.Context, instructorID *string) ([]response.ClassResponse, error)
	GetClasses(ctx context.Context) ([]response.ClassResponse, error)
	CreateClass(ctx context.Context, req *request.CreateClassRequest) (*response.ClassResponse, error)
	UpdateClass(ctx context.Context, classID string, req *request.UpdateClassRequest) (*response.ClassResponse, error)
	DeleteClass(ctx context.Context, classID string) error
}

type classService struct {
	repo  *repository.Repository
	names *InstructorNames
	log   *zap.Logger
}

func NewClassService(
	repo *repository.Repository,
	names *InstructorNames,
	log *zap.Logger,
) ClassService {
	return &classService{
		repo:  repo,
		names: names,
		log:   log.With(zap.String("service", "class")),
	}
}

func (s *classService) GetAvailableClasses(ctx context.Context, instructorID *string) ([]response.ClassResponse, error) {
	var instructorFilter *uuid.UUID
	if instructorID != nil && *instructorID != "" && *instructorID != "any" {
		id, err := uuid.Parse(*instructorID)
		if err != nil {
			return nil, fmt.Errorf("invalid instructor filter")
		}
		instructorFilter = &id
	}

	weekStart, weekEnd := utils.CurrentWeekBounds(time.Now())

	classes, err := s.repo.Class.FindByWeek(ctx, weekStart, weekEnd, instructorFilter)
	if err != nil {
		s.log.Error("Failed to get available classes", zap.Error(err))
		return nil, fmt.Errorf("get available classes: %w", err)
	}

	return s.toClassResponses(ctx, entity.FilterOpen(classes)), nil
}

func (s *classService) GetClasses(ctx context.Context) ([]response.ClassResponse, error) {
	classes, err := s.repo.Class.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get classes", zap.Error(err))
		return nil, fmt.Errorf("get classes: %w", err)
	}

	return s.toClassResponses(ctx, classes), nil
}

func (s *classService) CreateClass(ctx context.Context, req *request.CreateClassRequest) (*response.ClassResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create class validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	instructorID, err := uuid.Parse(req.InstructorID)
	if err != nil {
		return nil, fmt.Errorf("invalid instructor id")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date")
	}

	now := time.Now()
	class := &entity.Class{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:        req.Title,
		InstructorID: instructorID,
		Date:         date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Capacity:     req.Capacity,
		BookedSlots:  0,
		IsActive:     true,
	}

	if err := s.repo.Class.Create(ctx, class); err != nil {
		s.log.Error("Failed to create class", zap.Error(err))
		return nil, fmt.Errorf("create class: %w", err)
	}

	s.log.Info("Class created",
		zap.String("class_id", class.ID.String()),
		zap.String("title", class.Title))

	resp := response.ClassToResponse(class, s.names.Resolve(ctx, class.InstructorID))
	return &resp, nil
}

func (s *classService) UpdateClass(ctx context.Context, classID string, req *request.UpdateClassRequest) (*response.ClassResponse, error) {
	id, err := uuid.Parse(classID)
	if err != nil {
		return nil, fmt.Errorf("invalid class id")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update class validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	class, err := s.repo.Class.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find class", zap.Error(err), zap.String("class_id", classID))
		return nil, fmt.Errorf("find class: %w", err)
	}
	if class == nil {
		return nil, fmt.Errorf("class %s: %w", classID, repository.ErrClassNotFound)
	}

	instructorID, err := uuid.Parse(req.InstructorID)
	if err != nil {
		return nil, fmt.Errorf("invalid instructor id")
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date")
	}

	// BookedSlots stays whatever the ledger last wrote.
	class.Title = req.Title
	class.InstructorID = instructorID
	class.Date = date
	class.StartTime = req.StartTime
	class.EndTime = req.EndTime
	class.Capacity = req.Capacity
	if req.IsActive != nil {
		class.IsActive = *req.IsActive
	}
	class.UpdatedAt = time.Now()

	if err := s.repo.Class.Update(ctx, class); err != nil {
		s.log.Error("Failed to update class", zap.Error(err), zap.String("class_id", classID))
		return nil, fmt.Errorf("update class: %w", err)
	}

	resp := response.ClassToResponse(class, s.names.Resolve(ctx, class.InstructorID))
	return &resp, nil
}

func (s *classService) DeleteClass(ctx context.Context, classID string) error {
	id, err := uuid.Parse(classID)
	if err != nil {
		return fmt.Errorf("invalid class id")
	}

	class, err := s.repo.Class.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find class", zap.Error(err), zap.String("class_id", classID))
		return fmt.Errorf("find class: %w", err)
	}
	if class == nil {
		return fmt.Errorf("class %s: %w", classID, repository.ErrClassNotFound)
	}

	// Bookings keep their snapshot rows; later cancellations against the
	// deleted class simply have nothing left to decrement.
	if err := s.repo.Class.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete class", zap.Error(err), zap.String("class_id", classID))
		return fmt.Errorf("delete class: %w", err)
	}

	s.log.Info("Class deleted", zap.String("class_id", classID))
	return nil
}

func (s *classService) toClassResponses(ctx context.Context, classes []*entity.Class) []response.ClassResponse {
	resp := make([]response.ClassResponse, 0, len(classes))
	for _, class := range classes {
		resp = append(resp, response.ClassToResponse(class, s.names.Resolve(ctx, class.InstructorID)))
	}
	return resp
}
