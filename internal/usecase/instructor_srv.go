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

type InstructorService interface {
	GetActiveInstructors(ctx context.Context) ([]response.InstructorResponse, error)
	GetInstructors(ctx context.Context) ([]response.InstructorResponse, error)
	CreateInstructor(ctx context.Context, req *request.CreateInstructorRequest) (*response.InstructorResponse, error)
	UpdateInstructor(ctx context.Context, instructorID string, req *request.UpdateInstructorRequest) (*response.InstructorResponse, error)
	DeleteInstructor(ctx context.Context, instructorID string) error
}

type instructorService struct {
	repo  *repository.Repository
	names *InstructorNames
	log   *zap.Logger
}

func NewInstructorService(
	repo *repository.Repository,
	names *InstructorNames,
	log *zap.Logger,
) InstructorService {
	return &instructorService{
		repo:  repo,
		names: names,
		log:   log.With(zap.String("service", "instructor")),
	}
}

func (s *instructorService) GetActiveInstructors(ctx context.Context) ([]response.InstructorResponse, error) {
	instructors, err := s.repo.Instructor.FindActive(ctx)
	if err != nil {
		s.log.Error("Failed to get active instructors", zap.Error(err))
		return nil, fmt.Errorf("get active instructors: %w", err)
	}

	return toInstructorResponses(instructors), nil
}

func (s *instructorService) GetInstructors(ctx context.Context) ([]response.InstructorResponse, error) {
	instructors, err := s.repo.Instructor.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get instructors", zap.Error(err))
		return nil, fmt.Errorf("get instructors: %w", err)
	}

	return toInstructorResponses(instructors), nil
}

func (s *instructorService) CreateInstructor(ctx context.Context, req *request.CreateInstructorRequest) (*response.InstructorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create instructor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	instructor := &entity.Instructor{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:     req.Name,
		Bio:      req.Bio,
		IsActive: true,
	}

	if err := s.repo.Instructor.Create(ctx, instructor); err != nil {
		s.log.Error("Failed to create instructor", zap.Error(err))
		return nil, fmt.Errorf("create instructor: %w", err)
	}
	s.names.Invalidate()

	s.log.Info("Instructor created",
		zap.String("instructor_id", instructor.ID.String()),
		zap.String("name", instructor.Name))

	resp := response.InstructorToResponse(instructor)
	return &resp, nil
}

func (s *instructorService) UpdateInstructor(ctx context.Context, instructorID string, req *request.UpdateInstructorRequest) (*response.InstructorResponse, error) {
	id, err := uuid.Parse(instructorID)
	if err != nil {
		return nil, fmt.Errorf("invalid instructor id")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update instructor validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	instructor, err := s.repo.Instructor.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find instructor", zap.Error(err), zap.String("instructor_id", instructorID))
		return nil, fmt.Errorf("find instructor: %w", err)
	}
	if instructor == nil {
		return nil, fmt.Errorf("instructor %s: %w", instructorID, repository.ErrInstructorNotFound)
	}

	instructor.Name = req.Name
	instructor.Bio = req.Bio
	if req.IsActive != nil {
		instructor.IsActive = *req.IsActive
	}
	instructor.UpdatedAt = time.Now()

	if err := s.repo.Instructor.Update(ctx, instructor); err != nil {
		s.log.Error("Failed to update instructor", zap.Error(err), zap.String("instructor_id", instructorID))
		return nil, fmt.Errorf("update instructor: %w", err)
	}
	s.names.Invalidate()

	resp := response.InstructorToResponse(instructor)
	return &resp, nil
}

func (s *instructorService) DeleteInstructor(ctx context.Context, instructorID string) error {
	id, err := uuid.Parse(instructorID)
	if err != nil {
		return fmt.Errorf("invalid instructor id")
	}

	instructor, err := s.repo.Instructor.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find instructor", zap.Error(err), zap.String("instructor_id", instructorID))
		return fmt.Errorf("find instructor: %w", err)
	}
	if instructor == nil {
		return fmt.Errorf("instructor %s: %w", instructorID, repository.ErrInstructorNotFound)
	}

	// Classes and bookings keep referencing the id; their rendering falls
	// back to the raw id once the name lookup misses.
	if err := s.repo.Instructor.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete instructor", zap.Error(err), zap.String("instructor_id", instructorID))
		return fmt.Errorf("delete instructor: %w", err)
	}
	s.names.Invalidate()

	s.log.Info("Instructor deleted", zap.String("instructor_id", instructorID))
	return nil
}

func toInstructorResponses(instructors []*entity.Instructor) []response.InstructorResponse {
	resp := make([]response.InstructorResponse, 0, len(instructors))
	for _, instructor := range instructors {
		resp = append(resp, response.InstructorToResponse(instructor))
	}
	return resp
}
