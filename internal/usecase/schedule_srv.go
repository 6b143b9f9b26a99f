package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"studio-booking/internal/data/entity"
	"studio-booking/internal/data/repository"
	"studio-booking/internal/dto/response"
	"studio-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// weekdayNames in display order, Monday first.
var weekdayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

type ScheduleService interface {
	GetWeeklySchedule(ctx context.Context, instructorID *string) (*response.WeekSchedule, error)
}

type scheduleService struct {
	repo  *repository.Repository
	names *InstructorNames
	log   *zap.Logger
}

func NewScheduleService(
	repo *repository.Repository,
	names *InstructorNames,
	log *zap.Logger,
) ScheduleService {
	return &scheduleService{
		repo:  repo,
		names: names,
		log:   log.With(zap.String("service", "schedule")),
	}
}

func (s *scheduleService) GetWeeklySchedule(ctx context.Context, instructorID *string) (*response.WeekSchedule, error) {
	var instructorFilter *uuid.UUID
	if instructorID != nil && *instructorID != "" && *instructorID != "any" {
		id, err := uuid.Parse(*instructorID)
		if err != nil {
			return nil, fmt.Errorf("invalid instructor filter")
		}
		instructorFilter = &id
	}

	weekStart, weekEnd := utils.CurrentWeekBounds(time.Now())

	// The grid includes full classes; only the booking list hides them.
	classes, err := s.repo.Class.FindByWeek(ctx, weekStart, weekEnd, instructorFilter)
	if err != nil {
		s.log.Error("Failed to get weekly schedule", zap.Error(err))
		return nil, fmt.Errorf("get weekly schedule: %w", err)
	}

	schedule := ProjectWeek(classes, func(id uuid.UUID) string {
		return s.names.Resolve(ctx, id)
	})
	schedule.WeekStart = weekStart.Format("2006-01-02")
	schedule.WeekEnd = weekEnd.Format("2006-01-02")
	return schedule, nil
}

// ProjectWeek folds classes into a weekday-by-start-time grid. When two
// classes collide on the same day and start time, the first one in input
// order wins the cell. Times lists every distinct start time, ascending;
// lexicographic order matches chronological order for zero-padded HH:MM.
func ProjectWeek(classes []*entity.Class, resolveName func(uuid.UUID) string) *response.WeekSchedule {
	grid := make(map[string]map[string]*response.ScheduleCell, len(weekdayNames))
	for _, day := range weekdayNames {
		grid[day] = make(map[string]*response.ScheduleCell)
	}

	timeSet := make(map[string]struct{})
	for _, class := range classes {
		day := class.Date.Weekday().String()
		cells, ok := grid[day]
		if !ok {
			continue
		}
		timeSet[class.StartTime] = struct{}{}
		if _, taken := cells[class.StartTime]; taken {
			continue
		}
		cells[class.StartTime] = &response.ScheduleCell{
			ClassID:        class.ID.String(),
			Title:          class.Title,
			InstructorName: resolveName(class.InstructorID),
			EndTime:        class.EndTime,
			SpotsLeft:      class.SpotsLeft(),
		}
	}

	times := make([]string, 0, len(timeSet))
	for t := range timeSet {
		times = append(times, t)
	}
	sort.Strings(times)

	return &response.WeekSchedule{
		Days:  weekdayNames,
		Times: times,
		Grid:  grid,
	}
}
