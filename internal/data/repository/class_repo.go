package repository

import (
	"context"
	"fmt"
	"time"

	"studio-booking/internal/data/entity"
	"studio-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ClassRepository interface {
	Create(ctx context.Context, class *entity.Class) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, error)
	FindAll(ctx context.Context) ([]*entity.Class, error)
	Update(ctx context.Context, class *entity.Class) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)

	// FindByWeek returns active classes with date inside [weekStart, weekEnd],
	// optionally restricted to one instructor, ordered by date then start time
	// with creation order as the stable tie-break.
	FindByWeek(ctx context.Context, weekStart, weekEnd time.Time, instructorID *uuid.UUID) ([]*entity.Class, error)
}

type classRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewClassRepository(db database.PgxIface, log *zap.Logger) ClassRepository {
	return &classRepository{
		db:  db,
		log: log.With(zap.String("repository", "class")),
	}
}

const classColumns = `id, title, instructor_id, date, start_time, end_time, capacity, booked_slots, is_active, created_at, updated_at`

func scanClass(row pgx.Row) (*entity.Class, error) {
	var class entity.Class
	err := row.Scan(
		&class.ID,
		&class.Title,
		&class.InstructorID,
		&class.Date,
		&class.StartTime,
		&class.EndTime,
		&class.Capacity,
		&class.BookedSlots,
		&class.IsActive,
		&class.CreatedAt,
		&class.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) Create(ctx context.Context, class *entity.Class) error {
	query := `
		INSERT INTO classes (id, title, instructor_id, date, start_time, end_time, capacity, booked_slots, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		class.ID,
		class.Title,
		class.InstructorID,
		class.Date,
		class.StartTime,
		class.EndTime,
		class.Capacity,
		class.BookedSlots,
		class.IsActive,
		class.CreatedAt,
		class.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create class",
			zap.Error(err),
			zap.String("title", class.Title),
			zap.String("instructor_id", class.InstructorID.String()),
		)
		return fmt.Errorf("create class %s: %w", class.Title, err)
	}

	return nil
}

func (r *classRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes WHERE id = $1`

	class, err := scanClass(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find class by ID",
			zap.Error(err),
			zap.String("class_id", id.String()),
		)
		return nil, fmt.Errorf("find class by ID %s: %w", id.String(), err)
	}

	return class, nil
}

func (r *classRepository) FindAll(ctx context.Context) ([]*entity.Class, error) {
	query := `SELECT ` + classColumns + ` FROM classes ORDER BY date, start_time, created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find classes", zap.Error(err))
		return nil, fmt.Errorf("find classes: %w", err)
	}
	defer rows.Close()

	return collectClasses(rows)
}

func (r *classRepository) FindByWeek(ctx context.Context, weekStart, weekEnd time.Time, instructorID *uuid.UUID) ([]*entity.Class, error) {
	query := `
		SELECT ` + classColumns + `
		FROM classes
		WHERE date >= $1 AND date <= $2 AND is_active = TRUE
	`
	args := []any{weekStart, weekEnd}

	if instructorID != nil {
		query += ` AND instructor_id = $3`
		args = append(args, *instructorID)
	}

	query += ` ORDER BY date, start_time, created_at`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find classes by week",
			zap.Error(err),
			zap.Time("week_start", weekStart),
			zap.Time("week_end", weekEnd),
		)
		return nil, fmt.Errorf("find classes for week of %s: %w", weekStart.Format("2006-01-02"), err)
	}
	defer rows.Close()

	return collectClasses(rows)
}

func (r *classRepository) Update(ctx context.Context, class *entity.Class) error {
	// booked_slots is deliberately absent; only the ledger touches it.
	query := `
		UPDATE classes
		SET title = $2, instructor_id = $3, date = $4, start_time = $5,
		    end_time = $6, capacity = $7, is_active = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		class.ID,
		class.Title,
		class.InstructorID,
		class.Date,
		class.StartTime,
		class.EndTime,
		class.Capacity,
		class.IsActive,
		class.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update class",
			zap.Error(err),
			zap.String("class_id", class.ID.String()),
		)
		return fmt.Errorf("update class %s: %w", class.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update class %s: %w", class.ID.String(), ErrClassNotFound)
	}

	return nil
}

func (r *classRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// No cascade: bookings keep their snapshot and dangling class_id.
	query := `DELETE FROM classes WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete class",
			zap.Error(err),
			zap.String("class_id", id.String()),
		)
		return fmt.Errorf("delete class %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete class %s: %w", id.String(), ErrClassNotFound)
	}

	r.log.Info("Class deleted", zap.String("class_id", id.String()))
	return nil
}

func (r *classRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM classes`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count classes", zap.Error(err))
		return 0, fmt.Errorf("count classes: %w", err)
	}
	return count, nil
}

func collectClasses(rows pgx.Rows) ([]*entity.Class, error) {
	var classes []*entity.Class
	for rows.Next() {
		class, err := scanClass(rows)
		if err != nil {
			return nil, fmt.Errorf("scan class row: %w", err)
		}
		classes = append(classes, class)
	}
	return classes, rows.Err()
}
