package repository

import (
	"context"
	"fmt"

	"studio-booking/internal/data/entity"
	"studio-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type InstructorRepository interface {
	Create(ctx context.Context, instructor *entity.Instructor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Instructor, error)
	FindAll(ctx context.Context) ([]*entity.Instructor, error)
	FindActive(ctx context.Context) ([]*entity.Instructor, error)
	Update(ctx context.Context, instructor *entity.Instructor) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type instructorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewInstructorRepository(db database.PgxIface, log *zap.Logger) InstructorRepository {
	return &instructorRepository{
		db:  db,
		log: log.With(zap.String("repository", "instructor")),
	}
}

func (r *instructorRepository) Create(ctx context.Context, instructor *entity.Instructor) error {
	query := `
		INSERT INTO instructors (id, name, bio, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		instructor.ID,
		instructor.Name,
		instructor.Bio,
		instructor.IsActive,
		instructor.CreatedAt,
		instructor.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create instructor",
			zap.Error(err),
			zap.String("name", instructor.Name),
		)
		return fmt.Errorf("create instructor %s: %w", instructor.Name, err)
	}

	return nil
}

func (r *instructorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Instructor, error) {
	query := `
		SELECT id, name, bio, is_active, created_at, updated_at
		FROM instructors
		WHERE id = $1
	`

	var instructor entity.Instructor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&instructor.ID,
		&instructor.Name,
		&instructor.Bio,
		&instructor.IsActive,
		&instructor.CreatedAt,
		&instructor.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find instructor by ID",
			zap.Error(err),
			zap.String("instructor_id", id.String()),
		)
		return nil, fmt.Errorf("find instructor by ID %s: %w", id.String(), err)
	}

	return &instructor, nil
}

func (r *instructorRepository) FindAll(ctx context.Context) ([]*entity.Instructor, error) {
	return r.find(ctx, `
		SELECT id, name, bio, is_active, created_at, updated_at
		FROM instructors
		ORDER BY name
	`)
}

func (r *instructorRepository) FindActive(ctx context.Context) ([]*entity.Instructor, error) {
	return r.find(ctx, `
		SELECT id, name, bio, is_active, created_at, updated_at
		FROM instructors
		WHERE is_active = TRUE
		ORDER BY name
	`)
}

func (r *instructorRepository) find(ctx context.Context, query string) ([]*entity.Instructor, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find instructors", zap.Error(err))
		return nil, fmt.Errorf("find instructors: %w", err)
	}
	defer rows.Close()

	var instructors []*entity.Instructor
	for rows.Next() {
		var instructor entity.Instructor
		err := rows.Scan(
			&instructor.ID,
			&instructor.Name,
			&instructor.Bio,
			&instructor.IsActive,
			&instructor.CreatedAt,
			&instructor.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan instructor row", zap.Error(err))
			return nil, fmt.Errorf("scan instructor row: %w", err)
		}
		instructors = append(instructors, &instructor)
	}

	return instructors, rows.Err()
}

func (r *instructorRepository) Update(ctx context.Context, instructor *entity.Instructor) error {
	query := `
		UPDATE instructors
		SET name = $2, bio = $3, is_active = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		instructor.ID,
		instructor.Name,
		instructor.Bio,
		instructor.IsActive,
		instructor.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update instructor",
			zap.Error(err),
			zap.String("instructor_id", instructor.ID.String()),
		)
		return fmt.Errorf("update instructor %s: %w", instructor.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update instructor %s: %w", instructor.ID.String(), ErrInstructorNotFound)
	}

	return nil
}

func (r *instructorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Weak reference: classes and bookings keep the raw instructor id and
	// displays fall back to it.
	query := `DELETE FROM instructors WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete instructor",
			zap.Error(err),
			zap.String("instructor_id", id.String()),
		)
		return fmt.Errorf("delete instructor %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete instructor %s: %w", id.String(), ErrInstructorNotFound)
	}

	r.log.Info("Instructor deleted", zap.String("instructor_id", id.String()))
	return nil
}
