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

type UserProfileRepository interface {
	Create(ctx context.Context, user *entity.UserProfile) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error)
	FindByEmail(ctx context.Context, email string) (*entity.UserProfile, error)
	Count(ctx context.Context) (int, error)
}

type userProfileRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserProfileRepository(db database.PgxIface, log *zap.Logger) UserProfileRepository {
	return &userProfileRepository{
		db:  db,
		log: log.With(zap.String("repository", "user_profile")),
	}
}

const userProfileColumns = `id, first_name, last_name, email, phone, password_hash, created_at`

func scanUserProfile(row pgx.Row) (*entity.UserProfile, error) {
	var user entity.UserProfile
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Phone,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userProfileRepository) Create(ctx context.Context, user *entity.UserProfile) (uuid.UUID, error) {
	query := `
		INSERT INTO user_profiles (id, first_name, last_name, email, phone, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Phone,
		user.PasswordHash,
		user.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create user profile", zap.Error(err))
		return uuid.Nil, fmt.Errorf("create user profile: %w", err)
	}

	return user.ID, nil
}

func (r *userProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error) {
	query := `SELECT ` + userProfileColumns + ` FROM user_profiles WHERE id = $1`

	user, err := scanUserProfile(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user profile by id", zap.Error(err))
		return nil, fmt.Errorf("find user profile by id: %w", err)
	}

	return user, nil
}

func (r *userProfileRepository) FindByEmail(ctx context.Context, email string) (*entity.UserProfile, error) {
	query := `SELECT ` + userProfileColumns + ` FROM user_profiles WHERE email = $1`

	user, err := scanUserProfile(r.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user profile by email", zap.Error(err))
		return nil, fmt.Errorf("find user profile by email: %w", err)
	}

	return user, nil
}

func (r *userProfileRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM user_profiles`).Scan(&total); err != nil {
		r.log.Error("Failed to count user profiles", zap.Error(err))
		return 0, fmt.Errorf("count user profiles: %w", err)
	}
	return total, nil
}
