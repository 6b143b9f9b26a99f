package repository

import (
	"context"
	"fmt"

	"studio-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AdminRoleRepository interface {
	IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error)
}

type adminRoleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAdminRoleRepository(db database.PgxIface, log *zap.Logger) AdminRoleRepository {
	return &adminRoleRepository{
		db:  db,
		log: log.With(zap.String("repository", "admin_role")),
	}
}

func (r *adminRoleRepository) IsAdmin(ctx context.Context, userID uuid.UUID) (bool, error) {
	query := `SELECT is_admin FROM admin_roles WHERE id = $1`

	var isAdmin bool
	err := r.db.QueryRow(ctx, query, userID).Scan(&isAdmin)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		r.log.Error("Failed to check admin role", zap.Error(err))
		return false, fmt.Errorf("check admin role: %w", err)
	}

	return isAdmin, nil
}
