package entity

import (
	"github.com/google/uuid"
)

// AdminRole gates admin-only operations; keyed by the user profile ID.
type AdminRole struct {
	ID      uuid.UUID `db:"id"`
	IsAdmin bool      `db:"is_admin"`
}
