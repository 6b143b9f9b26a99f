package usecase

import (
	"context"
	"sync"
	"time"

	"studio-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const instructorNamesTTL = 5 * time.Minute

// InstructorNames is a read-through cache of instructor display names. It is
// consulted only when rendering responses; booking and class mutations never
// read it, so a stale entry can at worst mislabel a row until the next
// reload. Unknown ids resolve to the raw id string.
type InstructorNames struct {
	repo repository.InstructorRepository
	log  *zap.Logger

	mu      sync.RWMutex
	names   map[uuid.UUID]string
	expires time.Time
}

func NewInstructorNames(repo repository.InstructorRepository, log *zap.Logger) *InstructorNames {
	return &InstructorNames{
		repo: repo,
		log:  log.With(zap.String("service", "instructor_names")),
	}
}

// Resolve returns the display name for an instructor id, reloading the cache
// when it is cold or expired. Lookup failures degrade to the raw id.
func (c *InstructorNames) Resolve(ctx context.Context, id uuid.UUID) string {
	c.mu.RLock()
	name, ok := c.names[id]
	fresh := time.Now().Before(c.expires)
	c.mu.RUnlock()

	if ok && fresh {
		return name
	}

	if err := c.reload(ctx); err != nil {
		c.log.Warn("Failed to reload instructor names", zap.Error(err))
		if ok {
			return name
		}
		return id.String()
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if name, ok := c.names[id]; ok {
		return name
	}
	return id.String()
}

// Invalidate drops the cache so the next Resolve reloads. Called after
// instructor mutations.
func (c *InstructorNames) Invalidate() {
	c.mu.Lock()
	c.expires = time.Time{}
	c.mu.Unlock()
}

func (c *InstructorNames) reload(ctx context.Context) error {
	instructors, err := c.repo.FindAll(ctx)
	if err != nil {
		return err
	}

	names := make(map[uuid.UUID]string, len(instructors))
	for _, instructor := range instructors {
		names[instructor.ID] = instructor.Name
	}

	c.mu.Lock()
	c.names = names
	c.expires = time.Now().Add(instructorNamesTTL)
	c.mu.Unlock()
	return nil
}
