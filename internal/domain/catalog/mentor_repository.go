package catalog

import (
	"context"

	"github.com/careernest/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MentorRepository defines the persistence operations for mentors
type MentorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Mentor, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Mentor, error)
	Save(ctx context.Context, mentor *Mentor) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
