package catalog

import (
	"context"

	"github.com/careernest/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CareerRepository defines the persistence operations for careers
type CareerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Career, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Career, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Career, error)
	Save(ctx context.Context, career *Career) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
