package catalog

import (
	"context"

	"github.com/careernest/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// LearningModuleRepository defines the persistence operations for learning modules
type LearningModuleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LearningModule, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]LearningModule, error)
	Save(ctx context.Context, module *LearningModule) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
