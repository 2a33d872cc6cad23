package assessment

import (
	"context"

	"github.com/careernest/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AssessmentRepository defines the persistence operations for
// assessment definitions. FindByID returns the full definition with
// correctness flags; redaction happens at the application boundary.
type AssessmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Assessment, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Assessment, error)
	Save(ctx context.Context, assessment *Assessment) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ResultRepository defines the persistence operations for assessment
// results. Results are append-only.
type ResultRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AssessmentResult, error)
	// FindByUser returns a user's result history, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]AssessmentResult, error)
	Save(ctx context.Context, result *AssessmentResult) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
