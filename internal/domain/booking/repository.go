package booking

import (
	"context"
	"time"

	"github.com/careernest/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SessionRepository defines the persistence operations for mentor
// sessions. SlotTaken reflects scheduled sessions only; cancelled and
// completed sessions free their slot.
type SessionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MentorSession, error)
	FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]MentorSession, error)
	FindByMentor(ctx context.Context, mentorID uuid.UUID, filter shared.Filter) ([]MentorSession, error)
	SlotTaken(ctx context.Context, mentorID uuid.UUID, date time.Time, startTime string) (bool, error)
	Save(ctx context.Context, session *MentorSession) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// CompletionRepository defines the persistence operations for module
// completions. Upsert must resolve concurrent first completions for
// the same (user, module) pair through the database's uniqueness
// constraint, not application locking.
type CompletionRepository interface {
	FindByUserAndModule(ctx context.Context, userID, moduleID uuid.UUID) (*ModuleCompletion, error)
	FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]ModuleCompletion, error)
	Upsert(ctx context.Context, completion *ModuleCompletion) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// BookmarkRepository defines the persistence operations for career bookmarks
type BookmarkRepository interface {
	Exists(ctx context.Context, userID, careerID uuid.UUID) (bool, error)
	Add(ctx context.Context, bookmark *CareerBookmark) error
	Remove(ctx context.Context, userID, careerID uuid.UUID) error
	ListCareerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
