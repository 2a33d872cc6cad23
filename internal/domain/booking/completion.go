package booking

import (
	"strings"
	"time"

	"github.com/careernest/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ModuleCompletion records that a user finished a learning module.
// At most one row exists per (UserID, ModuleID); repeated completions
// update feedback and rating in place via the repository's upsert.
type ModuleCompletion struct {
	shared.BaseAggregateRoot
	UserID      uuid.UUID
	ModuleID    uuid.UUID
	Feedback    string
	Rating      *int
	CompletedAt time.Time
}

// NewModuleCompletion creates a completion record
func NewModuleCompletion(userID, moduleID uuid.UUID, feedback string, rating *int) (*ModuleCompletion, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "User ID cannot be empty")
	}
	if moduleID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_MODULE_ID", "Module ID cannot be empty")
	}
	if err := validateRating(rating); err != nil {
		return nil, err
	}

	return &ModuleCompletion{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		ModuleID:          moduleID,
		Feedback:          strings.TrimSpace(feedback),
		Rating:            rating,
		CompletedAt:       time.Now(),
	}, nil
}

// UpdateFeedback replaces feedback and rating on a repeat completion
func (c *ModuleCompletion) UpdateFeedback(feedback string, rating *int) error {
	if err := validateRating(rating); err != nil {
		return err
	}

	c.Feedback = strings.TrimSpace(feedback)
	c.Rating = rating
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

func validateRating(rating *int) error {
	if rating == nil {
		return nil
	}
	if *rating < 1 || *rating > 5 {
		return shared.NewDomainError("INVALID_RATING", "Rating must be between 1 and 5")
	}
	return nil
}

// CareerBookmark marks a career a user saved for later. Bookmarking is
// a toggle: a second bookmark call removes the row.
type CareerBookmark struct {
	UserID    uuid.UUID
	CareerID  uuid.UUID
	CreatedAt time.Time
}

// NewCareerBookmark creates a bookmark
func NewCareerBookmark(userID, careerID uuid.UUID) (*CareerBookmark, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "User ID cannot be empty")
	}
	if careerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CAREER_ID", "Career ID cannot be empty")
	}

	return &CareerBookmark{
		UserID:    userID,
		CareerID:  careerID,
		CreatedAt: time.Now(),
	}, nil
}
