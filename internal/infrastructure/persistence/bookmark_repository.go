package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/careernest/backend/internal/domain/booking"
	"github.com/careernest/backend/internal/infrastructure/persistence/models"
)

// GormBookmarkRepository implements booking.BookmarkRepository using
// GORM. Bookmarks are keyed by (user_id, career_id); Add surfaces a
// concurrent duplicate as shared.ErrAlreadyExists.
type GormBookmarkRepository struct {
	db *gorm.DB
}

// NewGormBookmarkRepository creates a new GormBookmarkRepository
func NewGormBookmarkRepository(db *gorm.DB) *GormBookmarkRepository {
	return &GormBookmarkRepository{db: db}
}

// Exists reports whether a bookmark exists
func (r *GormBookmarkRepository) Exists(ctx context.Context, userID, careerID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CareerBookmarkModel{}).
		Where("user_id = ? AND career_id = ?", userID, careerID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Add inserts a bookmark
func (r *GormBookmarkRepository) Add(ctx context.Context, bookmark *booking.CareerBookmark) error {
	model := models.CareerBookmarkModelFromDomain(bookmark)
	return translateDuplicate(r.db.WithContext(ctx).Create(model).Error)
}

// Remove deletes a bookmark. Removing an absent bookmark is a no-op.
func (r *GormBookmarkRepository) Remove(ctx context.Context, userID, careerID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND career_id = ?", userID, careerID).
		Delete(&models.CareerBookmarkModel{}).Error
}

// ListCareerIDs returns the IDs of a user's bookmarked careers,
// most recently bookmarked first
func (r *GormBookmarkRepository) ListCareerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&models.CareerBookmarkModel{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("career_id", &ids).Error; err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}

// Ensure GormBookmarkRepository implements booking.BookmarkRepository
var _ booking.BookmarkRepository = (*GormBookmarkRepository)(nil)
