package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/careernest/backend/internal/domain/booking"
	"github.com/careernest/backend/internal/domain/shared"
	"github.com/careernest/backend/internal/infrastructure/persistence/models"
)

// GormCompletionRepository implements booking.CompletionRepository
// using GORM. The unique index on (user_id, module_id) resolves
// concurrent first completions; repeat completions update feedback
// and rating while keeping the original completed_at.
type GormCompletionRepository struct {
	db *gorm.DB
}

// NewGormCompletionRepository creates a new GormCompletionRepository
func NewGormCompletionRepository(db *gorm.DB) *GormCompletionRepository {
	return &GormCompletionRepository{db: db}
}

// FindByUserAndModule finds a user's completion of a module
func (r *GormCompletionRepository) FindByUserAndModule(ctx context.Context, userID, moduleID uuid.UUID) (*booking.ModuleCompletion, error) {
	var model models.ModuleCompletionModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND module_id = ?", userID, moduleID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUser finds a user's completions, newest first
func (r *GormCompletionRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]booking.ModuleCompletion, error) {
	var completionModels []models.ModuleCompletionModel
	query := r.db.WithContext(ctx).
		Model(&models.ModuleCompletionModel{}).
		Where("user_id = ?", userID).
		Order("completed_at DESC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		if offset < 0 {
			offset = 0
		}
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Find(&completionModels).Error; err != nil {
		return nil, err
	}

	completions := make([]booking.ModuleCompletion, len(completionModels))
	for i := range completionModels {
		completions[i] = *completionModels[i].ToDomain()
	}
	return completions, nil
}

// Upsert inserts a completion or, when the (user_id, module_id) pair
// already exists, updates feedback and rating in place. completed_at
// keeps the value from the first completion.
func (r *GormCompletionRepository) Upsert(ctx context.Context, completion *booking.ModuleCompletion) error {
	model := models.ModuleCompletionModelFromDomain(completion)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "module_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"feedback", "rating", "updated_at", "version",
			}),
		}).
		Create(model).Error
}

// CountByUser counts a user's completions
func (r *GormCompletionRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ModuleCompletionModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormCompletionRepository implements booking.CompletionRepository
var _ booking.CompletionRepository = (*GormCompletionRepository)(nil)
