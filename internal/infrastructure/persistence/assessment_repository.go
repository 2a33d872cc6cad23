package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/careernest/backend/internal/domain/assessment"
	"github.com/careernest/backend/internal/domain/shared"
	"github.com/careernest/backend/internal/infrastructure/persistence/models"
)

// GormAssessmentRepository implements assessment.AssessmentRepository using GORM
type GormAssessmentRepository struct {
	db *gorm.DB
}

// NewGormAssessmentRepository creates a new GormAssessmentRepository
func NewGormAssessmentRepository(db *gorm.DB) *GormAssessmentRepository {
	return &GormAssessmentRepository{db: db}
}

// FindByID finds an assessment by ID, including correctness flags
func (r *GormAssessmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*assessment.Assessment, error) {
	var model models.AssessmentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindAll finds all assessments matching the filter
func (r *GormAssessmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]assessment.Assessment, error) {
	var assessmentModels []models.AssessmentModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.AssessmentModel{}), filter, AssessmentSortFields, assessmentSearch)

	if err := query.Find(&assessmentModels).Error; err != nil {
		return nil, err
	}

	assessments := make([]assessment.Assessment, len(assessmentModels))
	for i := range assessmentModels {
		def, err := assessmentModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		assessments[i] = *def
	}
	return assessments, nil
}

// Save creates or updates an assessment
func (r *GormAssessmentRepository) Save(ctx context.Context, def *assessment.Assessment) error {
	model := models.AssessmentModelFromDomain(def)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes an assessment
func (r *GormAssessmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AssessmentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts assessments matching the filter
func (r *GormAssessmentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.AssessmentModel{}), filter, assessmentSearch)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func assessmentSearch(query *gorm.DB, pattern string) *gorm.DB {
	return query.Where("title ILIKE ? OR description ILIKE ? OR category ILIKE ?", pattern, pattern, pattern)
}

// GormResultRepository implements assessment.ResultRepository using GORM.
// Results are append-only; there is no delete.
type GormResultRepository struct {
	db *gorm.DB
}

// NewGormResultRepository creates a new GormResultRepository
func NewGormResultRepository(db *gorm.DB) *GormResultRepository {
	return &GormResultRepository{db: db}
}

// FindByID finds an assessment result by ID
func (r *GormResultRepository) FindByID(ctx context.Context, id uuid.UUID) (*assessment.AssessmentResult, error) {
	var model models.AssessmentResultModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindByUser returns a user's result history, newest first
func (r *GormResultRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]assessment.AssessmentResult, error) {
	var resultModels []models.AssessmentResultModel
	query := r.db.WithContext(ctx).
		Model(&models.AssessmentResultModel{}).
		Where("user_id = ?", userID).
		Order("completed_at DESC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		if offset < 0 {
			offset = 0
		}
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Find(&resultModels).Error; err != nil {
		return nil, err
	}

	results := make([]assessment.AssessmentResult, len(resultModels))
	for i := range resultModels {
		result, err := resultModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		results[i] = *result
	}
	return results, nil
}

// Save persists a new assessment result
func (r *GormResultRepository) Save(ctx context.Context, result *assessment.AssessmentResult) error {
	model := models.AssessmentResultModelFromDomain(result)
	return r.db.WithContext(ctx).Save(model).Error
}

// CountByUser counts a user's assessment results
func (r *GormResultRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AssessmentResultModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure repositories implement their domain interfaces
var (
	_ assessment.AssessmentRepository = (*GormAssessmentRepository)(nil)
	_ assessment.ResultRepository     = (*GormResultRepository)(nil)
)
