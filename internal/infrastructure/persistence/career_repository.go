package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/careernest/backend/internal/domain/catalog"
	"github.com/careernest/backend/internal/domain/shared"
	"github.com/careernest/backend/internal/infrastructure/persistence/models"
)

// GormCareerRepository implements catalog.CareerRepository using GORM
type GormCareerRepository struct {
	db *gorm.DB
}

// NewGormCareerRepository creates a new GormCareerRepository
func NewGormCareerRepository(db *gorm.DB) *GormCareerRepository {
	return &GormCareerRepository{db: db}
}

// FindByID finds a career by ID
func (r *GormCareerRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Career, error) {
	var model models.CareerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindAll finds all careers matching the filter
func (r *GormCareerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Career, error) {
	var careerModels []models.CareerModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.CareerModel{}), filter, CareerSortFields, careerSearch)

	if err := query.Find(&careerModels).Error; err != nil {
		return nil, err
	}

	careers := make([]catalog.Career, len(careerModels))
	for i := range careerModels {
		career, err := careerModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		careers[i] = *career
	}
	return careers, nil
}

// FindByIDs finds multiple careers by their IDs
func (r *GormCareerRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Career, error) {
	if len(ids) == 0 {
		return []catalog.Career{}, nil
	}

	var careerModels []models.CareerModel
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&careerModels).Error; err != nil {
		return nil, err
	}

	careers := make([]catalog.Career, len(careerModels))
	for i := range careerModels {
		career, err := careerModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		careers[i] = *career
	}
	return careers, nil
}

// Save creates or updates a career
func (r *GormCareerRepository) Save(ctx context.Context, career *catalog.Career) error {
	model := models.CareerModelFromDomain(career)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a career
func (r *GormCareerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CareerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts careers matching the filter
func (r *GormCareerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.CareerModel{}), filter, careerSearch)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func careerSearch(query *gorm.DB, pattern string) *gorm.DB {
	return query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
}

// Ensure GormCareerRepository implements catalog.CareerRepository
var _ catalog.CareerRepository = (*GormCareerRepository)(nil)
