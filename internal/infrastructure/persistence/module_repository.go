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

// GormModuleRepository implements catalog.LearningModuleRepository using GORM
type GormModuleRepository struct {
	db *gorm.DB
}

// NewGormModuleRepository creates a new GormModuleRepository
func NewGormModuleRepository(db *gorm.DB) *GormModuleRepository {
	return &GormModuleRepository{db: db}
}

// FindByID finds a learning module by ID
func (r *GormModuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.LearningModule, error) {
	var model models.LearningModuleModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindAll finds all learning modules matching the filter
func (r *GormModuleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.LearningModule, error) {
	var moduleModels []models.LearningModuleModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.LearningModuleModel{}), filter, ModuleSortFields, moduleSearch)

	if err := query.Find(&moduleModels).Error; err != nil {
		return nil, err
	}

	modules := make([]catalog.LearningModule, len(moduleModels))
	for i := range moduleModels {
		module, err := moduleModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		modules[i] = *module
	}
	return modules, nil
}

// Save creates or updates a learning module
func (r *GormModuleRepository) Save(ctx context.Context, module *catalog.LearningModule) error {
	model := models.LearningModuleModelFromDomain(module)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a learning module
func (r *GormModuleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.LearningModuleModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts learning modules matching the filter
func (r *GormModuleRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.LearningModuleModel{}), filter, moduleSearch)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func moduleSearch(query *gorm.DB, pattern string) *gorm.DB {
	return query.Where("title ILIKE ? OR description ILIKE ? OR category ILIKE ?", pattern, pattern, pattern)
}

// Ensure GormModuleRepository implements catalog.LearningModuleRepository
var _ catalog.LearningModuleRepository = (*GormModuleRepository)(nil)
