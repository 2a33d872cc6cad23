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

// GormMentorRepository implements catalog.MentorRepository using GORM
type GormMentorRepository struct {
	db *gorm.DB
}

// NewGormMentorRepository creates a new GormMentorRepository
func NewGormMentorRepository(db *gorm.DB) *GormMentorRepository {
	return &GormMentorRepository{db: db}
}

// FindByID finds a mentor by ID
func (r *GormMentorRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Mentor, error) {
	var model models.MentorModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindAll finds all mentors matching the filter
func (r *GormMentorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Mentor, error) {
	var mentorModels []models.MentorModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.MentorModel{}), filter, MentorSortFields, mentorSearch)

	if err := query.Find(&mentorModels).Error; err != nil {
		return nil, err
	}

	mentors := make([]catalog.Mentor, len(mentorModels))
	for i := range mentorModels {
		mentor, err := mentorModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		mentors[i] = *mentor
	}
	return mentors, nil
}

// Save creates or updates a mentor
func (r *GormMentorRepository) Save(ctx context.Context, mentor *catalog.Mentor) error {
	model := models.MentorModelFromDomain(mentor)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a mentor
func (r *GormMentorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.MentorModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts mentors matching the filter
func (r *GormMentorRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.MentorModel{}), filter, mentorSearch)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func mentorSearch(query *gorm.DB, pattern string) *gorm.DB {
	return query.Where("name ILIKE ? OR title ILIKE ? OR company ILIKE ?", pattern, pattern, pattern)
}

// Ensure GormMentorRepository implements catalog.MentorRepository
var _ catalog.MentorRepository = (*GormMentorRepository)(nil)
