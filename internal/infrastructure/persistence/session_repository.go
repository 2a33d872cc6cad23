package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/careernest/backend/internal/domain/booking"
	"github.com/careernest/backend/internal/domain/shared"
	"github.com/careernest/backend/internal/infrastructure/persistence/models"
)

// GormSessionRepository implements booking.SessionRepository using GORM.
// A partial unique index on (mentor_id, date, start_time) for scheduled
// rows backs the slot guarantee; Save surfaces the violation as
// shared.ErrAlreadyExists.
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GormSessionRepository
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// FindByID finds a mentor session by ID
func (r *GormSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.MentorSession, error) {
	var model models.MentorSessionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUser finds a user's sessions, upcoming first
func (r *GormSessionRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]booking.MentorSession, error) {
	return r.findSessions(ctx, "user_id = ?", userID, filter)
}

// FindByMentor finds a mentor's sessions, upcoming first
func (r *GormSessionRepository) FindByMentor(ctx context.Context, mentorID uuid.UUID, filter shared.Filter) ([]booking.MentorSession, error) {
	return r.findSessions(ctx, "mentor_id = ?", mentorID, filter)
}

func (r *GormSessionRepository) findSessions(ctx context.Context, cond string, id uuid.UUID, filter shared.Filter) ([]booking.MentorSession, error) {
	var sessionModels []models.MentorSessionModel
	query := r.db.WithContext(ctx).
		Model(&models.MentorSessionModel{}).
		Where(cond, id).
		Order("date DESC, start_time DESC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		if offset < 0 {
			offset = 0
		}
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Find(&sessionModels).Error; err != nil {
		return nil, err
	}

	sessions := make([]booking.MentorSession, len(sessionModels))
	for i := range sessionModels {
		sessions[i] = *sessionModels[i].ToDomain()
	}
	return sessions, nil
}

// SlotTaken reports whether a scheduled session already occupies the
// mentor's slot. Cancelled and completed sessions free their slot.
func (r *GormSessionRepository) SlotTaken(ctx context.Context, mentorID uuid.UUID, date time.Time, startTime string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.MentorSessionModel{}).
		Where("mentor_id = ? AND date = ? AND start_time = ? AND status = ?",
			mentorID, date, startTime, string(booking.SessionScheduled)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a mentor session. A concurrent booking of
// the same slot surfaces as shared.ErrAlreadyExists.
func (r *GormSessionRepository) Save(ctx context.Context, session *booking.MentorSession) error {
	model := models.MentorSessionModelFromDomain(session)
	return translateDuplicate(r.db.WithContext(ctx).Save(model).Error)
}

// CountByUser counts a user's sessions
func (r *GormSessionRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.MentorSessionModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormSessionRepository implements booking.SessionRepository
var _ booking.SessionRepository = (*GormSessionRepository)(nil)
