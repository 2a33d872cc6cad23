package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/careernest/backend/internal/domain/booking"
)

// MentorSessionModel is the persistence model for booked sessions. A
// partial unique index on (mentor_id, date, start_time) where status is
// scheduled enforces slot exclusivity at the database level.
type MentorSessionModel struct {
	AggregateModel
	MentorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Date      time.Time `gorm:"type:date;not null"`
	StartTime string    `gorm:"type:varchar(5);not null"`
	EndTime   string    `gorm:"type:varchar(5);not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'scheduled';index"`
	Notes     string    `gorm:"type:text"`
}

// TableName returns the table name for MentorSessionModel
func (MentorSessionModel) TableName() string {
	return "mentor_sessions"
}

// ToDomain converts MentorSessionModel to domain MentorSession
func (m *MentorSessionModel) ToDomain() *booking.MentorSession {
	return &booking.MentorSession{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		MentorID:          m.MentorID,
		UserID:            m.UserID,
		Date:              m.Date,
		StartTime:         m.StartTime,
		EndTime:           m.EndTime,
		Status:            booking.SessionStatus(m.Status),
		Notes:             m.Notes,
	}
}

// MentorSessionModelFromDomain converts domain MentorSession to MentorSessionModel
func MentorSessionModelFromDomain(session *booking.MentorSession) *MentorSessionModel {
	model := &MentorSessionModel{
		MentorID:  session.MentorID,
		UserID:    session.UserID,
		Date:      session.Date,
		StartTime: session.StartTime,
		EndTime:   session.EndTime,
		Status:    string(session.Status),
		Notes:     session.Notes,
	}
	model.FromDomainAggregateRoot(session.BaseAggregateRoot)
	return model
}

// ModuleCompletionModel is the persistence model for module
// completions. Uniqueness of (user_id, module_id) is a table
// constraint; the repository upserts against it.
type ModuleCompletionModel struct {
	AggregateModel
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_completions_user_module"`
	ModuleID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_completions_user_module"`
	Feedback    string    `gorm:"type:text"`
	Rating      *int
	CompletedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for ModuleCompletionModel
func (ModuleCompletionModel) TableName() string {
	return "module_completions"
}

// ToDomain converts ModuleCompletionModel to domain ModuleCompletion
func (m *ModuleCompletionModel) ToDomain() *booking.ModuleCompletion {
	return &booking.ModuleCompletion{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		UserID:            m.UserID,
		ModuleID:          m.ModuleID,
		Feedback:          m.Feedback,
		Rating:            m.Rating,
		CompletedAt:       m.CompletedAt,
	}
}

// ModuleCompletionModelFromDomain converts domain ModuleCompletion to ModuleCompletionModel
func ModuleCompletionModelFromDomain(completion *booking.ModuleCompletion) *ModuleCompletionModel {
	model := &ModuleCompletionModel{
		UserID:      completion.UserID,
		ModuleID:    completion.ModuleID,
		Feedback:    completion.Feedback,
		Rating:      completion.Rating,
		CompletedAt: completion.CompletedAt,
	}
	model.FromDomainAggregateRoot(completion.BaseAggregateRoot)
	return model
}

// CareerBookmarkModel is the persistence model for career bookmarks.
// The pair (user_id, career_id) is the primary key.
type CareerBookmarkModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CareerID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for CareerBookmarkModel
func (CareerBookmarkModel) TableName() string {
	return "user_career_bookmarks"
}

// ToDomain converts CareerBookmarkModel to domain CareerBookmark
func (m *CareerBookmarkModel) ToDomain() *booking.CareerBookmark {
	return &booking.CareerBookmark{
		UserID:    m.UserID,
		CareerID:  m.CareerID,
		CreatedAt: m.CreatedAt,
	}
}

// CareerBookmarkModelFromDomain converts domain CareerBookmark to CareerBookmarkModel
func CareerBookmarkModelFromDomain(bookmark *booking.CareerBookmark) *CareerBookmarkModel {
	return &CareerBookmarkModel{
		UserID:    bookmark.UserID,
		CareerID:  bookmark.CareerID,
		CreatedAt: bookmark.CreatedAt,
	}
}
