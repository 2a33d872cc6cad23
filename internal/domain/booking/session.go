// Package booking records outcomes of users interacting with mentors
// and learning modules: session bookings, module completions and
// career bookmarks.
package booking

import (
	"strings"
	"time"

	"github.com/careernest/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SessionStatus is the lifecycle state of a mentorship session
type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// Slot identifies a concrete bookable time window on a calendar day.
// Times are "HH:MM"; the date carries no time-of-day component.
type Slot struct {
	Date      time.Time `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

// MentorSession is a booked mentorship session
type MentorSession struct {
	shared.BaseAggregateRoot
	MentorID  uuid.UUID
	UserID    uuid.UUID
	Date      time.Time
	StartTime string
	EndTime   string
	Status    SessionStatus
	Notes     string
}

// NewMentorSession books a slot for a user with a mentor. Slot overlap
// against existing bookings is the repository's concern; this
// constructor validates shape only.
func NewMentorSession(userID, mentorID uuid.UUID, slot Slot, notes string) (*MentorSession, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "User ID cannot be empty")
	}
	if mentorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_MENTOR_ID", "Mentor ID cannot be empty")
	}
	if slot.Date.IsZero() {
		return nil, shared.NewDomainError("INVALID_SLOT", "Session date is required")
	}
	if !validClockTime(slot.StartTime) || !validClockTime(slot.EndTime) {
		return nil, shared.NewDomainError("INVALID_SLOT", "Times must be in HH:MM format")
	}
	if slot.EndTime <= slot.StartTime {
		return nil, shared.NewDomainError("INVALID_SLOT", "End time must be after start time")
	}

	return &MentorSession{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		MentorID:          mentorID,
		UserID:            userID,
		Date:              slot.Date.Truncate(24 * time.Hour),
		StartTime:         slot.StartTime,
		EndTime:           slot.EndTime,
		Status:            SessionScheduled,
		Notes:             strings.TrimSpace(notes),
	}, nil
}

// Cancel moves a scheduled session to cancelled
func (s *MentorSession) Cancel() error {
	if s.Status != SessionScheduled {
		return shared.NewDomainError("INVALID_STATE", "Only scheduled sessions can be cancelled")
	}

	s.Status = SessionCancelled
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// Complete moves a scheduled session to completed
func (s *MentorSession) Complete() error {
	if s.Status != SessionScheduled {
		return shared.NewDomainError("INVALID_STATE", "Only scheduled sessions can be completed")
	}

	s.Status = SessionCompleted
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// IsActive reports whether the session still occupies its slot
func (s *MentorSession) IsActive() bool {
	return s.Status == SessionScheduled
}

// Weekday returns the day of week of the booked date
func (s *MentorSession) Weekday() time.Weekday {
	return s.Date.Weekday()
}

func validClockTime(value string) bool {
	if len(value) != 5 {
		return false
	}
	_, err := time.Parse("15:04", value)
	return err == nil
}
