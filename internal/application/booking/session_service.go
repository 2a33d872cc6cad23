// Package booking implements mentorship session scheduling, learning
// module completions and career bookmarks.
package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careernest/backend/internal/domain/booking"
	"github.com/careernest/backend/internal/domain/catalog"
	"github.com/careernest/backend/internal/domain/shared"
)

// SessionService handles booking and lifecycle of mentorship sessions
type SessionService struct {
	sessionRepo booking.SessionRepository
	mentorRepo  catalog.MentorRepository
	logger      *zap.Logger
}

// NewSessionService creates a new session service
func NewSessionService(
	sessionRepo booking.SessionRepository,
	mentorRepo catalog.MentorRepository,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		mentorRepo:  mentorRepo,
		logger:      logger,
	}
}

// ScheduleInput contains input for booking a session
type ScheduleInput struct {
	UserID    uuid.UUID
	MentorID  uuid.UUID
	Date      time.Time
	StartTime string
	EndTime   string
	Notes     string
}

// SessionDTO is the session view returned by the booking services
type SessionDTO struct {
	ID        uuid.UUID `json:"id"`
	MentorID  uuid.UUID `json:"mentor_id"`
	UserID    uuid.UUID `json:"user_id"`
	Date      time.Time `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toSessionDTO(session *booking.MentorSession) *SessionDTO {
	return &SessionDTO{
		ID:        session.ID,
		MentorID:  session.MentorID,
		UserID:    session.UserID,
		Date:      session.Date,
		StartTime: session.StartTime,
		EndTime:   session.EndTime,
		Status:    string(session.Status),
		Notes:     session.Notes,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
}

// Schedule books a session with a mentor. The slot must fall inside the
// mentor's weekly availability and must not collide with another
// scheduled session.
func (s *SessionService) Schedule(ctx context.Context, input ScheduleInput) (*SessionDTO, error) {
	mentor, err := s.mentorRepo.FindByID(ctx, input.MentorID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("MENTOR_NOT_FOUND", "Mentor not found")
		}
		s.logger.Error("Failed to find mentor", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to schedule session")
	}

	session, err := booking.NewMentorSession(input.UserID, input.MentorID, booking.Slot{
		Date:      input.Date,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
	}, input.Notes)
	if err != nil {
		return nil, err
	}

	if !mentor.AcceptsSlot(session.Weekday(), session.StartTime, session.EndTime) {
		return nil, shared.NewDomainError("OUTSIDE_AVAILABILITY", "Mentor is not available at the requested time")
	}

	taken, err := s.sessionRepo.SlotTaken(ctx, input.MentorID, session.Date, session.StartTime)
	if err != nil {
		s.logger.Error("Failed to check slot availability", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to schedule session")
	}
	if taken {
		return nil, shared.ErrSlotUnavailable
	}

	if err := s.sessionRepo.Save(ctx, session); err != nil {
		// Two users racing for the same slot: one insert wins, the other
		// trips the uniqueness constraint.
		if errors.Is(err, shared.ErrAlreadyExists) {
			return nil, shared.ErrSlotUnavailable
		}
		s.logger.Error("Failed to save session", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to schedule session")
	}

	s.logger.Info("Session scheduled",
		zap.String("session_id", session.ID.String()),
		zap.String("mentor_id", input.MentorID.String()),
		zap.String("user_id", input.UserID.String()),
		zap.Time("date", session.Date),
		zap.String("start_time", session.StartTime))

	return toSessionDTO(session), nil
}

// SessionListDTO is the paginated session list
type SessionListDTO struct {
	Sessions []SessionDTO `json:"sessions"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

// ListUserSessions returns the user's booked sessions
func (s *SessionService) ListUserSessions(ctx context.Context, userID uuid.UUID, filter shared.Filter) (*SessionListDTO, error) {
	sessions, err := s.sessionRepo.FindByUser(ctx, userID, filter)
	if err != nil {
		s.logger.Error("Failed to list sessions", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list sessions")
	}
	total, err := s.sessionRepo.CountByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to count sessions", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list sessions")
	}

	dtos := make([]SessionDTO, len(sessions))
	for i := range sessions {
		dtos[i] = *toSessionDTO(&sessions[i])
	}
	return &SessionListDTO{
		Sessions: dtos,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// Cancel cancels a scheduled session, freeing its slot. Only the user
// who booked the session may cancel it.
func (s *SessionService) Cancel(ctx context.Context, userID, sessionID uuid.UUID) (*SessionDTO, error) {
	return s.transition(ctx, userID, sessionID, (*booking.MentorSession).Cancel, "Session cancelled")
}

// Complete marks a scheduled session as completed
func (s *SessionService) Complete(ctx context.Context, userID, sessionID uuid.UUID) (*SessionDTO, error) {
	return s.transition(ctx, userID, sessionID, (*booking.MentorSession).Complete, "Session completed")
}

func (s *SessionService) transition(
	ctx context.Context,
	userID, sessionID uuid.UUID,
	apply func(*booking.MentorSession) error,
	logMsg string,
) (*SessionDTO, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("SESSION_NOT_FOUND", "Session not found")
		}
		s.logger.Error("Failed to find session", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update session")
	}
	if session.UserID != userID {
		return nil, shared.ErrForbidden
	}

	if err := apply(session); err != nil {
		return nil, err
	}

	if err := s.sessionRepo.Save(ctx, session); err != nil {
		s.logger.Error("Failed to save session", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update session")
	}

	s.logger.Info(logMsg, zap.String("session_id", sessionID.String()))

	return toSessionDTO(session), nil
}
