package assessment

import (
	"time"

	"github.com/careernest/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AssessmentResult is a persisted, immutable record of one graded
// submission. Retakes append new results; existing rows never change.
type AssessmentResult struct {
	shared.BaseAggregateRoot
	UserID              uuid.UUID
	AssessmentID        uuid.UUID
	GradedAnswers       []GradedAnswer
	Score               int
	TotalPossiblePoints int
	Percentage          int
	TimeTakenSeconds    *int
	CompletedAt         time.Time
}

// NewAssessmentResult wraps a grading outcome into a persistable result
func NewAssessmentResult(userID, assessmentID uuid.UUID, outcome GradingOutcome, timeTakenSeconds *int) (*AssessmentResult, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER_ID", "User ID cannot be empty")
	}
	if assessmentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ASSESSMENT_ID", "Assessment ID cannot be empty")
	}
	if timeTakenSeconds != nil && *timeTakenSeconds < 0 {
		return nil, shared.NewDomainError("INVALID_TIME_TAKEN", "Time taken cannot be negative")
	}

	return &AssessmentResult{
		BaseAggregateRoot:   shared.NewBaseAggregateRoot(),
		UserID:              userID,
		AssessmentID:        assessmentID,
		GradedAnswers:       outcome.GradedAnswers,
		Score:               outcome.Score,
		TotalPossiblePoints: outcome.TotalPossiblePoints,
		Percentage:          outcome.Percentage,
		TimeTakenSeconds:    timeTakenSeconds,
		CompletedAt:         time.Now(),
	}, nil
}
