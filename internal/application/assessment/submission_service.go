// Package assessment implements the submission side of skill
// assessments: grading submissions against stored definitions and
// keeping the per-user result history.
package assessment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careernest/backend/internal/domain/assessment"
	"github.com/careernest/backend/internal/domain/shared"
)

// SubmissionService grades submissions and records results
type SubmissionService struct {
	assessmentRepo assessment.AssessmentRepository
	resultRepo     assessment.ResultRepository
	logger         *zap.Logger
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(
	assessmentRepo assessment.AssessmentRepository,
	resultRepo assessment.ResultRepository,
	logger *zap.Logger,
) *SubmissionService {
	return &SubmissionService{
		assessmentRepo: assessmentRepo,
		resultRepo:     resultRepo,
		logger:         logger,
	}
}

// SubmitInput contains one candidate submission
type SubmitInput struct {
	UserID           uuid.UUID
	AssessmentID     uuid.UUID
	Answers          []assessment.SubmittedAnswer
	TimeTakenSeconds *int
}

// ResultDTO is the graded result returned to the candidate
type ResultDTO struct {
	ID                  uuid.UUID                 `json:"id"`
	AssessmentID        uuid.UUID                 `json:"assessment_id"`
	GradedAnswers       []assessment.GradedAnswer `json:"graded_answers"`
	Score               int                       `json:"score"`
	TotalPossiblePoints int                       `json:"total_possible_points"`
	Percentage          int                       `json:"percentage"`
	TimeTakenSeconds    *int                      `json:"time_taken_seconds,omitempty"`
	CompletedAt         time.Time                 `json:"completed_at"`
}

func toResultDTO(result *assessment.AssessmentResult) *ResultDTO {
	answers := result.GradedAnswers
	if answers == nil {
		answers = []assessment.GradedAnswer{}
	}
	return &ResultDTO{
		ID:                  result.ID,
		AssessmentID:        result.AssessmentID,
		GradedAnswers:       answers,
		Score:               result.Score,
		TotalPossiblePoints: result.TotalPossiblePoints,
		Percentage:          result.Percentage,
		TimeTakenSeconds:    result.TimeTakenSeconds,
		CompletedAt:         result.CompletedAt,
	}
}

// Submit grades the submission and appends it to the user's history.
// Retakes are allowed without limit; every submission produces a new
// result row.
func (s *SubmissionService) Submit(ctx context.Context, input SubmitInput) (*ResultDTO, error) {
	def, err := s.assessmentRepo.FindByID(ctx, input.AssessmentID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("ASSESSMENT_NOT_FOUND", "Assessment not found")
		}
		s.logger.Error("Failed to load assessment", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load assessment")
	}

	outcome, err := assessment.Grade(def, input.Answers)
	if err != nil {
		// A stored definition failing structural validation is a server
		// fault, not a client error. Log it loudly.
		s.logger.Error("Stored assessment failed validation during grading",
			zap.String("assessment_id", input.AssessmentID.String()),
			zap.Error(err))
		return nil, err
	}
	if outcome.Degenerate {
		s.logger.Warn("Graded assessment with zero possible points",
			zap.String("assessment_id", input.AssessmentID.String()))
	}

	result, err := assessment.NewAssessmentResult(input.UserID, input.AssessmentID, outcome, input.TimeTakenSeconds)
	if err != nil {
		return nil, err
	}

	if err := s.resultRepo.Save(ctx, result); err != nil {
		s.logger.Error("Failed to save assessment result", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save result")
	}

	s.logger.Info("Assessment submitted",
		zap.String("user_id", input.UserID.String()),
		zap.String("assessment_id", input.AssessmentID.String()),
		zap.Int("score", result.Score),
		zap.Int("percentage", result.Percentage))

	return toResultDTO(result), nil
}

// ResultListDTO is the paginated result history
type ResultListDTO struct {
	Results  []ResultDTO `json:"results"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// ListUserResults returns the user's result history, newest first
func (s *SubmissionService) ListUserResults(ctx context.Context, userID uuid.UUID, filter shared.Filter) (*ResultListDTO, error) {
	results, err := s.resultRepo.FindByUser(ctx, userID, filter)
	if err != nil {
		s.logger.Error("Failed to list results", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list results")
	}
	total, err := s.resultRepo.CountByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to count results", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list results")
	}

	dtos := make([]ResultDTO, len(results))
	for i := range results {
		dtos[i] = *toResultDTO(&results[i])
	}
	return &ResultListDTO{
		Results:  dtos,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
