package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careernest/backend/internal/domain/assessment"
	"github.com/careernest/backend/internal/domain/shared"
)

// AssessmentCatalogService handles the browse side of assessments.
// Everything it returns is redacted; submissions are handled by the
// assessment application package.
type AssessmentCatalogService struct {
	assessmentRepo assessment.AssessmentRepository
	logger         *zap.Logger
}

// NewAssessmentCatalogService creates a new assessment catalog service
func NewAssessmentCatalogService(assessmentRepo assessment.AssessmentRepository, logger *zap.Logger) *AssessmentCatalogService {
	return &AssessmentCatalogService{
		assessmentRepo: assessmentRepo,
		logger:         logger,
	}
}

// CreateAssessmentInput contains input for creating an assessment
type CreateAssessmentInput struct {
	Title            string
	Description      string
	Category         string
	Difficulty       string
	TimeLimitSeconds int
	Questions        []assessment.Question
}

// Create adds a new assessment definition to the catalog
func (s *AssessmentCatalogService) Create(ctx context.Context, input CreateAssessmentInput) (*AssessmentDetailDTO, error) {
	def, err := assessment.NewAssessment(input.Title, input.Description, input.Category, input.Difficulty, input.Questions)
	if err != nil {
		return nil, err
	}
	if input.TimeLimitSeconds > 0 {
		if err := def.SetTimeLimit(input.TimeLimitSeconds); err != nil {
			return nil, err
		}
	}

	if err := s.assessmentRepo.Save(ctx, def); err != nil {
		s.logger.Error("Failed to save assessment", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create assessment")
	}

	s.logger.Info("Assessment created",
		zap.String("assessment_id", def.ID.String()),
		zap.String("title", def.Title),
		zap.Int("questions", len(def.Questions)))

	return toAssessmentDetailDTO(def), nil
}

// List returns a paginated list of assessment summaries
func (s *AssessmentCatalogService) List(ctx context.Context, filter shared.Filter) (*ListResult[AssessmentSummaryDTO], error) {
	defs, err := s.assessmentRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list assessments", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list assessments")
	}
	total, err := s.assessmentRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to count assessments", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list assessments")
	}

	dtos := make([]AssessmentSummaryDTO, len(defs))
	for i := range defs {
		dtos[i] = *toAssessmentSummaryDTO(&defs[i])
	}
	return newListResult(dtos, total, filter.Page, filter.PageSize), nil
}

// GetByID returns a single assessment with its questions redacted for
// pre-submission display
func (s *AssessmentCatalogService) GetByID(ctx context.Context, id uuid.UUID) (*AssessmentDetailDTO, error) {
	def, err := s.assessmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("ASSESSMENT_NOT_FOUND", "Assessment not found")
		}
		s.logger.Error("Failed to find assessment", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find assessment")
	}
	return toAssessmentDetailDTO(def), nil
}
