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

// CompletionService records learning module completions
type CompletionService struct {
	completionRepo booking.CompletionRepository
	moduleRepo     catalog.LearningModuleRepository
	logger         *zap.Logger
}

// NewCompletionService creates a new completion service
func NewCompletionService(
	completionRepo booking.CompletionRepository,
	moduleRepo catalog.LearningModuleRepository,
	logger *zap.Logger,
) *CompletionService {
	return &CompletionService{
		completionRepo: completionRepo,
		moduleRepo:     moduleRepo,
		logger:         logger,
	}
}

// CompleteModuleInput contains input for marking a module complete
type CompleteModuleInput struct {
	UserID   uuid.UUID
	ModuleID uuid.UUID
	Feedback string
	Rating   *int
}

// CompletionDTO is the completion view returned by the booking services
type CompletionDTO struct {
	ID          uuid.UUID `json:"id"`
	ModuleID    uuid.UUID `json:"module_id"`
	Feedback    string    `json:"feedback,omitempty"`
	Rating      *int      `json:"rating,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
}

func toCompletionDTO(completion *booking.ModuleCompletion) *CompletionDTO {
	return &CompletionDTO{
		ID:          completion.ID,
		ModuleID:    completion.ModuleID,
		Feedback:    completion.Feedback,
		Rating:      completion.Rating,
		CompletedAt: completion.CompletedAt,
	}
}

// Complete marks a module as completed by the user. Completing an
// already-completed module updates the feedback and keeps the original
// completion time; it never creates a second row.
func (s *CompletionService) Complete(ctx context.Context, input CompleteModuleInput) (*CompletionDTO, error) {
	if _, err := s.moduleRepo.FindByID(ctx, input.ModuleID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("MODULE_NOT_FOUND", "Learning module not found")
		}
		s.logger.Error("Failed to find module", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to complete module")
	}

	completion, err := booking.NewModuleCompletion(input.UserID, input.ModuleID, input.Feedback, input.Rating)
	if err != nil {
		return nil, err
	}

	if err := s.completionRepo.Upsert(ctx, completion); err != nil {
		s.logger.Error("Failed to upsert completion", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to complete module")
	}

	stored, err := s.completionRepo.FindByUserAndModule(ctx, input.UserID, input.ModuleID)
	if err != nil {
		s.logger.Error("Failed to reload completion", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to complete module")
	}

	s.logger.Info("Module completed",
		zap.String("user_id", input.UserID.String()),
		zap.String("module_id", input.ModuleID.String()))

	return toCompletionDTO(stored), nil
}

// CompletionListDTO is the paginated completion list
type CompletionListDTO struct {
	Completions []CompletionDTO `json:"completions"`
	Total       int64           `json:"total"`
	Page        int             `json:"page"`
	PageSize    int             `json:"page_size"`
}

// ListUserCompletions returns the modules the user has completed
func (s *CompletionService) ListUserCompletions(ctx context.Context, userID uuid.UUID, filter shared.Filter) (*CompletionListDTO, error) {
	completions, err := s.completionRepo.FindByUser(ctx, userID, filter)
	if err != nil {
		s.logger.Error("Failed to list completions", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list completions")
	}
	total, err := s.completionRepo.CountByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to count completions", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list completions")
	}

	dtos := make([]CompletionDTO, len(completions))
	for i := range completions {
		dtos[i] = *toCompletionDTO(&completions[i])
	}
	return &CompletionListDTO{
		Completions: dtos,
		Total:       total,
		Page:        filter.Page,
		PageSize:    filter.PageSize,
	}, nil
}
