package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careernest/backend/internal/domain/catalog"
	"github.com/careernest/backend/internal/domain/shared"
)

// ModuleService handles learning module catalog operations
type ModuleService struct {
	moduleRepo catalog.LearningModuleRepository
	logger     *zap.Logger
}

// NewModuleService creates a new learning module service
func NewModuleService(moduleRepo catalog.LearningModuleRepository, logger *zap.Logger) *ModuleService {
	return &ModuleService{
		moduleRepo: moduleRepo,
		logger:     logger,
	}
}

// CreateModuleInput contains input for creating a learning module
type CreateModuleInput struct {
	Title         string
	Description   string
	Content       string
	EstimatedTime string
	Category      string
	Prerequisites []uuid.UUID
	Resources     []catalog.Resource
}

// Create adds a new learning module to the catalog
func (s *ModuleService) Create(ctx context.Context, input CreateModuleInput) (*ModuleDTO, error) {
	module, err := catalog.NewLearningModule(input.Title, input.Description, input.Content)
	if err != nil {
		return nil, err
	}

	module.SetCategory(input.Category)
	module.SetEstimatedTime(input.EstimatedTime)
	if err := module.SetPrerequisites(input.Prerequisites); err != nil {
		return nil, err
	}
	if err := module.SetResources(input.Resources); err != nil {
		return nil, err
	}

	if err := s.moduleRepo.Save(ctx, module); err != nil {
		s.logger.Error("Failed to save learning module", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create module")
	}

	s.logger.Info("Learning module created",
		zap.String("module_id", module.ID.String()),
		zap.String("title", module.Title))

	return toModuleDTO(module), nil
}

// List returns a paginated list of learning modules without content
func (s *ModuleService) List(ctx context.Context, filter shared.Filter) (*ListResult[ModuleSummaryDTO], error) {
	modules, err := s.moduleRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list modules", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list modules")
	}
	total, err := s.moduleRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to count modules", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list modules")
	}

	dtos := make([]ModuleSummaryDTO, len(modules))
	for i := range modules {
		dtos[i] = *toModuleSummaryDTO(&modules[i])
	}
	return newListResult(dtos, total, filter.Page, filter.PageSize), nil
}

// GetByID returns a single learning module with its full content
func (s *ModuleService) GetByID(ctx context.Context, id uuid.UUID) (*ModuleDTO, error) {
	module, err := s.moduleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("MODULE_NOT_FOUND", "Learning module not found")
		}
		s.logger.Error("Failed to find module", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find module")
	}
	return toModuleDTO(module), nil
}
