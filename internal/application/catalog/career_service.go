package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/careernest/backend/internal/domain/catalog"
	"github.com/careernest/backend/internal/domain/shared"
	"github.com/careernest/backend/internal/domain/shared/valueobject"
)

// CareerService handles career catalog operations
type CareerService struct {
	careerRepo catalog.CareerRepository
	logger     *zap.Logger
}

// NewCareerService creates a new career service
func NewCareerService(careerRepo catalog.CareerRepository, logger *zap.Logger) *CareerService {
	return &CareerService{
		careerRepo: careerRepo,
		logger:     logger,
	}
}

// CreateCareerInput contains input for creating a career path
type CreateCareerInput struct {
	Title        string
	Description  string
	Requirements []string
	SalaryMin    decimal.Decimal
	SalaryMax    decimal.Decimal
	Currency     string
	Skills       []string
	Demand       string
	GrowthRate   string
	Categories   []string
}

// Create adds a new career path to the catalog
func (s *CareerService) Create(ctx context.Context, input CreateCareerInput) (*CareerDTO, error) {
	career, err := catalog.NewCareer(input.Title, input.Description)
	if err != nil {
		return nil, err
	}

	currency := valueobject.Currency(input.Currency)
	if input.Currency == "" {
		currency = valueobject.USD
	}
	minSalary, err := valueobject.NewMoney(input.SalaryMin, currency)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_SALARY", err.Error())
	}
	maxSalary, err := valueobject.NewMoney(input.SalaryMax, currency)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_SALARY", err.Error())
	}
	if err := career.SetSalaryRange(minSalary, maxSalary); err != nil {
		return nil, err
	}

	if input.Demand != "" {
		if err := career.SetDemand(catalog.DemandLevel(input.Demand)); err != nil {
			return nil, err
		}
	}
	career.SetRequirements(input.Requirements)
	career.SetSkills(input.Skills)
	career.SetCategories(input.Categories)
	career.SetGrowthRate(input.GrowthRate)

	if err := s.careerRepo.Save(ctx, career); err != nil {
		s.logger.Error("Failed to save career", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create career")
	}

	s.logger.Info("Career created",
		zap.String("career_id", career.ID.String()),
		zap.String("title", career.Title))

	return ToCareerDTO(career), nil
}

// List returns a paginated list of careers
func (s *CareerService) List(ctx context.Context, filter shared.Filter) (*ListResult[CareerDTO], error) {
	careers, err := s.careerRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list careers", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list careers")
	}
	total, err := s.careerRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to count careers", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list careers")
	}

	dtos := make([]CareerDTO, len(careers))
	for i := range careers {
		dtos[i] = *ToCareerDTO(&careers[i])
	}
	return newListResult(dtos, total, filter.Page, filter.PageSize), nil
}

// GetByID returns a single career path
func (s *CareerService) GetByID(ctx context.Context, id uuid.UUID) (*CareerDTO, error) {
	career, err := s.careerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("CAREER_NOT_FOUND", "Career not found")
		}
		s.logger.Error("Failed to find career", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find career")
	}
	return ToCareerDTO(career), nil
}
