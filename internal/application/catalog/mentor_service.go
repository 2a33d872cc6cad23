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

// MentorService handles mentor catalog operations
type MentorService struct {
	mentorRepo catalog.MentorRepository
	logger     *zap.Logger
}

// NewMentorService creates a new mentor service
func NewMentorService(mentorRepo catalog.MentorRepository, logger *zap.Logger) *MentorService {
	return &MentorService{
		mentorRepo: mentorRepo,
		logger:     logger,
	}
}

// CreateMentorInput contains input for creating a mentor profile
type CreateMentorInput struct {
	Name              string
	Title             string
	Company           string
	Bio               string
	Expertise         []string
	YearsOfExperience int
	HourlyRate        decimal.Decimal
	Currency          string
	ProfilePicture    string
	Availability      []catalog.AvailabilitySlot
}

// Create adds a new mentor profile to the catalog
func (s *MentorService) Create(ctx context.Context, input CreateMentorInput) (*MentorDTO, error) {
	mentor, err := catalog.NewMentor(input.Name, input.Title, input.Company)
	if err != nil {
		return nil, err
	}

	if input.Bio != "" {
		if err := mentor.SetBio(input.Bio); err != nil {
			return nil, err
		}
	}
	mentor.SetExpertise(input.Expertise)
	if err := mentor.SetYearsOfExperience(input.YearsOfExperience); err != nil {
		return nil, err
	}

	currency := valueobject.Currency(input.Currency)
	if input.Currency == "" {
		currency = valueobject.USD
	}
	rate, err := valueobject.NewMoney(input.HourlyRate, currency)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_RATE", err.Error())
	}
	if err := mentor.SetHourlyRate(rate); err != nil {
		return nil, err
	}

	if input.ProfilePicture != "" {
		if err := mentor.SetProfilePicture(input.ProfilePicture); err != nil {
			return nil, err
		}
	}
	if len(input.Availability) > 0 {
		if err := mentor.SetAvailability(input.Availability); err != nil {
			return nil, err
		}
	}

	if err := s.mentorRepo.Save(ctx, mentor); err != nil {
		s.logger.Error("Failed to save mentor", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create mentor")
	}

	s.logger.Info("Mentor created",
		zap.String("mentor_id", mentor.ID.String()),
		zap.String("name", mentor.Name))

	return toMentorDTO(mentor), nil
}

// List returns a paginated list of mentors
func (s *MentorService) List(ctx context.Context, filter shared.Filter) (*ListResult[MentorDTO], error) {
	mentors, err := s.mentorRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list mentors", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list mentors")
	}
	total, err := s.mentorRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to count mentors", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list mentors")
	}

	dtos := make([]MentorDTO, len(mentors))
	for i := range mentors {
		dtos[i] = *toMentorDTO(&mentors[i])
	}
	return newListResult(dtos, total, filter.Page, filter.PageSize), nil
}

// GetByID returns a single mentor profile
func (s *MentorService) GetByID(ctx context.Context, id uuid.UUID) (*MentorDTO, error) {
	mentor, err := s.mentorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("MENTOR_NOT_FOUND", "Mentor not found")
		}
		s.logger.Error("Failed to find mentor", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find mentor")
	}
	return toMentorDTO(mentor), nil
}
