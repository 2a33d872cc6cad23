package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appcatalog "github.com/careernest/backend/internal/application/catalog"
	"github.com/careernest/backend/internal/domain/booking"
	"github.com/careernest/backend/internal/domain/catalog"
	"github.com/careernest/backend/internal/domain/shared"
)

// BookmarkService handles career bookmarks. Bookmarking is a toggle:
// the first call adds, the second removes.
type BookmarkService struct {
	bookmarkRepo booking.BookmarkRepository
	careerRepo   catalog.CareerRepository
	logger       *zap.Logger
}

// NewBookmarkService creates a new bookmark service
func NewBookmarkService(
	bookmarkRepo booking.BookmarkRepository,
	careerRepo catalog.CareerRepository,
	logger *zap.Logger,
) *BookmarkService {
	return &BookmarkService{
		bookmarkRepo: bookmarkRepo,
		careerRepo:   careerRepo,
		logger:       logger,
	}
}

// ToggleResult reports the state after a toggle
type ToggleResult struct {
	CareerID   uuid.UUID `json:"career_id"`
	Bookmarked bool      `json:"bookmarked"`
}

// Toggle adds the bookmark when absent and removes it when present
func (s *BookmarkService) Toggle(ctx context.Context, userID, careerID uuid.UUID) (*ToggleResult, error) {
	if _, err := s.careerRepo.FindByID(ctx, careerID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("CAREER_NOT_FOUND", "Career not found")
		}
		s.logger.Error("Failed to find career", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to toggle bookmark")
	}

	exists, err := s.bookmarkRepo.Exists(ctx, userID, careerID)
	if err != nil {
		s.logger.Error("Failed to check bookmark", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to toggle bookmark")
	}

	if exists {
		if err := s.bookmarkRepo.Remove(ctx, userID, careerID); err != nil {
			s.logger.Error("Failed to remove bookmark", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to toggle bookmark")
		}
		return &ToggleResult{CareerID: careerID, Bookmarked: false}, nil
	}

	bookmark, err := booking.NewCareerBookmark(userID, careerID)
	if err != nil {
		return nil, err
	}
	if err := s.bookmarkRepo.Add(ctx, bookmark); err != nil {
		// A concurrent add loses the race harmlessly
		if errors.Is(err, shared.ErrAlreadyExists) {
			return &ToggleResult{CareerID: careerID, Bookmarked: true}, nil
		}
		s.logger.Error("Failed to add bookmark", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to toggle bookmark")
	}
	return &ToggleResult{CareerID: careerID, Bookmarked: true}, nil
}

// ListBookmarkedCareers returns the full career entries the user has
// bookmarked
func (s *BookmarkService) ListBookmarkedCareers(ctx context.Context, userID uuid.UUID) ([]appcatalog.CareerDTO, error) {
	ids, err := s.bookmarkRepo.ListCareerIDs(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list bookmarks", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list bookmarks")
	}
	if len(ids) == 0 {
		return []appcatalog.CareerDTO{}, nil
	}

	careers, err := s.careerRepo.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Failed to load bookmarked careers", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list bookmarks")
	}

	dtos := make([]appcatalog.CareerDTO, 0, len(careers))
	for i := range careers {
		dtos = append(dtos, *appcatalog.ToCareerDTO(&careers[i]))
	}
	return dtos, nil
}
