package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careernest/backend/internal/domain/identity"
	"github.com/careernest/backend/internal/domain/shared"
)

// UserService handles profile management operations
type UserService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// UpdateProfileInput contains input for updating a profile. Nil fields
// are left unchanged.
type UpdateProfileInput struct {
	UserID         uuid.UUID
	FirstName      *string
	LastName       *string
	Bio            *string
	Skills         []string
	Interests      []string
	ProfilePicture *string
}

// UpdateProfile updates the authenticated user's profile fields
func (s *UserService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*UserDTO, error) {
	user, err := s.findUser(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	firstName := user.FirstName
	lastName := user.LastName
	bio := user.Bio
	if input.FirstName != nil {
		firstName = *input.FirstName
	}
	if input.LastName != nil {
		lastName = *input.LastName
	}
	if input.Bio != nil {
		bio = *input.Bio
	}
	if err := user.UpdateProfile(firstName, lastName, bio); err != nil {
		return nil, err
	}

	if input.Skills != nil {
		if err := user.SetSkills(input.Skills); err != nil {
			return nil, err
		}
	}
	if input.Interests != nil {
		if err := user.SetInterests(input.Interests); err != nil {
			return nil, err
		}
	}
	if input.ProfilePicture != nil {
		if err := user.SetProfilePicture(*input.ProfilePicture); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to update profile", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update profile")
	}

	s.logger.Info("Profile updated", zap.String("user_id", user.ID.String()))

	return toUserDTO(user), nil
}

// ChangePasswordInput contains input for changing a password
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePassword verifies the current password and sets a new one
func (s *UserService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	user, err := s.findUser(ctx, input.UserID)
	if err != nil {
		return err
	}

	if err := user.ChangePassword(input.CurrentPassword, input.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to change password", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to change password")
	}

	s.logger.Info("Password changed", zap.String("user_id", user.ID.String()))

	return nil
}

// Deactivate deactivates the user's account
func (s *UserService) Deactivate(ctx context.Context, userID uuid.UUID) error {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := user.Deactivate(); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to deactivate user", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to deactivate account")
	}

	s.logger.Info("User deactivated", zap.String("user_id", userID.String()))

	return nil
}

func (s *UserService) findUser(ctx context.Context, userID uuid.UUID) (*identity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
		}
		s.logger.Error("Failed to find user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to find user")
	}
	return user, nil
}
