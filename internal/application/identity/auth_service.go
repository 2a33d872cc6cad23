package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/careernest/backend/internal/domain/identity"
	"github.com/careernest/backend/internal/domain/shared"
	"github.com/careernest/backend/internal/infrastructure/auth"
	"github.com/careernest/backend/internal/infrastructure/config"
	"github.com/careernest/backend/internal/infrastructure/session"
)

// AuthService handles registration, login and token lifecycle
type AuthService struct {
	userRepo     identity.UserRepository
	jwtService   *auth.JWTService
	blacklist    auth.TokenBlacklist
	sessionStore session.Store
	authConfig   config.AuthConfig
	sessionTTL   time.Duration
	logger       *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	sessionStore session.Store,
	authConfig config.AuthConfig,
	sessionTTL time.Duration,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		jwtService:   jwtService,
		blacklist:    blacklist,
		sessionStore: sessionStore,
		authConfig:   authConfig,
		sessionTTL:   sessionTTL,
		logger:       logger,
	}
}

// RegisterInput contains input for registering a new account
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput contains the login credentials. Identifier accepts either
// a username or an email address.
type LoginInput struct {
	Identifier string
	Password   string
}

// AuthResult is returned on successful registration or login
type AuthResult struct {
	User      *UserDTO        `json:"user"`
	Tokens    *auth.TokenPair `json:"tokens"`
	SessionID string          `json:"-"`
}

// Register creates a new user account and logs it in
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		s.logger.Error("Failed to check username existence", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check username availability")
	}
	if exists {
		return nil, shared.NewDomainError("USERNAME_EXISTS", "Username already taken")
	}

	exists, err = s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Error("Failed to check email existence", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to check email availability")
	}
	if exists {
		return nil, shared.NewDomainError("EMAIL_EXISTS", "Email already registered")
	}

	user, err := identity.NewUser(input.Username, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to save user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create account")
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return s.issueCredentials(ctx, user)
}

// Login authenticates a user by username or email
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.FindByIdentifier(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
		}
		s.logger.Error("Failed to find user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Login failed")
	}

	if user.IsLocked() {
		return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Account is temporarily locked")
	}
	if user.Status == identity.UserStatusDeactivated {
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account is deactivated")
	}

	if !user.VerifyPassword(input.Password) {
		locked := user.RecordLoginFailure(s.authConfig.MaxLoginAttempts, s.authConfig.LockDuration)
		if err := s.userRepo.Save(ctx, user); err != nil {
			s.logger.Error("Failed to record login failure", zap.Error(err))
		}
		if locked {
			s.logger.Warn("Account locked after repeated failures",
				zap.String("user_id", user.ID.String()))
			return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Account is temporarily locked")
		}
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	user.RecordLoginSuccess()
	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to record login success", zap.Error(err))
	}

	s.logger.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return s.issueCredentials(ctx, user)
}

// RefreshToken exchanges a refresh token for a new token pair
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Invalid refresh token")
	}

	if claims.ID != "" {
		blacklisted, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Error("Failed to check token blacklist", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Token refresh failed")
		}
		if blacklisted {
			return nil, shared.NewDomainError("INVALID_TOKEN", "Token has been revoked")
		}
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("INVALID_TOKEN", "Invalid refresh token")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_TOKEN", "Invalid refresh token")
		}
		s.logger.Error("Failed to find user for refresh", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Token refresh failed")
	}
	if !user.CanLogin() {
		return nil, shared.NewDomainError("ACCOUNT_UNAVAILABLE", "Account is not available")
	}

	pair, err := s.jwtService.RefreshTokenPair(refreshToken, user.Username)
	if err != nil {
		if errors.Is(err, auth.ErrMaxRefreshExceeded) {
			return nil, shared.NewDomainError("MAX_REFRESH_EXCEEDED", "Refresh limit reached, please log in again")
		}
		return nil, shared.NewDomainError("INVALID_TOKEN", "Invalid refresh token")
	}
	return pair, nil
}

// LogoutInput identifies the credentials to revoke
type LogoutInput struct {
	AccessToken string
	SessionID   string
}

// Logout revokes the access token and destroys the server-side session.
// Both fields are optional; whichever is present gets revoked.
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if input.AccessToken != "" {
		claims, err := s.jwtService.ValidateAccessToken(input.AccessToken)
		if err == nil && claims.ID != "" {
			ttl := time.Until(claims.ExpiresAt.Time)
			if err := s.blacklist.AddToBlacklist(ctx, claims.ID, ttl); err != nil {
				s.logger.Error("Failed to blacklist token", zap.Error(err))
				return shared.NewDomainError("INTERNAL_ERROR", "Logout failed")
			}
		}
	}

	if input.SessionID != "" {
		if err := s.sessionStore.Destroy(ctx, input.SessionID); err != nil {
			s.logger.Error("Failed to destroy session", zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Logout failed")
		}
	}
	return nil
}

// GetCurrentUser returns the profile of the authenticated user
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserDTO, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
		}
		s.logger.Error("Failed to find user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load user")
	}
	return toUserDTO(user), nil
}

// issueCredentials generates the JWT pair and the server-side session
func (s *AuthService) issueCredentials(ctx context.Context, user *identity.User) (*AuthResult, error) {
	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
	})
	if err != nil {
		s.logger.Error("Failed to generate tokens", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate tokens")
	}

	sess, err := s.sessionStore.Create(ctx, user.ID, user.Username, s.sessionTTL)
	if err != nil {
		s.logger.Error("Failed to create session", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create session")
	}

	return &AuthResult{
		User:      toUserDTO(user),
		Tokens:    tokens,
		SessionID: sess.ID,
	}, nil
}
