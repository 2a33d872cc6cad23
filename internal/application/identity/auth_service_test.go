package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/careernest/backend/internal/domain/identity"
	"github.com/careernest/backend/internal/domain/shared"
	"github.com/careernest/backend/internal/infrastructure/auth"
	"github.com/careernest/backend/internal/infrastructure/config"
	"github.com/careernest/backend/internal/infrastructure/session"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByIdentifier(ctx context.Context, identifier string) (*identity.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                 "test-secret-key-for-unit-tests-only",
		RefreshSecret:          "test-refresh-secret-for-unit-tests",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "careernest-test",
		MaxRefreshCount:        3,
	}
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		MaxLoginAttempts: 3,
		LockDuration:     15 * time.Minute,
	}
}

func newTestAuthService(repo identity.UserRepository) *AuthService {
	return NewAuthService(
		repo,
		auth.NewJWTService(testJWTConfig()),
		auth.NewInMemoryTokenBlacklist(),
		session.NewInMemoryStore(),
		testAuthConfig(),
		24*time.Hour,
		zap.NewNop(),
	)
}

func newTestUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("alice", "alice@example.com", "password123")
	require.NoError(t, err)
	return user
}

func assertDomainErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	domainErr, ok := err.(*shared.DomainError)
	require.True(t, ok, "expected *shared.DomainError, got %T", err)
	assert.Equal(t, code, domainErr.Code)
}

func TestAuthServiceRegister(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("ExistsByUsername", mock.Anything, "alice").Return(false, nil)
		repo.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(false, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		svc := newTestAuthService(repo)
		result, err := svc.Register(context.Background(), RegisterInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.Equal(t, "alice", result.User.Username)
		assert.NotEmpty(t, result.Tokens.AccessToken)
		assert.NotEmpty(t, result.Tokens.RefreshToken)
		assert.NotEmpty(t, result.SessionID)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate username", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("ExistsByUsername", mock.Anything, "alice").Return(true, nil)

		svc := newTestAuthService(repo)
		_, err := svc.Register(context.Background(), RegisterInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "password123",
		})

		assertDomainErrorCode(t, err, "USERNAME_EXISTS")
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("ExistsByUsername", mock.Anything, "alice").Return(false, nil)
		repo.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(true, nil)

		svc := newTestAuthService(repo)
		_, err := svc.Register(context.Background(), RegisterInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "password123",
		})

		assertDomainErrorCode(t, err, "EMAIL_EXISTS")
	})

	t.Run("invalid password rejected by domain", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("ExistsByUsername", mock.Anything, "alice").Return(false, nil)
		repo.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(false, nil)

		svc := newTestAuthService(repo)
		_, err := svc.Register(context.Background(), RegisterInput{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "short",
		})

		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	t.Run("successful login by username", func(t *testing.T) {
		user := newTestUser(t)
		repo := new(MockUserRepository)
		repo.On("FindByIdentifier", mock.Anything, "alice").Return(user, nil)
		repo.On("Save", mock.Anything, user).Return(nil)

		svc := newTestAuthService(repo)
		result, err := svc.Login(context.Background(), LoginInput{
			Identifier: "alice",
			Password:   "password123",
		})

		require.NoError(t, err)
		assert.Equal(t, user.ID, result.User.ID)
		assert.NotEmpty(t, result.Tokens.AccessToken)
		assert.NotEmpty(t, result.SessionID)
		assert.NotNil(t, user.LastLoginAt)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByIdentifier", mock.Anything, "nobody").Return(nil, shared.ErrNotFound)

		svc := newTestAuthService(repo)
		_, err := svc.Login(context.Background(), LoginInput{
			Identifier: "nobody",
			Password:   "password123",
		})

		assertDomainErrorCode(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("wrong password", func(t *testing.T) {
		user := newTestUser(t)
		repo := new(MockUserRepository)
		repo.On("FindByIdentifier", mock.Anything, "alice").Return(user, nil)
		repo.On("Save", mock.Anything, user).Return(nil)

		svc := newTestAuthService(repo)
		_, err := svc.Login(context.Background(), LoginInput{
			Identifier: "alice",
			Password:   "wrong-password",
		})

		assertDomainErrorCode(t, err, "INVALID_CREDENTIALS")
		assert.Equal(t, 1, user.FailedAttempts)
	})

	t.Run("account locks after repeated failures", func(t *testing.T) {
		user := newTestUser(t)
		repo := new(MockUserRepository)
		repo.On("FindByIdentifier", mock.Anything, "alice").Return(user, nil)
		repo.On("Save", mock.Anything, user).Return(nil)

		svc := newTestAuthService(repo)
		input := LoginInput{Identifier: "alice", Password: "wrong-password"}

		_, err := svc.Login(context.Background(), input)
		assertDomainErrorCode(t, err, "INVALID_CREDENTIALS")
		_, err = svc.Login(context.Background(), input)
		assertDomainErrorCode(t, err, "INVALID_CREDENTIALS")
		_, err = svc.Login(context.Background(), input)
		assertDomainErrorCode(t, err, "ACCOUNT_LOCKED")

		// Even the correct password is rejected while locked
		_, err = svc.Login(context.Background(), LoginInput{Identifier: "alice", Password: "password123"})
		assertDomainErrorCode(t, err, "ACCOUNT_LOCKED")
	})

	t.Run("deactivated account", func(t *testing.T) {
		user := newTestUser(t)
		require.NoError(t, user.Deactivate())

		repo := new(MockUserRepository)
		repo.On("FindByIdentifier", mock.Anything, "alice").Return(user, nil)

		svc := newTestAuthService(repo)
		_, err := svc.Login(context.Background(), LoginInput{
			Identifier: "alice",
			Password:   "password123",
		})

		assertDomainErrorCode(t, err, "ACCOUNT_DEACTIVATED")
	})
}

func TestAuthServiceRefreshToken(t *testing.T) {
	t.Run("successful refresh", func(t *testing.T) {
		user := newTestUser(t)
		repo := new(MockUserRepository)
		repo.On("ExistsByUsername", mock.Anything, mock.Anything).Return(false, nil)
		repo.On("ExistsByEmail", mock.Anything, mock.Anything).Return(false, nil)
		repo.On("Save", mock.Anything, mock.Anything).Return(nil)
		repo.On("FindByID", mock.Anything, mock.Anything).Return(user, nil)
		repo.On("FindByIdentifier", mock.Anything, "alice").Return(user, nil)

		svc := newTestAuthService(repo)
		result, err := svc.Login(context.Background(), LoginInput{
			Identifier: "alice",
			Password:   "password123",
		})
		require.NoError(t, err)

		pair, err := svc.RefreshToken(context.Background(), result.Tokens.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEqual(t, result.Tokens.RefreshToken, pair.RefreshToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := newTestAuthService(repo)

		_, err := svc.RefreshToken(context.Background(), "not-a-token")
		assertDomainErrorCode(t, err, "INVALID_TOKEN")
	})

	t.Run("refresh for unknown user", func(t *testing.T) {
		user := newTestUser(t)
		repo := new(MockUserRepository)
		repo.On("FindByIdentifier", mock.Anything, "alice").Return(user, nil)
		repo.On("Save", mock.Anything, mock.Anything).Return(nil)
		repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

		svc := newTestAuthService(repo)
		result, err := svc.Login(context.Background(), LoginInput{
			Identifier: "alice",
			Password:   "password123",
		})
		require.NoError(t, err)

		_, err = svc.RefreshToken(context.Background(), result.Tokens.RefreshToken)
		assertDomainErrorCode(t, err, "INVALID_TOKEN")
	})
}

func TestAuthServiceLogout(t *testing.T) {
	user := newTestUser(t)
	repo := new(MockUserRepository)
	repo.On("FindByIdentifier", mock.Anything, "alice").Return(user, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	svc := newTestAuthService(repo)
	result, err := svc.Login(context.Background(), LoginInput{
		Identifier: "alice",
		Password:   "password123",
	})
	require.NoError(t, err)

	err = svc.Logout(context.Background(), LogoutInput{
		AccessToken: result.Tokens.AccessToken,
		SessionID:   result.SessionID,
	})
	require.NoError(t, err)

	// The session is gone
	_, err = svc.sessionStore.Get(context.Background(), result.SessionID)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	// The access token's jti is blacklisted
	claims, err := svc.jwtService.ValidateAccessToken(result.Tokens.AccessToken)
	require.NoError(t, err)
	blacklisted, err := svc.blacklist.IsBlacklisted(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.True(t, blacklisted)
}

func TestAuthServiceGetCurrentUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		user := newTestUser(t)
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		svc := newTestAuthService(repo)
		dto, err := svc.GetCurrentUser(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.Username, dto.Username)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

		svc := newTestAuthService(repo)
		_, err := svc.GetCurrentUser(context.Background(), uuid.New())
		assertDomainErrorCode(t, err, "USER_NOT_FOUND")
	})
}

func TestUserServiceUpdateProfile(t *testing.T) {
	user := newTestUser(t)
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	repo.On("Save", mock.Anything, user).Return(nil)

	svc := NewUserService(repo, zap.NewNop())

	firstName := "Alice"
	bio := "Aspiring data engineer"
	dto, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{
		UserID:    user.ID,
		FirstName: &firstName,
		Bio:       &bio,
		Skills:    []string{"Python", "SQL", "python"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice", dto.FirstName)
	assert.Equal(t, "Aspiring data engineer", dto.Bio)
	assert.Equal(t, []string{"Python", "SQL"}, dto.Skills)
}

func TestUserServiceChangePassword(t *testing.T) {
	t.Run("successful change", func(t *testing.T) {
		user := newTestUser(t)
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		repo.On("Save", mock.Anything, user).Return(nil)

		svc := NewUserService(repo, zap.NewNop())
		err := svc.ChangePassword(context.Background(), ChangePasswordInput{
			UserID:          user.ID,
			CurrentPassword: "password123",
			NewPassword:     "newpassword456",
		})

		require.NoError(t, err)
		assert.True(t, user.VerifyPassword("newpassword456"))
	})

	t.Run("wrong current password", func(t *testing.T) {
		user := newTestUser(t)
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		svc := NewUserService(repo, zap.NewNop())
		err := svc.ChangePassword(context.Background(), ChangePasswordInput{
			UserID:          user.ID,
			CurrentPassword: "wrong-password",
			NewPassword:     "newpassword456",
		})

		require.Error(t, err)
		assert.True(t, user.VerifyPassword("password123"))
	})
}
