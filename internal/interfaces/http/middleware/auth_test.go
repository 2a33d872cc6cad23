package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careernest/backend/internal/infrastructure/auth"
	"github.com/careernest/backend/internal/infrastructure/config"
	"github.com/careernest/backend/internal/infrastructure/session"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService, *auth.InMemoryTokenBlacklist, *session.InMemoryStore) {
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-at-least-32-characters",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "careernest-test",
		MaxRefreshCount:        5,
	})
	blacklist := auth.NewInMemoryTokenBlacklist()
	sessions := session.NewInMemoryStore()

	router := gin.New()
	router.Use(RequireAuth(AuthConfig{
		JWTService: jwtService,
		Blacklist:  blacklist,
		Sessions:   sessions,
		CookieName: "careernest_session",
		SkipPaths:  []string{"/health"},
	}))
	router.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetAuthUserID(c), "username": GetAuthUsername(c)})
	})
	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router, jwtService, blacklist, sessions
}

func TestRequireAuth_BearerToken(t *testing.T) {
	t.Run("valid token passes", func(t *testing.T) {
		router, jwtService, _, _ := newAuthTestRouter(t)

		tokens, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
			UserID:   uuid.New(),
			Username: "casey",
		})
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "casey")
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		router, _, _, _ := newAuthTestRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
	})

	t.Run("revoked token rejected", func(t *testing.T) {
		router, jwtService, blacklist, _ := newAuthTestRouter(t)

		tokens, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
			UserID:   uuid.New(),
			Username: "casey",
		})
		require.NoError(t, err)

		claims, err := jwtService.ValidateAccessToken(tokens.AccessToken)
		require.NoError(t, err)
		require.NoError(t, blacklist.AddToBlacklist(context.Background(), claims.ID, time.Hour))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_REVOKED")
	})
}

func TestRequireAuth_SessionCookie(t *testing.T) {
	t.Run("valid session cookie passes", func(t *testing.T) {
		router, _, _, sessions := newAuthTestRouter(t)

		sess, err := sessions.Create(context.Background(), uuid.New(), "morgan", time.Hour)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "careernest_session", Value: sess.ID})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "morgan")
	})

	t.Run("unknown session cookie rejected", func(t *testing.T) {
		router, _, _, _ := newAuthTestRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(&http.Cookie{Name: "careernest_session", Value: "nope"})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "SESSION_EXPIRED")
	})

	t.Run("invalid bearer token does not fall back to cookie", func(t *testing.T) {
		router, _, _, sessions := newAuthTestRouter(t)

		sess, err := sessions.Create(context.Background(), uuid.New(), "morgan", time.Hour)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer broken")
		req.AddCookie(&http.Cookie{Name: "careernest_session", Value: sess.ID})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAuth_SkipPaths(t *testing.T) {
	router, _, _, _ := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuth_NoCredentials(t *testing.T) {
	router, _, _, _ := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}
