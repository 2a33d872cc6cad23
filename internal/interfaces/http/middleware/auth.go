package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/careernest/backend/internal/infrastructure/auth"
	"github.com/careernest/backend/internal/infrastructure/logger"
	"github.com/careernest/backend/internal/infrastructure/session"
)

// Auth context keys
const (
	AuthUserIDKey   = "auth_user_id"
	AuthUsernameKey = "auth_username"
	AuthClaimsKey   = "auth_claims"
	AuthHeaderKey   = "Authorization"
	BearerPrefix    = "Bearer "
)

// AuthConfig holds configuration for the authentication middleware.
// Requests may authenticate with a bearer token or a session cookie;
// when both are present the Authorization header wins and the cookie
// is not consulted, even if the token is invalid.
type AuthConfig struct {
	JWTService *auth.JWTService
	// Blacklist rejects revoked access tokens. Optional.
	Blacklist auth.TokenBlacklist
	// Sessions resolves cookie-based sessions. Optional; without it
	// only bearer tokens are accepted.
	Sessions session.Store
	// CookieName is the session cookie to read.
	CookieName string
	// SkipPaths are exact paths that bypass authentication.
	SkipPaths []string
	Logger    *zap.Logger
}

// RequireAuth creates the authentication middleware
func RequireAuth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range cfg.SkipPaths {
			if path == skip {
				c.Next()
				return
			}
		}

		if authHeader := c.GetHeader(AuthHeaderKey); authHeader != "" {
			authenticateBearer(c, cfg, authHeader)
			return
		}

		if cfg.CookieName != "" && cfg.Sessions != nil {
			if sessionID, err := c.Cookie(cfg.CookieName); err == nil && sessionID != "" {
				authenticateSession(c, cfg, sessionID)
				return
			}
		}

		abortUnauthorized(c, "UNAUTHORIZED", "Authentication required")
	}
}

func authenticateBearer(c *gin.Context, cfg AuthConfig, authHeader string) {
	if !strings.HasPrefix(authHeader, BearerPrefix) {
		abortUnauthorized(c, "INVALID_TOKEN", "Invalid authorization header format")
		return
	}

	tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
	if tokenString == "" {
		abortUnauthorized(c, "INVALID_TOKEN", "Missing token")
		return
	}

	claims, err := cfg.JWTService.ValidateAccessToken(tokenString)
	if err != nil {
		code := "INVALID_TOKEN"
		message := "Invalid token"
		if err == auth.ErrExpiredToken {
			code = "TOKEN_EXPIRED"
			message = "Token has expired"
		}
		if cfg.Logger != nil {
			cfg.Logger.Warn("Token validation failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
			)
		}
		abortUnauthorized(c, code, message)
		return
	}

	if cfg.Blacklist != nil && claims.ID != "" {
		blacklisted, err := cfg.Blacklist.IsBlacklisted(c.Request.Context(), claims.ID)
		if err != nil {
			// Fail open for availability, but record the failure
			if cfg.Logger != nil {
				cfg.Logger.Error("Failed to check token blacklist",
					zap.String("jti", claims.ID),
					zap.Error(err))
			}
		} else if blacklisted {
			abortUnauthorized(c, "TOKEN_REVOKED", "Token has been revoked")
			return
		}
	}

	c.Set(AuthClaimsKey, claims)
	setAuthenticatedUser(c, claims.UserID, claims.Username)
	c.Next()
}

func authenticateSession(c *gin.Context, cfg AuthConfig, sessionID string) {
	sess, err := cfg.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		if err != session.ErrSessionNotFound && cfg.Logger != nil {
			cfg.Logger.Error("Failed to resolve session", zap.Error(err))
		}
		abortUnauthorized(c, "SESSION_EXPIRED", "Session is invalid or expired")
		return
	}

	setAuthenticatedUser(c, sess.UserID.String(), sess.Username)
	c.Next()
}

func setAuthenticatedUser(c *gin.Context, userID, username string) {
	c.Set(AuthUserIDKey, userID)
	c.Set(AuthUsernameKey, username)

	ctx, _ := logger.WithUserID(c.Request.Context(), userID)
	c.Request = c.Request.WithContext(ctx)
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// GetAuthUserID returns the authenticated user's ID, or "" when the
// request is unauthenticated
func GetAuthUserID(c *gin.Context) string {
	return c.GetString(AuthUserIDKey)
}

// GetAuthUsername returns the authenticated user's username
func GetAuthUsername(c *gin.Context) string {
	return c.GetString(AuthUsernameKey)
}
