package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/careernest/backend/internal/application/identity"
	"github.com/careernest/backend/internal/infrastructure/config"
	"github.com/careernest/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService   *identity.AuthService
	sessionConfig config.SessionConfig
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identity.AuthService, sessionConfig config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		sessionConfig: sessionConfig,
	}
}

// Register godoc
// @Summary      Register a new account
// @Description  Create a user account and sign it in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration data"
// @Success      201 {object} dto.Response{data=identity.AuthResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Register(c.Request.Context(), identity.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.setSessionCookie(c, result.SessionID)
	h.Created(c, result)
}

// Login godoc
// @Summary      Sign in
// @Description  Authenticate with username or email plus password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} dto.Response{data=identity.AuthResult}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), identity.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.setSessionCookie(c, result.SessionID)
	h.Success(c, result)
}

// RefreshToken godoc
// @Summary      Refresh access token
// @Description  Exchange a refresh token for a new token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RefreshTokenRequest true "Refresh token"
// @Success      200 {object} dto.Response{data=auth.TokenPair}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	tokens, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tokens)
}

// Logout godoc
// @Summary      Sign out
// @Description  Revoke the bearer token and destroy the session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	input := identity.LogoutInput{}

	if authHeader := c.GetHeader(middleware.AuthHeaderKey); strings.HasPrefix(authHeader, middleware.BearerPrefix) {
		input.AccessToken = strings.TrimPrefix(authHeader, middleware.BearerPrefix)
	}
	if sessionID, err := c.Cookie(h.sessionConfig.CookieName); err == nil {
		input.SessionID = sessionID
	}

	if err := h.authService.Logout(c.Request.Context(), input); err != nil {
		h.HandleError(c, err)
		return
	}

	h.clearSessionCookie(c)
	h.Success(c, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, sessionID string) {
	if sessionID == "" || h.sessionConfig.CookieName == "" {
		return
	}
	c.SetSameSite(parseSameSite(h.sessionConfig.SameSite))
	c.SetCookie(
		h.sessionConfig.CookieName,
		sessionID,
		int(h.sessionConfig.TTL.Seconds()),
		h.sessionConfig.Path,
		h.sessionConfig.Domain,
		h.sessionConfig.Secure,
		true,
	)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	if h.sessionConfig.CookieName == "" {
		return
	}
	c.SetSameSite(parseSameSite(h.sessionConfig.SameSite))
	c.SetCookie(
		h.sessionConfig.CookieName,
		"",
		-1,
		h.sessionConfig.Path,
		h.sessionConfig.Domain,
		h.sessionConfig.Secure,
		true,
	)
}

func parseSameSite(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
