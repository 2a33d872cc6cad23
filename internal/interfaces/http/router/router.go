package router

import (
	"github.com/gin-gonic/gin"

	"github.com/careernest/backend/internal/interfaces/http/handler"
)

// Handlers bundles every HTTP handler the router wires up.
type Handlers struct {
	System     *handler.SystemHandler
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Career     *handler.CareerHandler
	Mentor     *handler.MentorHandler
	Module     *handler.ModuleHandler
	Assessment *handler.AssessmentHandler
	Session    *handler.SessionHandler
}

// Router registers all routes on a gin engine under a versioned API prefix.
type Router struct {
	engine      *gin.Engine
	handlers    Handlers
	requireAuth gin.HandlerFunc
	apiVersion  string
}

// Option is a functional option for Router configuration.
type Option func(*Router)

// WithAPIVersion sets the API version prefix (e.g. "v1", "v2").
func WithAPIVersion(version string) Option {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// New creates a Router. requireAuth guards every route that needs an
// authenticated caller.
func New(engine *gin.Engine, handlers Handlers, requireAuth gin.HandlerFunc, opts ...Option) *Router {
	r := &Router{
		engine:      engine,
		handlers:    handlers,
		requireAuth: requireAuth,
		apiVersion:  "v1",
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Setup registers all routes with the engine.
func (r *Router) Setup() {
	h := r.handlers

	// Liveness endpoint stays outside the versioned prefix so load
	// balancers do not need to track API versions.
	r.engine.GET("/health", h.System.Health)

	api := r.engine.Group("/api/" + r.apiVersion)

	// Public routes. The catalog is browsable without an account,
	// though assessment definitions come back redacted.
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.RefreshToken)

	api.GET("/careers", h.Career.List)
	api.GET("/careers/:id", h.Career.Get)
	api.GET("/mentors", h.Mentor.List)
	api.GET("/mentors/:id", h.Mentor.Get)
	api.GET("/modules", h.Module.List)
	api.GET("/modules/:id", h.Module.Get)
	api.GET("/assessments", h.Assessment.List)
	api.GET("/assessments/:id", h.Assessment.Get)

	// Everything below requires an authenticated caller.
	authed := api.Group("")
	authed.Use(r.requireAuth)

	authed.POST("/auth/logout", h.Auth.Logout)

	authed.GET("/users/me", h.User.Me)
	authed.PUT("/users/me", h.User.UpdateProfile)
	authed.PUT("/users/me/password", h.User.ChangePassword)
	authed.DELETE("/users/me", h.User.Deactivate)

	authed.POST("/careers", h.Career.Create)
	authed.POST("/careers/:id/bookmark", h.Career.ToggleBookmark)
	authed.GET("/careers/bookmarks", h.Career.ListBookmarks)

	authed.POST("/mentors", h.Mentor.Create)
	authed.POST("/mentors/:id/schedule", h.Mentor.Schedule)
	authed.GET("/sessions", h.Session.List)
	authed.PUT("/sessions/:id/cancel", h.Session.Cancel)
	authed.PUT("/sessions/:id/complete", h.Session.Complete)

	authed.POST("/modules", h.Module.Create)
	authed.POST("/modules/:id/complete", h.Module.Complete)
	authed.GET("/modules/completions", h.Module.ListCompletions)

	authed.POST("/assessments", h.Assessment.Create)
	authed.POST("/assessments/:id/submit", h.Assessment.Submit)
	authed.GET("/assessments/results", h.Assessment.ListResults)
}
