package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appassessment "github.com/careernest/backend/internal/application/assessment"
	bookingapp "github.com/careernest/backend/internal/application/booking"
	catalogapp "github.com/careernest/backend/internal/application/catalog"
	identityapp "github.com/careernest/backend/internal/application/identity"
	"github.com/careernest/backend/internal/infrastructure/auth"
	"github.com/careernest/backend/internal/infrastructure/config"
	"github.com/careernest/backend/internal/infrastructure/logger"
	"github.com/careernest/backend/internal/infrastructure/persistence"
	"github.com/careernest/backend/internal/infrastructure/session"
	"github.com/careernest/backend/internal/interfaces/http/handler"
	"github.com/careernest/backend/internal/interfaces/http/middleware"
	"github.com/careernest/backend/internal/interfaces/http/router"
)

//	@title			CareerNest API
//	@version		1.0
//	@description	Career development platform: careers catalog, mentorship bookings, skill assessments and learning modules.

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting CareerNest backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing redis client", zap.Error(err))
		}
	}()

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	careerRepo := persistence.NewGormCareerRepository(db.DB)
	mentorRepo := persistence.NewGormMentorRepository(db.DB)
	moduleRepo := persistence.NewGormModuleRepository(db.DB)
	assessmentRepo := persistence.NewGormAssessmentRepository(db.DB)
	resultRepo := persistence.NewGormResultRepository(db.DB)
	sessionRepo := persistence.NewGormSessionRepository(db.DB)
	completionRepo := persistence.NewGormCompletionRepository(db.DB)
	bookmarkRepo := persistence.NewGormBookmarkRepository(db.DB)

	// Auth infrastructure
	jwtService := auth.NewJWTService(cfg.JWT)
	blacklist := auth.NewRedisTokenBlacklist(redisClient)
	sessionStore := session.NewRedisStore(redisClient)

	// Application services
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, sessionStore, cfg.Auth, cfg.Session.TTL, log)
	userService := identityapp.NewUserService(userRepo, log)
	careerService := catalogapp.NewCareerService(careerRepo, log)
	mentorService := catalogapp.NewMentorService(mentorRepo, log)
	moduleService := catalogapp.NewModuleService(moduleRepo, log)
	assessmentCatalogService := catalogapp.NewAssessmentCatalogService(assessmentRepo, log)
	submissionService := appassessment.NewSubmissionService(assessmentRepo, resultRepo, log)
	sessionService := bookingapp.NewSessionService(sessionRepo, mentorRepo, log)
	completionService := bookingapp.NewCompletionService(completionRepo, moduleRepo, log)
	bookmarkService := bookingapp.NewBookmarkService(bookmarkRepo, careerRepo, log)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies", zap.Error(err))
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Secure())
	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsCfg))
	if cfg.HTTP.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	}
	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
	}

	requireAuth := middleware.RequireAuth(middleware.AuthConfig{
		JWTService: jwtService,
		Blacklist:  blacklist,
		Sessions:   sessionStore,
		CookieName: cfg.Session.CookieName,
		Logger:     log,
	})

	handlers := router.Handlers{
		System:     handler.NewSystemHandler(db, redisClient),
		Auth:       handler.NewAuthHandler(authService, cfg.Session),
		User:       handler.NewUserHandler(authService, userService),
		Career:     handler.NewCareerHandler(careerService, bookmarkService),
		Mentor:     handler.NewMentorHandler(mentorService, sessionService),
		Module:     handler.NewModuleHandler(moduleService, completionService),
		Assessment: handler.NewAssessmentHandler(assessmentCatalogService, submissionService),
		Session:    handler.NewSessionHandler(sessionService),
	}
	router.New(engine, handlers, requireAuth).Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
