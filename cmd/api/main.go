package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rmacedo/registros-api/internal/config"
	"github.com/rmacedo/registros-api/internal/database"
	"github.com/rmacedo/registros-api/internal/handlers"
	"github.com/rmacedo/registros-api/internal/jobs"
	"github.com/rmacedo/registros-api/internal/middleware"
	"github.com/rmacedo/registros-api/internal/models"
	"github.com/rmacedo/registros-api/internal/repository"
	"github.com/rmacedo/registros-api/internal/services"
	"github.com/rmacedo/registros-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title Registros API
// @version 1.0
// @description REST API for member record management

// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Setup(cfg.Environment)

	// Initialize Sentry when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	if err := db.AutoMigrate(
		&models.User{},
		&models.FinancialHistory{},
		&models.AssociatedFile{},
		&models.AssociatedHistory{},
		&models.AuditLog{},
	); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize repositories
	repos := repository.NewRepositories(db)

	// Initialize background worker
	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	// Initialize services
	svcs := services.NewServices(repos, worker, cfg)

	// Schedule recurring jobs
	scheduleJobs(worker, svcs, cfg)

	// Initialize handlers
	h := handlers.NewHandlers(svcs, worker)

	// Setup router
	router := setupRouter(h, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// Shutdown background worker
	worker.Shutdown()
	logger.Info("Background worker stopped")

	// Flush Sentry events before exit
	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func setupRouter(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check (public)
		v1.GET("/health", h.Health.Index)

		// Authentication (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
		}

		// Record routes. The actor middleware resolves the acting user
		// from an optional bearer token; anonymous requests proceed
		// with no audit actor.
		records := v1.Group("")
		records.Use(middleware.Actor(cfg.JWTSecret))
		{
			registerRecordRoutes(records, "/financial_histories", h.FinancialHistory)
			registerRecordRoutes(records, "/associated_files", h.AssociatedFile)
			registerRecordRoutes(records, "/associated_histories", h.AssociatedHistory)

			records.GET("/auditorias", h.Audit.Index)
		}
	}

	return router
}

// registerRecordRoutes mounts the shared record operations under one
// path. Static routes come first so "ativos" and "exportar" are not
// matched as :id.
func registerRecordRoutes[M any, PM models.RecordPtr[M]](rg *gin.RouterGroup, path string, h *handlers.RecordHandler[M, PM]) {
	g := rg.Group(path)
	{
		g.POST("", h.Create)
		g.GET("", h.Index)
		g.GET("/ativos", h.Active)
		g.GET("/exportar", h.Export)
		g.GET("/:id", h.Show)
		g.PUT("/:id", h.Update)
		g.PATCH("/:id/ativar", h.ToggleActive)
	}
}

func scheduleJobs(worker *jobs.Worker, svcs *services.Services, cfg *config.Config) {
	if cfg.AuditRetentionDays <= 0 {
		return
	}

	retention := time.Duration(cfg.AuditRetentionDays) * 24 * time.Hour
	worker.ScheduleEveryImmediate(24*time.Hour, func(ctx context.Context) error {
		logger.Info("[Job] Purging expired audit entries...")
		return svcs.Audit.PurgeOlderThan(ctx, retention)
	})

	logger.Info("Scheduled recurring jobs")
}
