package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/meetwise-team/meeting-pipeline/pkg/validator"

	"github.com/meetwise-team/meeting-pipeline/internal/adapter/handler"
	"github.com/meetwise-team/meeting-pipeline/internal/adapter/repository"
	"github.com/meetwise-team/meeting-pipeline/internal/infrastructure/cache"
	"github.com/meetwise-team/meeting-pipeline/internal/infrastructure/database"
	"github.com/meetwise-team/meeting-pipeline/internal/infrastructure/storage"
	pipelineUsecase "github.com/meetwise-team/meeting-pipeline/internal/usecase/pipeline"
	"github.com/meetwise-team/meeting-pipeline/pkg/config"
	"github.com/meetwise-team/meeting-pipeline/pkg/jwt"
	"github.com/meetwise-team/meeting-pipeline/pkg/llm"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run AutoMigrate only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Running GORM AutoMigrate (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run AutoMigrate: %v", err)
		}
	} else {
		log.Println("🔄 Skipping GORM AutoMigrate; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize Redis
	log.Println("📦 Connecting to Redis...")
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	eventDeduper := cache.NewEventDeduper(redisClient, 24*time.Hour)
	summaryCache := cache.NewSummaryCache(redisClient, 15*time.Minute)

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(db)
	userRepo := repository.NewUserRepository(db)
	agentRepo := repository.NewAgentRepository(db)
	jobRepo := repository.NewProcessingJobRepository(db)

	// Initialize transcript archive (optional)
	var archive *storage.TranscriptArchive
	if cfg.Storage.Enabled {
		log.Println("🗄️  Initializing transcript archive...")
		archive, err = storage.NewTranscriptArchive(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to initialize transcript archive: %v", err)
		}
	}

	// Initialize summarization provider
	log.Printf("🤖 Initializing LLM provider (%s)...", cfg.LLM.Provider)
	var provider llm.Provider
	switch cfg.LLM.Provider {
	case "gemini":
		provider, err = llm.NewGeminiProvider(context.Background(), &cfg.LLM)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini provider: %v", err)
		}
	default:
		provider = llm.NewClient(&cfg.LLM)
	}

	// Initialize pipeline stages
	log.Println("🧩 Initializing pipeline...")
	fetcher := pipelineUsecase.NewTranscriptFetcher(archive, logger)
	parser := pipelineUsecase.NewParser()
	resolver := pipelineUsecase.NewSpeakerResolver(userRepo, agentRepo, logger)
	summarizer := pipelineUsecase.NewSummarizationInvoker(provider, logger)
	committer := pipelineUsecase.NewOutcomeCommitter(meetingRepo, logger)

	pipelineService := pipelineUsecase.NewService(
		jobRepo,
		meetingRepo,
		fetcher,
		parser,
		resolver,
		summarizer,
		committer,
		cfg.Pipeline.WorkerCount,
		time.Duration(cfg.Pipeline.PollInterval)*time.Second,
		time.Duration(cfg.Pipeline.JobTimeout)*time.Second,
		logger,
	)

	// Initialize JWT manager for service tokens
	var jwtManager *jwt.Manager
	if cfg.Auth.ServiceTokenSecret != "" {
		log.Println("🔑 Initializing JWT manager...")
		jwtManager = jwt.NewManager(cfg.Auth.ServiceTokenSecret, 24*time.Hour)
	} else {
		log.Println("⚠️  SERVICE_TOKEN_SECRET not set; read endpoints are unauthenticated")
	}

	// Initialize handlers
	log.Println("🪝 Initializing handlers...")
	pipelineHandler := handler.NewPipelineHandler(pipelineService, eventDeduper, cfg.Auth.WebhookSecret, logger)
	meetingHandler := handler.NewMeetingHandler(meetingRepo, summaryCache, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, pipelineHandler, meetingHandler, jwtManager)
	router.Setup(e)

	// Start worker pool
	poolCtx, poolCancel := context.WithCancel(context.Background())
	defer poolCancel()
	pipelineService.StartWorkerPool(poolCtx)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	pipelineService.StopWorkerPool()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Failed to shutdown server: %v", err)
	}

	log.Println("✅ Server stopped")
}
