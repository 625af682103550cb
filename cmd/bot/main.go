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
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/leetmentor/bot/internal/bot"
	"github.com/leetmentor/bot/internal/gemini"
	"github.com/leetmentor/bot/internal/handler"
	"github.com/leetmentor/bot/internal/infrastructure"
	"github.com/leetmentor/bot/internal/leetcode"
	"github.com/leetmentor/bot/internal/middleware"
	"github.com/leetmentor/bot/internal/repository"
	"github.com/leetmentor/bot/internal/service"
)

func main() {
	// Load .env if present, then configuration
	_ = godotenv.Load()
	config := infrastructure.LoadConfig()

	// Initialize logger
	logger, err := infrastructure.NewLogger(config.Environment)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer infrastructure.SyncLogger(logger)

	logger.Info("Starting LeetMentor bot",
		zap.String("environment", config.Environment),
		zap.Int("ops_port", config.Ops.Port),
	)

	if config.Telegram.Token == "" {
		logger.Error("TELEGRAM_BOT_TOKEN is required")
		os.Exit(1)
	}

	// Initialize context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize telemetry
	telemetry, err := infrastructure.NewTelemetry(ctx, &config.Telemetry, logger)
	if err != nil {
		logger.Error("Failed to initialize telemetry", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		telemetry.Shutdown(shutdownCtx)
	}()

	// Create metrics
	metrics, err := telemetry.CreateMetrics()
	if err != nil {
		logger.Error("Failed to create metrics", zap.Error(err))
		os.Exit(1)
	}

	// Remote collaborators
	leetcodeClient := leetcode.NewClient(&config.LeetCode, telemetry.Tracer, logger)

	var generator *gemini.Client
	if config.Gemini.APIKey != "" {
		generator, err = gemini.NewClient(ctx, &config.Gemini, logger)
		if err != nil {
			logger.Error("Failed to initialize Gemini client", zap.Error(err))
			os.Exit(1)
		}
	} else {
		logger.Warn("GEMINI_API_KEY not set, study plans will use the fallback message")
	}

	// In-memory state
	catalog := repository.NewCatalogCache(leetcodeClient, config.LeetCode.CatalogLimit, logger)
	sessionRepo := repository.NewSessionRepository()
	profileRepo := repository.NewProfileRepository()

	// Initialize services
	problemService := service.NewProblemService(catalog, leetcodeClient, telemetry.Tracer, logger)
	profileService := service.NewProfileService(leetcodeClient, profileRepo, telemetry.Tracer, logger)
	dailyService := service.NewDailyService(problemService, profileService, sessionRepo, telemetry.Tracer, logger)

	// A typed nil *gemini.Client must not reach the interface field,
	// so the unconfigured case passes an untyped nil.
	advisorService := service.NewAdvisorService(nil, telemetry.Tracer, logger)
	if generator != nil {
		advisorService = service.NewAdvisorService(generator, telemetry.Tracer, logger)
	}

	// Initialize the Telegram transport
	tgBot, err := bot.New(
		&config.Telegram,
		dailyService,
		problemService,
		profileService,
		advisorService,
		metrics,
		telemetry.Tracer,
		logger,
	)
	if err != nil {
		logger.Error("Failed to initialize Telegram bot", zap.Error(err))
		os.Exit(1)
	}

	// Setup the operational HTTP server
	if config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.TracingMiddleware(telemetry.Tracer))
	router.Use(middleware.MetricsMiddleware(metrics))

	statusHandler := handler.NewStatusHandler(
		problemService, catalog, sessionRepo, profileRepo, config.Telemetry.ServiceVersion,
	)
	router.GET("/health", statusHandler.Health)
	router.GET("/stats", statusHandler.Stats)
	router.GET(config.Telemetry.MetricsEndpoint, gin.WrapH(promhttp.Handler()))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Ops.Host, config.Ops.Port),
		Handler:      router,
		ReadTimeout:  config.Ops.ReadTimeout,
		WriteTimeout: config.Ops.WriteTimeout,
	}

	go func() {
		logger.Info("Ops HTTP server starting", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start ops server", zap.Error(err))
		}
	}()

	// Start long polling in its own goroutine
	go func() {
		logger.Info("Bot polling started")
		if err := tgBot.Run(ctx); err != nil && err != context.Canceled {
			logger.Error("Bot polling stopped", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ops server forced to shutdown", zap.Error(err))
	}

	logger.Info("Bot exited")
}
