package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/surety_risk_app/internal/core/policy"
	"github.com/SscSPs/surety_risk_app/internal/core/scoring"
	"github.com/SscSPs/surety_risk_app/internal/core/services"
	"github.com/SscSPs/surety_risk_app/internal/handlers"
	"github.com/SscSPs/surety_risk_app/internal/middleware"
	"github.com/SscSPs/surety_risk_app/internal/platform/cache"
	"github.com/SscSPs/surety_risk_app/internal/platform/config"
	"github.com/SscSPs/surety_risk_app/internal/platform/logging"
	"github.com/SscSPs/surety_risk_app/internal/platform/metrics"
	"github.com/SscSPs/surety_risk_app/internal/platform/tracing"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// @title Surety Risk API
// @version 1.0
// @description 5C risk scoring and collateral decisions for surety bond applications.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := logging.InitLogger(logging.LogConfig{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, shutdownTracing := tracing.Init(cfg.ServiceName)

	scoringPolicy := policy.Default()
	if cfg.PolicyFile != "" {
		scoringPolicy, err = policy.Load(cfg.PolicyFile)
		if err != nil {
			logger.Error("Failed to load scoring policy", slog.String("path", cfg.PolicyFile), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
	logger.Info("Scoring policy loaded", slog.String("version", scoringPolicy.Version))

	engine := scoring.NewEngine(scoringPolicy)
	recorder := metrics.NewRecorder()

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient, err = cache.New(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Error("Failed to connect to redis", slog.String("addr", cfg.RedisAddr), slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.Error("Error closing redis client", slog.String("error", cerr.Error()))
			}
		}()
		logger.Info("Redis rate-limit store connected", slog.String("addr", cfg.RedisAddr))
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit, redisClient)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	serviceContainer := services.NewServiceContainer(cfg, engine,
		services.WithRecorder(recorder),
		services.WithTracerProvider(tp),
	)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.RouteDeps{
		Metrics: recorder,
		Limiter: rateLimiter,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.Bool("auth_enabled", cfg.AuthEnabled))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("Tracer shutdown failed", slog.String("error", err.Error()))
	}
	logger.Info("Server stopped")
}
