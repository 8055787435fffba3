package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sangkips/residence-api/internal/app"
	"github.com/sangkips/residence-api/internal/config"
	"github.com/sangkips/residence-api/internal/presentation/http/handler"
	"github.com/sangkips/residence-api/internal/presentation/http/middleware"
	"github.com/sangkips/residence-api/internal/presentation/http/routes"
	"github.com/sangkips/residence-api/pkg/logger"
	"github.com/sangkips/residence-api/pkg/utils"
)

const printerStartTimeout = 60 * time.Second

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := app.NewLogger(cfg)
	if err != nil {
		logger.Default().Fatalw("failed to build logger", "error", err)
	}
	defer log.Sync()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	reports, err := app.Open(cfg, log)
	if err != nil {
		log.Fatalw("failed to initialize reports", "error", err)
	}

	// Without a browser the service cannot export, so it must not start listening
	if err := reports.StartPrinter(context.Background(), printerStartTimeout); err != nil {
		_ = reports.Close()
		log.Fatalw("failed to start PDF printer", "error", err)
	}

	rateLimiter := middleware.NewRateLimiter(rateLimiterConfig(cfg.RateLimit))
	defer rateLimiter.Close()

	handlers := &routes.Handlers{
		Report:  handler.NewReportHandler(reports.Operational, reports.Payments, reports.Location),
		Export:  handler.NewExportHandler(reports.Exporter, reports.Location),
		Printer: handler.NewPrinterHandler(reports.Printer, cfg.App.Name),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:  utils.NewJWTManager(cfg.JWT.Secret),
		Cfg:         cfg,
		Log:         log,
		RateLimiter: rateLimiter,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infow("starting server", "port", port, "env", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server shutdown failed", "error", err)
	}

	// In-flight exports have drained, so the browser can go
	if err := reports.Close(); err != nil {
		log.Errorw("failed to release report resources", "error", err)
	}
	log.Info("server stopped")
}

func rateLimiterConfig(cfg config.RateLimitConfig) middleware.RateLimiterConfig {
	rl := middleware.DefaultRateLimiterConfig()
	if cfg.Requests > 0 && cfg.Duration > 0 {
		rl.RequestsPerSecond = float64(cfg.Requests) / float64(cfg.Duration)
		rl.BurstSize = cfg.Requests
	}
	return rl
}
