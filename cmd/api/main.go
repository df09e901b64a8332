package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/justsurfingit/job-board/internal/config"
	"github.com/justsurfingit/job-board/internal/database"
	"github.com/justsurfingit/job-board/internal/events"
	"github.com/justsurfingit/job-board/internal/handlers"
	"github.com/justsurfingit/job-board/internal/logger"
	"github.com/justsurfingit/job-board/internal/metrics"
	"github.com/justsurfingit/job-board/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("job board: %v", err)
	}
}

func run() error {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	appLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = appLogger.Sync() }()

	gin.SetMode(cfg.GinMode)

	// 2. Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(reg)

	// 3. Notifications
	broker := events.NewBroker(appLogger, events.WithClientBufferSize(cfg.EventBufferSize))

	// 4. Initialize Core Services (Dependencies)
	jobService := services.NewJobService(appLogger, broker, appMetrics)
	extractorService := services.NewExtractorService(cfg.ExtractDelay, appLogger, appMetrics)
	applicationService := services.NewApplicationService(jobService, broker, appMetrics, appLogger)
	exportService := services.NewExportService(appLogger)

	// 5. Seed the store after the simulated fetch delay
	seed, err := database.SeedJobs()
	if err != nil {
		return fmt.Errorf("load seed jobs: %w", err)
	}
	seedTimer := time.AfterFunc(cfg.SeedDelay, func() {
		jobService.Seed(seed)
	})
	defer seedTimer.Stop()

	// 6. Setup Router & Routes
	router := handlers.NewRouter(handlers.RouterDeps{
		Logger:          appLogger,
		Jobs:            jobService,
		Extractor:       extractorService,
		Applications:    applicationService,
		Exporter:        exportService,
		Broker:          broker,
		Gatherer:        reg,
		AllowAllOrigins: cfg.AllowAllOrigins(),
		AllowedOrigins:  cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("Server starting",
			logger.String("port", cfg.Port),
			logger.String("gin_mode", cfg.GinMode),
		)
		if serveErr := srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- serveErr
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server")

	// Open event streams only end when their channel closes.
	broker.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	appLogger.Info("Server stopped")
	return nil
}
