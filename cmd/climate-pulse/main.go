package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/couchcryptid/climate-pulse/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/climate-pulse/internal/adapter/kafka"
	"github.com/couchcryptid/climate-pulse/internal/config"
	"github.com/couchcryptid/climate-pulse/internal/dataset"
	"github.com/couchcryptid/climate-pulse/internal/insight"
	"github.com/couchcryptid/climate-pulse/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	// Dataset source: remote base URL if set, local directory otherwise.
	var source dataset.Source
	if cfg.DataBaseURL != "" {
		source = dataset.NewHTTPSource(cfg.DataBaseURL, cfg.DataFetchTimeout, logger)
	} else {
		source = dataset.NewDirSource(cfg.DataDir)
	}
	logger.Info("dataset source configured", "source", source.String(), "format", cfg.DataFormat)
	loader := dataset.NewLoader(source, cfg.DataFormat, logger)

	// Projection events (feature-flagged via KAFKA_ENABLED).
	var (
		publisher insight.Publisher
		kafkaPub  *kafkaadapter.Publisher
	)
	if cfg.KafkaEnabled {
		kafkaPub = kafkaadapter.NewPublisher(cfg, logger)
		publisher = kafkaPub
		metrics.PublishingEnabled.Set(1)
		logger.Info("projection publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaProjectionTopic)
	} else {
		logger.Info("projection publishing disabled")
	}

	svc := insight.New(loader, publisher, cfg.ProjectionCacheSize, logger, metrics)
	srv := httpadapter.NewServer(cfg.HTTPAddr, svc, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server. /readyz reports 503 until the datasets are loaded.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Load datasets, retrying until they are available.
	go func() {
		if err := svc.Run(ctx); err != nil {
			logger.Error("dataset loader error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if kafkaPub != nil {
		if err := kafkaPub.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
