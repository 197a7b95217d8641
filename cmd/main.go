package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"

	"lettrix/internal/adapters/export"
	"lettrix/internal/adapters/redis"
	"lettrix/internal/adapters/variants"
	"lettrix/internal/app"
	"lettrix/internal/config"
	"lettrix/internal/handler"
	"lettrix/internal/logging"
	"lettrix/internal/ports"
	"lettrix/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := logging.New(logging.DefaultConfig())

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		h, _, cleanup, err := build(context.Background(), logger)
		if err != nil {
			os.Exit(1)
		}
		defer cleanup()
		lambda.Start(h.Handle)
		return
	}

	if err := runLocal(logger); err != nil {
		os.Exit(1)
	}
}

func runLocal(logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	h, cfg, cleanup, err := build(ctx, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              cfg.Server.ListenAddr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Server.ListenAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()

	return srv.Shutdown(shutdownCtx)
}

func build(ctx context.Context, logger *slog.Logger) (*handler.APIHandler, *config.AppConfig, func(), error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return nil, nil, nil, err
	}

	if cfg.Redis.PasswordSecret != "" {
		sm, err := config.NewSecretsManagerClient(ctx)
		if err != nil {
			logger.Error("failed to create secrets manager client", "error", err)
			return nil, nil, nil, err
		}
		if err := cfg.ResolveRedisPassword(ctx, sm); err != nil {
			logger.Error("failed to resolve redis password", "error", err)
			return nil, nil, nil, err
		}
	}

	catalog, err := config.LoadCatalog(cfg.Templates.CategoriesFile)
	if err != nil {
		logger.Error("failed to load categories", "error", err)
		return nil, nil, nil, err
	}

	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		return nil, nil, nil, err
	}

	logger.Info("connected to redis", "addr", cfg.Redis.Addr, "categories", len(catalog.Categories))

	source := variantSource(cfg, logging.WithComponent(logger, "variants"))

	application := app.New(app.Options{
		Config:    cfg,
		Catalog:   catalog,
		Logger:    logging.WithComponent(logger, "app"),
		Assembler: service.NewAssembler(source, service.RandomPicker{}, logging.WithComponent(logger, "assembler")),
		Quota: service.NewQuotaPolicy(
			redis.NewQuotaStore(redisClient, cfg.Quota.DailyTTL),
			cfg.Quota.LifetimeFree,
			cfg.Quota.DailyLimit,
			logging.WithComponent(logger, "quota"),
		),
		Stats: redis.NewStatsStore(redisClient, cfg.Stats.TTL),
		Exporters: []ports.Exporter{
			export.NewPDFExporter(cfg.Export.AssetDir, logging.WithComponent(logger, "pdf")),
			export.NewDOCXExporter(logging.WithComponent(logger, "docx")),
		},
	})

	cleanup := func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("failed to close redis", "error", err)
		}
	}

	return handler.NewAPIHandler(application, logging.WithComponent(logger, "api")), cfg, cleanup, nil
}

func variantSource(cfg *config.AppConfig, logger *slog.Logger) ports.VariantSource {
	switch {
	case cfg.Templates.Dir != "":
		return variants.NewDirSource(cfg.Templates.Dir, logger)
	case cfg.Templates.Endpoint != "":
		return variants.NewHTTPSource(cfg.Templates.Endpoint, logger)
	default:
		return variants.NewEmbeddedSource(logger)
	}
}
