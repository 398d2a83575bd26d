package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lingua-backend/internal/config"
)

// Run loads configuration, connects to PostgreSQL and object storage, and
// serves the HTTP API until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, "api")

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("bucket", cfg.Storage.Bucket),
		slog.Bool("admin_enabled", cfg.Admin.AdminEnabled()),
	)

	infra, err := OpenInfra(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open infra: %w", err)
	}
	defer infra.Close()

	handler, stop := NewHandler(cfg, logger, infra, NewServices(cfg, logger, infra))
	defer stop()

	if err := serve(ctx, newHTTPServer(cfg.Server, handler, logger), cfg.Server.ShutdownTimeout, logger); err != nil {
		return fmt.Errorf("http server: %w", err)
	}

	logger.Info("application stopped")
	return nil
}
