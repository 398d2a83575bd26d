package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/lingua-backend/internal/adapter/gcs"
	"github.com/heartmarshall/lingua-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lingua-backend/internal/adapter/postgres/audio"
	"github.com/heartmarshall/lingua-backend/internal/adapter/postgres/entry"
	"github.com/heartmarshall/lingua-backend/internal/adapter/postgres/missingrequest"
	"github.com/heartmarshall/lingua-backend/internal/config"
	audiosvc "github.com/heartmarshall/lingua-backend/internal/service/audio"
	"github.com/heartmarshall/lingua-backend/internal/service/catalog"
	"github.com/heartmarshall/lingua-backend/internal/service/export"
	"github.com/heartmarshall/lingua-backend/internal/service/missing"
	"github.com/heartmarshall/lingua-backend/internal/service/storage"
)

// Infra owns the external clients shared by the server and the CLI.
type Infra struct {
	Pool    *pgxpool.Pool
	Storage *gcs.Client

	log *slog.Logger
}

// OpenInfra connects to PostgreSQL and object storage. The caller must Close
// the result.
func OpenInfra(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Infra, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	log.Info("database connected",
		slog.Int("max_conns", int(cfg.Database.MaxConns)),
	)

	store, err := gcs.New(ctx, cfg.Storage, log)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("object storage: %w", err)
	}

	return &Infra{Pool: pool, Storage: store, log: log}, nil
}

// Close releases storage and database connections.
func (i *Infra) Close() {
	if err := i.Storage.Close(); err != nil {
		i.log.Warn("close object storage", slog.String("error", err.Error()))
	}
	i.Pool.Close()
}

// Walker returns a bucket walker with a resolver for its paths.
func (i *Infra) Walker() (*storage.Walker, *storage.Resolver) {
	return storage.NewWalker(i.log, i.Storage), storage.NewResolver(i.Storage)
}

// Services groups the request-serving services.
type Services struct {
	Catalog *catalog.Service
	Missing *missing.Service
}

// NewServices builds the read path and the missing-request counter on top of
// infra.
func NewServices(cfg *config.Config, log *slog.Logger, infra *Infra) Services {
	entries := entry.New(infra.Pool)
	audios := audio.New(infra.Pool)
	requests := missingrequest.New(infra.Pool)

	walker, resolver := infra.Walker()
	aggregator := audiosvc.NewAggregator(log, audios, resolver)

	return Services{
		Catalog: catalog.NewService(log, entries, aggregator, walker, resolver, cfg.Catalog),
		Missing: missing.NewService(log, requests),
	}
}

// NewExporter builds the dataset export service.
func NewExporter(cfg *config.Config, log *slog.Logger, infra *Infra) *export.Service {
	walker, resolver := infra.Walker()
	return export.NewService(log, export.Deps{
		Entries:  entry.New(infra.Pool),
		Audios:   audio.New(infra.Pool),
		Walker:   walker,
		Resolver: resolver,
		Signer:   infra.Storage,
		Tx:       postgres.NewTxManager(infra.Pool),
	}, cfg.Catalog, cfg.Storage)
}
