// Package export dumps the dataset tables and the audio bucket listing to
// JSON and CSV files.
package export

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/lingua-backend/internal/config"
	"github.com/heartmarshall/lingua-backend/internal/domain"
)

type entryDumper interface {
	ListAll(ctx context.Context, limit, offset int) ([]domain.Entry, error)
}

type audioDumper interface {
	ListAll(ctx context.Context, limit, offset int) ([]domain.AudioItem, error)
}

type storageWalker interface {
	Walk(ctx context.Context, prefix string) ([]domain.StorageObject, error)
}

type pathResolver interface {
	Resolve(path *string) *string
}

type urlSigner interface {
	SignedURL(key string, ttl time.Duration) (string, error)
}

type snapshotter interface {
	RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

const signConcurrency = 8

// Service exports the dataset.
type Service struct {
	entries   entryDumper
	audios    audioDumper
	walker    storageWalker
	resolver  pathResolver
	signer    urlSigner
	tx        snapshotter
	bucket    string
	pageSize  int
	signedTTL time.Duration
	log       *slog.Logger
}

// Deps groups the collaborators of the export service.
type Deps struct {
	Entries  entryDumper
	Audios   audioDumper
	Walker   storageWalker
	Resolver pathResolver
	Signer   urlSigner
	Tx       snapshotter
}

// NewService creates a new export service.
func NewService(log *slog.Logger, deps Deps, catalog config.CatalogConfig, storage config.StorageConfig) *Service {
	return &Service{
		entries:   deps.Entries,
		audios:    deps.Audios,
		walker:    deps.Walker,
		resolver:  deps.Resolver,
		signer:    deps.Signer,
		tx:        deps.Tx,
		bucket:    storage.Bucket,
		pageSize:  catalog.ExportPageSize,
		signedTTL: storage.SignedURLTTL,
		log:       log.With("service", "export"),
	}
}
