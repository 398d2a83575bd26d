// Package catalog serves the read side of the phrase dataset: entries with
// their clips, intents, domains, the studio view and the storage listing.
package catalog

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/lingua-backend/internal/config"
	"github.com/heartmarshall/lingua-backend/internal/domain"
)

type entryRepo interface {
	List(ctx context.Context, q domain.EntryQuery) ([]domain.Entry, error)
	ListRecent(ctx context.Context, domainName string, limit int) ([]domain.Entry, error)
	Intents(ctx context.Context, domainName string) ([]string, error)
	Domains(ctx context.Context) ([]string, error)
	ListPage(ctx context.Context, f domain.StudioFilter) ([]domain.Entry, int, error)
}

type audioAggregator interface {
	AttachBest(ctx context.Context, entries []domain.Entry) ([]domain.EntryWithAudio, error)
	AttachAll(ctx context.Context, entries []domain.Entry, audioType string) ([]domain.EntryWithAudios, error)
}

type storageWalker interface {
	Walk(ctx context.Context, prefix string) ([]domain.StorageObject, error)
}

type pathResolver interface {
	Resolve(path *string) *string
}

// Service provides catalog read operations.
type Service struct {
	entries       entryRepo
	audio         audioAggregator
	walker        storageWalker
	resolver      pathResolver
	fallbackLimit int
	log           *slog.Logger
}

// NewService creates a new catalog service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	audio audioAggregator,
	walker storageWalker,
	resolver pathResolver,
	cfg config.CatalogConfig,
) *Service {
	return &Service{
		entries:       entries,
		audio:         audio,
		walker:        walker,
		resolver:      resolver,
		fallbackLimit: cfg.FallbackLimit,
		log:           log.With("service", "catalog"),
	}
}
