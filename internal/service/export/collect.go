package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/lingua-backend/internal/domain"
	"github.com/heartmarshall/lingua-backend/internal/service/storage"
)

// Options controls one export run.
type Options struct {
	// Prefix limits the storage walk to one directory.
	Prefix string
	// Signed replaces public URLs with time-limited signed URLs.
	Signed bool
}

// Dataset is the collected content of one export run.
type Dataset struct {
	ExportedAt time.Time
	Bucket     string
	Prefix     string
	Entries    []domain.Entry
	AudioItems []domain.AudioItem
	Files      []domain.ResolvedStorageObject
}

// Collect reads both tables from a single snapshot, walks the bucket and
// resolves a URL for every file.
func (s *Service) Collect(ctx context.Context, opts Options) (*Dataset, error) {
	ds := &Dataset{
		ExportedAt: time.Now().UTC(),
		Bucket:     s.bucket,
		Prefix:     strings.TrimSpace(opts.Prefix),
	}

	err := s.tx.RunInSnapshot(ctx, func(ctx context.Context) error {
		var err error
		if ds.AudioItems, err = fetchAll(ctx, s.pageSize, s.audios.ListAll); err != nil {
			return fmt.Errorf("dump audio_items: %w", err)
		}
		if ds.Entries, err = fetchAll(ctx, s.pageSize, s.entries.ListAll); err != nil {
			return fmt.Errorf("dump entries: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.InfoContext(ctx, "tables dumped",
		slog.Int("audio_items", len(ds.AudioItems)),
		slog.Int("entries", len(ds.Entries)),
	)

	objects, err := s.walker.Walk(ctx, ds.Prefix)
	if err != nil {
		return nil, fmt.Errorf("walk storage: %w", err)
	}
	s.log.InfoContext(ctx, "storage walked", slog.Int("files", len(objects)))

	if !opts.Signed {
		ds.Files = storage.ResolveObjects(s.resolver, objects)
		return ds, nil
	}

	ds.Files = make([]domain.ResolvedStorageObject, len(objects))
	for i, o := range objects {
		ds.Files[i] = domain.ResolvedStorageObject{StorageObject: o}
	}
	if err := s.sign(ctx, ds.Files); err != nil {
		return nil, err
	}

	return ds, nil
}

// sign fills in signed URLs concurrently. A file that cannot be signed keeps
// a nil URL; only cancellation aborts.
func (s *Service) sign(ctx context.Context, files []domain.ResolvedStorageObject) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(signConcurrency)

	for i := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			u, err := s.signer.SignedURL(files[i].Path, s.signedTTL)
			if err != nil {
				s.log.WarnContext(gctx, "sign url failed",
					slog.String("path", files[i].Path),
					slog.String("error", err.Error()),
				)
				return nil
			}
			files[i].URL = &u
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("sign urls: %w", err)
	}
	return nil
}

// fetchAll pages through a table until a short page.
func fetchAll[T any](ctx context.Context, pageSize int, page func(ctx context.Context, limit, offset int) ([]T, error)) ([]T, error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("page size must be positive, got %d", pageSize)
	}

	all := []T{}
	for offset := 0; ; offset += pageSize {
		rows, err := page(ctx, pageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, rows...)
		if len(rows) < pageSize {
			return all, nil
		}
	}
}
