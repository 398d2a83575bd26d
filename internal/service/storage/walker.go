package storage

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/heartmarshall/lingua-backend/internal/domain"
)

type lister interface {
	List(ctx context.Context, dir string) ([]domain.StorageChild, error)
}

// Walker flattens a storage tree into its leaf objects.
type Walker struct {
	lister lister
	log    *slog.Logger
}

// NewWalker creates a new Walker.
func NewWalker(log *slog.Logger, l lister) *Walker {
	return &Walker{
		lister: l,
		log:    log.With("service", "storage_walker"),
	}
}

// Walk lists every leaf under prefix depth-first. Siblings are visited in
// ascending name order. The first listing error aborts the walk.
func (w *Walker) Walk(ctx context.Context, prefix string) ([]domain.StorageObject, error) {
	root := strings.Trim(strings.TrimSpace(prefix), "/")
	out := []domain.StorageObject{}

	if err := w.walk(ctx, root, &out); err != nil {
		return nil, err
	}

	w.log.DebugContext(ctx, "storage walk done", slog.String("prefix", root), slog.Int("objects", len(out)))
	return out, nil
}

func (w *Walker) walk(ctx context.Context, dir string, out *[]domain.StorageObject) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	children, err := w.lister.List(ctx, dir)
	if err != nil {
		return fmt.Errorf("walk %q: %w", dir, err)
	}

	slices.SortStableFunc(children, func(a, b domain.StorageChild) int {
		return strings.Compare(a.Name, b.Name)
	})

	for _, c := range children {
		p := joinPath(dir, c.Name)
		if c.Dir {
			if err := w.walk(ctx, p, out); err != nil {
				return err
			}
			continue
		}
		*out = append(*out, domain.StorageObject{
			Path:        p,
			Name:        c.Name,
			Size:        c.Size,
			ContentType: c.ContentType,
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
		})
	}
	return nil
}

func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	return dir + "/" + name
}
