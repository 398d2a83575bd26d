package catalog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/lingua-backend/internal/domain"
	"github.com/heartmarshall/lingua-backend/internal/service/storage"
)

// Studio returns one page of entries, newest first, each with all of its
// clips.
func (s *Service) Studio(ctx context.Context, in StudioInput) (*StudioPage, error) {
	f := in.filter()

	entries, total, err := s.entries.ListPage(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list studio page: %w", err)
	}

	items, err := s.audio.AttachAll(ctx, entries, f.AudioType)
	if err != nil {
		return nil, fmt.Errorf("attach audio: %w", err)
	}

	return &StudioPage{
		Page:     f.Page.Number,
		PageSize: f.Page.Size,
		Total:    total,
		Items:    items,
	}, nil
}

// StorageListing returns every object under prefix with its public URL.
func (s *Service) StorageListing(ctx context.Context, prefix string) ([]domain.ResolvedStorageObject, error) {
	objects, err := s.walker.Walk(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("walk storage: %w", err)
	}

	return storage.ResolveObjects(s.resolver, objects), nil
}
