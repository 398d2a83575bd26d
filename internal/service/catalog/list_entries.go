package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lingua-backend/internal/domain"
)

// ListEntries returns the entries of a domain with the URL of each entry's
// best clip. A blank domain yields an empty list without touching the store.
func (s *Service) ListEntries(ctx context.Context, in ListEntriesInput) ([]domain.EntryWithAudio, error) {
	return s.listWithAudio(ctx, in, false)
}

// ListPhrases is ListEntries with the search also matching the example
// sentences.
func (s *Service) ListPhrases(ctx context.Context, in ListEntriesInput) ([]domain.EntryWithAudio, error) {
	return s.listWithAudio(ctx, in, true)
}

func (s *Service) listWithAudio(ctx context.Context, in ListEntriesInput, searchExamples bool) ([]domain.EntryWithAudio, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	q := in.query(searchExamples)
	if q.Domain == "" {
		return []domain.EntryWithAudio{}, nil
	}

	entries, err := s.planEntries(ctx, q)
	if err != nil {
		return nil, err
	}

	items, err := s.audio.AttachBest(ctx, entries)
	if err != nil {
		return nil, fmt.Errorf("attach audio: %w", err)
	}
	return items, nil
}

// planEntries runs the filtered query and, when the schema lacks one of the
// columns it needs, degrades to the newest entries of the domain.
func (s *Service) planEntries(ctx context.Context, q domain.EntryQuery) ([]domain.Entry, error) {
	entries, err := s.entries.List(ctx, q)
	if err == nil {
		return entries, nil
	}
	if !errors.Is(err, domain.ErrSchemaDrift) {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	s.log.WarnContext(ctx, "entry schema drift, serving recent entries",
		slog.String("domain", q.Domain),
		slog.String("column", missingColumn(err)),
		slog.String("error", err.Error()),
	)

	entries, err = s.entries.ListRecent(ctx, q.Domain, s.fallbackLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent entries: %w", err)
	}
	return entries, nil
}

// missingColumn names the column behind a drift error, if known.
func missingColumn(err error) string {
	var drift *domain.SchemaDriftError
	if errors.As(err, &drift) {
		return drift.Column
	}
	return ""
}
