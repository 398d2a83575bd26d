package audio

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lingua-backend/internal/domain"
)

type audioRepo interface {
	ListByEntryIDs(ctx context.Context, entryIDs []string, f domain.AudioFilter) ([]domain.AudioItem, error)
}

type pathResolver interface {
	Resolve(path *string) *string
}

// Aggregator fetches clips for a batch of entries and merges them on.
type Aggregator struct {
	audios   audioRepo
	resolver pathResolver
	log      *slog.Logger
}

// NewAggregator creates a new Aggregator.
func NewAggregator(log *slog.Logger, audios audioRepo, resolver pathResolver) *Aggregator {
	return &Aggregator{
		audios:   audios,
		resolver: resolver,
		log:      log.With("service", "audio"),
	}
}

// AttachBest gives every entry the URL of its single best uploaded clip, or
// nil when it has none. Entry order is preserved.
func (a *Aggregator) AttachBest(ctx context.Context, entries []domain.Entry) ([]domain.EntryWithAudio, error) {
	out := make([]domain.EntryWithAudio, len(entries))
	if len(entries) == 0 {
		return out, nil
	}

	items, err := a.audios.ListByEntryIDs(ctx, entryIDs(entries), domain.AudioFilter{UploadedOnly: true})
	if err != nil {
		return nil, fmt.Errorf("load audio: %w", err)
	}

	best := SelectBest(items)
	for i, e := range entries {
		out[i] = domain.EntryWithAudio{Entry: e}
		if clip, ok := best[e.ID]; ok {
			out[i].AudioURL = a.resolver.Resolve(clip.StoragePath)
		}
	}

	a.log.DebugContext(ctx, "best audio attached",
		slog.Int("entries", len(entries)),
		slog.Int("clips", len(items)),
		slog.Int("with_audio", len(best)),
	)
	return out, nil
}

// AttachAll gives every entry all of its clips, newest first, each with its
// own URL. Clips without a storage path are kept with a nil URL.
// A non-empty audioType keeps only clips of that type.
func (a *Aggregator) AttachAll(ctx context.Context, entries []domain.Entry, audioType string) ([]domain.EntryWithAudios, error) {
	out := make([]domain.EntryWithAudios, len(entries))
	if len(entries) == 0 {
		return out, nil
	}

	items, err := a.audios.ListByEntryIDs(ctx, entryIDs(entries), domain.AudioFilter{AudioType: audioType})
	if err != nil {
		return nil, fmt.Errorf("load audio: %w", err)
	}

	byEntry := make(map[string][]domain.ResolvedAudio, len(entries))
	for _, item := range items {
		byEntry[item.EntryID] = append(byEntry[item.EntryID], domain.ResolvedAudio{
			AudioItem: item,
			URL:       a.resolver.Resolve(item.StoragePath),
		})
	}

	for i, e := range entries {
		audios := byEntry[e.ID]
		if audios == nil {
			audios = []domain.ResolvedAudio{}
		}
		out[i] = domain.EntryWithAudios{Entry: e, Audios: audios}
	}

	a.log.DebugContext(ctx, "all audio attached",
		slog.Int("entries", len(entries)),
		slog.Int("clips", len(items)),
		slog.String("audio_type", audioType),
	)
	return out, nil
}

func entryIDs(entries []domain.Entry) []string {
	ids := make([]string, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.ID]; dup || e.ID == "" {
			continue
		}
		seen[e.ID] = struct{}{}
		ids = append(ids, e.ID)
	}
	return ids
}
