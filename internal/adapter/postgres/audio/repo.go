// Package audio implements read access to the audio_items table.
package audio

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/lingua-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lingua-backend/internal/domain"
)

const table = "audio_items"

var columns = []string{
	"audio_id", "entry_id", "language", "audio_type",
	"storage_path", "status", "uploaded_by", "created_at",
}

// Repo provides audio item reads backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audio repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListByEntryIDs returns the audio items of the given entries, newest first.
// An empty id set returns an empty slice without querying.
func (r *Repo) ListByEntryIDs(ctx context.Context, entryIDs []string, f domain.AudioFilter) ([]domain.AudioItem, error) {
	if len(entryIDs) == 0 {
		return []domain.AudioItem{}, nil
	}

	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where("entry_id = ANY(?)", entryIDs).
		OrderBy("created_at DESC NULLS LAST", "audio_id DESC")

	if f.UploadedOnly {
		b = b.Where(sq.Eq{"status": domain.AudioStatusUploaded})
	}
	if f.AudioType != "" {
		b = b.Where(sq.Eq{"audio_type": f.AudioType})
	}

	return r.selectItems(ctx, b, "list audio by entries")
}

// ListAll returns a slice of the whole table in a stable order, for export.
func (r *Repo) ListAll(ctx context.Context, limit, offset int) ([]domain.AudioItem, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at ASC", "audio_id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return r.selectItems(ctx, b, "list all audio")
}

func (r *Repo) selectItems(ctx context.Context, b sq.SelectBuilder, op string) ([]domain.AudioItem, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, op)
	}

	var rows []audioRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, op)
	}

	items := make([]domain.AudioItem, len(rows))
	for i, row := range rows {
		items[i] = domain.AudioItem{
			ID:          row.AudioID,
			EntryID:     row.EntryID,
			Language:    row.Language,
			AudioType:   row.AudioType,
			StoragePath: row.StoragePath,
			Status:      row.Status,
			UploadedBy:  row.UploadedBy,
			CreatedAt:   row.CreatedAt,
		}
	}
	return items, nil
}

type audioRow struct {
	AudioID     string     `db:"audio_id"`
	EntryID     string     `db:"entry_id"`
	Language    *string    `db:"language"`
	AudioType   *string    `db:"audio_type"`
	StoragePath *string    `db:"storage_path"`
	Status      *string    `db:"status"`
	UploadedBy  *string    `db:"uploaded_by"`
	CreatedAt   *time.Time `db:"created_at"`
}
