// Package missingrequest persists the counters of searches that found nothing.
package missingrequest

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/lingua-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lingua-backend/internal/domain"
)

const table = "missing_requests"

var columns = []string{
	"id", "query", "source_language", "target_language", "domain",
	"count", "first_seen_at", "last_seen_at",
}

// upsertSuffix bumps the counter of an existing key in the same statement
// that inserts a new one.
var upsertSuffix = "ON CONFLICT (query, source_language, target_language, domain) " +
	"DO UPDATE SET count = " + table + ".count + 1, last_seen_at = EXCLUDED.last_seen_at " +
	"RETURNING " + strings.Join(columns, ", ")

// Repo provides missing-request persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new missing-request repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Record inserts key with count 1, or increments the count of the existing
// row and moves its last_seen_at to now. Concurrent calls for the same key
// never lose an increment.
func (r *Repo) Record(ctx context.Context, key domain.MissingRequestKey, now time.Time) (domain.MissingRequest, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("query", "source_language", "target_language", "domain", "count", "first_seen_at", "last_seen_at").
		Values(key.Query, key.SourceLanguage, key.TargetLanguage, key.Domain, 1, now, now).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return domain.MissingRequest{}, postgres.MapError(err, "record missing request")
	}

	var row requestRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.MissingRequest{}, postgres.MapError(err, "record missing request")
	}

	return row.toDomain(), nil
}

// List returns one page of missing requests, most requested first, plus the
// number of rows matching the filter.
func (r *Repo) List(ctx context.Context, f domain.RequestFilter) ([]domain.MissingRequest, int, error) {
	where := sq.And{}
	if f.Search != "" {
		where = append(where, postgres.ContainsAny(f.Search, "query"))
	}

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, postgres.MapError(err, "count missing requests")
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "count missing requests")
	}

	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("count DESC", "last_seen_at DESC", "id ASC").
		Limit(uint64(f.Page.Size)).
		Offset(uint64(f.Page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, postgres.MapError(err, "list missing requests")
	}

	var rows []requestRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, 0, postgres.MapError(err, "list missing requests")
	}

	items := make([]domain.MissingRequest, len(rows))
	for i, row := range rows {
		items[i] = row.toDomain()
	}
	return items, total, nil
}

type requestRow struct {
	ID             uuid.UUID `db:"id"`
	Query          string    `db:"query"`
	SourceLanguage string    `db:"source_language"`
	TargetLanguage string    `db:"target_language"`
	Domain         string    `db:"domain"`
	Count          int       `db:"count"`
	FirstSeenAt    time.Time `db:"first_seen_at"`
	LastSeenAt     time.Time `db:"last_seen_at"`
}

func (r requestRow) toDomain() domain.MissingRequest {
	return domain.MissingRequest{
		ID:             r.ID,
		Query:          r.Query,
		SourceLanguage: r.SourceLanguage,
		TargetLanguage: r.TargetLanguage,
		Domain:         r.Domain,
		Count:          r.Count,
		FirstSeenAt:    r.FirstSeenAt,
		LastSeenAt:     r.LastSeenAt,
	}
}
