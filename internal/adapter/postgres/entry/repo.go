// Package entry implements read access to the entries content table.
// Queries are built with squirrel and scanned with scany.
package entry

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/lingua-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lingua-backend/internal/domain"
)

const table = "entries"

// columns is the full projection of the current schema.
var columns = []string{
	"entry_id", "domain", "intent", "entry_type",
	"source_language", "target_language",
	"source_lemma", "translation_primary", "example_source", "example_target",
	"order_in_intent", "review_status", "created_at",
}

// legacyColumns only names columns every schema version has had.
var legacyColumns = []string{
	"entry_id", "domain", "source_language",
	"source_lemma", "translation_primary", "example_source", "example_target",
	"created_at",
}

var (
	searchColumns         = []string{"source_lemma", "translation_primary"}
	extendedSearchColumns = []string{"source_lemma", "translation_primary", "example_source", "example_target"}
)

// Repo provides entry reads backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new entry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns the entries of one domain ordered by their rank within the
// intent (unranked last), then by creation time and id.
// An empty domain returns an empty slice without querying.
// A schema without the rank or intent columns yields domain.ErrSchemaDrift.
func (r *Repo) List(ctx context.Context, q domain.EntryQuery) ([]domain.Entry, error) {
	if strings.TrimSpace(q.Domain) == "" {
		return []domain.Entry{}, nil
	}

	b := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"domain": q.Domain}).
		OrderBy("order_in_intent ASC NULLS LAST", "created_at ASC", "entry_id ASC")

	if q.FiltersIntent() {
		b = b.Where(sq.Eq{"intent": q.Intent})
	}
	if q.Type != nil {
		b = b.Where(sq.Eq{"entry_type": string(*q.Type)})
	}
	if q.Search != "" {
		cols := searchColumns
		if q.SearchExamples {
			cols = extendedSearchColumns
		}
		b = b.Where(postgres.ContainsAny(q.Search, cols...))
	}

	return r.selectEntries(ctx, b, "list entries")
}

// ListRecent returns up to limit entries of one domain, newest first.
// It only touches columns present in every schema version.
func (r *Repo) ListRecent(ctx context.Context, domainName string, limit int) ([]domain.Entry, error) {
	if strings.TrimSpace(domainName) == "" {
		return []domain.Entry{}, nil
	}

	b := postgres.Builder().
		Select(legacyColumns...).
		From(table).
		Where(sq.Eq{"domain": domainName}).
		OrderBy("created_at DESC", "entry_id DESC").
		Limit(uint64(limit))

	return r.selectEntries(ctx, b, "list recent entries")
}

// Intents returns the raw intent values used within a domain.
// Callers normalize, deduplicate and sort.
func (r *Repo) Intents(ctx context.Context, domainName string) ([]string, error) {
	b := postgres.Builder().
		Select("intent").
		Distinct().
		From(table).
		Where(sq.Eq{"domain": domainName}).
		Where(sq.NotEq{"intent": nil})

	return r.selectStrings(ctx, b, "list intents")
}

// Domains returns the raw non-null domain values.
func (r *Repo) Domains(ctx context.Context) ([]string, error) {
	b := postgres.Builder().
		Select("domain").
		Distinct().
		From(table).
		Where(sq.NotEq{"domain": nil})

	return r.selectStrings(ctx, b, "list domains")
}

// ListPage returns one page of entries, newest first, plus the total count of
// entries matching the filter.
func (r *Repo) ListPage(ctx context.Context, f domain.StudioFilter) ([]domain.Entry, int, error) {
	where := sq.And{}
	if f.Search != "" {
		where = append(where, postgres.ContainsAny(f.Search, searchColumns...))
	}
	if f.SourceLanguage != "" {
		where = append(where, sq.Eq{"source_language": f.SourceLanguage})
	}
	if f.Domain != "" {
		where = append(where, sq.Eq{"domain": f.Domain})
	}

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, postgres.MapError(err, "count entries")
	}

	var total int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "count entries")
	}

	page := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "entry_id DESC").
		Limit(uint64(f.Page.Size)).
		Offset(uint64(f.Page.Offset()))

	entries, err := r.selectEntries(ctx, page, "list entry page")
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// ListAll returns a slice of the whole table in a stable order, for export.
func (r *Repo) ListAll(ctx context.Context, limit, offset int) ([]domain.Entry, error) {
	b := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at ASC", "entry_id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	return r.selectEntries(ctx, b, "list all entries")
}

// ---------------------------------------------------------------------------
// Query helpers
// ---------------------------------------------------------------------------

func (r *Repo) selectEntries(ctx context.Context, b sq.SelectBuilder, op string) ([]domain.Entry, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, op)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, op)
	}

	entries := make([]domain.Entry, len(rows))
	for i, row := range rows {
		entries[i] = row.toDomain()
	}
	return entries, nil
}

func (r *Repo) selectStrings(ctx context.Context, b sq.SelectBuilder, op string) ([]string, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, op)
	}

	var values []string
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &values, query, args...); err != nil {
		return nil, postgres.MapError(err, op)
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}
