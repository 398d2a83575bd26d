package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/lingua-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueDomain returns a domain name no other test uses, so tests sharing
// the container never see each other's rows.
func UniqueDomain(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}

// EntryOption customizes a seeded entry.
type EntryOption func(*domain.Entry)

// WithIntent sets the entry intent.
func WithIntent(intent string) EntryOption {
	return func(e *domain.Entry) { e.Intent = &intent }
}

// WithType sets the entry type.
func WithType(t domain.EntryType) EntryOption {
	return func(e *domain.Entry) { e.Type = &t }
}

// WithOrder sets order_in_intent.
func WithOrder(n int) EntryOption {
	return func(e *domain.Entry) { e.OrderInIntent = &n }
}

// WithCreatedAt sets created_at.
func WithCreatedAt(ts time.Time) EntryOption {
	return func(e *domain.Entry) { e.CreatedAt = &ts }
}

// WithExample sets the example pair.
func WithExample(source, target string) EntryOption {
	return func(e *domain.Entry) {
		e.ExampleSource = &source
		e.ExampleTarget = &target
	}
}

// SeedEntry inserts an entry in domainName with the given lemma and
// translation. Returns the entry as written.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, domainName, lemma, translation string, opts ...EntryOption) domain.Entry {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	src, tgt := "en", "fr"
	e := domain.Entry{
		ID:                 "e-" + uniqueSuffix(),
		Domain:             domainName,
		SourceLanguage:     &src,
		TargetLanguage:     &tgt,
		SourceLemma:        &lemma,
		TranslationPrimary: &translation,
		CreatedAt:          &now,
	}
	for _, opt := range opts {
		opt(&e)
	}

	var entryType *string
	if e.Type != nil {
		s := string(*e.Type)
		entryType = &s
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO entries (entry_id, domain, intent, entry_type, source_language, target_language,
		                      source_lemma, translation_primary, example_source, example_target,
		                      order_in_intent, review_status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		e.ID, e.Domain, e.Intent, entryType, e.SourceLanguage, e.TargetLanguage,
		e.SourceLemma, e.TranslationPrimary, e.ExampleSource, e.ExampleTarget,
		e.OrderInIntent, e.ReviewStatus, e.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry: %v", err)
	}

	return e
}

// SeedLegacyEntry inserts into a schema created by SetupLegacyDB.
func SeedLegacyEntry(t *testing.T, pool *pgxpool.Pool, domainName, lemma string, createdAt time.Time) string {
	t.Helper()

	id := "e-" + uniqueSuffix()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO entries (entry_id, domain, source_lemma, created_at) VALUES ($1, $2, $3, $4)`,
		id, domainName, lemma, createdAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLegacyEntry: %v", err)
	}
	return id
}

// SeedAudio inserts an audio item for entryID. An empty storagePath is
// stored as NULL.
func SeedAudio(t *testing.T, pool *pgxpool.Pool, entryID, audioType, storagePath, status string, createdAt time.Time) domain.AudioItem {
	t.Helper()

	lang := "fr"
	a := domain.AudioItem{
		ID:        "a-" + uniqueSuffix(),
		EntryID:   entryID,
		Language:  &lang,
		AudioType: &audioType,
		Status:    &status,
		CreatedAt: &createdAt,
	}
	if storagePath != "" {
		a.StoragePath = &storagePath
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO audio_items (audio_id, entry_id, language, audio_type, storage_path, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.EntryID, a.Language, a.AudioType, a.StoragePath, a.Status, a.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAudio: %v", err)
	}

	return a
}
