package entry

import (
	"time"

	"github.com/heartmarshall/lingua-backend/internal/domain"
)

// entryRow mirrors the entries table. Every column but entry_id is nullable,
// and older schemas lack some of them entirely.
type entryRow struct {
	EntryID            string     `db:"entry_id"`
	Domain             *string    `db:"domain"`
	Intent             *string    `db:"intent"`
	EntryType          *string    `db:"entry_type"`
	SourceLanguage     *string    `db:"source_language"`
	TargetLanguage     *string    `db:"target_language"`
	SourceLemma        *string    `db:"source_lemma"`
	TranslationPrimary *string    `db:"translation_primary"`
	ExampleSource      *string    `db:"example_source"`
	ExampleTarget      *string    `db:"example_target"`
	OrderInIntent      *int       `db:"order_in_intent"`
	ReviewStatus       *string    `db:"review_status"`
	CreatedAt          *time.Time `db:"created_at"`
}

func (r entryRow) toDomain() domain.Entry {
	e := domain.Entry{
		ID:                 r.EntryID,
		Intent:             r.Intent,
		SourceLanguage:     r.SourceLanguage,
		TargetLanguage:     r.TargetLanguage,
		SourceLemma:        r.SourceLemma,
		TranslationPrimary: r.TranslationPrimary,
		ExampleSource:      r.ExampleSource,
		ExampleTarget:      r.ExampleTarget,
		OrderInIntent:      r.OrderInIntent,
		ReviewStatus:       r.ReviewStatus,
		CreatedAt:          r.CreatedAt,
	}
	if r.Domain != nil {
		e.Domain = *r.Domain
	}
	if r.EntryType != nil {
		t := domain.EntryType(*r.EntryType)
		e.Type = &t
	}
	return e
}
