package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTargetLanguage is used when a missing request names no target language.
const DefaultTargetLanguage = "fr"

// MissingRequest counts lookups that found nothing in the dataset.
// (Query, SourceLanguage, TargetLanguage, Domain) is unique.
type MissingRequest struct {
	ID             uuid.UUID
	Query          string
	SourceLanguage string
	TargetLanguage string
	Domain         string
	Count          int
	FirstSeenAt    time.Time
	LastSeenAt     time.Time
}

// MissingRequestKey is the normalized composite key of a missing request.
type MissingRequestKey struct {
	Query          string
	SourceLanguage string
	TargetLanguage string
	Domain         string
}
