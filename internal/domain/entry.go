package domain

import (
	"strings"
	"time"
)

// GeneralIntent is the intent bucket for content that carries no specific
// conversational intent. Filtering by it means "do not filter by intent".
const GeneralIntent = "general"

// AudioStatusUploaded marks an audio item whose object is present in storage.
const AudioStatusUploaded = "uploaded"

// AudioTypeExample marks a clip that reads the example sentence aloud.
const AudioTypeExample = "example"

// EntryType is the kind of a dataset entry.
type EntryType string

const (
	EntryTypeWord   EntryType = "word"
	EntryTypePhrase EntryType = "phrase"
)

// IsValid reports whether t is a known entry type.
func (t EntryType) IsValid() bool {
	switch t {
	case EntryTypeWord, EntryTypePhrase:
		return true
	}
	return false
}

// Entry is one source-language term or phrase with its translation.
// Entries are produced by the ingestion process and are read-only here.
type Entry struct {
	ID                 string
	Domain             string
	Intent             *string
	Type               *EntryType
	SourceLanguage     *string
	TargetLanguage     *string
	SourceLemma        *string
	TranslationPrimary *string
	ExampleSource      *string
	ExampleTarget      *string
	OrderInIntent      *int
	ReviewStatus       *string
	CreatedAt          *time.Time
}

// AudioItem is a recorded clip attached to an entry.
type AudioItem struct {
	ID          string
	EntryID     string
	Language    *string
	AudioType   *string
	StoragePath *string
	Status      *string
	UploadedBy  *string
	CreatedAt   *time.Time
}

// HasStoragePath reports whether the item points at an object in storage.
func (a AudioItem) HasStoragePath() bool {
	return a.StoragePath != nil && strings.TrimSpace(*a.StoragePath) != ""
}

// IsExample reports whether the clip type is "example", case-insensitively.
func (a AudioItem) IsExample() bool {
	return a.AudioType != nil && strings.EqualFold(strings.TrimSpace(*a.AudioType), AudioTypeExample)
}

// ResolvedAudio pairs an audio item with its public URL. URL is nil when the
// item has no storage path or the store exposes no URL for it.
type ResolvedAudio struct {
	AudioItem
	URL *string
}

// EntryWithAudio is an entry enriched with its single best audio URL.
type EntryWithAudio struct {
	Entry
	AudioURL *string
}

// EntryWithAudios is an entry enriched with every matching audio item.
type EntryWithAudios struct {
	Entry
	Audios []ResolvedAudio
}
