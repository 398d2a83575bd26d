package export

import (
	"strconv"
	"time"

	"github.com/heartmarshall/lingua-backend/internal/domain"
	"github.com/heartmarshall/lingua-backend/internal/service/storage"
)

const project = "lingua-dataset"

type payload struct {
	Project    string          `json:"project"`
	ExportedAt time.Time       `json:"exported_at"`
	Bucket     string          `json:"bucket"`
	Prefix     string          `json:"prefix"`
	Tables     tables          `json:"tables"`
	Storage    []storageRecord `json:"storage"`
}

type tables struct {
	AudioItems []audioRecord `json:"audio_items"`
	Entries    []entryRecord `json:"entries"`
}

type entryRecord struct {
	EntryID            string     `json:"entry_id"`
	Domain             string     `json:"domain"`
	Intent             *string    `json:"intent"`
	EntryType          *string    `json:"entry_type"`
	SourceLanguage     *string    `json:"source_language"`
	TargetLanguage     *string    `json:"target_language"`
	SourceLemma        *string    `json:"source_lemma"`
	TranslationPrimary *string    `json:"translation_primary"`
	ExampleSource      *string    `json:"example_source"`
	ExampleTarget      *string    `json:"example_target"`
	OrderInIntent      *int       `json:"order_in_intent"`
	ReviewStatus       *string    `json:"review_status"`
	CreatedAt          *time.Time `json:"created_at"`
}

var entryColumns = []string{
	"entry_id", "domain", "intent", "entry_type", "source_language", "target_language",
	"source_lemma", "translation_primary", "example_source", "example_target",
	"order_in_intent", "review_status", "created_at",
}

func newEntryRecord(e domain.Entry) entryRecord {
	r := entryRecord{
		EntryID:            e.ID,
		Domain:             e.Domain,
		Intent:             e.Intent,
		SourceLanguage:     e.SourceLanguage,
		TargetLanguage:     e.TargetLanguage,
		SourceLemma:        e.SourceLemma,
		TranslationPrimary: e.TranslationPrimary,
		ExampleSource:      e.ExampleSource,
		ExampleTarget:      e.ExampleTarget,
		OrderInIntent:      e.OrderInIntent,
		ReviewStatus:       e.ReviewStatus,
		CreatedAt:          e.CreatedAt,
	}
	if e.Type != nil {
		t := string(*e.Type)
		r.EntryType = &t
	}
	return r
}

func (r entryRecord) csv() []string {
	return []string{
		r.EntryID, r.Domain, str(r.Intent), str(r.EntryType), str(r.SourceLanguage), str(r.TargetLanguage),
		str(r.SourceLemma), str(r.TranslationPrimary), str(r.ExampleSource), str(r.ExampleTarget),
		intStr(r.OrderInIntent), str(r.ReviewStatus), timeStr(r.CreatedAt),
	}
}

type audioRecord struct {
	AudioID     string     `json:"audio_id"`
	EntryID     string     `json:"entry_id"`
	Language    *string    `json:"language"`
	AudioType   *string    `json:"audio_type"`
	StoragePath *string    `json:"storage_path"`
	Status      *string    `json:"status"`
	UploadedBy  *string    `json:"uploaded_by"`
	CreatedAt   *time.Time `json:"created_at"`
}

var audioColumns = []string{
	"audio_id", "entry_id", "language", "audio_type", "storage_path", "status", "uploaded_by", "created_at",
}

func newAudioRecord(a domain.AudioItem) audioRecord {
	return audioRecord{
		AudioID:     a.ID,
		EntryID:     a.EntryID,
		Language:    a.Language,
		AudioType:   a.AudioType,
		StoragePath: a.StoragePath,
		Status:      a.Status,
		UploadedBy:  a.UploadedBy,
		CreatedAt:   a.CreatedAt,
	}
}

func (r audioRecord) csv() []string {
	return []string{
		r.AudioID, r.EntryID, str(r.Language), str(r.AudioType), str(r.StoragePath),
		str(r.Status), str(r.UploadedBy), timeStr(r.CreatedAt),
	}
}

type storageRecord struct {
	storage.Object
}

var storageColumns = []string{"path", "name", "size", "mimetype", "created_at", "updated_at", "url"}

func newStorageRecord(o domain.ResolvedStorageObject) storageRecord {
	return storageRecord{storage.NewObject(o)}
}

func (r storageRecord) csv() []string {
	size := ""
	if r.Size != nil {
		size = strconv.FormatInt(*r.Size, 10)
	}
	return []string{r.Path, r.Name, size, str(r.MimeType), timeStr(r.CreatedAt), timeStr(r.UpdatedAt), str(r.URL)}
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intStr(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func timeStr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
