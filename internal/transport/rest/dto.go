package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingua-backend/internal/domain"
)

type entryResponse struct {
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

type conversationEntryResponse struct {
	entryResponse
	AudioURL *string `json:"audio_url"`
}

type audioResponse struct {
	AudioID     string     `json:"audio_id"`
	EntryID     string     `json:"entry_id"`
	Language    *string    `json:"language"`
	AudioType   *string    `json:"audio_type"`
	StoragePath *string    `json:"storage_path"`
	Status      *string    `json:"status"`
	UploadedBy  *string    `json:"uploaded_by"`
	CreatedAt   *time.Time `json:"created_at"`
	PublicURL   *string    `json:"publicUrl"`
}

type studioEntryResponse struct {
	entryResponse
	Audios []audioResponse `json:"audios"`
}

type pageResponse[T any] struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
	Items    []T `json:"items"`
}

type missingRequestBody struct {
	Query          *string `json:"query"`
	SourceLanguage *string `json:"source_language"`
	TargetLanguage *string `json:"target_language"`
	Domain         *string `json:"domain"`
}

type missingRequestResponse struct {
	ID             uuid.UUID `json:"id"`
	Query          string    `json:"query"`
	SourceLanguage string    `json:"source_language"`
	TargetLanguage string    `json:"target_language"`
	Domain         string    `json:"domain"`
	Count          int       `json:"count"`
	FirstSeenAt    time.Time `json:"first_seen_at"`
	LastSeenAt     time.Time `json:"last_seen_at"`
}

func toEntryResponse(e domain.Entry) entryResponse {
	var entryType *string
	if e.Type != nil {
		s := string(*e.Type)
		entryType = &s
	}
	return entryResponse{
		EntryID:            e.ID,
		Domain:             e.Domain,
		Intent:             e.Intent,
		EntryType:          entryType,
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
}

func toConversationEntries(items []domain.EntryWithAudio) []conversationEntryResponse {
	out := make([]conversationEntryResponse, 0, len(items))
	for _, it := range items {
		out = append(out, conversationEntryResponse{
			entryResponse: toEntryResponse(it.Entry),
			AudioURL:      it.AudioURL,
		})
	}
	return out
}

func toStudioEntries(items []domain.EntryWithAudios) []studioEntryResponse {
	out := make([]studioEntryResponse, 0, len(items))
	for _, it := range items {
		audios := make([]audioResponse, 0, len(it.Audios))
		for _, a := range it.Audios {
			audios = append(audios, audioResponse{
				AudioID:     a.ID,
				EntryID:     a.EntryID,
				Language:    a.Language,
				AudioType:   a.AudioType,
				StoragePath: a.StoragePath,
				Status:      a.Status,
				UploadedBy:  a.UploadedBy,
				CreatedAt:   a.CreatedAt,
				PublicURL:   a.URL,
			})
		}
		out = append(out, studioEntryResponse{
			entryResponse: toEntryResponse(it.Entry),
			Audios:        audios,
		})
	}
	return out
}

func toMissingRequest(m domain.MissingRequest) missingRequestResponse {
	return missingRequestResponse{
		ID:             m.ID,
		Query:          m.Query,
		SourceLanguage: m.SourceLanguage,
		TargetLanguage: m.TargetLanguage,
		Domain:         m.Domain,
		Count:          m.Count,
		FirstSeenAt:    m.FirstSeenAt,
		LastSeenAt:     m.LastSeenAt,
	}
}

func toMissingRequests(items []domain.MissingRequest) []missingRequestResponse {
	out := make([]missingRequestResponse, 0, len(items))
	for _, m := range items {
		out = append(out, toMissingRequest(m))
	}
	return out
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
