package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lingua-backend/internal/domain"
	"github.com/heartmarshall/lingua-backend/internal/service/catalog"
	"github.com/heartmarshall/lingua-backend/internal/service/storage"
)

type catalogService interface {
	ListEntries(ctx context.Context, in catalog.ListEntriesInput) ([]domain.EntryWithAudio, error)
	ListPhrases(ctx context.Context, in catalog.ListEntriesInput) ([]domain.EntryWithAudio, error)
	ListIntents(ctx context.Context, domainName string) ([]string, error)
	ListDomains(ctx context.Context) ([]string, error)
	Studio(ctx context.Context, in catalog.StudioInput) (*catalog.StudioPage, error)
	StorageListing(ctx context.Context, prefix string) ([]domain.ResolvedStorageObject, error)
}

// CatalogHandler serves the read-only dataset endpoints.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

func listEntriesInput(r *http.Request) catalog.ListEntriesInput {
	q := r.URL.Query()
	return catalog.ListEntriesInput{
		Domain: q.Get("domain"),
		Intent: q.Get("intent"),
		Query:  q.Get("q"),
		Type:   q.Get("type"),
	}
}

// Entries handles GET /api/conversation/entries.
func (h *CatalogHandler) Entries(w http.ResponseWriter, r *http.Request) {
	noStore(w)

	items, err := h.svc.ListEntries(r.Context(), listEntriesInput(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": toConversationEntries(items)})
}

// Phrases handles GET /api/conversation/phrases. Search also covers the
// example sentences.
func (h *CatalogHandler) Phrases(w http.ResponseWriter, r *http.Request) {
	noStore(w)

	items, err := h.svc.ListPhrases(r.Context(), listEntriesInput(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": toConversationEntries(items)})
}

// Intents handles GET /api/conversation/intents?domain=.
func (h *CatalogHandler) Intents(w http.ResponseWriter, r *http.Request) {
	noStore(w)

	intents, err := h.svc.ListIntents(r.Context(), r.URL.Query().Get("domain"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"intents": intents})
}

// Domains handles GET /api/meta/domains.
func (h *CatalogHandler) Domains(w http.ResponseWriter, r *http.Request) {
	noStore(w)

	domains, err := h.svc.ListDomains(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"domains": domains})
}

// Studio handles GET /api/studio: one page of entries, each with every
// audio recording attached.
func (h *CatalogHandler) Studio(w http.ResponseWriter, r *http.Request) {
	noStore(w)

	q := r.URL.Query()
	page, err := h.svc.Studio(r.Context(), catalog.StudioInput{
		Query:          q.Get("q"),
		SourceLanguage: q.Get("source_language"),
		Domain:         q.Get("domain"),
		AudioType:      q.Get("audio_type"),
		Page:           queryInt(r, "page"),
		PageSize:       queryInt(r, "pageSize"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pageResponse[studioEntryResponse]{
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    page.Total,
		Items:    toStudioEntries(page.Items),
	})
}

// Storage handles GET /api/studio/storage?prefix=.
func (h *CatalogHandler) Storage(w http.ResponseWriter, r *http.Request) {
	noStore(w)

	prefix := r.URL.Query().Get("prefix")
	objs, err := h.svc.StorageListing(r.Context(), prefix)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"prefix": prefix,
		"items":  storage.NewObjects(objs),
	})
}
