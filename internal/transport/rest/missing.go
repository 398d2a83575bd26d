package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lingua-backend/internal/domain"
	"github.com/heartmarshall/lingua-backend/internal/service/missing"
)

// maxMissingBody bounds the POST /api/missing payload.
const maxMissingBody = 16 << 10

type missingService interface {
	Record(ctx context.Context, in missing.RecordInput) (domain.MissingRequest, error)
	ListRequests(ctx context.Context, in missing.ListRequestsInput) (*missing.RequestPage, error)
}

// MissingHandler serves missing-request ingestion and the admin listing.
type MissingHandler struct {
	svc missingService
	log *slog.Logger
}

// NewMissingHandler creates a MissingHandler.
func NewMissingHandler(svc missingService, logger *slog.Logger) *MissingHandler {
	return &MissingHandler{svc: svc, log: logger.With("handler", "missing")}
}

// Record handles POST /api/missing.
func (h *MissingHandler) Record(w http.ResponseWriter, r *http.Request) {
	var body missingRequestBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxMissingBody)).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.svc.Record(r.Context(), missing.RecordInput{
		Query:          derefString(body.Query),
		SourceLanguage: derefString(body.SourceLanguage),
		TargetLanguage: derefString(body.TargetLanguage),
		Domain:         derefString(body.Domain),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":   true,
		"item": toMissingRequest(item),
	})
}

// Requests handles GET /api/requests. Callers must pass the admin token
// middleware first.
func (h *MissingHandler) Requests(w http.ResponseWriter, r *http.Request) {
	noStore(w)

	page, err := h.svc.ListRequests(r.Context(), missing.ListRequestsInput{
		Query:    r.URL.Query().Get("q"),
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "pageSize"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pageResponse[missingRequestResponse]{
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    page.Total,
		Items:    toMissingRequests(page.Items),
	})
}
