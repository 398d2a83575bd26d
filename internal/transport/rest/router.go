package rest

import (
	"net/http"

	"github.com/heartmarshall/lingua-backend/internal/transport/middleware"
)

// Routes groups the handlers and per-route middleware mounted by NewRouter.
type Routes struct {
	Health  *HealthHandler
	Catalog *CatalogHandler
	Missing *MissingHandler

	// Admin guards /api/requests.
	Admin middleware.Middleware
	// MissingLimit throttles POST /api/missing.
	MissingLimit middleware.Middleware
}

// NewRouter mounts every endpoint on a method-aware ServeMux. Unset
// per-route middleware is treated as a pass-through.
func NewRouter(rt Routes) *http.ServeMux {
	admin := orPassThrough(rt.Admin)
	limit := orPassThrough(rt.MissingLimit)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)

	mux.HandleFunc("GET /api/conversation/entries", rt.Catalog.Entries)
	mux.HandleFunc("GET /api/conversation/phrases", rt.Catalog.Phrases)
	mux.HandleFunc("GET /api/conversation/intents", rt.Catalog.Intents)
	mux.HandleFunc("GET /api/meta/domains", rt.Catalog.Domains)
	mux.HandleFunc("GET /api/studio", rt.Catalog.Studio)
	mux.HandleFunc("GET /api/studio/storage", rt.Catalog.Storage)

	mux.Handle("POST /api/missing", limit(http.HandlerFunc(rt.Missing.Record)))
	mux.Handle("GET /api/requests", admin(http.HandlerFunc(rt.Missing.Requests)))

	return mux
}

func orPassThrough(mw middleware.Middleware) middleware.Middleware {
	if mw == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	return mw
}
