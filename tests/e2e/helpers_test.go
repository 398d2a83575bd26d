//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/lingua-backend/internal/adapter/gcs"
	"github.com/heartmarshall/lingua-backend/internal/adapter/postgres/audio"
	"github.com/heartmarshall/lingua-backend/internal/adapter/postgres/entry"
	"github.com/heartmarshall/lingua-backend/internal/adapter/postgres/missingrequest"
	"github.com/heartmarshall/lingua-backend/internal/config"
	"github.com/heartmarshall/lingua-backend/internal/domain"
	audiosvc "github.com/heartmarshall/lingua-backend/internal/service/audio"
	"github.com/heartmarshall/lingua-backend/internal/service/catalog"
	"github.com/heartmarshall/lingua-backend/internal/service/missing"
	"github.com/heartmarshall/lingua-backend/internal/service/storage"
	"github.com/heartmarshall/lingua-backend/internal/transport/middleware"
	"github.com/heartmarshall/lingua-backend/internal/transport/rest"
)

const (
	testBucket     = "lingua-audio"
	testAdminToken = "e2e-admin-token"
)

// publicURL is where the default URL builder points for key.
func publicURL(key string) string {
	return "https://storage.googleapis.com/" + testBucket + "/" + key
}

// memBucket is an in-memory directory tree served through the storage
// walker. Keys are full object paths.
type memBucket map[string]int64

func (b memBucket) List(_ context.Context, dir string) ([]domain.StorageChild, error) {
	prefix := ""
	if dir != "" {
		prefix = dir + "/"
	}
	seenDirs := map[string]bool{}
	var out []domain.StorageChild
	for key, size := range b {
		tail, ok := strings.CutPrefix(key, prefix)
		if !ok {
			continue
		}
		if name, _, isDir := strings.Cut(tail, "/"); isDir {
			if !seenDirs[name] {
				seenDirs[name] = true
				out = append(out, domain.StorageChild{Name: name, Dir: true})
			}
			continue
		}
		sz := size
		out = append(out, domain.StorageChild{Name: tail, Size: &sz})
	}
	return out, nil
}

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer wires the full HTTP stack against a PostgreSQL container
// and an in-memory bucket.
func setupTestServer(t *testing.T, pool *pgxpool.Pool, bucket memBucket) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	urls := gcs.NewURLBuilder(config.StorageConfig{Bucket: testBucket})
	resolver := storage.NewResolver(urls)
	walker := storage.NewWalker(logger, bucket)

	entries := entry.New(pool)
	aggregator := audiosvc.NewAggregator(logger, audio.New(pool), resolver)

	catalogSvc := catalog.NewService(logger, entries, aggregator, walker, resolver, config.CatalogConfig{FallbackLimit: 300})
	missingSvc := missing.NewService(logger, missingrequest.New(pool))

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	router := rest.NewRouter(rest.Routes{
		Health:       rest.NewHealthHandler(pool, nil, "e2e"),
		Catalog:      rest.NewCatalogHandler(catalogSvc, logger),
		Missing:      rest.NewMissingHandler(missingSvc, logger),
		Admin:        middleware.RequireAdminToken(testAdminToken, logger),
		MissingLimit: limiter.Limit(1000),
	})

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Content-Type,X-Admin-Token",
			MaxAge:         600,
		}),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

func (ts *testServer) do(t *testing.T, method, path string, body any, headers map[string]string) (*http.Response, map[string]any) {
	t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func (ts *testServer) get(t *testing.T, path string) (*http.Response, map[string]any) {
	t.Helper()
	return ts.do(t, http.MethodGet, path, nil, nil)
}

// items returns body["items"] as a slice of objects.
func items(t *testing.T, body map[string]any) []map[string]any {
	t.Helper()
	raw, ok := body["items"].([]any)
	require.True(t, ok, "expected items array, got %v", body)
	out := make([]map[string]any, 0, len(raw))
	for _, it := range raw {
		out = append(out, it.(map[string]any))
	}
	return out
}

func ids(list []map[string]any) []string {
	out := make([]string, 0, len(list))
	for _, it := range list {
		out = append(out, it["entry_id"].(string))
	}
	return out
}

func toStrings(list []any) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		out = append(out, v.(string))
	}
	return out
}
